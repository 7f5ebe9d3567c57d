package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ionut85/ai-marketing-tools-directory/pkg/facet"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/types"
)

var (
	ErrUnknownCategory      = errors.New("unknown category")
	ErrDuplicateSlug        = errors.New("duplicate slug")
	ErrDuplicateSubcategory = errors.New("duplicate subcategory")
	ErrDuplicateCategory    = errors.New("duplicate category")
)

// Catalog is the read-only set of items and facet dictionaries. It is built
// once and never mutated, so it can be shared between goroutines.
type Catalog struct {
	items        []types.Item
	categories   []types.Category
	loaded       []types.Category
	useCases     []types.UseCase
	descriptions map[string]types.CategoryDescription

	bySlug     map[string]int
	byCategory map[string]int
	counts     facet.Counts
}

func New(items []types.Item, categories []types.Category, useCases []types.UseCase, descriptions map[string]types.CategoryDescription) (*Catalog, error) {
	c := &Catalog{
		items:        slices.Clone(items),
		categories:   types.SortCategories(categories),
		loaded:       slices.Clone(categories),
		useCases:     slices.Clone(useCases),
		descriptions: make(map[string]types.CategoryDescription, len(descriptions)),
		bySlug:       make(map[string]int, len(items)),
		byCategory:   make(map[string]int, len(categories)),
	}
	for k, v := range descriptions {
		c.descriptions[k] = v
	}
	for i, cat := range c.categories {
		if _, found := c.byCategory[cat.Id]; found {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, cat.Id)
		}
		c.byCategory[cat.Id] = i
		seen := make(map[string]struct{}, len(cat.Subcategories))
		for _, sub := range cat.Subcategories {
			if _, found := seen[sub.Id]; found {
				return nil, fmt.Errorf("%w: %s in category %s", ErrDuplicateSubcategory, sub.Id, cat.Id)
			}
			seen[sub.Id] = struct{}{}
		}
	}
	for i := range c.items {
		item := &c.items[i]
		if _, found := c.byCategory[item.Category]; !found {
			return nil, fmt.Errorf("%w: item %s references %q", ErrUnknownCategory, item.Slug, item.Category)
		}
		if _, found := c.bySlug[item.Slug]; found {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlug, item.Slug)
		}
		c.bySlug[item.Slug] = i
	}
	c.counts = facet.Count(c.items)
	return c, nil
}

// Items returns the catalog in its original order. Callers must not modify
// the returned slice.
func (c *Catalog) Items() []types.Item {
	return c.items
}

// Categories are sorted by their order field.
func (c *Catalog) Categories() []types.Category {
	return c.categories
}

// CategoriesAsLoaded keeps the order of the categories document.
func (c *Catalog) CategoriesAsLoaded() []types.Category {
	return c.loaded
}

func (c *Catalog) UseCases() []types.UseCase {
	return c.useCases
}

func (c *Catalog) Descriptions() map[string]types.CategoryDescription {
	return c.descriptions
}

func (c *Catalog) Counts() facet.Counts {
	return c.counts
}

func (c *Catalog) Len() int {
	return len(c.items)
}

func (c *Catalog) ItemBySlug(slug string) (*types.Item, bool) {
	idx, ok := c.bySlug[slug]
	if !ok {
		return nil, false
	}
	return &c.items[idx], true
}

func (c *Catalog) Category(id string) (*types.Category, bool) {
	idx, ok := c.byCategory[id]
	if !ok {
		return nil, false
	}
	return &c.categories[idx], true
}

func (c *Catalog) Description(id string) (types.CategoryDescription, bool) {
	d, ok := c.descriptions[id]
	return d, ok
}

func (c *Catalog) ItemsInCategory(id string) []types.Item {
	result := make([]types.Item, 0)
	for i := range c.items {
		if c.items[i].Category == id {
			result = append(result, c.items[i])
		}
	}
	return result
}

func (c *Catalog) ItemsInSubcategory(categoryId, subcategoryId string) []types.Item {
	result := make([]types.Item, 0)
	for i := range c.items {
		if c.items[i].Category == categoryId && c.items[i].Subcategory == subcategoryId {
			result = append(result, c.items[i])
		}
	}
	return result
}

// Related lists up to n other items sharing the category or a use case,
// in catalog order.
func (c *Catalog) Related(item *types.Item, n int) []types.Item {
	result := make([]types.Item, 0, n)
	for i := range c.items {
		if len(result) >= n {
			break
		}
		other := &c.items[i]
		if other.Id == item.Id {
			continue
		}
		if other.Category == item.Category || slices.ContainsFunc(other.UseCases, item.HasUseCase) {
			result = append(result, *other)
		}
	}
	return result
}
