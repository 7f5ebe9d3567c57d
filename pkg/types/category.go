package types

import (
	"cmp"
	"slices"
)

type Subcategory struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

type Category struct {
	Id            string        `json:"id"`
	Name          string        `json:"name"`
	Color         string        `json:"color"`
	Order         int           `json:"order"`
	Subcategories []Subcategory `json:"subcategories"`
}

func (c *Category) Subcategory(id string) (*Subcategory, bool) {
	for i := range c.Subcategories {
		if c.Subcategories[i].Id == id {
			return &c.Subcategories[i], true
		}
	}
	return nil, false
}

// SortedSubcategories returns a copy ordered by Order, stable for equal values.
func (c *Category) SortedSubcategories() []Subcategory {
	subs := slices.Clone(c.Subcategories)
	slices.SortStableFunc(subs, func(a, b Subcategory) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return subs
}

func SortCategories(categories []Category) []Category {
	sorted := slices.Clone(categories)
	slices.SortStableFunc(sorted, func(a, b Category) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return sorted
}

type UseCase struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// CategoryDescription is the editorial copy shown on category pages.
type CategoryDescription struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Keywords        []string `json:"keywords"`
}
