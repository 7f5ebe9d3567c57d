package browse

import (
	"github.com/ionut85/ai-marketing-tools-directory/pkg/catalog"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/index"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/types"
)

const CategoryPageSize = 12

type SubcategoryBadge struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Listing struct {
	Category      types.Category            `json:"category"`
	Description   types.CategoryDescription `json:"description"`
	Subcategories []SubcategoryBadge        `json:"subcategories"`
	index.Page
}

// CategoryListing builds one page of a category. A category without a
// description has no landing page and reports ok=false like an unknown id.
func CategoryListing(cat *catalog.Catalog, id string, page int) (*Listing, bool) {
	category, ok := cat.Category(id)
	if !ok {
		return nil, false
	}
	description, ok := cat.Description(id)
	if !ok {
		return nil, false
	}
	items := cat.ItemsInCategory(id)
	totalPages := index.TotalPages(len(items), CategoryPageSize)

	badges := make([]SubcategoryBadge, 0, len(category.Subcategories))
	for _, sub := range category.SortedSubcategories() {
		count := len(cat.ItemsInSubcategory(id, sub.Id))
		if count == 0 {
			continue
		}
		badges = append(badges, SubcategoryBadge{Id: sub.Id, Name: sub.Name, Count: count})
	}

	return &Listing{
		Category:      *category,
		Description:   description,
		Subcategories: badges,
		Page:          index.NewPage(items, CategoryPageSize, index.ClampPage(page, totalPages)),
	}, true
}
