package catalog

import "github.com/ionut85/ai-marketing-tools-directory/pkg/types"

// GeneralCategoryId is rendered below the columns as one flat group.
const GeneralCategoryId = "general"

type LandscapeTile struct {
	Slug     string              `json:"slug"`
	Name     string              `json:"name"`
	Tagline  string              `json:"tagline"`
	Logo     string              `json:"logo,omitempty"`
	Fallback *types.LogoFallback `json:"fallback,omitempty"`
}

type LandscapeGroup struct {
	Id    string          `json:"id"`
	Name  string          `json:"name"`
	Items []LandscapeTile `json:"items"`
}

type LandscapeColumn struct {
	Id            string           `json:"id"`
	Name          string           `json:"name"`
	Color         string           `json:"color"`
	Subcategories []LandscapeGroup `json:"subcategories"`
}

type Landscape struct {
	Columns []LandscapeColumn `json:"columns"`
	General *LandscapeColumn  `json:"general,omitempty"`
}

func tileFor(item *types.Item) LandscapeTile {
	tile := LandscapeTile{
		Slug:    item.Slug,
		Name:    item.Name,
		Tagline: item.Tagline,
		Logo:    item.LogoURL(),
	}
	if tile.Logo == "" {
		fb := types.FallbackFor(item.Name)
		tile.Fallback = &fb
	}
	return tile
}

func tilesFor(items []types.Item) []LandscapeTile {
	tiles := make([]LandscapeTile, len(items))
	for i := range items {
		tiles[i] = tileFor(&items[i])
	}
	return tiles
}

// Landscape groups the catalog into category columns and subcategory boxes.
// Empty subcategories are left out.
func (c *Catalog) Landscape() Landscape {
	l := Landscape{Columns: make([]LandscapeColumn, 0, len(c.categories))}
	for i := range c.categories {
		cat := &c.categories[i]
		if len(cat.Subcategories) == 0 {
			continue
		}
		col := LandscapeColumn{
			Id:            cat.Id,
			Name:          cat.Name,
			Color:         cat.Color,
			Subcategories: make([]LandscapeGroup, 0, len(cat.Subcategories)),
		}
		for _, sub := range cat.SortedSubcategories() {
			items := c.ItemsInSubcategory(cat.Id, sub.Id)
			if len(items) == 0 {
				continue
			}
			col.Subcategories = append(col.Subcategories, LandscapeGroup{
				Id:    sub.Id,
				Name:  sub.Name,
				Items: tilesFor(items),
			})
		}
		l.Columns = append(l.Columns, col)
	}
	if general, ok := c.Category(GeneralCategoryId); ok {
		if items := c.ItemsInCategory(general.Id); len(items) > 0 {
			l.General = &LandscapeColumn{
				Id:    general.Id,
				Name:  general.Name,
				Color: general.Color,
				Subcategories: []LandscapeGroup{
					{Id: general.Id, Name: general.Name, Items: tilesFor(items)},
				},
			}
		}
	}
	return l
}
