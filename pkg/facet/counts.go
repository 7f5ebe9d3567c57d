package facet

import "github.com/ionut85/ai-marketing-tools-directory/pkg/types"

type Facet string

const (
	CategoryFacet    Facet = "categories"
	UseCaseFacet     Facet = "useCases"
	PricingFacet     Facet = "pricing"
	CompanyTypeFacet Facet = "companyType"
)

// Counts holds the number of items per facet value across a whole catalog.
type Counts struct {
	Categories  map[string]int `json:"categories"`
	UseCases    map[string]int `json:"useCases"`
	Pricing     map[string]int `json:"pricing"`
	CompanyType map[string]int `json:"companyType"`
}

func NewCounts() Counts {
	return Counts{
		Categories:  make(map[string]int),
		UseCases:    make(map[string]int),
		Pricing:     make(map[string]int),
		CompanyType: make(map[string]int),
	}
}

// Count tallies every item once for its category, pricing and company type
// and once per carried use case. It is meant to run on the unfiltered catalog
// so the numbers next to each filter stay stable while filters change.
func Count(items []types.Item) Counts {
	c := NewCounts()
	for i := range items {
		item := &items[i]
		c.Categories[item.Category]++
		for _, uc := range item.UseCases {
			c.UseCases[uc]++
		}
		c.Pricing[string(item.Pricing)]++
		c.CompanyType[string(item.CompanyType)]++
	}
	return c
}

func (c Counts) values(f Facet) map[string]int {
	switch f {
	case CategoryFacet:
		return c.Categories
	case UseCaseFacet:
		return c.UseCases
	case PricingFacet:
		return c.Pricing
	case CompanyTypeFacet:
		return c.CompanyType
	}
	return nil
}

// Get returns 0 for values no item carries.
func (c Counts) Get(f Facet, id string) int {
	return c.values(f)[id]
}

func (c Counts) Total(f Facet) int {
	sum := 0
	for _, n := range c.values(f) {
		sum += n
	}
	return sum
}
