package types

import (
	"slices"
	"strings"
)

// Query is the filter state owned by a browsing client. Empty facets and an
// empty search term place no constraint on the result.
type Query struct {
	Categories  []string `json:"categories" schema:"category,omitempty"`
	UseCases    []string `json:"useCases" schema:"useCase,omitempty"`
	Pricing     []string `json:"pricing" schema:"pricing,omitempty"`
	CompanyType []string `json:"companyType" schema:"companyType,omitempty"`
	Search      string   `json:"search" schema:"search,omitempty"`
}

func NewQuery() *Query {
	return &Query{
		Categories:  []string{},
		UseCases:    []string{},
		Pricing:     []string{},
		CompanyType: []string{},
	}
}

func toggle(values []string, id string) []string {
	if idx := slices.Index(values, id); idx >= 0 {
		return slices.Delete(slices.Clone(values), idx, idx+1)
	}
	return append(slices.Clone(values), id)
}

func (q *Query) ToggleCategory(id string) {
	q.Categories = toggle(q.Categories, id)
}

func (q *Query) ToggleUseCase(id string) {
	q.UseCases = toggle(q.UseCases, id)
}

func (q *Query) TogglePricing(id string) {
	q.Pricing = toggle(q.Pricing, id)
}

func (q *Query) ToggleCompanyType(id string) {
	q.CompanyType = toggle(q.CompanyType, id)
}

func (q *Query) SetSearch(term string) {
	q.Search = term
}

// ClearFacets drops every facet selection but keeps the search term.
func (q *Query) ClearFacets() {
	q.Categories = []string{}
	q.UseCases = []string{}
	q.Pricing = []string{}
	q.CompanyType = []string{}
}

func (q *Query) Clear() {
	q.ClearFacets()
	q.Search = ""
}

func (q *Query) SearchTerm() string {
	return strings.ToLower(strings.TrimSpace(q.Search))
}

func (q *Query) HasActiveFilters() bool {
	return q.ActiveFilterCount() > 0
}

func (q *Query) ActiveFilterCount() int {
	return len(q.Categories) + len(q.UseCases) + len(q.Pricing) + len(q.CompanyType)
}

func (q *Query) IsEmpty() bool {
	return !q.HasActiveFilters() && q.SearchTerm() == ""
}

func (q *Query) Clone() *Query {
	return &Query{
		Categories:  slices.Clone(q.Categories),
		UseCases:    slices.Clone(q.UseCases),
		Pricing:     slices.Clone(q.Pricing),
		CompanyType: slices.Clone(q.CompanyType),
		Search:      q.Search,
	}
}

func (q *Query) Equal(o *Query) bool {
	return slices.Equal(q.Categories, o.Categories) &&
		slices.Equal(q.UseCases, o.UseCases) &&
		slices.Equal(q.Pricing, o.Pricing) &&
		slices.Equal(q.CompanyType, o.CompanyType) &&
		q.Search == o.Search
}

func sanitizeValues(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(result, v) {
			continue
		}
		result = append(result, v)
	}
	return result
}

// Sanitize removes blank and duplicate facet values.
func (q *Query) Sanitize() {
	q.Categories = sanitizeValues(q.Categories)
	q.UseCases = sanitizeValues(q.UseCases)
	q.Pricing = sanitizeValues(q.Pricing)
	q.CompanyType = sanitizeValues(q.CompanyType)
}
