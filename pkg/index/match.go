package index

import (
	"slices"
	"strings"

	"github.com/ionut85/ai-marketing-tools-directory/pkg/types"
)

func containsAny(selected []string, values []string) bool {
	for _, v := range values {
		if slices.Contains(selected, v) {
			return true
		}
	}
	return false
}

func matchesTerm(item *types.Item, term string) bool {
	if strings.Contains(strings.ToLower(item.Name), term) ||
		strings.Contains(strings.ToLower(item.Tagline), term) ||
		strings.Contains(strings.ToLower(item.Description), term) ||
		strings.Contains(strings.ToLower(item.Category), term) {
		return true
	}
	for _, uc := range item.UseCases {
		if strings.Contains(strings.ToLower(uc), term) {
			return true
		}
	}
	return false
}

// Matches reports whether the item passes every active predicate of q.
// Values inside a facet are OR-ed, facets are AND-ed.
func Matches(item *types.Item, q *types.Query) bool {
	if len(q.Categories) > 0 && !slices.Contains(q.Categories, item.Category) {
		return false
	}
	if len(q.UseCases) > 0 && !containsAny(q.UseCases, item.UseCases) {
		return false
	}
	if len(q.Pricing) > 0 && !slices.Contains(q.Pricing, string(item.Pricing)) {
		return false
	}
	if len(q.CompanyType) > 0 && !slices.Contains(q.CompanyType, string(item.CompanyType)) {
		return false
	}
	if term := q.SearchTerm(); term != "" {
		return matchesTerm(item, term)
	}
	return true
}

// Filter returns the matching items in catalog order. A nil query matches
// everything.
func Filter(items []types.Item, q *types.Query) []types.Item {
	result := make([]types.Item, 0, len(items))
	for i := range items {
		if q == nil || Matches(&items[i], q) {
			result = append(result, items[i])
		}
	}
	return result
}
