package index

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/types"
)

func catalog() []types.Item {
	return []types.Item{
		{Id: "1", Slug: "a", Name: "A", Tagline: "Write better copy", Category: "create", UseCases: []string{"copywriting"}, Pricing: types.PricingFree, CompanyType: types.CompanyStartup},
		{Id: "2", Slug: "b", Name: "B", Tagline: "Rank higher", Category: "create", UseCases: []string{"seo"}, Pricing: types.PricingPaid, CompanyType: types.CompanyPrivate},
		{Id: "3", Slug: "c", Name: "C", Tagline: "Know your numbers", Category: "measure", UseCases: []string{"analytics"}, Pricing: types.PricingFree, CompanyType: types.CompanyPublic},
	}
}

func slugs(items []types.Item) []string {
	result := make([]string, len(items))
	for i, item := range items {
		result[i] = item.Slug
	}
	return result
}

func queryWith(fn func(q *types.Query)) *types.Query {
	q := types.NewQuery()
	fn(q)
	return q
}

func TestFilterScenarios(t *testing.T) {
	cases := []struct {
		name  string
		query *types.Query
		want  []string
	}{
		{"category", queryWith(func(q *types.Query) { q.ToggleCategory("create") }), []string{"a", "b"}},
		{"pricing", queryWith(func(q *types.Query) { q.TogglePricing("free") }), []string{"a", "c"}},
		{"category and pricing", queryWith(func(q *types.Query) {
			q.ToggleCategory("create")
			q.TogglePricing("free")
		}), []string{"a"}},
		{"search", queryWith(func(q *types.Query) { q.SetSearch("seo") }), []string{"b"}},
		{"search is case insensitive", queryWith(func(q *types.Query) { q.SetSearch("  KNOW ") }), []string{"c"}},
		{"search matches category id", queryWith(func(q *types.Query) { q.SetSearch("meas") }), []string{"c"}},
		{"use cases are or-ed", queryWith(func(q *types.Query) {
			q.ToggleUseCase("seo")
			q.ToggleUseCase("analytics")
		}), []string{"b", "c"}},
		{"company type", queryWith(func(q *types.Query) { q.ToggleCompanyType("public") }), []string{"c"}},
		{"no match", queryWith(func(q *types.Query) { q.SetSearch("blockchain") }), []string{}},
		{"blank search", queryWith(func(q *types.Query) { q.SetSearch("   ") }), []string{"a", "b", "c"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := slugs(Filter(catalog(), tc.query))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	items := catalog()
	if diff := cmp.Diff(items, Filter(items, types.NewQuery())); diff != "" {
		t.Errorf("Expected identity (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(items, Filter(items, nil)); diff != "" {
		t.Errorf("Expected identity for nil query (-want +got):\n%s", diff)
	}
}

func TestFilterIsIdempotentAndOrdered(t *testing.T) {
	items := catalog()
	q := queryWith(func(q *types.Query) {
		q.TogglePricing("free")
		q.TogglePricing("paid")
	})
	once := Filter(items, q)
	twice := Filter(once, q)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("Expected idempotence (-once +twice):\n%s", diff)
	}
	pos := -1
	for _, item := range once {
		idx := -1
		for i := range items {
			if items[i].Id == item.Id {
				idx = i
			}
		}
		if idx <= pos {
			t.Fatalf("Expected catalog order, got %v", slugs(once))
		}
		pos = idx
	}
}

func TestFilterEmptyCatalog(t *testing.T) {
	result := Filter(nil, queryWith(func(q *types.Query) { q.ToggleCategory("create") }))
	if result == nil || len(result) != 0 {
		t.Errorf("Expected empty slice, got %v", result)
	}
}
