package types

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToggleAddsAndRemoves(t *testing.T) {
	q := NewQuery()
	q.ToggleCategory("create")
	q.ToggleCategory("measure")
	if diff := cmp.Diff([]string{"create", "measure"}, q.Categories); diff != "" {
		t.Errorf("unexpected categories (-want +got):\n%s", diff)
	}
	q.ToggleCategory("create")
	if diff := cmp.Diff([]string{"measure"}, q.Categories); diff != "" {
		t.Errorf("unexpected categories (-want +got):\n%s", diff)
	}
}

func TestToggleTwiceRestoresQuery(t *testing.T) {
	q := NewQuery()
	q.ToggleUseCase("seo")
	q.TogglePricing("free")
	before := q.Clone()

	q.ToggleCompanyType("startup")
	q.ToggleCompanyType("startup")
	q.ToggleUseCase("copywriting")
	q.ToggleUseCase("copywriting")

	if !q.Equal(before) {
		t.Errorf("Expected %+v, got %+v", before, q)
	}
}

func TestToggleDoesNotShareBackingArray(t *testing.T) {
	q := NewQuery()
	q.TogglePricing("free")
	q.TogglePricing("paid")
	snapshot := q.Clone()
	q.TogglePricing("free")
	if diff := cmp.Diff([]string{"free", "paid"}, snapshot.Pricing); diff != "" {
		t.Errorf("snapshot was mutated (-want +got):\n%s", diff)
	}
}

func TestClearFacetsKeepsSearch(t *testing.T) {
	q := NewQuery()
	q.ToggleCategory("plan")
	q.ToggleCompanyType("oss")
	q.SetSearch("attribution")
	q.ClearFacets()
	if q.HasActiveFilters() {
		t.Errorf("Expected no active filters, got %d", q.ActiveFilterCount())
	}
	if q.Search != "attribution" {
		t.Errorf("Expected search to survive, got %q", q.Search)
	}
	q.Clear()
	if !q.IsEmpty() {
		t.Errorf("Expected empty query, got %+v", q)
	}
}

func TestSearchTerm(t *testing.T) {
	cases := map[string]string{
		"":           "",
		"   ":        "",
		" AI Tools ": "ai tools",
		"SEO":        "seo",
	}
	for in, want := range cases {
		q := NewQuery()
		q.SetSearch(in)
		if got := q.SearchTerm(); got != want {
			t.Errorf("SearchTerm(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestActiveFilterCount(t *testing.T) {
	q := NewQuery()
	q.ToggleCategory("create")
	q.ToggleUseCase("seo")
	q.ToggleUseCase("analytics")
	q.TogglePricing("free")
	q.SetSearch("ignored")
	if got := q.ActiveFilterCount(); got != 4 {
		t.Errorf("Expected 4 active filters, got %d", got)
	}
}

func TestQueryFromValues(t *testing.T) {
	values := url.Values{
		"category":    []string{"create", "measure", "create", " "},
		"useCase":     []string{"seo"},
		"pricing":     []string{"free"},
		"companyType": []string{"startup"},
		"search":      []string{"ai"},
		"unknown":     []string{"x"},
	}
	q, err := QueryFromValues(values)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := &Query{
		Categories:  []string{"create", "measure"},
		UseCases:    []string{"seo"},
		Pricing:     []string{"free"},
		CompanyType: []string{"startup"},
		Search:      "ai",
	}
	if diff := cmp.Diff(want, q); diff != "" {
		t.Errorf("unexpected query (-want +got):\n%s", diff)
	}
}

func TestQueryFromValuesSearchAlias(t *testing.T) {
	q, err := QueryFromValues(url.Values{"q": []string{"attribution"}})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if q.Search != "attribution" {
		t.Errorf("Expected search from q alias, got %q", q.Search)
	}
}

func TestQueryValuesRoundTrip(t *testing.T) {
	q := NewQuery()
	q.ToggleCategory("plan")
	q.ToggleUseCase("seo")
	q.ToggleUseCase("copywriting")
	q.SetSearch("ad creative")

	values := q.Values()
	if _, ok := values["pricing"]; ok {
		t.Errorf("Expected empty pricing to be omitted, got %v", values)
	}
	back, err := QueryFromValues(values)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !back.Equal(q) {
		t.Errorf("Expected %+v, got %+v", q, back)
	}
}
