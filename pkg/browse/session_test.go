package browse

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/go-cmp/cmp"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/catalog"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/types"
	"go.uber.org/goleak"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load(context.Background(), &catalog.DirSource{Dir: "../catalog/testdata"})
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	return c
}

func generatedCatalog(t *testing.T, n int) *catalog.Catalog {
	t.Helper()
	items := make([]types.Item, n)
	for i := range items {
		items[i] = types.Item{
			Id:       fmt.Sprint(i),
			Slug:     fmt.Sprintf("tool-%d", i),
			Name:     fmt.Sprintf("Tool %d", i),
			Category: "create",
		}
	}
	c, err := catalog.New(items, []types.Category{{Id: "create", Name: "Create"}}, nil, map[string]types.CategoryDescription{
		"create": {Title: "Create"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func slugs(items []types.Item) []string {
	result := make([]string, len(items))
	for i, item := range items {
		result[i] = item.Slug
	}
	return result
}

func TestSessionInitialView(t *testing.T) {
	s := NewSession(loadCatalog(t), Options{})
	defer s.Close()

	v := s.View()
	if v.Page != 1 || v.TotalPages != 1 || v.PageSize != DefaultPageSize {
		t.Errorf("Unexpected paging %d/%d size %d", v.Page, v.TotalPages, v.PageSize)
	}
	if v.Showing != 4 || v.Matching != 4 || v.Total != 4 {
		t.Errorf("Expected all 4 items, got showing %d matching %d total %d", v.Showing, v.Matching, v.Total)
	}
	if v.ActiveFilters != 0 {
		t.Errorf("Expected no active filters, got %d", v.ActiveFilters)
	}
}

func TestSessionToggleResetsPage(t *testing.T) {
	s := NewSession(generatedCatalog(t, 30), Options{PageSize: 10})
	defer s.Close()

	if v := s.SetPage(3); v.Page != 3 {
		t.Fatalf("Expected page 3, got %d", v.Page)
	}
	s.ToggleCategory("create")
	v := s.View()
	if v.Page != 1 {
		t.Errorf("Expected toggle to reset page, got %d", v.Page)
	}
	if v.ActiveFilters != 1 || v.Matching != 30 {
		t.Errorf("Unexpected view %d filters %d matching", v.ActiveFilters, v.Matching)
	}

	s.SetPage(2)
	s.ClearFilters()
	if v := s.View(); v.Page != 1 || v.ActiveFilters != 0 {
		t.Errorf("Expected clear to reset page and filters, got page %d filters %d", v.Page, v.ActiveFilters)
	}
}

func TestSessionPaging(t *testing.T) {
	s := NewSession(generatedCatalog(t, 25), Options{PageSize: 10})
	defer s.Close()

	cases := []struct {
		name string
		move func() View
		want int
	}{
		{"prev at start", s.Prev, 1},
		{"next", s.Next, 2},
		{"next again", s.Next, 3},
		{"next past end", s.Next, 3},
		{"set below range", func() View { return s.SetPage(-4) }, 1},
		{"set above range", func() View { return s.SetPage(99) }, 3},
	}
	for _, tc := range cases {
		if v := tc.move(); v.Page != tc.want {
			t.Errorf("%s: expected page %d, got %d", tc.name, tc.want, v.Page)
		}
	}
	if v := s.View(); v.Showing != 5 {
		t.Errorf("Expected 5 items on the last page, got %d", v.Showing)
	}
}

func TestSessionFilters(t *testing.T) {
	s := NewSession(loadCatalog(t), Options{})
	defer s.Close()

	s.ToggleCategory("create")
	s.TogglePricing(string(types.PricingSubscription))
	if diff := cmp.Diff([]string{"copy-ai", "surfer"}, slugs(s.View().Items)); diff != "" {
		t.Errorf("unexpected items (-want +got):\n%s", diff)
	}
	s.ToggleUseCase("seo")
	if diff := cmp.Diff([]string{"surfer"}, slugs(s.View().Items)); diff != "" {
		t.Errorf("unexpected items (-want +got):\n%s", diff)
	}
	s.ToggleCompanyType(string(types.CompanyIndie))
	v := s.View()
	if len(v.Items) != 0 || v.TotalPages != 1 || v.Page != 1 {
		t.Errorf("Expected empty single page, got %d items page %d/%d", len(v.Items), v.Page, v.TotalPages)
	}
	// counts stay the full catalog counts
	if v.Counts.Categories["create"] != 2 {
		t.Errorf("Expected unfiltered counts, got %v", v.Counts.Categories)
	}
}

func TestSessionDebouncedSearch(t *testing.T) {
	defer goleak.VerifyNone(t)

	mock := clock.NewMock()
	s := NewSession(loadCatalog(t), Options{QuietPeriod: 300 * time.Millisecond, Clock: mock})
	defer s.Close()

	views := make(chan View, 4)
	s.OnChange(func(v View) { views <- v })

	s.SetSearchInput("w")
	mock.Add(100 * time.Millisecond)
	s.SetSearchInput("WHALE ")
	if v := s.View(); v.Query.Search != "" || v.SearchInput != "WHALE " {
		t.Errorf("Expected query to wait for the quiet period, got %q input %q", v.Query.Search, v.SearchInput)
	}
	mock.Add(300 * time.Millisecond)

	select {
	case v := <-views:
		if v.Query.Search != "WHALE " {
			t.Errorf("Expected latest input to be committed, got %q", v.Query.Search)
		}
		if diff := cmp.Diff([]string{"triple-whale"}, slugs(v.Items)); diff != "" {
			t.Errorf("unexpected items (-want +got):\n%s", diff)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected search to be committed")
	}
	select {
	case v := <-views:
		t.Errorf("Expected a single commit, got another %+v", v.Query)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSessionCommitAndClearSearch(t *testing.T) {
	mock := clock.NewMock()
	s := NewSession(loadCatalog(t), Options{Clock: mock})
	defer s.Close()

	s.SetSearchInput("seo")
	s.CommitSearch()
	if v := s.View(); v.Query.Search != "seo" || v.Matching != 1 {
		t.Errorf("Expected immediate commit, got %q with %d matches", v.Query.Search, v.Matching)
	}

	s.SetSearchInput("something else")
	s.ClearSearch()
	mock.Add(time.Second)
	v := s.View()
	if v.Query.Search != "" || v.SearchInput != "" || v.Matching != 4 {
		t.Errorf("Expected cleared search, got %q input %q matching %d", v.Query.Search, v.SearchInput, v.Matching)
	}
}

func TestSessionFromQuery(t *testing.T) {
	q := types.NewQuery()
	q.ToggleCategory("measure")
	s := NewSessionFromQuery(loadCatalog(t), q, Options{})
	defer s.Close()

	q.ToggleCategory("create")
	if diff := cmp.Diff([]string{"triple-whale"}, slugs(s.View().Items)); diff != "" {
		t.Errorf("unexpected items (-want +got):\n%s", diff)
	}
	if got := s.Query().Categories; len(got) != 1 {
		t.Errorf("Expected session to own a copy of the query, got %v", got)
	}
}

func TestPagingNotifiesListeners(t *testing.T) {
	s := NewSession(generatedCatalog(t, 30), Options{PageSize: 12})
	defer s.Close()

	var pages []int
	s.OnChange(func(v View) { pages = append(pages, v.Page) })

	s.Next()
	s.Next()
	s.Next()
	s.Prev()
	s.SetPage(99)
	if diff := cmp.Diff([]int{2, 3, 3, 2, 3}, pages); diff != "" {
		t.Errorf("unexpected notified pages (-want +got):\n%s", diff)
	}
}
