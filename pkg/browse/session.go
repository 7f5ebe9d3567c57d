package browse

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/catalog"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/facet"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/index"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/search"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/types"
)

const DefaultPageSize = 12

type Options struct {
	PageSize    int
	QuietPeriod time.Duration
	Clock       clock.Clock
}

// View is everything needed to render the directory listing.
type View struct {
	Query         *types.Query `json:"query"`
	Items         []types.Item `json:"items"`
	Page          int          `json:"page"`
	PageSize      int          `json:"pageSize"`
	TotalPages    int          `json:"totalPages"`
	Showing       int          `json:"showing"`
	Matching      int          `json:"matching"`
	Total         int          `json:"total"`
	ActiveFilters int          `json:"activeFilters"`
	Counts        facet.Counts `json:"counts"`
	SearchInput   string       `json:"searchInput"`
}

// Session owns the query and page of one browsing client. Every change to
// the query sends the client back to page 1. Search input is debounced and
// only becomes part of the query once typing pauses.
type Session struct {
	mu        sync.Mutex
	catalog   *catalog.Catalog
	query     *types.Query
	page      int
	pageSize  int
	input     string
	matching  []types.Item
	debouncer *search.Debouncer
	listeners []func(View)
}

func NewSession(cat *catalog.Catalog, opts Options) *Session {
	if opts.PageSize < 1 {
		opts.PageSize = DefaultPageSize
	}
	s := &Session{
		catalog:  cat,
		query:    types.NewQuery(),
		page:     1,
		pageSize: opts.PageSize,
	}
	s.debouncer = search.NewDebouncer(opts.QuietPeriod, opts.Clock, s.commitSearch)
	s.matching = index.Filter(cat.Items(), s.query)
	return s
}

// NewSessionFromQuery starts a session from a deep link.
func NewSessionFromQuery(cat *catalog.Catalog, q *types.Query, opts Options) *Session {
	s := NewSession(cat, opts)
	s.mu.Lock()
	s.query = q.Clone()
	s.input = q.Search
	s.matching = index.Filter(cat.Items(), s.query)
	s.mu.Unlock()
	return s
}

// OnChange registers fn to be called with the new view after every
// recomputation, including debounced search commits.
func (s *Session) OnChange(fn func(View)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// update applies fn to the query, refilters and resets to page 1.
func (s *Session) update(fn func(q *types.Query)) {
	s.mu.Lock()
	fn(s.query)
	s.matching = index.Filter(s.catalog.Items(), s.query)
	s.page = 1
	s.notify()
}

// notify releases mu and hands the current view to the listeners.
func (s *Session) notify() View {
	view := s.viewLocked()
	listeners := s.listeners
	s.mu.Unlock()
	for _, l := range listeners {
		l(view)
	}
	return view
}

func (s *Session) commitSearch(term string) {
	s.update(func(q *types.Query) { q.SetSearch(term) })
}

// SetSearchInput records a keystroke. The query follows after the quiet period.
func (s *Session) SetSearchInput(raw string) {
	s.mu.Lock()
	s.input = raw
	s.mu.Unlock()
	s.debouncer.Push(raw)
}

// CommitSearch skips the quiet period, e.g. when the user presses enter.
func (s *Session) CommitSearch() {
	s.debouncer.Flush()
}

func (s *Session) ClearSearch() {
	s.debouncer.Cancel()
	s.mu.Lock()
	s.input = ""
	s.mu.Unlock()
	s.update(func(q *types.Query) { q.SetSearch("") })
}

func (s *Session) ToggleCategory(id string) {
	s.update(func(q *types.Query) { q.ToggleCategory(id) })
}

func (s *Session) ToggleUseCase(id string) {
	s.update(func(q *types.Query) { q.ToggleUseCase(id) })
}

func (s *Session) TogglePricing(id string) {
	s.update(func(q *types.Query) { q.TogglePricing(id) })
}

func (s *Session) ToggleCompanyType(id string) {
	s.update(func(q *types.Query) { q.ToggleCompanyType(id) })
}

func (s *Session) ClearFilters() {
	s.update(func(q *types.Query) { q.ClearFacets() })
}

func (s *Session) totalPagesLocked() int {
	return index.TotalPages(len(s.matching), s.pageSize)
}

func (s *Session) setPage(fn func(page int) int) View {
	s.mu.Lock()
	s.page = index.ClampPage(fn(s.page), s.totalPagesLocked())
	return s.notify()
}

// SetPage moves to page n, clamped to the available pages.
func (s *Session) SetPage(n int) View {
	return s.setPage(func(int) int { return n })
}

func (s *Session) Next() View {
	return s.setPage(func(page int) int { return page + 1 })
}

func (s *Session) Prev() View {
	return s.setPage(func(page int) int { return page - 1 })
}

func (s *Session) Query() *types.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query.Clone()
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	items, totalPages := index.Paginate(s.matching, s.pageSize, s.page)
	return View{
		Query:         s.query.Clone(),
		Items:         items,
		Page:          s.page,
		PageSize:      s.pageSize,
		TotalPages:    totalPages,
		Showing:       len(items),
		Matching:      len(s.matching),
		Total:         s.catalog.Len(),
		ActiveFilters: s.query.ActiveFilterCount(),
		Counts:        s.catalog.Counts(),
		SearchInput:   s.input,
	}
}

// Close stops the pending search commit, if any.
func (s *Session) Close() {
	s.debouncer.Stop()
}
