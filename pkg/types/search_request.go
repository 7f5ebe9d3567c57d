package types

import (
	"net/http"
	"net/url"

	"github.com/gorilla/schema"
)

var decoder = schema.NewDecoder()
var encoder = schema.NewEncoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// QueryFromValues reads a query from url values like
// ?category=create&pricing=free&search=ai. "q" is accepted for search.
func QueryFromValues(values url.Values) (*Query, error) {
	q := NewQuery()
	if err := decoder.Decode(q, values); err != nil {
		return q, err
	}
	if q.Search == "" {
		q.Search = values.Get("q")
	}
	q.Sanitize()
	return q, nil
}

func GetQueryFromRequest(r *http.Request) (*Query, error) {
	return QueryFromValues(r.URL.Query())
}

// Values encodes the query for deep links, omitting empty facets.
func (q *Query) Values() url.Values {
	values := url.Values{}
	if err := encoder.Encode(q, values); err != nil {
		return url.Values{}
	}
	return values
}

type PageRequest struct {
	Page int `schema:"page,default:1"`
}

func clamp[T int | float64](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func (p *PageRequest) Sanitize() {
	p.Page = clamp(p.Page, 1, 10000)
}

func GetPageFromRequest(r *http.Request) (*PageRequest, error) {
	pr := &PageRequest{Page: 1}
	err := decoder.Decode(pr, r.URL.Query())
	pr.Sanitize()
	return pr, err
}
