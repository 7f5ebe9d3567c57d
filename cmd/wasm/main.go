//go:build js && wasm

package main

import (
	"net/url"
	"sync"
	"syscall/js"
	"time"

	"github.com/ionut85/ai-marketing-tools-directory/pkg/browse"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/catalog"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/common/jsoncompat"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/types"
)

// payload mirrors the /api/catalog response.
type payload struct {
	Items        []types.Item                         `json:"items"`
	Categories   []types.Category                     `json:"categories"`
	UseCases     []types.UseCase                      `json:"useCases"`
	Descriptions map[string]types.CategoryDescription `json:"descriptions"`
	Settings     struct {
		PageSize      int   `json:"pageSize"`
		QuietPeriodMs int64 `json:"quietPeriodMs"`
	} `json:"settings"`
}

type bridge struct {
	mu        sync.Mutex
	catalog   *catalog.Catalog
	opts      browse.Options
	session   *browse.Session
	listeners []js.Value
}

func encode(v any) js.Value {
	data, err := jsoncompat.Marshal(v)
	if err != nil {
		return errorValue(err)
	}
	return js.ValueOf(string(data))
}

func errorValue(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}

func (b *bridge) current() *browse.Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session
}

func (b *bridge) replace(s *browse.Session) {
	s.OnChange(func(v browse.View) {
		b.mu.Lock()
		listeners := append([]js.Value(nil), b.listeners...)
		b.mu.Unlock()
		data := encode(v)
		for _, fn := range listeners {
			fn.Invoke(data)
		}
	})
	b.mu.Lock()
	old := b.session
	b.session = s
	b.mu.Unlock()
	if old != nil {
		old.Close()
	}
}

// load(json, [queryString]) builds the catalog and starts a session.
func (b *bridge) load(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.Global().Get("Error").New("load expects the catalog json")
	}
	var p payload
	if err := jsoncompat.Unmarshal([]byte(args[0].String()), &p); err != nil {
		return errorValue(err)
	}
	cat, err := catalog.New(p.Items, p.Categories, p.UseCases, p.Descriptions)
	if err != nil {
		return errorValue(err)
	}
	opts := browse.Options{
		PageSize:    p.Settings.PageSize,
		QuietPeriod: time.Duration(p.Settings.QuietPeriodMs) * time.Millisecond,
	}
	b.mu.Lock()
	b.catalog = cat
	b.opts = opts
	b.mu.Unlock()

	query := types.NewQuery()
	if len(args) > 1 && args[1].Type() == js.TypeString {
		if values, err := url.ParseQuery(args[1].String()); err == nil {
			if q, err := types.QueryFromValues(values); err == nil {
				query = q
			}
		}
	}
	s := browse.NewSessionFromQuery(cat, query, opts)
	b.replace(s)
	return encode(s.View())
}

func (b *bridge) withSession(fn func(s *browse.Session) any) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) any {
		s := b.current()
		if s == nil {
			return js.Global().Get("Error").New("catalog not loaded")
		}
		return fn(s)
	})
}

func stringArg(args []js.Value) string {
	if len(args) == 0 {
		return ""
	}
	return args[0].String()
}

func (b *bridge) toggle(fn func(s *browse.Session, id string)) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) any {
		s := b.current()
		if s == nil {
			return js.Global().Get("Error").New("catalog not loaded")
		}
		fn(s, stringArg(args))
		return encode(s.View())
	})
}

func (b *bridge) exports() map[string]any {
	return map[string]any{
		"load": js.FuncOf(b.load),
		"onChange": js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) > 0 && args[0].Type() == js.TypeFunction {
				b.mu.Lock()
				b.listeners = append(b.listeners, args[0])
				b.mu.Unlock()
			}
			return nil
		}),
		"toggleCategory":    b.toggle((*browse.Session).ToggleCategory),
		"toggleUseCase":     b.toggle((*browse.Session).ToggleUseCase),
		"togglePricing":     b.toggle((*browse.Session).TogglePricing),
		"toggleCompanyType": b.toggle((*browse.Session).ToggleCompanyType),
		"clearFilters": b.withSession(func(s *browse.Session) any {
			s.ClearFilters()
			return encode(s.View())
		}),
		"setSearchInput": js.FuncOf(func(this js.Value, args []js.Value) any {
			if s := b.current(); s != nil {
				s.SetSearchInput(stringArg(args))
			}
			return nil
		}),
		"commitSearch": b.withSession(func(s *browse.Session) any {
			s.CommitSearch()
			return encode(s.View())
		}),
		"clearSearch": b.withSession(func(s *browse.Session) any {
			s.ClearSearch()
			return encode(s.View())
		}),
		"setPage": js.FuncOf(func(this js.Value, args []js.Value) any {
			s := b.current()
			if s == nil || len(args) == 0 {
				return js.Global().Get("Error").New("setPage expects a page")
			}
			return encode(s.SetPage(args[0].Int()))
		}),
		"next": b.withSession(func(s *browse.Session) any {
			return encode(s.Next())
		}),
		"prev": b.withSession(func(s *browse.Session) any {
			return encode(s.Prev())
		}),
		"view": b.withSession(func(s *browse.Session) any {
			return encode(s.View())
		}),
		"queryString": b.withSession(func(s *browse.Session) any {
			return s.Query().Values().Encode()
		}),
		"category": js.FuncOf(func(this js.Value, args []js.Value) any {
			b.mu.Lock()
			cat := b.catalog
			b.mu.Unlock()
			if cat == nil || len(args) == 0 {
				return js.Null()
			}
			page := 1
			if len(args) > 1 && args[1].Type() == js.TypeNumber {
				page = args[1].Int()
			}
			listing, ok := browse.CategoryListing(cat, args[0].String(), page)
			if !ok {
				return js.Null()
			}
			return encode(listing)
		}),
	}
}

func main() {
	b := &bridge{}
	js.Global().Set("directory", js.ValueOf(b.exports()))
	select {}
}
