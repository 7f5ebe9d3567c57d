package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/catalog"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/common"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/seo"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/types"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

const DefaultCacheTTL = 10 * time.Minute

type Options struct {
	Site seo.Site
	// BaseURL overrides the per request base url when set.
	BaseURL  string
	Cache    DocumentCache
	CacheTTL time.Duration
	Tracking types.Tracking
	Clock    clock.Clock
	Settings ClientSettings
}

// ClientSettings are handed to browsing clients with the catalog.
type ClientSettings struct {
	PageSize      int   `json:"pageSize"`
	QuietPeriodMs int64 `json:"quietPeriodMs"`
}

type WebServer struct {
	catalog    atomic.Pointer[catalog.Catalog]
	generation atomic.Uint64
	site       seo.Site
	baseURL    string
	documents  *CacheHelper
	tracking   types.Tracking
	clock      clock.Clock
	settings   ClientSettings
}

func NewWebServer(cat *catalog.Catalog, opts Options) *WebServer {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.Cache == nil {
		opts.Cache = NewMemoryCache(opts.Clock)
	}
	documents := NewCacheHelper(opts.Cache, opts.CacheTTL)
	documents.OnError = func(key string, err error) {
		log.WithError(err).WithField("key", key).Warn("document cache failed")
	}
	ws := &WebServer{
		site:      opts.Site,
		baseURL:   opts.BaseURL,
		documents: documents,
		tracking:  opts.Tracking,
		clock:     opts.Clock,
		settings:  opts.Settings,
	}
	ws.SetCatalog(cat)
	return ws
}

func (ws *WebServer) Catalog() *catalog.Catalog {
	return ws.catalog.Load()
}

// SetCatalog swaps the served catalog. Cached documents of the previous
// catalog are no longer used.
func (ws *WebServer) SetCatalog(cat *catalog.Catalog) {
	ws.catalog.Store(cat)
	ws.generation.Add(1)
	catalogItems.Set(float64(cat.Len()))
}

// Reload loads the catalog from src and swaps it in. The current catalog
// stays in place when loading fails.
func (ws *WebServer) Reload(ctx context.Context, src catalog.Source) error {
	cat, err := catalog.Load(ctx, src)
	if err != nil {
		return fmt.Errorf("reloading catalog: %w", err)
	}
	ws.SetCatalog(cat)
	catalogReloads.Inc()
	return nil
}

func (ws *WebServer) base(r *http.Request) string {
	if ws.baseURL != "" {
		return ws.baseURL
	}
	return seo.BaseURL(r)
}

func (ws *WebServer) route(mux *http.ServeMux, pattern, name string, handler http.HandlerFunc) {
	counter := requestsTotal.WithLabelValues(name)
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		counter.Inc()
		handler(w, r)
	})
}

// api registers a read only json route. Other methods than GET, HEAD and
// the OPTIONS preflight get 405 from the mux.
func (ws *WebServer) api(mux *http.ServeMux, path, name string, fn common.JsonHandlerFunc) {
	handler := common.JsonHandler(ws.tracking, fn)
	ws.route(mux, "GET "+path, name, handler)
	mux.HandleFunc("OPTIONS "+path, common.RespondToOptions)
}

// Handler returns the public routes.
func (ws *WebServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	ws.route(mux, "GET /sitemap.xml", "sitemap", ws.Sitemap)
	ws.route(mux, "GET /robots.txt", "robots", ws.Robots)
	ws.route(mux, "GET /llms.txt", "llms", ws.LLMs)

	ws.api(mux, "/api/catalog", "catalog", ws.GetCatalog)
	ws.api(mux, "/api/facets", "facets", ws.GetFacets)
	ws.api(mux, "/api/landscape", "landscape", ws.GetLandscape)
	ws.api(mux, "/api/directory", "directory", ws.GetDirectory)
	ws.api(mux, "/api/tools/{slug}", "tool", ws.GetTool)
	ws.api(mux, "/api/categories/{id}", "category", ws.GetCategory)
	return mux
}

// DebugHandler serves metrics and, when enabled, the pprof endpoints.
func DebugHandler(enableProfiling bool) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if enableProfiling {
		mux.HandleFunc("/debug/pprof/", pprof.Index)
		mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
	return mux
}
