package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ionut85/ai-marketing-tools-directory/pkg/browse"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/catalog"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/common"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/common/jsoncompat"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/facet"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/seo"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/types"
	log "github.com/sirupsen/logrus"
)

const RelatedLimit = 4

// document serves a text document through the document cache. Documents are
// keyed by base url and date since both end up in the output.
func (ws *WebServer) document(w http.ResponseWriter, r *http.Request, name, contentType string, render func(cat *catalog.Catalog, base string) ([]byte, error)) {
	cat := ws.Catalog()
	base := ws.base(r)
	key := fmt.Sprintf("directory:%s:%d:%s:%s", name, ws.generation.Load(), ws.clock.Now().UTC().Format(time.DateOnly), base)

	data, hit, err := ws.documents.Handle(r.Context(), key, func() ([]byte, error) {
		return render(cat, base)
	})
	if err != nil {
		log.WithError(err).WithField("document", name).Error("failed to render document")
		http.Error(w, "failed to render document", http.StatusInternalServerError)
		return
	}
	if hit {
		cacheHits.Inc()
	} else {
		cacheMisses.Inc()
	}
	common.TrackPageView(ws.tracking, "", r)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (ws *WebServer) Sitemap(w http.ResponseWriter, r *http.Request) {
	ws.document(w, r, "sitemap", "application/xml", func(cat *catalog.Catalog, base string) ([]byte, error) {
		return seo.Sitemap(cat, base, ws.clock.Now())
	})
}

func (ws *WebServer) Robots(w http.ResponseWriter, r *http.Request) {
	ws.document(w, r, "robots", "text/plain", func(_ *catalog.Catalog, base string) ([]byte, error) {
		return []byte(seo.Robots(ws.site, base)), nil
	})
}

func (ws *WebServer) LLMs(w http.ResponseWriter, r *http.Request) {
	ws.document(w, r, "llms", "text/plain; charset=utf-8", func(cat *catalog.Catalog, base string) ([]byte, error) {
		return []byte(seo.LLMs(cat, base, ws.site)), nil
	})
}

type CatalogResponse struct {
	Items              []types.Item                         `json:"items"`
	Categories         []types.Category                     `json:"categories"`
	UseCases           []types.UseCase                      `json:"useCases"`
	Descriptions       map[string]types.CategoryDescription `json:"descriptions"`
	Counts             facet.Counts                         `json:"counts"`
	PricingOptions     []types.Option                       `json:"pricingOptions"`
	CompanyTypeOptions []types.Option                       `json:"companyTypeOptions"`
	Settings           ClientSettings                       `json:"settings"`
}

func (ws *WebServer) GetCatalog(w http.ResponseWriter, r *http.Request, sessionId string, enc jsoncompat.Encoder) error {
	cat := ws.Catalog()
	w.WriteHeader(http.StatusOK)
	return enc.Encode(CatalogResponse{
		Items:              cat.Items(),
		Categories:         cat.Categories(),
		UseCases:           cat.UseCases(),
		Descriptions:       cat.Descriptions(),
		Counts:             cat.Counts(),
		PricingOptions:     types.PricingOptions,
		CompanyTypeOptions: types.CompanyTypeOptions,
		Settings:           ws.settings,
	})
}

type FacetsResponse struct {
	Counts      facet.Counts     `json:"counts"`
	Categories  []types.Category `json:"categories"`
	UseCases    []types.UseCase  `json:"useCases"`
	Pricing     []types.Option   `json:"pricing"`
	CompanyType []types.Option   `json:"companyType"`
	Total       int              `json:"total"`
}

func (ws *WebServer) GetFacets(w http.ResponseWriter, r *http.Request, sessionId string, enc jsoncompat.Encoder) error {
	cat := ws.Catalog()
	w.WriteHeader(http.StatusOK)
	return enc.Encode(FacetsResponse{
		Counts:      cat.Counts(),
		Categories:  cat.Categories(),
		UseCases:    cat.UseCases(),
		Pricing:     types.PricingOptions,
		CompanyType: types.CompanyTypeOptions,
		Total:       cat.Len(),
	})
}

func (ws *WebServer) GetLandscape(w http.ResponseWriter, r *http.Request, sessionId string, enc jsoncompat.Encoder) error {
	landscape := ws.Catalog().Landscape()
	w.WriteHeader(http.StatusOK)
	return enc.Encode(landscape)
}

type DirectoryResponse struct {
	Query *types.Query `json:"query"`
	Meta  seo.Meta     `json:"meta"`
}

// GetDirectory echoes the sanitized deep link query with the home page meta.
func (ws *WebServer) GetDirectory(w http.ResponseWriter, r *http.Request, sessionId string, enc jsoncompat.Encoder) error {
	query, err := types.GetQueryFromRequest(r)
	if err != nil {
		query = types.NewQuery()
	}
	w.WriteHeader(http.StatusOK)
	return enc.Encode(DirectoryResponse{
		Query: query,
		Meta:  seo.DirectoryMeta(ws.site, ws.base(r)),
	})
}

type ToolResponse struct {
	Item        *types.Item         `json:"item"`
	Category    *types.Category     `json:"category,omitempty"`
	Subcategory *types.Subcategory  `json:"subcategory,omitempty"`
	Fallback    *types.LogoFallback `json:"fallback,omitempty"`
	Related     []types.Item        `json:"related"`
	Meta        seo.Meta            `json:"meta"`
}

func (ws *WebServer) GetTool(w http.ResponseWriter, r *http.Request, sessionId string, enc jsoncompat.Encoder) error {
	cat := ws.Catalog()
	slug := r.PathValue("slug")
	item, ok := cat.ItemBySlug(slug)
	if !ok {
		return fmt.Errorf("tool %q %w", slug, common.ErrNotFound)
	}
	res := ToolResponse{
		Item:    item,
		Related: cat.Related(item, RelatedLimit),
	}
	if category, ok := cat.Category(item.Category); ok {
		res.Category = category
		if sub, ok := category.Subcategory(item.Subcategory); ok {
			res.Subcategory = sub
		}
	}
	if item.LogoURL() == "" {
		fallback := types.FallbackFor(item.Name)
		res.Fallback = &fallback
	}
	res.Meta = seo.ItemMeta(ws.site, ws.base(r), item, res.Category)
	w.WriteHeader(http.StatusOK)
	return enc.Encode(res)
}

type CategoryResponse struct {
	*browse.Listing
	Meta seo.Meta `json:"meta"`
}

func (ws *WebServer) GetCategory(w http.ResponseWriter, r *http.Request, sessionId string, enc jsoncompat.Encoder) error {
	cat := ws.Catalog()
	id := r.PathValue("id")
	pageRequest, err := types.GetPageFromRequest(r)
	if err != nil {
		pageRequest = &types.PageRequest{Page: 1}
	}
	listing, ok := browse.CategoryListing(cat, id, pageRequest.Page)
	if !ok {
		return fmt.Errorf("category %q %w", id, common.ErrNotFound)
	}
	meta := seo.CategoryMeta(ws.site, ws.base(r), &listing.Category, listing.Description, cat.ItemsInCategory(id))
	w.WriteHeader(http.StatusOK)
	return enc.Encode(CategoryResponse{Listing: listing, Meta: meta})
}
