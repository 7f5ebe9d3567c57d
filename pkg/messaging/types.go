package messaging

type ChangeTopic string

const (
	// PageViews carries session and page view events.
	PageViews ChangeTopic = "page_views"
	// CatalogChanged tells running servers to reload the catalog source.
	CatalogChanged ChangeTopic = "catalog_changed"
)

// CatalogChange is the body of a CatalogChanged message. An empty Source
// means reload from the configured location.
type CatalogChange struct {
	Source string `json:"source,omitempty"`
	Reason string `json:"reason,omitempty"`
}
