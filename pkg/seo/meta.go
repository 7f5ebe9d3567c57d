package seo

import (
	"github.com/ionut85/ai-marketing-tools-directory/pkg/types"
)

const (
	schemaContext     = "https://schema.org"
	jsonLdListLimit   = 10
	descriptionLength = 160
)

// Meta is the head metadata of a rendered page.
type Meta struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
	Canonical   string   `json:"canonical"`
	OgType      string   `json:"ogType"`
	OgImage     string   `json:"ogImage,omitempty"`
	JsonLd      any      `json:"jsonLd,omitempty"`
}

type Offer struct {
	Type          string `json:"@type"`
	Price         string `json:"price,omitempty"`
	PriceCurrency string `json:"priceCurrency"`
	Availability  string `json:"availability"`
}

type SoftwareApplication struct {
	Context             string `json:"@context"`
	Type                string `json:"@type"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	ApplicationCategory string `json:"applicationCategory"`
	OperatingSystem     string `json:"operatingSystem"`
	URL                 string `json:"url"`
	Image               string `json:"image,omitempty"`
	Offers              Offer  `json:"offers"`
}

type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	URL      string `json:"url"`
}

type ItemList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	NumberOfItems   int        `json:"numberOfItems"`
	ItemListElement []ListItem `json:"itemListElement"`
}

type SearchAction struct {
	Type       string `json:"@type"`
	Target     string `json:"target"`
	QueryInput string `json:"query-input"`
}

type WebSite struct {
	Context         string       `json:"@context"`
	Type            string       `json:"@type"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	URL             string       `json:"url"`
	PotentialAction SearchAction `json:"potentialAction"`
}

func fullTitle(site Site, title string) string {
	if title == "" {
		return site.Title
	}
	return title + " | " + site.Title
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// ItemMeta describes a tool detail page. category may be nil.
func ItemMeta(site Site, base string, item *types.Item, category *types.Category) Meta {
	site = site.withDefaults()
	categoryName := "AI Marketing Tool"
	keywords := []string{item.Name}
	keywords = append(keywords, item.UseCases...)
	if category != nil {
		categoryName = category.Name
		keywords = append(keywords, category.Name)
	}
	keywords = append(keywords, "AI marketing tool")

	description := item.Tagline
	if description == "" {
		description = truncate(item.Description, descriptionLength)
	}

	offer := Offer{
		Type:          "Offer",
		PriceCurrency: "USD",
		Availability:  "https://schema.org/InStock",
	}
	if item.Pricing == types.PricingFree {
		offer.Price = "0"
	}

	return Meta{
		Title:       fullTitle(site, item.Name+" - "+categoryName),
		Description: description,
		Keywords:    keywords,
		Canonical:   base + "/tools/" + item.Slug,
		OgType:      "product",
		OgImage:     item.LogoURL(),
		JsonLd: SoftwareApplication{
			Context:             schemaContext,
			Type:                "SoftwareApplication",
			Name:                item.Name,
			Description:         item.Description,
			ApplicationCategory: "BusinessApplication",
			OperatingSystem:     "Web",
			URL:                 item.Website,
			Image:               item.LogoURL(),
			Offers:              offer,
		},
	}
}

// CategoryMeta describes a category page. The JSON-LD list holds at most
// the first ten items.
func CategoryMeta(site Site, base string, category *types.Category, desc types.CategoryDescription, items []types.Item) Meta {
	site = site.withDefaults()
	listed := items[:min(len(items), jsonLdListLimit)]
	elements := make([]ListItem, len(listed))
	for i, item := range listed {
		elements[i] = ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     item.Name,
			URL:      base + "/tools/" + item.Slug,
		}
	}
	title := desc.Title
	if title == "" {
		title = category.Name
	}
	return Meta{
		Title:       fullTitle(site, title),
		Description: desc.Description,
		Keywords:    desc.Keywords,
		Canonical:   base + "/category/" + category.Id,
		OgType:      "website",
		JsonLd: ItemList{
			Context:         schemaContext,
			Type:            "ItemList",
			Name:            title + " - AI Marketing Tools",
			Description:     desc.Description,
			NumberOfItems:   len(elements),
			ItemListElement: elements,
		},
	}
}

func DirectoryMeta(site Site, base string) Meta {
	site = site.withDefaults()
	return Meta{
		Title:       fullTitle(site, ""),
		Description: site.Description,
		Canonical:   base + "/",
		OgType:      "website",
		JsonLd: WebSite{
			Context:     schemaContext,
			Type:        "WebSite",
			Name:        site.Title,
			Description: site.Description,
			URL:         base,
			PotentialAction: SearchAction{
				Type:       "SearchAction",
				Target:     base + "/?search={search_term_string}",
				QueryInput: "required name=search_term_string",
			},
		},
	}
}
