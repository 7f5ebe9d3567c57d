package seo

import (
	"net/http"
	"strings"
)

const (
	DefaultTitle       = "GenAI Marketing Landscape"
	DefaultDescription = "Explore the GenAI Marketing Landscape - your comprehensive directory of AI-powered marketing tools for planning, creating, activating, and measuring campaigns."
	DefaultHomepage    = "https://tools.hypd.ai"
)

// Site holds the branding used in generated documents.
type Site struct {
	Title       string
	Description string
	// Homepage is printed in the robots.txt header. It does not affect URLs,
	// those are derived per request.
	Homepage string
}

func DefaultSite() Site {
	return Site{
		Title:       DefaultTitle,
		Description: DefaultDescription,
		Homepage:    DefaultHomepage,
	}
}

func (s Site) withDefaults() Site {
	if s.Title == "" {
		s.Title = DefaultTitle
	}
	if s.Description == "" {
		s.Description = DefaultDescription
	}
	return s
}

// BaseURL derives scheme://host for absolute links from the request,
// preferring proxy headers.
func BaseURL(r *http.Request) string {
	protocol := firstHeaderValue(r.Header.Get("X-Forwarded-Proto"))
	if protocol == "" {
		if r.TLS != nil {
			protocol = "https"
		} else if r.URL != nil && r.URL.Scheme != "" {
			protocol = r.URL.Scheme
		} else if r.Host != "" {
			protocol = "http"
		} else {
			protocol = "https"
		}
	}
	host := firstHeaderValue(r.Header.Get("X-Forwarded-Host"))
	if host == "" {
		host = r.Host
	}
	if host == "" {
		host = "localhost"
	}
	return protocol + "://" + host
}

// proxies may append to the header, the client facing value comes first
func firstHeaderValue(v string) string {
	if idx := strings.IndexByte(v, ','); idx >= 0 {
		v = v[:idx]
	}
	return strings.TrimSpace(v)
}
