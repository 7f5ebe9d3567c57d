package seo

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/ionut85/ai-marketing-tools-directory/pkg/catalog"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type ChangeFreq string

const (
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
)

type SitemapURL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod"`
	ChangeFreq ChangeFreq `xml:"changefreq"`
	Priority   string     `xml:"priority"`
}

type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

func sitemapURL(loc, lastMod string, freq ChangeFreq, priority float64) SitemapURL {
	return SitemapURL{
		Loc:        loc,
		LastMod:    lastMod,
		ChangeFreq: freq,
		Priority:   fmt.Sprintf("%.1f", priority),
	}
}

// SitemapURLs lists the fixed pages followed by every category and item, in
// the order of the catalog documents. lastmod is the UTC date of today.
func SitemapURLs(cat *catalog.Catalog, base string, today time.Time) URLSet {
	lastMod := today.UTC().Format(time.DateOnly)
	urls := []SitemapURL{
		sitemapURL(base+"/", lastMod, Daily, 1.0),
		sitemapURL(base+"/landscape", lastMod, Weekly, 0.8),
		sitemapURL(base+"/about", lastMod, Monthly, 0.5),
	}
	for _, c := range cat.CategoriesAsLoaded() {
		urls = append(urls, sitemapURL(base+"/category/"+c.Id, lastMod, Weekly, 0.9))
	}
	for _, item := range cat.Items() {
		urls = append(urls, sitemapURL(base+"/tools/"+item.Slug, lastMod, Weekly, 0.7))
	}
	return URLSet{Xmlns: sitemapNamespace, URLs: urls}
}

func Sitemap(cat *catalog.Catalog, base string, today time.Time) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(SitemapURLs(cat, base, today)); err != nil {
		return nil, fmt.Errorf("encoding sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
