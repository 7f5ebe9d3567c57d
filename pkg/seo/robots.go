package seo

import "fmt"

func Robots(site Site, base string) string {
	site = site.withDefaults()
	header := "# " + site.Title + "\n"
	if site.Homepage != "" {
		header += "# " + site.Homepage + "\n"
	}
	return fmt.Sprintf(`%s
User-agent: *
Allow: /

# Sitemaps
Sitemap: %s/sitemap.xml

# LLMs.txt for AI crawlers
# See: %s/llms.txt
`, header, base, base)
}
