package seo

import (
	"fmt"
	"strings"

	"github.com/ionut85/ai-marketing-tools-directory/pkg/catalog"
)

const (
	FeaturedPerCategory = 3

	llmsSummary = "A comprehensive directory of GenAI marketing tools helping marketers discover solutions across Plan, Create, Activate, and Measure categories."
	llmsIntro   = "This directory helps marketing professionals find and evaluate AI tools across four main categories. Each tool listing includes pricing information, use cases, and direct links to the tool's website."
)

// LLMs renders the llms.txt overview for AI crawlers.
func LLMs(cat *catalog.Catalog, base string, site Site) string {
	site = site.withDefaults()
	categories := cat.CategoriesAsLoaded()
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n> %s\n\n%s\n\n", site.Title, llmsSummary, llmsIntro)

	b.WriteString("## Main Pages\n")
	fmt.Fprintf(&b, "- [Home](%s/): Browse and search all %d AI marketing tools\n", base, cat.Len())
	fmt.Fprintf(&b, "- [Landscape View](%s/landscape): Visual overview of tools organized by category\n", base)
	fmt.Fprintf(&b, "- [About](%s/about): Learn more about this directory\n", base)

	b.WriteString("\n## Categories\n")
	for _, c := range categories {
		items := cat.ItemsInCategory(c.Id)
		title := c.Name
		summary := fmt.Sprintf("%d tools", len(items))
		if desc, ok := cat.Description(c.Id); ok {
			if desc.Title != "" {
				title = desc.Title
			}
			if desc.Description != "" {
				summary = desc.Description
			}
		}
		fmt.Fprintf(&b, "\n### %s\n- [%s](%s/category/%s): %s\n", c.Name, title, base, c.Id, summary)
		for _, sub := range c.Subcategories {
			if n := len(cat.ItemsInSubcategory(c.Id, sub.Id)); n > 0 {
				fmt.Fprintf(&b, "  - %s: %d tools\n", sub.Name, n)
			}
		}
	}

	b.WriteString("\n## Featured Tools\n")
	for _, c := range categories {
		fmt.Fprintf(&b, "\n### %s\n", c.Name)
		items := cat.ItemsInCategory(c.Id)
		for _, item := range items[:min(len(items), FeaturedPerCategory)] {
			fmt.Fprintf(&b, "- [%s](%s/tools/%s): %s\n", item.Name, base, item.Slug, item.Tagline)
		}
	}

	b.WriteString(`
## Tool Information Format
Each tool page includes:
- Name and tagline
- Detailed description
- Category and subcategory
- Use cases
- Pricing model (free, freemium, paid, enterprise)
- Links to official website and social profiles
`)

	fmt.Fprintf(&b, "\n## Data\n- Total tools: %d\n- Categories: %d\n- Pricing models: Free, Freemium, Paid, Enterprise\n", cat.Len(), len(categories))
	return b.String()
}
