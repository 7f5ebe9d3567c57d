package types

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Pricing string

const (
	PricingFree         Pricing = "free"
	PricingOpenSource   Pricing = "open-source"
	PricingSubscription Pricing = "subscription"
	PricingUsageBased   Pricing = "usage-based"
	PricingPerformance  Pricing = "performance"
	PricingUnknown      Pricing = "unknown"

	// older datasets used these tiers
	PricingFreemium   Pricing = "freemium"
	PricingPaid       Pricing = "paid"
	PricingEnterprise Pricing = "enterprise"
)

var pricingLabels = map[Pricing]string{
	PricingFree:         "Free",
	PricingOpenSource:   "Open Source",
	PricingSubscription: "Subscription",
	PricingUsageBased:   "Usage-Based",
	PricingPerformance:  "Performance",
	PricingUnknown:      "Unknown",
	PricingFreemium:     "Freemium",
	PricingPaid:         "Paid",
	PricingEnterprise:   "Enterprise",
}

func (p Pricing) Label() string {
	if l, ok := pricingLabels[p]; ok {
		return l
	}
	return string(p)
}

type CompanyType string

const (
	CompanyIndie   CompanyType = "indie"
	CompanyStartup CompanyType = "startup"
	CompanyPrivate CompanyType = "private"
	CompanyPublic  CompanyType = "public"
	CompanyOSS     CompanyType = "oss"
)

var companyTypeLabels = map[CompanyType]string{
	CompanyIndie:   "Indie",
	CompanyStartup: "Startup",
	CompanyPrivate: "Private",
	CompanyPublic:  "Public",
	CompanyOSS:     "Open Source",
}

func (c CompanyType) Label() string {
	if l, ok := companyTypeLabels[c]; ok {
		return l
	}
	return string(c)
}

// Option is a selectable facet value shown in the filter sidebar.
type Option struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

var PricingOptions = []Option{
	{Id: string(PricingFree), Name: PricingFree.Label()},
	{Id: string(PricingSubscription), Name: PricingSubscription.Label()},
	{Id: string(PricingUsageBased), Name: PricingUsageBased.Label()},
	{Id: string(PricingPerformance), Name: PricingPerformance.Label()},
}

var CompanyTypeOptions = []Option{
	{Id: string(CompanyIndie), Name: CompanyIndie.Label()},
	{Id: string(CompanyStartup), Name: CompanyStartup.Label()},
	{Id: string(CompanyPrivate), Name: CompanyPrivate.Label()},
	{Id: string(CompanyPublic), Name: CompanyPublic.Label()},
	{Id: string(CompanyOSS), Name: CompanyOSS.Label()},
}

type Social struct {
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

func (s Social) IsEmpty() bool {
	return s.LinkedIn == "" && s.Twitter == "" && s.GitHub == ""
}

type Item struct {
	Id          string      `json:"id"`
	Slug        string      `json:"slug"`
	Name        string      `json:"name"`
	Tagline     string      `json:"tagline"`
	Description string      `json:"description"`
	Logo        *string     `json:"logo"`
	Screenshot  *string     `json:"screenshot"`
	Website     string      `json:"website"`
	Category    string      `json:"category"`
	Subcategory string      `json:"subcategory"`
	UseCases    []string    `json:"useCases"`
	Pricing     Pricing     `json:"pricing"`
	CompanyType CompanyType `json:"companyType"`
	Founded     int         `json:"founded"`
	Social      Social      `json:"social"`
}

func (i *Item) LogoURL() string {
	if i.Logo == nil {
		return ""
	}
	return *i.Logo
}

func (i *Item) HasUseCase(id string) bool {
	for _, uc := range i.UseCases {
		if uc == id {
			return true
		}
	}
	return false
}

// UseCaseLabel turns a use case id like "ad-creative" into "ad creative".
func UseCaseLabel(id string) string {
	return strings.ReplaceAll(id, "-", " ")
}

var fallbackPalette = []string{
	"bg-zinc-800",
	"bg-zinc-700",
	"bg-zinc-600",
	"bg-zinc-500",
	"bg-neutral-800",
	"bg-neutral-700",
	"bg-stone-700",
	"bg-stone-600",
}

// LogoFallback is rendered for items without a logo.
type LogoFallback struct {
	Initial string `json:"initial"`
	Color   string `json:"color"`
}

func FallbackFor(name string) LogoFallback {
	var hash int32
	for _, c := range name {
		hash = int32(c) + ((hash << 5) - hash)
	}
	idx := int(hash) % len(fallbackPalette)
	if idx < 0 {
		idx = -idx
	}
	initial := ""
	if r, _ := utf8.DecodeRuneInString(name); r != utf8.RuneError {
		initial = string(unicode.ToUpper(r))
	}
	return LogoFallback{Initial: initial, Color: fallbackPalette[idx]}
}
