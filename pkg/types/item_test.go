package types

import "testing"

func TestPricingLabel(t *testing.T) {
	if PricingUsageBased.Label() != "Usage-Based" {
		t.Errorf("Expected Usage-Based, got %s", PricingUsageBased.Label())
	}
	if PricingFreemium.Label() != "Freemium" {
		t.Errorf("Expected Freemium, got %s", PricingFreemium.Label())
	}
	if Pricing("barter").Label() != "barter" {
		t.Errorf("Expected unknown pricing to fall back to its id")
	}
}

func TestCompanyTypeLabel(t *testing.T) {
	if CompanyOSS.Label() != "Open Source" {
		t.Errorf("Expected Open Source, got %s", CompanyOSS.Label())
	}
}

func TestFallbackFor(t *testing.T) {
	a := FallbackFor("jasper")
	b := FallbackFor("jasper")
	if a != b {
		t.Errorf("Expected stable fallback, got %v and %v", a, b)
	}
	if a.Initial != "J" {
		t.Errorf("Expected initial J, got %q", a.Initial)
	}
	found := false
	for _, c := range fallbackPalette {
		if c == a.Color {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a palette colour, got %q", a.Color)
	}
	if FallbackFor("").Initial != "" {
		t.Errorf("Expected empty initial for empty name")
	}
}

func TestSortedSubcategories(t *testing.T) {
	c := Category{
		Id: "create",
		Subcategories: []Subcategory{
			{Id: "video", Order: 3},
			{Id: "copy", Order: 1},
			{Id: "image", Order: 2},
		},
	}
	subs := c.SortedSubcategories()
	if subs[0].Id != "copy" || subs[1].Id != "image" || subs[2].Id != "video" {
		t.Errorf("Unexpected order %v", subs)
	}
	if c.Subcategories[0].Id != "video" {
		t.Errorf("Expected original order to be kept")
	}
	if _, ok := c.Subcategory("image"); !ok {
		t.Errorf("Expected to find image subcategory")
	}
}

func TestUseCaseLabel(t *testing.T) {
	if UseCaseLabel("ad-creative") != "ad creative" {
		t.Errorf("Unexpected label %q", UseCaseLabel("ad-creative"))
	}
}
