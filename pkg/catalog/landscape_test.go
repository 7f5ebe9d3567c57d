package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLandscape(t *testing.T) {
	l := loadTestCatalog(t).Landscape()

	columns := []string{}
	for _, col := range l.Columns {
		columns = append(columns, col.Id)
	}
	// general has no subcategories so it is not a column
	if diff := cmp.Diff([]string{"plan", "create", "measure"}, columns); diff != "" {
		t.Errorf("unexpected columns (-want +got):\n%s", diff)
	}

	plan := l.Columns[0]
	if len(plan.Subcategories) != 0 {
		t.Errorf("Expected empty subcategories to be omitted, got %+v", plan.Subcategories)
	}

	create := l.Columns[1]
	subs := []string{}
	for _, s := range create.Subcategories {
		subs = append(subs, s.Id)
	}
	if diff := cmp.Diff([]string{"copy", "seo"}, subs); diff != "" {
		t.Errorf("Expected subcategories sorted by order (-want +got):\n%s", diff)
	}

	measure := l.Columns[2]
	if len(measure.Subcategories) != 1 || measure.Subcategories[0].Id != "attribution" {
		t.Errorf("Expected only attribution under measure, got %+v", measure.Subcategories)
	}

	if l.General == nil {
		t.Fatalf("Expected general group")
	}
	if len(l.General.Subcategories) != 1 || l.General.Subcategories[0].Items[0].Slug != "chatgpt" {
		t.Errorf("Unexpected general group %+v", l.General)
	}
}

func TestLandscapeTiles(t *testing.T) {
	l := loadTestCatalog(t).Landscape()
	create := l.Columns[1]
	copyTile := create.Subcategories[0].Items[0]
	if copyTile.Logo != "" || copyTile.Fallback == nil || copyTile.Fallback.Initial != "C" {
		t.Errorf("Expected fallback for item without logo, got %+v", copyTile)
	}
	seoTile := create.Subcategories[1].Items[0]
	if seoTile.Logo == "" || seoTile.Fallback != nil {
		t.Errorf("Expected logo without fallback, got %+v", seoTile)
	}
}
