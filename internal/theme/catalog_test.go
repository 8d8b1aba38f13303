package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromJSONBuildsIDsInCategoryOrder(t *testing.T) {
	data := []byte(`{
		"theme2": [{"number": "1", "theme": "B", "evaluation_metric": "1:low-100:high"}],
		"theme1": [
			{"number": "1", "theme": "A1", "evaluation_metric": "1:low-100:high"},
			{"number": "2", "theme": "A2", "evaluation_metric": "1:low-100:high"}
		]
	}`)

	c, err := FromJSON(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	all := c.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 themes, got %d", len(all))
	}
	if all[0].ID != "theme1-1" || all[1].ID != "theme1-2" || all[2].ID != "theme2-1" {
		t.Fatalf("expected category-ordered ids, got %v", all)
	}
	if all[2].Text != "B" || all[2].CategoryID != "theme2" {
		t.Fatalf("unexpected theme mapping: %+v", all[2])
	}
}

func TestFromJSONRejectsMalformedInput(t *testing.T) {
	if _, err := FromJSON([]byte("not json")); err == nil {
		t.Fatal("expected error for malformed input")
	}
	if _, err := FromJSON([]byte(`{"theme9": []}`)); err == nil {
		t.Fatal("expected error for input without known categories")
	}
}

func TestLoadFallsBackOnBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "themes.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c := Load(path, "ja")
	if len(c.All()) == 0 {
		t.Fatal("bad file should fall back to a non-empty catalog")
	}

	c = Load(filepath.Join(dir, "missing.json"), "ja")
	if len(c.All()) == 0 {
		t.Fatal("missing file should fall back to a non-empty catalog")
	}
}

func TestLoadUsesExternalFileWhenValid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "themes.json")
	data := []byte(`{"theme3": [{"number": "7", "theme": "External", "evaluation_metric": "1:no-100:yes"}]}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c := Load(path, "ja")
	th, ok := c.Find("theme3-7")
	if !ok {
		t.Fatal("external theme not found")
	}
	if th.Text != "External" {
		t.Fatalf("expected external theme text, got %q", th.Text)
	}
}

func TestEmbeddedCatalogsCoverEveryCategory(t *testing.T) {
	for _, locale := range []string{"ja", "en"} {
		c := Load("", locale)
		for _, cat := range Categories() {
			if len(c.ByCategory(cat.ID)) == 0 {
				t.Fatalf("locale %s: category %s has no themes", locale, cat.ID)
			}
		}
	}
}

func TestFallbackCoversEveryCategory(t *testing.T) {
	c := Fallback()
	for _, cat := range Categories() {
		if len(c.ByCategory(cat.ID)) == 0 {
			t.Fatalf("fallback category %s has no themes", cat.ID)
		}
	}
	if _, ok := c.Find("theme1-1"); !ok {
		t.Fatal("fallback should contain theme1-1")
	}
}

func TestCategoriesAreStable(t *testing.T) {
	cats := Categories()
	if len(cats) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(cats))
	}
	if cats[0].ID != "theme1" || cats[3].ID != "theme4" {
		t.Fatalf("unexpected category order: %v", cats)
	}
	cats[0].ID = "mutated"
	if Categories()[0].ID != "theme1" {
		t.Fatal("Categories should return a copy")
	}
}
