// Package theme loads the discussion prompt catalog. The catalog is
// read-only input to the game engine: a missing or malformed data file
// degrades to a built-in fallback set instead of failing the session.
package theme

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ryosuke1832/WordSync/internal/game"
)

//go:embed themes.json themes_en.json
var assets embed.FS

// Entry is the wire shape of one prompt in the themes JSON.
type Entry struct {
	Number string `json:"number"`
	Text   string `json:"theme"`
	Metric string `json:"evaluation_metric"`
}

// Category is presentation metadata for one prompt group.
type Category struct {
	ID      string `json:"id"`
	NameKey string `json:"nameKey"`
	Icon    string `json:"icon"`
	Color   string `json:"color"`
}

// categoryOrder fixes iteration order over the JSON mapping.
var categoryOrder = []string{"theme1", "theme2", "theme3", "theme4"}

var categories = []Category{
	{ID: "theme1", NameKey: "category.theme1", Icon: "star", Color: "#FFD700"},
	{ID: "theme2", NameKey: "category.theme2", Icon: "heart", Color: "#FF69B4"},
	{ID: "theme3", NameKey: "category.theme3", Icon: "trophy", Color: "#4CAF50"},
	{ID: "theme4", NameKey: "category.theme4", Icon: "game-controller", Color: "#2196F3"},
}

// Categories lists the prompt groups in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Catalog is an immutable theme lookup.
type Catalog struct {
	themes []game.Theme
	byID   map[string]game.Theme
}

// Load builds a catalog from the file at path when given, otherwise
// from the embedded asset for the locale. Never fails: bad input falls
// back to the built-in set.
func Load(path, locale string) *Catalog {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if c, err := FromJSON(data); err == nil {
				return c
			}
		}
	}
	name := "themes.json"
	if locale == "en" {
		name = "themes_en.json"
	}
	data, err := assets.ReadFile(name)
	if err != nil {
		return Fallback()
	}
	c, err := FromJSON(data)
	if err != nil {
		return Fallback()
	}
	return c
}

// FromJSON decodes the category-keyed mapping into a catalog.
func FromJSON(data []byte) (*Catalog, error) {
	var raw map[string][]Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode themes: %w", err)
	}
	var themes []game.Theme
	for _, key := range categoryOrder {
		for _, entry := range raw[key] {
			themes = append(themes, game.Theme{
				ID:         fmt.Sprintf("%s-%s", key, entry.Number),
				Text:       entry.Text,
				Metric:     entry.Metric,
				CategoryID: key,
			})
		}
	}
	if len(themes) == 0 {
		return nil, fmt.Errorf("decode themes: no entries")
	}
	return newCatalog(themes), nil
}

// Fallback returns the minimal built-in set, at least one entry per
// category.
func Fallback() *Catalog {
	return newCatalog([]game.Theme{
		{ID: "theme1-1", Text: "コンビニの商品の人気", Metric: "1:人気ない-100:人気ある", CategoryID: "theme1"},
		{ID: "theme1-2", Text: "飲食店の人気", Metric: "1:人気ない-100:人気ある", CategoryID: "theme1"},
		{ID: "theme2-1", Text: "美しいもの", Metric: "1:美しくない-100:美しい", CategoryID: "theme2"},
		{ID: "theme3-1", Text: "なりたい生き物", Metric: "1:なりたくない-100:なりたい", CategoryID: "theme3"},
		{ID: "theme4-1", Text: "無人島に持っていきたいもの", Metric: "1:いらない-100:持っていきたい", CategoryID: "theme4"},
	})
}

func newCatalog(themes []game.Theme) *Catalog {
	byID := make(map[string]game.Theme, len(themes))
	for _, t := range themes {
		byID[t.ID] = t
	}
	return &Catalog{themes: themes, byID: byID}
}

// All lists every theme in category order.
func (c *Catalog) All() []game.Theme {
	out := make([]game.Theme, len(c.themes))
	copy(out, c.themes)
	return out
}

// ByCategory lists the themes of one category.
func (c *Catalog) ByCategory(id string) []game.Theme {
	var out []game.Theme
	for _, t := range c.themes {
		if t.CategoryID == id {
			out = append(out, t)
		}
	}
	return out
}

// Find looks a theme up by id.
func (c *Catalog) Find(id string) (game.Theme, bool) {
	t, ok := c.byID[id]
	return t, ok
}
