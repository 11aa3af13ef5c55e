// Package categories provides the injected category table. The core depends
// on the set of codes but does not own its definition; validation and display
// both consult the same catalog.
package categories

import (
	"bufio"
	"errors"
	"os"
	"strings"
)

// ErrUnknownCategory reports a code outside the catalog.
var ErrUnknownCategory = errors.New("unknown category")

// Category pairs a stable code with its human-readable display label.
type Category struct {
	Code  string
	Label string
}

// Catalog is a fixed, ordered set of category codes with display labels.
type Catalog struct {
	order  []string
	labels map[string]string
}

// Default returns the built-in category set.
func Default() *Catalog {
	return New([]Category{
		{Code: "food", Label: "🍔 Food"},
		{Code: "transport", Label: "🚗 Transport"},
		{Code: "entertainment", Label: "🎬 Entertainment"},
		{Code: "shopping", Label: "🛍️ Shopping"},
		{Code: "bills", Label: "💡 Bills"},
		{Code: "health", Label: "💊 Health"},
		{Code: "other", Label: "📦 Other"},
	})
}

// New builds a catalog from the given entries, preserving their order and
// dropping blank or duplicate codes.
func New(entries []Category) *Catalog {
	c := &Catalog{labels: make(map[string]string, len(entries))}
	for _, e := range entries {
		code := strings.TrimSpace(e.Code)
		if code == "" {
			continue
		}
		if _, ok := c.labels[code]; ok {
			continue
		}
		label := strings.TrimSpace(e.Label)
		if label == "" {
			label = code
		}
		c.order = append(c.order, code)
		c.labels[code] = label
	}
	return c
}

// NewFromFile loads a catalog from a seed file with one "code|label" entry
// per line. Blank lines and #-comments are skipped. Falls back to the
// built-in set when the file is missing or yields no entries.
func NewFromFile(path string) *Catalog {
	f, err := os.Open(path)
	if err != nil {
		return Default()
	}
	defer f.Close()

	var entries []Category
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		code, label, _ := strings.Cut(line, "|")
		entries = append(entries, Category{Code: strings.TrimSpace(code), Label: strings.TrimSpace(label)})
	}
	if len(entries) == 0 {
		return Default()
	}
	return New(entries)
}

// Has reports whether the code belongs to the catalog.
func (c *Catalog) Has(code string) bool {
	_, ok := c.labels[code]
	return ok
}

// Validate returns ErrUnknownCategory for codes outside the catalog.
func (c *Catalog) Validate(code string) error {
	if !c.Has(code) {
		return ErrUnknownCategory
	}
	return nil
}

// Label returns the display label for a code, or the code itself when it is
// not in the catalog (stale snapshots may carry retired codes).
func (c *Catalog) Label(code string) string {
	if label, ok := c.labels[code]; ok {
		return label
	}
	return code
}

// All returns the categories in catalog order.
func (c *Catalog) All() []Category {
	out := make([]Category, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, Category{Code: code, Label: c.labels[code]})
	}
	return out
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.order)
}
