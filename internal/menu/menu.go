// Package menu holds the value model the engine operates on: one
// restaurant with its categories and items, each optionally carrying
// its own weekly schedule. Persistence of these entities lives in the
// surrounding platform; here they are plain values loaded from JSON
// documents.
package menu

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"menuboard/internal/schedule"
)

// Restaurant is the top level of the schedule hierarchy.
type Restaurant struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Slug  string          `json:"slug,omitempty"`
	Hours schedule.Weekly `json:"hours,omitempty"`
}

// Category groups items and may override the restaurant's hours.
type Category struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	SortOrder int             `json:"sort_order"`
	Hours     schedule.Weekly `json:"hours,omitempty"`
}

// Item is a single menu entry. Its own hours, when declared, win over
// both category and restaurant hours.
type Item struct {
	ID         uuid.UUID       `json:"id"`
	CategoryID uuid.UUID       `json:"category_id"`
	Name       string          `json:"name"`
	PriceCents int64           `json:"price_cents"`
	SortOrder  int             `json:"sort_order"`
	Hours      schedule.Weekly `json:"hours,omitempty"`
}

// Document is the JSON file format consumed by the CLI: one restaurant
// with its full menu tree.
type Document struct {
	Restaurant Restaurant `json:"restaurant"`
	Categories []Category `json:"categories"`
	Items      []Item     `json:"items"`
}

// Parse decodes and structurally checks a menu document. Every item
// must reference a category present in the document; schedules are
// normalized in place (absent ones stay absent).
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse menu document: %w", err)
	}

	doc.Restaurant.Hours.Normalize()

	byID := make(map[uuid.UUID]bool, len(doc.Categories))
	for i := range doc.Categories {
		c := &doc.Categories[i]
		if byID[c.ID] {
			return nil, fmt.Errorf("duplicate category id %s", c.ID)
		}
		byID[c.ID] = true
		c.Hours.Normalize()
	}

	for i := range doc.Items {
		it := &doc.Items[i]
		if !byID[it.CategoryID] {
			return nil, fmt.Errorf("item %q references unknown category %s", it.Name, it.CategoryID)
		}
		it.Hours.Normalize()
	}

	return &doc, nil
}

// Load reads and parses a menu document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu document: %w", err)
	}
	return Parse(data)
}

// Category returns the category with the given id, or nil.
func (d *Document) Category(id uuid.UUID) *Category {
	for i := range d.Categories {
		if d.Categories[i].ID == id {
			return &d.Categories[i]
		}
	}
	return nil
}

// EffectiveHours resolves the schedule that governs an item: item over
// category over restaurant, nil meaning always available.
func (d *Document) EffectiveHours(it Item) schedule.Weekly {
	var category schedule.Weekly
	if c := d.Category(it.CategoryID); c != nil {
		category = c.Hours
	}
	return schedule.Effective(it.Hours, category, d.Restaurant.Hours)
}
