// Package export builds owner-facing spreadsheets of weekly hours.
package export

import (
	"fmt"

	"menuboard/internal/menu"
	"menuboard/internal/schedule"
)

var overviewColumns = []string{"Type", "Name", "Hours", "Open now"}

// Overview writes one sheet for the document's restaurant listing the
// restaurant, every category and every item with their effective
// weekly hours and the open state at the given instant. Entities with
// no schedule anywhere show as always available.
func Overview(w SheetWriter, doc *menu.Document, labels schedule.Labels, at schedule.Instant) error {
	if err := w.AddSheet(doc.Restaurant.Name); err != nil {
		return err
	}
	if err := w.WriteHeader(overviewColumns); err != nil {
		return err
	}

	if err := writeEntity(w, "restaurant", doc.Restaurant.Name, doc.Restaurant.Hours, labels, at); err != nil {
		return err
	}

	for _, c := range doc.Categories {
		eff := schedule.Effective(nil, c.Hours, doc.Restaurant.Hours)
		if err := writeEntity(w, "category", c.Name, eff, labels, at); err != nil {
			return err
		}
	}

	for _, it := range doc.Items {
		if err := writeEntity(w, "item", it.Name, doc.EffectiveHours(it), labels, at); err != nil {
			return err
		}
	}

	return nil
}

func writeEntity(w SheetWriter, kind, name string, eff schedule.Weekly, labels schedule.Labels, at schedule.Instant) error {
	hours := schedule.Format(eff, labels)
	if eff == nil {
		hours = "—"
	}

	openNow := "no"
	if schedule.IsOpenAt(eff, at) {
		openNow = "yes"
	}

	if err := w.WriteRow([]interface{}{kind, name, hours, openNow}); err != nil {
		return fmt.Errorf("write %s row for %s: %w", kind, name, err)
	}
	return nil
}
