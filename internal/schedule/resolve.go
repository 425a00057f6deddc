package schedule

import "fmt"

// IsOpenAt reports whether an entity governed by w is available at the
// given instant. A nil schedule means no schedule was declared, which
// is always available. On a day that is open with no declared slots
// there is no restriction either. Slots that never passed validation
// (from >= to) contribute no availability rather than panicking:
// legacy data fails safe, closed.
func IsOpenAt(w Weekly, at Instant) bool {
	if w == nil {
		return true
	}

	day := w[at.Day]
	if !day.Open {
		return false
	}
	if len(day.Slots) == 0 {
		return true
	}

	for _, slot := range day.Slots {
		if !slot.IsValid() {
			continue
		}
		if slot.Contains(at.Time) {
			return true
		}
	}
	return false
}

// Describe renders the availability state for display. A nil schedule
// yields "" (nothing to show). When open now, the label is the full
// weekly pattern; when closed now, the pattern is wrapped in the
// labels' closed-now sentence. The label always states the declared
// weekly rule; it never computes a literal next-opening timestamp.
func Describe(w Weekly, at Instant, labels Labels) string {
	if w == nil {
		return ""
	}

	pattern := Format(w, labels)
	if IsOpenAt(w, at) {
		return pattern
	}
	return fmt.Sprintf(labels.closedNowFormat(), pattern)
}

// Effective picks the schedule that governs an item: the item's own if
// declared, else its category's, else the restaurant's, else nil
// ("always available"). A present schedule with every day closed is a
// deliberate never-available override and wins like any other.
func Effective(item, category, restaurant Weekly) Weekly {
	switch {
	case item != nil:
		return item
	case category != nil:
		return category
	default:
		return restaurant
	}
}
