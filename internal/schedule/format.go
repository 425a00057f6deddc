package schedule

import "strings"

// Labels carries every locale-dependent string the formatter needs.
// The engine itself holds no locale data; callers inject a label set
// (see internal/locale for built-in packs). Zero-value fields fall
// back to English so a partially filled set still renders.
type Labels struct {
	// Days are abbreviations in Monday..Sunday order, e.g. "Mon".
	Days [7]string
	// Closed is the literal for a closed day, e.g. "Closed".
	Closed string
	// Open is the literal for an open day with no declared hours.
	Open string
	// ClosedNow is a fmt verb string wrapping the weekly pattern when
	// an entity is closed at the queried instant, e.g.
	// "Closed now; available %s".
	ClosedNow string
	// DayRangeSep joins the first and last day of a group ("–").
	DayRangeSep string
	// TimeSep joins a slot's boundaries ("–").
	TimeSep string
	// SlotSep joins slots within one group (", ").
	SlotSep string
	// GroupSep joins day groups ("; ").
	GroupSep string
}

var defaultDays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func (l Labels) day(d Weekday) string {
	if s := l.Days[d]; s != "" {
		return s
	}
	return defaultDays[d]
}

func (l Labels) closed() string {
	if l.Closed != "" {
		return l.Closed
	}
	return "Closed"
}

func (l Labels) open() string {
	if l.Open != "" {
		return l.Open
	}
	return "Open"
}

func (l Labels) closedNowFormat() string {
	if l.ClosedNow != "" {
		return l.ClosedNow
	}
	return "Closed now; available %s"
}

func (l Labels) dayRangeSep() string {
	if l.DayRangeSep != "" {
		return l.DayRangeSep
	}
	return "–"
}

func (l Labels) timeSep() string {
	if l.TimeSep != "" {
		return l.TimeSep
	}
	return "–"
}

func (l Labels) slotSep() string {
	if l.SlotSep != "" {
		return l.SlotSep
	}
	return ", "
}

func (l Labels) groupSep() string {
	if l.GroupSep != "" {
		return l.GroupSep
	}
	return "; "
}

func sameDay(a, b Day) bool {
	if a.Open != b.Open || len(a.Slots) != len(b.Slots) {
		return false
	}
	for i := range a.Slots {
		if a.Slots[i] != b.Slots[i] {
			return false
		}
	}
	return true
}

// Format renders a weekly schedule as one short line, collapsing
// consecutive weekdays (Monday..Sunday order, no wraparound) that
// share the same open flag and slot list:
//
//	Mon–Fri 11:00–15:00, 18:00–22:00; Sat–Sun Closed
//
// Malformed slots are skipped rather than rendered. Output is
// deterministic for identical input.
func Format(w Weekly, labels Labels) string {
	if w == nil {
		return ""
	}

	days := Weekdays()
	var parts []string

	for i := 0; i < len(days); {
		j := i
		for j+1 < len(days) && sameDay(w[days[i]], w[days[j+1]]) {
			j++
		}

		label := labels.day(days[i])
		if j > i {
			label += labels.dayRangeSep() + labels.day(days[j])
		}

		parts = append(parts, label+" "+formatDay(w[days[i]], labels))
		i = j + 1
	}

	return strings.Join(parts, labels.groupSep())
}

func formatDay(d Day, labels Labels) string {
	if !d.Open {
		return labels.closed()
	}

	var slots []string
	for _, r := range d.Slots {
		if !r.IsValid() {
			continue
		}
		slots = append(slots, r.From.String()+labels.timeSep()+r.To.String())
	}
	if len(slots) == 0 {
		// Open with nothing to print: no declared restriction.
		return labels.open()
	}
	return strings.Join(slots, labels.slotSep())
}
