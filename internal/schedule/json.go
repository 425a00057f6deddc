package schedule

import (
	"encoding/json"
	"fmt"
)

// Wire shape shared with the persistence layer: each weekday key maps
// to {"open": bool, "slots": [{"from": "HH:MM", "to": "HH:MM"}]}.
// Field names are a contract, not an internal choice.

type rangeWire struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type dayWire struct {
	Open  bool        `json:"open"`
	Slots []rangeWire `json:"slots"`
}

type weeklyWire struct {
	Monday    *dayWire `json:"monday,omitempty"`
	Tuesday   *dayWire `json:"tuesday,omitempty"`
	Wednesday *dayWire `json:"wednesday,omitempty"`
	Thursday  *dayWire `json:"thursday,omitempty"`
	Friday    *dayWire `json:"friday,omitempty"`
	Saturday  *dayWire `json:"saturday,omitempty"`
	Sunday    *dayWire `json:"sunday,omitempty"`
}

func (w *weeklyWire) day(d Weekday) **dayWire {
	switch d {
	case Monday:
		return &w.Monday
	case Tuesday:
		return &w.Tuesday
	case Wednesday:
		return &w.Wednesday
	case Thursday:
		return &w.Thursday
	case Friday:
		return &w.Friday
	case Saturday:
		return &w.Saturday
	case Sunday:
		return &w.Sunday
	}
	panic(fmt.Sprintf("schedule: invalid weekday %d", int(d)))
}

// MarshalJSON emits all seven weekdays in Monday..Sunday order with
// slot lists always present, so output is deterministic and
// round-trips the stored shape exactly.
func (w Weekly) MarshalJSON() ([]byte, error) {
	var wire weeklyWire
	for _, d := range Weekdays() {
		day := w[d]
		slots := make([]rangeWire, 0, len(day.Slots))
		for _, r := range day.Slots {
			slots = append(slots, rangeWire{From: r.From.String(), To: r.To.String()})
		}
		*wire.day(d) = &dayWire{Open: day.Open, Slots: slots}
	}
	return json.Marshal(&wire)
}

// UnmarshalJSON accepts the wire shape; weekdays missing from the
// document become closed days.
func (w *Weekly) UnmarshalJSON(data []byte) error {
	var wire weeklyWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	out := make(Weekly, 7)
	for _, d := range Weekdays() {
		dw := *wire.day(d)
		if dw == nil {
			out[d] = Day{}
			continue
		}

		day := Day{Open: dw.Open}
		for _, s := range dw.Slots {
			from, err := ParseClock(s.From)
			if err != nil {
				return fmt.Errorf("%s: %w", d.Key(), err)
			}
			to, err := ParseClock(s.To)
			if err != nil {
				return fmt.Errorf("%s: %w", d.Key(), err)
			}
			day.Slots = append(day.Slots, Range{From: from, To: to})
		}
		out[d] = day
	}

	*w = out
	return nil
}
