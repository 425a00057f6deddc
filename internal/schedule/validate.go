package schedule

import "fmt"

// IssueKind classifies a structural schedule problem.
type IssueKind int

const (
	// InvertedRange means a slot where from >= to.
	InvertedRange IssueKind = iota
	// OverlappingRanges means two slots on the same day intersect.
	OverlappingRanges
)

// Issue is one finding attributed to a weekday.
type Issue struct {
	Kind    IssueKind
	Message string
}

// SummaryMessage tops the edit form whenever any day has issues.
const SummaryMessage = "Please fix the schedule errors below"

// Result carries validation findings per weekday plus a form-level
// summary. An empty Result means the schedule is valid.
type Result struct {
	PerDay  map[Weekday][]Issue
	Summary string
}

// OK reports whether the schedule passed validation.
func (r Result) OK() bool {
	return len(r.PerDay) == 0 && r.Summary == ""
}

func (r *Result) add(d Weekday, kind IssueKind, msg string) {
	if r.PerDay == nil {
		r.PerDay = make(map[Weekday][]Issue)
	}
	r.PerDay[d] = append(r.PerDay[d], Issue{Kind: kind, Message: msg})
}

// Validate checks a weekly schedule for structural errors: inverted
// slots and overlapping slot pairs, reported per weekday. Closed days
// are skipped entirely, whatever their slot contents. The check is
// O(slots²) per day and has no side effects; it is safe to call on
// every keystroke of an editing form.
func Validate(w Weekly) Result {
	var res Result
	for _, d := range Weekdays() {
		day := w[d]
		if !day.Open {
			continue
		}

		for _, slot := range day.Slots {
			if slot.From >= slot.To {
				res.add(d, InvertedRange, "From must be before to")
			}
		}

		// Each unordered pair reported at most once.
		for i := 0; i < len(day.Slots); i++ {
			for j := i + 1; j < len(day.Slots); j++ {
				a, b := day.Slots[i], day.Slots[j]
				if !a.IsValid() || !b.IsValid() {
					continue
				}
				if a.Overlaps(b) {
					res.add(d, OverlappingRanges, fmt.Sprintf("%s has overlapping time ranges", d))
				}
			}
		}
	}

	if len(res.PerDay) > 0 {
		res.Summary = SummaryMessage
	}
	return res
}
