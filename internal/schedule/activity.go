// Package schedule implements the recurrence-resolution and daily schedule
// generation engine: template selection, recurrence filtering, weekly
// override resolution, long-block subdivision, overlap detection, and the
// composition of all of these into the ordered block list for one day.
//
// Every function in this package is pure. Inputs are snapshots supplied by
// the caller and results are freshly allocated; nothing is mutated in place.
package schedule

import (
	"sort"
	"time"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/timeutil"
)

// Category groups activities for reporting and rendering. The engine treats
// it as opaque except for deciding which categories qualify for subdivision.
type Category string

const (
	CategoryPersonal  Category = "personal"
	CategorySpiritual Category = "spiritual"
	CategoryPhysical  Category = "physical"
	CategoryAcademic  Category = "academic"
)

// Constraint expresses how an activity may be moved by automated edits.
type Constraint string

const (
	// ConstraintHard blocks may never be overlapped by an automated edit
	// or an override insertion.
	ConstraintHard Constraint = "hard"
	// ConstraintAdjustable blocks may be shifted or resized.
	ConstraintAdjustable Constraint = "adjustable"
	// ConstraintRemovable blocks may additionally be dropped entirely.
	ConstraintRemovable Constraint = "removable"
)

// Frequency identifies the recurrence interval of a template activity.
type Frequency int

const (
	// FrequencyNone marks a one-off activity with no recurrence rule.
	FrequencyNone Frequency = iota
	// FrequencyDaily applies on every date.
	FrequencyDaily
	// FrequencyWeekly applies on the weekdays carried by the rule.
	FrequencyWeekly
)

// Recurrence describes when a template activity applies. Weekdays is only
// meaningful for FrequencyWeekly.
type Recurrence struct {
	Frequency Frequency
	Weekdays  []time.Weekday
}

// Activity is a single time block, either a template entry or a resolved
// instance in a day's schedule.
type Activity struct {
	ID         string
	Name       string
	Start      int // minute of day, 0..1439
	End        int // minute of day; End < Start spans midnight
	Category   Category
	Recurrence Recurrence
	Constraint Constraint

	// OriginalActivityID back-references the parent of a generated
	// sub-block. It is a grouping aid, not an ownership reference.
	OriginalActivityID string

	// DurationMinutes is populated on resolved instances only.
	DurationMinutes int
}

// Duration returns the activity length in minutes, accounting for spans
// that cross midnight.
func (a Activity) Duration() int {
	return timeutil.SpanDuration(a.Start, a.End)
}

// NormalizedSpan returns the half-open minute range [start, end) with the
// midnight wrap applied, so end may exceed 1439.
func (a Activity) NormalizedSpan() (int, int) {
	if a.End < a.Start {
		return a.Start, a.End + timeutil.MinutesPerDay
	}
	return a.Start, a.End
}

// Clone returns a deep copy of the activity.
func (a Activity) Clone() Activity {
	out := a
	if len(a.Recurrence.Weekdays) > 0 {
		out.Recurrence.Weekdays = append([]time.Weekday(nil), a.Recurrence.Weekdays...)
	}
	return out
}

// CloneList deep-copies a list of activities.
func CloneList(activities []Activity) []Activity {
	if activities == nil {
		return nil
	}
	out := make([]Activity, 0, len(activities))
	for _, a := range activities {
		out = append(out, a.Clone())
	}
	return out
}

// SortByStart orders activities ascending by start minute. The sort is
// stable so ties keep their original template order.
func SortByStart(activities []Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Start < activities[j].Start
	})
}
