package schedule

import "time"

// AppliesOn reports whether an activity's recurrence rule includes the given
// weekday.
//
// The semantics are deliberately uniform:
//   - FrequencyNone and FrequencyDaily apply on every date.
//   - FrequencyWeekly applies on the weekdays in the rule's set.
//   - FrequencyWeekly with an empty set is treated as unrestricted and
//     applies on every date. This is the one place that decision lives;
//     callers must not reinterpret an empty set.
func AppliesOn(a Activity, day time.Weekday) bool {
	switch a.Recurrence.Frequency {
	case FrequencyWeekly:
		if len(a.Recurrence.Weekdays) == 0 {
			return true
		}
		for _, d := range a.Recurrence.Weekdays {
			if d == day {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// FilterByRecurrence returns the activities that apply on the given weekday,
// preserving their template order.
func FilterByRecurrence(activities []Activity, day time.Weekday) []Activity {
	out := make([]Activity, 0, len(activities))
	for _, a := range activities {
		if AppliesOn(a, day) {
			out = append(out, a)
		}
	}
	return out
}
