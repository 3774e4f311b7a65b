package schedule

import "time"

// WeeklyOverride pins an activity to specific weekdays, superseding any
// template activity that shares its id on those days. An override with no
// matching template activity is a pure addition.
type WeeklyOverride struct {
	Activity Activity
	Weekdays []time.Weekday
}

// appliesOn reports whether the override is active on the given weekday.
func (o WeeklyOverride) appliesOn(day time.Weekday) bool {
	for _, d := range o.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// ApplyOverrides resolves the weekly override collection against a day's
// filtered base activities. For each override active on the target weekday,
// any base activity sharing the override's id is suppressed and the override
// is appended with a day-qualified id ("{overrideID}-{dateKey}") unless an
// activity with that id is already present.
func ApplyOverrides(base []Activity, overrides []WeeklyOverride, day time.Weekday, dateKey string) []Activity {
	out := CloneList(base)
	if out == nil {
		out = []Activity{}
	}

	for _, o := range overrides {
		if !o.appliesOn(day) {
			continue
		}

		kept := out[:0]
		for _, a := range out {
			if a.ID != o.Activity.ID {
				kept = append(kept, a)
			}
		}
		out = kept

		dayID := o.Activity.ID + "-" + dateKey
		if containsID(out, dayID) {
			continue
		}
		inserted := o.Activity.Clone()
		inserted.ID = dayID
		out = append(out, inserted)
	}
	return out
}

func containsID(activities []Activity, id string) bool {
	for _, a := range activities {
		if a.ID == id {
			return true
		}
	}
	return false
}
