package testfixtures

import (
	"time"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/schedule"
)

// WeekdayTemplate returns the canonical weekday template used across
// service tests: a hard prayer block, a subdividable study block, and a
// weekly gym slot.
func WeekdayTemplate() []schedule.Activity {
	return []schedule.Activity{
		{
			ID: "fajr", Name: "Fajr prayer",
			Start: 5*60 + 30, End: 5*60 + 50,
			Category: schedule.CategorySpiritual, Constraint: schedule.ConstraintHard,
			Recurrence: schedule.Recurrence{Frequency: schedule.FrequencyDaily},
		},
		{
			ID: "study", Name: "Focused study",
			Start: 9 * 60, End: 10*60 + 15,
			Category: schedule.CategoryAcademic, Constraint: schedule.ConstraintAdjustable,
			Recurrence: schedule.Recurrence{Frequency: schedule.FrequencyDaily},
		},
		{
			ID: "dhuhr", Name: "Dhuhr prayer",
			Start: 14*60 + 25, End: 14*60 + 45,
			Category: schedule.CategorySpiritual, Constraint: schedule.ConstraintHard,
			Recurrence: schedule.Recurrence{Frequency: schedule.FrequencyDaily},
		},
		{
			ID: "review", Name: "Lecture review",
			Start: 14 * 60, End: 14*60 + 20,
			Category: schedule.CategoryAcademic, Constraint: schedule.ConstraintAdjustable,
			Recurrence: schedule.Recurrence{Frequency: schedule.FrequencyDaily},
		},
		{
			ID: "gym", Name: "Gym session",
			Start: 17 * 60, End: 18 * 60,
			Category: schedule.CategoryPhysical, Constraint: schedule.ConstraintAdjustable,
			Recurrence: schedule.Recurrence{Frequency: schedule.FrequencyWeekly, Weekdays: []time.Weekday{time.Monday, time.Wednesday}},
		},
	}
}

// WeekendTemplate returns a minimal weekend template.
func WeekendTemplate() []schedule.Activity {
	return []schedule.Activity{
		{
			ID: "long-run", Name: "Long run",
			Start: 7 * 60, End: 8*60 + 30,
			Category: schedule.CategoryPhysical, Constraint: schedule.ConstraintAdjustable,
			Recurrence: schedule.Recurrence{Frequency: schedule.FrequencyDaily},
		},
	}
}

// CongregationalTemplate returns a minimal Friday template.
func CongregationalTemplate() []schedule.Activity {
	return []schedule.Activity{
		{
			ID: "jumuah", Name: "Jumu'ah prayer",
			Start: 13 * 60, End: 14 * 60,
			Category: schedule.CategorySpiritual, Constraint: schedule.ConstraintHard,
			Recurrence: schedule.Recurrence{Frequency: schedule.FrequencyDaily},
		},
	}
}

// FastingTemplate returns a minimal fasting-day template.
func FastingTemplate() []schedule.Activity {
	return []schedule.Activity{
		{
			ID: "suhoor", Name: "Suhoor",
			Start: 4 * 60, End: 4*60 + 30,
			Category: schedule.CategoryPersonal, Constraint: schedule.ConstraintHard,
			Recurrence: schedule.Recurrence{Frequency: schedule.FrequencyDaily},
		},
		{
			ID: "study", Name: "Focused study",
			Start: 9 * 60, End: 10 * 60,
			Category: schedule.CategoryAcademic, Constraint: schedule.ConstraintAdjustable,
			Recurrence: schedule.Recurrence{Frequency: schedule.FrequencyDaily},
		},
	}
}

// Templates returns all four template collections keyed for a snapshot.
func Templates() map[schedule.TemplateKey][]schedule.Activity {
	return map[schedule.TemplateKey][]schedule.Activity{
		schedule.TemplateWeekday:        WeekdayTemplate(),
		schedule.TemplateWeekend:        WeekendTemplate(),
		schedule.TemplateCongregational: CongregationalTemplate(),
		schedule.TemplateFasting:        FastingTemplate(),
	}
}

// HalaqaOverride returns the canonical weekly override: a hard Wednesday
// evening commitment.
func HalaqaOverride() schedule.WeeklyOverride {
	return schedule.WeeklyOverride{
		Activity: schedule.Activity{
			ID: "halaqa", Name: "Evening halaqa",
			Start: 19 * 60, End: 20*60 + 30,
			Category: schedule.CategorySpiritual, Constraint: schedule.ConstraintHard,
		},
		Weekdays: []time.Weekday{time.Wednesday},
	}
}

// SubdivideConfig returns the engine configuration tests assume: 30 minute
// blocks, 15 minute tail merge, academic blocks subdivided.
func SubdivideConfig() schedule.SubdivideConfig {
	return schedule.SubdivideConfig{
		MaxBlockMinutes:  30,
		MergeTailMinutes: 15,
		Categories:       []schedule.Category{schedule.CategoryAcademic},
	}
}
