package schedule

import (
	"time"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/timeutil"
)

// Snapshot is the caller-supplied view of all inputs the generator reads.
// The generator never mutates a snapshot; repeated calls with deep-equal
// snapshots produce deep-equal results.
type Snapshot struct {
	// Templates maps each collection key to its ordered activity list.
	Templates map[TemplateKey][]Activity
	// Overrides is the weekly override collection.
	Overrides []WeeklyOverride
	// Custom maps a date key to a captured per-day schedule. A present
	// entry is authoritative and bypasses generation entirely.
	Custom map[string][]Activity
	// FastingDates marks dates ("YYYY-MM-DD") as fasting days.
	FastingDates map[string]bool
}

// GenerateOptions tune a single generation call.
type GenerateOptions struct {
	// TemplateKey, when non-empty, forces the template collection.
	TemplateKey TemplateKey
	// ConsiderFasting lets a marked fasting date swap in the fasting
	// template for the weekday default.
	ConsiderFasting bool
}

// Generate produces the ordered block list for a date.
//
// Resolution order: a captured custom schedule for the date wins outright;
// otherwise the template selected for the date is filtered by recurrence,
// merged with the weekly overrides, subdivided where configured, and the
// result sorted ascending by start minute (stable, so template order breaks
// ties).
func Generate(snap Snapshot, date time.Time, opts GenerateOptions, cfg SubdivideConfig) []Activity {
	dateKey := timeutil.DateKey(date)

	if custom, ok := snap.Custom[dateKey]; ok {
		return CloneList(custom)
	}

	key := SelectTemplate(
		date,
		opts.TemplateKey,
		opts.ConsiderFasting,
		snap.FastingDates[dateKey],
		len(snap.Templates[TemplateFasting]) > 0,
	)

	day := date.Weekday()
	base := FilterByRecurrence(snap.Templates[key], day)
	resolved := ApplyOverrides(base, snap.Overrides, day, dateKey)
	resolved = subdivideQualifying(resolved, cfg)
	SortByStart(resolved)
	return resolved
}
