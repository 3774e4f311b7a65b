package schedule

import (
	"fmt"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/timeutil"
)

const (
	// DefaultMaxBlockMinutes bounds the length of a generated sub-block.
	DefaultMaxBlockMinutes = 30
	// DefaultMergeTailMinutes is the largest trailing remainder that gets
	// merged into the preceding sub-block instead of standing alone.
	DefaultMergeTailMinutes = 15
)

// SubdivideConfig controls long-block subdivision.
type SubdivideConfig struct {
	// MaxBlockMinutes is the target sub-block size.
	MaxBlockMinutes int
	// MergeTailMinutes is the remainder threshold; a final tail of this
	// length or shorter extends the previous sub-block.
	MergeTailMinutes int
	// Categories lists the categories whose long activities are split.
	Categories []Category
}

// normalized fills zero values with the defaults.
func (c SubdivideConfig) normalized() SubdivideConfig {
	if c.MaxBlockMinutes <= 0 {
		c.MaxBlockMinutes = DefaultMaxBlockMinutes
	}
	if c.MergeTailMinutes <= 0 {
		c.MergeTailMinutes = DefaultMergeTailMinutes
	}
	return c
}

// qualifies reports whether the activity should be split under this config.
func (c SubdivideConfig) qualifies(a Activity) bool {
	if a.Duration() <= c.MaxBlockMinutes {
		return false
	}
	for _, cat := range c.Categories {
		if cat == a.Category {
			return true
		}
	}
	return false
}

// Subdivide splits an activity into bounded sub-blocks covering its span
// exactly, with no gaps and no overlap. Walking forward in steps of the
// maximum size, a final remainder no longer than the merge threshold is
// absorbed into the previous step, so the last sub-block is never shorter
// than the threshold.
//
// Sub-block ids are derived as "{parentID}-part-{n}" with a 1-based counter,
// and every sub-block carries OriginalActivityID pointing at the parent.
func Subdivide(a Activity, cfg SubdivideConfig) []Activity {
	cfg = cfg.normalized()

	total := a.Duration()
	if total <= cfg.MaxBlockMinutes {
		single := a.Clone()
		single.DurationMinutes = total
		return []Activity{single}
	}

	parts := make([]Activity, 0, total/cfg.MaxBlockMinutes+1)
	offset := 0
	for offset < total {
		size := cfg.MaxBlockMinutes
		if remaining := total - offset; remaining < size {
			size = remaining
		}
		// Absorb a short trailing remainder into this step.
		if tail := total - offset - size; tail > 0 && tail <= cfg.MergeTailMinutes {
			size += tail
		}

		n := len(parts) + 1
		part := a.Clone()
		part.ID = fmt.Sprintf("%s-part-%d", a.ID, n)
		part.Name = fmt.Sprintf("%s (part %d)", a.Name, n)
		part.Start = wrapMinute(a.Start + offset)
		part.End = wrapMinute(a.Start + offset + size)
		part.OriginalActivityID = a.ID
		part.DurationMinutes = size
		parts = append(parts, part)

		offset += size
	}
	return parts
}

// subdivideQualifying replaces each qualifying activity with its sub-block
// sequence; everything else passes through with DurationMinutes resolved.
func subdivideQualifying(activities []Activity, cfg SubdivideConfig) []Activity {
	cfg = cfg.normalized()
	out := make([]Activity, 0, len(activities))
	for _, a := range activities {
		if cfg.qualifies(a) {
			out = append(out, Subdivide(a, cfg)...)
			continue
		}
		instance := a.Clone()
		instance.DurationMinutes = a.Duration()
		out = append(out, instance)
	}
	return out
}

func wrapMinute(m int) int {
	m %= timeutil.MinutesPerDay
	if m < 0 {
		m += timeutil.MinutesPerDay
	}
	return m
}
