package schedule

import "github.com/amanpv-mtu/myScheduleApp-sub000/internal/timeutil"

// Overlaps reports whether the candidate's span collides with any activity
// in the list, skipping the entry whose id equals excludeID. A collision
// only counts when at least one of the two activities carries a hard
// constraint; adjustable and removable blocks are free to coexist.
func Overlaps(candidate Activity, existing []Activity, excludeID string) bool {
	for _, other := range existing {
		if excludeID != "" && other.ID == excludeID {
			continue
		}
		if candidate.Constraint != ConstraintHard && other.Constraint != ConstraintHard {
			continue
		}
		if SpansOverlap(candidate, other) {
			return true
		}
	}
	return false
}

// SpansOverlap reports whether two activities occupy any common minute.
// Both spans are normalized with the midnight wrap before comparison, and
// each is additionally tested against the other shifted by one day so a
// block that crosses midnight still collides with an early-morning block.
func SpansOverlap(a, b Activity) bool {
	s1, e1 := a.NormalizedSpan()
	s2, e2 := b.NormalizedSpan()
	const day = timeutil.MinutesPerDay
	return rangesOverlap(s1, e1, s2, e2) ||
		rangesOverlap(s1+day, e1+day, s2, e2) ||
		rangesOverlap(s1, e1, s2+day, e2+day)
}

func rangesOverlap(s1, e1, s2, e2 int) bool {
	return max(s1, s2) < min(e1, e2)
}

// HardConflictPair identifies two overlapping activities where at least one
// is hard-constrained.
type HardConflictPair struct {
	FirstID  string
	SecondID string
}

// HardConflicts scans a resolved day for overlapping pairs involving a hard
// constraint. A clean schedule returns nil.
func HardConflicts(activities []Activity) []HardConflictPair {
	var pairs []HardConflictPair
	for i := 0; i < len(activities); i++ {
		for j := i + 1; j < len(activities); j++ {
			a, b := activities[i], activities[j]
			if a.Constraint != ConstraintHard && b.Constraint != ConstraintHard {
				continue
			}
			if SpansOverlap(a, b) {
				pairs = append(pairs, HardConflictPair{FirstID: a.ID, SecondID: b.ID})
			}
		}
	}
	return pairs
}
