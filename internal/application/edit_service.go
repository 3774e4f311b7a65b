package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/schedule"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/timeutil"
)

// EditService validates and applies structured edit commands against a
// day's schedule. Every operation is atomic: it either persists a fully
// edited list or leaves the stored schedule untouched.
//
// Commands typically originate from an external interpretation step, so no
// field is trusted; times, actions, and constraints are re-validated here
// before any candidate block is built.
type EditService struct {
	planner     *PlannerService
	days        DayScheduleStore
	idGenerator func() string
	logger      *slog.Logger
}

// NewEditService wires dependencies for scripted edits.
func NewEditService(planner *PlannerService, days DayScheduleStore, idGenerator func() string) *EditService {
	return NewEditServiceWithLogger(planner, days, idGenerator, nil)
}

// NewEditServiceWithLogger wires dependencies plus a base logger.
func NewEditServiceWithLogger(planner *PlannerService, days DayScheduleStore, idGenerator func() string, logger *slog.Logger) *EditService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &EditService{
		planner:     planner,
		days:        days,
		idGenerator: idGenerator,
		logger:      defaultLogger(logger),
	}
}

// Apply executes one edit command. On success the edited list has been
// persisted as the date's custom schedule and is returned; on failure the
// stored schedule is unchanged and the error carries the rejection reason.
func (s *EditService) Apply(ctx context.Context, cmd EditCommand) (EditResult, error) {
	if s == nil {
		return EditResult{}, fmt.Errorf("EditService is nil")
	}

	date, err := s.validateCommand(cmd)
	if err != nil {
		return EditResult{}, err
	}

	logger := serviceLogger(ctx, s.logger, "edit", string(cmd.Action), "date", cmd.TargetDate)

	current, err := s.planner.GenerateDay(ctx, GenerateDayParams{Date: date, ConsiderFasting: true})
	if err != nil {
		return EditResult{}, err
	}

	var (
		edited  []schedule.Activity
		message string
	)
	switch cmd.Action {
	case EditActionModify:
		edited, message, err = applyModify(current, cmd)
	case EditActionShift:
		edited, message, err = applyShift(current, cmd)
	case EditActionAdd:
		edited, message, err = s.applyAdd(current, cmd)
	case EditActionDelete:
		edited, message, err = applyDelete(current, cmd)
	default:
		err = fmt.Errorf("%w: unknown action %q", ErrMalformedCommand, cmd.Action)
	}
	if err != nil {
		logger.Info("edit rejected", "reason", ErrorKind(err))
		return EditResult{}, err
	}

	if err := s.days.SaveDaySchedule(ctx, cmd.TargetDate, edited); err != nil {
		return EditResult{}, mapRepoError(err)
	}

	logger.Info("edit applied", "blocks", len(edited))
	return EditResult{Schedule: edited, Message: message}, nil
}

// validateCommand checks the per-action required fields before any store is
// touched.
func (s *EditService) validateCommand(cmd EditCommand) (time.Time, error) {
	date, err := timeutil.ParseDateKey(cmd.TargetDate, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: target date %q", ErrMalformedCommand, cmd.TargetDate)
	}

	switch cmd.Action {
	case EditActionModify:
		if strings.TrimSpace(cmd.ActivityName) == "" {
			return time.Time{}, fmt.Errorf("%w: modify requires an activity name", ErrMalformedCommand)
		}
		if cmd.NewStart == "" && cmd.NewEnd == "" && cmd.DurationDeltaMinutes == 0 {
			return time.Time{}, fmt.Errorf("%w: modify requires a new time or a duration delta", ErrMalformedCommand)
		}
		if (cmd.NewStart != "" || cmd.NewEnd != "") && cmd.DurationDeltaMinutes != 0 {
			return time.Time{}, fmt.Errorf("%w: modify takes explicit times or a duration delta, not both", ErrMalformedCommand)
		}
	case EditActionShift:
		if cmd.ShiftMinutes == 0 {
			return time.Time{}, fmt.Errorf("%w: shift of zero minutes", ErrNoOp)
		}
	case EditActionAdd:
		if strings.TrimSpace(cmd.ActivityName) == "" {
			return time.Time{}, fmt.Errorf("%w: add requires an activity name", ErrMalformedCommand)
		}
		if cmd.NewStart == "" || cmd.NewEnd == "" {
			return time.Time{}, fmt.Errorf("%w: add requires start and end times", ErrMalformedCommand)
		}
	case EditActionDelete:
		if strings.TrimSpace(cmd.ActivityName) == "" {
			return time.Time{}, fmt.Errorf("%w: delete requires an activity name", ErrMalformedCommand)
		}
	default:
		return time.Time{}, fmt.Errorf("%w: unknown action %q", ErrMalformedCommand, cmd.Action)
	}
	return date, nil
}

func applyModify(current []schedule.Activity, cmd EditCommand) ([]schedule.Activity, string, error) {
	idx := findByName(current, cmd.ActivityName)
	if idx < 0 {
		return nil, "", fmt.Errorf("%w: no activity matching %q", ErrActivityNotFound, cmd.ActivityName)
	}

	candidate := current[idx].Clone()
	if cmd.NewStart != "" {
		start, err := timeutil.ToMinutes(cmd.NewStart)
		if err != nil {
			return nil, "", err
		}
		candidate.Start = start
	}
	if cmd.NewEnd != "" {
		end, err := timeutil.ToMinutes(cmd.NewEnd)
		if err != nil {
			return nil, "", err
		}
		candidate.End = end
	}
	if cmd.NewStart == "" && cmd.NewEnd == "" {
		candidate.End = wrapMinute(candidate.End + cmd.DurationDeltaMinutes)
	}
	if candidate.Start == candidate.End {
		vErr := &ValidationError{}
		vErr.add("time", "start and end must differ")
		return nil, "", vErr
	}
	candidate.DurationMinutes = candidate.Duration()

	if schedule.Overlaps(candidate, current, candidate.ID) {
		return nil, "", fmt.Errorf("%w: %q would overlap a fixed block", ErrConflictDetected, candidate.Name)
	}

	edited := schedule.CloneList(current)
	edited[idx] = candidate
	schedule.SortByStart(edited)
	message := fmt.Sprintf("moved %q to %s-%s", candidate.Name, timeutil.ToTimeString(candidate.Start), timeutil.ToTimeString(candidate.End))
	return edited, message, nil
}

func applyShift(current []schedule.Activity, cmd EditCommand) ([]schedule.Activity, string, error) {
	edited := schedule.CloneList(current)

	shifted := make([]int, 0, len(edited))
	for i, a := range edited {
		if a.Constraint == schedule.ConstraintHard {
			continue
		}
		if cmd.CategoryFilter != "" && a.Category != cmd.CategoryFilter {
			continue
		}
		edited[i].Start = wrapMinute(a.Start + cmd.ShiftMinutes)
		edited[i].End = wrapMinute(a.End + cmd.ShiftMinutes)
		shifted = append(shifted, i)
	}
	if len(shifted) == 0 {
		return nil, "", fmt.Errorf("%w: no blocks match the shift", ErrNoOp)
	}

	// All-or-nothing: one hard conflict anywhere rejects the whole batch.
	for _, i := range shifted {
		if schedule.Overlaps(edited[i], edited, edited[i].ID) {
			return nil, "", fmt.Errorf("%w: shifting %q would overlap a fixed block", ErrConflictDetected, edited[i].Name)
		}
	}

	schedule.SortByStart(edited)
	message := fmt.Sprintf("shifted %d blocks by %+d minutes", len(shifted), cmd.ShiftMinutes)
	return edited, message, nil
}

func (s *EditService) applyAdd(current []schedule.Activity, cmd EditCommand) ([]schedule.Activity, string, error) {
	start, err := timeutil.ToMinutes(cmd.NewStart)
	if err != nil {
		return nil, "", err
	}
	end, err := timeutil.ToMinutes(cmd.NewEnd)
	if err != nil {
		return nil, "", err
	}
	if start == end {
		vErr := &ValidationError{}
		vErr.add("time", "start and end must differ")
		return nil, "", vErr
	}

	category := cmd.Category
	if category == "" {
		category = schedule.CategoryPersonal
	}
	constraint := cmd.Constraint
	if constraint == "" {
		constraint = schedule.ConstraintAdjustable
	}
	switch constraint {
	case schedule.ConstraintHard, schedule.ConstraintAdjustable, schedule.ConstraintRemovable:
	default:
		vErr := &ValidationError{}
		vErr.add("constraint", fmt.Sprintf("unknown constraint %q", constraint))
		return nil, "", vErr
	}

	candidate := schedule.Activity{
		ID:         s.idGenerator(),
		Name:       strings.TrimSpace(cmd.ActivityName),
		Start:      start,
		End:        end,
		Category:   category,
		Constraint: constraint,
	}
	candidate.DurationMinutes = candidate.Duration()

	if schedule.Overlaps(candidate, current, "") {
		return nil, "", fmt.Errorf("%w: %q would overlap a fixed block", ErrConflictDetected, candidate.Name)
	}

	edited := append(schedule.CloneList(current), candidate)
	schedule.SortByStart(edited)
	message := fmt.Sprintf("added %q at %s-%s", candidate.Name, cmd.NewStart, cmd.NewEnd)
	return edited, message, nil
}

func applyDelete(current []schedule.Activity, cmd EditCommand) ([]schedule.Activity, string, error) {
	needle := strings.ToLower(strings.TrimSpace(cmd.ActivityName))
	edited := make([]schedule.Activity, 0, len(current))
	removed := 0
	for _, a := range current {
		if strings.Contains(strings.ToLower(a.Name), needle) {
			removed++
			continue
		}
		edited = append(edited, a.Clone())
	}
	if removed == 0 {
		return nil, "", fmt.Errorf("%w: no activity matching %q", ErrActivityNotFound, cmd.ActivityName)
	}
	return edited, fmt.Sprintf("deleted %d blocks matching %q", removed, cmd.ActivityName), nil
}

// findByName returns the index of the first activity whose name contains the
// needle, case-insensitively.
func findByName(activities []schedule.Activity, needle string) int {
	needle = strings.ToLower(strings.TrimSpace(needle))
	for i, a := range activities {
		if strings.Contains(strings.ToLower(a.Name), needle) {
			return i
		}
	}
	return -1
}

func wrapMinute(m int) int {
	m %= timeutil.MinutesPerDay
	if m < 0 {
		m += timeutil.MinutesPerDay
	}
	return m
}
