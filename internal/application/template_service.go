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

// TemplateEditor extends the read-only template store with the CRUD path
// used when authoring templates and weekly overrides.
type TemplateEditor interface {
	TemplateStore
	SaveTemplateActivity(ctx context.Context, key schedule.TemplateKey, activity schedule.Activity) error
	DeleteTemplateActivity(ctx context.Context, key schedule.TemplateKey, id string) error
	SaveOverride(ctx context.Context, override schedule.WeeklyOverride) error
	DeleteOverride(ctx context.Context, id string) error
}

// TemplateService owns the authoring path for template collections. It is a
// plain CRUD layer; all resolution logic stays in the generator.
type TemplateService struct {
	store       TemplateEditor
	idGenerator func() string
	logger      *slog.Logger
}

// NewTemplateService wires dependencies for template authoring.
func NewTemplateService(store TemplateEditor, idGenerator func() string) *TemplateService {
	return NewTemplateServiceWithLogger(store, idGenerator, nil)
}

// NewTemplateServiceWithLogger wires dependencies plus a base logger.
func NewTemplateServiceWithLogger(store TemplateEditor, idGenerator func() string, logger *slog.Logger) *TemplateService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &TemplateService{store: store, idGenerator: idGenerator, logger: defaultLogger(logger)}
}

// ListActivities returns a template collection's ordered activities.
func (s *TemplateService) ListActivities(ctx context.Context, key schedule.TemplateKey) ([]schedule.Activity, error) {
	if s == nil {
		return nil, fmt.Errorf("TemplateService is nil")
	}
	if !schedule.ValidTemplateKey(key) {
		return nil, unknownTemplateKey(key)
	}
	activities, err := s.store.ListTemplate(ctx, key)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return activities, nil
}

// AddActivity validates and stores a new template activity.
func (s *TemplateService) AddActivity(ctx context.Context, key schedule.TemplateKey, input TemplateActivityInput) (schedule.Activity, error) {
	if s == nil {
		return schedule.Activity{}, fmt.Errorf("TemplateService is nil")
	}
	if !schedule.ValidTemplateKey(key) {
		return schedule.Activity{}, unknownTemplateKey(key)
	}

	activity, err := buildTemplateActivity(s.idGenerator(), input)
	if err != nil {
		return schedule.Activity{}, err
	}

	if err := s.store.SaveTemplateActivity(ctx, key, activity); err != nil {
		return schedule.Activity{}, mapRepoError(err)
	}
	serviceLogger(ctx, s.logger, "template", "add_activity", "template", string(key)).Info("stored template activity", "id", activity.ID)
	return activity, nil
}

// UpdateActivity replaces the fields of an existing template activity.
func (s *TemplateService) UpdateActivity(ctx context.Context, key schedule.TemplateKey, id string, input TemplateActivityInput) (schedule.Activity, error) {
	if s == nil {
		return schedule.Activity{}, fmt.Errorf("TemplateService is nil")
	}
	if !schedule.ValidTemplateKey(key) {
		return schedule.Activity{}, unknownTemplateKey(key)
	}

	existing, err := s.store.ListTemplate(ctx, key)
	if err != nil {
		return schedule.Activity{}, mapRepoError(err)
	}
	found := false
	for _, a := range existing {
		if a.ID == id {
			found = true
			break
		}
	}
	if !found {
		return schedule.Activity{}, ErrNotFound
	}

	activity, err := buildTemplateActivity(id, input)
	if err != nil {
		return schedule.Activity{}, err
	}
	if err := s.store.SaveTemplateActivity(ctx, key, activity); err != nil {
		return schedule.Activity{}, mapRepoError(err)
	}
	return activity, nil
}

// DeleteActivity removes a template activity by id.
func (s *TemplateService) DeleteActivity(ctx context.Context, key schedule.TemplateKey, id string) error {
	if s == nil {
		return fmt.Errorf("TemplateService is nil")
	}
	if !schedule.ValidTemplateKey(key) {
		return unknownTemplateKey(key)
	}
	if err := s.store.DeleteTemplateActivity(ctx, key, id); err != nil {
		return mapRepoError(err)
	}
	return nil
}

// SetOverride stores a weekly override. Weekday numbers follow time.Weekday
// (0 = Sunday).
func (s *TemplateService) SetOverride(ctx context.Context, input TemplateActivityInput, weekdays []time.Weekday) (schedule.WeeklyOverride, error) {
	if s == nil {
		return schedule.WeeklyOverride{}, fmt.Errorf("TemplateService is nil")
	}

	vErr := &ValidationError{}
	if len(weekdays) == 0 {
		vErr.add("weekdays", "at least one weekday is required")
	}
	for _, d := range weekdays {
		if d < time.Sunday || d > time.Saturday {
			vErr.add("weekdays", fmt.Sprintf("weekday %d out of range", d))
		}
	}
	if vErr.HasErrors() {
		return schedule.WeeklyOverride{}, vErr
	}

	activity, err := buildTemplateActivity(s.idGenerator(), input)
	if err != nil {
		return schedule.WeeklyOverride{}, err
	}

	override := schedule.WeeklyOverride{Activity: activity, Weekdays: append([]time.Weekday(nil), weekdays...)}
	if err := s.store.SaveOverride(ctx, override); err != nil {
		return schedule.WeeklyOverride{}, mapRepoError(err)
	}
	serviceLogger(ctx, s.logger, "template", "set_override").Info("stored weekly override", "id", activity.ID)
	return override, nil
}

// RemoveOverride deletes a weekly override by id.
func (s *TemplateService) RemoveOverride(ctx context.Context, id string) error {
	if s == nil {
		return fmt.Errorf("TemplateService is nil")
	}
	if err := s.store.DeleteOverride(ctx, id); err != nil {
		return mapRepoError(err)
	}
	return nil
}

func buildTemplateActivity(id string, input TemplateActivityInput) (schedule.Activity, error) {
	vErr := &ValidationError{}
	if strings.TrimSpace(input.Name) == "" {
		vErr.add("name", "name is required")
	}

	start, err := timeutil.ToMinutes(input.StartTime)
	if err != nil {
		vErr.add("start_time", fmt.Sprintf("invalid time %q", input.StartTime))
	}
	end, err := timeutil.ToMinutes(input.EndTime)
	if err != nil {
		vErr.add("end_time", fmt.Sprintf("invalid time %q", input.EndTime))
	}
	if !vErr.HasErrors() && start == end {
		vErr.add("time", "start and end must differ")
	}

	category := input.Category
	if category == "" {
		category = schedule.CategoryPersonal
	}
	constraint := input.Constraint
	if constraint == "" {
		constraint = schedule.ConstraintAdjustable
	}
	switch constraint {
	case schedule.ConstraintHard, schedule.ConstraintAdjustable, schedule.ConstraintRemovable:
	default:
		vErr.add("constraint", fmt.Sprintf("unknown constraint %q", constraint))
	}
	switch input.Recurrence.Frequency {
	case schedule.FrequencyNone, schedule.FrequencyDaily, schedule.FrequencyWeekly:
	default:
		vErr.add("recurrence", "unknown frequency")
	}

	if vErr.HasErrors() {
		return schedule.Activity{}, vErr
	}

	return schedule.Activity{
		ID:         id,
		Name:       strings.TrimSpace(input.Name),
		Start:      start,
		End:        end,
		Category:   category,
		Constraint: constraint,
		Recurrence: input.Recurrence,
	}, nil
}

func unknownTemplateKey(key schedule.TemplateKey) error {
	vErr := &ValidationError{}
	vErr.add("template", fmt.Sprintf("unknown template key %q", key))
	return vErr
}
