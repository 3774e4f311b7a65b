package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/persistence"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/schedule"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/timeutil"
)

// TemplateStore exposes the template collections read by the generator.
type TemplateStore interface {
	ListTemplate(ctx context.Context, key schedule.TemplateKey) ([]schedule.Activity, error)
	ListOverrides(ctx context.Context) ([]schedule.WeeklyOverride, error)
}

// DayScheduleStore exposes the per-day custom schedule records.
type DayScheduleStore interface {
	GetDaySchedule(ctx context.Context, dateKey string) ([]schedule.Activity, error)
	SaveDaySchedule(ctx context.Context, dateKey string, activities []schedule.Activity) error
	DeleteDaySchedule(ctx context.Context, dateKey string) error
}

// FastingCalendar exposes the fasting-date flags.
type FastingCalendar interface {
	IsFastingDay(ctx context.Context, dateKey string) (bool, error)
	SetFastingDay(ctx context.Context, dateKey string, fasting bool) error
}

// PlannerService resolves the schedule for a date. It assembles an explicit
// snapshot from the stores and hands it to the pure generation engine, so a
// failed read never leaves partial state behind.
type PlannerService struct {
	templates TemplateStore
	days      DayScheduleStore
	fasting   FastingCalendar
	cfg       schedule.SubdivideConfig
	logger    *slog.Logger
}

// NewPlannerService wires dependencies for schedule generation.
func NewPlannerService(templates TemplateStore, days DayScheduleStore, fasting FastingCalendar, cfg schedule.SubdivideConfig) *PlannerService {
	return NewPlannerServiceWithLogger(templates, days, fasting, cfg, nil)
}

// NewPlannerServiceWithLogger wires dependencies plus a base logger.
func NewPlannerServiceWithLogger(templates TemplateStore, days DayScheduleStore, fasting FastingCalendar, cfg schedule.SubdivideConfig, logger *slog.Logger) *PlannerService {
	return &PlannerService{
		templates: templates,
		days:      days,
		fasting:   fasting,
		cfg:       cfg,
		logger:    defaultLogger(logger),
	}
}

// GenerateDay produces the ordered block list for a date. A captured custom
// schedule for the date is returned verbatim; otherwise the templates,
// recurrence rules, and weekly overrides are resolved and subdivided.
func (s *PlannerService) GenerateDay(ctx context.Context, params GenerateDayParams) ([]schedule.Activity, error) {
	if s == nil {
		return nil, fmt.Errorf("PlannerService is nil")
	}
	if params.TemplateKey != "" && !schedule.ValidTemplateKey(params.TemplateKey) {
		vErr := &ValidationError{}
		vErr.add("template", fmt.Sprintf("unknown template key %q", params.TemplateKey))
		return nil, vErr
	}

	logger := serviceLogger(ctx, s.logger, "planner", "generate_day", "date", timeutil.DateKey(params.Date))

	snap, err := s.loadSnapshot(ctx, params.Date)
	if err != nil {
		return nil, err
	}

	result := schedule.Generate(snap, params.Date, schedule.GenerateOptions{
		TemplateKey:     params.TemplateKey,
		ConsiderFasting: params.ConsiderFasting,
	}, s.cfg)

	logger.Debug("resolved day schedule", "blocks", len(result))
	return result, nil
}

// ApplyTemplateToDay captures the generated schedule for the date into the
// per-day store, making it authoritative until it is reset.
func (s *PlannerService) ApplyTemplateToDay(ctx context.Context, params GenerateDayParams) ([]schedule.Activity, error) {
	if s == nil {
		return nil, fmt.Errorf("PlannerService is nil")
	}

	dateKey := timeutil.DateKey(params.Date)
	logger := serviceLogger(ctx, s.logger, "planner", "apply_template", "date", dateKey)

	result, err := s.GenerateDay(ctx, params)
	if err != nil {
		return nil, err
	}
	if err := s.days.SaveDaySchedule(ctx, dateKey, result); err != nil {
		return nil, mapRepoError(err)
	}

	logger.Info("captured day schedule", "blocks", len(result))
	return result, nil
}

// ResetDay drops the captured schedule for a date, restoring template
// generation for it.
func (s *PlannerService) ResetDay(ctx context.Context, date time.Time) error {
	if s == nil {
		return fmt.Errorf("PlannerService is nil")
	}
	dateKey := timeutil.DateKey(date)
	if err := s.days.DeleteDaySchedule(ctx, dateKey); err != nil {
		return mapRepoError(err)
	}
	serviceLogger(ctx, s.logger, "planner", "reset_day", "date", dateKey).Info("dropped captured day schedule")
	return nil
}

// SetFastingDay flags or unflags a date as a fasting day. Generation for a
// flagged date swaps the weekday default for the fasting template.
func (s *PlannerService) SetFastingDay(ctx context.Context, date time.Time, fasting bool) error {
	if s == nil {
		return fmt.Errorf("PlannerService is nil")
	}
	if s.fasting == nil {
		return fmt.Errorf("no fasting calendar configured")
	}
	dateKey := timeutil.DateKey(date)
	if err := s.fasting.SetFastingDay(ctx, dateKey, fasting); err != nil {
		return mapRepoError(err)
	}
	serviceLogger(ctx, s.logger, "planner", "set_fasting_day", "date", dateKey).Info("updated fasting flag", "fasting", fasting)
	return nil
}

// loadSnapshot reads every generator input for the date into one immutable
// snapshot.
func (s *PlannerService) loadSnapshot(ctx context.Context, date time.Time) (schedule.Snapshot, error) {
	snap := schedule.Snapshot{
		Templates:    make(map[schedule.TemplateKey][]schedule.Activity, len(schedule.TemplateKeys)),
		Custom:       make(map[string][]schedule.Activity, 1),
		FastingDates: make(map[string]bool, 1),
	}
	dateKey := timeutil.DateKey(date)

	for _, key := range schedule.TemplateKeys {
		activities, err := s.templates.ListTemplate(ctx, key)
		if err != nil && !errors.Is(err, persistence.ErrNotFound) {
			return schedule.Snapshot{}, err
		}
		snap.Templates[key] = activities
	}

	overrides, err := s.templates.ListOverrides(ctx)
	if err != nil && !errors.Is(err, persistence.ErrNotFound) {
		return schedule.Snapshot{}, err
	}
	snap.Overrides = overrides

	custom, err := s.days.GetDaySchedule(ctx, dateKey)
	switch {
	case err == nil:
		snap.Custom[dateKey] = custom
	case errors.Is(err, persistence.ErrNotFound) || errors.Is(err, ErrNotFound):
		// No captured schedule; generate from templates.
	default:
		return schedule.Snapshot{}, err
	}

	if s.fasting != nil {
		fasting, err := s.fasting.IsFastingDay(ctx, dateKey)
		if err != nil && !errors.Is(err, persistence.ErrNotFound) {
			return schedule.Snapshot{}, err
		}
		snap.FastingDates[dateKey] = fasting
	}

	return snap, nil
}

// mapRepoError converts storage sentinel errors into application ones.
func mapRepoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, persistence.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
