package application

import (
	"context"
	"sort"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/persistence"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/schedule"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/testfixtures"
)

type templateStoreStub struct {
	templates map[schedule.TemplateKey][]schedule.Activity
	overrides []schedule.WeeklyOverride
	err       error

	savedActivities []schedule.Activity
	deletedIDs      []string
	savedOverrides  []schedule.WeeklyOverride
}

func newTemplateStoreStub() *templateStoreStub {
	return &templateStoreStub{
		templates: testfixtures.Templates(),
		overrides: []schedule.WeeklyOverride{testfixtures.HalaqaOverride()},
	}
}

func (s *templateStoreStub) ListTemplate(ctx context.Context, key schedule.TemplateKey) ([]schedule.Activity, error) {
	if s.err != nil {
		return nil, s.err
	}
	return schedule.CloneList(s.templates[key]), nil
}

func (s *templateStoreStub) ListOverrides(ctx context.Context) ([]schedule.WeeklyOverride, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]schedule.WeeklyOverride, len(s.overrides))
	copy(out, s.overrides)
	return out, nil
}

func (s *templateStoreStub) SaveTemplateActivity(ctx context.Context, key schedule.TemplateKey, activity schedule.Activity) error {
	if s.err != nil {
		return s.err
	}
	s.savedActivities = append(s.savedActivities, activity)
	list := s.templates[key]
	for i, a := range list {
		if a.ID == activity.ID {
			list[i] = activity
			return nil
		}
	}
	s.templates[key] = append(list, activity)
	return nil
}

func (s *templateStoreStub) DeleteTemplateActivity(ctx context.Context, key schedule.TemplateKey, id string) error {
	if s.err != nil {
		return s.err
	}
	list := s.templates[key]
	for i, a := range list {
		if a.ID == id {
			s.templates[key] = append(list[:i:i], list[i+1:]...)
			s.deletedIDs = append(s.deletedIDs, id)
			return nil
		}
	}
	return persistence.ErrNotFound
}

func (s *templateStoreStub) SaveOverride(ctx context.Context, override schedule.WeeklyOverride) error {
	if s.err != nil {
		return s.err
	}
	s.savedOverrides = append(s.savedOverrides, override)
	s.overrides = append(s.overrides, override)
	return nil
}

func (s *templateStoreStub) DeleteOverride(ctx context.Context, id string) error {
	for i, o := range s.overrides {
		if o.Activity.ID == id {
			s.overrides = append(s.overrides[:i:i], s.overrides[i+1:]...)
			return nil
		}
	}
	return persistence.ErrNotFound
}

type dayStoreStub struct {
	days      map[string][]schedule.Activity
	getErr    error
	saveErr   error
	saveCalls int
}

func newDayStoreStub() *dayStoreStub {
	return &dayStoreStub{days: make(map[string][]schedule.Activity)}
}

func (s *dayStoreStub) GetDaySchedule(ctx context.Context, dateKey string) ([]schedule.Activity, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	day, ok := s.days[dateKey]
	if !ok {
		return nil, persistence.ErrNotFound
	}
	return schedule.CloneList(day), nil
}

func (s *dayStoreStub) SaveDaySchedule(ctx context.Context, dateKey string, activities []schedule.Activity) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saveCalls++
	s.days[dateKey] = schedule.CloneList(activities)
	return nil
}

func (s *dayStoreStub) DeleteDaySchedule(ctx context.Context, dateKey string) error {
	if _, ok := s.days[dateKey]; !ok {
		return persistence.ErrNotFound
	}
	delete(s.days, dateKey)
	return nil
}

type fastingCalendarStub struct {
	days map[string]bool
	err  error
}

func newFastingCalendarStub() *fastingCalendarStub {
	return &fastingCalendarStub{days: make(map[string]bool)}
}

func (s *fastingCalendarStub) IsFastingDay(ctx context.Context, dateKey string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.days[dateKey], nil
}

func (s *fastingCalendarStub) SetFastingDay(ctx context.Context, dateKey string, fasting bool) error {
	if s.err != nil {
		return s.err
	}
	if fasting {
		s.days[dateKey] = true
	} else {
		delete(s.days, dateKey)
	}
	return nil
}

type logStoreStub struct {
	entries []LogEntry
	err     error
}

func (s *logStoreStub) UpsertLogEntry(ctx context.Context, entry LogEntry) error {
	if s.err != nil {
		return s.err
	}
	for i, e := range s.entries {
		if e.ID == entry.ID {
			s.entries[i] = entry
			return nil
		}
	}
	s.entries = append(s.entries, entry)
	return nil
}

func (s *logStoreStub) ListLogEntriesForDate(ctx context.Context, dateKey string) ([]LogEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]LogEntry, 0)
	for _, e := range s.entries {
		if e.DateKey == dateKey {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *logStoreStub) ListLogEntriesBetween(ctx context.Context, fromKey, toKey string) ([]LogEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]LogEntry, 0)
	for _, e := range s.entries {
		if e.DateKey >= fromKey && e.DateKey <= toKey {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *logStoreStub) DeleteLogEntry(ctx context.Context, id string) error {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
			return nil
		}
	}
	return persistence.ErrNotFound
}

type taskStoreStub struct {
	tasks map[string]Task
	err   error
}

func newTaskStoreStub() *taskStoreStub {
	return &taskStoreStub{tasks: make(map[string]Task)}
}

func (s *taskStoreStub) CreateTask(ctx context.Context, task Task) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.tasks[task.ID]; ok {
		return persistence.ErrDuplicate
	}
	s.tasks[task.ID] = task
	return nil
}

func (s *taskStoreStub) UpdateTask(ctx context.Context, task Task) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.tasks[task.ID]; !ok {
		return persistence.ErrNotFound
	}
	s.tasks[task.ID] = task
	return nil
}

func (s *taskStoreStub) GetTask(ctx context.Context, id string) (Task, error) {
	if s.err != nil {
		return Task{}, s.err
	}
	task, ok := s.tasks[id]
	if !ok {
		return Task{}, persistence.ErrNotFound
	}
	return task, nil
}

func (s *taskStoreStub) ListTasks(ctx context.Context) ([]Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	ids := make([]string, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]Task, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.tasks[id])
	}
	return out, nil
}

func (s *taskStoreStub) DeleteTask(ctx context.Context, id string) error {
	if _, ok := s.tasks[id]; !ok {
		return persistence.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

// newTestPlanner assembles a PlannerService over fresh stubs.
func newTestPlanner() (*PlannerService, *templateStoreStub, *dayStoreStub, *fastingCalendarStub) {
	templates := newTemplateStoreStub()
	days := newDayStoreStub()
	fasting := newFastingCalendarStub()
	planner := NewPlannerService(templates, days, fasting, testfixtures.SubdivideConfig())
	return planner, templates, days, fasting
}
