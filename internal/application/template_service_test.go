package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/schedule"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/testfixtures"
)

func newTestTemplateService() (*TemplateService, *templateStoreStub) {
	store := newTemplateStoreStub()
	ids := testfixtures.NewIDGenerator("tpl")
	return NewTemplateService(store, ids.NextFunc()), store
}

func TestTemplateAddActivity(t *testing.T) {
	t.Parallel()

	svc, store := newTestTemplateService()
	activity, err := svc.AddActivity(context.Background(), schedule.TemplateWeekday, TemplateActivityInput{
		Name:      "Evening walk",
		StartTime: "19:00",
		EndTime:   "19:45",
		Category:  schedule.CategoryPhysical,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if activity.ID != "tpl-1" {
		t.Fatalf("id = %q, want tpl-1", activity.ID)
	}
	if activity.Start != 19*60 || activity.End != 19*60+45 {
		t.Fatalf("times not parsed: [%d, %d)", activity.Start, activity.End)
	}
	if activity.Constraint != schedule.ConstraintAdjustable {
		t.Fatalf("constraint default not applied: %q", activity.Constraint)
	}
	if len(store.savedActivities) != 1 {
		t.Fatalf("savedActivities = %d, want 1", len(store.savedActivities))
	}
}

func TestTemplateAddActivityValidation(t *testing.T) {
	t.Parallel()

	svc, store := newTestTemplateService()
	cases := []struct {
		name  string
		key   schedule.TemplateKey
		input TemplateActivityInput
	}{
		{name: "empty name", key: schedule.TemplateWeekday, input: TemplateActivityInput{StartTime: "09:00", EndTime: "10:00"}},
		{name: "bad start", key: schedule.TemplateWeekday, input: TemplateActivityInput{Name: "x", StartTime: "9am", EndTime: "10:00"}},
		{name: "zero length", key: schedule.TemplateWeekday, input: TemplateActivityInput{Name: "x", StartTime: "09:00", EndTime: "09:00"}},
		{name: "bad constraint", key: schedule.TemplateWeekday, input: TemplateActivityInput{Name: "x", StartTime: "09:00", EndTime: "10:00", Constraint: "locked"}},
		{name: "unknown template", key: "holiday", input: TemplateActivityInput{Name: "x", StartTime: "09:00", EndTime: "10:00"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.AddActivity(context.Background(), tc.key, tc.input)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
	if len(store.savedActivities) != 0 {
		t.Fatalf("invalid input reached the store %d times", len(store.savedActivities))
	}
}

func TestTemplateUpdateActivity(t *testing.T) {
	t.Parallel()

	svc, _ := newTestTemplateService()
	updated, err := svc.UpdateActivity(context.Background(), schedule.TemplateWeekday, "study", TemplateActivityInput{
		Name:       "Deep work",
		StartTime:  "08:30",
		EndTime:    "10:00",
		Category:   schedule.CategoryAcademic,
		Recurrence: schedule.Recurrence{Frequency: schedule.FrequencyDaily},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != "study" {
		t.Fatalf("update must keep the id, got %q", updated.ID)
	}
	if updated.Name != "Deep work" || updated.Start != 8*60+30 {
		t.Fatalf("fields not replaced: %+v", updated)
	}
}

func TestTemplateUpdateMissingActivity(t *testing.T) {
	t.Parallel()

	svc, _ := newTestTemplateService()
	_, err := svc.UpdateActivity(context.Background(), schedule.TemplateWeekday, "ghost", TemplateActivityInput{
		Name: "x", StartTime: "09:00", EndTime: "10:00",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTemplateDeleteActivity(t *testing.T) {
	t.Parallel()

	svc, store := newTestTemplateService()
	if err := svc.DeleteActivity(context.Background(), schedule.TemplateWeekday, "gym"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, a := range store.templates[schedule.TemplateWeekday] {
		if a.ID == "gym" {
			t.Fatal("activity still present after delete")
		}
	}
	if err := svc.DeleteActivity(context.Background(), schedule.TemplateWeekday, "gym"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestTemplateSetOverride(t *testing.T) {
	t.Parallel()

	svc, store := newTestTemplateService()
	override, err := svc.SetOverride(context.Background(), TemplateActivityInput{
		Name:       "Mentoring call",
		StartTime:  "20:00",
		EndTime:    "21:00",
		Constraint: schedule.ConstraintHard,
	}, []time.Weekday{time.Tuesday, time.Thursday})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(override.Weekdays) != 2 {
		t.Fatalf("weekdays = %v", override.Weekdays)
	}
	if len(store.savedOverrides) != 1 {
		t.Fatalf("savedOverrides = %d, want 1", len(store.savedOverrides))
	}
}

func TestTemplateSetOverrideValidatesWeekdays(t *testing.T) {
	t.Parallel()

	svc, _ := newTestTemplateService()
	input := TemplateActivityInput{Name: "x", StartTime: "09:00", EndTime: "10:00"}

	for _, weekdays := range [][]time.Weekday{nil, {time.Weekday(9)}} {
		_, err := svc.SetOverride(context.Background(), input, weekdays)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("weekdays %v: expected ValidationError, got %v", weekdays, err)
		}
	}
}

func TestTemplateRemoveOverride(t *testing.T) {
	t.Parallel()

	svc, store := newTestTemplateService()
	if err := svc.RemoveOverride(context.Background(), "halaqa"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.overrides) != 0 {
		t.Fatalf("override not removed: %+v", store.overrides)
	}
	if err := svc.RemoveOverride(context.Background(), "halaqa"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
