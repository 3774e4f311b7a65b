package application

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/schedule"
)

var (
	testMonday = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	testFriday = time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
)

func scheduleIDs(list []schedule.Activity) []string {
	ids := make([]string, 0, len(list))
	for _, a := range list {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestPlannerGenerateDayComposesWeekday(t *testing.T) {
	t.Parallel()

	planner, _, _, _ := newTestPlanner()
	got, err := planner.GenerateDay(context.Background(), GenerateDayParams{Date: testMonday, ConsiderFasting: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"fajr", "study-part-1", "study-part-2", "review", "dhuhr", "gym"}
	if ids := scheduleIDs(got); !reflect.DeepEqual(ids, want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Start < got[i-1].Start {
			t.Fatalf("schedule not sorted: %v", scheduleIDs(got))
		}
	}
}

func TestPlannerGenerateDayIsIdempotent(t *testing.T) {
	t.Parallel()

	planner, _, _, _ := newTestPlanner()
	params := GenerateDayParams{Date: testMonday, ConsiderFasting: true}

	first, err := planner.GenerateDay(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := planner.GenerateDay(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated generation diverged:\n%+v\n%+v", first, second)
	}
}

func TestPlannerGenerateDayCustomScheduleWins(t *testing.T) {
	t.Parallel()

	planner, _, days, _ := newTestPlanner()
	custom := []schedule.Activity{
		{ID: "travel", Name: "Travel day", Start: 8 * 60, End: 20 * 60, Category: schedule.CategoryPersonal, Constraint: schedule.ConstraintHard, DurationMinutes: 720},
	}
	days.days["2026-03-09"] = custom

	got, err := planner.GenerateDay(context.Background(), GenerateDayParams{Date: testMonday, ConsiderFasting: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, custom) {
		t.Fatalf("custom schedule not returned verbatim: %+v", got)
	}
}

func TestPlannerGenerateDayFastingSwap(t *testing.T) {
	t.Parallel()

	planner, _, _, fasting := newTestPlanner()
	fasting.days["2026-03-09"] = true

	got, err := planner.GenerateDay(context.Background(), GenerateDayParams{Date: testMonday, ConsiderFasting: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ids := scheduleIDs(got)
	if ids[0] != "suhoor" {
		t.Fatalf("fasting template not selected: %v", ids)
	}

	// Friday stays congregational even when marked as fasting.
	fasting.days["2026-03-13"] = true
	got, err = planner.GenerateDay(context.Background(), GenerateDayParams{Date: testFriday, ConsiderFasting: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, a := range got {
		if a.ID == "suhoor" {
			t.Fatalf("fasting template displaced the congregational one: %v", scheduleIDs(got))
		}
	}
}

func TestPlannerGenerateDayRejectsUnknownTemplate(t *testing.T) {
	t.Parallel()

	planner, _, _, _ := newTestPlanner()
	_, err := planner.GenerateDay(context.Background(), GenerateDayParams{Date: testMonday, TemplateKey: "ramadan"})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := vErr.FieldErrors["template"]; !ok {
		t.Fatalf("missing template field error: %+v", vErr.FieldErrors)
	}
}

func TestPlannerApplyTemplateToDayCapturesVerbatim(t *testing.T) {
	t.Parallel()

	planner, _, days, _ := newTestPlanner()
	got, err := planner.ApplyTemplateToDay(context.Background(), GenerateDayParams{Date: testMonday, ConsiderFasting: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, ok := days.days["2026-03-09"]
	if !ok {
		t.Fatal("day schedule was not captured")
	}
	if !reflect.DeepEqual(stored, got) {
		t.Fatalf("stored schedule differs from the returned one")
	}

	// The captured list now bypasses regeneration entirely.
	regen, err := planner.GenerateDay(context.Background(), GenerateDayParams{Date: testMonday, ConsiderFasting: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(regen, got) {
		t.Fatalf("captured day was regenerated differently")
	}
}

func TestPlannerResetDay(t *testing.T) {
	t.Parallel()

	planner, _, days, _ := newTestPlanner()
	days.days["2026-03-09"] = []schedule.Activity{{ID: "x", Name: "X", Start: 0, End: 60}}

	if err := planner.ResetDay(context.Background(), testMonday); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := days.days["2026-03-09"]; ok {
		t.Fatal("captured day survived reset")
	}

	if err := planner.ResetDay(context.Background(), testMonday); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlannerSetFastingDay(t *testing.T) {
	t.Parallel()

	planner, _, _, fasting := newTestPlanner()

	if err := planner.SetFastingDay(context.Background(), testMonday, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fasting.days["2026-03-09"] {
		t.Fatal("fasting flag not stored")
	}

	day, err := planner.GenerateDay(context.Background(), GenerateDayParams{Date: testMonday, ConsiderFasting: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(day) == 0 || day[0].ID != "suhoor" {
		t.Fatalf("fasting template not applied after flagging: %+v", day)
	}

	if err := planner.SetFastingDay(context.Background(), testMonday, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fasting.days["2026-03-09"] {
		t.Fatal("fasting flag not cleared")
	}
}
