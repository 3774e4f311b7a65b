package application

import (
	"context"
	"errors"
	"testing"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/testfixtures"
)

func newTestTaskService() (*TaskService, *taskStoreStub) {
	store := newTaskStoreStub()
	ids := testfixtures.NewIDGenerator("task")
	clock := testfixtures.NewClock(testfixtures.ReferenceTime())
	return NewTaskService(store, ids.NextFunc(), clock.Now), store
}

func TestTaskCreate(t *testing.T) {
	t.Parallel()

	svc, store := newTestTaskService()
	task, err := svc.Create(context.Background(), TaskInput{Title: "  Write thesis outline ", Urgent: true, Important: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != "task-1" {
		t.Fatalf("id = %q", task.ID)
	}
	if task.Title != "Write thesis outline" {
		t.Fatalf("title not trimmed: %q", task.Title)
	}
	if task.Quadrant() != QuadrantDoFirst {
		t.Fatalf("quadrant = %q", task.Quadrant())
	}
	if _, ok := store.tasks[task.ID]; !ok {
		t.Fatal("task not stored")
	}
}

func TestTaskCreateRequiresTitle(t *testing.T) {
	t.Parallel()

	svc, _ := newTestTaskService()
	_, err := svc.Create(context.Background(), TaskInput{Title: "   "})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestTaskSubtaskCompletionMarksTaskDone(t *testing.T) {
	t.Parallel()

	svc, _ := newTestTaskService()
	task, err := svc.Create(context.Background(), TaskInput{Title: "Revise chapter"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	task, err = svc.AddSubtask(context.Background(), task.ID, "Read feedback")
	if err != nil {
		t.Fatalf("add subtask: %v", err)
	}
	task, err = svc.AddSubtask(context.Background(), task.ID, "Apply edits")
	if err != nil {
		t.Fatalf("add subtask: %v", err)
	}
	if len(task.Subtasks) != 2 {
		t.Fatalf("subtasks = %d, want 2", len(task.Subtasks))
	}

	task, err = svc.ToggleSubtask(context.Background(), task.ID, task.Subtasks[0].ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if task.Done {
		t.Fatal("task done with an open subtask")
	}
	if got := task.Progress(); got != 0.5 {
		t.Fatalf("progress = %v, want 0.5", got)
	}

	task, err = svc.ToggleSubtask(context.Background(), task.ID, task.Subtasks[1].ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !task.Done {
		t.Fatal("completing the last subtask must mark the task done")
	}

	// Reopening any subtask reopens the task.
	task, err = svc.ToggleSubtask(context.Background(), task.ID, task.Subtasks[0].ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if task.Done {
		t.Fatal("task still done after a subtask was reopened")
	}
}

func TestTaskToggleUnknownSubtask(t *testing.T) {
	t.Parallel()

	svc, _ := newTestTaskService()
	task, err := svc.Create(context.Background(), TaskInput{Title: "x"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.ToggleSubtask(context.Background(), task.ID, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTaskComplete(t *testing.T) {
	t.Parallel()

	svc, _ := newTestTaskService()
	task, err := svc.Create(context.Background(), TaskInput{Title: "x"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.AddSubtask(context.Background(), task.ID, "step"); err != nil {
		t.Fatalf("add subtask: %v", err)
	}

	task, err = svc.Complete(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !task.Done {
		t.Fatal("task not done")
	}
	for _, st := range task.Subtasks {
		if !st.Done {
			t.Fatalf("subtask %q left open", st.ID)
		}
	}
}

func TestTaskMatrixView(t *testing.T) {
	t.Parallel()

	svc, _ := newTestTaskService()
	inputs := []TaskInput{
		{Title: "submit form", Urgent: true, Important: true},
		{Title: "plan semester", Important: true},
		{Title: "reply to email", Urgent: true},
		{Title: "scroll feed"},
	}
	var doneID string
	for i, input := range inputs {
		task, err := svc.Create(context.Background(), input)
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if i == 0 {
			doneID = task.ID
		}
	}
	if _, err := svc.Complete(context.Background(), doneID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	matrix, err := svc.MatrixView(context.Background(), false)
	if err != nil {
		t.Fatalf("matrix: %v", err)
	}
	if len(matrix[QuadrantDoFirst]) != 0 {
		t.Fatalf("done task still listed: %+v", matrix[QuadrantDoFirst])
	}
	for _, q := range []Quadrant{QuadrantSchedule, QuadrantDelegate, QuadrantEliminate} {
		if len(matrix[q]) != 1 {
			t.Fatalf("quadrant %q has %d tasks, want 1", q, len(matrix[q]))
		}
	}

	withDone, err := svc.MatrixView(context.Background(), true)
	if err != nil {
		t.Fatalf("matrix: %v", err)
	}
	if len(withDone[QuadrantDoFirst]) != 1 {
		t.Fatalf("includeDone dropped the completed task")
	}
}

func TestTaskUpdateAndDelete(t *testing.T) {
	t.Parallel()

	svc, store := newTestTaskService()
	task, err := svc.Create(context.Background(), TaskInput{Title: "draft"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), task.ID, TaskInput{Title: "final", Important: true})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "final" || !updated.Important {
		t.Fatalf("fields not applied: %+v", updated)
	}

	if err := svc.Delete(context.Background(), task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.tasks) != 0 {
		t.Fatal("task survived delete")
	}
	if _, err := svc.Update(context.Background(), task.ID, TaskInput{Title: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
