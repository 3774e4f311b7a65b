package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// TaskStore persists tasks and their subtasks.
type TaskStore interface {
	CreateTask(ctx context.Context, task Task) error
	UpdateTask(ctx context.Context, task Task) error
	GetTask(ctx context.Context, id string) (Task, error)
	ListTasks(ctx context.Context) ([]Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// Matrix groups tasks by Eisenhower quadrant.
type Matrix map[Quadrant][]Task

// TaskService owns the task/subtask tracker and its Eisenhower view.
type TaskService struct {
	tasks       TaskStore
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewTaskService wires dependencies for task tracking.
func NewTaskService(tasks TaskStore, idGenerator func() string, now func() time.Time) *TaskService {
	return NewTaskServiceWithLogger(tasks, idGenerator, now, nil)
}

// NewTaskServiceWithLogger wires dependencies plus a base logger.
func NewTaskServiceWithLogger(tasks TaskStore, idGenerator func() string, now func() time.Time, logger *slog.Logger) *TaskService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &TaskService{tasks: tasks, idGenerator: idGenerator, now: now, logger: defaultLogger(logger)}
}

// Create validates and stores a new task.
func (s *TaskService) Create(ctx context.Context, input TaskInput) (Task, error) {
	if s == nil {
		return Task{}, fmt.Errorf("TaskService is nil")
	}
	if strings.TrimSpace(input.Title) == "" {
		vErr := &ValidationError{}
		vErr.add("title", "title is required")
		return Task{}, vErr
	}

	createdAt := s.now()
	task := Task{
		ID:        s.idGenerator(),
		Title:     strings.TrimSpace(input.Title),
		Notes:     input.Notes,
		Urgent:    input.Urgent,
		Important: input.Important,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := s.tasks.CreateTask(ctx, task); err != nil {
		return Task{}, mapRepoError(err)
	}
	serviceLogger(ctx, s.logger, "task", "create").Info("created task", "id", task.ID, "quadrant", string(task.Quadrant()))
	return task, nil
}

// Update replaces a task's editable fields.
func (s *TaskService) Update(ctx context.Context, id string, input TaskInput) (Task, error) {
	if s == nil {
		return Task{}, fmt.Errorf("TaskService is nil")
	}
	task, err := s.tasks.GetTask(ctx, id)
	if err != nil {
		return Task{}, mapRepoError(err)
	}
	if strings.TrimSpace(input.Title) != "" {
		task.Title = strings.TrimSpace(input.Title)
	}
	task.Notes = input.Notes
	task.Urgent = input.Urgent
	task.Important = input.Important
	task.UpdatedAt = s.now()

	if err := s.tasks.UpdateTask(ctx, task); err != nil {
		return Task{}, mapRepoError(err)
	}
	return task, nil
}

// AddSubtask appends a step to a task.
func (s *TaskService) AddSubtask(ctx context.Context, taskID, title string) (Task, error) {
	if s == nil {
		return Task{}, fmt.Errorf("TaskService is nil")
	}
	if strings.TrimSpace(title) == "" {
		vErr := &ValidationError{}
		vErr.add("title", "title is required")
		return Task{}, vErr
	}
	task, err := s.tasks.GetTask(ctx, taskID)
	if err != nil {
		return Task{}, mapRepoError(err)
	}
	task.Subtasks = append(task.Subtasks, Subtask{ID: s.idGenerator(), Title: strings.TrimSpace(title)})
	task.UpdatedAt = s.now()

	if err := s.tasks.UpdateTask(ctx, task); err != nil {
		return Task{}, mapRepoError(err)
	}
	return task, nil
}

// ToggleSubtask flips a subtask's done flag. Completing the last open
// subtask marks the task done; reopening any subtask reopens the task.
func (s *TaskService) ToggleSubtask(ctx context.Context, taskID, subtaskID string) (Task, error) {
	if s == nil {
		return Task{}, fmt.Errorf("TaskService is nil")
	}
	task, err := s.tasks.GetTask(ctx, taskID)
	if err != nil {
		return Task{}, mapRepoError(err)
	}

	found := false
	allDone := true
	for i := range task.Subtasks {
		if task.Subtasks[i].ID == subtaskID {
			task.Subtasks[i].Done = !task.Subtasks[i].Done
			found = true
		}
		if !task.Subtasks[i].Done {
			allDone = false
		}
	}
	if !found {
		return Task{}, ErrNotFound
	}
	task.Done = allDone && len(task.Subtasks) > 0
	task.UpdatedAt = s.now()

	if err := s.tasks.UpdateTask(ctx, task); err != nil {
		return Task{}, mapRepoError(err)
	}
	return task, nil
}

// Complete marks a task (and all of its subtasks) done.
func (s *TaskService) Complete(ctx context.Context, id string) (Task, error) {
	if s == nil {
		return Task{}, fmt.Errorf("TaskService is nil")
	}
	task, err := s.tasks.GetTask(ctx, id)
	if err != nil {
		return Task{}, mapRepoError(err)
	}
	task.Done = true
	for i := range task.Subtasks {
		task.Subtasks[i].Done = true
	}
	task.UpdatedAt = s.now()

	if err := s.tasks.UpdateTask(ctx, task); err != nil {
		return Task{}, mapRepoError(err)
	}
	return task, nil
}

// Delete removes a task and its subtasks.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	if s == nil {
		return fmt.Errorf("TaskService is nil")
	}
	if err := s.tasks.DeleteTask(ctx, id); err != nil {
		return mapRepoError(err)
	}
	return nil
}

// MatrixView groups all open tasks into the four Eisenhower quadrants,
// preserving store order within each quadrant.
func (s *TaskService) MatrixView(ctx context.Context, includeDone bool) (Matrix, error) {
	if s == nil {
		return nil, fmt.Errorf("TaskService is nil")
	}
	tasks, err := s.tasks.ListTasks(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}

	matrix := Matrix{}
	for _, task := range tasks {
		if task.Done && !includeDone {
			continue
		}
		q := task.Quadrant()
		matrix[q] = append(matrix[q], task)
	}
	return matrix, nil
}
