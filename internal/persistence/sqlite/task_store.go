package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/application"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/persistence"
)

// CreateTask stores a new task. An existing id yields ErrDuplicate.
func (s *Store) CreateTask(ctx context.Context, task application.Task) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		const stmt = `
INSERT INTO tasks (id, title, notes, urgent, important, done, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
		_, err := tx.ExecContext(ctx, stmt,
			task.ID,
			task.Title,
			task.Notes,
			boolInt(task.Urgent),
			boolInt(task.Important),
			boolInt(task.Done),
			task.CreatedAt.UTC().Format(timestampLayout),
			task.UpdatedAt.UTC().Format(timestampLayout),
		)
		if err != nil {
			return fmt.Errorf("create task: %w", mapSQLError(err))
		}
		return saveSubtasks(ctx, tx, task)
	})
}

// UpdateTask replaces a task and its subtasks. A missing id yields
// ErrNotFound.
func (s *Store) UpdateTask(ctx context.Context, task application.Task) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		const stmt = `
UPDATE tasks
SET title = ?, notes = ?, urgent = ?, important = ?, done = ?, updated_at = ?
WHERE id = ?`
		result, err := tx.ExecContext(ctx, stmt,
			task.Title,
			task.Notes,
			boolInt(task.Urgent),
			boolInt(task.Important),
			boolInt(task.Done),
			task.UpdatedAt.UTC().Format(timestampLayout),
			task.ID,
		)
		if err != nil {
			return fmt.Errorf("update task: %w", err)
		}
		if err := requireAffected(result); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM subtasks WHERE task_id = ?`, task.ID); err != nil {
			return fmt.Errorf("clear subtasks: %w", err)
		}
		return saveSubtasks(ctx, tx, task)
	})
}

// GetTask loads one task with its subtasks in stored order.
func (s *Store) GetTask(ctx context.Context, id string) (application.Task, error) {
	tasks, err := s.queryTasks(ctx, `WHERE id = ?`, id)
	if err != nil {
		return application.Task{}, err
	}
	if len(tasks) == 0 {
		return application.Task{}, persistence.ErrNotFound
	}
	return tasks[0], nil
}

// ListTasks returns every task ordered by creation time.
func (s *Store) ListTasks(ctx context.Context) ([]application.Task, error) {
	return s.queryTasks(ctx, ``)
}

// DeleteTask removes a task; its subtasks cascade.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return requireAffected(result)
}

func (s *Store) queryTasks(ctx context.Context, where string, args ...any) ([]application.Task, error) {
	query := `
SELECT id, title, notes, urgent, important, done, created_at, updated_at
FROM tasks ` + where + `
ORDER BY created_at, id`
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []application.Task
	for rows.Next() {
		var (
			task      application.Task
			urgent    int
			important int
			done      int
			createdAt string
			updatedAt string
		)
		if err := rows.Scan(&task.ID, &task.Title, &task.Notes, &urgent, &important, &done, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		task.Urgent = urgent != 0
		task.Important = important != 0
		task.Done = done != 0
		if task.CreatedAt, err = time.Parse(timestampLayout, createdAt); err != nil {
			return nil, fmt.Errorf("parse task created_at: %w", err)
		}
		if task.UpdatedAt, err = time.Parse(timestampLayout, updatedAt); err != nil {
			return nil, fmt.Errorf("parse task updated_at: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	for i := range tasks {
		subtasks, err := s.loadSubtasks(ctx, tasks[i].ID)
		if err != nil {
			return nil, err
		}
		tasks[i].Subtasks = subtasks
	}
	return tasks, nil
}

func (s *Store) loadSubtasks(ctx context.Context, taskID string) ([]application.Subtask, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, done FROM subtasks WHERE task_id = ? ORDER BY position`, taskID)
	if err != nil {
		return nil, fmt.Errorf("list subtasks: %w", err)
	}
	defer rows.Close()

	var subtasks []application.Subtask
	for rows.Next() {
		var (
			st   application.Subtask
			done int
		)
		if err := rows.Scan(&st.ID, &st.Title, &done); err != nil {
			return nil, fmt.Errorf("scan subtask: %w", err)
		}
		st.Done = done != 0
		subtasks = append(subtasks, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list subtasks: %w", err)
	}
	return subtasks, nil
}

func saveSubtasks(ctx context.Context, tx *sql.Tx, task application.Task) error {
	const stmt = `INSERT INTO subtasks (id, task_id, position, title, done) VALUES (?, ?, ?, ?, ?)`
	for position, st := range task.Subtasks {
		if _, err := tx.ExecContext(ctx, stmt, st.ID, task.ID, position, st.Title, boolInt(st.Done)); err != nil {
			return fmt.Errorf("store subtask %s: %w", st.ID, mapSQLError(err))
		}
	}
	return nil
}

func boolInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
