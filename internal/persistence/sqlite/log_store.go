package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/application"
)

const timestampLayout = time.RFC3339

// UpsertLogEntry inserts or replaces one activity log record.
func (s *Store) UpsertLogEntry(ctx context.Context, entry application.LogEntry) error {
	const stmt = `
INSERT INTO activity_logs (id, date_key, activity_id, actual_start, actual_end, linked_task_id, linked_subtask_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  date_key=excluded.date_key,
  activity_id=excluded.activity_id,
  actual_start=excluded.actual_start,
  actual_end=excluded.actual_end,
  linked_task_id=excluded.linked_task_id,
  linked_subtask_id=excluded.linked_subtask_id,
  updated_at=excluded.updated_at`
	_, err := s.db.ExecContext(ctx, stmt,
		entry.ID,
		entry.DateKey,
		entry.ActivityID,
		entry.ActualStart,
		entry.ActualEnd,
		entry.LinkedTaskID,
		entry.LinkedSubtaskID,
		entry.CreatedAt.UTC().Format(timestampLayout),
		entry.UpdatedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("upsert log entry: %w", mapSQLError(err))
	}
	return nil
}

// ListLogEntriesForDate returns the entries recorded against one date.
func (s *Store) ListLogEntriesForDate(ctx context.Context, dateKey string) ([]application.LogEntry, error) {
	return s.listLogEntries(ctx, `date_key = ?`, dateKey)
}

// ListLogEntriesBetween returns the entries recorded between two date keys,
// inclusive on both ends.
func (s *Store) ListLogEntriesBetween(ctx context.Context, fromKey, toKey string) ([]application.LogEntry, error) {
	return s.listLogEntries(ctx, `date_key >= ? AND date_key <= ?`, fromKey, toKey)
}

func (s *Store) listLogEntries(ctx context.Context, where string, args ...any) ([]application.LogEntry, error) {
	query := `
SELECT id, date_key, activity_id, actual_start, actual_end, linked_task_id, linked_subtask_id, created_at, updated_at
FROM activity_logs
WHERE ` + where + `
ORDER BY date_key, actual_start, id`
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list log entries: %w", err)
	}
	defer rows.Close()

	var entries []application.LogEntry
	for rows.Next() {
		var (
			entry     application.LogEntry
			taskID    sql.NullString
			subtaskID sql.NullString
			createdAt string
			updatedAt string
		)
		if err := rows.Scan(&entry.ID, &entry.DateKey, &entry.ActivityID, &entry.ActualStart, &entry.ActualEnd, &taskID, &subtaskID, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan log entry: %w", err)
		}
		if taskID.Valid {
			entry.LinkedTaskID = &taskID.String
		}
		if subtaskID.Valid {
			entry.LinkedSubtaskID = &subtaskID.String
		}
		if entry.CreatedAt, err = time.Parse(timestampLayout, createdAt); err != nil {
			return nil, fmt.Errorf("parse log created_at: %w", err)
		}
		if entry.UpdatedAt, err = time.Parse(timestampLayout, updatedAt); err != nil {
			return nil, fmt.Errorf("parse log updated_at: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list log entries: %w", err)
	}
	return entries, nil
}

// DeleteLogEntry removes one log record by id.
func (s *Store) DeleteLogEntry(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM activity_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete log entry: %w", err)
	}
	return requireAffected(result)
}
