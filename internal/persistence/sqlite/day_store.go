package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/persistence"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/schedule"
)

// GetDaySchedule returns the captured schedule for a date in stored order.
// Capture existence is tracked by the captured_days marker, so a captured
// day that was edited down to zero blocks stays authoritative.
func (s *Store) GetDaySchedule(ctx context.Context, dateKey string) ([]schedule.Activity, error) {
	var captured int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM captured_days WHERE date_key = ?`, dateKey).Scan(&captured)
	switch {
	case err == sql.ErrNoRows:
		return nil, persistence.ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("read capture marker %s: %w", dateKey, err)
	}

	const query = `
SELECT id, name, start_minute, end_minute, category, constraint_kind, original_activity_id, duration_minutes
FROM day_schedules
WHERE date_key = ?
ORDER BY position`
	rows, err := s.db.QueryContext(ctx, query, dateKey)
	if err != nil {
		return nil, fmt.Errorf("get day schedule %s: %w", dateKey, err)
	}
	defer rows.Close()

	var activities []schedule.Activity
	for rows.Next() {
		var (
			a        schedule.Activity
			category string
			kind     string
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.Start, &a.End, &category, &kind, &a.OriginalActivityID, &a.DurationMinutes); err != nil {
			return nil, fmt.Errorf("scan day block: %w", err)
		}
		a.Category = schedule.Category(category)
		a.Constraint = schedule.Constraint(kind)
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get day schedule %s: %w", dateKey, err)
	}
	return activities, nil
}

// SaveDaySchedule replaces the captured schedule for a date atomically.
func (s *Store) SaveDaySchedule(ctx context.Context, dateKey string, activities []schedule.Activity) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM day_schedules WHERE date_key = ?`, dateKey); err != nil {
			return fmt.Errorf("clear day schedule %s: %w", dateKey, err)
		}
		const stmt = `
INSERT INTO day_schedules (date_key, position, id, name, start_minute, end_minute, category, constraint_kind, original_activity_id, duration_minutes)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		for position, a := range activities {
			_, err := tx.ExecContext(ctx, stmt,
				dateKey,
				position,
				a.ID,
				a.Name,
				a.Start,
				a.End,
				string(a.Category),
				string(a.Constraint),
				a.OriginalActivityID,
				a.DurationMinutes,
			)
			if err != nil {
				return fmt.Errorf("store day block %s: %w", a.ID, mapSQLError(err))
			}
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO captured_days (date_key) VALUES (?) ON CONFLICT(date_key) DO NOTHING`, dateKey); err != nil {
			return fmt.Errorf("mark day captured %s: %w", dateKey, err)
		}
		return nil
	})
}

// DeleteDaySchedule drops the captured schedule for a date.
func (s *Store) DeleteDaySchedule(ctx context.Context, dateKey string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM day_schedules WHERE date_key = ?`, dateKey); err != nil {
			return fmt.Errorf("delete day schedule %s: %w", dateKey, err)
		}
		result, err := tx.ExecContext(ctx, `DELETE FROM captured_days WHERE date_key = ?`, dateKey)
		if err != nil {
			return fmt.Errorf("clear capture marker %s: %w", dateKey, err)
		}
		return requireAffected(result)
	})
}

// IsFastingDay reports whether the date is flagged as a fasting day.
func (s *Store) IsFastingDay(ctx context.Context, dateKey string) (bool, error) {
	var found int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM fasting_dates WHERE date_key = ?`, dateKey).Scan(&found)
	switch {
	case err == sql.ErrNoRows:
		return false, nil
	case err != nil:
		return false, fmt.Errorf("read fasting flag %s: %w", dateKey, err)
	}
	return true, nil
}

// SetFastingDay flags or unflags a date. Clearing an unflagged date is a
// no-op, not an error.
func (s *Store) SetFastingDay(ctx context.Context, dateKey string, fasting bool) error {
	if fasting {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO fasting_dates (date_key) VALUES (?) ON CONFLICT(date_key) DO NOTHING`, dateKey)
		if err != nil {
			return fmt.Errorf("set fasting flag %s: %w", dateKey, err)
		}
		return nil
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM fasting_dates WHERE date_key = ?`, dateKey); err != nil {
		return fmt.Errorf("clear fasting flag %s: %w", dateKey, err)
	}
	return nil
}
