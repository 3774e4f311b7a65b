package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/persistence"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/schedule"
)

// ListTemplate returns a template collection ordered by start minute.
func (s *Store) ListTemplate(ctx context.Context, key schedule.TemplateKey) ([]schedule.Activity, error) {
	const query = `
SELECT id, name, start_minute, end_minute, category, constraint_kind, frequency, weekdays
FROM template_activities
WHERE template_key = ?
ORDER BY start_minute, id`
	rows, err := s.db.QueryContext(ctx, query, string(key))
	if err != nil {
		return nil, fmt.Errorf("list template %s: %w", key, err)
	}
	defer rows.Close()

	var activities []schedule.Activity
	for rows.Next() {
		var (
			a         schedule.Activity
			category  string
			kind      string
			frequency int
			weekdays  string
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.Start, &a.End, &category, &kind, &frequency, &weekdays); err != nil {
			return nil, fmt.Errorf("scan template activity: %w", err)
		}
		a.Category = schedule.Category(category)
		a.Constraint = schedule.Constraint(kind)
		a.Recurrence = schedule.Recurrence{
			Frequency: schedule.Frequency(frequency),
			Weekdays:  decodeWeekdays(weekdays),
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list template %s: %w", key, err)
	}
	return activities, nil
}

// SaveTemplateActivity inserts or replaces one template activity.
func (s *Store) SaveTemplateActivity(ctx context.Context, key schedule.TemplateKey, activity schedule.Activity) error {
	const stmt = `
INSERT INTO template_activities (template_key, id, name, start_minute, end_minute, category, constraint_kind, frequency, weekdays)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(template_key, id) DO UPDATE SET
  name=excluded.name,
  start_minute=excluded.start_minute,
  end_minute=excluded.end_minute,
  category=excluded.category,
  constraint_kind=excluded.constraint_kind,
  frequency=excluded.frequency,
  weekdays=excluded.weekdays`
	_, err := s.db.ExecContext(ctx, stmt,
		string(key),
		activity.ID,
		activity.Name,
		activity.Start,
		activity.End,
		string(activity.Category),
		string(activity.Constraint),
		int(activity.Recurrence.Frequency),
		encodeWeekdays(activity.Recurrence.Weekdays),
	)
	if err != nil {
		return fmt.Errorf("save template activity: %w", mapSQLError(err))
	}
	return nil
}

// DeleteTemplateActivity removes one template activity by id.
func (s *Store) DeleteTemplateActivity(ctx context.Context, key schedule.TemplateKey, id string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM template_activities WHERE template_key = ? AND id = ?`, string(key), id)
	if err != nil {
		return fmt.Errorf("delete template activity: %w", err)
	}
	return requireAffected(result)
}

// ListOverrides returns every weekly override.
func (s *Store) ListOverrides(ctx context.Context) ([]schedule.WeeklyOverride, error) {
	const query = `
SELECT id, name, start_minute, end_minute, category, constraint_kind, weekdays
FROM weekly_overrides
ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	defer rows.Close()

	var overrides []schedule.WeeklyOverride
	for rows.Next() {
		var (
			o        schedule.WeeklyOverride
			category string
			kind     string
			weekdays string
		)
		if err := rows.Scan(&o.Activity.ID, &o.Activity.Name, &o.Activity.Start, &o.Activity.End, &category, &kind, &weekdays); err != nil {
			return nil, fmt.Errorf("scan override: %w", err)
		}
		o.Activity.Category = schedule.Category(category)
		o.Activity.Constraint = schedule.Constraint(kind)
		o.Weekdays = decodeWeekdays(weekdays)
		overrides = append(overrides, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	return overrides, nil
}

// SaveOverride inserts or replaces one weekly override.
func (s *Store) SaveOverride(ctx context.Context, override schedule.WeeklyOverride) error {
	const stmt = `
INSERT INTO weekly_overrides (id, name, start_minute, end_minute, category, constraint_kind, weekdays)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  name=excluded.name,
  start_minute=excluded.start_minute,
  end_minute=excluded.end_minute,
  category=excluded.category,
  constraint_kind=excluded.constraint_kind,
  weekdays=excluded.weekdays`
	_, err := s.db.ExecContext(ctx, stmt,
		override.Activity.ID,
		override.Activity.Name,
		override.Activity.Start,
		override.Activity.End,
		string(override.Activity.Category),
		string(override.Activity.Constraint),
		encodeWeekdays(override.Weekdays),
	)
	if err != nil {
		return fmt.Errorf("save override: %w", mapSQLError(err))
	}
	return nil
}

// DeleteOverride removes one weekly override by id.
func (s *Store) DeleteOverride(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM weekly_overrides WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete override: %w", err)
	}
	return requireAffected(result)
}

// encodeWeekdays stores a weekday set as a comma separated number list.
func encodeWeekdays(weekdays []time.Weekday) string {
	if len(weekdays) == 0 {
		return ""
	}
	parts := make([]string, 0, len(weekdays))
	for _, d := range weekdays {
		parts = append(parts, strconv.Itoa(int(d)))
	}
	return strings.Join(parts, ",")
}

func decodeWeekdays(encoded string) []time.Weekday {
	if encoded == "" {
		return nil
	}
	parts := strings.Split(encoded, ",")
	weekdays := make([]time.Weekday, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		weekdays = append(weekdays, time.Weekday(n))
	}
	return weekdays
}

// requireAffected maps zero-row writes to ErrNotFound.
func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return persistence.ErrNotFound
	}
	return nil
}
