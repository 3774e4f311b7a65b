package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// migration is one ordered schema step. Applied versions are recorded in
// schema_migrations and never rerun.
type migration struct {
	version int
	ddl     string
}

var migrations = []migration{
	{
		version: 1,
		ddl: `
CREATE TABLE template_activities (
  template_key   TEXT NOT NULL,
  id             TEXT NOT NULL,
  name           TEXT NOT NULL,
  start_minute   INTEGER NOT NULL,
  end_minute     INTEGER NOT NULL,
  category       TEXT NOT NULL,
  constraint_kind TEXT NOT NULL,
  frequency      INTEGER NOT NULL DEFAULT 0,
  weekdays       TEXT NOT NULL DEFAULT '',
  PRIMARY KEY (template_key, id)
);

CREATE TABLE weekly_overrides (
  id             TEXT PRIMARY KEY,
  name           TEXT NOT NULL,
  start_minute   INTEGER NOT NULL,
  end_minute     INTEGER NOT NULL,
  category       TEXT NOT NULL,
  constraint_kind TEXT NOT NULL,
  weekdays       TEXT NOT NULL
);

CREATE TABLE day_schedules (
  date_key       TEXT NOT NULL,
  position       INTEGER NOT NULL,
  id             TEXT NOT NULL,
  name           TEXT NOT NULL,
  start_minute   INTEGER NOT NULL,
  end_minute     INTEGER NOT NULL,
  category       TEXT NOT NULL,
  constraint_kind TEXT NOT NULL,
  original_activity_id TEXT NOT NULL DEFAULT '',
  duration_minutes INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (date_key, position)
);

CREATE TABLE fasting_dates (
  date_key TEXT PRIMARY KEY
);
`,
	},
	{
		version: 2,
		ddl: `
CREATE TABLE activity_logs (
  id               TEXT PRIMARY KEY,
  date_key         TEXT NOT NULL,
  activity_id      TEXT NOT NULL,
  actual_start     INTEGER NOT NULL,
  actual_end       INTEGER NOT NULL,
  linked_task_id   TEXT,
  linked_subtask_id TEXT,
  created_at       TEXT NOT NULL,
  updated_at       TEXT NOT NULL
);
CREATE INDEX idx_activity_logs_date ON activity_logs (date_key);
`,
	},
	{
		version: 3,
		ddl: `
CREATE TABLE tasks (
  id         TEXT PRIMARY KEY,
  title      TEXT NOT NULL,
  notes      TEXT NOT NULL DEFAULT '',
  urgent     INTEGER NOT NULL DEFAULT 0,
  important  INTEGER NOT NULL DEFAULT 0,
  done       INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE subtasks (
  id       TEXT PRIMARY KEY,
  task_id  TEXT NOT NULL REFERENCES tasks (id) ON DELETE CASCADE,
  position INTEGER NOT NULL,
  title    TEXT NOT NULL,
  done     INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX idx_subtasks_task ON subtasks (task_id, position);
`,
	},
	{
		version: 4,
		ddl: `
CREATE TABLE captured_days (
  date_key TEXT PRIMARY KEY
);
INSERT INTO captured_days (date_key) SELECT DISTINCT date_key FROM day_schedules;
`,
	},
}

// migrate applies every pending migration in order, each in its own
// transaction.
func (s *Store) migrate(ctx context.Context) error {
	const track = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  applied_at TEXT NOT NULL DEFAULT (datetime('now'))
);`
	if _, err := s.db.ExecContext(ctx, track); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	var current int
	if err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		err := s.withTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, m.ddl); err != nil {
				return fmt.Errorf("apply migration %d: %w", m.version, err)
			}
			if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?)`, m.version); err != nil {
				return fmt.Errorf("record migration %d: %w", m.version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
