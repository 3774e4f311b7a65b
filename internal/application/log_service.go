package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/schedule"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/timeutil"
)

// LogStore persists activity log records.
type LogStore interface {
	UpsertLogEntry(ctx context.Context, entry LogEntry) error
	ListLogEntriesForDate(ctx context.Context, dateKey string) ([]LogEntry, error)
	ListLogEntriesBetween(ctx context.Context, fromKey, toKey string) ([]LogEntry, error)
	DeleteLogEntry(ctx context.Context, id string) error
}

// RecordLogParams wraps the inputs for logging time against a block.
type RecordLogParams struct {
	Date            time.Time
	ActivityID      string
	ActualStart     string // "HH:MM"
	ActualEnd       string // "HH:MM"
	LinkedTaskID    *string
	LinkedSubtaskID *string
}

// LogService records the time actually spent on scheduled blocks. The day's
// generated schedule supplies the universe of valid activity ids, so an
// entry can never reference a block the day does not contain.
type LogService struct {
	planner     *PlannerService
	logs        LogStore
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewLogService wires dependencies for activity logging.
func NewLogService(planner *PlannerService, logs LogStore, idGenerator func() string, now func() time.Time) *LogService {
	return NewLogServiceWithLogger(planner, logs, idGenerator, now, nil)
}

// NewLogServiceWithLogger wires dependencies plus a base logger.
func NewLogServiceWithLogger(planner *PlannerService, logs LogStore, idGenerator func() string, now func() time.Time, logger *slog.Logger) *LogService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &LogService{
		planner:     planner,
		logs:        logs,
		idGenerator: idGenerator,
		now:         now,
		logger:      defaultLogger(logger),
	}
}

// Record validates and stores one log entry for a scheduled block.
func (s *LogService) Record(ctx context.Context, params RecordLogParams) (LogEntry, error) {
	if s == nil {
		return LogEntry{}, fmt.Errorf("LogService is nil")
	}

	vErr := &ValidationError{}
	start, err := timeutil.ToMinutes(params.ActualStart)
	if err != nil {
		vErr.add("actual_start", fmt.Sprintf("invalid time %q", params.ActualStart))
	}
	end, err := timeutil.ToMinutes(params.ActualEnd)
	if err != nil {
		vErr.add("actual_end", fmt.Sprintf("invalid time %q", params.ActualEnd))
	}
	if params.ActivityID == "" {
		vErr.add("activity_id", "activity id is required")
	}
	if vErr.HasErrors() {
		return LogEntry{}, vErr
	}

	day, err := s.planner.GenerateDay(ctx, GenerateDayParams{Date: params.Date, ConsiderFasting: true})
	if err != nil {
		return LogEntry{}, err
	}
	if !dayContainsActivity(day, params.ActivityID) {
		return LogEntry{}, fmt.Errorf("%w: activity %q is not on the schedule for %s", ErrActivityNotFound, params.ActivityID, timeutil.DateKey(params.Date))
	}

	createdAt := s.now()
	entry := LogEntry{
		ID:              s.idGenerator(),
		DateKey:         timeutil.DateKey(params.Date),
		ActivityID:      params.ActivityID,
		ActualStart:     start,
		ActualEnd:       end,
		LinkedTaskID:    cloneStringPtr(params.LinkedTaskID),
		LinkedSubtaskID: cloneStringPtr(params.LinkedSubtaskID),
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}

	if err := s.logs.UpsertLogEntry(ctx, entry); err != nil {
		return LogEntry{}, mapRepoError(err)
	}
	serviceLogger(ctx, s.logger, "log", "record", "date", entry.DateKey).Info("recorded activity log", "activity", entry.ActivityID)
	return entry, nil
}

// ListForDate returns the log entries recorded against a date.
func (s *LogService) ListForDate(ctx context.Context, date time.Time) ([]LogEntry, error) {
	if s == nil {
		return nil, fmt.Errorf("LogService is nil")
	}
	entries, err := s.logs.ListLogEntriesForDate(ctx, timeutil.DateKey(date))
	if err != nil {
		return nil, mapRepoError(err)
	}
	return entries, nil
}

// Delete removes a log entry by id.
func (s *LogService) Delete(ctx context.Context, id string) error {
	if s == nil {
		return fmt.Errorf("LogService is nil")
	}
	if err := s.logs.DeleteLogEntry(ctx, id); err != nil {
		return mapRepoError(err)
	}
	return nil
}

func dayContainsActivity(day []schedule.Activity, activityID string) bool {
	for _, a := range day {
		if a.ID == activityID {
			return true
		}
	}
	return false
}

func cloneStringPtr(value *string) *string {
	if value == nil {
		return nil
	}
	clone := *value
	return &clone
}
