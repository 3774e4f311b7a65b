package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/schedule"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/timeutil"
)

// ReportService aggregates logged time by category and by day. Category
// attribution resolves each entry's activity id against the generated
// schedule for its date.
type ReportService struct {
	planner *PlannerService
	logs    LogStore
	logger  *slog.Logger
}

// NewReportService wires dependencies for report aggregation.
func NewReportService(planner *PlannerService, logs LogStore) *ReportService {
	return NewReportServiceWithLogger(planner, logs, nil)
}

// NewReportServiceWithLogger wires dependencies plus a base logger.
func NewReportServiceWithLogger(planner *PlannerService, logs LogStore, logger *slog.Logger) *ReportService {
	return &ReportService{planner: planner, logs: logs, logger: defaultLogger(logger)}
}

// Summarize aggregates the log entries recorded between two dates,
// inclusive on both ends.
func (s *ReportService) Summarize(ctx context.Context, from, to time.Time) (ReportSummary, error) {
	if s == nil {
		return ReportSummary{}, fmt.Errorf("ReportService is nil")
	}
	if to.Before(from) {
		vErr := &ValidationError{}
		vErr.add("range", "end of range precedes its start")
		return ReportSummary{}, vErr
	}

	fromKey := timeutil.DateKey(from)
	toKey := timeutil.DateKey(to)
	logger := serviceLogger(ctx, s.logger, "report", "summarize", "from", fromKey, "to", toKey)

	entries, err := s.logs.ListLogEntriesBetween(ctx, fromKey, toKey)
	if err != nil {
		return ReportSummary{}, mapRepoError(err)
	}

	byCategory := make(map[schedule.Category]*CategoryReport)
	byDay := make(map[string]*DayReport)
	categories := make(map[string]map[string]schedule.Category)

	for _, entry := range entries {
		minutes := timeutil.SpanDuration(entry.ActualStart, entry.ActualEnd)

		lookup, ok := categories[entry.DateKey]
		if !ok {
			lookup, err = s.categoriesForDate(ctx, entry.DateKey)
			if err != nil {
				return ReportSummary{}, err
			}
			categories[entry.DateKey] = lookup
		}
		category, ok := lookup[entry.ActivityID]
		if !ok {
			// The entry outlived its block (the day was re-edited after
			// logging); report it under personal rather than dropping it.
			category = schedule.CategoryPersonal
		}

		cat, ok := byCategory[category]
		if !ok {
			cat = &CategoryReport{Category: category}
			byCategory[category] = cat
		}
		cat.LoggedMinutes += minutes
		cat.Entries++

		day, ok := byDay[entry.DateKey]
		if !ok {
			day = &DayReport{DateKey: entry.DateKey}
			byDay[entry.DateKey] = day
		}
		day.LoggedMinutes += minutes
		day.Entries++
	}

	summary := ReportSummary{FromKey: fromKey, ToKey: toKey}
	for _, cat := range byCategory {
		cat.LoggedHours = timeutil.MinutesToHours(cat.LoggedMinutes)
		summary.Categories = append(summary.Categories, *cat)
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		return summary.Categories[i].Category < summary.Categories[j].Category
	})
	for _, day := range byDay {
		summary.Days = append(summary.Days, *day)
	}
	sort.Slice(summary.Days, func(i, j int) bool {
		return summary.Days[i].DateKey < summary.Days[j].DateKey
	})

	logger.Debug("aggregated report", "entries", len(entries), "categories", len(summary.Categories))
	return summary, nil
}

// categoriesForDate maps each block id on a date's schedule to its category.
func (s *ReportService) categoriesForDate(ctx context.Context, dateKey string) (map[string]schedule.Category, error) {
	date, err := timeutil.ParseDateKey(dateKey, time.UTC)
	if err != nil {
		return nil, err
	}
	day, err := s.planner.GenerateDay(ctx, GenerateDayParams{Date: date, ConsiderFasting: true})
	if err != nil {
		return nil, err
	}
	lookup := make(map[string]schedule.Category, len(day))
	for _, a := range day {
		lookup[a.ID] = a.Category
	}
	return lookup, nil
}
