package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/application"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/config"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/logging"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/persistence/sqlite"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/printers"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/timeutil"
)

// app bundles the wired services behind every leaf command.
type app struct {
	cfg     config.Config
	store   *sqlite.Store
	logger  *slog.Logger
	printer *printers.PrettyPrint

	planner   *application.PlannerService
	edits     *application.EditService
	templates *application.TemplateService
	logs      *application.LogService
	tasks     *application.TaskService
	reports   *application.ReportService
}

func loadApp(ctx context.Context) (*app, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	store, err := sqlite.Open(ctx, cfg.SQLiteDSN)
	if err != nil {
		return nil, err
	}

	idGenerator := uuid.NewString
	now := time.Now

	planner := application.NewPlannerServiceWithLogger(store, store, store, cfg.SubdivideConfig(), logger)
	return &app{
		cfg:       cfg,
		store:     store,
		logger:    logger,
		printer:   printers.New(),
		planner:   planner,
		edits:     application.NewEditServiceWithLogger(planner, store, idGenerator, logger),
		templates: application.NewTemplateServiceWithLogger(store, idGenerator, logger),
		logs:      application.NewLogServiceWithLogger(planner, store, idGenerator, now, logger),
		tasks:     application.NewTaskServiceWithLogger(store, idGenerator, now, logger),
		reports:   application.NewReportServiceWithLogger(planner, store, logger),
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.logger.Error("failed to close storage", "error", err)
	}
}

// run loads the app, executes fn, and always releases storage.
func run(fn func(ctx context.Context, a *app) error) error {
	ctx := context.Background()
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()
	return fn(logging.ContextWithLogger(ctx, a.logger), a)
}

// location returns the configured local time zone.
func (a *app) location() *time.Location {
	if a.cfg.UTCOffsetMinutes == 0 {
		return time.Local
	}
	return timeutil.FixedOffsetLocation(a.cfg.UTCOffsetMinutes)
}

// resolveDate parses a --date value, defaulting to today.
func (a *app) resolveDate(value string) (time.Time, error) {
	loc := a.location()
	if value == "" {
		now := time.Now().In(loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc), nil
	}
	date, err := timeutil.ParseDateKey(value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return date, nil
}
