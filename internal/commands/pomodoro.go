package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/application"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/pomodoro"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/schedule"
)

func addPomodoro(topLevel *cobra.Command) {
	var date string
	var cycles int
	cmd := &cobra.Command{
		Use:   "pomodoro <activity id>",
		Short: "Run a focus timer against a scheduled block",
		Example: `
planner pomodoro study-part-1 --cycles=2
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(func(ctx context.Context, a *app) error {
				day, err := a.resolveDate(date)
				if err != nil {
					return err
				}
				blocks, err := a.planner.GenerateDay(ctx, application.GenerateDayParams{Date: day, ConsiderFasting: true})
				if err != nil {
					return err
				}
				if !containsBlock(blocks, args[0]) {
					return fmt.Errorf("activity %q is not on the schedule", args[0])
				}
				return runPomodoro(a, args[0], cycles)
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Target date. Defaults to today.")
	cmd.Flags().IntVar(&cycles, "cycles", 1, "Focus phases to complete before stopping.")
	topLevel.AddCommand(cmd)
}

func runPomodoro(a *app, activityID string, cycles int) error {
	timer := pomodoro.NewTimer(a.cfg.PomodoroConfig(), time.Now)
	if err := timer.Start(activityID); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	lastPhase := timer.Phase()
	a.printer.Message(fmt.Sprintf("%s: %s", lastPhase, activityID))

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			a.printer.Message("stopped")
			return nil
		case <-ticker.C:
			phase := timer.Phase()
			if phase != lastPhase {
				a.printer.Message(fmt.Sprintf("%s (%d focus phases done)", phase, timer.CompletedFocusCount()))
				lastPhase = phase
			}
			if timer.CompletedFocusCount() >= cycles && phase != pomodoro.PhaseFocus {
				timer.Stop()
				a.printer.Message(fmt.Sprintf("done: %d focus phases on %s", cycles, activityID))
				return nil
			}
		}
	}
}

func containsBlock(activities []schedule.Activity, id string) bool {
	for _, a := range activities {
		if a.ID == id {
			return true
		}
	}
	return false
}
