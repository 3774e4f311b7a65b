package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/application"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/timeutil"
)

func addLog(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record time actually spent on scheduled blocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addLogRecord(cmd)
	addLogList(cmd)
	addLogDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addLogRecord(topLevel *cobra.Command) {
	var date, start, end, taskID, subtaskID string
	cmd := &cobra.Command{
		Use:   "record <activity id>",
		Short: "Log the actual time spent on a block",
		Example: `
planner log record study-part-1 --start="09:05" --end="09:40"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(func(ctx context.Context, a *app) error {
				day, err := a.resolveDate(date)
				if err != nil {
					return err
				}
				params := application.RecordLogParams{
					Date:        day,
					ActivityID:  args[0],
					ActualStart: start,
					ActualEnd:   end,
				}
				if taskID != "" {
					params.LinkedTaskID = &taskID
				}
				if subtaskID != "" {
					params.LinkedSubtaskID = &subtaskID
				}
				entry, err := a.logs.Record(ctx, params)
				if err != nil {
					return err
				}
				a.printer.Message(fmt.Sprintf("logged %s %s-%s (%s)",
					entry.ActivityID,
					timeutil.ToTimeString(entry.ActualStart),
					timeutil.ToTimeString(entry.ActualEnd),
					entry.ID))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Target date. Defaults to today.")
	cmd.Flags().StringVar(&start, "start", "", "Actual start time (required).")
	cmd.Flags().StringVar(&end, "end", "", "Actual end time (required).")
	cmd.Flags().StringVar(&taskID, "task", "", "Link the entry to a task id.")
	cmd.Flags().StringVar(&subtaskID, "subtask", "", "Link the entry to a subtask id.")
	topLevel.AddCommand(cmd)
}

func addLogList(topLevel *cobra.Command) {
	var date string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the entries recorded against a date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run(func(ctx context.Context, a *app) error {
				day, err := a.resolveDate(date)
				if err != nil {
					return err
				}
				entries, err := a.logs.ListForDate(ctx, day)
				if err != nil {
					return err
				}
				for _, entry := range entries {
					a.printer.Message(fmt.Sprintf("%s  %s-%s  %s",
						entry.ID,
						timeutil.ToTimeString(entry.ActualStart),
						timeutil.ToTimeString(entry.ActualEnd),
						entry.ActivityID))
				}
				if len(entries) == 0 {
					a.printer.Message("nothing logged for " + timeutil.DateKey(day))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Target date. Defaults to today.")
	topLevel.AddCommand(cmd)
}

func addLogDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete <entry id>",
		Short: "Delete a log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(func(ctx context.Context, a *app) error {
				if err := a.logs.Delete(ctx, args[0]); err != nil {
					return err
				}
				a.printer.Message("deleted " + args[0])
				return nil
			})
		},
	}
	topLevel.AddCommand(cmd)
}

func addReport(topLevel *cobra.Command) {
	var from, to string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize logged time by category and by day",
		Example: `
planner report --from="2026-03-09" --to="2026-03-15"
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if from == "" || to == "" {
				return errors.New("requires --from and --to dates")
			}
			return run(func(ctx context.Context, a *app) error {
				fromDate, err := a.resolveDate(from)
				if err != nil {
					return err
				}
				toDate, err := a.resolveDate(to)
				if err != nil {
					return err
				}
				summary, err := a.reports.Summarize(ctx, fromDate, toDate)
				if err != nil {
					return err
				}
				a.printer.Report(summary)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Range start date (required).")
	cmd.Flags().StringVar(&to, "to", "", "Range end date (required).")
	topLevel.AddCommand(cmd)
}
