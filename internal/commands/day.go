package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/application"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/schedule"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/timeutil"
)

type dayOptions struct {
	date     string
	template string
	fasting  bool
}

func addDayFlags(cmd *cobra.Command, o *dayOptions) {
	cmd.Flags().StringVar(&o.date, "date", "", `Target date, example: --date="2026-03-09". Defaults to today.`)
	cmd.Flags().StringVar(&o.template, "template", "", "Force a template key (weekday, weekend, congregational, fasting).")
	cmd.Flags().BoolVar(&o.fasting, "fasting", true, "Swap the weekday template on flagged fasting days.")
}

func addDay(topLevel *cobra.Command) {
	o := &dayOptions{}
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show the schedule for a date",
		Example: `
planner day
planner day --date="2026-03-09" --template=weekend
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(func(ctx context.Context, a *app) error {
				date, err := a.resolveDate(o.date)
				if err != nil {
					return err
				}
				day, err := a.planner.GenerateDay(ctx, application.GenerateDayParams{
					Date:            date,
					TemplateKey:     schedule.TemplateKey(o.template),
					ConsiderFasting: o.fasting,
				})
				if err != nil {
					return err
				}
				a.printer.Day(timeutil.DateKey(date), day)
				return nil
			})
		},
	}
	addDayFlags(cmd, o)
	topLevel.AddCommand(cmd)
}

func addApply(topLevel *cobra.Command) {
	o := &dayOptions{}
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Capture the generated schedule as the date's fixed plan",
		Example: `
planner apply --date="2026-03-09" --template=fasting
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(func(ctx context.Context, a *app) error {
				date, err := a.resolveDate(o.date)
				if err != nil {
					return err
				}
				day, err := a.planner.ApplyTemplateToDay(ctx, application.GenerateDayParams{
					Date:            date,
					TemplateKey:     schedule.TemplateKey(o.template),
					ConsiderFasting: o.fasting,
				})
				if err != nil {
					return err
				}
				a.printer.Day(timeutil.DateKey(date), day)
				a.printer.Message(fmt.Sprintf("captured %d blocks for %s", len(day), timeutil.DateKey(date)))
				return nil
			})
		},
	}
	addDayFlags(cmd, o)
	topLevel.AddCommand(cmd)
}

func addReset(topLevel *cobra.Command) {
	o := &dayOptions{}
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop a date's captured plan and return it to template generation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(func(ctx context.Context, a *app) error {
				date, err := a.resolveDate(o.date)
				if err != nil {
					return err
				}
				if err := a.planner.ResetDay(ctx, date); err != nil {
					return err
				}
				a.printer.Message("reset " + timeutil.DateKey(date))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&o.date, "date", "", "Target date. Defaults to today.")
	topLevel.AddCommand(cmd)
}

func addFasting(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "fasting",
		Short: "Manage fasting day flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	for _, sub := range []struct {
		use     string
		short   string
		fasting bool
	}{
		{use: "set", short: "Flag a date as a fasting day", fasting: true},
		{use: "clear", short: "Remove a date's fasting flag", fasting: false},
	} {
		o := &dayOptions{}
		fasting := sub.fasting
		subCmd := &cobra.Command{
			Use:   sub.use,
			Short: sub.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				cmd.SilenceUsage = true
				return run(func(ctx context.Context, a *app) error {
					date, err := a.resolveDate(o.date)
					if err != nil {
						return err
					}
					if err := a.planner.SetFastingDay(ctx, date, fasting); err != nil {
						return err
					}
					a.printer.Message(fmt.Sprintf("fasting=%t for %s", fasting, timeutil.DateKey(date)))
					return nil
				})
			},
		}
		subCmd.Flags().StringVar(&o.date, "date", "", "Target date. Defaults to today.")
		cmd.AddCommand(subCmd)
	}

	topLevel.AddCommand(cmd)
}
