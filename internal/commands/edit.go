package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/application"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/schedule"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/timeutil"
)

type editOptions struct {
	date       string
	start      string
	end        string
	duration   int
	minutes    int
	category   string
	constraint string
}

func addEdit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a date's schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEditModify(cmd)
	addEditShift(cmd)
	addEditAdd(cmd)
	addEditDelete(cmd)

	topLevel.AddCommand(cmd)
}

// applyEdit runs one edit command and prints the edited day.
func applyEdit(o *editOptions, build func(date string) application.EditCommand) error {
	return run(func(ctx context.Context, a *app) error {
		date, err := a.resolveDate(o.date)
		if err != nil {
			return err
		}
		result, err := a.edits.Apply(ctx, build(timeutil.DateKey(date)))
		if err != nil {
			return err
		}
		a.printer.Day(timeutil.DateKey(date), result.Schedule)
		a.printer.Message(result.Message)
		return nil
	})
}

func requireName(args []string, target *string) error {
	if len(args) < 1 {
		return errors.New("requires an activity name")
	}
	*target = strings.Join(args, " ")
	return nil
}

func addEditModify(topLevel *cobra.Command) {
	o := &editOptions{}
	var name string
	cmd := &cobra.Command{
		Use:   "modify <activity name>",
		Short: "Move or resize the first block matching a name",
		Example: `
planner edit modify study --start="10:00" --end="11:00"
planner edit modify gym --extend=30
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return requireName(args, &name)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return applyEdit(o, func(date string) application.EditCommand {
				return application.EditCommand{
					Action:               application.EditActionModify,
					TargetDate:           date,
					ActivityName:         name,
					NewStart:             o.start,
					NewEnd:               o.end,
					DurationDeltaMinutes: o.duration,
				}
			})
		},
	}
	cmd.Flags().StringVar(&o.date, "date", "", "Target date. Defaults to today.")
	cmd.Flags().StringVar(&o.start, "start", "", `New start time, example: --start="10:00".`)
	cmd.Flags().StringVar(&o.end, "end", "", `New end time, example: --end="11:00".`)
	cmd.Flags().IntVar(&o.duration, "extend", 0, "Grow (or shrink, negative) the block by minutes.")
	topLevel.AddCommand(cmd)
}

func addEditShift(topLevel *cobra.Command) {
	o := &editOptions{}
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Shift every movable block by a number of minutes",
		Example: `
planner edit shift --minutes=30 --category=academic
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return applyEdit(o, func(date string) application.EditCommand {
				return application.EditCommand{
					Action:         application.EditActionShift,
					TargetDate:     date,
					ShiftMinutes:   o.minutes,
					CategoryFilter: schedule.Category(o.category),
				}
			})
		},
	}
	cmd.Flags().StringVar(&o.date, "date", "", "Target date. Defaults to today.")
	cmd.Flags().IntVar(&o.minutes, "minutes", 0, "Minutes to shift by; negative moves earlier.")
	cmd.Flags().StringVar(&o.category, "category", "", "Limit the shift to one category.")
	topLevel.AddCommand(cmd)
}

func addEditAdd(topLevel *cobra.Command) {
	o := &editOptions{}
	var name string
	cmd := &cobra.Command{
		Use:   "add <activity name>",
		Short: "Add a block to the date's schedule",
		Example: `
planner edit add evening reading --start="20:00" --end="21:00" --category=personal
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return requireName(args, &name)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return applyEdit(o, func(date string) application.EditCommand {
				return application.EditCommand{
					Action:       application.EditActionAdd,
					TargetDate:   date,
					ActivityName: name,
					NewStart:     o.start,
					NewEnd:       o.end,
					Category:     schedule.Category(o.category),
					Constraint:   schedule.Constraint(o.constraint),
				}
			})
		},
	}
	cmd.Flags().StringVar(&o.date, "date", "", "Target date. Defaults to today.")
	cmd.Flags().StringVar(&o.start, "start", "", "Start time (required).")
	cmd.Flags().StringVar(&o.end, "end", "", "End time (required).")
	cmd.Flags().StringVar(&o.category, "category", "", "Category (personal, spiritual, physical, academic).")
	cmd.Flags().StringVar(&o.constraint, "constraint", "", "Constraint (hard, adjustable, removable).")
	topLevel.AddCommand(cmd)
}

func addEditDelete(topLevel *cobra.Command) {
	o := &editOptions{}
	var name string
	cmd := &cobra.Command{
		Use:   "delete <activity name>",
		Short: "Delete every block matching a name",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return requireName(args, &name)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return applyEdit(o, func(date string) application.EditCommand {
				return application.EditCommand{
					Action:       application.EditActionDelete,
					TargetDate:   date,
					ActivityName: name,
				}
			})
		},
	}
	cmd.Flags().StringVar(&o.date, "date", "", "Target date. Defaults to today.")
	topLevel.AddCommand(cmd)
}
