package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/application"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/schedule"
)

type templateOptions struct {
	start      string
	end        string
	category   string
	constraint string
	frequency  string
	weekdays   []int
}

func addTemplateActivityFlags(cmd *cobra.Command, o *templateOptions) {
	cmd.Flags().StringVar(&o.start, "start", "", "Start time (required).")
	cmd.Flags().StringVar(&o.end, "end", "", "End time (required).")
	cmd.Flags().StringVar(&o.category, "category", "", "Category (personal, spiritual, physical, academic).")
	cmd.Flags().StringVar(&o.constraint, "constraint", "", "Constraint (hard, adjustable, removable).")
	cmd.Flags().StringVar(&o.frequency, "repeat", "", "Recurrence (daily, weekly).")
	cmd.Flags().IntSliceVar(&o.weekdays, "weekday", nil, "Weekday numbers for weekly recurrence (0=Sunday).")
}

func (o *templateOptions) input(name string) application.TemplateActivityInput {
	input := application.TemplateActivityInput{
		Name:       name,
		StartTime:  o.start,
		EndTime:    o.end,
		Category:   schedule.Category(o.category),
		Constraint: schedule.Constraint(o.constraint),
	}
	switch o.frequency {
	case "daily":
		input.Recurrence.Frequency = schedule.FrequencyDaily
	case "weekly":
		input.Recurrence.Frequency = schedule.FrequencyWeekly
		input.Recurrence.Weekdays = toWeekdays(o.weekdays)
	}
	return input
}

func toWeekdays(numbers []int) []time.Weekday {
	weekdays := make([]time.Weekday, 0, len(numbers))
	for _, n := range numbers {
		weekdays = append(weekdays, time.Weekday(n))
	}
	return weekdays
}

func addTemplate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage template collections and weekly overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTemplateList(cmd)
	addTemplateAdd(cmd)
	addTemplateUpdate(cmd)
	addTemplateDelete(cmd)
	addTemplateOverride(cmd)

	topLevel.AddCommand(cmd)
}

func requireTemplateKey(args []string, target *schedule.TemplateKey) error {
	if len(args) < 1 {
		return fmt.Errorf("requires a template key (%s)", keyList())
	}
	*target = schedule.TemplateKey(args[0])
	return nil
}

func keyList() string {
	names := make([]string, 0, len(schedule.TemplateKeys))
	for _, key := range schedule.TemplateKeys {
		names = append(names, string(key))
	}
	return strings.Join(names, ", ")
}

func addTemplateList(topLevel *cobra.Command) {
	var key schedule.TemplateKey
	cmd := &cobra.Command{
		Use:   "list <key>",
		Short: "List a template collection's activities",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return requireTemplateKey(args, &key)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run(func(ctx context.Context, a *app) error {
				activities, err := a.templates.ListActivities(ctx, key)
				if err != nil {
					return err
				}
				a.printer.Day(string(key)+" template", activities)
				return nil
			})
		},
	}
	topLevel.AddCommand(cmd)
}

func addTemplateAdd(topLevel *cobra.Command) {
	o := &templateOptions{}
	var key schedule.TemplateKey
	var name string
	cmd := &cobra.Command{
		Use:   "add <key> <activity name>",
		Short: "Add an activity to a template collection",
		Example: `
planner template add weekday "Focused study" --start="09:00" --end="10:15" --category=academic --repeat=daily
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := requireTemplateKey(args, &key); err != nil {
				return err
			}
			return requireName(args[1:], &name)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run(func(ctx context.Context, a *app) error {
				activity, err := a.templates.AddActivity(ctx, key, o.input(name))
				if err != nil {
					return err
				}
				a.printer.Message(fmt.Sprintf("added %q to %s (%s)", activity.Name, key, activity.ID))
				return nil
			})
		},
	}
	addTemplateActivityFlags(cmd, o)
	topLevel.AddCommand(cmd)
}

func addTemplateUpdate(topLevel *cobra.Command) {
	o := &templateOptions{}
	var key schedule.TemplateKey
	var name string
	var id string
	cmd := &cobra.Command{
		Use:   "update <key> <activity name>",
		Short: "Replace an activity's fields by id",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := requireTemplateKey(args, &key); err != nil {
				return err
			}
			return requireName(args[1:], &name)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if id == "" {
				return errors.New("requires --id of the activity to update")
			}
			return run(func(ctx context.Context, a *app) error {
				activity, err := a.templates.UpdateActivity(ctx, key, id, o.input(name))
				if err != nil {
					return err
				}
				a.printer.Message(fmt.Sprintf("updated %q in %s", activity.Name, key))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Activity id to update (required).")
	addTemplateActivityFlags(cmd, o)
	topLevel.AddCommand(cmd)
}

func addTemplateDelete(topLevel *cobra.Command) {
	var key schedule.TemplateKey
	var id string
	cmd := &cobra.Command{
		Use:   "delete <key>",
		Short: "Remove an activity from a template collection",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return requireTemplateKey(args, &key)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if id == "" {
				return errors.New("requires --id of the activity to delete")
			}
			return run(func(ctx context.Context, a *app) error {
				if err := a.templates.DeleteActivity(ctx, key, id); err != nil {
					return err
				}
				a.printer.Message("deleted " + id)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Activity id to delete (required).")
	topLevel.AddCommand(cmd)
}

func addTemplateOverride(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "override",
		Short: "Manage weekly overrides layered onto every template",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	o := &templateOptions{}
	var name string
	setCmd := &cobra.Command{
		Use:   "set <activity name>",
		Short: "Add a weekly override",
		Example: `
planner template override set "Halaqa circle" --start="19:00" --end="20:30" --constraint=hard --weekday=3
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return requireName(args, &name)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run(func(ctx context.Context, a *app) error {
				override, err := a.templates.SetOverride(ctx, o.input(name), toWeekdays(o.weekdays))
				if err != nil {
					return err
				}
				a.printer.Message(fmt.Sprintf("override %q stored (%s)", override.Activity.Name, override.Activity.ID))
				return nil
			})
		},
	}
	addTemplateActivityFlags(setCmd, o)
	cmd.AddCommand(setCmd)

	var id string
	removeCmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a weekly override by id",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if id == "" {
				return errors.New("requires --id of the override to remove")
			}
			return run(func(ctx context.Context, a *app) error {
				if err := a.templates.RemoveOverride(ctx, id); err != nil {
					return err
				}
				a.printer.Message("removed override " + id)
				return nil
			})
		},
	}
	removeCmd.Flags().StringVar(&id, "id", "", "Override id to remove (required).")
	cmd.AddCommand(removeCmd)

	topLevel.AddCommand(cmd)
}
