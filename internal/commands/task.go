package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/application"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Track tasks in an Eisenhower matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskAdd(cmd)
	addTaskMatrix(cmd)
	addTaskSubtask(cmd)
	addTaskDone(cmd)
	addTaskDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addTaskAdd(topLevel *cobra.Command) {
	var urgent, important bool
	var notes string
	var title string
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Example: `
planner task add submit enrollment form --urgent --important
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return requireName(args, &title)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run(func(ctx context.Context, a *app) error {
				task, err := a.tasks.Create(ctx, application.TaskInput{
					Title:     title,
					Notes:     notes,
					Urgent:    urgent,
					Important: important,
				})
				if err != nil {
					return err
				}
				a.printer.Message(fmt.Sprintf("added %q to %s (%s)", task.Title, task.Quadrant(), task.ID))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&urgent, "urgent", false, "Mark the task urgent.")
	cmd.Flags().BoolVar(&important, "important", false, "Mark the task important.")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes.")
	topLevel.AddCommand(cmd)
}

func addTaskMatrix(topLevel *cobra.Command) {
	var includeDone bool
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Show tasks grouped by Eisenhower quadrant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run(func(ctx context.Context, a *app) error {
				matrix, err := a.tasks.MatrixView(ctx, includeDone)
				if err != nil {
					return err
				}
				a.printer.Matrix(matrix)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&includeDone, "all", false, "Include completed tasks.")
	topLevel.AddCommand(cmd)
}

func addTaskSubtask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "subtask",
		Short: "Manage a task's subtasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var taskID string
	var title string
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Append a subtask to a task",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return requireName(args, &title)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if taskID == "" {
				return errors.New("requires --task id")
			}
			return run(func(ctx context.Context, a *app) error {
				task, err := a.tasks.AddSubtask(ctx, taskID, title)
				if err != nil {
					return err
				}
				a.printer.Task(task)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&taskID, "task", "", "Task id (required).")
	cmd.AddCommand(addCmd)

	var toggleTaskID, subtaskID string
	toggleCmd := &cobra.Command{
		Use:   "toggle",
		Short: "Flip a subtask between open and done",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if toggleTaskID == "" || subtaskID == "" {
				return errors.New("requires --task and --subtask ids")
			}
			return run(func(ctx context.Context, a *app) error {
				task, err := a.tasks.ToggleSubtask(ctx, toggleTaskID, subtaskID)
				if err != nil {
					return err
				}
				a.printer.Task(task)
				return nil
			})
		},
	}
	toggleCmd.Flags().StringVar(&toggleTaskID, "task", "", "Task id (required).")
	toggleCmd.Flags().StringVar(&subtaskID, "subtask", "", "Subtask id (required).")
	cmd.AddCommand(toggleCmd)

	topLevel.AddCommand(cmd)
}

func addTaskDone(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "done <task id>",
		Short: "Mark a task and all of its subtasks done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(func(ctx context.Context, a *app) error {
				task, err := a.tasks.Complete(ctx, args[0])
				if err != nil {
					return err
				}
				a.printer.Message(fmt.Sprintf("completed %q", task.Title))
				return nil
			})
		},
	}
	topLevel.AddCommand(cmd)
}

func addTaskDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete <task id>",
		Short: "Delete a task and its subtasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(func(ctx context.Context, a *app) error {
				if err := a.tasks.Delete(ctx, args[0]); err != nil {
					return err
				}
				a.printer.Message("deleted " + args[0])
				return nil
			})
		},
	}
	topLevel.AddCommand(cmd)
}
