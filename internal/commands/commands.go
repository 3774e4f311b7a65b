// Package commands assembles the planner's command line interface.
package commands

import (
	"github.com/spf13/cobra"
)

// New builds the root command with every subcommand attached.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planner",
		Short: "Personal daily schedule planner",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addDay(cmd)
	addApply(cmd)
	addReset(cmd)
	addFasting(cmd)
	addEdit(cmd)
	addTemplate(cmd)
	addTask(cmd)
	addLog(cmd)
	addReport(cmd)
	addPomodoro(cmd)

	return cmd
}
