package cmd

import (
	"github.com/spf13/cobra"
)

var (
	listFull bool
	showID   uint
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks := current.registry.List()
		if listFull {
			return renderTaskDetails(cmd.OutOrStdout(), tasks)
		}
		return renderTaskTable(cmd.OutOrStdout(), tasks)
	},
}

var showCmd = &cobra.Command{
	Use:   "show [<position> | --id <id>]",
	Short: "Show every field of one task",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, task, _, err := selectTask(cmd, showID, args, 0)
		if err != nil {
			return err
		}
		return renderTask(cmd.OutOrStdout(), task)
	},
}

func init() {
	listCmd.Flags().BoolVar(&listFull, "full", false, "print every field of every task")
	showCmd.Flags().UintVar(&showID, "id", 0, "select the task by id instead of position")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}
