package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteID uint

var deleteCmd = &cobra.Command{
	Use:     "delete [<position> | --id <id>]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, _, _, err := selectTask(cmd, deleteID, args, 0)
		if err != nil {
			return err
		}

		task, err := current.registry.Delete(cmd.Context(), i)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "deleted task %d (%s)\n", task.ID, task.Name)
		return nil
	},
}

func init() {
	deleteCmd.Flags().UintVar(&deleteID, "id", 0, "select the task by id instead of position")

	rootCmd.AddCommand(deleteCmd)
}
