package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/internal/models"
)

var createInput struct {
	name        string
	description string
	deadline    string
	status      string
	priority    string
	creatorID   uint
	executorID  uint
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a task",
	Long: `Create a task. Status is one of unready, in_process, done and priority is
one of low, medium, high; anything else is stored as undefined.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := model.TaskInput{
			Name:        createInput.name,
			Description: createInput.description,
			Deadline:    createInput.deadline,
			Status:      constants.ParseTaskStatus(createInput.status),
			Priority:    constants.ParseTaskPriority(createInput.priority),
			CreatorID:   current.cfg.Defaults.CreatorID,
			ExecutorID:  current.cfg.Defaults.ExecutorID,
		}
		if cmd.Flags().Changed("creator") {
			in.CreatorID = createInput.creatorID
		}
		if cmd.Flags().Changed("executor") {
			in.ExecutorID = createInput.executorID
		}

		task, err := current.registry.Create(cmd.Context(), in)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created task %d at position %d\n", task.ID, current.registry.Len()-1)
		return nil
	},
}

func init() {
	f := createCmd.Flags()
	f.StringVarP(&createInput.name, "name", "n", "", "task name (required)")
	f.StringVarP(&createInput.description, "description", "d", "", "task description")
	f.StringVar(&createInput.deadline, "deadline", "", "deadline, free text")
	f.StringVarP(&createInput.status, "status", "s", "unready", "status")
	f.StringVarP(&createInput.priority, "priority", "p", "medium", "priority")
	f.UintVar(&createInput.creatorID, "creator", 0, "creator user id (default from config)")
	f.UintVar(&createInput.executorID, "executor", 0, "executor user id (default from config)")

	rootCmd.AddCommand(createCmd)
}
