package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	model "task-tracker.com/task-tracker/internal/models"
)

var setID uint

var setCmd = &cobra.Command{
	Use:   "set [<position> | --id <id>] <field> <value>",
	Short: "Change one field of a task",
	Long:  "Change one field of a task. Fields: " + fieldNames() + ".",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, _, rest, err := selectTask(cmd, setID, args, 2)
		if err != nil {
			return err
		}

		field, err := model.ParseField(rest[0])
		if err != nil {
			return err
		}

		task, err := current.registry.UpdateField(cmd.Context(), i, field, rest[1])
		if err != nil {
			return err
		}

		if degraded(task, field) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %q is not a known %s, stored as undefined\n", rest[1], field)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "task %d: %s is now %q\n", task.ID, field, fmt.Sprint(task.FieldValue(field)))
		return nil
	},
}

// degraded reports whether an enum edit fell back to undefined.
func degraded(task model.Task, field model.Field) bool {
	switch field {
	case model.FieldStatus:
		return !task.Status.IsDefined()
	case model.FieldPriority:
		return !task.Priority.IsDefined()
	default:
		return false
	}
}

func fieldNames() string {
	names := make([]string, 0, len(model.Fields()))
	for _, f := range model.Fields() {
		names = append(names, f.Column())
	}
	return strings.Join(names, ", ")
}

func init() {
	setCmd.Flags().UintVar(&setID, "id", 0, "select the task by id instead of position")

	rootCmd.AddCommand(setCmd)
}
