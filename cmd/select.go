package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

// selectTask resolves the task a command acts on: by --id when the flag is
// set, otherwise by the position in args[0]. It returns the arguments left
// after the selector, which must number exactly want.
func selectTask(cmd *cobra.Command, id uint, args []string, want int) (int, model.Task, []string, error) {
	var (
		i    int
		task model.Task
		err  error
	)

	if cmd.Flags().Changed("id") {
		i, task, err = current.registry.FindByID(id)
	} else {
		if len(args) == 0 {
			return 0, model.Task{}, nil, apperrors.Wrap(apperrors.ErrInvalid, cmd.Name(), errors.New("a position or --id is required"))
		}
		i, task, err = current.registry.SelectByInput(args[0])
		args = args[1:]
	}

	if len(args) != want {
		return 0, model.Task{}, nil, apperrors.Wrap(apperrors.ErrInvalid, cmd.Name(), fmt.Errorf("expected %d arguments after the task, got %d", want, len(args)))
	}
	if err != nil {
		return 0, model.Task{}, nil, err
	}
	return i, task, args, nil
}
