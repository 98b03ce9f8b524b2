package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	model "task-tracker.com/task-tracker/internal/models"
)

func renderTaskTable(w io.Writer, tasks []model.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "no tasks")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tNAME\tSTATUS\tPRIORITY\tDEADLINE")
	for i, t := range tasks {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\n", i, t.ID, t.Name, t.Status, t.Priority, t.Deadline)
	}
	return tw.Flush()
}

func renderTaskDetails(w io.Writer, tasks []model.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "no tasks")
		return err
	}
	for _, t := range tasks {
		if err := renderTask(w, t); err != nil {
			return err
		}
	}
	return nil
}

func renderTask(w io.Writer, t model.Task) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintln(tw, "----------------------------------")
	fmt.Fprintf(tw, "id:\t%d\n", t.ID)
	fmt.Fprintf(tw, "name:\t%s\n", t.Name)
	fmt.Fprintf(tw, "deadline:\t%s\n", t.Deadline)
	fmt.Fprintf(tw, "description:\t%s\n", t.Description)
	fmt.Fprintf(tw, "status:\t%s\n", t.Status)
	fmt.Fprintf(tw, "priority:\t%s\n", t.Priority)
	fmt.Fprintf(tw, "creator:\t%d\n", t.CreatorID)
	fmt.Fprintf(tw, "executor:\t%d\n", t.ExecutorID)
	return tw.Flush()
}
