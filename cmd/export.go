package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportOpts struct {
	out    string
	format string
}

var exportCmd = &cobra.Command{
	Use:         "export",
	Short:       "Write a snapshot of all tasks to a file",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipAutoExport: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := exportOpts.out
		if path == "" {
			path = current.cfg.Snapshot.Path
		}
		format := exportOpts.format
		if format == "" {
			format = current.cfg.Snapshot.Format
		}

		snap, err := current.exportSnapshot(path, format)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d tasks to %s\n", snap.Count, path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOpts.out, "out", "o", "", "output file (default snapshot.path)")
	exportCmd.Flags().StringVar(&exportOpts.format, "format", "", "json or yaml (default snapshot.format)")

	rootCmd.AddCommand(exportCmd)
}
