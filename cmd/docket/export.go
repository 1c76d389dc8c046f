package main

import (
	"fmt"
	"os"

	"github.com/harlowe/docket/internal/project"
	"github.com/harlowe/docket/internal/report"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		out              string
		includeCompleted bool
		includeDeleted   bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the CSV export to a file or stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := connectFromFlags(cmd)
			if err != nil {
				return err
			}

			csvText, err := report.ExportCSV(conn, project.Filters{
				IncludeCompleted: includeCompleted,
				IncludeDeleted:   includeDeleted,
			})
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Fprint(cmd.OutOrStdout(), csvText)
				return nil
			}
			if err := os.WriteFile(out, []byte(csvText), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&includeCompleted, "include-completed", false, "include completed projects")
	cmd.Flags().BoolVar(&includeDeleted, "include-deleted", false, "include soft-deleted projects")
	return cmd
}
