package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinytelemetry/graphfin/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the charts as a standalone HTML page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.cfg.ExportPath
			if err := export.WriteFile(path, nil, export.Options{}); err != nil {
				return fmt.Errorf("export %s: %w", path, err)
			}
			a.logger.Info("exported charts", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "output file (default graphfin.html)")
	return cmd
}
