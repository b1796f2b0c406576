package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinytelemetry/graphfin/internal/model"
	"github.com/tinytelemetry/graphfin/internal/registry"
	"github.com/tinytelemetry/graphfin/internal/tui"
	"github.com/tinytelemetry/graphfin/internal/viewstate"
)

// SnapshotCommand prints rendered dashboard frames without a terminal.
type SnapshotCommand struct {
	app    *app
	width  int
	height int
	all    bool
}

func newSnapshotCmd(a *app) *cobra.Command {
	s := &SnapshotCommand{app: a}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print one dashboard frame",
		Long: `Render the dashboard once and print it to stdout.

Examples:
  # Market adoption chart with its code panel
  graphfin snapshot --tab market-adoption --show-code

  # Every chart, one frame each
  graphfin snapshot --all --width 120`,
		Args: cobra.NoArgs,
		RunE: s.run,
	}

	cmd.Flags().String("tab", "", "chart to show: slug, camelCase key or 1-5")
	cmd.Flags().Bool("show-code", false, "open the code panel")
	cmd.Flags().IntVar(&s.width, "width", model.DefaultSnapshotWidth, "frame width in cells")
	cmd.Flags().IntVar(&s.height, "height", model.DefaultSnapshotHeight, "frame height in rows")
	cmd.Flags().BoolVar(&s.all, "all", false, "print every chart")

	return cmd
}

func (s *SnapshotCommand) run(cmd *cobra.Command, _ []string) error {
	if s.width <= 0 || s.height <= 0 {
		return fmt.Errorf("invalid size %dx%d", s.width, s.height)
	}

	opts := s.app.dashboardOptions()
	ids := []registry.ChartID{opts.Initial.ActiveTab}
	if s.all {
		ids = registry.IDs()
	}

	out := cmd.OutOrStdout()
	for i, id := range ids {
		if i > 0 {
			fmt.Fprintln(out)
		}
		opts.Initial = viewstate.State{ActiveTab: id, ShowCode: opts.Initial.ShowCode}
		if _, err := fmt.Fprintln(out, tui.Snapshot(opts, s.width, s.height)); err != nil {
			return err
		}
	}
	return nil
}
