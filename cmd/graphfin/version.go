package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// VersionCommand represents the version command
type VersionCommand struct {
	short bool
}

// NewVersionCommand creates a new version command
func NewVersionCommand() *VersionCommand {
	return &VersionCommand{}
}

// CreateCobraCommand creates the cobra command for version display
func (v *VersionCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display version, build commit, build date and Go version.
Use --short to display only the version number.`,
		Args: cobra.NoArgs,
		RunE: v.runVersion,
	}

	cmd.Flags().BoolVarP(&v.short, "short", "s", false, "Show only version number")

	return cmd
}

func (v *VersionCommand) runVersion(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if v.short {
		fmt.Fprintln(out, version)
		return nil
	}

	gv := goVersion
	if gv == "unknown" {
		gv = runtime.Version()
	}
	fmt.Fprintf(out, "graphfin - Graph Databases in Financial Services\n")
	fmt.Fprintf(out, "  Version:    %s\n", version)
	fmt.Fprintf(out, "  Commit:     %s\n", commit)
	fmt.Fprintf(out, "  Built:      %s\n", buildTime)
	fmt.Fprintf(out, "  Go version: %s\n", gv)
	return nil
}

func newVersionCmd() *cobra.Command {
	return NewVersionCommand().CreateCobraCommand()
}
