package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tinytelemetry/graphfin/internal/model"
	"github.com/tinytelemetry/graphfin/internal/tui"
)

// app is the state shared by all commands once flags are parsed.
type app struct {
	configPath string
	verbose    bool

	cfg      cliConfig
	logger   *slog.Logger
	closeLog func()

	// isTerminal reports whether stdout can host the TUI.
	isTerminal func() bool
}

func newRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func newApp() *app {
	return &app{
		closeLog: func() {},
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graphfin",
		Short: "Terminal dashboard on graph databases in financial services",
		Long: `graphfin shows five charts on how graph databases are used in financial
services: fraud loss, processing time, adoption barriers, AML false
positives and market adoption. Every chart can reveal the code that
draws it.

When stdout is not a terminal a single frame is printed instead.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { a.closeLog() },
		RunE:              a.runRoot,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default is $HOME/.config/graphfin/config.yml)")
	flags.String("skin", "", "color skin name from <config dir>/skins")
	flags.String("locale", "", "number formatting locale (e.g. en, de)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	cmd.AddCommand(newSnapshotCmd(a))
	cmd.AddCommand(newExportCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup loads configuration, the runtime logger and the skin.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.logLevel = slog.LevelDebug
	}
	a.cfg = cfg

	a.logger, a.closeLog = configureRuntimeLogger(cfg.logLevel)
	a.logger.Info("starting graphfin",
		"version", version,
		"command", cmd.Name(),
		"skin", cfg.Skin,
		"locale", cfg.locale.Locale().String(),
	)

	if err := tui.InitializeSkin(cfg.Skin, cfg.ConfigDir); err != nil {
		a.logger.Warn("skin fallback", "skin", cfg.Skin, "error", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
	}
	return nil
}

// dashboardOptions are the TUI settings derived from config.
func (a *app) dashboardOptions() tui.Options {
	return tui.Options{
		Initial:            a.cfg.initialState(),
		Formatter:          a.cfg.locale,
		ReverseScrollWheel: a.cfg.ReverseScrollWheel,
		Version:            version,
		Logger:             a.logger,
	}
}

func (a *app) runRoot(cmd *cobra.Command, _ []string) error {
	if !a.isTerminal() {
		a.logger.Info("stdout is not a terminal, printing snapshot")
		out := tui.Snapshot(a.dashboardOptions(), model.DefaultSnapshotWidth, model.DefaultSnapshotHeight)
		_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	}
	return runTUI(cmd.Context(), a.dashboardOptions(), a.logger)
}
