package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/graphfin/internal/tui"
)

// runTUI runs the dashboard until the user quits or a SIGINT/SIGTERM arrives.
func runTUI(ctx context.Context, opts tui.Options, logger *slog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	dashboard := tui.NewDashboardModel(opts)
	defer dashboard.Close()
	root := tui.NewApp(tui.NewDashboardPage(dashboard))

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithMouseCellMotion())

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)
		_, err := p.Run()
		return err
	})

	// Signal watcher: quits the program when the context ends first.
	g.Go(func() error {
		select {
		case <-gctx.Done():
			logger.Info("shutting down", "reason", context.Cause(gctx))
			p.Quit()
		case <-done:
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	state := dashboard.State()
	logger.Info("dashboard closed", "tab", state.ActiveTab.String(), "show_code", state.ShowCode)
	return nil
}
