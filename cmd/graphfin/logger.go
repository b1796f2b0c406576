package main

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// configureRuntimeLogger sends slog and the standard logger to
// ~/.local/state/graphfin/graphfin.log. The terminal belongs to the TUI, so
// stderr is only used when the log file cannot be opened.
func configureRuntimeLogger(level slog.Level) (*slog.Logger, func()) {
	out, closeFn := openLogFile()
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	log.SetFlags(0)
	return logger, closeFn
}

func openLogFile() (io.Writer, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.Stderr, func() {}
	}

	logDir := filepath.Join(home, ".local", "state", "graphfin")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return os.Stderr, func() {}
	}

	f, err := os.OpenFile(filepath.Join(logDir, "graphfin.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return os.Stderr, func() {}
	}
	return f, func() {
		_ = f.Close()
	}
}
