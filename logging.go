package main

import (
	"log/slog"
	"os"
)

const logFile = "springcurve.log"

// setupLogging returns the application logger. The TUI owns the terminal, so
// debug output goes to a file; without -debug everything is discarded.
func setupLogging(debug bool, path string) (*slog.Logger, func(), error) {
	if !debug {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	l := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l.Info("springcurve starting", "pid", os.Getpid())
	return l, func() { f.Close() }, nil
}
