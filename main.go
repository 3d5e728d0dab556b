package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/springcurve/internal/canvas"
	"github.com/olivier-w/springcurve/internal/curve"
	"github.com/olivier-w/springcurve/internal/sim"
	"github.com/olivier-w/springcurve/internal/snapshot"
	"github.com/olivier-w/springcurve/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run starts the program and returns its exit code. Deferred cleanup, such
// as closing the debug log, happens before main exits.
func run(args []string, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	logger, closeLog, err := setupLogging(cfg.debug, logFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error opening log: %v\n", err)
		return 1
	}
	defer closeLog()

	s := sim.New(curve.New(curve.DefaultLayout), cfg.params, sim.WithLogger(logger))

	if cfg.snapshot != "" {
		if err := exportSnapshot(s, cfg, logger); err != nil {
			logger.Error("snapshot failed", "err", err)
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	model := ui.New(s, ui.Config{
		FPS:      cfg.fps,
		Snapshot: cfg.snapOpts,
		Profile:  canvas.DetectProfile(),
		Logger:   logger,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
	if _, err := program.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// exportSnapshot writes the curve at rest without starting the TUI.
func exportSnapshot(s *sim.Simulation, cfg config, logger *slog.Logger) error {
	p := s.Params()
	opts := cfg.snapOpts
	opts.Samples = p.SampleCount
	opts.Tangents = p.TangentCount
	if err := snapshot.SaveFile(cfg.snapshot, s.Snapshot(), opts); err != nil {
		return fmt.Errorf("export %s: %w", cfg.snapshot, err)
	}
	logger.Info("snapshot saved", "path", cfg.snapshot, "width", opts.Width, "height", opts.Height)
	fmt.Printf("Saved %s\n", cfg.snapshot)
	return nil
}
