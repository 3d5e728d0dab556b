package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/olivier-w/springcurve/internal/sim"
	"github.com/olivier-w/springcurve/internal/snapshot"
)

var errBadSize = errors.New("size must look like WIDTHxHEIGHT")

type config struct {
	params   sim.Params
	fps      int
	debug    bool
	snapshot string
	snapOpts snapshot.Options
}

// parseFlags reads the command line. Simulation values are clamped later by
// the same setters the interactive controls use.
func parseFlags(args []string, stderr io.Writer) (config, error) {
	def := sim.DefaultParams()
	snap := snapshot.DefaultOptions()

	fs := flag.NewFlagSet("springcurve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: springcurve [flags]\n\n")
		fs.PrintDefaults()
	}

	var cfg config
	fs.Float64Var(&cfg.params.Stiffness, "stiffness", def.Stiffness, "spring stiffness (0.01-1)")
	fs.Float64Var(&cfg.params.Damping, "damping", def.Damping, "spring damping (0-1)")
	fs.IntVar(&cfg.params.SampleCount, "samples", def.SampleCount, "curve resolution (10-500)")
	fs.IntVar(&cfg.params.TangentCount, "tangents", def.TangentCount, "tangent arrows (0-50)")
	fs.BoolVar(&cfg.params.Paused, "paused", false, "start paused")
	fs.IntVar(&cfg.fps, "fps", 60, "target frame rate")
	fs.BoolVar(&cfg.debug, "debug", false, "write a debug log to "+logFile)
	fs.StringVar(&cfg.snapshot, "snapshot", "", "write a PNG of the resting curve to `path` and exit")
	size := fs.String("snapshot-size", fmt.Sprintf("%dx%d", snap.Width, snap.Height), "PNG size as `WxH`")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if !isFinite(cfg.params.Stiffness) {
		return config{}, fmt.Errorf("stiffness %v is not a number", cfg.params.Stiffness)
	}
	if !isFinite(cfg.params.Damping) {
		return config{}, fmt.Errorf("damping %v is not a number", cfg.params.Damping)
	}
	if cfg.fps <= 0 || cfg.fps > 240 {
		return config{}, fmt.Errorf("fps %d out of range 1-240", cfg.fps)
	}

	w, h, err := parseSize(*size)
	if err != nil {
		return config{}, fmt.Errorf("snapshot-size: %w", err)
	}
	snap.Width, snap.Height = w, h
	snap.Samples = cfg.params.SampleCount
	snap.Tangents = cfg.params.TangentCount
	cfg.snapOpts = snap
	return cfg, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, errBadSize
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, errBadSize
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, errBadSize
	}
	if w < 16 || h < 16 || w > 8192 || h > 8192 {
		return 0, 0, fmt.Errorf("%dx%d out of range 16-8192", w, h)
	}
	return w, h, nil
}
