package sim

import (
	"log/slog"
	"time"

	"github.com/olivier-w/springcurve/internal/curve"
	"github.com/olivier-w/springcurve/internal/spring"
)

// MaxStep is the largest time step, in seconds, the driver integrates in one
// tick. Longer frame gaps (backgrounded terminal, debugger stall) are cut
// down to it.
const MaxStep = 0.1

// Driver advances the free control points once per animation tick.
type Driver struct {
	state   *curve.State
	params  *Params
	logger  *slog.Logger
	last    time.Time
	elapsed float64
}

// NewDriver returns a Driver that integrates state using params.
func NewDriver(state *curve.State, params *Params, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Driver{state: state, params: params, logger: logger}
}

// stepRange bounds a single tick.
var stepRange = Range[float64]{Min: 0, Max: MaxStep}

// Tick advances the simulation by delta seconds, clamped to [0, MaxStep].
// A NaN delta counts as zero. It does nothing while paused.
func (d *Driver) Tick(delta float64) {
	dt := stepRange.Clamp(delta)
	if d.params.Paused {
		return
	}
	sp := d.params.Spring()
	for i := range curve.NumPoints {
		p := d.state.Get(i)
		if p.Fixed {
			continue
		}
		if err := d.state.ApplyStep(i, spring.Step(p, d.state.Target(i), sp, dt)); err != nil {
			d.logger.Warn("step rejected", "point", i, "err", err)
		}
	}
	d.elapsed += dt
}

// TickAt ticks with the wall-clock time since the previous TickAt. The first
// call only records now.
func (d *Driver) TickAt(now time.Time) {
	var delta float64
	if !d.last.IsZero() {
		delta = now.Sub(d.last).Seconds()
	}
	d.last = now
	d.Tick(delta)
}

// Elapsed returns the simulated seconds integrated so far.
func (d *Driver) Elapsed() float64 {
	return d.elapsed
}
