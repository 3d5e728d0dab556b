// Package sim drives the spring-animated Bézier curve: the per-tick driver,
// its parameters, and the Simulation facade that render, configuration and
// pointer collaborators talk to.
package sim

import (
	"log/slog"
	"time"

	"github.com/olivier-w/springcurve/internal/bezier"
	"github.com/olivier-w/springcurve/internal/curve"
	"github.com/olivier-w/springcurve/internal/interact"
)

// Option configures a Simulation.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	hitRadius float64
}

// WithLogger sets the logger used for debug events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithHitRadius overrides interact.DefaultHitRadius.
func WithHitRadius(r float64) Option {
	return func(o *options) { o.hitRadius = r }
}

// Simulation wires a curve state, its parameters, a Driver and an
// interaction Controller together. It is not safe for concurrent use; tick,
// input and rendering must be sequenced on one goroutine.
type Simulation struct {
	state  *curve.State
	params *Params
	driver *Driver
	ctrl   *interact.Controller
	logger *slog.Logger
}

// New returns a Simulation over state. params is clamped before use.
func New(state *curve.State, params Params, opts ...Option) *Simulation {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	p := params.Clamped()
	return &Simulation{
		state:  state,
		params: &p,
		driver: NewDriver(state, &p, o.logger),
		ctrl:   interact.New(state, o.hitRadius, o.logger),
		logger: o.logger,
	}
}

// Tick advances the curve by delta seconds.
func (s *Simulation) Tick(delta float64) { s.driver.Tick(delta) }

// TickAt advances the curve by the wall-clock time since the last TickAt.
func (s *Simulation) TickAt(now time.Time) { s.driver.TickAt(now) }

// Elapsed returns simulated seconds.
func (s *Simulation) Elapsed() float64 { return s.driver.Elapsed() }

// Params returns a copy of the current parameters.
func (s *Simulation) Params() Params { return *s.params }

func (s *Simulation) Get(i int) curve.ControlPoint { return s.state.Get(i) }
func (s *Simulation) Target(i int) curve.Target    { return s.state.Target(i) }

// Snapshot returns a copy of the curve state that later ticks do not touch.
func (s *Simulation) Snapshot() *curve.State { return s.state.Clone() }

// SampleCurve returns n+1 evenly spaced curve points.
func (s *Simulation) SampleCurve(n int) []bezier.Point { return s.state.SampleCurve(n) }

// SampleTangents returns n+1 evenly spaced points with unit tangents.
func (s *Simulation) SampleTangents(n int) []bezier.Tangent { return s.state.SampleTangents(n) }

func (s *Simulation) Dragging() (int, bool)   { return s.ctrl.Dragging() }
func (s *Simulation) Hovering() bool          { return s.ctrl.Hovering() }
func (s *Simulation) Cursor() interact.Cursor { return s.ctrl.Cursor() }
func (s *Simulation) HitRadius() float64      { return s.ctrl.Radius() }

// HitTest returns the free point a press at (x, y) would grab.
func (s *Simulation) HitTest(x, y float64) (int, bool) { return s.ctrl.HitTest(x, y) }

func (s *Simulation) OnPointerDown(x, y float64) { s.ctrl.PointerDown(x, y) }
func (s *Simulation) OnPointerMove(x, y float64) { s.ctrl.PointerMove(x, y) }
func (s *Simulation) OnPointerUp()               { s.ctrl.PointerUp() }
func (s *Simulation) OnPointerLeave()            { s.ctrl.PointerLeave() }

// SetStiffness sets the spring constant, clamped to StiffnessRange.
func (s *Simulation) SetStiffness(v float64) {
	s.params.Stiffness = StiffnessRange.Clamp(v)
	s.logger.Debug("stiffness", "value", s.params.Stiffness)
}

// SetDamping sets the velocity retention, clamped to DampingRange.
func (s *Simulation) SetDamping(v float64) {
	s.params.Damping = DampingRange.Clamp(v)
	s.logger.Debug("damping", "value", s.params.Damping)
}

// SetSampleCount sets the number of curve segments drawn.
func (s *Simulation) SetSampleCount(n int) {
	s.params.SampleCount = SampleCountRange.Clamp(n)
	s.logger.Debug("sample count", "value", s.params.SampleCount)
}

// SetTangentCount sets the number of tangent intervals drawn.
func (s *Simulation) SetTangentCount(n int) {
	s.params.TangentCount = TangentCountRange.Clamp(n)
	s.logger.Debug("tangent count", "value", s.params.TangentCount)
}

// SetPaused gates integration. Input and rendering continue while paused.
func (s *Simulation) SetPaused(paused bool) {
	s.params.Paused = paused
	s.logger.Debug("paused", "value", paused)
}

// TogglePaused flips the pause gate and returns the new value.
func (s *Simulation) TogglePaused() bool {
	s.SetPaused(!s.params.Paused)
	return s.params.Paused
}

// Reset puts the free control points back on the initial layout.
func (s *Simulation) Reset() {
	s.state.Reset()
	s.logger.Debug("reset")
}
