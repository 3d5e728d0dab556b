package sim

import (
	"math"
	"testing"
	"time"

	"github.com/olivier-w/springcurve/internal/curve"
)

func newTestDriver() (*Driver, *curve.State, *Params) {
	s := curve.New(curve.DefaultLayout)
	p := DefaultParams()
	return NewDriver(s, &p, nil), s, &p
}

func TestTickSingleStepExample(t *testing.T) {
	d, s, _ := newTestDriver()
	if err := s.SetTarget(1, 350, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d.Tick(1.0 / 60)

	p := s.Get(1)
	if !(p.X > 250 && p.X < 350) {
		t.Fatalf("expected x strictly between 250 and 350, got %g", p.X)
	}
	if p.VX <= 0 {
		t.Fatalf("expected positive x velocity, got %g", p.VX)
	}
}

func TestTickLeavesEndpointsAlone(t *testing.T) {
	d, s, _ := newTestDriver()
	p0, p3 := s.Get(0), s.Get(3)
	_ = s.SetTarget(1, 0, 0)
	_ = s.SetTarget(2, 700, 420)

	for range 1000 {
		d.Tick(1.0 / 60)
	}
	if s.Get(0) != p0 || s.Get(3) != p3 {
		t.Fatalf("expected endpoints unchanged, got %+v and %+v", s.Get(0), s.Get(3))
	}
}

func TestTickIgnoresNaNDelta(t *testing.T) {
	s := newTestSimulation()
	s.OnPointerDown(250, 100)
	s.OnPointerMove(350, 100)
	s.Tick(math.NaN())
	if got := s.Get(1).Pos(); got != curve.DefaultLayout[1] {
		t.Fatalf("expected P1 unchanged after a NaN tick, got %v", got)
	}
	if s.Elapsed() != 0 {
		t.Fatalf("expected elapsed 0, got %g", s.Elapsed())
	}
}

func TestTickClampsLongGaps(t *testing.T) {
	clamped, cs, _ := newTestDriver()
	exact, es, _ := newTestDriver()
	_ = cs.SetTarget(1, 350, 100)
	_ = es.SetTarget(1, 350, 100)

	clamped.Tick(30)
	exact.Tick(MaxStep)
	if cs.Get(1) != es.Get(1) {
		t.Fatalf("expected a 30s gap to integrate as %gs, got %+v vs %+v", MaxStep, cs.Get(1), es.Get(1))
	}
	if clamped.Elapsed() != MaxStep {
		t.Fatalf("expected elapsed %g, got %g", MaxStep, clamped.Elapsed())
	}
}

func TestTickNegativeDeltaIsNoop(t *testing.T) {
	d, s, _ := newTestDriver()
	_ = s.SetTarget(1, 350, 100)
	before := s.Get(1)
	d.Tick(-1)
	if s.Get(1) != before {
		t.Fatalf("expected no motion for a negative delta, got %+v", s.Get(1))
	}
}

func TestTickPausedSkipsIntegration(t *testing.T) {
	d, s, p := newTestDriver()
	_ = s.SetTarget(1, 350, 100)
	p.Paused = true

	for range 10 {
		d.Tick(1.0 / 60)
	}
	if got := s.Get(1).Pos(); got != curve.DefaultLayout[1] {
		t.Fatalf("expected paused curve to stay put, got %v", got)
	}
	if d.Elapsed() != 0 {
		t.Fatalf("expected no simulated time while paused, got %g", d.Elapsed())
	}

	p.Paused = false
	d.Tick(1.0 / 60)
	if got := s.Get(1).X; got <= 250 {
		t.Fatalf("expected motion after resume, got x=%g", got)
	}
}

func TestTickConvergesWithoutDiverging(t *testing.T) {
	d, s, _ := newTestDriver()
	_ = s.SetTarget(1, 350, 100)
	_ = s.SetTarget(2, 400, 250)
	dist := func(i int) float64 {
		p, tg := s.Get(i), s.Target(i)
		return math.Hypot(p.X-tg.X, p.Y-tg.Y)
	}
	start := max(dist(1), dist(2))

	for i := range 1000 {
		d.Tick(1.0 / 60)
		if m := max(dist(1), dist(2)); math.IsNaN(m) || m > start {
			t.Fatalf("tick %d: distance %g exceeds start %g", i, m, start)
		}
	}
	for range 120 * 60 {
		d.Tick(1.0 / 60)
	}
	if m := max(dist(1), dist(2)); m >= 1 {
		t.Fatalf("expected both points within 1 unit of their targets, got %g", m)
	}
}

func TestTickAtUsesWallClock(t *testing.T) {
	d, s, _ := newTestDriver()
	_ = s.SetTarget(1, 350, 100)
	base := time.Unix(1000, 0)

	d.TickAt(base)
	if got := s.Get(1).Pos(); got != curve.DefaultLayout[1] {
		t.Fatalf("expected first TickAt to only prime the clock, got %v", got)
	}
	d.TickAt(base.Add(50 * time.Millisecond))
	if got := d.Elapsed(); math.Abs(got-0.05) > 1e-9 {
		t.Fatalf("expected 0.05s elapsed, got %g", got)
	}
	d.TickAt(base.Add(10 * time.Second))
	if got := d.Elapsed(); math.Abs(got-0.15) > 1e-9 {
		t.Fatalf("expected long gap clamped to %gs, got elapsed %g", MaxStep, got)
	}
}
