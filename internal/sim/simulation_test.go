package sim

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/olivier-w/springcurve/internal/curve"
	"github.com/olivier-w/springcurve/internal/interact"
)

func newTestSimulation() *Simulation {
	return New(curve.New(curve.DefaultLayout), DefaultParams())
}

func TestSettersClamp(t *testing.T) {
	s := newTestSimulation()
	s.SetStiffness(-3)
	s.SetDamping(1.7)
	s.SetSampleCount(0)
	s.SetTangentCount(-1)

	want := Params{
		Stiffness:    StiffnessRange.Min,
		Damping:      1,
		SampleCount:  SampleCountRange.Min,
		TangentCount: 0,
	}
	if diff := cmp.Diff(want, s.Params()); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestSettersRejectNaN(t *testing.T) {
	s := newTestSimulation()
	s.SetStiffness(math.NaN())
	s.SetDamping(math.NaN())
	if got := s.Params(); got.Stiffness != StiffnessRange.Min || got.Damping != DampingRange.Min {
		t.Fatalf("expected NaN to clamp to the range minimum, got %+v", got)
	}

	s.OnPointerDown(250, 100)
	s.OnPointerMove(350, 100)
	s.Tick(1.0 / 60)
	if p := s.Get(1); math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.VX) || math.IsNaN(p.VY) {
		t.Fatalf("expected finite P1 after a tick, got %+v", p)
	}
}

func TestNewClampsNaNParams(t *testing.T) {
	s := New(curve.New(curve.DefaultLayout), Params{Stiffness: math.NaN(), Damping: math.NaN(), SampleCount: 100, TangentCount: 12})
	if got := s.Params(); math.IsNaN(got.Stiffness) || math.IsNaN(got.Damping) {
		t.Fatalf("expected finite params, got %+v", got)
	}
}

func TestNewClampsParams(t *testing.T) {
	s := New(curve.New(curve.DefaultLayout), Params{Stiffness: 50, Damping: -1, SampleCount: 9999, TangentCount: 99})
	want := Params{Stiffness: 1, Damping: 0, SampleCount: 500, TangentCount: 50}
	if diff := cmp.Diff(want, s.Params()); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestTogglePaused(t *testing.T) {
	s := newTestSimulation()
	if !s.TogglePaused() || !s.Params().Paused {
		t.Fatal("expected paused after first toggle")
	}
	if s.TogglePaused() {
		t.Fatal("expected running after second toggle")
	}
}

func TestDragThroughFacadeMovesCurve(t *testing.T) {
	s := newTestSimulation()
	s.OnPointerDown(250, 100)
	s.OnPointerMove(350, 100)
	s.OnPointerUp()

	if got := s.Target(1); got != (curve.Target{X: 350, Y: 100}) {
		t.Fatalf("expected target (350, 100), got %+v", got)
	}
	if s.Cursor() != interact.CursorCrosshair {
		t.Fatalf("expected crosshair after release, got %v", s.Cursor())
	}
	s.Tick(1.0 / 60)
	if got := s.Get(1).X; got <= 250 {
		t.Fatalf("expected point 1 to move right, got x=%g", got)
	}
}

func TestEndpointsSurviveAnyPointerSequence(t *testing.T) {
	s := newTestSimulation()
	p0, p3 := s.Get(0), s.Get(3)

	moves := [][2]float64{{100, 300}, {600, 300}, {250, 100}, {0, 0}, {450, 100}, {700, 420}}
	for i, m := range moves {
		s.OnPointerDown(m[0], m[1])
		s.OnPointerMove(m[1], m[0])
		s.Tick(1.0 / 30)
		if i%2 == 0 {
			s.OnPointerUp()
		} else {
			s.OnPointerLeave()
		}
		s.Tick(0.2)
	}
	s.Reset()
	if s.Get(0) != p0 || s.Get(3) != p3 {
		t.Fatalf("expected endpoints unchanged, got %+v and %+v", s.Get(0), s.Get(3))
	}
	if s.Target(0).Pos() != p0.Pos() || s.Target(3).Pos() != p3.Pos() {
		t.Fatal("expected endpoint targets to match their positions")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s := newTestSimulation()
	snap := s.Snapshot()
	_ = snap.SetTarget(1, 0, 0)
	if s.Target(1).Pos() == snap.Target(1).Pos() {
		t.Fatal("expected snapshot writes not to reach the live state")
	}
}

func TestResetWhilePausedRestoresLayout(t *testing.T) {
	s := newTestSimulation()
	s.OnPointerDown(450, 100)
	s.OnPointerMove(500, 300)
	for range 30 {
		s.Tick(1.0 / 60)
	}
	s.SetPaused(true)
	s.Reset()
	s.Reset()

	fresh := curve.New(curve.DefaultLayout)
	for i := range curve.NumPoints {
		if s.Get(i) != fresh.Get(i) || s.Target(i) != fresh.Target(i) {
			t.Fatalf("point %d: expected %+v/%+v, got %+v/%+v", i, fresh.Get(i), fresh.Target(i), s.Get(i), s.Target(i))
		}
	}
}
