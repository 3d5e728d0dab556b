package interact

import (
	"testing"

	"github.com/olivier-w/springcurve/internal/bezier"
	"github.com/olivier-w/springcurve/internal/curve"
)

func newTestController() (*Controller, *curve.State) {
	s := curve.New(curve.DefaultLayout)
	return New(s, 0, nil), s
}

func TestPointerDownOnFreePointStartsDrag(t *testing.T) {
	c, _ := newTestController()
	c.PointerDown(255, 104)

	i, ok := c.Dragging()
	if !ok || i != 1 {
		t.Fatalf("expected dragging point 1, got %d (ok=%v)", i, ok)
	}
	if c.Cursor() != CursorGrabbing {
		t.Fatalf("expected grabbing cursor, got %v", c.Cursor())
	}
}

func TestPointerDownOnFixedPointIsIgnored(t *testing.T) {
	c, _ := newTestController()
	c.PointerDown(100, 300)
	if _, ok := c.Dragging(); ok {
		t.Fatal("expected no drag on a fixed point")
	}
	c.PointerDown(600, 300)
	if _, ok := c.Dragging(); ok {
		t.Fatal("expected no drag on a fixed point")
	}
}

func TestPointerDownMissStaysIdle(t *testing.T) {
	c, _ := newTestController()
	c.PointerDown(350, 250)
	if _, ok := c.Dragging(); ok {
		t.Fatal("expected idle after a miss")
	}
}

func TestHitRadiusIsStrict(t *testing.T) {
	c, _ := newTestController()
	if _, ok := c.HitTest(265, 100); ok {
		t.Fatal("expected a point exactly at the radius to miss")
	}
	if i, ok := c.HitTest(264.9, 100); !ok || i != 1 {
		t.Fatalf("expected point 1 just inside the radius, got %d (ok=%v)", i, ok)
	}
}

func TestHitTestPrefersLowerIndex(t *testing.T) {
	layout := curve.DefaultLayout
	layout[2] = layout[1]
	c := New(curve.New(layout), 0, nil)

	if i, ok := c.HitTest(250, 100); !ok || i != 1 {
		t.Fatalf("expected point 1 to win the overlap, got %d (ok=%v)", i, ok)
	}
}

func TestSecondPointerDownKeepsFirstDrag(t *testing.T) {
	c, _ := newTestController()
	c.PointerDown(250, 100)
	c.PointerDown(450, 100)

	if i, ok := c.Dragging(); !ok || i != 1 {
		t.Fatalf("expected drag to stay on point 1, got %d (ok=%v)", i, ok)
	}
}

func TestPointerMoveWhileDraggingSetsTarget(t *testing.T) {
	c, s := newTestController()
	c.PointerDown(450, 100)
	c.PointerMove(500, 220)

	if got := s.Target(2); got != (curve.Target{X: 500, Y: 220}) {
		t.Fatalf("expected target (500, 220), got %+v", got)
	}
	if got := s.Get(2).Pos(); got != bezier.Pt(450, 100) {
		t.Fatalf("expected the point itself to wait for the spring, got %v", got)
	}
	if got := s.Target(1).Pos(); got != curve.DefaultLayout[1] {
		t.Fatalf("expected other targets untouched, got %v", got)
	}
}

func TestPointerMoveWhileIdleOnlyUpdatesHover(t *testing.T) {
	c, s := newTestController()
	before := *s

	c.PointerMove(252, 98)
	if !c.Hovering() || c.Cursor() != CursorGrab {
		t.Fatalf("expected hover over point 1, cursor %v", c.Cursor())
	}
	c.PointerMove(100, 300)
	if c.Hovering() {
		t.Fatal("expected fixed points not to count as hover")
	}
	if c.Cursor() != CursorCrosshair {
		t.Fatalf("expected crosshair, got %v", c.Cursor())
	}
	if *s != before {
		t.Fatal("expected idle moves to leave curve state untouched")
	}
}

func TestPointerUpAndLeaveEndDrag(t *testing.T) {
	for _, end := range []struct {
		name string
		fn   func(*Controller)
	}{
		{"up", (*Controller).PointerUp},
		{"leave", (*Controller).PointerLeave},
	} {
		t.Run(end.name, func(t *testing.T) {
			c, s := newTestController()
			c.PointerDown(250, 100)
			end.fn(c)

			if _, ok := c.Dragging(); ok {
				t.Fatal("expected idle after release")
			}
			if c.Cursor() != CursorCrosshair {
				t.Fatalf("expected crosshair after release, got %v", c.Cursor())
			}
			c.PointerMove(10, 10)
			if got := s.Target(1).Pos(); got != curve.DefaultLayout[1] {
				t.Fatalf("expected moves after release to leave targets alone, got %v", got)
			}
		})
	}
}

func TestNewDragAfterRelease(t *testing.T) {
	c, _ := newTestController()
	c.PointerDown(250, 100)
	c.PointerUp()
	c.PointerDown(450, 100)
	if i, ok := c.Dragging(); !ok || i != 2 {
		t.Fatalf("expected to drag point 2, got %d (ok=%v)", i, ok)
	}
}

func TestQueriesHaveNoSideEffects(t *testing.T) {
	c, s := newTestController()
	c.PointerDown(250, 100)
	before := *s
	for range 3 {
		c.Dragging()
		c.Hovering()
		c.Cursor()
		c.HitTest(450, 100)
	}
	if *s != before {
		t.Fatal("expected queries to leave state untouched")
	}
	if i, _ := c.Dragging(); i != 1 {
		t.Fatalf("expected drag to stay on point 1, got %d", i)
	}
}

func TestLockTableSingleOwner(t *testing.T) {
	var l lockTable
	a := l.begin()
	b := l.begin()
	if !l.acquire(1, a) {
		t.Fatal("expected first acquire to succeed")
	}
	if l.acquire(2, b) {
		t.Fatal("expected second session to be refused while a lock is held")
	}
	l.release(b)
	if i, s, ok := l.holder(); !ok || i != 1 || s != a {
		t.Fatalf("expected point 1 held by session %d, got %d/%d (ok=%v)", a, i, s, ok)
	}
	l.release(a)
	if l.held() {
		t.Fatal("expected table empty after release")
	}
	if l.acquire(1, 0) {
		t.Fatal("expected the zero session to be refused")
	}
}
