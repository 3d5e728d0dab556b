// Package interact turns pointer input into drag state and target updates
// for the curve's free control points.
package interact

import (
	"log/slog"

	"github.com/olivier-w/springcurve/internal/bezier"
	"github.com/olivier-w/springcurve/internal/curve"
)

// DefaultHitRadius is the grab distance around a control point in
// curve-local units.
const DefaultHitRadius = 15.0

// Cursor is the pointer affordance the host should display.
type Cursor uint8

const (
	CursorCrosshair Cursor = iota
	CursorGrab
	CursorGrabbing
)

// String returns the CSS-style cursor name.
func (c Cursor) String() string {
	switch c {
	case CursorGrab:
		return "grab"
	case CursorGrabbing:
		return "grabbing"
	default:
		return "crosshair"
	}
}

// Controller is a two-state machine, Idle or Dragging(i). All pointer
// coordinates are curve-local.
type Controller struct {
	state    *curve.State
	radius   float64
	locks    lockTable
	hovering bool
	logger   *slog.Logger
}

// New returns an idle Controller acting on state. A non-positive radius
// selects DefaultHitRadius and a nil logger discards output.
func New(state *curve.State, radius float64, logger *slog.Logger) *Controller {
	if radius <= 0 {
		radius = DefaultHitRadius
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{state: state, radius: radius, logger: logger}
}

// Radius returns the hit radius.
func (c *Controller) Radius() float64 { return c.radius }

// HitTest returns the first free point, in index order, strictly within the
// hit radius of (x, y).
func (c *Controller) HitTest(x, y float64) (int, bool) {
	pos := bezier.Pt(x, y)
	for i := range curve.NumPoints {
		p := c.state.Get(i)
		if p.Fixed {
			continue
		}
		if p.Pos().Distance(pos) < c.radius {
			return i, true
		}
	}
	return -1, false
}

// PointerDown starts dragging the point under (x, y). It has no effect while
// a drag is already in progress or when nothing is hit.
func (c *Controller) PointerDown(x, y float64) {
	if c.locks.held() {
		return
	}
	i, ok := c.HitTest(x, y)
	if !ok {
		return
	}
	if c.locks.acquire(i, c.locks.begin()) {
		c.logger.Debug("drag start", "point", i, "x", x, "y", y)
	}
}

// PointerMove retargets the dragged point to (x, y), or refreshes the hover
// flag when idle.
func (c *Controller) PointerMove(x, y float64) {
	if i, _, ok := c.locks.holder(); ok {
		if err := c.state.SetTarget(i, x, y); err != nil {
			// Only free points are ever locked.
			c.logger.Warn("drag target rejected", "point", i, "err", err)
		}
		return
	}
	_, c.hovering = c.HitTest(x, y)
}

// PointerUp ends the drag, if any. The hover flag is cleared until the next
// move.
func (c *Controller) PointerUp() {
	c.end("up")
}

// PointerLeave ends the drag, if any.
func (c *Controller) PointerLeave() {
	c.end("leave")
}

func (c *Controller) end(reason string) {
	c.hovering = false
	i, s, ok := c.locks.holder()
	if !ok {
		return
	}
	c.locks.release(s)
	c.logger.Debug("drag end", "point", i, "reason", reason)
}

// Dragging returns the index of the dragged point.
func (c *Controller) Dragging() (int, bool) {
	i, _, ok := c.locks.holder()
	return i, ok
}

// Hovering reports whether the last idle pointer position was over a free
// point.
func (c *Controller) Hovering() bool {
	return c.hovering
}

// Cursor returns the affordance for the current state.
func (c *Controller) Cursor() Cursor {
	switch {
	case c.locks.held():
		return CursorGrabbing
	case c.hovering:
		return CursorGrab
	default:
		return CursorCrosshair
	}
}
