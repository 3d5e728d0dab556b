package ui

import (
	"strings"
	"testing"

	"github.com/olivier-w/springcurve/internal/bezier"
	"github.com/olivier-w/springcurve/internal/canvas"
	"github.com/olivier-w/springcurve/internal/curve"
	"github.com/olivier-w/springcurve/internal/scene"
)

func TestDrawFrameLabelsHandles(t *testing.T) {
	st := curve.New(curve.DefaultLayout)
	vp := newViewport(120, 40, curve.Width, curve.Height)
	c := canvas.New(vp.cols, vp.rows)
	c.SetProfile(canvas.ProfileNone)

	drawFrame(c, vp, scene.Build(st, curve.Width, curve.Height, 100, 12), -1, 0)
	out := c.String()
	for _, label := range []string{"P0", "P1", "P2", "P3"} {
		if !strings.Contains(out, label) {
			t.Fatalf("expected label %s in frame", label)
		}
	}
}

func TestDrawFrameLightsCurve(t *testing.T) {
	st := curve.New(curve.DefaultLayout)
	vp := newViewport(120, 40, curve.Width, curve.Height)
	c := canvas.New(vp.cols, vp.rows)

	drawFrame(c, vp, scene.Build(st, curve.Width, curve.Height, 100, 0), -1, 0)
	x, y := vp.dot(bezier.Pt(350, 150))
	if !c.IsSet(x, y) {
		t.Fatalf("expected curve midpoint dot %d,%d to be lit", x, y)
	}
}

func TestProjectT(t *testing.T) {
	a, b := bezier.Pt(100, 300), bezier.Pt(600, 300)
	cases := []struct {
		p    bezier.Point
		want float64
	}{
		{a, 0},
		{b, 1},
		{bezier.Pt(350, 150), 0.5},
	}
	for _, c := range cases {
		if got := projectT(c.p, a, b); got != c.want {
			t.Fatalf("projectT(%v): expected %g, got %g", c.p, c.want, got)
		}
	}
	if got := projectT(a, a, a); got != 0 {
		t.Fatalf("expected 0 for a degenerate axis, got %g", got)
	}
}

func TestOverBlendsOntoBackground(t *testing.T) {
	got := over(scene.GridColor)
	bg := scene.BackgroundBottom
	if got.R < min(bg.R, scene.GridColor.R) || got.R > max(bg.R, scene.GridColor.R) {
		t.Fatalf("expected blended red between %d and %d, got %d", bg.R, scene.GridColor.R, got.R)
	}
}
