package scene

import "github.com/olivier-w/springcurve/internal/bezier"

// Dash splits the polyline pts into on-length dashes separated by off-length
// gaps. The pattern carries across vertices. on <= 0 returns every edge.
func Dash(pts []bezier.Point, on, off float64) []Segment {
	var out []Segment
	if len(pts) < 2 {
		return out
	}
	if on <= 0 {
		for i := 1; i < len(pts); i++ {
			out = append(out, Segment{pts[i-1], pts[i]})
		}
		return out
	}
	period := on + max(off, 0)
	var phase float64 // distance into the current period
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		l := d.Len()
		if l == 0 {
			continue
		}
		dir := d.Mul(1 / l)
		for s := 0.0; s < l; {
			var step float64
			if phase < on {
				step = min(on-phase, l-s)
				out = append(out, Segment{a.Add(dir.Mul(s)), a.Add(dir.Mul(s + step))})
			} else {
				step = min(period-phase, l-s)
			}
			s += step
			phase += step
			if phase >= period {
				phase = 0
			}
		}
	}
	return out
}
