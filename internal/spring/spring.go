// Package spring advances free control points toward their targets with a
// damped spring.
package spring

import "github.com/olivier-w/springcurve/internal/curve"

// Params are the spring coefficients.
//
// Damping is the share of the velocity that survives each unit of time:
// 1 applies no drag and 0 applies full drag. It is not a damping ratio.
type Params struct {
	Stiffness float64
	Damping   float64
}

// Step integrates p toward target over dt seconds with semi-implicit Euler.
//
// dt must already be clamped and non-negative; Step performs no validation.
// Fixed points must not be passed in.
func Step(p curve.ControlPoint, target curve.Target, params Params, dt float64) curve.ControlPoint {
	drag := 1 - params.Damping
	ax := -params.Stiffness*(p.X-target.X) - drag*p.VX
	ay := -params.Stiffness*(p.Y-target.Y) - drag*p.VY

	p.VX += ax * dt
	p.VY += ay * dt
	p.X += p.VX * dt
	p.Y += p.VY * dt
	return p
}
