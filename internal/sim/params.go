package sim

import "github.com/olivier-w/springcurve/internal/spring"

// Range is an inclusive bound for a tunable parameter.
type Range[T int | float64] struct {
	Min, Max T
}

// Clamp limits v to r. NaN maps to r.Min.
func (r Range[T]) Clamp(v T) T {
	if v != v {
		return r.Min
	}
	return min(max(v, r.Min), r.Max)
}

// Limits enforced by the configuration setters.
var (
	StiffnessRange    = Range[float64]{Min: 0.01, Max: 1}
	DampingRange      = Range[float64]{Min: 0, Max: 1}
	SampleCountRange  = Range[int]{Min: 10, Max: 500}
	TangentCountRange = Range[int]{Min: 0, Max: 50}
)

// Params are the process-wide simulation settings. The simulation only reads
// them; the configuration surface writes them through Simulation's setters.
type Params struct {
	Stiffness    float64
	Damping      float64
	SampleCount  int
	TangentCount int
	Paused       bool
}

// DefaultParams returns the settings the curve starts with.
func DefaultParams() Params {
	return Params{
		Stiffness:    0.15,
		Damping:      0.85,
		SampleCount:  100,
		TangentCount: 12,
	}
}

// Spring returns the coefficients for the integrator.
func (p Params) Spring() spring.Params {
	return spring.Params{Stiffness: p.Stiffness, Damping: p.Damping}
}

// Clamped returns p with every field inside its range.
func (p Params) Clamped() Params {
	p.Stiffness = StiffnessRange.Clamp(p.Stiffness)
	p.Damping = DampingRange.Clamp(p.Damping)
	p.SampleCount = SampleCountRange.Clamp(p.SampleCount)
	p.TangentCount = TangentCountRange.Clamp(p.TangentCount)
	return p
}
