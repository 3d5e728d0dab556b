package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/olivier-w/springcurve/internal/sim"
)

const sliderWidth = 16

func newSliderBar() progress.Model {
	return progress.New(
		progress.WithScaledGradient("#FF006E", "#3A86FF"),
		progress.WithoutPercentage(),
		progress.WithWidth(sliderWidth),
	)
}

// ratio places v inside r on a 0..1 scale.
func ratio[T int | float64](v T, r sim.Range[T]) float64 {
	span := float64(r.Max - r.Min)
	if span <= 0 {
		return 0
	}
	return min(max(float64(v-r.Min)/span, 0), 1)
}

// renderSlider draws one labelled parameter bar.
func renderSlider(bar progress.Model, label string, frac float64, value string) string {
	return fmt.Sprintf("%s %s %s",
		labelStyle.Render(fmt.Sprintf("%-10s", label)),
		bar.ViewAs(frac),
		valueStyle.Render(fmt.Sprintf("%-5s", value)),
	)
}

// renderSliders lays the four configuration bars out on two lines.
func renderSliders(bar progress.Model, p sim.Params) (string, string) {
	top := renderSlider(bar, "stiffness", ratio(p.Stiffness, sim.StiffnessRange), fmt.Sprintf("%.2f", p.Stiffness)) +
		"   " +
		renderSlider(bar, "damping", ratio(p.Damping, sim.DampingRange), fmt.Sprintf("%.2f", p.Damping))
	bottom := renderSlider(bar, "tangents", ratio(p.TangentCount, sim.TangentCountRange), fmt.Sprint(p.TangentCount)) +
		"   " +
		renderSlider(bar, "resolution", ratio(p.SampleCount, sim.SampleCountRange), fmt.Sprint(p.SampleCount))
	return top, bottom
}
