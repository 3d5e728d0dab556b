package ui

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// fpsMeter counts frames over one-second windows and eases the displayed
// figure toward each new measurement.
type fpsMeter struct {
	spring harmonica.Spring
	last   time.Time
	frames int
	window float64
	fps    int
	shown  float64
	vel    float64
}

func newFPSMeter(fps int) fpsMeter {
	return fpsMeter{spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0)}
}

// frame records a frame drawn at now. Gaps are capped at the driver's
// maximum step so a stall does not flatten the next reading.
func (m *fpsMeter) frame(now time.Time, maxGap float64) {
	if !m.last.IsZero() {
		m.window += math.Min(now.Sub(m.last).Seconds(), maxGap)
	}
	m.last = now
	m.frames++
	if m.window >= 1 {
		m.fps = int(math.Round(float64(m.frames) / m.window))
		m.frames = 0
		m.window = 0
	}
	m.shown, m.vel = m.spring.Update(m.shown, m.vel, float64(m.fps))
}

// measured returns the last full-window measurement.
func (m fpsMeter) measured() int { return m.fps }

// display returns the eased figure.
func (m fpsMeter) display() int { return int(math.Round(m.shown)) }
