package util

import (
	"fmt"
	"math"
)

// FormatSeconds formats simulated seconds as m:ss.t.
func FormatSeconds(s float64) string {
	if s < 0 || math.IsNaN(s) {
		s = 0
	}
	tenths := int(math.Floor(s * 10))
	m := tenths / 600
	sec := tenths % 600
	return fmt.Sprintf("%d:%02d.%d", m, sec/10, sec%10)
}
