package chart

import (
	"fmt"
	"math"
)

// degreesPerPercent scales a percentage of the span onto the full circle:
// 100% * 3.6 = 360 degrees.
const degreesPerPercent = 3.6

// Radians converts a percent of the full sweep to radians. Radians(100) is
// exactly 2π.
func Radians(percent float64) float64 {
	return percent * degreesPerPercent * math.Pi / 180
}

// Angle maps a time offset within span to radians on the circle. Offsets at
// or beyond span map to the full sweep, which also makes an empty span
// collapse to 100%. The mapping is monotonic in value for a fixed span.
func Angle(value, span float64) float64 {
	if value >= span {
		return Radians(100)
	}
	return Radians(value / (span / 100))
}

// StartAngle is Angle, except that an empty span maps to the zero angle
// rather than the full sweep, so a degenerate chart still anchors its arcs
// at the top of the circle.
func StartAngle(value, span float64) float64 {
	if span <= 0 {
		return 0
	}
	return Angle(value, span)
}

// Progress returns the percentage of span elapsed, clamped to [0, limit].
// A zero or negative span has no elapsed fraction to measure and reports
// limit immediately.
func Progress(elapsed, span, limit float64) float64 {
	if span <= 0 {
		return limit
	}
	p := elapsed / (span / 100)
	return math.Min(math.Max(p, 0), limit)
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.0f%%", p)
}
