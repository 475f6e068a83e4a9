// Package layout computes arc positions for the ring visualization.
//
// Layer 0 is the outermost ring; each additional layer moves inward toward
// the center hole, which holds the progress indicator. All angles are
// radians measured clockwise from the top of the circle, matching the
// angles the chart package assigns.
package layout

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/matzehuels/ganttring/pkg/chart"
)

// Geometry defaults, in viewport units.
const (
	DefaultMargin   = 18.0
	DefaultGap      = 3.0
	DefaultHoleFrac = 0.28

	// minThickness keeps rings visible on charts with many layers.
	minThickness = 2.0
)

// fullSweepShave trims full-circle arcs by a sliver of a radian so the SVG
// arc command has distinct endpoints to connect.
const fullSweepShave = 1e-4

// Options controls ring geometry.
type Options struct {
	Margin   float64 // frame edge to outer ring; zero means DefaultMargin
	Gap      float64 // radial gap between rings; zero means DefaultGap
	HoleFrac float64 // center hole as a fraction of the radius; zero means DefaultHoleFrac
}

// Layout holds the positioned ring chart.
type Layout struct {
	FrameWidth  float64
	FrameHeight float64
	CX, CY      float64

	Rings []Ring
	Arcs  []Arc

	// Hole is the center disc radius hosting the progress indicator.
	Hole float64

	// NeedleAngle is the overall progress direction.
	NeedleAngle float64

	// Label is the center text: the overall percentage, or the no-tasks
	// notice for an empty chart.
	Label string
}

// Ring is one concentric band.
type Ring struct {
	Index  int
	InnerR float64
	OuterR float64
}

// Arc is one positioned task segment.
type Arc struct {
	Index int // position in the chart's task order
	Name  string
	Layer int

	StartAngle float64
	EndAngle   float64
	InnerR     float64
	OuterR     float64

	Progress float64
	Start    time.Time
	End      time.Time
}

// Sweep returns the arc's angular extent.
func (a Arc) Sweep() float64 { return a.EndAngle - a.StartAngle }

// IsPoint reports whether the arc has collapsed to a single angle.
func (a Arc) IsPoint() bool { return a.Sweep() <= 0 }

// MidAngle is the arc's angular center, where labels anchor.
func (a Arc) MidAngle() float64 { return (a.StartAngle + a.EndAngle) / 2 }

// MidRadius is the radial center of the arc's band.
func (a Arc) MidRadius() float64 { return (a.InnerR + a.OuterR) / 2 }

// Thickness is the arc's radial extent.
func (a Arc) Thickness() float64 { return a.OuterR - a.InnerR }

// Compute lays the chart out in a width×height viewport. The overall span
// already became angles during chart building, so this is purely radial
// bookkeeping: slice the band between hole and rim into one ring per layer
// and place each task on its ring.
func Compute(c chart.Chart, width, height float64, opts Options) Layout {
	margin := opts.Margin
	if margin == 0 {
		margin = DefaultMargin
	}
	gap := opts.Gap
	if gap == 0 {
		gap = DefaultGap
	}
	holeFrac := opts.HoleFrac
	if holeFrac == 0 {
		holeFrac = DefaultHoleFrac
	}

	l := Layout{
		FrameWidth:  width,
		FrameHeight: height,
		CX:          width / 2,
		CY:          height / 2,
		NeedleAngle: c.ProgressAngle,
		Label:       c.ProgressLabel(),
	}

	radius := math.Min(width, height)/2 - margin
	if radius <= 0 {
		radius = minThickness
	}
	l.Hole = radius * holeFrac

	if c.Empty() {
		return l
	}

	band := radius - l.Hole - gap*float64(c.Layers)
	thickness := math.Max(band/float64(c.Layers), minThickness)

	l.Rings = make([]Ring, c.Layers)
	for i := range l.Rings {
		outer := radius - float64(i)*(thickness+gap)
		l.Rings[i] = Ring{Index: i, InnerR: outer - thickness, OuterR: outer}
	}

	l.Arcs = make([]Arc, len(c.Tasks))
	for i, t := range c.Tasks {
		ring := l.Rings[t.Layer]
		l.Arcs[i] = Arc{
			Index:      i,
			Name:       t.Name,
			Layer:      t.Layer,
			StartAngle: t.StartAngle,
			EndAngle:   t.EndAngle,
			InnerR:     ring.InnerR,
			OuterR:     ring.OuterR,
			Progress:   t.Progress,
			Start:      t.Start,
			End:        t.End,
		}
	}
	return l
}

// Point converts polar coordinates to viewport coordinates. Angle zero is
// the top of the circle and angles grow clockwise.
func Point(cx, cy, r, angle float64) (x, y float64) {
	return cx + r*math.Sin(angle), cy - r*math.Cos(angle)
}

// ArcPath builds the SVG path for a donut segment between two radii and two
// angles. Full-circle sweeps are shaved by a sliver so the arc endpoints
// stay distinct. Point arcs have no area; use [TickPath] for those.
func ArcPath(cx, cy, innerR, outerR, start, end float64) string {
	if sweep := end - start; sweep >= 2*math.Pi-fullSweepShave {
		end = start + 2*math.Pi - fullSweepShave
	}

	largeArc := 0
	if end-start > math.Pi {
		largeArc = 1
	}

	x1, y1 := Point(cx, cy, outerR, start)
	x2, y2 := Point(cx, cy, outerR, end)
	x3, y3 := Point(cx, cy, innerR, end)
	x4, y4 := Point(cx, cy, innerR, start)

	var b strings.Builder
	fmt.Fprintf(&b, "M %.2f %.2f ", x1, y1)
	fmt.Fprintf(&b, "A %.2f %.2f 0 %d 1 %.2f %.2f ", outerR, outerR, largeArc, x2, y2)
	fmt.Fprintf(&b, "L %.2f %.2f ", x3, y3)
	fmt.Fprintf(&b, "A %.2f %.2f 0 %d 0 %.2f %.2f ", innerR, innerR, largeArc, x4, y4)
	b.WriteString("Z")
	return b.String()
}

// TickPath builds the radial line marking a point arc.
func TickPath(cx, cy, innerR, outerR, angle float64) string {
	x1, y1 := Point(cx, cy, innerR, angle)
	x2, y2 := Point(cx, cy, outerR, angle)
	return fmt.Sprintf("M %.2f %.2f L %.2f %.2f", x1, y1, x2, y2)
}
