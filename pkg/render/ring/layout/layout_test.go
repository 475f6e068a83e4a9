package layout

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/ganttring/pkg/chart"
)

func day(n int) time.Time {
	return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func buildChart(t *testing.T) chart.Chart {
	t.Helper()
	return chart.Build([]chart.Interval{
		{Name: "plan", Start: day(0), End: day(3)},
		{Name: "build", Start: day(2), End: day(7)},
		{Name: "ship", Start: day(7), End: day(10)},
	}, chart.Options{Compress: true, Now: day(5)})
}

func TestCompute_RingPerLayer(t *testing.T) {
	c := buildChart(t)
	l := Compute(c, 600, 600, Options{})

	if len(l.Rings) != c.Layers {
		t.Fatalf("got %d rings, want %d", len(l.Rings), c.Layers)
	}
	if len(l.Arcs) != len(c.Tasks) {
		t.Fatalf("got %d arcs, want %d", len(l.Arcs), len(c.Tasks))
	}

	// Layer 0 must be the outermost ring.
	if l.Rings[0].OuterR <= l.Rings[1].OuterR {
		t.Errorf("ring 0 outer %v should exceed ring 1 outer %v", l.Rings[0].OuterR, l.Rings[1].OuterR)
	}

	for _, r := range l.Rings {
		if r.InnerR >= r.OuterR {
			t.Errorf("ring %d inner %v >= outer %v", r.Index, r.InnerR, r.OuterR)
		}
		if r.InnerR < l.Hole {
			t.Errorf("ring %d reaches into the center hole", r.Index)
		}
	}
}

func TestCompute_ArcsSitOnTheirRing(t *testing.T) {
	c := buildChart(t)
	l := Compute(c, 600, 600, Options{})

	for _, a := range l.Arcs {
		ring := l.Rings[a.Layer]
		if a.InnerR != ring.InnerR || a.OuterR != ring.OuterR {
			t.Errorf("arc %s radii (%v, %v) do not match ring %d (%v, %v)",
				a.Name, a.InnerR, a.OuterR, a.Layer, ring.InnerR, ring.OuterR)
		}
	}
}

func TestCompute_EmptyChart(t *testing.T) {
	l := Compute(chart.Build(nil, chart.Options{}), 600, 600, Options{})

	if len(l.Rings) != 0 || len(l.Arcs) != 0 {
		t.Errorf("empty chart produced %d rings, %d arcs", len(l.Rings), len(l.Arcs))
	}
	if l.Label != chart.NoTasksLabel {
		t.Errorf("Label = %q, want %q", l.Label, chart.NoTasksLabel)
	}
	if l.Hole <= 0 {
		t.Error("center hole should still be sized for the label")
	}
}

func TestCompute_NonSquareViewport(t *testing.T) {
	c := buildChart(t)
	l := Compute(c, 900, 500, Options{})

	if l.CX != 450 || l.CY != 250 {
		t.Errorf("center = (%v, %v), want (450, 250)", l.CX, l.CY)
	}
	limit := 250.0 // half the short edge
	for _, r := range l.Rings {
		if r.OuterR >= limit {
			t.Errorf("ring %d outer %v exceeds short edge half %v", r.Index, r.OuterR, limit)
		}
	}
}

func TestPoint(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		wantX float64
		wantY float64
	}{
		{"top", 0, 100, 50},
		{"right", math.Pi / 2, 150, 100},
		{"bottom", math.Pi, 100, 150},
		{"left", 3 * math.Pi / 2, 50, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Point(100, 100, 50, tt.angle)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("Point(angle=%v) = (%v, %v), want (%v, %v)", tt.angle, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestArcPath(t *testing.T) {
	path := ArcPath(100, 100, 40, 60, 0, math.Pi/2)

	if !strings.HasPrefix(path, "M 100.00 40.00") {
		t.Errorf("path should start at the outer radius top: %s", path)
	}
	if !strings.HasSuffix(path, "Z") {
		t.Errorf("path should close: %s", path)
	}
	if strings.Count(path, "A") != 2 {
		t.Errorf("path should contain two arc commands: %s", path)
	}
	// Quarter sweep stays a small arc.
	if strings.Contains(path, " 0 1 1 ") {
		t.Errorf("quarter sweep should not set the large-arc flag: %s", path)
	}
}

func TestArcPath_FullCircleStaysWellFormed(t *testing.T) {
	path := ArcPath(100, 100, 40, 60, 0, 2*math.Pi)

	// The shaved endpoint must not coincide with the start point.
	if strings.Contains(path, "M 100.00 40.00 A 60.00 60.00 0 1 1 100.00 40.00") {
		t.Errorf("full sweep produced coincident endpoints: %s", path)
	}
}

func TestTickPath(t *testing.T) {
	path := TickPath(100, 100, 40, 60, 0)
	if path != "M 100.00 60.00 L 100.00 40.00" {
		t.Errorf("TickPath = %q", path)
	}
}

func TestArcHelpers(t *testing.T) {
	a := Arc{StartAngle: math.Pi / 2, EndAngle: math.Pi, InnerR: 40, OuterR: 60}

	if got := a.Sweep(); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("Sweep() = %v", got)
	}
	if a.IsPoint() {
		t.Error("IsPoint() = true for a quarter arc")
	}
	if got := a.MidAngle(); math.Abs(got-3*math.Pi/4) > 1e-12 {
		t.Errorf("MidAngle() = %v", got)
	}
	if got := a.MidRadius(); got != 50 {
		t.Errorf("MidRadius() = %v", got)
	}

	point := Arc{StartAngle: 1, EndAngle: 1}
	if !point.IsPoint() {
		t.Error("IsPoint() = false for a zero sweep")
	}
}
