package sink

import (
	"encoding/json"
	"time"

	"github.com/matzehuels/ganttring/pkg/chart"
	"github.com/matzehuels/ganttring/pkg/render/ring/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	chart *chart.Chart
	style string
	seed  uint64
}

// WithJSONChart attaches the chart for span and progress data. Without
// this, the output carries geometry only.
func WithJSONChart(c chart.Chart) JSONOption { return func(r *jsonRenderer) { r.chart = &c } }

// WithJSONStyle records the style name (e.g. "simple", "midnight") for
// round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONSeed records the sample generator seed for reproducibility.
func WithJSONSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = seed } }

type jsonOutput struct {
	Width       float64    `json:"width"`
	Height      float64    `json:"height"`
	Hole        float64    `json:"hole"`
	Label       string     `json:"label"`
	NeedleAngle float64    `json:"needle_angle"`
	Style       string     `json:"style,omitempty"`
	Seed        uint64     `json:"seed,omitempty"`
	Progress    float64    `json:"progress,omitempty"`
	Layers      int        `json:"layers,omitempty"`
	SpanStart   *time.Time `json:"span_start,omitempty"`
	SpanEnd     *time.Time `json:"span_end,omitempty"`
	Rings       []jsonRing `json:"rings,omitempty"`
	Arcs        []jsonArc  `json:"arcs"`
}

type jsonRing struct {
	Index  int     `json:"index"`
	InnerR float64 `json:"inner_r"`
	OuterR float64 `json:"outer_r"`
}

type jsonArc struct {
	Name       string    `json:"name"`
	Layer      int       `json:"layer"`
	StartAngle float64   `json:"start_angle"`
	EndAngle   float64   `json:"end_angle"`
	InnerR     float64   `json:"inner_r"`
	OuterR     float64   `json:"outer_r"`
	Progress   float64   `json:"progress"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

// RenderJSON exports the layout as a pretty-printed JSON document. It does
// not modify l or the chart, and is safe to call concurrently.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:       l.FrameWidth,
		Height:      l.FrameHeight,
		Hole:        l.Hole,
		Label:       l.Label,
		NeedleAngle: l.NeedleAngle,
		Style:       r.style,
		Seed:        r.seed,
		Rings:       buildJSONRings(l),
		Arcs:        buildJSONArcs(l),
	}

	if r.chart != nil {
		out.Progress = r.chart.Progress
		out.Layers = r.chart.Layers
		if start, end, ok := r.chart.Span(); ok {
			out.SpanStart, out.SpanEnd = &start, &end
		}
	}

	return json.MarshalIndent(out, "", "  ")
}

func buildJSONRings(l layout.Layout) []jsonRing {
	rings := make([]jsonRing, len(l.Rings))
	for i, r := range l.Rings {
		rings[i] = jsonRing{Index: r.Index, InnerR: r.InnerR, OuterR: r.OuterR}
	}
	return rings
}

func buildJSONArcs(l layout.Layout) []jsonArc {
	arcs := make([]jsonArc, len(l.Arcs))
	for i, a := range l.Arcs {
		arcs[i] = jsonArc{
			Name:       a.Name,
			Layer:      a.Layer,
			StartAngle: a.StartAngle,
			EndAngle:   a.EndAngle,
			InnerR:     a.InnerR,
			OuterR:     a.OuterR,
			Progress:   a.Progress,
			Start:      a.Start,
			End:        a.End,
		}
	}
	return arcs
}
