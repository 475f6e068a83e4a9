package styles

import "bytes"

// Style defines the visual appearance for ring rendering.
// Implementations control how arcs, labels, the needle, and popups are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (background, filters, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderArc writes the SVG for a single task arc, including its
	// progress fill.
	RenderArc(buf *bytes.Buffer, a Arc)
	// RenderLabel writes the SVG for an arc's task name.
	RenderLabel(buf *bytes.Buffer, a Arc)
	// RenderNeedle writes the SVG for the overall progress indicator.
	RenderNeedle(buf *bytes.Buffer, n Needle)
	// RenderPopup writes the SVG for an arc's hover popup.
	RenderPopup(buf *bytes.Buffer, a Arc)
}

// Arc contains all data needed to render a single task arc.
type Arc struct {
	ID    string // arc identifier, unique within the chart
	Label string // task name

	// Path is the donut-segment outline. For point arcs it is empty and
	// TickPath carries the radial marker instead.
	Path     string
	TickPath string

	// FillPath covers the elapsed portion of the arc (empty when the
	// task has not started).
	FillPath string

	// LX, LY anchor the label at the arc's angular center; Rotate is
	// the label rotation in degrees at that anchor.
	LX, LY   float64
	Rotate   float64
	FontSize float64

	Progress float64
	Popup    *PopupData // hover popup content (nil if disabled)
}

// PopupData holds the tooltip rows displayed on hover, in display order.
type PopupData struct {
	Rows []PopupRow
}

// PopupRow is one label/value line in a popup.
type PopupRow struct {
	Label string
	Value string
}

// Needle contains positioning data for the overall progress indicator.
type Needle struct {
	CX, CY float64 // chart center
	X, Y   float64 // needle tip
	Hole   float64 // center disc radius
	Label  string  // center text (percentage or the no-tasks notice)
}
