package styles

import (
	"bytes"
	"fmt"
)

// DefaultFill is the progress fill color used when none is configured.
const DefaultFill = "#2a9d8f"

// Simple renders clean flat arcs on a light background.
type Simple struct {
	// Fill is the progress fill color; empty means DefaultFill.
	Fill string
}

func (s Simple) fill() string {
	if s.Fill != "" {
		return s.Fill
	}
	return DefaultFill
}

// RenderDefs writes nothing; the simple style needs no defs.
func (s Simple) RenderDefs(buf *bytes.Buffer) {}

// RenderArc draws the task arc as a light track with the elapsed portion
// filled in the progress color.
func (s Simple) RenderArc(buf *bytes.Buffer, a Arc) {
	if a.Path == "" {
		fmt.Fprintf(buf, "  <path id=\"arc-%s\" class=\"arc\" d=\"%s\" fill=\"none\" stroke=\"#333\" stroke-width=\"1.5\"/>\n",
			EscapeXML(a.ID), a.TickPath)
		return
	}
	fmt.Fprintf(buf, "  <path id=\"arc-%s\" class=\"arc\" d=\"%s\" fill=\"#ececec\" stroke=\"#333\" stroke-width=\"1\"/>\n",
		EscapeXML(a.ID), a.Path)
	if a.FillPath != "" {
		fmt.Fprintf(buf, "  <path class=\"arc-progress\" d=\"%s\" fill=\"%s\" pointer-events=\"none\"/>\n",
			a.FillPath, EscapeXML(s.fill()))
	}
}

// RenderLabel draws the task name along the arc's angular center.
func (s Simple) RenderLabel(buf *bytes.Buffer, a Arc) {
	if a.FontSize <= 0 {
		return
	}
	fmt.Fprintf(buf, "  <text class=\"arc-text\" data-arc=\"%s\" x=\"%.2f\" y=\"%.2f\" font-size=\"%.1f\" font-family=\"sans-serif\" fill=\"#222\" text-anchor=\"middle\" dominant-baseline=\"middle\" transform=\"rotate(%.1f %.2f %.2f)\">%s</text>\n",
		EscapeXML(a.ID), a.LX, a.LY, a.FontSize, a.Rotate, a.LX, a.LY, EscapeXML(a.Label))
}

// RenderNeedle draws the progress line, the center disc and its label.
func (s Simple) RenderNeedle(buf *bytes.Buffer, n Needle) {
	if n.X != n.CX || n.Y != n.CY {
		fmt.Fprintf(buf, "  <line class=\"needle\" x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"2\"/>\n",
			n.CX, n.CY, n.X, n.Y, EscapeXML(s.fill()))
	}
	fmt.Fprintf(buf, "  <circle class=\"hub\" cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\" fill=\"white\" stroke=\"#333\" stroke-width=\"1\"/>\n",
		n.CX, n.CY, n.Hole)
	fmt.Fprintf(buf, "  <text class=\"hub-text\" x=\"%.2f\" y=\"%.2f\" font-size=\"%.1f\" font-family=\"sans-serif\" fill=\"#222\" text-anchor=\"middle\" dominant-baseline=\"middle\">%s</text>\n",
		n.CX, n.CY, hubFontSize(n), EscapeXML(n.Label))
}

// RenderPopup draws the hover tooltip rows for an arc.
func (s Simple) RenderPopup(buf *bytes.Buffer, a Arc) {
	renderPopupBox(buf, a, "white", "#333", "#222")
}

func hubFontSize(n Needle) float64 {
	size := n.Hole * 0.42
	if chars := len(n.Label); chars > 0 {
		if byWidth := (n.Hole * 1.7) / (float64(chars) * fontCharWidth); byWidth < size {
			size = byWidth
		}
	}
	return max(fontSizeMin, min(fontSizeMax*2, size))
}

// renderPopupBox is shared popup plumbing: a hidden group the popup script
// positions and toggles on hover.
func renderPopupBox(buf *bytes.Buffer, a Arc, bg, border, fg string) {
	if a.Popup == nil || len(a.Popup.Rows) == 0 {
		return
	}

	const (
		rowHeight = 16.0
		padding   = 8.0
		fontSize  = 11.0
	)

	width := 0.0
	for _, row := range a.Popup.Rows {
		if w := float64(len(row.Label)+len(row.Value)+2) * fontSize * fontCharWidth; w > width {
			width = w
		}
	}
	width += 2 * padding
	height := float64(len(a.Popup.Rows))*rowHeight + 2*padding

	fmt.Fprintf(buf, "  <g class=\"popup\" data-for=\"%s\" visibility=\"hidden\">\n", EscapeXML(a.ID))
	fmt.Fprintf(buf, "    <rect x=\"0\" y=\"0\" width=\"%.1f\" height=\"%.1f\" rx=\"4\" fill=\"%s\" stroke=\"%s\" stroke-width=\"1\" opacity=\"0.95\"/>\n",
		width, height, bg, border)
	for i, row := range a.Popup.Rows {
		y := padding + float64(i)*rowHeight + rowHeight*0.7
		fmt.Fprintf(buf, "    <text x=\"%.1f\" y=\"%.1f\" font-size=\"%.1f\" font-family=\"sans-serif\" fill=\"%s\"><tspan font-weight=\"bold\">%s:</tspan> %s</text>\n",
			padding, y, fontSize, fg, EscapeXML(row.Label), EscapeXML(row.Value))
	}
	buf.WriteString("  </g>\n")
}
