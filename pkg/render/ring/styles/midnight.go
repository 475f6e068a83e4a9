package styles

import (
	"bytes"
	"fmt"
)

// Midnight renders glowing arcs on a dark background.
type Midnight struct{}

// Background is the canvas color the sink paints behind a Midnight chart.
func (Midnight) Background() string { return "#101418" }

// RenderDefs writes the glow filter the arcs reference.
func (Midnight) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	buf.WriteString("    <filter id=\"glow\" x=\"-40%\" y=\"-40%\" width=\"180%\" height=\"180%\">\n")
	buf.WriteString("      <feGaussianBlur stdDeviation=\"2.5\" result=\"blur\"/>\n")
	buf.WriteString("      <feMerge><feMergeNode in=\"blur\"/><feMergeNode in=\"SourceGraphic\"/></feMerge>\n")
	buf.WriteString("    </filter>\n")
	buf.WriteString("  </defs>\n")
}

// RenderArc draws a dim track with a glowing progress fill.
func (Midnight) RenderArc(buf *bytes.Buffer, a Arc) {
	if a.Path == "" {
		fmt.Fprintf(buf, "  <path id=\"arc-%s\" class=\"arc\" d=\"%s\" fill=\"none\" stroke=\"#5ad1e6\" stroke-width=\"1.5\" filter=\"url(#glow)\"/>\n",
			EscapeXML(a.ID), a.TickPath)
		return
	}
	fmt.Fprintf(buf, "  <path id=\"arc-%s\" class=\"arc\" d=\"%s\" fill=\"#1d242c\" stroke=\"#2e3842\" stroke-width=\"1\"/>\n",
		EscapeXML(a.ID), a.Path)
	if a.FillPath != "" {
		fmt.Fprintf(buf, "  <path class=\"arc-progress\" d=\"%s\" fill=\"#5ad1e6\" filter=\"url(#glow)\" pointer-events=\"none\"/>\n",
			a.FillPath)
	}
}

func (Midnight) RenderLabel(buf *bytes.Buffer, a Arc) {
	if a.FontSize <= 0 {
		return
	}
	fmt.Fprintf(buf, "  <text class=\"arc-text\" data-arc=\"%s\" x=\"%.2f\" y=\"%.2f\" font-size=\"%.1f\" font-family=\"monospace\" fill=\"#d7e3ec\" text-anchor=\"middle\" dominant-baseline=\"middle\" transform=\"rotate(%.1f %.2f %.2f)\">%s</text>\n",
		EscapeXML(a.ID), a.LX, a.LY, a.FontSize, a.Rotate, a.LX, a.LY, EscapeXML(a.Label))
}

func (Midnight) RenderNeedle(buf *bytes.Buffer, n Needle) {
	if n.X != n.CX || n.Y != n.CY {
		fmt.Fprintf(buf, "  <line class=\"needle\" x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"#ff5d73\" stroke-width=\"2\" filter=\"url(#glow)\"/>\n",
			n.CX, n.CY, n.X, n.Y)
	}
	fmt.Fprintf(buf, "  <circle class=\"hub\" cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\" fill=\"#101418\" stroke=\"#5ad1e6\" stroke-width=\"1\"/>\n",
		n.CX, n.CY, n.Hole)
	fmt.Fprintf(buf, "  <text class=\"hub-text\" x=\"%.2f\" y=\"%.2f\" font-size=\"%.1f\" font-family=\"monospace\" fill=\"#d7e3ec\" text-anchor=\"middle\" dominant-baseline=\"middle\">%s</text>\n",
		n.CX, n.CY, hubFontSize(n), EscapeXML(n.Label))
}

func (Midnight) RenderPopup(buf *bytes.Buffer, a Arc) {
	renderPopupBox(buf, a, "#1d242c", "#5ad1e6", "#d7e3ec")
}
