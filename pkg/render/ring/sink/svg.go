package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/ganttring/pkg/chart"
	"github.com/matzehuels/ganttring/pkg/render/ring/layout"
	"github.com/matzehuels/ganttring/pkg/render/ring/styles"
)

const arcInteractionCSS = `
    .arc { transition: stroke-width 0.2s ease, opacity 0.2s ease; cursor: pointer; }
    .arc.highlight { stroke-width: 3; }
    .arc-text { transition: transform 0.2s ease; transform-origin: center; transform-box: fill-box; pointer-events: none; }
    .arc-text.highlight { transform: scale(1.08); font-weight: bold; }
    svg.has-selection .arc:not(.selected) { opacity: 0.25; }
    svg.has-selection .arc-text:not(.selected) { opacity: 0.25; }
    .arc.selected { stroke-width: 3; }`

const arcInteractionJS = `
    const root = document.querySelector('svg');
    function highlight(ids) {
      document.querySelectorAll('.arc').forEach(a => a.classList.toggle('highlight', ids.includes(a.id.replace('arc-', ''))));
      document.querySelectorAll('.arc-text').forEach(t => t.classList.toggle('highlight', ids.includes(t.dataset.arc)));
    }
    function clearHighlight() {
      document.querySelectorAll('.arc, .arc-text').forEach(el => el.classList.remove('highlight'));
    }
    document.querySelectorAll('.arc').forEach(el => {
      const id = el.id.replace('arc-', '');
      el.addEventListener('mouseenter', () => highlight([id]));
      el.addEventListener('mouseleave', clearHighlight);
      el.addEventListener('click', () => {
        const wasSelected = el.classList.contains('selected');
        document.querySelectorAll('.arc, .arc-text').forEach(x => x.classList.remove('selected'));
        if (!wasSelected) {
          el.classList.add('selected');
          const text = document.querySelector('.arc-text[data-arc="' + id + '"]');
          if (text) text.classList.add('selected');
        }
        root.classList.toggle('has-selection', !wasSelected);
      });
    });`

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	chart  *chart.Chart
	style  styles.Style
	popups bool
	labels bool
	needle bool
}

// WithChart attaches the chart the layout was computed from, enriching
// popups with span-relative data.
func WithChart(c chart.Chart) SVGOption { return func(r *svgRenderer) { r.chart = &c } }

// WithStyle sets the visual style (default [styles.Simple]).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithPopups enables hover popups with task details.
func WithPopups() SVGOption { return func(r *svgRenderer) { r.popups = true } }

// WithLabels draws task names along arcs that have room for them.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithNeedle draws the overall progress indicator in the center hole.
func WithNeedle() SVGOption { return func(r *svgRenderer) { r.needle = true } }

// RenderSVG renders the layout as an interactive SVG document.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	arcs := buildArcs(l, &r)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.FrameWidth, l.FrameHeight, l.FrameWidth, l.FrameHeight)

	r.style.RenderDefs(&buf)
	if bg, ok := r.style.(interface{ Background() string }); ok {
		fmt.Fprintf(&buf, "  <rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", bg.Background())
	}

	for _, a := range arcs {
		r.style.RenderArc(&buf, a)
	}
	if r.labels {
		for _, a := range arcs {
			r.style.RenderLabel(&buf, a)
		}
	}
	if r.needle {
		r.style.RenderNeedle(&buf, buildNeedle(l))
	}

	renderArcInteraction(&buf)

	if r.popups {
		for _, a := range arcs {
			r.style.RenderPopup(&buf, a)
		}
		RenderPopupScript(&buf)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func renderArcInteraction(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", arcInteractionCSS)
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", arcInteractionJS)
}

func buildArcs(l layout.Layout, r *svgRenderer) []styles.Arc {
	arcs := make([]styles.Arc, 0, len(l.Arcs))
	for _, a := range l.Arcs {
		sa := styles.Arc{
			ID:       fmt.Sprintf("t%d", a.Index),
			Label:    a.Name,
			Progress: a.Progress,
		}

		if a.IsPoint() {
			sa.TickPath = layout.TickPath(l.CX, l.CY, a.InnerR, a.OuterR, a.StartAngle)
		} else {
			sa.Path = layout.ArcPath(l.CX, l.CY, a.InnerR, a.OuterR, a.StartAngle, a.EndAngle)
			if a.Progress > 0 {
				fillEnd := a.StartAngle + a.Sweep()*math.Min(a.Progress, 100)/100
				sa.FillPath = layout.ArcPath(l.CX, l.CY, a.InnerR, a.OuterR, a.StartAngle, fillEnd)
			}
		}

		if r.labels && !a.IsPoint() {
			arcLen := a.MidRadius() * a.Sweep()
			if styles.FitsLabel(arcLen, a.Thickness(), len(a.Name)) {
				sa.FontSize = styles.FontSize(arcLen, a.Thickness(), len(a.Name))
				sa.Label = styles.TruncateLabel(a.Name, arcLen, sa.FontSize)
				sa.LX, sa.LY = layout.Point(l.CX, l.CY, a.MidRadius(), a.MidAngle())
				sa.Rotate = labelRotation(a.MidAngle())
			}
		}

		if r.popups {
			sa.Popup = buildPopup(a, r.chart)
		}

		arcs = append(arcs, sa)
	}
	return arcs
}

// labelRotation aligns text with the arc tangent, flipped on the lower half
// of the circle so labels stay upright.
func labelRotation(angle float64) float64 {
	deg := angle * 180 / math.Pi
	if deg > 90 && deg < 270 {
		deg -= 180
	}
	return deg
}

func buildNeedle(l layout.Layout) styles.Needle {
	n := styles.Needle{CX: l.CX, CY: l.CY, X: l.CX, Y: l.CY, Hole: l.Hole, Label: l.Label}
	if len(l.Rings) > 0 {
		n.X, n.Y = layout.Point(l.CX, l.CY, l.Rings[0].OuterR, l.NeedleAngle)
	}
	return n
}

func buildPopup(a layout.Arc, c *chart.Chart) *styles.PopupData {
	const dateFormat = "2006-01-02"

	rows := []styles.PopupRow{
		{Label: "Task", Value: a.Name},
		{Label: "Start", Value: a.Start.Format(dateFormat)},
		{Label: "End", Value: a.End.Format(dateFormat)},
		{Label: "Progress", Value: fmt.Sprintf("%.0f%%", a.Progress)},
	}

	if c != nil {
		if start, end, ok := c.Span(); ok && end.After(start) {
			share := float64(a.End.Sub(a.Start)) / float64(end.Sub(start)) * 100
			rows = append(rows, styles.PopupRow{Label: "Share", Value: fmt.Sprintf("%.0f%%", share)})
		}
	}

	return &styles.PopupData{Rows: rows}
}
