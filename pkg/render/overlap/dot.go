// Package overlap renders the task conflict graph as a node-link diagram.
//
// Two tasks are connected when their arcs overlap in angle, which is
// exactly when the compactor must place them on different rings. The
// diagram is a debugging aid for understanding why a chart needs the
// number of layers it has.
package overlap

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/ganttring/pkg/chart"
	"github.com/matzehuels/ganttring/pkg/render"
)

// Options configures conflict graph rendering.
type Options struct {
	// Detailed includes layer assignment and time range in node labels.
	// When false, only the task name is shown.
	Detailed bool
}

// ToDOT converts a chart's conflict graph to Graphviz DOT format. The
// resulting DOT string can be rendered using [RenderSVG], [RenderPDF],
// or [RenderPNG].
func ToDOT(c chart.Chart, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("\n")

	for i, t := range c.Tasks {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", nodeID(i), fmtLabel(t, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, pair := range chart.Conflicts(c.Tasks) {
		fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(pair[0]), nodeID(pair[1]))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string { return fmt.Sprintf("t%d", i) }

func fmtLabel(t chart.Task, detailed bool) string {
	if !detailed {
		return t.Name
	}
	return fmt.Sprintf("%s\nlayer: %d\n%s .. %s",
		t.Name, t.Layer, t.Start.Format("2006-01-02"), t.End.Format("2006-01-02"))
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
