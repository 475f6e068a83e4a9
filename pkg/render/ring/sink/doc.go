// Package sink provides output format renderers for ring visualizations.
//
// A "sink" transforms a computed [layout.Layout] into a final output format:
//
//   - SVG: interactive vector graphics with hover highlight, click
//     selection, and optional popups
//   - JSON: layout and chart data export for external tools
//   - PDF/PNG: print and raster output (requires rsvg-convert)
//
// Basic usage:
//
//	svg := sink.RenderSVG(l,
//	    sink.WithChart(c),
//	    sink.WithStyle(styles.Midnight{}),
//	    sink.WithLabels(),
//	    sink.WithNeedle(),
//	    sink.WithPopups(),
//	)
//
// PDF and PNG conversion requires librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [layout.Layout]: github.com/matzehuels/ganttring/pkg/render/ring/layout.Layout
package sink
