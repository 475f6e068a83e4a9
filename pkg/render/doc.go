// Package render provides visualization rendering for radial Gantt charts.
//
// # Overview
//
// This package contains the rendering pipeline that transforms built charts
// into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - The ring visualization (in the ring subpackage)
//   - The overlap debug view (in the overlap subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Both the ring and overlap
// renderers go through them.
//
//	svg := sink.RenderSVG(layout, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Ring Visualization
//
// The ring subpackage renders charts as concentric rings, one per layer,
// with each task drawn as an arc segment and a center indicator showing
// overall progress.
//
// Key ring subpackages:
//   - ring/layout: arc position computation
//   - ring/sink: output formats (SVG, PNG, PDF, JSON)
//   - ring/styles: visual styles (simple, midnight)
//
// # Overlap View
//
// The overlap subpackage renders the chart's angular conflict graph with
// Graphviz: tasks appear as boxes, and an edge joins every pair the layer
// compactor had to separate.
//
//	dot := overlap.ToDOT(c, overlap.Options{})
//	svg, err := overlap.RenderSVG(dot)
package render
