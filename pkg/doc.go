// Package pkg provides the core libraries for Ganttring radial chart rendering.
//
// # Overview
//
// Ganttring turns project task lists into radial Gantt charts: each task
// becomes an arc on a ring, overlapping tasks are pushed onto inner rings,
// and a needle marks the current moment on the dial. The pkg directory is
// organized into five main areas:
//
//  1. [chart] - Domain logic (angle mapping, ring compaction, progress)
//  2. [dataset] - Task input and output (CSV, JSON)
//  3. [render] - Visualization rendering (ring layout, styles, sinks)
//  4. [pipeline] - Orchestration (load → build → layout → render)
//  5. [store]/[cache]/[config] - Persistence and configuration
//
// # Architecture
//
// The typical data flow through Ganttring:
//
//	CSV/JSON dataset (or sample generator)
//	         ↓
//	    [chart] package (angles, layers, progress)
//	         ↓
//	    [render/ring/layout] package (rings, arcs, needle geometry)
//	         ↓
//	    [render/ring/sink] package (SVG, PNG, PDF, JSON output)
//
// # Quick Start
//
// Load a dataset and render a chart:
//
//	import (
//	    "github.com/matzehuels/ganttring/pkg/chart"
//	    "github.com/matzehuels/ganttring/pkg/dataset"
//	    "github.com/matzehuels/ganttring/pkg/render/ring/layout"
//	    "github.com/matzehuels/ganttring/pkg/render/ring/sink"
//	)
//
//	// 1. Load tasks
//	intervals, _ := dataset.ReadJSONFile("tasks.json")
//
//	// 2. Build the chart model
//	c := chart.Build(intervals, chart.Options{Compress: true})
//
//	// 3. Compute the ring layout
//	l := layout.Compute(c, 600, 600, layout.Options{})
//
//	// 4. Render to SVG
//	svg := sink.RenderSVG(l, sink.WithChart(c))
//
// # Main Packages
//
// ## Domain Logic
//
// [chart] - The radial Gantt model. Maps time intervals onto clockwise
// angles, packs non-overlapping tasks into shared rings, and computes
// per-task and overall progress against a reference time.
//
// [dataset] - Reads task tables from CSV (name, start, end columns) and
// JSON documents, and writes both formats back out.
//
// [sample] - Deterministic synthetic dataset generator for demos and tests.
//
// ## Visualization
//
// [render/ring] - Ganttring's signature ring visualization. The rendering
// pipeline: layout → styles → sink.
//
//   - [render/ring/layout]: Compute ring radii, arc paths, and label geometry
//   - [render/ring/styles]: Visual styles (simple, midnight)
//   - [render/ring/sink]: Output formats (SVG, PDF, PNG, JSON)
//
// [render/overlap] - Task conflict graphs rendered with Graphviz.
//
// [render] - Top-level utilities for format conversion (SVG to PDF/PNG).
//
// ## Infrastructure
//
// [pipeline] - Complete chart pipeline (load → build → render) used by the
// CLI and the gallery server. Ensures consistent behavior across entry points.
//
// [cache] - Keyed layout and artifact caching with file, Redis, and null
// backends.
//
// [store] - Chart document storage for the gallery, backed by the local
// filesystem or MongoDB.
//
// [config] - TOML configuration for render defaults and backend selection.
//
// [errors] - Coded errors shared across packages for consistent API mapping.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/chart/...    # Specific package
//
// [chart]: https://pkg.go.dev/github.com/matzehuels/ganttring/pkg/chart
// [dataset]: https://pkg.go.dev/github.com/matzehuels/ganttring/pkg/dataset
// [sample]: https://pkg.go.dev/github.com/matzehuels/ganttring/pkg/sample
// [render]: https://pkg.go.dev/github.com/matzehuels/ganttring/pkg/render
// [render/ring]: https://pkg.go.dev/github.com/matzehuels/ganttring/pkg/render/ring
// [render/ring/layout]: https://pkg.go.dev/github.com/matzehuels/ganttring/pkg/render/ring/layout
// [render/ring/styles]: https://pkg.go.dev/github.com/matzehuels/ganttring/pkg/render/ring/styles
// [render/ring/sink]: https://pkg.go.dev/github.com/matzehuels/ganttring/pkg/render/ring/sink
// [render/overlap]: https://pkg.go.dev/github.com/matzehuels/ganttring/pkg/render/overlap
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/ganttring/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/ganttring/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/ganttring/pkg/store
// [config]: https://pkg.go.dev/github.com/matzehuels/ganttring/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/ganttring/pkg/errors
package pkg
