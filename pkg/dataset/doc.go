// Package dataset loads tabular task data for chart building.
//
// A [Table] is the shape charts are built from: one category column naming
// the tasks and two aligned value series carrying their start and end
// timestamps. CSV and JSON readers produce Tables; [Table.Intervals]
// converts one into the interval slice chart.Build consumes.
//
// Malformed input degrades rather than fails: a table missing its category
// column or carrying fewer than two value series yields zero intervals, and
// rows with unparseable timestamps are skipped. The caller gets a blank
// chart, never an error, for data-shape problems. Errors are reserved for
// I/O failures.
package dataset
