// Package chart builds radial Gantt charts from named time intervals.
//
// A chart maps every task onto an angular arc: the combined span of all
// tasks (earliest start to latest end) sweeps the full circle, and each
// task's start and end timestamps become start and end angles within that
// sweep. Tasks are then stacked onto concentric rings ("layers") so that no
// two tasks sharing a ring overlap in angle.
//
// # Building
//
// [Build] converts a slice of [Interval] values into a [Chart]:
//
//	c := chart.Build(intervals, chart.Options{
//	    Compress: true,
//	    Now:      time.Now(),
//	})
//
// The chart is a pure value. It is recomputed from scratch on every build;
// nothing is mutated in place between refreshes.
//
// # Layer assignment
//
// With Compress enabled, tasks are packed greedily: each task lands on the
// first existing layer whose members leave its angular range free, and a new
// layer is opened only when none fits. With Compress disabled every task
// gets its own layer in input order.
//
// # Degradation
//
// An empty or unusable input never produces an error. Build returns a chart
// with zero tasks and zero layers, and its progress label reads "no tasks".
package chart
