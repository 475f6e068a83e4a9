package chart

import (
	"math"
	"time"
)

// DefaultOverflow is the progress value reported for empty spans. A task
// (or chart) whose duration is zero or negative has no meaningful elapsed
// fraction, so its progress jumps straight to this value.
const DefaultOverflow = 100.0

// NoTasksLabel is shown in the chart center when there is nothing to draw.
const NoTasksLabel = "no tasks"

// Interval is a named time range as it arrives from a dataset.
type Interval struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns the interval length. Inverted intervals yield a negative
// duration; Build tolerates them and collapses the arc to a point.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Task is an interval with its derived chart attributes.
type Task struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	// Progress is the elapsed percentage of the task at build time,
	// clamped to [0, overflow].
	Progress float64 `json:"progress"`

	// Layer is the ring index the task was assigned to. Indices are
	// contiguous starting at zero, layer 0 being the outermost ring.
	Layer int `json:"layer"`

	// StartAngle and EndAngle are radians in [0, 2π], measured clockwise
	// from the top of the circle. StartAngle <= EndAngle always holds.
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
}

// Chart is the fully derived radial Gantt model.
type Chart struct {
	Tasks []Task `json:"tasks"`

	// Layers is the number of rings (max layer index + 1).
	Layers int `json:"layers"`

	// Progress is the overall elapsed percentage across the chart span.
	Progress float64 `json:"progress"`

	// ProgressAngle is Progress mapped onto the circle, in radians.
	ProgressAngle float64 `json:"progress_angle"`

	// Compress records which layer policy produced the assignment.
	Compress bool `json:"compress"`
}

// Options controls chart derivation.
type Options struct {
	// Compress packs tasks into the minimum greedy layer count. When
	// false every task occupies its own layer.
	Compress bool

	// Now is the reference instant for progress computation. The zero
	// value means time.Now().
	Now time.Time

	// Overflow is the progress reported for zero-length spans. Zero
	// means DefaultOverflow.
	Overflow float64
}

// Empty reports whether the chart has no tasks.
func (c *Chart) Empty() bool { return len(c.Tasks) == 0 }

// ProgressLabel is the text for the chart's center indicator.
func (c *Chart) ProgressLabel() string {
	if c.Empty() {
		return NoTasksLabel
	}
	return formatPercent(c.Progress)
}

// Span returns the overall time range covered by the tasks: the minimum
// start to the maximum end. ok is false for an empty chart.
func (c *Chart) Span() (start, end time.Time, ok bool) {
	return span(taskIntervals(c.Tasks))
}

// Build derives a Chart from intervals. Tasks keep their input order; none
// of the inputs are mutated. A nil or empty slice yields an empty chart.
func Build(intervals []Interval, opts Options) Chart {
	c := Chart{Compress: opts.Compress}
	if len(intervals) == 0 {
		return c
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	overflow := opts.Overflow
	if overflow == 0 {
		overflow = DefaultOverflow
	}

	start, end, _ := span(intervals)
	total := millis(end.Sub(start))

	c.Tasks = make([]Task, len(intervals))
	for i, iv := range intervals {
		t := Task{Name: iv.Name, Start: iv.Start, End: iv.End}
		t.StartAngle = StartAngle(millis(iv.Start.Sub(start)), total)
		t.EndAngle = Angle(millis(iv.End.Sub(start)), total)
		if t.EndAngle < t.StartAngle {
			// Inverted interval: collapse to a point at its start.
			t.EndAngle = t.StartAngle
		}
		t.Progress = Progress(millis(now.Sub(iv.Start)), millis(iv.Duration()), overflow)
		c.Tasks[i] = t
	}

	if opts.Compress {
		c.Layers = Compact(c.Tasks)
	} else {
		for i := range c.Tasks {
			c.Tasks[i].Layer = i
		}
		c.Layers = len(c.Tasks)
	}

	c.Progress = Progress(millis(now.Sub(start)), total, overflow)
	c.ProgressAngle = Radians(math.Min(c.Progress, 100))
	return c
}

// span returns the min start and max end across intervals.
func span(intervals []Interval) (start, end time.Time, ok bool) {
	if len(intervals) == 0 {
		return time.Time{}, time.Time{}, false
	}
	start, end = intervals[0].Start, intervals[0].End
	for _, iv := range intervals[1:] {
		if iv.Start.Before(start) {
			start = iv.Start
		}
		if iv.End.After(end) {
			end = iv.End
		}
	}
	return start, end, true
}

func taskIntervals(tasks []Task) []Interval {
	ivs := make([]Interval, len(tasks))
	for i, t := range tasks {
		ivs[i] = Interval{Name: t.Name, Start: t.Start, End: t.End}
	}
	return ivs
}

// millis converts a duration to fractional milliseconds, the unit all angle
// and progress arithmetic runs in.
func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
