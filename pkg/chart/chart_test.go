package chart

import (
	"math"
	"testing"
	"time"
)

func TestBuild_Empty(t *testing.T) {
	c := Build(nil, Options{Compress: true})

	if !c.Empty() {
		t.Error("Empty() = false, want true")
	}
	if c.Layers != 0 {
		t.Errorf("Layers = %d, want 0", c.Layers)
	}
	if got := c.ProgressLabel(); got != NoTasksLabel {
		t.Errorf("ProgressLabel() = %q, want %q", got, NoTasksLabel)
	}
}

func TestBuild_AnglesSpanFullCircle(t *testing.T) {
	c := Build([]Interval{
		iv("first", 0, 4),
		iv("second", 4, 10),
	}, Options{Compress: true, Now: day(5)})

	first, second := c.Tasks[0], c.Tasks[1]
	if first.StartAngle != 0 {
		t.Errorf("first.StartAngle = %v, want 0", first.StartAngle)
	}
	if want := Radians(40); math.Abs(first.EndAngle-want) > 1e-9 {
		t.Errorf("first.EndAngle = %v, want %v", first.EndAngle, want)
	}
	if math.Abs(second.StartAngle-first.EndAngle) > 1e-9 {
		t.Errorf("second.StartAngle = %v, want %v", second.StartAngle, first.EndAngle)
	}
	if want := 2 * math.Pi; math.Abs(second.EndAngle-want) > 1e-9 {
		t.Errorf("second.EndAngle = %v, want %v", second.EndAngle, want)
	}
}

func TestBuild_StartAngleNeverExceedsEndAngle(t *testing.T) {
	c := Build([]Interval{
		iv("normal", 0, 5),
		iv("point", 3, 3),
		iv("inverted", 8, 2),
		iv("tail", 5, 10),
	}, Options{Compress: true, Now: day(4)})

	for _, task := range c.Tasks {
		if task.StartAngle > task.EndAngle {
			t.Errorf("task %s: StartAngle %v > EndAngle %v", task.Name, task.StartAngle, task.EndAngle)
		}
	}
}

func TestBuild_TaskProgress(t *testing.T) {
	c := Build([]Interval{
		iv("halfway", 0, 10),
		iv("done", 0, 2),
		iv("pending", 8, 10),
		iv("instant", 5, 5),
	}, Options{Compress: true, Now: day(5)})

	wants := []float64{50, 100, 0, 100}
	for i, want := range wants {
		if got := c.Tasks[i].Progress; got != want {
			t.Errorf("task %s progress = %v, want %v", c.Tasks[i].Name, got, want)
		}
	}
}

func TestBuild_ChartProgress(t *testing.T) {
	c := Build([]Interval{
		iv("a", 0, 4),
		iv("b", 2, 10),
	}, Options{Compress: true, Now: day(5)})

	if c.Progress != 50 {
		t.Errorf("Progress = %v, want 50", c.Progress)
	}
	if want := math.Pi; math.Abs(c.ProgressAngle-want) > 1e-9 {
		t.Errorf("ProgressAngle = %v, want %v", c.ProgressAngle, want)
	}
	if got := c.ProgressLabel(); got != "50%" {
		t.Errorf("ProgressLabel() = %q, want \"50%%\"", got)
	}
}

func TestBuild_SingleInstantChart(t *testing.T) {
	// All tasks at the same instant: the chart span is empty.
	c := Build([]Interval{
		iv("blink", 3, 3),
	}, Options{Compress: true, Now: day(3)})

	task := c.Tasks[0]
	if task.StartAngle != 0 {
		t.Errorf("StartAngle = %v, want 0", task.StartAngle)
	}
	if want := 2 * math.Pi; task.EndAngle != want {
		t.Errorf("EndAngle = %v, want %v", task.EndAngle, want)
	}
	if c.Progress != 100 {
		t.Errorf("Progress = %v, want 100", c.Progress)
	}
}

func TestBuild_Span(t *testing.T) {
	c := Build([]Interval{
		iv("b", 2, 10),
		iv("a", 0, 4),
	}, Options{Compress: true, Now: day(5)})

	start, end, ok := c.Span()
	if !ok {
		t.Fatal("Span() ok = false")
	}
	if !start.Equal(day(0)) || !end.Equal(day(10)) {
		t.Errorf("Span() = %v..%v, want %v..%v", start, end, day(0), day(10))
	}
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	in := []Interval{iv("a", 0, 5)}
	before := in[0]
	Build(in, Options{Compress: true, Now: day(1)})
	if in[0] != before {
		t.Error("Build mutated its input slice")
	}
}

func TestBuild_DefaultNow(t *testing.T) {
	// A task ending well in the past must be complete against the
	// implicit time.Now() reference.
	c := Build([]Interval{{
		Name:  "ancient",
		Start: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2000, 2, 1, 0, 0, 0, 0, time.UTC),
	}}, Options{Compress: true})

	if c.Tasks[0].Progress != 100 {
		t.Errorf("progress = %v, want 100", c.Tasks[0].Progress)
	}
}
