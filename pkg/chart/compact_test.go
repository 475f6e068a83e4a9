package chart

import (
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func iv(name string, start, end int) Interval {
	return Interval{Name: name, Start: day(start), End: day(end)}
}

func TestCompact_DisjointTasksShareOneLayer(t *testing.T) {
	c := Build([]Interval{
		iv("plan", 0, 3),
		iv("build", 3, 7),
		iv("ship", 7, 10),
	}, Options{Compress: true, Now: day(5)})

	if c.Layers != 1 {
		t.Errorf("Layers = %d, want 1", c.Layers)
	}
	for _, task := range c.Tasks {
		if task.Layer != 0 {
			t.Errorf("task %s on layer %d, want 0", task.Name, task.Layer)
		}
	}
}

func TestCompact_OverlapOpensSecondLayer(t *testing.T) {
	c := Build([]Interval{
		iv("plan", 0, 3),
		iv("build", 2, 7),
		iv("ship", 7, 10),
	}, Options{Compress: true, Now: day(5)})

	if c.Layers != 2 {
		t.Errorf("Layers = %d, want 2", c.Layers)
	}
	if got := c.Tasks[0].Layer; got != 0 {
		t.Errorf("plan layer = %d, want 0", got)
	}
	if got := c.Tasks[1].Layer; got != 1 {
		t.Errorf("build layer = %d, want 1", got)
	}
	// ship fits back onto the first layer.
	if got := c.Tasks[2].Layer; got != 0 {
		t.Errorf("ship layer = %d, want 0", got)
	}
}

func TestCompact_NoSameLayerOverlap(t *testing.T) {
	intervals := []Interval{
		iv("a", 0, 6),
		iv("b", 1, 3),
		iv("c", 2, 8),
		iv("d", 5, 9),
		iv("e", 8, 10),
		iv("f", 0, 10),
		iv("g", 4, 4),
	}
	c := Build(intervals, Options{Compress: true, Now: day(5)})

	for i, a := range c.Tasks {
		for _, b := range c.Tasks[i+1:] {
			if a.Layer != b.Layer {
				continue
			}
			if a.StartAngle >= b.EndAngle || a.EndAngle <= b.StartAngle {
				continue
			}
			t.Errorf("tasks %s and %s overlap on layer %d", a.Name, b.Name, a.Layer)
		}
	}
}

func TestCompact_LayersAreContiguous(t *testing.T) {
	c := Build([]Interval{
		iv("a", 0, 10),
		iv("b", 0, 10),
		iv("c", 0, 10),
	}, Options{Compress: true, Now: day(5)})

	if c.Layers != 3 {
		t.Fatalf("Layers = %d, want 3", c.Layers)
	}
	seen := make(map[int]bool)
	for _, task := range c.Tasks {
		seen[task.Layer] = true
	}
	for l := 0; l < c.Layers; l++ {
		if !seen[l] {
			t.Errorf("layer %d has no tasks", l)
		}
	}
}

func TestBuild_NoCompressOneLayerPerTask(t *testing.T) {
	c := Build([]Interval{
		iv("a", 0, 3),
		iv("b", 3, 7),
		iv("c", 7, 10),
	}, Options{Compress: false, Now: day(5)})

	if c.Layers != len(c.Tasks) {
		t.Errorf("Layers = %d, want %d", c.Layers, len(c.Tasks))
	}
	for i, task := range c.Tasks {
		if task.Layer != i {
			t.Errorf("task %d on layer %d, want %d", i, task.Layer, i)
		}
	}
}

func TestConflicts(t *testing.T) {
	c := Build([]Interval{
		iv("a", 0, 5),
		iv("b", 4, 8),
		iv("c", 8, 10),
	}, Options{Compress: true, Now: day(5)})

	pairs := Conflicts(c.Tasks)
	if len(pairs) != 1 {
		t.Fatalf("Conflicts() = %v, want one pair", pairs)
	}
	if pairs[0] != [2]int{0, 1} {
		t.Errorf("Conflicts() = %v, want [[0 1]]", pairs)
	}
}
