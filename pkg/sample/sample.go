// Package sample generates synthetic task data for galleries and demos.
//
// The generator is deterministic for a given seed, so design-time previews
// and tests can rely on stable output. Overlap density is tunable: at 0 the
// tasks form a clean relay (one layer when compacted), at 1 they pile up
// and force the compactor to open extra layers.
package sample

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/matzehuels/ganttring/pkg/chart"
)

// DefaultSeed keeps gallery output reproducible across runs.
const DefaultSeed = uint64(42)

// Options tunes the generator.
type Options struct {
	// Seed for the random source. Zero means DefaultSeed.
	Seed uint64

	// Start anchors the first task. Zero means the start of the current
	// week in UTC.
	Start time.Time

	// Span is the total time range to fill. Zero means 10 days.
	Span time.Duration

	// Overlap in [0, 1] controls how far each task reaches back into its
	// predecessor. Zero produces disjoint tasks.
	Overlap float64
}

var phases = []string{
	"Kickoff", "Research", "Prototype", "Design review", "Implementation",
	"Integration", "Testing", "Documentation", "Beta", "Launch",
	"Retrospective", "Hardening", "Migration", "Training", "Handover",
}

// Generate produces n tasks spread across the configured span. Task names
// cycle through a fixed phase list and are suffixed once the list wraps.
func Generate(n int, opts Options) []chart.Interval {
	if n <= 0 {
		return nil
	}

	seed := opts.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	start := opts.Start
	if start.IsZero() {
		start = weekStart(time.Now().UTC())
	}
	span := opts.Span
	if span == 0 {
		span = 10 * 24 * time.Hour
	}
	overlap := min(max(opts.Overlap, 0), 1)

	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))

	slot := span / time.Duration(n)
	intervals := make([]chart.Interval, 0, n)
	for i := 0; i < n; i++ {
		slotStart := start.Add(time.Duration(i) * slot)

		// Reach back into the previous slot, at least half the
		// configured overlap, then jitter the duration so rings look
		// uneven.
		back := time.Duration(overlap * (0.5 + 0.5*rng.Float64()) * float64(slot))
		if i == 0 {
			back = 0
		}
		length := time.Duration((0.6 + 0.4*rng.Float64()) * float64(slot+back))

		taskStart := slotStart.Add(-back)
		intervals = append(intervals, chart.Interval{
			Name:  phaseName(i),
			Start: taskStart,
			End:   taskStart.Add(length),
		})
	}
	return intervals
}

func phaseName(i int) string {
	name := phases[i%len(phases)]
	if round := i / len(phases); round > 0 {
		return fmt.Sprintf("%s %d", name, round+1)
	}
	return name
}

func weekStart(t time.Time) time.Time {
	t = t.Truncate(24 * time.Hour)
	for t.Weekday() != time.Monday {
		t = t.AddDate(0, 0, -1)
	}
	return t
}
