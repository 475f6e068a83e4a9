package dataset

import (
	"time"

	"github.com/matzehuels/ganttring/pkg/chart"
)

// Column roles recognized in input headers.
const (
	RoleTask  = "task"
	RoleStart = "start"
	RoleEnd   = "end"
)

// Series is one value column: a role name and its timestamps, aligned with
// the table's category column.
type Series struct {
	Role   string
	Values []time.Time
}

// Table is a tabular snapshot of task data: category values plus aligned
// value series. The first series with role "start" and the first with role
// "end" feed the chart; extra series are carried but ignored.
type Table struct {
	Categories []string
	Series     []Series
}

// Valid reports whether the table has enough shape to build a chart: a
// category column and at least a start and an end series.
func (t Table) Valid() bool {
	return len(t.Categories) > 0 && t.series(RoleStart) != nil && t.series(RoleEnd) != nil
}

func (t Table) series(role string) []time.Time {
	for _, s := range t.Series {
		if s.Role == role {
			return s.Values
		}
	}
	return nil
}

// Intervals converts the table into chart intervals. Rows beyond the
// shortest column are dropped, and an invalid table yields nil so the
// resulting chart is simply empty.
func (t Table) Intervals() []chart.Interval {
	if !t.Valid() {
		return nil
	}
	starts, ends := t.series(RoleStart), t.series(RoleEnd)

	n := len(t.Categories)
	if len(starts) < n {
		n = len(starts)
	}
	if len(ends) < n {
		n = len(ends)
	}

	intervals := make([]chart.Interval, 0, n)
	for i := 0; i < n; i++ {
		intervals = append(intervals, chart.Interval{
			Name:  t.Categories[i],
			Start: starts[i],
			End:   ends[i],
		})
	}
	return intervals
}
