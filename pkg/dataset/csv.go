package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// timeFormats are tried in order when parsing timestamp cells.
var timeFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ReadCSV decodes a task table from CSV. The header row assigns roles by
// name (case-insensitive): a "task" column plus "start" and "end" columns.
// Any other columns are ignored. Rows whose timestamps fail to parse are
// skipped silently.
//
// An error is returned only for unreadable input or a missing header; a
// header without the required roles produces an invalid (empty) table.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return Table{}, fmt.Errorf("read header: %w", err)
	}

	taskCol, startCol, endCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case RoleTask:
			taskCol = i
		case RoleStart:
			startCol = i
		case RoleEnd:
			endCol = i
		}
	}
	if taskCol < 0 || startCol < 0 || endCol < 0 {
		return Table{}, nil
	}

	var t Table
	var starts, ends []time.Time
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("read row: %w", err)
		}
		if len(row) <= taskCol || len(row) <= startCol || len(row) <= endCol {
			continue
		}
		start, okS := parseTime(row[startCol])
		end, okE := parseTime(row[endCol])
		if !okS || !okE {
			continue
		}
		t.Categories = append(t.Categories, row[taskCol])
		starts = append(starts, start)
		ends = append(ends, end)
	}

	t.Series = []Series{
		{Role: RoleStart, Values: starts},
		{Role: RoleEnd, Values: ends},
	}
	return t, nil
}

// ReadCSVFile reads a task table from the CSV file at path.
func ReadCSVFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// parseTime accepts the formats in timeFormats plus bare epoch
// milliseconds.
func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeFormats {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	if ms, err := strconv.ParseFloat(s, 64); err == nil {
		return time.UnixMilli(int64(ms)).UTC(), true
	}
	return time.Time{}, false
}
