package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/ganttring/pkg/chart"
)

// document is the JSON interchange shape for a task list.
type document struct {
	Tasks []chart.Interval `json:"tasks"`
}

// ReadJSON decodes a task list from r. The expected shape is:
//
//	{"tasks": [{"name": "plan", "start": "...", "end": "..."}]}
//
// with RFC3339 timestamps. This format round-trips with [WriteJSON].
func ReadJSON(r io.Reader) ([]chart.Interval, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return doc.Tasks, nil
}

// ReadJSONFile reads a task list from the JSON file at path.
func ReadJSONFile(path string) ([]chart.Interval, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteJSON encodes a task list to w, indented for readability.
func WriteJSON(intervals []chart.Interval, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Tasks: intervals}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteCSV encodes a task list as CSV with the canonical task/start/end
// header, the inverse of [ReadCSV].
func WriteCSV(intervals []chart.Interval, w io.Writer) error {
	if _, err := fmt.Fprintln(w, "task,start,end"); err != nil {
		return err
	}
	for _, iv := range intervals {
		_, err := fmt.Fprintf(w, "%s,%s,%s\n",
			csvEscape(iv.Name),
			iv.Start.UTC().Format(timeFormats[0]),
			iv.End.UTC().Format(timeFormats[0]))
		if err != nil {
			return err
		}
	}
	return nil
}

func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
