package cli

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/matzehuels/ganttring/pkg/dataset"
	"github.com/matzehuels/ganttring/pkg/pipeline"
)

func TestRootCommandStructure(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != "ganttring" {
		t.Errorf("Use = %q, want ganttring", root.Use)
	}

	want := []string{"render", "sample", "overlap", "serve", "gallery", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestSetCLIDefaults(t *testing.T) {
	var opts pipeline.Options
	setCLIDefaults(&opts)

	if !opts.Compress {
		t.Error("Compress should default to true")
	}
	if !opts.Needle || !opts.Labels || !opts.Popups {
		t.Error("Needle, Labels, and Popups should default to true")
	}
	if opts.Width != pipeline.DefaultWidth {
		t.Errorf("Width = %v, want %v", opts.Width, pipeline.DefaultWidth)
	}
	if opts.Style != pipeline.DefaultStyle {
		t.Errorf("Style = %q, want %q", opts.Style, pipeline.DefaultStyle)
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.SetLogLevel(LogDebug)

	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}

func TestSampleCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "tasks.json")

	c := New(io.Discard, LogInfo)
	cmd := c.sampleCommand()
	cmd.SetArgs([]string{"-n", "5", "--seed", "7", "-o", out})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("sample command error: %v", err)
	}

	intervals, err := dataset.ReadJSONFile(out)
	if err != nil {
		t.Fatalf("read generated dataset: %v", err)
	}
	if len(intervals) != 5 {
		t.Errorf("got %d tasks, want 5", len(intervals))
	}
}

func TestSampleCommandCSV(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "tasks.csv")

	c := New(io.Discard, LogInfo)
	cmd := c.sampleCommand()
	cmd.SetArgs([]string{"-n", "3", "-f", "csv", "-o", out})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("sample command error: %v", err)
	}

	table, err := dataset.ReadCSVFile(out)
	if err != nil {
		t.Fatalf("read generated dataset: %v", err)
	}
	if got := len(table.Intervals()); got != 3 {
		t.Errorf("got %d tasks, want 3", got)
	}
}

func TestSampleCommandRejectsBadFormat(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := c.sampleCommand()
	cmd.SetArgs([]string{"-f", "xml"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestNewCacheRespectsNoCache(t *testing.T) {
	ch, err := newCache(true)
	if err != nil {
		t.Fatalf("newCache(true) error: %v", err)
	}
	defer ch.Close()

	// A null cache never stores anything
	ctx := context.Background()
	if err := ch.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if _, found, _ := ch.Get(ctx, "k"); found {
		t.Error("null cache should not return stored values")
	}
}

func TestNewRunner(t *testing.T) {
	c := New(io.Discard, LogInfo)

	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	runner, err := c.newRunner(false)
	if err != nil {
		t.Fatalf("newRunner() error: %v", err)
	}
	defer runner.Close()

	if runner.Logger != c.Logger {
		t.Error("runner should use the CLI logger")
	}
}
