package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ganttring/pkg/pipeline"
)

// renderCommand creates the render command for generating chart output.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
		nowStr     string
		useSample  bool
	)
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "render [tasks.csv|tasks.json]",
		Short: "Render a task dataset as a radial Gantt chart",
		Long: `Render a task dataset as a radial Gantt chart.

The render command reads tasks from a CSV or JSON file (or generates a
sample dataset with --sample) and renders them as concentric progress
rings with a needle marking the current time. Output formats are SVG,
PNG, PDF, and JSON.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.Style); err != nil {
				return err
			}

			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			if err := bindInput(&opts, input, useSample); err != nil {
				return err
			}
			if nowStr != "" {
				now, err := parseNow(nowStr)
				if err != nil {
					return err
				}
				opts.Now = now
			}
			return c.runRender(cmd.Context(), input, opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")

	// Input flags
	cmd.Flags().BoolVar(&useSample, "sample", false, "render a generated sample dataset instead of a file")
	cmd.Flags().IntVarP(&opts.SampleCount, "tasks", "n", pipeline.DefaultSampleCount, "number of sample tasks (with --sample)")
	cmd.Flags().Uint64Var(&opts.SampleSeed, "seed", uint64(pipeline.DefaultSeed), "sample generator seed (with --sample)")

	// Build flags
	cmd.Flags().BoolVar(&opts.Compress, "compress", opts.Compress, "pack tasks into shared rings where they do not overlap")
	cmd.Flags().StringVar(&nowStr, "now", "", "reference time for progress (RFC3339 or YYYY-MM-DD, default: current time)")
	cmd.Flags().Float64Var(&opts.Overflow, "overflow", opts.Overflow, "progress clamp limit in percent for overdue tasks")

	// Render flags
	cmd.Flags().StringVar(&opts.Style, "style", opts.Style, "visual style: simple (default), midnight")
	cmd.Flags().StringVar(&opts.Fill, "fill", opts.Fill, "arc fill color for the simple style")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "frame width")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "frame height")
	cmd.Flags().BoolVar(&opts.Popups, "popups", opts.Popups, "show hover popups with task details")
	cmd.Flags().BoolVar(&opts.Labels, "labels", opts.Labels, "draw task names along arcs")
	cmd.Flags().BoolVar(&opts.Needle, "needle", opts.Needle, "draw the progress needle")

	return cmd
}

// bindInput wires the dataset source into opts. Exactly one of the file
// argument or --sample must be given; the file's extension selects the
// reader.
func bindInput(opts *pipeline.Options, input string, useSample bool) error {
	if useSample {
		if input != "" {
			return fmt.Errorf("cannot combine --sample with an input file")
		}
		opts.Sample = true
		return nil
	}
	if input == "" {
		return fmt.Errorf("an input file is required (or use --sample)")
	}
	switch strings.ToLower(filepath.Ext(input)) {
	case ".csv":
		opts.CSVPath = input
	case ".json":
		opts.JSONPath = input
	default:
		return fmt.Errorf("unsupported input %s (must be .csv or .json)", input)
	}
	return nil
}

// parseNow accepts an RFC3339 timestamp or a bare date.
func parseNow(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid --now value %q (want RFC3339 or YYYY-MM-DD)", s)
}

// runRender executes the full pipeline and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering chart...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		cacheHit:  result.CacheInfo.BuildHit && result.CacheInfo.RenderHit,
		taskCount: result.Stats.TaskCount,
		layers:    result.Stats.Layers,
	})
}

// =============================================================================
// Artifact Output
// =============================================================================

// artifactWriteParams bundles everything writeArtifacts needs.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	cacheHit  bool
	taskCount int
	layers    int
}

// writeArtifacts writes each rendered format to disk and prints a summary.
// A single format goes to the output path directly; multiple formats share
// a base path with per-format extensions.
func writeArtifacts(p artifactWriteParams) error {
	base := basePath(p.output, p.input)

	var paths []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}

		path := base + "." + format
		if p.output != "" && len(p.formats) == 1 {
			path = p.output
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	printSuccess("Render complete")
	for _, path := range paths {
		printFile(path)
	}
	printStats(p.taskCount, p.layers, p.cacheHit)
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input; a missing input
// (sample mode) falls back to "chart". If output carries a format extension
// (.svg, .pdf, etc.), that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		if input == "" {
			return "chart"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
