package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ganttring/pkg/pipeline"
	"github.com/matzehuels/ganttring/pkg/render/overlap"
)

// overlapCommand creates the overlap command for rendering conflict graphs.
func (c *CLI) overlapCommand() *cobra.Command {
	var (
		format    string
		output    string
		detailed  bool
		useSample bool
	)
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "overlap [tasks.csv|tasks.json]",
		Short: "Render the task overlap graph",
		Long: `Render the task overlap graph.

Two tasks conflict when their time ranges overlap, forcing them onto
separate rings. The overlap command draws that conflict graph with
Graphviz, which is useful for understanding why a chart needs the
number of rings it has.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validOverlapFormats[format] {
				return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', 'png', or 'pdf')", format)
			}
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			if err := bindInput(&opts, input, useSample); err != nil {
				return err
			}
			return c.runOverlap(cmd.Context(), input, opts, format, output, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg (default), dot, png, pdf")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include ring index and time range in node labels")
	cmd.Flags().BoolVar(&useSample, "sample", false, "use a generated sample dataset instead of a file")
	cmd.Flags().IntVarP(&opts.SampleCount, "tasks", "n", pipeline.DefaultSampleCount, "number of sample tasks (with --sample)")
	cmd.Flags().Uint64Var(&opts.SampleSeed, "seed", uint64(pipeline.DefaultSeed), "sample generator seed (with --sample)")
	cmd.Flags().BoolVar(&opts.Compress, "compress", opts.Compress, "pack tasks into shared rings before computing conflicts")

	return cmd
}

// validOverlapFormats is the set of supported overlap output formats.
var validOverlapFormats = map[string]bool{"dot": true, "svg": true, "png": true, "pdf": true}

// runOverlap loads the dataset, builds the chart, and renders its conflict graph.
func (c *CLI) runOverlap(ctx context.Context, input string, opts pipeline.Options, format, output string, detailed bool) error {
	logger := loggerFromContext(ctx)

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	intervals, err := pipeline.Load(ctx, opts)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	logger.Debugf("Loaded %d tasks", len(intervals))

	track := newProgress(logger)
	chrt := pipeline.BuildChart(intervals, opts)
	dot := overlap.ToDOT(chrt, overlap.Options{Detailed: detailed})

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = overlap.RenderSVG(dot)
	case "png":
		data, err = overlap.RenderPNG(dot, 2.0)
	case "pdf":
		data, err = overlap.RenderPDF(dot)
	}
	if err != nil {
		return fmt.Errorf("render overlap graph: %w", err)
	}
	track.done(fmt.Sprintf("Rendered overlap graph for %d tasks", len(chrt.Tasks)))

	path := output
	if path == "" {
		path = basePath("", input) + "_overlap." + format
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Overlap graph complete")
	printFile(path)
	printStats(len(chrt.Tasks), chrt.Layers, false)
	return nil
}
