package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ganttring/pkg/dataset"
	"github.com/matzehuels/ganttring/pkg/pipeline"
	"github.com/matzehuels/ganttring/pkg/sample"
)

// sampleCommand creates the sample command for generating task datasets.
func (c *CLI) sampleCommand() *cobra.Command {
	var (
		count    int
		seed     uint64
		output   string
		format   string
		spanDays int
		overlap  float64
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate a synthetic task dataset",
		Long: `Generate a synthetic task dataset.

The sample command produces a reproducible set of project tasks spread
across a time span, written as JSON (default) or CSV. The output file
can be fed straight into 'render'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "csv" {
				return fmt.Errorf("invalid format: %s (must be 'json' or 'csv')", format)
			}
			if count < 0 {
				return fmt.Errorf("invalid task count: %d", count)
			}

			track := newProgress(c.Logger)
			intervals := sample.Generate(count, sample.Options{
				Seed:    seed,
				Span:    time.Duration(spanDays) * 24 * time.Hour,
				Overlap: overlap,
			})
			track.done(fmt.Sprintf("Generated %d tasks", len(intervals)))

			path := output
			if path == "" {
				path = "sample." + format
			}

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create %s: %w", path, err)
			}
			defer f.Close()

			if format == "csv" {
				err = dataset.WriteCSV(intervals, f)
			} else {
				err = dataset.WriteJSON(intervals, f)
			}
			if err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}

			printSuccess("Sample dataset written")
			printFile(path)
			printNewline()
			printNextStep("Render", appName+" render "+path)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "tasks", "n", pipeline.DefaultSampleCount, "number of tasks to generate")
	cmd.Flags().Uint64Var(&seed, "seed", uint64(sample.DefaultSeed), "random seed for reproducible output")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: sample.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json (default), csv")
	cmd.Flags().IntVar(&spanDays, "span", 0, "total span in days (0 uses the generator default)")
	cmd.Flags().Float64Var(&overlap, "overlap", 0, "overlap fraction in [0,1] between consecutive tasks")

	return cmd
}
