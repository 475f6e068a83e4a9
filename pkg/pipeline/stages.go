package pipeline

import (
	"context"
	"slices"

	"github.com/matzehuels/ganttring/pkg/chart"
	"github.com/matzehuels/ganttring/pkg/dataset"
	"github.com/matzehuels/ganttring/pkg/errors"
	"github.com/matzehuels/ganttring/pkg/render/ring/layout"
	"github.com/matzehuels/ganttring/pkg/render/ring/sink"
	"github.com/matzehuels/ganttring/pkg/render/ring/styles"
	"github.com/matzehuels/ganttring/pkg/sample"
)

// Load reads task intervals from the configured source.
func Load(ctx context.Context, opts Options) ([]chart.Interval, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch {
	case opts.CSVPath != "":
		table, err := dataset.ReadCSVFile(opts.CSVPath)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "read csv %s", opts.CSVPath)
		}
		// A table without the role columns degrades to an empty chart
		// rather than an error.
		return table.Intervals(), nil

	case opts.JSONPath != "":
		intervals, err := dataset.ReadJSONFile(opts.JSONPath)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "read json %s", opts.JSONPath)
		}
		return intervals, nil

	case opts.Sample:
		return sample.Generate(opts.SampleCount, sample.Options{Seed: opts.SampleSeed}), nil

	default:
		return slices.Clone(opts.Intervals), nil
	}
}

// BuildChart derives a chart from intervals using the build options.
func BuildChart(intervals []chart.Interval, opts Options) chart.Chart {
	return chart.Build(intervals, chart.Options{
		Compress: opts.Compress,
		Now:      opts.Now,
		Overflow: opts.Overflow,
	})
}

// ComputeLayout positions the chart in the configured viewport.
func ComputeLayout(c chart.Chart, opts Options) layout.Layout {
	opts.SetBuildDefaults()
	return layout.Compute(c, opts.Width, opts.Height, layout.Options{
		Margin:   opts.Margin,
		Gap:      opts.Gap,
		HoleFrac: opts.HoleFrac,
	})
}

// RenderFromLayout renders the requested formats from an existing layout.
func RenderFromLayout(l layout.Layout, c chart.Chart, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	svgOpts := buildSVGOptions(c, opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[format] = sink.RenderSVG(l, svgOpts...)

		case FormatJSON:
			jsonOpts := []sink.JSONOption{
				sink.WithJSONChart(c),
				sink.WithJSONStyle(opts.Style),
			}
			if opts.Sample {
				jsonOpts = append(jsonOpts, sink.WithJSONSeed(opts.SampleSeed))
			}
			data, err := sink.RenderJSON(l, jsonOpts...)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "render json")
			}
			artifacts[format] = data

		case FormatPNG:
			data, err := sink.RenderPNG(l, sink.WithPNGSVGOptions(svgOpts...))
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "render png")
			}
			artifacts[format] = data

		case FormatPDF:
			data, err := sink.RenderPDF(l, sink.WithPDFSVGOptions(svgOpts...))
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "render pdf")
			}
			artifacts[format] = data
		}
	}
	return artifacts, nil
}

func buildSVGOptions(c chart.Chart, opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{
		sink.WithChart(c),
		sink.WithStyle(styleFor(opts)),
	}
	if opts.Popups {
		svgOpts = append(svgOpts, sink.WithPopups())
	}
	if opts.Labels {
		svgOpts = append(svgOpts, sink.WithLabels())
	}
	if opts.Needle {
		svgOpts = append(svgOpts, sink.WithNeedle())
	}
	return svgOpts
}

func styleFor(opts Options) styles.Style {
	if opts.Style == StyleMidnight {
		return styles.Midnight{}
	}
	return styles.Simple{Fill: opts.Fill}
}
