// Package pipeline provides the core chart pipeline for Ganttring.
//
// This package implements the complete load → build → render pipeline used
// by the CLI and the gallery API. Centralizing this logic keeps behavior
// consistent across all entry points.
//
// The pipeline consists of three stages:
//
//  1. Load: Read task intervals from CSV, JSON, or the sample generator
//  2. Build: Derive arc angles, compact layers, and compute ring geometry
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    CSVPath:  "tasks.csv",
//	    Compress: true,
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ganttring/pkg/cache"
	"github.com/matzehuels/ganttring/pkg/chart"
	"github.com/matzehuels/ganttring/pkg/errors"
)

const (
	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = 600.0

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = 600.0

	// DefaultSampleCount is the number of tasks the sample generator
	// produces when none is requested.
	DefaultSampleCount = 8

	// DefaultSeed is the default sample generator seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultStyle is the default visual style.
	DefaultStyle = StyleSimple
)

// Visual style names.
const (
	StyleSimple   = "simple"
	StyleMidnight = "midnight"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	StyleSimple:   true,
	StyleMidnight: true,
}

// Options contains all configuration for the chart pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options; exactly one input source must be set.
	CSVPath     string `json:"csv_path,omitempty"`
	JSONPath    string `json:"json_path,omitempty"`
	Sample      bool   `json:"sample,omitempty"`
	SampleCount int    `json:"sample_count,omitempty"`
	SampleSeed  uint64 `json:"sample_seed,omitempty"`

	// Intervals supplies tasks directly, bypassing file loading. Used by
	// the gallery API, where charts arrive as stored documents.
	Intervals []chart.Interval `json:"intervals,omitempty"`

	// Build options
	Compress bool      `json:"compress,omitempty"`
	Now      time.Time `json:"now,omitempty"`
	Overflow float64   `json:"overflow,omitempty"`

	// Layout options
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Margin   float64 `json:"margin,omitempty"`
	Gap      float64 `json:"gap,omitempty"`
	HoleFrac float64 `json:"hole_frac,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Fill    string   `json:"fill,omitempty"`
	Popups  bool     `json:"popups,omitempty"`
	Labels  bool     `json:"labels,omitempty"`
	Needle  bool     `json:"needle,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Chart is the built chart with angles and layer assignments.
	Chart chart.Chart

	// DatasetHash is the content hash of the loaded intervals.
	DatasetHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TaskCount  int
	Layers     int
	LoadTime   time.Duration
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	BuildHit  bool // whether chart and layout came from cache
	RenderHit bool // whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: simple, midnight)", style)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetBuildDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	sources := 0
	// A non-nil empty Intervals slice is a valid source: it renders the
	// empty chart.
	for _, set := range []bool{o.CSVPath != "", o.JSONPath != "", o.Sample, o.Intervals != nil} {
		if set {
			sources++
		}
	}
	if sources == 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"an input is required: csv_path, json_path, sample, or intervals")
	}
	if sources > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "multiple input sources set")
	}

	if o.SampleCount == 0 {
		o.SampleCount = DefaultSampleCount
	}
	if o.SampleSeed == 0 {
		o.SampleSeed = DefaultSeed
	}
	o.applyLoggerDefault()
	return nil
}

// SetBuildDefaults sets default values for chart building and layout.
func (o *Options) SetBuildDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Overflow == 0 {
		o.Overflow = chart.DefaultOverflow
	}
	// Pin the reference instant here rather than at build time. Progress
	// and the needle depend on it, so leaving it zero would let the cache
	// key collapse every "now" onto the same entry.
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	o.applyLoggerDefault()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	o.applyLoggerDefault()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// Source names the configured input for logging and hooks.
func (o *Options) Source() string {
	switch {
	case o.CSVPath != "":
		return "csv"
	case o.JSONPath != "":
		return "json"
	case o.Sample:
		return "sample"
	default:
		return "intervals"
	}
}

// ChartKeyOpts returns cache key options for chart building.
func (o *Options) ChartKeyOpts() cache.ChartKeyOpts {
	return cache.ChartKeyOpts{
		Compress: o.Compress,
		Overflow: o.Overflow,
		Now:      o.Now.UnixMilli(),
		Width:    o.Width,
		Height:   o.Height,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Popups: o.Popups,
		Labels: o.Labels,
		Fill:   o.Fill,
	}
}

func (o *Options) applyLoggerDefault() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
