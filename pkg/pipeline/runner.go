package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ganttring/pkg/cache"
	"github.com/matzehuels/ganttring/pkg/chart"
	"github.com/matzehuels/ganttring/pkg/errors"
	"github.com/matzehuels/ganttring/pkg/observability"
	"github.com/matzehuels/ganttring/pkg/render/ring/layout"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// cachedBuild is the serialized chart+layout pair stored under a chart key.
type cachedBuild struct {
	Chart  chart.Chart   `json:"chart"`
	Layout layout.Layout `json:"layout"`
}

// Execute runs the complete load → build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.Source())
	intervals, err := Load(ctx, opts)
	result.Stats.LoadTime = time.Since(loadStart)
	observability.Pipeline().OnLoadComplete(ctx, opts.Source(), len(intervals), result.Stats.LoadTime, err)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "load")
	}
	result.Stats.TaskCount = len(intervals)
	result.DatasetHash = hashIntervals(intervals)

	r.Logger.Info("loaded tasks",
		"source", opts.Source(),
		"tasks", len(intervals),
		"duration", result.Stats.LoadTime)

	// Stage 2: Build chart and layout
	buildStart := time.Now()
	observability.Pipeline().OnBuildStart(ctx, len(intervals))
	c, l, buildHit := r.buildWithCache(ctx, intervals, result.DatasetHash, opts)
	result.Chart = c
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.Layers = c.Layers
	result.CacheInfo.BuildHit = buildHit
	observability.Pipeline().OnBuildComplete(ctx, c.Layers, result.Stats.BuildTime, nil)

	r.Logger.Info("built chart",
		"tasks", len(c.Tasks),
		"layers", c.Layers,
		"cached", buildHit,
		"duration", result.Stats.BuildTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, c, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "render")
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// buildWithCache derives the chart and layout, consulting the cache first.
// Build never fails, so a broken cache entry just falls back to recompute.
func (r *Runner) buildWithCache(ctx context.Context, intervals []chart.Interval, datasetHash string, opts Options) (chart.Chart, layout.Layout, bool) {
	opts.SetBuildDefaults()
	cacheKey := r.Keyer.ChartKey(datasetHash, opts.ChartKeyOpts())

	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		var cached cachedBuild
		if err := json.Unmarshal(data, &cached); err == nil {
			observability.Cache().OnCacheHit(ctx, "chart")
			return cached.Chart, cached.Layout, true
		}
	}
	observability.Cache().OnCacheMiss(ctx, "chart")

	c := BuildChart(intervals, opts)
	l := ComputeLayout(c, opts)

	if data, err := json.Marshal(cachedBuild{Chart: c, Layout: l}); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.DefaultLayoutTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "chart", len(data))
		}
	}
	return c, l, false
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l layout.Layout, c chart.Chart, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	layoutData, err := json.Marshal(l)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize layout for cache key")
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache.
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		} else {
			observability.Cache().OnCacheMiss(ctx, "artifact")
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil
	}

	rendered, err := RenderFromLayout(l, c, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.DefaultArtifactTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l layout.Layout, c chart.Chart, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, c, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func hashIntervals(intervals []chart.Interval) string {
	data, err := json.Marshal(intervals)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}
