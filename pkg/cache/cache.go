// Package cache provides layout and artifact caching for the render
// pipeline.
//
// Building a chart is cheap, but rasterizing it (PNG, PDF) shells out to
// librsvg and the gallery server renders the same stored charts repeatedly,
// so computed layouts and rendered artifacts are cached under content-hash
// keys. Three backends exist:
//   - FileCache: on-disk cache for CLI usage
//   - RedisCache: shared cache for server deployments
//   - NullCache: disabled caching
//
// Keys are derived from the dataset content hash plus the option set that
// shaped the output, so any change to tasks or render options misses
// cleanly.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry kind. Layouts derive purely from inputs already in
// the key, so they only expire to bound disk usage.
const (
	DefaultLayoutTTL   = 30 * 24 * time.Hour
	DefaultArtifactTTL = 30 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ChartKeyOpts are the build options that shape a computed layout.
type ChartKeyOpts struct {
	Compress bool
	Overflow float64
	Now      int64 // unix millis; progress depends on the reference instant
	Width    float64
	Height   float64
}

// ArtifactKeyOpts are the render options that shape an output artifact.
type ArtifactKeyOpts struct {
	Format string
	Style  string
	Popups bool
	Labels bool
	Fill   string
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// ChartKey keys a computed layout by dataset hash and build options.
	ChartKey(datasetHash string, opts ChartKeyOpts) string

	// ArtifactKey keys a rendered artifact by layout hash and render options.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ChartKey generates a key for a computed layout.
func (k *DefaultKeyer) ChartKey(datasetHash string, opts ChartKeyOpts) string {
	return hashKey("chart", datasetHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
