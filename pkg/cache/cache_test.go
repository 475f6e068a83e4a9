package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/ganttring/pkg/errors"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "chart:abc")
	if err != nil || hit {
		t.Fatalf("Get before Set: hit=%v err=%v, want miss", hit, err)
	}

	// Set then hit
	if err := c.Set(ctx, "chart:abc", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "chart:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit || string(data) != "<svg/>" {
		t.Errorf("Get = %q hit=%v, want stored value", data, hit)
	}

	// Delete then miss
	if err := c.Delete(ctx, "chart:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "chart:abc")
	if hit {
		t.Error("Get after Delete should miss")
	}

	// Deleting a missing key is fine
	if err := c.Delete(ctx, "never-set"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expired entry should miss")
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestKeyerDistinguishesOptions(t *testing.T) {
	k := NewDefaultKeyer()

	a := k.ChartKey("hash1", ChartKeyOpts{Compress: true, Width: 600, Height: 600})
	b := k.ChartKey("hash1", ChartKeyOpts{Compress: false, Width: 600, Height: 600})
	if a == b {
		t.Error("ChartKey should vary with options")
	}
	if !strings.HasPrefix(a, "chart:") {
		t.Errorf("ChartKey = %q, want chart: prefix", a)
	}

	s := k.ArtifactKey("hash1", ArtifactKeyOpts{Format: "svg", Style: "simple"})
	p := k.ArtifactKey("hash1", ArtifactKeyOpts{Format: "png", Style: "simple"})
	if s == p {
		t.Error("ArtifactKey should vary with format")
	}
}

func TestScopedKeyer(t *testing.T) {
	k := NewScopedKeyer(NewDefaultKeyer(), "gallery:")

	key := k.ChartKey("hash1", ChartKeyOpts{})
	if !strings.HasPrefix(key, "gallery:chart:") {
		t.Errorf("scoped key = %q, want gallery: prefix", key)
	}

	// nil inner falls back to the default keyer
	fallback := NewScopedKeyer(nil, "x:")
	if got := fallback.ArtifactKey("h", ArtifactKeyOpts{}); !strings.HasPrefix(got, "x:artifact:") {
		t.Errorf("fallback key = %q, want x:artifact: prefix", got)
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// Port 1 is never a redis server, so the connect ping fails fast.
	_, err := NewRedisCache(ctx, RedisConfig{Addr: "127.0.0.1:1"})
	if err == nil {
		t.Fatal("expected connection error")
	}
	if !errors.Is(err, errors.ErrCodeCache) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeCache)
	}
}
