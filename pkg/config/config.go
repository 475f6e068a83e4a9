// Package config loads the ganttring configuration file.
//
// The file lives at ~/.config/ganttring/config.toml and carries defaults
// for rendering plus backend settings for the cache, the document store,
// and the gallery server. A missing file yields the built-in defaults;
// CLI flags override whatever the file says.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/ganttring/pkg/errors"
	"github.com/matzehuels/ganttring/pkg/pipeline"
)

// Config is the top-level configuration.
type Config struct {
	Defaults Defaults `toml:"defaults"`
	Cache    Cache    `toml:"cache"`
	Store    Store    `toml:"store"`
	Server   Server   `toml:"server"`
}

// Defaults configures rendering when no flags are given.
type Defaults struct {
	Style    string   `toml:"style"`
	Width    float64  `toml:"width"`
	Height   float64  `toml:"height"`
	Fill     string   `toml:"fill"`
	Formats  []string `toml:"formats"`
	Compress bool     `toml:"compress"`
}

// Cache configures the pipeline cache backend.
type Cache struct {
	// Backend selects the cache: "file" (default), "redis", or "none".
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// Store configures the chart document store.
type Store struct {
	// Backend selects the store: "file" (default) or "mongo".
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`

	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// Server configures the gallery HTTP server.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Defaults: Defaults{
			Style:    pipeline.DefaultStyle,
			Width:    pipeline.DefaultWidth,
			Height:   pipeline.DefaultHeight,
			Formats:  []string{pipeline.FormatSVG},
			Compress: true,
		},
		Cache:  Cache{Backend: "file"},
		Store:  Store{Backend: "file"},
		Server: Server{Addr: ":8080"},
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "get home dir")
	}
	return filepath.Join(home, ".config", "ganttring", "config.toml"), nil
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return cfg, nil
}
