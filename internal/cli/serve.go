package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ganttring/internal/api"
	"github.com/matzehuels/ganttring/pkg/cache"
	"github.com/matzehuels/ganttring/pkg/config"
	"github.com/matzehuels/ganttring/pkg/pipeline"
	"github.com/matzehuels/ganttring/pkg/store"
)

// serveCommand creates the serve command for running the gallery server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the chart gallery HTTP server",
		Long: `Run the chart gallery HTTP server.

The server stores chart definitions and renders them on demand. Storage
and cache backends are selected in the config file: charts live on disk
or in MongoDB, render results on disk or in Redis.

The default config path is ~/.config/ganttring/config.toml; a missing
file falls back to built-in defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), configPath, addr)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file path (default: ~/.config/ganttring/config.toml)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

// runServe loads the config, opens the backends, and serves until the
// context is cancelled.
func (c *CLI) runServe(ctx context.Context, configPath, addr string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close(context.Background())

	ch, err := openCache(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}

	runner := pipeline.NewRunner(ch, nil, c.Logger)
	defer runner.Close()

	srv := api.NewServer(st, runner, c.Logger)

	printInfo("Gallery server listening")
	printKeyValue("address", addr)
	printKeyValue("store", storeBackend(cfg))
	printKeyValue("cache", cacheBackend(cfg))

	return srv.ListenAndServe(ctx, addr)
}

// =============================================================================
// Backend Construction
// =============================================================================

// openStore builds the document store named by the config.
func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case "", "file":
		return store.NewFileStore(cfg.Store.Dir)
	case "mongo":
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:        cfg.Store.MongoURI,
			Database:   cfg.Store.MongoDatabase,
			Collection: cfg.Store.MongoCollection,
		})
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
}

// openCache builds the render cache named by the config.
func openCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case "", "file":
		dir := cfg.Cache.Dir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
	case "none":
		return cache.NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Cache.Backend)
	}
}

func storeBackend(cfg config.Config) string {
	if cfg.Store.Backend == "" {
		return "file"
	}
	return cfg.Store.Backend
}

func cacheBackend(cfg config.Config) string {
	if cfg.Cache.Backend == "" {
		return "file"
	}
	return cfg.Cache.Backend
}
