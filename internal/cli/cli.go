// Package cli implements the signet command-line interface.
//
// This package provides commands for partitioning signed graphs into
// communities, verifying structural balance and homophily, and plotting
// the results. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - analyze: Run the full pipeline (partition, verify, plot, save)
//   - partition: Split a graph into connected components
//   - balance: Verify structural balance
//   - homophily: Compute the edge color agreement ratio
//   - plot: Render a graph visualization
//   - cache: Manage the render artifact cache
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context for structured progress tracking.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kachup1/signet/pkg/buildinfo"
	"github.com/kachup1/signet/pkg/cache"
	"github.com/kachup1/signet/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "signet"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and the on-disk
// configuration (falling back to defaults when no config file exists).
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: LoadConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Signet analyzes signed social graphs",
		Long:         `Signet partitions signed graphs into communities by edge betweenness, verifies structural balance and homophily, and plots the results.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(log.DebugLevel)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.partitionCommand())
	root.AddCommand(c.balanceCommand())
	root.AddCommand(c.homophilyCommand())
	root.AddCommand(c.plotCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(c.newCache(ctx, noCache), c.Logger)
}

// newCache builds the cache backend selected by flags and config.
// Backend failures degrade to a null cache with a warning rather than
// failing the command - caching is an optimization, never a requirement.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}

	if c.Config.Cache.Backend == BackendRedis {
		redisCache, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.Config.Cache.RedisAddr,
			Password: c.Config.Cache.RedisPassword,
			DB:       c.Config.Cache.RedisDB,
		})
		if err == nil {
			return redisCache
		}
		c.Logger.Warn("redis cache unavailable, falling back to file cache", "err", err)
	}

	dir := c.Config.Cache.Dir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return cache.NewNullCache()
		}
	}
	fileCache, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("file cache unavailable, caching disabled", "err", err)
		return cache.NewNullCache()
	}
	return fileCache
}

// cacheDir returns the cache directory using XDG standard (~/.cache/signet/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
