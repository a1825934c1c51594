// Package cli implements the tripgraph command-line interface.
//
// This package provides commands for planning routes over a road map file,
// listing reachable locations and managing the report cache. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - route: Print turn-by-turn directions through a list of stops
//   - reach: List the locations reachable from a stop
//   - cache: Manage the report cache
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Configuration
//
// Defaults for the map file and caching can be set in a TOML file, see
// [Config]. Flags always win over the file.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tripgraph/pkg/buildinfo"
	"github.com/matzehuels/tripgraph/pkg/cache"
	"github.com/matzehuels/tripgraph/pkg/observability"
	"github.com/matzehuels/tripgraph/pkg/trip"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "tripgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "tripgraph plans driving routes over a road map",
		Long:          `tripgraph reads a map of locations and roads and prints the shortest route through a list of stops as turn-by-turn directions.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg

			hooks := &logHooks{logger: c.Logger}
			observability.SetPlannerHooks(hooks)
			observability.SetCacheHooks(hooks)

			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tripgraph/config.toml)")

	root.AddCommand(c.routeCommand())
	root.AddCommand(c.reachCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a trip runner for CLI use. Keys are scoped by build
// version so reports rendered by another release are never reused.
func (c *CLI) newRunner(noCache bool) (*trip.Runner, error) {
	store, err := newCache(noCache || c.Config.NoCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
	r := trip.NewRunner(cache.Instrument(store), keyer, c.Logger)
	r.TTL = time.Duration(c.Config.CacheTTL)
	return r, nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// loadMap reads the map named by flag, falling back to the configured one.
func (c *CLI) loadMap(ctx context.Context, flag string) (*trip.RoadMap, error) {
	path := flag
	if path == "" {
		path = c.Config.Map
	}
	if path == "" {
		return nil, errNoMap
	}

	prog := newProgress(loggerFromContext(ctx))
	m, err := trip.ReadMapFile(ctx, path)
	if err != nil {
		return nil, err
	}
	prog.done("Loaded " + filepath.Base(path))
	return m, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/tripgraph/).
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

// configDir returns the config directory using XDG standard (~/.config/tripgraph/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
