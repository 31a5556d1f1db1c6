// Package cli implements the grahas command-line interface.
//
// Commands compute natal and divisional Vedic charts, manage saved birth
// records, and maintain the local result cache. The CLI is built on cobra
// with structured logging via charmbracelet/log.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/maheshsubedi/grahas/pkg/buildinfo"
	"github.com/maheshsubedi/grahas/pkg/cache"
	"github.com/maheshsubedi/grahas/pkg/chart"
	"github.com/maheshsubedi/grahas/pkg/ephemeris"
	"github.com/maheshsubedi/grahas/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "grahas"

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
	Config *Config
}

// New creates a new CLI instance with a default logger and loaded config.
// A broken config file is reported but does not prevent startup; built-in
// defaults apply.
func New(w io.Writer, level log.Level) *CLI {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})

	cfg, err := LoadConfig()
	if err != nil {
		logger.Warn("ignoring config file", "err", err)
		cfg = DefaultConfig()
	}

	return &CLI{Logger: logger, Config: cfg}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "grahas",
		Short:        "Grahas computes sidereal Vedic charts",
		Long:         `Grahas is a CLI tool for computing Vedic natal and divisional charts: sidereal planetary positions, house cusps, nakshatra placements and the classical varga projections.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.chartCommand())
	root.AddCommand(c.vargaCommand())
	root.AddCommand(c.storeCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Component Factories
// =============================================================================

// newAssembler opens an ephemeris accessor for the given frame and wraps it in
// a chart assembler. The caller owns the accessor and must Close it.
func (c *CLI) newAssembler(ayanamsa ephemeris.AyanamsaSystem, dataDir string) (*chart.Assembler, *ephemeris.Accessor, error) {
	if dataDir == "" {
		dataDir = c.Config.DataDir
	}
	if dataDir == "" {
		if d, err := dataHome(); err == nil {
			dataDir = filepath.Join(d, "ephemeris")
		}
	}

	eph, err := ephemeris.Open(ephemeris.Config{
		Ayanamsa: ayanamsa,
		DataDir:  dataDir,
		Logf:     c.Logger.Debugf,
	})
	if err != nil {
		return nil, nil, err
	}
	return chart.NewAssembler(eph), eph, nil
}

// newCache selects the cache backend. Cache failures degrade to the null
// cache; a chart is always recomputable.
func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache || c.Config.NoCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Debug("cache unavailable", "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// newStore selects the record store backend from config.
func (c *CLI) newStore(cmd *cobra.Command) (store.Store, error) {
	if c.Config.Store.Backend == "redis" {
		return store.NewRedisStore(cmd.Context(), store.RedisConfig{
			Addr:     c.Config.Store.Redis.Addr,
			Password: c.Config.Store.Redis.Password,
			DB:       c.Config.Store.Redis.DB,
		})
	}

	dir := c.Config.Store.Dir
	if dir == "" {
		d, err := dataHome()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(d, "records")
	}
	return store.NewFileStore(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/grahas/).
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

// configDir returns the config directory using XDG standard (~/.config/grahas/).
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

// dataHome returns the data directory using XDG standard (~/.local/share/grahas/).
func dataHome() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName), nil
}
