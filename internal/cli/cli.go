// Package cli implements the consolidated command-line interface.
//
// The CLI loads a parent→child edge file, builds a consolidated index from it
// and answers descendant queries. It is built using cobra, logs through
// charmbracelet/log and reads optional defaults from a TOML config file.
//
// # Commands
//
//   - build: Load an edge file, build the index and print statistics
//   - children, consolidated, contains, affected: Query the index
//   - export: Write every key's descendant set as JSON
//   - dot: Render the hierarchy as DOT, SVG, PDF or PNG
//   - explore: Browse the hierarchy interactively
//   - cache: Inspect or clear the rendered diagram cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/consolidated/pkg/buildinfo"
	"github.com/matzehuels/consolidated/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "consolidated"

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
	verbose    bool
	format     string
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
		Short:         "Consolidated builds descendant indexes for hierarchies",
		Long:          `Consolidated reads a forest of parent→child edges and builds a compact index answering "everything below X" in constant time.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.configure(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/consolidated/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.format, "format", "", "input format: json, toml or text (default: from file extension)")

	// Register all subcommands
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.childrenCommand())
	root.AddCommand(c.consolidatedCommand())
	root.AddCommand(c.containsCommand())
	root.AddCommand(c.affectedCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// configure loads the config file and applies it underneath explicit flags.
func (c *CLI) configure(cmd *cobra.Command) error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	if !cmd.Flags().Changed("verbose") {
		c.verbose = cfg.Verbose
	}
	if !cmd.Flags().Changed("format") && c.format == "" {
		c.format = cfg.Format
	}

	level := LogInfo
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	c.Logger.Debug("configured", "config", c.configPath, "format", c.format)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// pipelineOptions returns the pipeline options for an input file.
func (c *CLI) pipelineOptions(input string) pipeline.Options {
	return pipeline.Options{Input: input, Format: c.format}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/consolidated/).
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

// configDir returns the config directory using XDG standard (~/.config/consolidated/).
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
