// Package cli implements the vizlens command-line interface.
//
// This package provides commands for resolving output-metadata documents
// into viewer configurations, discovering visualizations for a pipeline
// step through the metadata store, drawing run lineage, and serving the
// HTTP API. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - resolve: Turn an output-metadata document into viewer configs
//   - discover: Find and render a pipeline step's visualizations
//   - lineage: Draw the metadata graph around a pipeline step
//   - serve: Run the HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vizlens/vizlens/internal/config"
	"github.com/vizlens/vizlens/pkg/buildinfo"
)

// appName is the application name used for display.
const appName = "vizlens"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Vizlens resolves pipeline run outputs into visualizations",
		Long:         `Vizlens turns the outputs of pipeline runs into renderable visualizations, either from a declared output-metadata document or by discovering what a step actually produced in the metadata store.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML config file")

	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.discoverCommand())
	root.AddCommand(c.lineageCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig loads the configuration selected by --config, falling back
// to defaults when the flag is unset.
func (c *CLI) loadConfig() (config.Config, error) {
	return config.Load(c.configPath)
}
