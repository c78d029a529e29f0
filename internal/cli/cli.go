// SPDX-License-Identifier: MIT

// Package cli implements the partree command-line interface.
//
// # Commands
//
//   - solve: read a graph file, compute its minimum spanning forest and print it
//   - render: shorthand for solve --format svg
//   - generate: write a generated graph file (path, grid, random, ...)
//   - version: print build information
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which includes
// a trace line per tree merge. The logger carries a short run id.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const appName = "partree"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Build information, set by main via SetVersion.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion records build information for the version command.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose bool
}

// New creates a CLI writing logs to w at the given level.
// Every log line carries a run id so concurrent invocations can be told apart.
func New(w io.Writer, level log.Level) *CLI {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})

	return &CLI{Logger: logger.With("run", uuid.NewString()[:8])}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "partree computes minimum spanning forests by merging partial trees",
		Long:         `partree reads a weighted undirected graph, grows one partial tree per vertex and merges them along their lightest outgoing arcs until a minimum spanning tree (or forest, for disconnected input) remains.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
		},
	}

	root.SetVersionTemplate(versionString())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.versionCommand())

	return root
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), versionString())
			return err
		},
	}
}

func versionString() string {
	return appName + " " + version + "\ncommit: " + commit + "\nbuilt: " + date + "\n"
}
