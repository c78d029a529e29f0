// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/partree/core"
	"github.com/katalvlaran/partree/graphio"
	"github.com/katalvlaran/partree/internal/config"
	"github.com/katalvlaran/partree/mst"
	"github.com/katalvlaran/partree/render"
)

// solveFlags holds command-line overrides for config values.
type solveFlags struct {
	configPath string
	format     string
	output     string
	compress   bool
	hideUnused bool
	quiet      bool
}

func (c *CLI) solveCommand() *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "solve <graph-file>",
		Short: "Compute the minimum spanning forest of a graph file",
		Long: `Compute the minimum spanning forest of a graph file.

The file lists the vertex count, one vertex name per line, then one
"a b weight" line per undirected edge. Output is the selected arcs as text,
or the whole graph as DOT/SVG with the forest highlighted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			return c.runSolve(cmd.Context(), cmd, args[0], cfg, flags.quiet)
		},
	}

	addSolveFlags(cmd, &flags)

	return cmd
}

func (c *CLI) renderCommand() *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "render <graph-file>",
		Short: "Render a graph and its minimum spanning forest as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			cfg.Format = config.FormatSVG
			return c.runSolve(cmd.Context(), cmd, args[0], cfg, flags.quiet)
		},
	}

	addSolveFlags(cmd, &flags)
	cmd.Flags().Lookup("format").Hidden = true

	return cmd
}

func addSolveFlags(cmd *cobra.Command, flags *solveFlags) {
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to a partree.toml file")
	cmd.Flags().StringVarP(&flags.format, "format", "f", config.FormatText, "output format: "+strings.Join(config.Formats, ", "))
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&flags.compress, "compress", false, "use path halving for representative lookups")
	cmd.Flags().BoolVar(&flags.hideUnused, "hide-unused", false, "omit non-forest edges from DOT/SVG output")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "do not print the summary")
}

// resolveConfig loads the config file and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, flags solveFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}

	fs := cmd.Flags()
	if fs.Changed("format") {
		cfg.Format = flags.format
	}
	if fs.Changed("output") {
		cfg.Output = flags.output
	}
	if fs.Changed("compress") {
		cfg.PathCompression = flags.compress
	}
	if fs.Changed("hide-unused") {
		cfg.HideUnused = flags.hideUnused
	}

	return cfg, cfg.Validate()
}

func (c *CLI) runSolve(ctx context.Context, cmd *cobra.Command, path string, cfg config.Config, quiet bool) error {
	if !c.verbose {
		lvl, _ := cfg.LogLevel()
		c.SetLogLevel(lvl)
	}
	logger := c.Logger.With("graph", path)

	g, err := graphio.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Debug("graph loaded", "vertices", g.Order(), "edges", g.Size())

	opts := []mst.Option{mst.WithLogger(logger)}
	if cfg.PathCompression {
		opts = append(opts, mst.WithPathCompression())
	}

	prog := newProgress(logger)
	res, err := mst.Compute(g, opts...)
	if err != nil {
		return fmt.Errorf("solve %s: %w", path, err)
	}
	prog.done("computed spanning forest", "arcs", len(res.Arcs), "weight", res.TotalWeight)

	if err := writeResult(ctx, cmd.OutOrStdout(), g, res, cfg); err != nil {
		return err
	}
	if !quiet {
		printSummary(cmd.ErrOrStderr(), path, g.Order(), res)
	}

	return nil
}

// writeResult encodes res in cfg.Format to cfg.Output, or to stdout when
// no output file is configured.
func writeResult(ctx context.Context, stdout io.Writer, g *core.Graph, res mst.Result, cfg config.Config) error {
	return writeTo(stdout, cfg.Output, func(w io.Writer) error {
		switch cfg.Format {
		case config.FormatText:
			return graphio.WriteArcs(w, res.Arcs)
		case config.FormatDOT:
			_, err := io.WriteString(w, render.DOT(g, res.Arcs, render.Options{HideUnused: cfg.HideUnused}))
			return err
		case config.FormatSVG:
			svg, err := render.SVG(ctx, render.DOT(g, res.Arcs, render.Options{HideUnused: cfg.HideUnused}))
			if err != nil {
				return err
			}
			_, err = w.Write(svg)
			return err
		default:
			return fmt.Errorf("%w: format %q", config.ErrInvalid, cfg.Format)
		}
	})
}
