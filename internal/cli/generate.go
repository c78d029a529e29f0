// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/partree/builder"
	"github.com/katalvlaran/partree/graphio"
)

// generateFlags holds options for the generate command.
type generateFlags struct {
	seed      int64
	minWeight int64
	maxWeight int64
	ids       string
	output    string
}

const (
	idsDecimal = "decimal"
	idsExcel   = "excel"
)

func (c *CLI) generateCommand() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate <topology> <size>...",
		Short: "Write a generated graph file",
		Long: `Write a generated weighted graph in the format read by solve.

Topologies:
  path N         simple path
  cycle N        simple cycle
  star N         star centred on the first vertex
  complete N     complete graph
  grid R C       R×C grid, vertices named "r,c"
  sparse N P     each vertex pair kept with probability P
  random N P     random spanning tree plus sparse N P (always connected)`,
		Example: `  partree generate grid 10 10 --max-weight 99 | partree solve /dev/stdin`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctor, err := parseTopology(args)
			if err != nil {
				return err
			}
			opts, err := flags.options()
			if err != nil {
				return err
			}

			g, err := builder.BuildGraph(opts, ctor...)
			if err != nil {
				return err
			}
			c.Logger.Debug("graph generated", "topology", args[0], "vertices", g.Order(), "edges", g.Size())

			return writeTo(cmd.OutOrStdout(), flags.output, func(w io.Writer) error {
				return graphio.Write(w, g)
			})
		},
	}

	cmd.Flags().Int64Var(&flags.seed, "seed", 1, "random seed for weights and sparse topologies")
	cmd.Flags().Int64Var(&flags.minWeight, "min-weight", 1, "smallest edge weight")
	cmd.Flags().Int64Var(&flags.maxWeight, "max-weight", 1, "largest edge weight")
	cmd.Flags().StringVar(&flags.ids, "ids", idsDecimal, "vertex naming: decimal or excel")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func (f generateFlags) options() ([]builder.Option, error) {
	if f.maxWeight < f.minWeight {
		return nil, fmt.Errorf("--max-weight %d is below --min-weight %d", f.maxWeight, f.minWeight)
	}
	if f.maxWeight-f.minWeight < 0 {
		return nil, fmt.Errorf("weight range [%d, %d] is wider than %d", f.minWeight, f.maxWeight, int64(math.MaxInt64))
	}
	opts := []builder.Option{
		builder.WithSeed(f.seed),
		builder.WithUniformWeight(f.minWeight, f.maxWeight),
	}
	switch f.ids {
	case idsDecimal:
	case idsExcel:
		opts = append(opts, builder.WithIDScheme(builder.ExcelColumnID))
	default:
		return nil, fmt.Errorf("unknown --ids %q (want %s or %s)", f.ids, idsDecimal, idsExcel)
	}

	return opts, nil
}

// parseTopology maps "<name> <args>..." onto builder constructors.
func parseTopology(args []string) ([]builder.Constructor, error) {
	name, params := args[0], args[1:]

	want := 1
	if name == "grid" || name == "sparse" || name == "random" {
		want = 2
	}
	if len(params) != want {
		return nil, fmt.Errorf("%s takes %d argument(s), got %d", name, want, len(params))
	}

	n, err := strconv.Atoi(params[0])
	if err != nil {
		return nil, fmt.Errorf("%s: size %q: %w", name, params[0], err)
	}

	switch name {
	case "path":
		return []builder.Constructor{builder.Path(n)}, nil
	case "cycle":
		return []builder.Constructor{builder.Cycle(n)}, nil
	case "star":
		return []builder.Constructor{builder.Star(n)}, nil
	case "complete":
		return []builder.Constructor{builder.Complete(n)}, nil
	case "grid":
		cols, err := strconv.Atoi(params[1])
		if err != nil {
			return nil, fmt.Errorf("grid: columns %q: %w", params[1], err)
		}
		return []builder.Constructor{builder.Grid(n, cols)}, nil
	case "sparse", "random":
		p, err := strconv.ParseFloat(params[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: probability %q: %w", name, params[1], err)
		}
		if name == "sparse" {
			return []builder.Constructor{builder.RandomSparse(n, p)}, nil
		}
		return []builder.Constructor{builder.RandomTree(n), builder.RandomSparse(n, p)}, nil
	default:
		return nil, fmt.Errorf("unknown topology %q", name)
	}
}

// writeTo runs encode against a file created at path, or stdout when path is empty.
func writeTo(stdout io.Writer, path string, encode func(io.Writer) error) (err error) {
	if path == "" {
		return encode(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	return encode(f)
}
