// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/partree/core"
)

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"
	methodRandomTree   = "RandomTree"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
	minGridDim       = 1
	minRandomNodes   = 1

	gridIDFmt = "%d,%d" // "r,c"
)

// Path builds P_n: edges i-(i+1) for i = 0..n-2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: edges i-(i+1)%n for i = 0..n-1.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a star with center idFn(0) and leaves idFn(1..n-1).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodStar, n); err != nil {
			return err
		}
		center := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, center, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n. Edges are emitted for i < j in lexicographic (i, j) order.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighbourhood grid. Vertex IDs are "r,c" in
// row-major order regardless of the configured IDFn. For every cell the right
// edge is emitted before the bottom edge.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 1) Vertices, row-major.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if _, err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		// 2) Right and bottom neighbours.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, u, fmt.Sprintf(gridIDFmt, r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, u, fmt.Sprintf(gridIDFmt, r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse adds n vertices and keeps each unordered pair {i, j}, i < j,
// independently with probability p. Pairs are tried in (i, j) order.
// An RNG is required unless p is exactly 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == 1 || (p > 0 && cfg.rng.Float64() < p)
				if !keep {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomTree builds a uniformly attached random tree: vertex i ≥ 1 is joined
// to a vertex drawn from 0..i-1. Composed with RandomSparse over the same n it
// yields a connected random graph. Requires an RNG.
func RandomTree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomTree, n, minRandomNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTree, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, methodRandomTree, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			parent := cfg.rng.Intn(i)
			if err := addEdge(g, cfg, methodRandomTree, cfg.idFn(parent), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
