// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/partree/core"
)

// Constructor applies a deterministic mutation to g using the resolved config.
// Constructors validate their parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves opts and applies cons in order.
// The first constructor error is returned wrapped as "BuildGraph: %w"; the
// partially built graph is discarded.
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts idFn(0..n-1) into g.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if _, err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge draws one weight from cfg and inserts the undirected edge u-v.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
