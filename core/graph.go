// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph construction and read-only queries.
// Determinism:
//   - Vertices() returns vertices in insertion order.
//   - Neighbors keep insertion order per vertex.

package core

import "fmt"

// AddVertex inserts a vertex if missing and returns it (idempotent).
//
// Implementation:
//   - Stage 1: Reject empty names with ErrEmptyVertexName.
//   - Stage 2: Return the existing vertex when the name is already registered.
//   - Stage 3: Allocate a vertex whose parent is itself and append it to the order.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(name string) (*Vertex, error) {
	if name == "" {
		return nil, ErrEmptyVertexName
	}
	if v, ok := g.index[name]; ok {
		return v, nil
	}

	v := &Vertex{Name: name}
	v.parent = v
	g.vertices = append(g.vertices, v)
	g.index[name] = v

	return v, nil
}

// AddEdge records an undirected edge a–b with the given weight.
//
// Endpoints are created on demand. The edge is mirrored into both adjacency
// lists, so every incident edge is visible from either endpoint. Parallel
// edges are kept; the MST discards the heavier ones naturally.
//
// Errors:
//   - ErrEmptyVertexName if either name is empty.
//   - ErrLoopNotAllowed if a == b.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, weight int64) error {
	if a == "" || b == "" {
		return ErrEmptyVertexName
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, a)
	}

	va, _ := g.AddVertex(a)
	vb, _ := g.AddVertex(b)
	va.Neighbors = append(va.Neighbors, Neighbor{Vertex: vb, Weight: weight})
	vb.Neighbors = append(vb.Neighbors, Neighbor{Vertex: va, Weight: weight})
	g.edges++

	return nil
}

// Vertex returns the vertex registered under name.
// Returns ErrVertexNotFound (wrapped with the name) if absent.
func (g *Graph) Vertex(name string) (*Vertex, error) {
	if v, ok := g.index[name]; ok {
		return v, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, name)
}

// HasVertex reports whether name is registered.
func (g *Graph) HasVertex(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Vertices returns the vertices in insertion order.
// The slice is a copy; the vertices are shared.
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Order returns |V|.
func (g *Graph) Order() int { return len(g.vertices) }

// Size returns |E|, counting each undirected edge once.
func (g *Graph) Size() int { return g.edges }

// Arcs returns every undirected edge once, in insertion order of its first endpoint.
//
// An edge u–v is reported from the endpoint that was inserted first, so the
// result does not depend on map iteration. Parallel edges are all reported.
// Complexity: O(V + E).
func (g *Graph) Arcs() []Arc {
	pos := make(map[*Vertex]int, len(g.vertices))
	for i, v := range g.vertices {
		pos[v] = i
	}

	out := make([]Arc, 0, g.edges)
	for i, v := range g.vertices {
		for _, nb := range v.Neighbors {
			if pos[nb.Vertex] > i {
				out = append(out, NewArc(v, nb.Vertex, nb.Weight))
			}
		}
	}

	return out
}

// Reset restores every vertex to be its own representative.
// Complexity: O(V).
func (g *Graph) Reset() {
	for _, v := range g.vertices {
		v.parent = v
	}
}
