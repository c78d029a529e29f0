// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Neighbor, Arc and Graph declarations plus sentinel errors.
// Policy:
//   - Graph keeps insertion order; Vertices() is the initialisation order of the MST.
//   - Vertex.parent is the only field mutated after construction (by Attach).
//   - Arc is a value type and is never mutated once built.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexName indicates that a vertex name is the empty string.
	ErrEmptyVertexName = errors.New("core: vertex name is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates a vertex name was declared twice where
	// uniqueness is required (strict loaders).
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrLoopNotAllowed indicates a self-loop (a == b) was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNilVertex indicates a nil *Vertex was passed where one is required.
	ErrNilVertex = errors.New("core: vertex is nil")
)

// Neighbor is one adjacency entry of a Vertex: the far endpoint and the edge weight.
type Neighbor struct {
	// Vertex is the far endpoint of the edge.
	Vertex *Vertex

	// Weight is the cost of the edge.
	Weight int64
}

// Vertex is a node of an undirected weighted graph.
//
// Name uniquely identifies the vertex inside its Graph. Neighbors holds one
// entry per incident edge; an undirected edge u–v appears in both u's and v's
// lists. parent is a union-find link toward the representative of the
// component that currently contains the vertex; a vertex whose parent is
// itself is a representative.
type Vertex struct {
	// Name is the unique identifier of this vertex.
	Name string

	// Neighbors is the adjacency list in insertion order.
	Neighbors []Neighbor

	parent *Vertex
}

// Arc is an undirected weighted edge between two vertices.
//
// The order of V1 and V2 carries no meaning for equality; algorithms that
// grow trees use V1 as the inner endpoint and V2 as the outer one.
type Arc struct {
	// V1 is one endpoint (the inner endpoint when produced by a partial tree).
	V1 *Vertex

	// V2 is the other endpoint (the outer endpoint when produced by a partial tree).
	V2 *Vertex

	// Weight is the cost of the arc.
	Weight int64
}

// Graph is an ordered collection of vertices with symmetric adjacency lists.
//
// Graph is not safe for concurrent mutation. The MST computation mutates the
// parent links of its vertices; call Reset before reusing the graph if a
// previous run may have left links behind.
type Graph struct {
	vertices []*Vertex
	index    map[string]*Vertex
	edges    int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{index: make(map[string]*Vertex)}
}
