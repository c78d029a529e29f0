// SPDX-License-Identifier: MIT

// Package core provides the graph primitives consumed by the partial-tree MST:
// named vertices with adjacency lists, weighted undirected arcs, and the
// parent-pointer union-find that tracks which component a vertex belongs to.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Undirected only: AddEdge(a, b, w) records the edge in both adjacency lists.
//   - Weighted with int64 weights; parallel edges are allowed, self-loops are not.
//   - Insertion-ordered: Vertices() returns vertices in the order they were added,
//     which is also the order in which singleton partial trees are created.
//
// Two notions of "root":
//
//	Vertex.Parent() and FindRepresentative(v) belong to the union-find layer.
//	Following parent links from any vertex terminates at a vertex that is its
//	own parent (the representative). Chains are never compressed by
//	FindRepresentative; FindRepresentativeCompress is the opt-in variant.
//
//	A partial tree's stored root lives in package partialtree and is a
//	different concept: it is the vertex the tree was seeded with (or the
//	absorbing side of its merges), not necessarily the representative of an
//	arbitrary vertex.
//
// Core Methods:
//
//	AddVertex(name string) (*Vertex, error)   // O(1), idempotent
//	AddEdge(a, b string, w int64) error       // O(1), mirrored
//	Vertex(name string) (*Vertex, error)      // O(1)
//	Vertices() []*Vertex                      // O(V), insertion order
//	Arcs() []Arc                              // O(V+E), each edge once
//	Reset()                                   // O(V), every vertex becomes its own parent
//
//	FindRepresentative(v *Vertex) *Vertex           // O(depth)
//	FindRepresentativeCompress(v *Vertex) *Vertex   // path halving
//	Attach(child, parent *Vertex) error             // O(1), no rank
//
// Arc equality ignores endpoint order: two arcs are Equal when their weights
// match and their endpoint names form the same unordered pair. Arcs order by
// weight only; ties are arbitrary.
//
// Errors:
//
//	ErrEmptyVertexName  – zero-length vertex name
//	ErrVertexNotFound   – missing vertex
//	ErrDuplicateVertex  – name declared twice (strict loaders)
//	ErrLoopNotAllowed   – a == b in AddEdge
//	ErrNilVertex        – nil vertex passed to Attach
package core
