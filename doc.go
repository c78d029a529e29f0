// SPDX-License-Identifier: MIT

// Package partree computes minimum spanning trees (and forests, for
// disconnected input) by growing one partial tree per vertex and merging the
// trees along their lightest outgoing arcs.
//
// What is inside?
//
//	core/         Vertex, Arc and Graph plus the parent-pointer union-find
//	minheap/      generic binary min-heap with Merge
//	partialtree/  Tree (root + arc heap) and the FIFO List of trees
//	mst/          Initialize / Execute / Compute with hooks and stats
//	builder/      deterministic generators: Path, Cycle, Grid, RandomSparse…
//	graphio/      text graph format reader and writer
//	render/       DOT and SVG output with the forest highlighted
//	cmd/partree   solve, render and generate from the command line
//
// How a run goes:
//
//	A──1──B
//	│     │
//	10    2
//	│     │
//	D──3──C
//
// Every vertex starts as its own tree holding one arc per neighbour. The tree
// at the front of the list pops its lightest arc; stale arcs (both ends already
// in the tree) are discarded. The tree owning the far end is pulled out of the
// list, merged in, and the result goes to the back. For the square above the
// selected arcs are A–B(1), B–C(2) and C–D(3), weight 6.
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//	res, err := mst.Compute(g)
//
// or from a shell:
//
//	partree generate grid 10 10 --max-weight 99 -o grid.txt
//	partree solve grid.txt --format dot
package partree
