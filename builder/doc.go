// SPDX-License-Identifier: MIT

// Package builder generates weighted undirected graphs for partree runs,
// tests and benchmarks.
//
// A graph is assembled by BuildGraph from one or more Constructors applied
// in order to a fresh core.Graph:
//
//	g, err := builder.BuildGraph(
//		[]builder.Option{builder.WithSeed(7), builder.WithUniformWeight(1, 50)},
//		builder.Grid(4, 4),
//	)
//
// Topologies:
//
//	Path(n)            n ≥ 2   n-1 edges
//	Cycle(n)           n ≥ 3   n edges
//	Star(n)            n ≥ 2   n-1 edges from vertex 0
//	Complete(n)        n ≥ 1   n(n-1)/2 edges
//	Grid(rows, cols)   ≥ 1×1   4-neighbourhood, IDs "r,c"
//	RandomSparse(n, p) n ≥ 1   each pair kept with probability p
//
// Determinism: for equal options, seed and constructor order, BuildGraph
// produces the same vertices, the same edges in the same order, and the same
// weights. Constructors never panic; option constructors panic on nil
// functions or inverted ranges.
//
// Vertex IDs come from the configured IDFn (DecimalID by default), except for
// Grid which always uses coordinates. Constructors sharing IDs share vertices,
// so composing Path(5) with Star(3) yields one connected graph.
package builder
