// SPDX-License-Identifier: MIT

// Package mst computes a Minimum Spanning Tree, or a Minimum Spanning Forest
// for disconnected input, of an undirected weighted *core.Graph by merging
// partial trees.
//
// What & Why
//
//   - A partial tree is a connected piece of the final forest. It owns a
//     min-heap of every arc whose inner endpoint it contains.
//   - All partial trees wait in a FIFO list. The front tree takes its lightest
//     arc that leaves it, absorbs the tree on the other side and goes to the
//     back of the list. By the cut property that arc belongs to some MST.
//   - Compared to Kruskal there is no global sort; compared to Prim there is
//     no single start vertex. Every tree grows in turn, like Borůvka, but one
//     merge at a time.
//
// Algorithm
//
//	Initialize(g):   one singleton tree per vertex, heap = incident arcs.
//	Execute(list):   while len(list) > 1
//	                   T := list.Remove()
//	                   pop arcs from T until one leaves T (stale ones are dropped)
//	                   if none left: T is a finished component, drop it
//	                   else: record arc; O := list.RemoveTreeContaining(arc.V2)
//	                         T.Merge(O); list.Append(T)
//
// Stale arcs (both endpoints already inside T) are never filtered eagerly;
// they are found when popped. Filtering at merge time would make every heap
// merge linear in the heap size.
//
// Union-find
//
//	Vertices carry parent links. Merging attaches the absorbed tree's root
//	directly below the absorbing tree's root, with no rank balancing, and
//	representative lookups do not compress paths unless WithPathCompression
//	is given. Both sides of every root comparison use the same resolver.
//
// Complexity
//
//   - Heap work: O(E log E) overall.
//   - Tree lookup: O(V) per merge, O(V²) in the worst case over a run.
//   - Memory: O(V + E).
//
// Error Conditions
//
//   - ErrNilGraph                 – nil graph passed to Initialize/Compute.
//   - ErrNilList                  – nil list passed to Execute.
//   - partialtree.ErrNotFound     – the far endpoint of a selected arc belongs to
//     no live tree; an invariant was broken.
//   - partialtree.ErrEmptyList    – never produced by the loop itself (it checks the size).
//   - minheap.ErrEmptyQueue       – never produced by the loop itself (it checks emptiness).
//
// A disconnected graph is not an error: Result.Components reports how many
// trees the forest has.
//
// Side effects
//
//	The run rewrites the parent links of the graph's vertices. Initialize
//	resets them first, so running Compute twice on one graph yields the same
//	total weight.
package mst
