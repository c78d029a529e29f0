// SPDX-License-Identifier: MIT

package partialtree

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/partree/core"
	"github.com/katalvlaran/partree/minheap"
)

// Tree is one connected component under construction.
//
// root is the vertex the tree was seeded with; it only changes meaning when
// another tree is merged into this one (the other root is attached below it).
// arcs holds every arc whose inner endpoint is in the tree. Arcs whose outer
// endpoint has since joined the tree stay in the heap and are discarded when
// popped.
type Tree struct {
	root   *core.Vertex
	arcs   *minheap.MinHeap[core.Arc]
	merged bool
}

// New builds a singleton tree rooted at v, seeding its heap with one arc per
// adjacency entry of v (V1 = v, V2 = neighbor).
// Complexity: O(deg(v) log deg(v)).
func New(v *core.Vertex) *Tree {
	t := &Tree{
		root: v,
		arcs: minheap.New(core.LessArc),
	}
	if v == nil {
		return t
	}
	for _, nb := range v.Neighbors {
		t.arcs.Insert(core.NewArc(v, nb.Vertex, nb.Weight))
	}

	return t
}

// Root returns the stored root of this tree.
//
// This is not the union-find representative of an arbitrary vertex; use
// Representative for that.
func (t *Tree) Root() *core.Vertex { return t.root }

// Representative resolves the stored root through the union-find chain.
// For a live tree the two coincide; the split exists so that every
// comparison can go through one resolver.
func (t *Tree) Representative() *core.Vertex { return core.FindRepresentative(t.root) }

// Arcs returns the heap owned by the tree.
func (t *Tree) Arcs() *minheap.MinHeap[core.Arc] { return t.arcs }

// Merged reports whether t was absorbed into another tree.
func (t *Tree) Merged() bool { return t.merged }

// Merge absorbs other into t.
//
// other's root is attached directly below t's root (no rank or size
// balancing) and other's heap is merged into t's heap. other is left empty
// and marked merged; it must not be used again.
//
// Errors:
//   - ErrNilTree if other is nil.
//   - ErrSelfMerge if other == t.
//   - ErrTreeMerged if either tree was already merged away.
func (t *Tree) Merge(other *Tree) error {
	switch {
	case other == nil:
		return ErrNilTree
	case other == t:
		return ErrSelfMerge
	case t.merged || other.merged:
		return ErrTreeMerged
	}

	if err := core.Attach(other.root, t.root); err != nil {
		return fmt.Errorf("partialtree: attach %s under %s: %w", other.root, t.root, err)
	}
	t.arcs.Merge(other.arcs)
	other.merged = true

	return nil
}

// String renders the tree as "Vertices: <root>  PQ: [(a b w) ...]".
// Arcs are listed in heap order.
func (t *Tree) String() string {
	var sb strings.Builder
	sb.WriteString("Vertices: ")
	sb.WriteString(t.root.String())
	sb.WriteString("  PQ: [")
	for i, a := range t.arcs.Items() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(']')

	return sb.String()
}
