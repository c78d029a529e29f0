// SPDX-License-Identifier: MIT

package mst

import (
	"fmt"

	"github.com/katalvlaran/partree/core"
	"github.com/katalvlaran/partree/partialtree"
)

// Initialize builds the starting list: one singleton partial tree per vertex,
// appended in g.Vertices() order.
//
// Every vertex is reset to be its own representative first, so a graph left
// behind by an earlier run starts clean. The list resolves representatives
// with the same function Execute will use for the given options.
//
// Complexity: O(V + E log Δ), every edge lands in the heap of each endpoint's tree once.
func Initialize(g *core.Graph, opts ...Option) (*partialtree.List, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)

	g.Reset()
	list := partialtree.NewList(partialtree.WithResolver(o.resolver()))
	for _, v := range g.Vertices() {
		if err := list.Append(partialtree.New(v)); err != nil {
			return nil, fmt.Errorf("mst: initialize %s: %w", v.Name, err)
		}
	}
	o.Logger.Debug("initialized partial trees", "trees", list.Len(), "edges", g.Size())

	return list, nil
}

// Execute runs the merge loop over list and returns the selected arcs.
//
// Steps, while the list holds more than one tree:
//  1. Remove the front tree T.
//  2. Pop arcs from T's heap; an arc whose outer endpoint already resolves to
//     T's representative is stale and is discarded.
//  3. If the heap runs dry, T is a finished component and is not re-appended.
//  4. Otherwise record the arc, remove the tree holding its outer endpoint,
//     merge it into T and append T at the back.
//
// A disconnected graph yields a spanning forest; that is not an error.
// Any list or merge failure means a structural invariant was broken; it is
// returned wrapped and no partial result is given.
func Execute(list *partialtree.List, opts ...Option) ([]core.Arc, error) {
	arcs, _, err := execute(list, buildOptions(opts))
	return arcs, err
}

// Compute initializes and executes a run over g and summarises it.
//
// Returns ErrNilGraph if g is nil, or any error surfaced by Execute.
// Complexity: O(E log E) heap work plus O(V) per tree lookup, O(V²) worst case.
func Compute(g *core.Graph, opts ...Option) (Result, error) {
	o := buildOptions(opts)

	list, err := Initialize(g, opts...)
	if err != nil {
		return Result{}, err
	}
	arcs, stats, err := execute(list, o)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Arcs:       arcs,
		Components: g.Order() - len(arcs),
		Stats:      stats,
	}
	for _, a := range arcs {
		res.TotalWeight += a.Weight
	}
	o.Logger.Debug("spanning forest complete",
		"arcs", len(arcs), "weight", res.TotalWeight, "components", res.Components)

	return res, nil
}

func execute(list *partialtree.List, o Options) ([]core.Arc, Stats, error) {
	var stats Stats
	if list == nil {
		return nil, stats, ErrNilList
	}
	resolve := o.resolver()
	arcs := make([]core.Arc, 0, list.Len())

	for list.Len() > 1 {
		// 1. Dequeue the front tree.
		t, err := list.Remove()
		if err != nil {
			return nil, stats, fmt.Errorf("mst: dequeue: %w", err)
		}

		// 2. Find the lightest arc that leaves T.
		arc, ok, err := lightestCrossing(t, resolve, o, &stats)
		if err != nil {
			return nil, stats, err
		}

		// 3. Exhausted heap: T is a complete component.
		if !ok {
			stats.Exhausted++
			o.Logger.Debug("tree exhausted", "root", t.Root().Name, "remaining", list.Len())
			continue
		}

		// 4. Record the arc.
		arcs = append(arcs, arc)
		o.OnSelect(arc)

		// 5. Absorb the tree on the far side and requeue T.
		stats.Scans++
		other, err := list.RemoveTreeContaining(arc.V2)
		if err != nil {
			return nil, stats, fmt.Errorf("mst: arc %s: %w", arc, err)
		}
		if err := t.Merge(other); err != nil {
			return nil, stats, fmt.Errorf("mst: merge %s into %s: %w", other.Root(), t.Root(), err)
		}
		stats.Merges++
		o.OnMerge(t, other)
		o.Logger.Debug("merged", "into", t.Root().Name, "from", other.Root().Name, "arc", arc.String())

		if err := list.Append(t); err != nil {
			return nil, stats, fmt.Errorf("mst: requeue %s: %w", t.Root(), err)
		}
	}

	return arcs, stats, nil
}

// lightestCrossing pops arcs from t until one whose outer endpoint lies in a
// different component turns up. ok is false when the heap runs dry first.
func lightestCrossing(t *partialtree.Tree, resolve core.Resolver, o Options, stats *Stats) (core.Arc, bool, error) {
	own := resolve(t.Root())
	heap := t.Arcs()

	for !heap.IsEmpty() {
		a, err := heap.DeleteMin()
		if err != nil {
			return core.Arc{}, false, fmt.Errorf("mst: tree %s: %w", t.Root(), err)
		}
		stats.Pops++

		if resolve(a.V2) == own {
			stats.Discarded++
			o.OnDiscard(a)
			continue
		}

		return a, true, nil
	}

	return core.Arc{}, false, nil
}
