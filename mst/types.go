// SPDX-License-Identifier: MIT

package mst

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/partree/core"
	"github.com/katalvlaran/partree/partialtree"
)

// ErrNilGraph is returned when Initialize or Compute receives a nil graph.
var ErrNilGraph = errors.New("mst: graph is nil")

// ErrNilList is returned when Execute receives a nil list.
var ErrNilList = errors.New("mst: partial tree list is nil")

// Options configures a run.
type Options struct {
	// PathCompression switches representative lookups to path halving.
	// The result is unchanged; only intermediate parent links differ.
	PathCompression bool

	// OnSelect is called for every arc added to the result.
	OnSelect func(a core.Arc)

	// OnDiscard is called for every stale arc popped and thrown away.
	OnDiscard func(a core.Arc)

	// OnMerge is called after from has been merged into into.
	OnMerge func(into, from *partialtree.Tree)

	// Logger receives debug-level traces of each merge.
	Logger *log.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns options for a faithful run: no path compression,
// no-op hooks and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		PathCompression: false,
		OnSelect:        func(core.Arc) {},
		OnDiscard:       func(core.Arc) {},
		OnMerge:         func(_, _ *partialtree.Tree) {},
		Logger:          log.New(io.Discard),
	}
}

// WithPathCompression enables path halving in representative lookups.
func WithPathCompression() Option {
	return func(o *Options) { o.PathCompression = true }
}

// WithOnSelect registers a callback for every selected arc.
func WithOnSelect(fn func(a core.Arc)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSelect = fn
		}
	}
}

// WithOnDiscard registers a callback for every stale arc.
func WithOnDiscard(fn func(a core.Arc)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscard = fn
		}
	}
}

// WithOnMerge registers a callback run after each tree merge.
func WithOnMerge(fn func(into, from *partialtree.Tree)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMerge = fn
		}
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func (o Options) resolver() core.Resolver {
	if o.PathCompression {
		return core.FindRepresentativeCompress
	}

	return core.FindRepresentative
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Stats counts the work done by a run.
type Stats struct {
	// Pops is the number of DeleteMin calls on tree heaps.
	Pops int

	// Discarded is the number of stale arcs thrown away.
	Discarded int

	// Merges is the number of tree merges performed.
	Merges int

	// Scans is the number of list scans for the tree owning a selected
	// arc's outer endpoint.
	Scans int

	// Exhausted is the number of trees retired because their heap ran dry.
	Exhausted int
}

// Result is the outcome of Compute.
//
//	Arcs        – selected arcs, in selection order (consumers should treat it as unordered).
//	TotalWeight – sum of Arcs weights.
//	Components  – connected components of the input (|V| − len(Arcs)).
type Result struct {
	Arcs        []core.Arc
	TotalWeight int64
	Components  int
	Stats       Stats
}
