// SPDX-License-Identifier: MIT

package partialtree

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/partree/core"
)

// node is one link of the list.
type node struct {
	tree *Tree
	next *node
}

// List is a FIFO queue of partial trees with removal by contained vertex.
//
// Append adds at the back and Remove takes from the front, both in O(1).
// RemoveTreeContaining scans front to back. List is not safe for concurrent use.
type List struct {
	head    *node
	tail    *node
	size    int
	resolve core.Resolver
}

// ListOption configures a List.
type ListOption func(*List)

// WithResolver sets the function used to map vertices to representatives in
// RemoveTreeContaining. A nil resolver is ignored.
// Default: core.FindRepresentative.
func WithResolver(r core.Resolver) ListOption {
	return func(l *List) {
		if r != nil {
			l.resolve = r
		}
	}
}

// NewList returns an empty list.
func NewList(opts ...ListOption) *List {
	l := &List{resolve: core.FindRepresentative}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Append adds t at the back of the list. O(1).
// Returns ErrNilTree for a nil tree.
func (l *List) Append(t *Tree) error {
	if t == nil {
		return ErrNilTree
	}

	n := &node{tree: t}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++

	return nil
}

// Remove removes and returns the tree at the front. O(1).
// Returns ErrEmptyList if the list is empty.
func (l *List) Remove() (*Tree, error) {
	if l.head == nil {
		return nil, ErrEmptyList
	}

	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--

	return n.tree, nil
}

// RemoveTreeContaining removes and returns the tree whose representative
// equals the representative of v.
//
// Both sides are resolved with the same resolver: the representative of v is
// compared with the representative of each candidate's stored root. Scanning
// stops at the first match. Returns ErrNotFound, wrapped with the vertex
// name, when no tree matches (including on an empty list).
// Complexity: O(size · depth).
func (l *List) RemoveTreeContaining(v *core.Vertex) (*Tree, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, core.ErrNilVertex)
	}

	want := l.resolve(v)
	var prev *node
	for n := l.head; n != nil; prev, n = n, n.next {
		if l.resolve(n.tree.Root()) != want {
			continue
		}
		if prev == nil {
			l.head = n.next
		} else {
			prev.next = n.next
		}
		if n == l.tail {
			l.tail = prev
		}
		l.size--

		return n.tree, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, v.Name)
}

// Len returns the number of trees in the list. O(1).
func (l *List) Len() int { return l.size }

// All yields the trees front to back.
//
// The sequence is finite and reflects the list at the moment each element is
// reached; mutating the list while ranging over it is undefined.
func (l *List) All() iter.Seq[*Tree] {
	return func(yield func(*Tree) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.tree) {
				return
			}
		}
	}
}
