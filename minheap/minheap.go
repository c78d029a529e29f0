// SPDX-License-Identifier: MIT

package minheap

import (
	"cmp"
	"container/heap"
	"errors"
)

// ErrEmptyQueue is returned by DeleteMin and Peek on an empty heap.
var ErrEmptyQueue = errors.New("minheap: queue is empty")

// MinHeap is a min-priority queue ordered by a caller-supplied less function.
//
// The zero value is not usable; construct with New or NewOrdered.
// MinHeap is not safe for concurrent use.
type MinHeap[T any] struct {
	items items[T]
}

// New returns an empty heap ordered by less.
// less must be a strict weak ordering; equal elements come out in no particular order.
func New[T any](less func(a, b T) bool) *MinHeap[T] {
	return &MinHeap[T]{items: items[T]{less: less}}
}

// NewOrdered returns an empty heap over a cmp.Ordered type using <.
func NewOrdered[T cmp.Ordered]() *MinHeap[T] {
	return New(cmp.Less[T])
}

// Insert adds item and restores heap order.
// Complexity: O(log n) amortized.
func (h *MinHeap[T]) Insert(item T) {
	heap.Push(&h.items, item)
}

// DeleteMin removes and returns the minimum element.
// Returns ErrEmptyQueue if the heap is empty.
// Complexity: O(log n).
func (h *MinHeap[T]) DeleteMin() (T, error) {
	if h.IsEmpty() {
		var zero T
		return zero, ErrEmptyQueue
	}

	return heap.Pop(&h.items).(T), nil
}

// Peek returns the minimum element without removing it.
// Returns ErrEmptyQueue if the heap is empty.
func (h *MinHeap[T]) Peek() (T, error) {
	if h.IsEmpty() {
		var zero T
		return zero, ErrEmptyQueue
	}

	return h.items.data[0], nil
}

// IsEmpty reports whether the heap holds no elements. O(1).
func (h *MinHeap[T]) IsEmpty() bool { return len(h.items.data) == 0 }

// Len returns the number of elements. O(1).
func (h *MinHeap[T]) Len() int { return len(h.items.data) }

// Merge moves every element of other into h and leaves other empty.
//
// The two backing slices are concatenated and re-heapified with heap.Init,
// which costs O(n+m) instead of m separate inserts. Merging with nil or with
// h itself is a no-op. Both heaps must share the same ordering.
func (h *MinHeap[T]) Merge(other *MinHeap[T]) {
	if other == nil || other == h || other.IsEmpty() {
		return
	}
	if h.IsEmpty() {
		// Adopt other's storage; it is already heap-ordered.
		h.items.data, other.items.data = other.items.data, nil
		return
	}

	h.items.data = append(h.items.data, other.items.data...)
	other.items.data = nil
	heap.Init(&h.items)
}

// Items returns a copy of the elements in internal (heap) order.
// The first element, if any, is the minimum; the rest are not sorted.
func (h *MinHeap[T]) Items() []T {
	out := make([]T, len(h.items.data))
	copy(out, h.items.data)

	return out
}

// items adapts a slice plus ordering to heap.Interface.
type items[T any] struct {
	data []T
	less func(a, b T) bool
}

func (s items[T]) Len() int           { return len(s.data) }
func (s items[T]) Less(i, j int) bool { return s.less(s.data[i], s.data[j]) }
func (s items[T]) Swap(i, j int)      { s.data[i], s.data[j] = s.data[j], s.data[i] }

func (s *items[T]) Push(x any) { s.data = append(s.data, x.(T)) }

func (s *items[T]) Pop() any {
	old := s.data
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero // drop reference for GC
	s.data = old[:n-1]

	return item
}
