// SPDX-License-Identifier: MIT

package partialtree

import "errors"

// Sentinel errors for partial tree operations.
var (
	// ErrEmptyList is returned by Remove on an empty list.
	ErrEmptyList = errors.New("partialtree: list is empty")

	// ErrNotFound is returned by RemoveTreeContaining when no live tree shares
	// the vertex's representative. During an MST run this means a structural
	// invariant was broken.
	ErrNotFound = errors.New("partialtree: no tree contains vertex")

	// ErrSelfMerge is returned when a tree is merged with itself.
	ErrSelfMerge = errors.New("partialtree: tree merged with itself")

	// ErrTreeMerged is returned when a tree that was already absorbed by
	// another tree takes part in a new merge.
	ErrTreeMerged = errors.New("partialtree: tree already merged away")

	// ErrNilTree is returned when a nil tree is passed to Merge or Append.
	ErrNilTree = errors.New("partialtree: tree is nil")
)
