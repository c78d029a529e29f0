// SPDX-License-Identifier: MIT
//
// File: unionfind.go
// Role: Union-find primitives over Vertex.parent.
// Policy:
//   - FindRepresentative never mutates; chains may grow without bound.
//   - FindRepresentativeCompress halves the path while walking.
//   - Attach links one representative under another; no rank or size balancing.

package core

// Resolver maps a vertex to the representative of its component.
// FindRepresentative and FindRepresentativeCompress both satisfy it.
type Resolver func(v *Vertex) *Vertex

// Parent returns the union-find parent of v.
// A freshly built vertex is its own parent.
func (v *Vertex) Parent() *Vertex {
	if v.parent == nil {
		return v
	}

	return v.parent
}

// IsRepresentative reports whether v is the root of its union-find chain.
func (v *Vertex) IsRepresentative() bool { return v.Parent() == v }

// FindRepresentative follows parent links from v until it reaches a vertex
// that is its own parent, and returns that vertex.
//
// The walk does not compress the path. Returns nil for a nil vertex.
// Complexity: O(depth of v).
func FindRepresentative(v *Vertex) *Vertex {
	if v == nil {
		return nil
	}
	for !v.IsRepresentative() {
		v = v.Parent()
	}

	return v
}

// FindRepresentativeCompress behaves like FindRepresentative but points every
// visited vertex at its grandparent (path halving) on the way up.
//
// The returned representative is the same as FindRepresentative's; only the
// intermediate links change.
// Complexity: amortized O(α(V)) when combined with balanced unions, O(depth) here.
func FindRepresentativeCompress(v *Vertex) *Vertex {
	if v == nil {
		return nil
	}
	for !v.IsRepresentative() {
		p := v.Parent()
		v.parent = p.Parent()
		v = v.parent
	}

	return v
}

// Attach makes parent the union-find parent of child.
//
// child is expected to be a representative; attaching an inner vertex still
// works but leaves its former subtree reachable only through child.
// Returns ErrNilVertex if either argument is nil.
func Attach(child, parent *Vertex) error {
	if child == nil || parent == nil {
		return ErrNilVertex
	}
	child.parent = parent

	return nil
}

// Connected reports whether a and b share a representative under resolve.
// A nil resolve falls back to FindRepresentative.
func Connected(a, b *Vertex, resolve Resolver) bool {
	if resolve == nil {
		resolve = FindRepresentative
	}

	return resolve(a) == resolve(b)
}
