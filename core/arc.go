// SPDX-License-Identifier: MIT
//
// File: arc.go
// Role: Arc construction, equality, ordering and rendering.

package core

import (
	"cmp"
	"fmt"
	"strings"
)

// NewArc builds an Arc from v1 to v2 with the given weight.
func NewArc(v1, v2 *Vertex, weight int64) Arc {
	return Arc{V1: v1, V2: v2, Weight: weight}
}

// Equal reports whether a and b have the same weight and the same unordered
// pair of endpoint names.
func (a Arc) Equal(b Arc) bool {
	if a.Weight != b.Weight {
		return false
	}
	a1, a2 := a.names()
	b1, b2 := b.names()

	return (a1 == b1 && a2 == b2) || (a1 == b2 && a2 == b1)
}

// Less orders arcs by ascending weight. Ties are left unordered.
func (a Arc) Less(b Arc) bool { return a.Weight < b.Weight }

// LessArc is Less in function form, for heap constructors.
func LessArc(a, b Arc) bool { return a.Weight < b.Weight }

// Other returns the endpoint opposite to v, or nil if v is not an endpoint.
func (a Arc) Other(v *Vertex) *Vertex {
	switch v {
	case a.V1:
		return a.V2
	case a.V2:
		return a.V1
	default:
		return nil
	}
}

// ArcID identifies an undirected arc by its endpoint names, smaller name
// first, and its weight. Names are compared whole, so an ArcID stays unique
// whatever characters the names contain. Two Equal arcs share an ArcID.
type ArcID struct {
	From, To string
	Weight   int64
}

// ID returns the comparable identity of a, for use as a map key.
func (a Arc) ID() ArcID {
	n1, n2 := a.names()
	if n2 < n1 {
		n1, n2 = n2, n1
	}

	return ArcID{From: n1, To: n2, Weight: a.Weight}
}

// Compare orders arc identities by From, then To, then Weight.
func (id ArcID) Compare(other ArcID) int {
	if c := strings.Compare(id.From, other.From); c != 0 {
		return c
	}
	if c := strings.Compare(id.To, other.To); c != 0 {
		return c
	}

	return cmp.Compare(id.Weight, other.Weight)
}

// Key returns the endpoint names joined by '-', lexicographically smaller first.
// It is meant for display: names containing '-' can make two different pairs
// share a Key, so use ID where uniqueness matters.
func (a Arc) Key() string {
	n1, n2 := a.names()
	if n2 < n1 {
		n1, n2 = n2, n1
	}

	return n1 + "-" + n2
}

// String renders the arc as "(v1 v2 weight)".
func (a Arc) String() string {
	n1, n2 := a.names()
	return fmt.Sprintf("(%s %s %d)", n1, n2, a.Weight)
}

func (a Arc) names() (string, string) {
	var n1, n2 string
	if a.V1 != nil {
		n1 = a.V1.Name
	}
	if a.V2 != nil {
		n2 = a.V2.Name
	}

	return n1, n2
}

// String returns the vertex name.
func (v *Vertex) String() string {
	if v == nil {
		return "<nil>"
	}

	return v.Name
}

// Degree returns the number of adjacency entries.
func (v *Vertex) Degree() int { return len(v.Neighbors) }
