// SPDX-License-Identifier: MIT

package mst_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/partree/core"
)

// kruskalWeight is the reference oracle: total weight of a minimum spanning
// forest computed by sorting every edge and joining components with a
// map-based disjoint set (path compression + union by rank).
func kruskalWeight(g *core.Graph) int64 {
	// 1. Collect and sort all edges by ascending weight.
	edges := g.Arcs()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 2. Initialize disjoint-set structures keyed by vertex name.
	parent := make(map[string]string, g.Order())
	rank := make(map[string]int, g.Order())
	for _, v := range g.Vertices() {
		parent[v.Name] = v.Name
	}
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// 3. Take every edge that joins two components.
	var total int64
	for _, e := range edges {
		ru, rv := find(e.V1.Name), find(e.V2.Name)
		if ru == rv {
			continue
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}
		total += e.Weight
	}

	return total
}

// componentCount counts connected components of g by breadth-first search.
func componentCount(g *core.Graph) int {
	seen := make(map[*core.Vertex]bool, g.Order())
	count := 0
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		count++
		queue := []*core.Vertex{v}
		seen[v] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nb := range cur.Neighbors {
				if !seen[nb.Vertex] {
					seen[nb.Vertex] = true
					queue = append(queue, nb.Vertex)
				}
			}
		}
	}

	return count
}

// isAcyclic reports whether arcs, viewed as undirected edges, form a forest.
func isAcyclic(arcs []core.Arc) bool {
	parent := make(map[string]string)
	var find func(string) string
	find = func(u string) string {
		p, ok := parent[u]
		if !ok || p == u {
			parent[u] = u
			return u
		}
		r := find(p)
		parent[u] = r

		return r
	}
	for _, a := range arcs {
		ru, rv := find(a.V1.Name), find(a.V2.Name)
		if ru == rv {
			return false
		}
		parent[ru] = rv
	}

	return true
}

// buildRandomGraph creates a graph with n vertices and up to m random edges.
// When connected is true a chain V0-V1-...-V(n-1) is added first.
// The generator is seeded so the graph is reproducible.
func buildRandomGraph(t testing.TB, seed int64, n, m int, connected bool) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	r := rand.New(rand.NewSource(seed))

	for i := 0; i < n; i++ {
		_, err := g.AddVertex(fmt.Sprintf("V%d", i))
		require.NoError(t, err)
	}
	if connected {
		for i := 1; i < n; i++ {
			require.NoError(t, g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), int64(1+r.Intn(50))))
		}
	}
	for i := 0; i < m; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		// Small weight range forces plenty of ties.
		require.NoError(t, g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), int64(1+r.Intn(20))))
	}

	return g
}

// bruteForceWeight enumerates every subset of edges of size V-C and returns
// the smallest weight of an acyclic one. Only for tiny graphs.
func bruteForceWeight(g *core.Graph) int64 {
	edges := g.Arcs()
	need := g.Order() - componentCount(g)
	best := int64(-1)

	var pick []core.Arc
	var walk func(i int, sum int64)
	walk = func(i int, sum int64) {
		if len(pick) == need {
			if isAcyclic(pick) && (best < 0 || sum < best) {
				best = sum
			}
			return
		}
		if i == len(edges) || len(edges)-i < need-len(pick) {
			return
		}
		pick = append(pick, edges[i])
		walk(i+1, sum+edges[i].Weight)
		pick = pick[:len(pick)-1]
		walk(i+1, sum)
	}
	walk(0, 0)
	if best < 0 {
		return 0
	}

	return best
}
