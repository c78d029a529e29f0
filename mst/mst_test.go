// SPDX-License-Identifier: MIT

package mst_test

import (
	"bytes"
	"sort"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/partree/core"
	"github.com/katalvlaran/partree/mst"
	"github.com/katalvlaran/partree/partialtree"
)

// buildSquare returns A–B(1), B–C(2), C–D(3), A–D(10).
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("C", "D", 3))
	require.NoError(t, g.AddEdge("A", "D", 10))

	return g
}

// sortedKeys returns "key:weight" for arcs, sorted.
func sortedKeys(arcs []core.Arc) []string {
	out := make([]string, 0, len(arcs))
	for _, a := range arcs {
		out = append(out, a.String())
	}
	sort.Strings(out)

	return out
}

// normalize renders every arc with its endpoints in name order.
func normalize(arcs []core.Arc) []string {
	out := make([]string, 0, len(arcs))
	for _, a := range arcs {
		if a.V2.Name < a.V1.Name {
			a.V1, a.V2 = a.V2, a.V1
		}
		out = append(out, a.String())
	}
	sort.Strings(out)

	return out
}

func TestCompute_Square(t *testing.T) {
	g := buildSquare(t)

	res, err := mst.Compute(g)
	require.NoError(t, err)

	assert.Equal(t, int64(6), res.TotalWeight)
	assert.Equal(t, 1, res.Components)
	want := []string{"(A B 1)", "(B C 2)", "(C D 3)"}
	if diff := cmp.Diff(want, normalize(res.Arcs)); diff != "" {
		t.Errorf("MST arcs mismatch (-want +got):\n%s", diff)
	}

	// Arc equality ignores orientation.
	a, _ := g.Vertex("A")
	b, _ := g.Vertex("B")
	found := false
	for _, arc := range res.Arcs {
		found = found || arc.Equal(core.NewArc(b, a, 1))
	}
	assert.True(t, found, "A–B(1) must be selected")
}

func TestCompute_DisconnectedForest(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))
	_, err := g.AddVertex("C")
	require.NoError(t, err)

	res, err := mst.Compute(g)
	require.NoError(t, err)

	assert.Equal(t, []string{"(A B 5)"}, normalize(res.Arcs))
	assert.Equal(t, int64(5), res.TotalWeight)
	assert.Equal(t, 2, res.Components)
	assert.Equal(t, 1, res.Stats.Exhausted, "loop must exit through tree exhaustion")
	assert.Equal(t, 1, res.Stats.Merges)
	assert.Equal(t, 1, res.Stats.Scans)
}

func TestCompute_TrivialGraphs(t *testing.T) {
	res, err := mst.Compute(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, res.Arcs)
	assert.Zero(t, res.Components)

	g := core.NewGraph()
	_, _ = g.AddVertex("solo")
	res, err = mst.Compute(g)
	require.NoError(t, err)
	assert.Empty(t, res.Arcs)
	assert.Zero(t, res.TotalWeight)
	assert.Equal(t, 1, res.Components)
}

func TestCompute_AllIsolated(t *testing.T) {
	g := core.NewGraph()
	for _, n := range []string{"P", "Q", "R", "S"} {
		_, _ = g.AddVertex(n)
	}

	res, err := mst.Compute(g)
	require.NoError(t, err)
	assert.Empty(t, res.Arcs)
	assert.Equal(t, 4, res.Components)
	assert.Equal(t, 3, res.Stats.Exhausted)
}

func TestCompute_ParallelEdgesKeepLightest(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 9))
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("B", "A", 4))

	res, err := mst.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"(A B 2)"}, normalize(res.Arcs))
}

func TestCompute_NilGraph(t *testing.T) {
	_, err := mst.Compute(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	_, err = mst.Initialize(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	_, err = mst.Execute(nil)
	assert.ErrorIs(t, err, mst.ErrNilList)
}

func TestCompute_MatchesKruskal(t *testing.T) {
	cases := []struct {
		name      string
		seed      int64
		n, m      int
		connected bool
	}{
		{"sparse connected", 1, 30, 20, true},
		{"dense connected", 2, 40, 400, true},
		{"sparse disconnected", 3, 50, 25, false},
		{"dense disconnected", 4, 25, 120, false},
		{"many ties", 5, 60, 600, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := buildRandomGraph(t, tc.seed, tc.n, tc.m, tc.connected)

			for _, opts := range [][]mst.Option{nil, {mst.WithPathCompression()}} {
				res, err := mst.Compute(g, opts...)
				require.NoError(t, err)

				assert.Equal(t, kruskalWeight(g), res.TotalWeight, "total weight")
				assert.Equal(t, componentCount(g), res.Components, "components")
				assert.Len(t, res.Arcs, g.Order()-componentCount(g), "V − C arcs")
				assert.True(t, isAcyclic(res.Arcs), "result must be a forest")
			}
		})
	}
}

func TestCompute_MatchesBruteForce(t *testing.T) {
	for seed := int64(10); seed < 30; seed++ {
		g := buildRandomGraph(t, seed, 6, 9, seed%2 == 0)

		res, err := mst.Compute(g)
		require.NoError(t, err)
		assert.Equal(t, bruteForceWeight(g), res.TotalWeight, "seed %d", seed)
	}
}

func TestCompute_RerunDeterministicWeight(t *testing.T) {
	g := buildRandomGraph(t, 77, 80, 300, false)

	first, err := mst.Compute(g)
	require.NoError(t, err)
	second, err := mst.Compute(g)
	require.NoError(t, err)

	assert.Equal(t, first.TotalWeight, second.TotalWeight)
	assert.Equal(t, first.Components, second.Components)
	assert.Equal(t, sortedKeys(first.Arcs), sortedKeys(second.Arcs))
}

func TestExecute_StepByStep(t *testing.T) {
	g := buildSquare(t)
	list, err := mst.Initialize(g)
	require.NoError(t, err)
	require.Equal(t, 4, list.Len())

	var roots []string
	for tr := range list.All() {
		roots = append(roots, tr.Root().Name)
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, roots)

	arcs, err := mst.Execute(list)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Len(), "one tree remains for a connected graph")
	assert.Len(t, arcs, 3)

	last, err := list.Remove()
	require.NoError(t, err)
	for _, v := range g.Vertices() {
		assert.Same(t, last.Representative(), core.FindRepresentative(v), "vertex %s", v.Name)
	}
}

func TestExecute_InvariantViolation(t *testing.T) {
	g := buildSquare(t)
	list, err := mst.Initialize(g)
	require.NoError(t, err)

	// Drop B's tree behind the loop's back: A's first arc points into nowhere.
	b, _ := g.Vertex("B")
	_, err = list.RemoveTreeContaining(b)
	require.NoError(t, err)

	_, err = mst.Execute(list)
	assert.ErrorIs(t, err, partialtree.ErrNotFound)
}

func TestHooks(t *testing.T) {
	g := buildRandomGraph(t, 9, 20, 80, true)

	var selected, discarded, merges int
	res, err := mst.Compute(g,
		mst.WithOnSelect(func(core.Arc) { selected++ }),
		mst.WithOnDiscard(func(core.Arc) { discarded++ }),
		mst.WithOnMerge(func(into, from *partialtree.Tree) {
			merges++
			assert.True(t, from.Merged())
			assert.False(t, into.Merged())
		}),
		mst.WithOnSelect(nil), // ignored
	)
	require.NoError(t, err)

	assert.Equal(t, len(res.Arcs), selected)
	assert.Equal(t, res.Stats.Discarded, discarded)
	assert.Equal(t, res.Stats.Merges, merges)
	assert.Equal(t, g.Order()-1, merges)
	assert.Equal(t, res.Stats.Pops, selected+discarded)
	assert.Equal(t, selected, res.Stats.Scans, "one list scan per selected arc")
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := mst.Compute(buildSquare(t), mst.WithLogger(logger), mst.WithLogger(nil))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "initialized partial trees")
	assert.Contains(t, out, "merged")
	assert.Contains(t, out, "spanning forest complete")
}

func TestDefaultOptions(t *testing.T) {
	o := mst.DefaultOptions()
	assert.False(t, o.PathCompression)
	assert.NotNil(t, o.OnSelect)
	assert.NotNil(t, o.OnDiscard)
	assert.NotNil(t, o.OnMerge)
	assert.NotNil(t, o.Logger)
}
