package fh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pixelgraph/segment/fh"
	"github.com/pixelgraph/segment/graph"
)

func buildLine(t *testing.T, weights []float64) *graph.Graph {
	t.Helper()
	g := graph.NewGraph(len(weights) + 1)
	for i := 0; i <= len(weights); i++ {
		g.AddVertex()
	}
	for i, w := range weights {
		require.True(t, g.AddEdge(i, i+1, w))
	}
	return g
}

func TestSegmentScenarioA(t *testing.T) {
	g := buildLine(t, []float64{5.0})
	p := fh.Segment(g, 10, 0)
	require.Equal(t, p.Find(0), p.Find(1))
}

func TestSegmentScenarioB(t *testing.T) {
	g := buildLine(t, []float64{1.0, 10.0})
	p := fh.Segment(g, 1, 0)
	require.Equal(t, p.Find(0), p.Find(1))
	require.NotEqual(t, p.Find(1), p.Find(2))
}

func TestSegmentIsDeterministicAcrossRuns(t *testing.T) {
	g := buildLine(t, []float64{1.0, 1.0, 2.0, 0.5})
	first := fh.Segment(g, 3, 0)
	second := fh.Segment(g, 3, 0)
	for v := 0; v < g.VertexCount(); v++ {
		require.Equal(t, first.Find(v), second.Find(v))
	}
}

func TestSegmentMinSizeForceMergesTinyComponents(t *testing.T) {
	// Four singletons joined in a chain by heavy edges that FH alone would
	// never merge at this k; minSize forces cleanup to merge them regardless.
	g := graph.NewGraph(4)
	for i := 0; i < 4; i++ {
		g.AddVertex()
	}
	g.AddEdge(0, 1, 1000.0)
	g.AddEdge(2, 3, 1000.0)
	g.AddEdge(1, 2, 1000.0)

	withoutCleanup := fh.Segment(g, 0, 0)
	require.NotEqual(t, withoutCleanup.Find(0), withoutCleanup.Find(1), "k=0 keeps every pixel isolated")

	withCleanup := fh.Segment(g, 0, 2)
	require.Equal(t, withCleanup.Find(0), withCleanup.Find(3), "min-size cleanup merges undersized components")
}

func TestRunFromEdgesRootsAndMembers(t *testing.T) {
	edges := []fh.Edge{{U: 0, V: 1, Weight: 1.0}, {U: 2, V: 3, Weight: 1.0}}
	p := fh.RunFromEdges(4, edges, 10, 0)
	roots := p.Roots()
	require.Len(t, roots, 2)
	members := p.Members()
	require.Len(t, members[p.Find(0)], 2)
	require.Len(t, members[p.Find(2)], 2)
}
