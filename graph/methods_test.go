package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pixelgraph/segment/graph"
)

func TestAddVertexRespectsCapacity(t *testing.T) {
	g := graph.NewGraph(2)
	id0, ok := g.AddVertex()
	require.True(t, ok)
	require.Equal(t, 0, id0)

	id1, ok := g.AddVertex()
	require.True(t, ok)
	require.Equal(t, 1, id1)

	_, ok = g.AddVertex()
	require.False(t, ok, "capacity is exhausted")
	require.Equal(t, 2, g.VertexCount())
}

func TestCapacityZeroRejectsEverything(t *testing.T) {
	g := graph.NewGraph(0)
	_, ok := g.AddVertex()
	require.False(t, ok)
	require.False(t, g.AddEdge(0, 0, 1))
	require.False(t, g.CheckEdge(0, 0))
	_, err := g.Neighbors(0)
	require.ErrorIs(t, err, graph.ErrOutOfRange)
}

func TestAddEdgeMirrorsUndirected(t *testing.T) {
	g := graph.NewGraph(2)
	g.AddVertex()
	g.AddVertex()

	ok := g.AddEdge(0, 1, 5.0)
	require.True(t, ok)
	require.True(t, g.CheckEdge(0, 1))
	require.True(t, g.CheckEdge(1, 0))

	nbrs0, err := g.Neighbors(0)
	require.NoError(t, err)
	nbrs1, err := g.Neighbors(1)
	require.NoError(t, err)
	require.Equal(t, nbrs0[1], nbrs1[0], "weight multisets at both endpoints must match")
}

func TestAddEdgeIdempotentForIdenticalWeight(t *testing.T) {
	g := graph.NewGraph(2)
	g.AddVertex()
	g.AddVertex()

	require.True(t, g.AddEdge(0, 1, 3.0))
	require.False(t, g.AddEdge(0, 1, 3.0), "duplicate (u,v,w) is a no-op")
	require.True(t, g.AddEdge(0, 1, 4.0), "distinct weight on same pair is a parallel edge")

	nbrs, _ := g.Neighbors(0)
	require.ElementsMatch(t, []float64{3.0, 4.0}, nbrs[1])
}

func TestAddEdgeOutOfRangeIsBenignFalse(t *testing.T) {
	g := graph.NewGraph(1)
	g.AddVertex()
	require.False(t, g.AddEdge(0, 5, 1.0))
	require.False(t, g.AddEdge(-1, 0, 1.0))
}

func TestSelfLoopPermittedButNotDoubleCounted(t *testing.T) {
	g := graph.NewGraph(1)
	g.AddVertex()
	require.True(t, g.AddEdge(0, 0, 2.5))
	nbrs, _ := g.Neighbors(0)
	require.Equal(t, []float64{2.5}, nbrs[0])
}

func TestRemoveEdgeAllAndSingleWeight(t *testing.T) {
	g := graph.NewGraph(2)
	g.AddVertex()
	g.AddVertex()
	g.AddEdge(0, 1, 1.0)
	g.AddEdge(0, 1, 2.0)

	require.True(t, g.RemoveEdgeWeight(0, 1, 1.0))
	require.True(t, g.CheckEdge(0, 1), "one parallel weight remains")
	require.False(t, g.RemoveEdgeWeight(0, 1, 1.0), "already removed")

	require.True(t, g.RemoveEdge(0, 1))
	require.False(t, g.CheckEdge(0, 1))
	require.False(t, g.RemoveEdge(0, 1), "removing an absent edge reports false")
}

func TestDirectedGraphDoesNotMirror(t *testing.T) {
	g := graph.NewGraph(2, graph.WithDirected(true))
	g.AddVertex()
	g.AddVertex()
	require.True(t, g.AddEdge(0, 1, 1.0))
	require.True(t, g.CheckEdge(0, 1))
	require.False(t, g.CheckEdge(1, 0))
}

func TestEdgesMaterializesEachUndirectedPairOnce(t *testing.T) {
	g := graph.NewGraph(3)
	g.AddVertex()
	g.AddVertex()
	g.AddVertex()
	g.AddEdge(0, 1, 1.0)
	g.AddEdge(1, 2, 2.0)

	edges := g.Edges()
	require.Len(t, edges, 2)
	for _, e := range edges {
		require.Less(t, e.U, e.V)
	}
}

func TestColorRoundTrip(t *testing.T) {
	g := graph.NewGraph(1)
	g.AddVertex()
	require.NoError(t, g.SetColor(0, graph.Color{R: 10, G: 20, B: 30}))
	c, err := g.Color(0)
	require.NoError(t, err)
	require.Equal(t, graph.Color{R: 10, G: 20, B: 30}, c)

	_, err = g.Color(7)
	require.ErrorIs(t, err, graph.ErrOutOfRange)
}
