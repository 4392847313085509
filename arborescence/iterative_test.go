package arborescence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pixelgraph/segment/arborescence"
	"github.com/pixelgraph/segment/digraph"
)

func TestFindMinimumCostArborescenceIterativeOnAcyclicGraph(t *testing.T) {
	d := digraph.NewDigraph(4)
	d.Connect(0, 1, 2)
	d.Connect(0, 2, 1)
	d.Connect(1, 3, 3)
	d.Connect(2, 3, 1)

	result := arborescence.FindMinimumCostArborescenceIterative(d, 0, 10)
	require.True(t, result.IsComplete)
	require.Equal(t, []int{-1, 0, 0, 2}, result.ParentOf)
	require.Equal(t, 4.0, result.TotalTreeCost)
}

func TestFindMinimumCostArborescenceIterativeResolvesACycle(t *testing.T) {
	d := digraph.NewDigraph(3)
	d.Connect(0, 1, 10)
	d.Connect(1, 2, 1)
	d.Connect(2, 1, 1)

	result := arborescence.FindMinimumCostArborescenceIterative(d, 0, 10)
	require.True(t, result.IsComplete)
	require.Equal(t, -1, result.ParentOf[0])
}

func TestFindMinimumCostArborescenceIterativeReportsImpossible(t *testing.T) {
	d := digraph.NewDigraph(3)
	d.Connect(1, 2, 1)

	result := arborescence.FindMinimumCostArborescenceIterative(d, 0, 10)
	require.False(t, result.IsComplete)
}

func TestFindMinimumCostArborescenceIterativeDoesNotMutateOriginalGraph(t *testing.T) {
	d := digraph.NewDigraph(3)
	d.Connect(0, 1, 10)
	d.Connect(1, 2, 1)
	d.Connect(2, 1, 1)
	edgesBefore := d.EdgeCount()

	arborescence.FindMinimumCostArborescenceIterative(d, 0, 10)

	require.Equal(t, edgesBefore, d.EdgeCount())
}

func TestFindMinimumCostArborescenceIterativeGivesUpAfterMaxIterations(t *testing.T) {
	d := digraph.NewDigraph(3)
	d.Connect(0, 1, 10)
	d.Connect(1, 2, 1)
	d.Connect(2, 1, 1)

	result := arborescence.FindMinimumCostArborescenceIterative(d, 0, 0)
	require.False(t, result.IsComplete)
}
