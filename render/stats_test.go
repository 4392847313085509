package render_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pixelgraph/segment/fh"
	"github.com/pixelgraph/segment/graph"
	"github.com/pixelgraph/segment/render"
)

func TestComputeStatsCountsAndAveragesComponents(t *testing.T) {
	g := graph.NewGraph(3)
	g.AddVertex()
	g.AddVertex()
	g.AddVertex()
	g.SetColor(0, graph.Color{R: 0, G: 0, B: 0})
	g.SetColor(1, graph.Color{R: 10, G: 10, B: 10})
	g.SetColor(2, graph.Color{R: 100, G: 100, B: 100})
	g.AddEdge(0, 1, 1.0)

	partition := fh.Segment(g, 100, 0)
	stats, err := render.ComputeStats(g, partition)
	require.NoError(t, err)
	require.Equal(t, 2, stats.ComponentCount)
	require.Len(t, stats.Components, 2)

	var merged, singleton render.ComponentStats
	for _, c := range stats.Components {
		if c.Size == 2 {
			merged = c
		} else {
			singleton = c
		}
	}
	require.Equal(t, graph.Color{R: 5, G: 5, B: 5}, merged.MeanColor)
	require.Equal(t, graph.Color{R: 100, G: 100, B: 100}, singleton.MeanColor)
}

func TestComputeStatsSortsComponentsByRoot(t *testing.T) {
	g := graph.NewGraph(2)
	g.AddVertex()
	g.AddVertex()
	partition := fh.Segment(g, 0, 0)
	stats, err := render.ComputeStats(g, partition)
	require.NoError(t, err)
	require.Len(t, stats.Components, 2)
	require.Less(t, stats.Components[0].Root, stats.Components[1].Root)
}
