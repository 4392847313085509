package render

import (
	"math"
	"sort"

	"github.com/pixelgraph/segment/fh"
	"github.com/pixelgraph/segment/graph"
)

// ComponentStats summarizes one segmentation component: its root
// vertex id, member count, and mean original color.
type ComponentStats struct {
	Root      int
	Size      int
	MeanColor graph.Color
}

// Stats summarizes a whole partition, used by the CLI driver to print
// a one-line-per-run segmentation summary.
type Stats struct {
	ComponentCount int
	Components     []ComponentStats
}

// ComputeStats builds a Stats for partition over g, with Components
// sorted by root id for deterministic output.
func ComputeStats(g *graph.Graph, partition *fh.Partition) (Stats, error) {
	members := partition.Members()
	stats := Stats{
		ComponentCount: len(members),
		Components:     make([]ComponentStats, 0, len(members)),
	}

	for root, vertices := range members {
		var sum [3]float64
		for _, v := range vertices {
			c, err := g.Color(v)
			if err != nil {
				return Stats{}, err
			}
			sum[0] += float64(c.R)
			sum[1] += float64(c.G)
			sum[2] += float64(c.B)
		}
		count := float64(len(vertices))
		stats.Components = append(stats.Components, ComponentStats{
			Root: root,
			Size: len(vertices),
			MeanColor: graph.Color{
				R: int(math.Round(sum[0] / count)),
				G: int(math.Round(sum[1] / count)),
				B: int(math.Round(sum[2] / count)),
			},
		})
	}

	sort.Slice(stats.Components, func(i, j int) bool {
		return stats.Components[i].Root < stats.Components[j].Root
	})

	return stats, nil
}
