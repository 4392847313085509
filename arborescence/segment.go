package arborescence

import (
	"github.com/pixelgraph/segment/digraph"
	"github.com/pixelgraph/segment/fh"
)

// Segment runs the "Edmonds segmentation" mode: it bypasses the
// Chu-Liu core entirely and drives the same fh.UnionFind abstraction
// used by the direct graph segmenter (fh.Segment), but over d's
// consolidated minimum-weight undirected view rather than over a
// graph.Graph. The two segmenters are equivalent in spirit (both
// drive the same union-find abstraction behind two concrete paths
// into it) and may disagree in practice only insofar as d's edge set
// differs from the originating weighted graph's.
func Segment(d *digraph.Digraph, k float64, minSize int) *fh.Partition {
	edges := d.GetMinimumUndirectedEdges()
	fhEdges := make([]fh.Edge, len(edges))
	for i, e := range edges {
		fhEdges[i] = fh.Edge{U: e.Source, V: e.Target, Weight: e.Cost}
	}
	return fh.RunFromEdges(d.VertexCount(), fhEdges, k, minSize)
}
