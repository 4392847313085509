package fh

import (
	"sort"

	"github.com/pixelgraph/segment/graph"
)

// Edge is the minimal edge shape the segmenter needs: two endpoints and
// a weight. graph.UndirectedEdge and digraph's consolidated edges both
// convert trivially to it, letting the arborescence package's
// segmentation mode drive this same scan without importing
// graph.Graph.
type Edge struct {
	U, V   int
	Weight float64
}

// Partition is the equivalence-class result of a segmentation run: a
// fully path-compressed UnionFind where Find(v) is guaranteed O(1).
type Partition struct {
	uf *UnionFind
	n  int
}

// Find returns the root (component id) of vertex v.
func (p *Partition) Find(v int) int { return p.uf.Find(v) }

// Size returns the size of v's component.
func (p *Partition) Size(v int) int { return p.uf.Size(v) }

// InternalCost returns the internal difference of v's component.
func (p *Partition) InternalCost(v int) float64 { return p.uf.InternalCost(v) }

// Roots returns the sorted, deduplicated list of component
// representatives across all n vertices.
func (p *Partition) Roots() []int {
	seen := make(map[int]struct{})
	for v := 0; v < p.n; v++ {
		seen[p.uf.Find(v)] = struct{}{}
	}
	roots := make([]int, 0, len(seen))
	for r := range seen {
		roots = append(roots, r)
	}
	sort.Ints(roots)
	return roots
}

// Members groups every vertex in [0,n) by its root, returning each
// group's members sorted ascending.
func (p *Partition) Members() map[int][]int {
	groups := make(map[int][]int)
	for v := 0; v < p.n; v++ {
		r := p.uf.Find(v)
		groups[r] = append(groups[r], v)
	}
	return groups
}

// Segment runs the Felzenszwalb segmenter over an undirected weighted
// *graph.Graph: materialize every parallel edge,
// sort ascending by weight with a deterministic (u,v) tie-break,
// scan-and-union under the FH predicate, optionally force-merge any
// component smaller than minSize, and finish with a full compression
// pass.
//
// minSize == 0 disables the cleanup pass.
func Segment(g *graph.Graph, k float64, minSize int) *Partition {
	return RunFromEdges(g.VertexCount(), toFHEdges(g.Edges()), k, minSize)
}

// RunFromEdges is the edge-list-driven core of Segment, reusable by
// any caller that already has a flat, deduplicated undirected edge list
// (notably arborescence.Segment, which drives this over its
// consolidated minimum-weight directed-graph edges instead of a
// *graph.Graph).
func RunFromEdges(n int, edges []Edge, k float64, minSize int) *Partition {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight < edges[j].Weight
		}
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})

	uf := NewUnionFind(n)
	for _, e := range edges {
		uf.Union(e.U, e.V, e.Weight, k)
	}

	if minSize > 0 {
		for _, e := range edges {
			ru, rv := uf.Find(e.U), uf.Find(e.V)
			if ru == rv {
				continue
			}
			if uf.size[ru] < minSize || uf.size[rv] < minSize {
				uf.ForceMerge(e.U, e.V)
			}
		}
	}

	uf.Compress()

	return &Partition{uf: uf, n: n}
}

func toFHEdges(ue []graph.UndirectedEdge) []Edge {
	edges := make([]Edge, len(ue))
	for i, e := range ue {
		edges[i] = Edge{U: e.U, V: e.V, Weight: e.Weight}
	}
	return edges
}
