package digraph

import "github.com/pixelgraph/segment/graph"

// FromWeightedGraph derives a Digraph from a *graph.Graph: parallel
// weights between (u,v) collapse to their minimum before insertion,
// then u->v is inserted with that weight for every adjacency. For an
// undirected source graph this naturally produces both u->v and v->u
// (with equal weight, since the source graph's multisets are
// symmetric by construction) because both endpoints are visited while
// iterating. Self-loops are dropped; they are meaningless to every
// downstream directed algorithm.
//
// Complexity: O(V+E).
func FromWeightedGraph(g *graph.Graph) *Digraph {
	n := g.VertexCount()
	d := NewDigraph(n)
	for u := 0; u < n; u++ {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			continue
		}
		for v := range nbrs {
			if v == u {
				continue
			}
			if w, ok := g.MinWeight(u, v); ok {
				d.Connect(u, v, w)
			}
		}
	}
	return d
}

// GetMinimumUndirectedEdges consolidates this Digraph's directed arcs
// into one edge per unordered pair (u,v), with cost equal to the
// minimum of the two directions (missing directions are simply
// absent from the min). Self-loops are excluded. Used by the
// arborescence package's segmentation mode.
//
// Complexity: O(V+E).
func (d *Digraph) GetMinimumUndirectedEdges() []Edge {
	edges := make([]Edge, 0, d.EdgeCount()/2+1)
	for u := 0; u < d.capacity; u++ {
		candidates := make(map[int]struct{})
		for v := range d.out[u] {
			if v > u {
				candidates[v] = struct{}{}
			}
		}
		for v := range d.in[u] {
			if v > u {
				candidates[v] = struct{}{}
			}
		}
		for v := range candidates {
			cost, found := d.out[u][v]
			if rev, ok := d.in[u][v]; ok && (!found || rev < cost) {
				cost, found = rev, true
			}
			if found {
				edges = append(edges, Edge{Source: u, Target: v, Cost: cost})
			}
		}
	}
	return edges
}
