package graph

import "sort"

// AddEdge inserts an edge u->v with weight w. On an undirected graph it
// also mirrors v->u (unless u==v, since a self-loop's multiset already
// lives at the single endpoint and downstream algorithms ignore
// self-loops regardless).
//
// Policy: at most one copy of a given real weight per (u,v) pair. A
// repeated AddEdge(u,v,w) with an identical w is a no-op and reports
// false, but a distinct weight on the same pair is accepted as a
// parallel edge.
//
// Returns false (never panics, never errors) if either endpoint is out
// of range, matching the "benign false return" policy for mutators.
//
// Complexity: O(d) to scan the existing weight multiset for duplicates,
// where d is the current multiplicity between u and v.
func (g *Graph) AddEdge(u, v int, w float64) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	if containsWeight(g.adjacency[u][v], w) {
		return false
	}
	g.adjacency[u][v] = append(g.adjacency[u][v], w)
	if !g.directed && u != v {
		g.adjacency[v][u] = append(g.adjacency[v][u], w)
	}
	return true
}

// CheckEdge reports whether at least one edge exists between u and v
// (in the u->v direction for directed graphs). Out-of-range endpoints
// report false.
func (g *Graph) CheckEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	return len(g.adjacency[u][v]) > 0
}

// RemoveEdge removes every parallel weight between u and v (and its
// mirror on undirected graphs). Returns false if the edge was absent or
// an endpoint is out of range.
func (g *Graph) RemoveEdge(u, v int) bool {
	if !g.CheckEdge(u, v) {
		return false
	}
	delete(g.adjacency[u], v)
	if !g.directed && u != v {
		delete(g.adjacency[v], u)
	}
	return true
}

// RemoveEdgeWeight removes exactly one occurrence of weight w between u
// and v (and its mirror). Returns false if no edge of that exact weight
// exists, or an endpoint is out of range.
func (g *Graph) RemoveEdgeWeight(u, v int, w float64) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	if !removeOneWeight(g.adjacency[u], v, w) {
		return false
	}
	if !g.directed && u != v {
		removeOneWeight(g.adjacency[v], u, w)
	}
	return true
}

// Neighbors returns the full neighbor->weight-multiset adjacency of v.
// The returned map is owned by the graph and must be treated as
// read-only by the caller. Reports ErrOutOfRange for a vertex id
// outside the current size.
//
// Complexity: O(1).
func (g *Graph) Neighbors(v int) (map[int][]float64, error) {
	if !g.inRange(v) {
		return nil, ErrOutOfRange
	}
	return g.adjacency[v], nil
}

// NeighborIDs returns the sorted, deduplicated list of vertices adjacent
// to v. Deterministic ordering makes it safe to use in golden tests.
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	nbrs, err := g.Neighbors(v)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(nbrs))
	for id := range nbrs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

// MinWeight returns the minimum weight among the parallel edges u->v,
// and whether any edge exists at all. Used by digraph.FromWeightedGraph
// to consolidate parallel edges to their cheapest representative
// before processing.
func (g *Graph) MinWeight(u, v int) (float64, bool) {
	if !g.inRange(u) || !g.inRange(v) {
		return 0, false
	}
	weights := g.adjacency[u][v]
	if len(weights) == 0 {
		return 0, false
	}
	min := weights[0]
	for _, w := range weights[1:] {
		if w < min {
			min = w
		}
	}
	return min, true
}

// EdgeCount returns the total number of directed arcs stored (an
// undirected edge between two distinct vertices counts as one logical
// edge but is stored, and counted, at both endpoints here divided by
// two in Edges()). Parallel weights each count separately.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, nbrs := range g.adjacency[:g.size] {
		for _, weights := range nbrs {
			total += len(weights)
		}
	}
	return total
}

// UndirectedEdge is one materialized parallel-weight entry with u<v,
// as produced by Edges() for undirected graphs.
type UndirectedEdge struct {
	U, V   int
	Weight float64
}

// Edges materializes every undirected edge exactly once (u<v), one
// entry per parallel weight, self-loops excluded. Panics-free: callers
// must only call this on an undirected graph; on a directed graph it
// returns only the arcs u->v with u<v and omits every arc from a larger
// to a smaller id, so callers needing true directed edges should walk
// Neighbors directly instead.
//
// Complexity: O(V+E).
func (g *Graph) Edges() []UndirectedEdge {
	out := make([]UndirectedEdge, 0, g.EdgeCount()/2+1)
	for u := 0; u < g.size; u++ {
		for v, weights := range g.adjacency[u] {
			if v <= u {
				continue // each undirected pair visited once, from the smaller endpoint
			}
			for _, w := range weights {
				out = append(out, UndirectedEdge{U: u, V: v, Weight: w})
			}
		}
	}
	return out
}

func containsWeight(weights []float64, w float64) bool {
	for _, existing := range weights {
		if existing == w {
			return true
		}
	}
	return false
}

func removeOneWeight(adj map[int][]float64, v int, w float64) bool {
	weights, ok := adj[v]
	if !ok {
		return false
	}
	for i, existing := range weights {
		if existing == w {
			weights[i] = weights[len(weights)-1]
			weights = weights[:len(weights)-1]
			if len(weights) == 0 {
				delete(adj, v)
			} else {
				adj[v] = weights
			}
			return true
		}
	}
	return false
}
