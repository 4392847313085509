package arborescence

import "github.com/pixelgraph/segment/digraph"

// FindMinimumCostArborescenceIterative is a heuristic alternative to
// FindMinimumCostArborescence. It repeatedly selects each vertex's
// cheapest incoming edge, and whenever that selection contains a
// cycle, removes the heaviest selected edge inside each cycle from a
// working copy of the graph and tries again. It converges quickly on
// near-tree directed graphs (the MST-like pixel graphs this package is
// built for) but is not guaranteed optimal in general, unlike the
// recursive contraction in FindMinimumCostArborescence. It gives up
// and reports an incomplete result if re-selection ever leaves a
// non-root vertex with no incoming edge, or if maxIterations rounds
// pass without reaching a fixed point.
func FindMinimumCostArborescenceIterative(g *digraph.Digraph, root int, maxIterations int) *Result {
	n := g.VertexCount()
	result := newResult(n, root)
	if root < 0 || root >= n {
		return result
	}

	working := g.Clone()

	for iteration := 0; iteration < maxIterations; iteration++ {
		cheapest := findCheapestIncomingEdges(working, root)

		missing := false
		for v := 0; v < n; v++ {
			if v == root {
				continue
			}
			if cheapest[v].Source == -1 {
				missing = true
				break
			}
		}
		if missing {
			return result
		}

		cycles := detectCycles(cheapest, n, root)
		if len(cycles.cycles) == 0 {
			for v := 0; v < n; v++ {
				if v == root {
					continue
				}
				result.ParentOf[v] = cheapest[v].Source
				result.EdgeCosts[v] = cheapest[v].Cost
				result.TotalTreeCost += cheapest[v].Cost
			}
			result.IsComplete = true
			return result
		}

		for _, cycle := range cycles.cycles {
			heaviestVertex := cycle[0]
			for _, v := range cycle[1:] {
				if cheapest[v].Cost > cheapest[heaviestVertex].Cost {
					heaviestVertex = v
				}
			}
			working.Disconnect(cheapest[heaviestVertex].Source, heaviestVertex)
		}
	}

	return result
}
