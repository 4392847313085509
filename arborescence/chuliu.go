package arborescence

import "github.com/pixelgraph/segment/digraph"

// FindMinimumCostArborescence computes the minimum-cost arborescence
// of g rooted at root using the recursive Chu-Liu/Edmonds contraction.
// It returns a non-nil error only for ErrContractionExpansionMismatch,
// an internal bug signal; ordinary impossibility (some non-root vertex
// unreachable by any incoming edge) is reported through
// Result.IsComplete instead.
func FindMinimumCostArborescence(g *digraph.Digraph, root int) (*Result, error) {
	n := g.VertexCount()
	result := newResult(n, root)
	if root < 0 || root >= n {
		return result, nil
	}

	internal := runChuLiu(g, root)
	if internal.err != nil {
		return result, internal.err
	}
	if !internal.success {
		return result, nil
	}

	for v := 0; v < n; v++ {
		if v == root {
			result.ParentOf[v] = -1
			result.EdgeCosts[v] = 0
			continue
		}
		result.ParentOf[v] = internal.parent[v]
		result.EdgeCosts[v] = internal.costs[v]
		if result.ParentOf[v] == -1 {
			result.IsComplete = false
			return result, nil
		}
		result.TotalTreeCost += result.EdgeCosts[v]
	}
	result.IsComplete = true
	return result, nil
}

// edgeKey identifies one directed arc between contracted components.
type edgeKey struct{ from, to int }

// contractedEdgeInfo remembers, for a chosen contracted arc, the
// original edge it came from so expansion can overwrite the displaced
// parent pointer with the real (source, target, cost) triple.
type contractedEdgeInfo struct {
	originalSource int
	originalTarget int
	originalCost   float64
}

func runChuLiu(g *digraph.Digraph, root int) *internalResult {
	n := g.VertexCount()
	result := newInternalResult(n)

	if n == 0 || root < 0 || root >= n {
		result.success = false
		return result
	}

	cheapest := findCheapestIncomingEdges(g, root)

	for v := 0; v < n; v++ {
		if v == root {
			continue
		}
		if cheapest[v].Source == -1 {
			result.success = false
			return result
		}
	}

	cycles := detectCycles(cheapest, n, root)

	if len(cycles.cycles) == 0 {
		for v := 0; v < n; v++ {
			if v == root {
				continue
			}
			result.parent[v] = cheapest[v].Source
			result.costs[v] = cheapest[v].Cost
		}
		return result
	}

	cycleCount := len(cycles.cycles)
	componentID := make([]int, n)
	for v := 0; v < n; v++ {
		componentID[v] = cycles.cycleIDOfVertex[v]
	}
	nextID := cycleCount
	for v := 0; v < n; v++ {
		if componentID[v] == -1 {
			componentID[v] = nextID
			nextID++
		}
	}
	contractedVertices := nextID
	contractedRoot := componentID[root]

	contracted := digraph.NewDigraph(contractedVertices)
	allEdges := g.AllEdges()
	edgeMapping := make(map[edgeKey]contractedEdgeInfo, len(allEdges))

	for _, e := range allEdges {
		fromComp := componentID[e.Source]
		toComp := componentID[e.Target]
		if fromComp == toComp {
			continue
		}

		adjustedCost := e.Cost
		if cycles.cycleIDOfVertex[e.Target] != -1 {
			adjustedCost -= cheapest[e.Target].Cost
		}

		key := edgeKey{fromComp, toComp}
		currentCost, hasConnection := contracted.ConnectionCost(fromComp, toComp)
		better := !hasConnection || adjustedCost < currentCost
		if !better && adjustedCost == currentCost {
			// Equal adjusted costs: prefer the smaller original source id
			// (then target id) so the choice does not depend on map order.
			prev := edgeMapping[key]
			better = e.Source < prev.originalSource ||
				(e.Source == prev.originalSource && e.Target < prev.originalTarget)
		}
		if better {
			contracted.Connect(fromComp, toComp, adjustedCost)
			edgeMapping[key] = contractedEdgeInfo{
				originalSource: e.Source,
				originalTarget: e.Target,
				originalCost:   e.Cost,
			}
		}
	}

	contractedResult := runChuLiu(contracted, contractedRoot)
	if contractedResult.err != nil {
		result.err = contractedResult.err
		result.success = false
		return result
	}
	if !contractedResult.success {
		result.success = false
		return result
	}

	for v := 0; v < n; v++ {
		if v == root {
			continue
		}
		result.parent[v] = cheapest[v].Source
		result.costs[v] = cheapest[v].Cost
	}

	for comp := 0; comp < contractedVertices; comp++ {
		if comp == contractedRoot {
			continue
		}
		parentComp := contractedResult.parent[comp]
		if parentComp == -1 {
			continue
		}

		mapped, ok := edgeMapping[edgeKey{parentComp, comp}]
		if !ok {
			result.success = false
			result.err = ErrContractionExpansionMismatch
			return result
		}

		result.parent[mapped.originalTarget] = mapped.originalSource
		result.costs[mapped.originalTarget] = mapped.originalCost
	}

	return result
}

// findCheapestIncomingEdges picks, for every non-root vertex, the
// lowest-cost incoming arc, breaking ties by smallest source id. The
// result is independent of map iteration order: a candidate only
// replaces the stored choice on strict cost improvement, or on a tied
// cost with a smaller source id than the one currently held.
func findCheapestIncomingEdges(g *digraph.Digraph, root int) []digraph.Edge {
	n := g.VertexCount()
	cheapest := make([]digraph.Edge, n)
	minCost := make([]float64, n)
	for v := range cheapest {
		cheapest[v] = digraph.Edge{Source: -1, Target: v}
		minCost[v] = infiniteCost
	}

	for v := 0; v < n; v++ {
		if v == root {
			continue
		}
		for u, cost := range g.IncomingTo(v) {
			if cost < minCost[v] || (cost == minCost[v] && u < cheapest[v].Source) {
				minCost[v] = cost
				cheapest[v] = digraph.Edge{Source: u, Target: v, Cost: cost}
			}
		}
	}
	return cheapest
}

type cycleDetection struct {
	cycleIDOfVertex []int
	cycles          [][]int
}

// detectCycles walks the cheapest-incoming pointers backward from
// every vertex. Since each non-root vertex has exactly one outgoing
// pointer in this selected-edge graph, a walk either reaches root (no
// cycle along this path) or revisits a vertex tagged during the same
// walk, which closes a cycle.
func detectCycles(cheapest []digraph.Edge, n, root int) cycleDetection {
	cycleID := make([]int, n)
	for i := range cycleID {
		cycleID[i] = -1
	}
	visitTag := make([]int, n)
	for i := range visitTag {
		visitTag[i] = -1
	}
	var cycles [][]int
	cycleIndex := 0

	for start := 0; start < n; start++ {
		if start == root || cycleID[start] != -1 {
			continue
		}

		current := start
		for current != root && current != -1 && cycleID[current] == -1 && visitTag[current] != start {
			visitTag[current] = start
			current = cheapest[current].Source
		}

		if current != root && current != -1 && cycleID[current] == -1 {
			node := current
			var cycle []int
			for {
				cycle = append(cycle, node)
				cycleID[node] = cycleIndex
				node = cheapest[node].Source
				if node == current || node == -1 {
					break
				}
			}
			cycles = append(cycles, cycle)
			cycleIndex++
		}
	}

	return cycleDetection{cycleIDOfVertex: cycleID, cycles: cycles}
}
