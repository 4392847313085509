package digraph

// Connect inserts or overwrites the arc u->v with the given cost.
// Returns false if either endpoint is out of range.
func (d *Digraph) Connect(u, v int, cost float64) bool {
	if !d.inRange(u) || !d.inRange(v) {
		return false
	}
	d.out[u][v] = cost
	d.in[v][u] = cost
	return true
}

// Disconnect removes the arc u->v, keeping out/in maps consistent.
// Returns false if the arc was absent or an endpoint is out of range.
func (d *Digraph) Disconnect(u, v int) bool {
	if !d.inRange(u) || !d.inRange(v) {
		return false
	}
	if _, ok := d.out[u][v]; !ok {
		return false
	}
	delete(d.out[u], v)
	delete(d.in[v], u)
	return true
}

// HasConnection reports whether an arc u->v exists.
func (d *Digraph) HasConnection(u, v int) bool {
	if !d.inRange(u) || !d.inRange(v) {
		return false
	}
	_, ok := d.out[u][v]
	return ok
}

// ConnectionCost returns the cost of arc u->v and whether it exists.
func (d *Digraph) ConnectionCost(u, v int) (float64, bool) {
	if !d.inRange(u) || !d.inRange(v) {
		return 0, false
	}
	cost, ok := d.out[u][v]
	return cost, ok
}

// OutgoingFrom returns the target->cost map of arcs leaving v. The
// returned map is owned by the Digraph and must be treated read-only.
func (d *Digraph) OutgoingFrom(v int) map[int]float64 {
	if !d.inRange(v) {
		return nil
	}
	return d.out[v]
}

// IncomingTo returns the source->cost map of arcs entering v. The
// returned map is owned by the Digraph and must be treated read-only.
func (d *Digraph) IncomingTo(v int) map[int]float64 {
	if !d.inRange(v) {
		return nil
	}
	return d.in[v]
}

// AllEdges enumerates every directed arc in the graph. Order is not
// guaranteed; callers needing determinism should sort the result.
func (d *Digraph) AllEdges() []Edge {
	edges := make([]Edge, 0)
	for u := 0; u < d.capacity; u++ {
		for v, cost := range d.out[u] {
			edges = append(edges, Edge{Source: u, Target: v, Cost: cost})
		}
	}
	return edges
}

// EdgeCount returns the total number of directed arcs.
func (d *Digraph) EdgeCount() int {
	total := 0
	for u := 0; u < d.capacity; u++ {
		total += len(d.out[u])
	}
	return total
}

// Clone returns a deep copy of the Digraph, used by the arborescence
// engine's iterative fallback to prune edges without mutating the
// caller's original graph.
func (d *Digraph) Clone() *Digraph {
	clone := NewDigraph(d.capacity)
	for u := 0; u < d.capacity; u++ {
		for v, cost := range d.out[u] {
			clone.Connect(u, v, cost)
		}
	}
	return clone
}
