package digraph

// Edge is a directed arc with its cost, used for bulk enumeration
// (AllEdges, GetMinimumUndirectedEdges) and as the common shape
// consumed by the arborescence package.
type Edge struct {
	Source, Target int
	Cost           float64
}

// Digraph is a fixed-capacity directed weighted graph with dual
// out/in adjacency. It is owned by a single running algorithm for the
// duration of one run and carries no internal locking: it is never
// shared across goroutines.
type Digraph struct {
	capacity int
	out      []map[int]float64 // out[u][v] = cost of u->v
	in       []map[int]float64 // in[v][u] = cost of u->v
}

// NewDigraph allocates a Digraph over exactly capacity vertices (all
// present from construction: unlike graph.Graph, the arborescence
// engine always operates over a fully materialized vertex set.
func NewDigraph(capacity int) *Digraph {
	d := &Digraph{
		capacity: capacity,
		out:      make([]map[int]float64, capacity),
		in:       make([]map[int]float64, capacity),
	}
	for i := 0; i < capacity; i++ {
		d.out[i] = make(map[int]float64)
		d.in[i] = make(map[int]float64)
	}
	return d
}

// VertexCount returns the number of vertices (equal to Capacity; a
// Digraph has no separate notion of "current size").
func (d *Digraph) VertexCount() int { return d.capacity }

func (d *Digraph) inRange(v int) bool { return v >= 0 && v < d.capacity }
