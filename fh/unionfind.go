package fh

// UnionFind is a disjoint-set structure augmented, per Felzenszwalb and
// Huttenlocher, with the size and internal difference of each
// component. It is built fresh for one segmentation run and is not
// safe to share across goroutines.
type UnionFind struct {
	parent       []int
	size         []int
	internalCost []float64
}

// NewUnionFind allocates a UnionFind over n singleton components, each
// with size 1 and internal cost 0.
func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{
		parent:       make([]int, n),
		size:         make([]int, n),
		internalCost: make([]float64, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

// Find returns the root of x's component, compressing every visited
// node's parent pointer directly to the root along the way.
//
// Complexity: amortized O(alpha(n)) with path compression.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[x] != root {
		uf.parent[x], x = root, uf.parent[x]
	}
	return root
}

// Size returns the size of the component containing v.
func (uf *UnionFind) Size(v int) int { return uf.size[uf.Find(v)] }

// InternalCost returns the internal difference (the largest edge
// weight ever admitted) of the component containing v; 0 for a
// singleton.
func (uf *UnionFind) InternalCost(v int) float64 { return uf.internalCost[uf.Find(v)] }

// Threshold computes the FH merge threshold MInt for the candidate
// edge (u,v,w) at scale k: min(I(root(u)) + k/|root(u)|, I(root(v)) +
// k/|root(v)|). Exposed so tests (and the arborescence segmenter) can
// check the admission predicate without re-deriving it.
func (uf *UnionFind) Threshold(u, v int, k float64) float64 {
	ru, rv := uf.Find(u), uf.Find(v)
	tu := uf.internalCost[ru] + k/float64(uf.size[ru])
	tv := uf.internalCost[rv] + k/float64(uf.size[rv])
	return min(tu, tv)
}

// Union applies the FH merge predicate to candidate edge (u,v,w) at
// scale k: admits it (merging the two components, smaller into larger)
// iff w <= MInt(root(u), root(v)). Returns true iff the edge was
// admitted and an actual merge occurred (u and v in distinct
// components beforehand).
//
// On admission the merged root's internal cost becomes w, which is
// always >= the previous internal costs of both sides because callers
// are expected to process edges in non-decreasing weight order.
func (uf *UnionFind) Union(u, v int, w, k float64) bool {
	ru, rv := uf.Find(u), uf.Find(v)
	if ru == rv {
		return false
	}
	if w > uf.Threshold(u, v, k) {
		return false
	}
	uf.merge(ru, rv, w)
	return true
}

// ForceMerge unconditionally unions the components of u and v,
// preserving the larger of the two internal costs. Used only by the
// optional minimum-region-size cleanup pass; it never applies the
// MInt predicate.
func (uf *UnionFind) ForceMerge(u, v int) {
	ru, rv := uf.Find(u), uf.Find(v)
	if ru == rv {
		return
	}
	cost := uf.internalCost[ru]
	if uf.internalCost[rv] > cost {
		cost = uf.internalCost[rv]
	}
	uf.merge(ru, rv, cost)
}

// merge attaches the smaller root under the larger and records the
// merged internal cost. ru and rv must already be distinct roots.
func (uf *UnionFind) merge(ru, rv int, internalCost float64) {
	if uf.size[ru] < uf.size[rv] {
		ru, rv = rv, ru
	}
	uf.parent[rv] = ru
	uf.size[ru] += uf.size[rv]
	uf.internalCost[ru] = internalCost
}

// Compress resolves every parent pointer directly to its root, so that
// a subsequent Find is O(1) for every vertex. Used as the final step
// of a segmentation run to guarantee find(i) is stable thereafter.
func (uf *UnionFind) Compress() {
	for i := range uf.parent {
		uf.parent[i] = uf.Find(i)
	}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
