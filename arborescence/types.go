package arborescence

import (
	"errors"
	"math"
)

// ErrContractionExpansionMismatch indicates an internal bug: during
// Chu-Liu expansion, a contracted edge chosen by the recursive result
// could not be mapped back to a remembered original edge. A caller
// seeing this error should treat the run as aborted, not as an
// ordinary "no arborescence exists" outcome.
var ErrContractionExpansionMismatch = errors.New("arborescence: contracted edge has no remembered original (contraction/expansion mismatch)")

var infiniteCost = math.Inf(1)

// Result is the outcome of a minimum-cost arborescence computation
// rooted at Root. ParentOf[Root] is always -1. When IsComplete is
// false, the computation could not produce a full arborescence and the
// remaining ParentOf entries are unspecified (left at -1); callers
// must not treat them as meaningful.
type Result struct {
	ParentOf      []int
	EdgeCosts     []float64
	TotalTreeCost float64
	Root          int
	IsComplete    bool
}

func newResult(n, root int) *Result {
	r := &Result{
		ParentOf:  make([]int, n),
		EdgeCosts: make([]float64, n),
		Root:      root,
	}
	for i := range r.ParentOf {
		r.ParentOf[i] = -1
	}
	return r
}

// internalResult is the recursion-private shape used while the
// contraction runs: parent pointers, edge costs, a success flag and an
// error, with no root or total-cost bookkeeping (the public wrapper
// computes those once).
type internalResult struct {
	success bool
	err     error
	parent  []int
	costs   []float64
}

func newInternalResult(n int) *internalResult {
	ir := &internalResult{
		success: true,
		parent:  make([]int, n),
		costs:   make([]float64, n),
	}
	for i := range ir.parent {
		ir.parent[i] = -1
	}
	return ir
}
