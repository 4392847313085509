// Package arborescence computes minimum-cost arborescences over a
// digraph.Digraph using the Chu-Liu/Edmonds recursive contraction
// scheme, with an iterative heaviest-edge-removal fallback for callers
// that prefer to avoid recursion. It also exposes an alternative
// "segmentation mode" that bypasses the Chu-Liu core entirely and
// drives the same union-find abstraction as the fh package, operating
// on the digraph's consolidated undirected view.
package arborescence
