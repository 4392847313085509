// Package segment implements an image segmentation pipeline: a
// pixel-graph builder with composite color+gradient edge weights, a
// Felzenszwalb-Huttenlocher region-merging segmenter over a
// union-find, and a minimum-cost arborescence engine (Chu-Liu/Edmonds
// with an iterative cycle-breaking fallback) that doubles as an
// alternative segmentation driver.
//
// Subpackages:
//
//	graph/         : undirected/directed weighted pixel-graph container
//	gridgraph/     : builds a graph/Graph from pixel matrices
//	fh/            : Felzenszwalb-Huttenlocher union-find and segmenter
//	digraph/       : directed-graph container the arborescence engine uses
//	arborescence/  : Chu-Liu/Edmonds minimum-cost arborescence engine
//	render/        : paints a partition back into a pixel matrix
//	imaging/       : PPM codec and image filters (blur, Sobel, grayscale)
//	cmd/segment/   : CLI driver tying the pipeline together
//
// The pipeline is single-threaded and CPU-bound: a graph, union-find,
// or directed-graph structure is owned by one running algorithm and is
// never shared across goroutines, so none of these types carry
// internal locking.
package segment
