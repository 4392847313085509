// Package graph is the weighted pixel-graph container shared by the
// segmenters in this module.
//
// A Graph holds a dense set of integer vertex ids in [0, capacity), each
// carrying the original RGB color of the pixel it represents, plus an
// adjacency structure that maps a vertex to its neighbors and, for every
// neighbor, the multiset of parallel edge weights between them. The
// container supports both directed and undirected graphs; undirected
// edges are mirrored at both endpoints so that callers never need to
// special-case orientation when walking adjacency.
//
// Graphs in this package are not safe for concurrent mutation from
// multiple goroutines: they are owned by a single running algorithm for
// the duration of one segmentation and are never shared across threads,
// so no internal locking is performed.
package graph
