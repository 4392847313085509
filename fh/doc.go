// Package fh implements the Felzenszwalb-Huttenlocher region-merging
// segmenter: a union-find with a per-component "internal difference"
// threshold, driven by a sorted scan of a weighted graph's edges.
//
// UnionFind is the reusable primitive (size + internal cost per root,
// the MInt merge predicate, ForceMerge for cleanup). Segment drives it
// to completion over a *graph.Graph. Both the pure FH segmenter and
// the arborescence package's segmentation mode share this same
// UnionFind rather than duplicating the merge logic: the two
// segmenters are alternative drivers over one union-find abstraction,
// not a class hierarchy.
package fh
