// Package gridgraph turns three same-sized pixel matrices (the original
// colors, a smoothed color matrix and a gradient-magnitude matrix) into
// an 8-connected *graph.Graph whose edge weight blends a color-distance
// term with a local gradient term.
//
// What:
//
//   - Builds one vertex per pixel (id = y*width+x), recording the pixel's
//     original (unsmoothed) RGB color for later painting.
//   - Emits up to four edges per pixel, right/down/down-right/down-left,
//     so each undirected pair is considered exactly once.
//   - Composite weight w = alpha*colorDistance + beta*gradientTerm.
//   - An optional absolute floor drops edges below a threshold.
//
// Why:
//
//   - Decouples the grid topology (Options, the connectivity pattern)
//     from the weighted-graph algorithms built on top of it (fh,
//     arborescence), which only ever see a *graph.Graph.
//
// Complexity: O(W*H) time and memory for a W*H image.
package gridgraph
