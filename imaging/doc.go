// Package imaging holds the "external collaborator" concerns around
// the segmentation core: a binary PPM (P6) codec and the small set of
// image filters (grayscale, Gaussian blur, Sobel gradient, random
// recoloring) that prepare a raw image for the grid-graph builder and
// turn a segmentation result back into a viewable PPM. None of this
// carries algorithmic weight; it exists so the CLI driver is runnable
// end to end. Grounded in the filters of the C source this module's
// segmentation core was distilled from, reimplemented idiomatically.
package imaging
