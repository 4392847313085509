// Package render turns a segmentation partition back into a pixel
// matrix by painting every vertex of a component with that
// component's mean original color, and offers a small set of
// component statistics used by the CLI driver's summary output.
package render
