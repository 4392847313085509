package gridgraph

import "errors"

// Sentinel errors for grid-graph construction.
var (
	// ErrEmptyGrid indicates an input matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input matrix must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrDimensionMismatch indicates the original, smoothed, and gradient
	// matrices passed to Build do not share identical dimensions.
	ErrDimensionMismatch = errors.New("gridgraph: original, smoothed color, and gradient matrices must share dimensions")
)

// Options tunes the composite edge weight and the optional floor
// filter. Defaults: Alpha=1.1, Beta=0.45, Floor=0.
type Options struct {
	// Alpha weights the color-distance term d_c.
	Alpha float64
	// Beta weights the gradient term d_g.
	Beta float64
	// Floor drops any edge with composite weight < Floor. Zero disables
	// filtering (the default).
	Floor float64
}

// DefaultOptions returns the builder's documented default parameters.
func DefaultOptions() Options {
	return Options{Alpha: 1.1, Beta: 0.45, Floor: 0}
}
