package gridgraph

import (
	"math"

	"github.com/pixelgraph/segment/graph"
)

// neighborOffset is one of the four forward directions considered per
// pixel so that every undirected pair is visited exactly once.
type neighborOffset struct{ dx, dy int }

var forwardOffsets = []neighborOffset{
	{dx: 1, dy: 0},  // right
	{dx: 0, dy: 1},  // down
	{dx: 1, dy: 1},  // down-right
	{dx: -1, dy: 1}, // down-left
}

// Build constructs an 8-connected *graph.Graph from three same-sized
// pixel matrices, all indexed [y][x]:
//
//   - original holds the unsmoothed RGB color of each pixel; it is
//     copied verbatim onto the corresponding vertex and is what the
//     renderer later uses for mean-color painting.
//   - smoothed holds the (typically blurred) RGB color used to compute
//     the color-distance term d_c between neighbors.
//   - gradient holds the scalar Sobel-gradient magnitude at each pixel,
//     used for the gradient term d_g.
//
// The composite edge weight is w = opts.Alpha*d_c + opts.Beta*d_g; an
// edge is kept only if w >= opts.Floor.
//
// Complexity: O(W*H) time and memory.
func Build(original, smoothed [][]graph.Color, gradient [][]float64, opts Options) (*graph.Graph, error) {
	height := len(original)
	if height == 0 || len(original[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(original[0])
	if err := checkRectangular(original, width, height); err != nil {
		return nil, err
	}
	if err := dimensionsMatch(smoothed, gradient, width, height); err != nil {
		return nil, err
	}

	g := graph.NewGraph(width * height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id, _ := g.AddVertex()
			_ = g.SetColor(id, original[y][x])
		}
	}

	vertexID := func(x, y int) int { return y*width + x }

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := vertexID(x, y)
			for _, off := range forwardOffsets {
				nx, ny := x+off.dx, y+off.dy
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				v := vertexID(nx, ny)
				w := compositeWeight(smoothed[y][x], smoothed[ny][nx], gradient[y][x], gradient[ny][nx], opts)
				if w < opts.Floor {
					continue
				}
				g.AddEdge(u, v, w)
			}
		}
	}

	return g, nil
}

// compositeWeight computes alpha*colorDistance + beta*gradientTerm for
// an edge between two pixels.
func compositeWeight(a, b graph.Color, gradA, gradB float64, opts Options) float64 {
	dc := colorDistance(a, b)
	dg := math.Max(gradA, gradB)
	return opts.Alpha*dc + opts.Beta*dg
}

// colorDistance is the Euclidean distance between two RGB colors.
func colorDistance(a, b graph.Color) float64 {
	dr := float64(a.R - b.R)
	dg := float64(a.G - b.G)
	db := float64(a.B - b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func checkRectangular(m [][]graph.Color, width, height int) error {
	for _, row := range m {
		if len(row) != width {
			return ErrNonRectangular
		}
	}
	_ = height
	return nil
}

func dimensionsMatch(smoothed [][]graph.Color, gradient [][]float64, width, height int) error {
	if len(smoothed) != height || len(gradient) != height {
		return ErrDimensionMismatch
	}
	for y := 0; y < height; y++ {
		if len(smoothed[y]) != width || len(gradient[y]) != width {
			return ErrDimensionMismatch
		}
	}
	return nil
}
