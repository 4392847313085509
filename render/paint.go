package render

import (
	"math"

	"github.com/pixelgraph/segment/fh"
	"github.com/pixelgraph/segment/graph"
)

// Paint computes, for every component of partition, the mean of the
// original per-vertex colors read from g, and returns a slice of
// length g.VertexCount() with every vertex painted that mean. g is
// read-only.
func Paint(g *graph.Graph, partition *fh.Partition) ([]graph.Color, error) {
	n := g.VertexCount()
	means := make(map[int]graph.Color)
	sumOf := make(map[int][3]float64)
	countOf := make(map[int]int)

	for v := 0; v < n; v++ {
		c, err := g.Color(v)
		if err != nil {
			return nil, err
		}
		root := partition.Find(v)
		s := sumOf[root]
		s[0] += float64(c.R)
		s[1] += float64(c.G)
		s[2] += float64(c.B)
		sumOf[root] = s
		countOf[root]++
	}

	for root, s := range sumOf {
		count := float64(countOf[root])
		means[root] = graph.Color{
			R: int(math.Round(s[0] / count)),
			G: int(math.Round(s[1] / count)),
			B: int(math.Round(s[2] / count)),
		}
	}

	painted := make([]graph.Color, n)
	for v := 0; v < n; v++ {
		painted[v] = means[partition.Find(v)]
	}
	return painted, nil
}

// ToPixelMatrix lays painted colors out as a [height][width][3] int
// matrix using the convention vertex id = y*width + x.
func ToPixelMatrix(painted []graph.Color, width, height int) [][][]int {
	matrix := make([][][]int, height)
	for y := 0; y < height; y++ {
		row := make([][]int, width)
		for x := 0; x < width; x++ {
			c := painted[y*width+x]
			row[x] = []int{c.R, c.G, c.B}
		}
		matrix[y] = row
	}
	return matrix
}
