package imaging

import "math"

// Grayscale converts pixels to a single-channel luminance matrix using
// the standard Rec. 601 weighting, feeding the gradient path ahead of
// Sobel.
func Grayscale(pixels [][][3]int) [][]float64 {
	height := len(pixels)
	if height == 0 {
		return nil
	}
	width := len(pixels[0])
	out := make([][]float64, height)
	for y := 0; y < height; y++ {
		out[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			p := pixels[y][x]
			out[y][x] = 0.299*float64(p[0]) + 0.587*float64(p[1]) + 0.114*float64(p[2])
		}
	}
	return out
}

// gaussianKernelPasses applies the fixed 3x3 approximately-Gaussian
// kernel (center weight 4, orthogonal neighbors 2, diagonal neighbors
// 1, normalized by 16) for the given number of passes, with symmetric
// boundary clamping (an out-of-range neighbor reuses the center
// pixel).
func gaussianKernelPasses(pixels [][][3]int, passes int) [][][3]int {
	current := pixels
	for i := 0; i < passes; i++ {
		current = gaussianPass(current)
	}
	return current
}

func gaussianPass(pixels [][][3]int) [][][3]int {
	height := len(pixels)
	if height == 0 {
		return pixels
	}
	width := len(pixels[0])
	out := make([][][3]int, height)
	for y := 0; y < height; y++ {
		out[y] = make([][3]int, width)
		for x := 0; x < width; x++ {
			var sum [3]int
			for _, n := range gaussianNeighborhood(pixels, x, y, width, height) {
				for c := 0; c < 3; c++ {
					sum[c] += n.weight * pixels[n.y][n.x][c]
				}
			}
			for c := 0; c < 3; c++ {
				out[y][x][c] = sum[c] / 16
			}
		}
	}
	return out
}

type weightedNeighbor struct {
	x, y, weight int
}

// gaussianNeighborhood returns the 3x3 kernel neighbors at (x,y),
// clamping out-of-range coordinates back to the center pixel (so the
// weight still contributes, just sourced from the boundary pixel
// itself rather than reaching past the edge).
func gaussianNeighborhood(pixels [][][3]int, x, y, width, height int) []weightedNeighbor {
	clamp := func(nx, ny int) (int, int) {
		if nx < 0 || nx >= width || ny < 0 || ny >= height {
			return x, y
		}
		return nx, ny
	}
	offsets := []struct {
		dx, dy, weight int
	}{
		{0, 0, 4},
		{0, -1, 2}, {0, 1, 2}, {1, 0, 2}, {-1, 0, 2},
		{-1, -1, 1}, {-1, 1, 1}, {1, -1, 1}, {1, 1, 1},
	}
	neighbors := make([]weightedNeighbor, len(offsets))
	for i, o := range offsets {
		nx, ny := clamp(x+o.dx, y+o.dy)
		neighbors[i] = weightedNeighbor{x: nx, y: ny, weight: o.weight}
	}
	return neighbors
}

// GaussianBlur runs gaussianKernelPasses for the given number of
// passes (defaults: 5 for the gradient preprocessing path, 3 for the
// color path).
func GaussianBlur(pixels [][][3]int, passes int) [][][3]int {
	return gaussianKernelPasses(pixels, passes)
}

// sobelKernelX and sobelKernelY are the classical 3x3 Sobel kernels.
var sobelKernelX = [3][3]float64{
	{-1, 0, 1},
	{-2, 0, 2},
	{-1, 0, 1},
}
var sobelKernelY = [3][3]float64{
	{-1, -2, -1},
	{0, 0, 0},
	{1, 2, 1},
}

// Sobel computes the classical 3x3 Sobel gradient magnitude over a
// single-channel matrix (typically the output of Grayscale), with
// symmetric boundary clamping: a kernel tap that would read outside
// the image reuses the edge pixel instead.
func Sobel(values [][]float64) [][]float64 {
	height := len(values)
	if height == 0 {
		return nil
	}
	width := len(values[0])
	out := make([][]float64, height)
	for y := 0; y < height; y++ {
		out[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					sx, sy := clampCoord(x+kx, width), clampCoord(y+ky, height)
					v := values[sy][sx]
					gx += sobelKernelX[ky+1][kx+1] * v
					gy += sobelKernelY[ky+1][kx+1] * v
				}
			}
			out[y][x] = math.Sqrt(gx*gx + gy*gy)
		}
	}
	return out
}

func clampCoord(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v >= limit {
		return limit - 1
	}
	return v
}
