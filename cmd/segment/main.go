// Command segment reads ./input.ppm from the working directory, runs
// both segmenters over it, and writes Felzenszwalb.ppm and Edmonds.ppm
// next to it. It exits 0 on success and non-zero, with a message on
// stderr, if the input file is missing or malformed.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pixelgraph/segment/arborescence"
	"github.com/pixelgraph/segment/digraph"
	"github.com/pixelgraph/segment/fh"
	"github.com/pixelgraph/segment/graph"
	"github.com/pixelgraph/segment/gridgraph"
	"github.com/pixelgraph/segment/imaging"
	"github.com/pixelgraph/segment/render"
)

// Default core parameters (documented defaults for the pipeline).
const (
	fhScale            = 1550.0
	fhMinSize          = 0
	compositeAlpha     = 1.1
	compositeBeta      = 0.45
	gradientBlurPasses = 5
	colorBlurPasses    = 3
	edmondsScale       = 300.0
	edmondsMinSize     = 20
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "segment:", err)
		os.Exit(1)
	}
}

func run() error {
	stage := func(name string, fn func() error) error {
		start := time.Now()
		err := fn()
		fmt.Fprintf(os.Stderr, "%-28s %s\n", name, time.Since(start))
		return err
	}

	var img *imaging.Image
	if err := stage("decode input.ppm", func() error {
		f, err := os.Open("input.ppm")
		if err != nil {
			return err
		}
		defer f.Close()
		img, err = imaging.DecodePPM(f)
		return err
	}); err != nil {
		return err
	}

	var gradient [][]float64
	var originalColors, smoothedColors [][]graph.Color

	if err := stage("preprocess (blur/gray/sobel)", func() error {
		originalColors = pixelsToColors(img.Pixels)

		colorBlurred := imaging.GaussianBlur(img.Pixels, colorBlurPasses)
		smoothedColors = pixelsToColors(colorBlurred)

		gradientBlurred := imaging.GaussianBlur(img.Pixels, gradientBlurPasses)
		gray := imaging.Grayscale(gradientBlurred)
		gradient = imaging.Sobel(gray)
		return nil
	}); err != nil {
		return err
	}

	var g *graph.Graph
	if err := stage("build grid graph", func() error {
		var err error
		g, err = gridgraph.Build(originalColors, smoothedColors, gradient, gridgraph.Options{
			Alpha: compositeAlpha,
			Beta:  compositeBeta,
		})
		return err
	}); err != nil {
		return err
	}

	var fhPartition *fh.Partition
	if err := stage("felzenszwalb segmentation", func() error {
		fhPartition = fh.Segment(g, fhScale, fhMinSize)
		return nil
	}); err != nil {
		return err
	}

	if err := stage("write Felzenszwalb.ppm", func() error {
		return writeSegmentation(g, fhPartition, img.Width, img.Height, "Felzenszwalb.ppm")
	}); err != nil {
		return err
	}

	var edmondsPartition *fh.Partition
	if err := stage("edmonds segmentation", func() error {
		d := digraph.FromWeightedGraph(g)
		edmondsPartition = arborescence.Segment(d, edmondsScale, edmondsMinSize)
		return nil
	}); err != nil {
		return err
	}

	if err := stage("write Edmonds.ppm", func() error {
		return writeSegmentation(g, edmondsPartition, img.Width, img.Height, "Edmonds.ppm")
	}); err != nil {
		return err
	}

	return nil
}

func writeSegmentation(g *graph.Graph, partition *fh.Partition, width, height int, path string) error {
	painted, err := render.Paint(g, partition)
	if err != nil {
		return err
	}
	stats, err := render.ComputeStats(g, partition)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s: %d components\n", path, stats.ComponentCount)
	matrix := render.ToPixelMatrix(painted, width, height)

	out := &imaging.Image{Width: width, Height: height, Pixels: make([][][3]int, height)}
	for y := 0; y < height; y++ {
		out.Pixels[y] = make([][3]int, width)
		for x := 0; x < width; x++ {
			out.Pixels[y][x] = [3]int{matrix[y][x][0], matrix[y][x][1], matrix[y][x][2]}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return imaging.EncodePPM(f, out)
}

func pixelsToColors(pixels [][][3]int) [][]graph.Color {
	height := len(pixels)
	if height == 0 {
		return nil
	}
	width := len(pixels[0])
	out := make([][]graph.Color, height)
	for y := 0; y < height; y++ {
		out[y] = make([]graph.Color, width)
		for x := 0; x < width; x++ {
			p := pixels[y][x]
			out[y][x] = graph.Color{R: p[0], G: p[1], B: p[2]}
		}
	}
	return out
}
