package imaging

import "math/rand"

// RandomRecolor paints each partition component (keyed by an arbitrary
// root id, as produced by fh.Partition.Find) a pseudo-random color,
// for visualizing a segmentation without reference to original pixel
// content. Uses an explicitly seeded math/rand source (this is
// cosmetic output, not a security-sensitive draw), so a fixed seed
// reproduces the same palette across runs and distinct seeds vary it.
func RandomRecolor(labels []int, width, height int, seed int64) [][][3]int {
	rng := rand.New(rand.NewSource(seed))
	palette := make(map[int][3]int)

	out := make([][][3]int, height)
	for y := 0; y < height; y++ {
		out[y] = make([][3]int, width)
		for x := 0; x < width; x++ {
			label := labels[y*width+x]
			color, ok := palette[label]
			if !ok {
				color = [3]int{rng.Intn(256), rng.Intn(256), rng.Intn(256)}
				palette[label] = color
			}
			out[y][x] = color
		}
	}
	return out
}
