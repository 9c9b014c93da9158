package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/zedgo"
	"github.com/hupe1980/zedgo/zcurve"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UniformPoints generates random points with coordinates in
// [0, maxCoord]. Use zcurve.MaxCoord to cover the full domain.
func (r *RNG) UniformPoints(num int, maxCoord int64) []zedgo.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]zedgo.Point, num)
	for i := range points {
		points[i] = zedgo.Point{
			X: r.rand.Int63n(maxCoord + 1),
			Y: r.rand.Int63n(maxCoord + 1),
		}
	}

	return points
}

// ClusteredPoints generates random points grouped into square clusters
// of the given side length. Clustered data exercises long dead zones
// between occupied curve sections, which is where BIGMIN jumps matter.
func (r *RNG) ClusteredPoints(num, clusters int, side int64) []zedgo.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	centers := make([]zedgo.Point, clusters)
	for i := range centers {
		centers[i] = zedgo.Point{
			X: r.rand.Int63n(zcurve.MaxCoord - side),
			Y: r.rand.Int63n(zcurve.MaxCoord - side),
		}
	}

	points := make([]zedgo.Point, num)
	for i := range points {
		c := centers[r.rand.Intn(clusters)]
		points[i] = zedgo.Point{
			X: c.X + r.rand.Int63n(side),
			Y: c.Y + r.rand.Int63n(side),
		}
	}

	return points
}

// BruteRange computes the ground truth for a rectangle query by linear
// scan: the ids (insertion positions) of all points inside the closed
// rectangle, in id order.
func BruteRange(points []zedgo.Point, xmin, ymin, xmax, ymax int64) []uint32 {
	var ids []uint32
	for i, p := range points {
		if xmin <= p.X && p.X <= xmax && ymin <= p.Y && p.Y <= ymax {
			ids = append(ids, uint32(i))
		}
	}
	return ids
}
