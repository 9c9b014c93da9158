package zcurve

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inRect(k Key, xmin, ymin, xmax, ymax uint32) bool {
	x, y := Decode(k)
	return xmin <= x && x <= xmax && ymin <= y && y <= ymax
}

// bruteBigMin scans the curve linearly for the smallest in-rectangle
// key greater than zval.
func bruteBigMin(zval Key, xmin, ymin, xmax, ymax uint32) Key {
	for k := zval + 1; ; k++ {
		if inRect(k, xmin, ymin, xmax, ymax) {
			return k
		}
	}
}

func TestBigMin(t *testing.T) {
	t.Run("WorkedExample", func(t *testing.T) {
		// Rectangle (1,1)-(2,2) straddles the main quadrant split of
		// the curve: its key interval [3, 12] contains the dead zone
		// keys 4, 5, 7, 8, 10, 11.
		zmin := Encode(1, 1)
		zmax := Encode(2, 2)
		require.Equal(t, Key(3), zmin)
		require.Equal(t, Key(12), zmax)

		assert.Equal(t, Key(6), BigMin(4, zmin, zmax))   // (2,0) jumps to (2,1)
		assert.Equal(t, Key(6), BigMin(5, zmin, zmax))   // (3,0) jumps to (2,1)
		assert.Equal(t, Key(9), BigMin(7, zmin, zmax))   // (3,1) jumps to (1,2)
		assert.Equal(t, Key(9), BigMin(8, zmin, zmax))   // (0,2) jumps to (1,2)
		assert.Equal(t, Key(12), BigMin(10, zmin, zmax)) // (0,3) jumps to (2,2)
		assert.Equal(t, Key(12), BigMin(11, zmin, zmax)) // (1,3) jumps to (2,2)
	})

	t.Run("AgainstBruteForce", func(t *testing.T) {
		// Exhaustive over a 32x32 grid for random rectangles: for
		// every dead-zone key in [zmin, zmax), BigMin must agree with
		// a linear scan of the curve.
		const maxC = 31

		rng := rand.New(rand.NewSource(5))
		for n := 0; n < 25; n++ {
			xmin := uint32(rng.Intn(maxC + 1))
			ymin := uint32(rng.Intn(maxC + 1))
			xmax := xmin + uint32(rng.Intn(maxC+1-int(xmin)))
			ymax := ymin + uint32(rng.Intn(maxC+1-int(ymin)))

			zmin := Encode(xmin, ymin)
			zmax := Encode(xmax, ymax)

			for zval := zmin; zval < zmax; zval++ {
				if inRect(zval, xmin, ymin, xmax, ymax) {
					continue
				}
				want := bruteBigMin(zval, xmin, ymin, xmax, ymax)
				got := BigMin(zval, zmin, zmax)
				require.Equal(t, want, got,
					"rect (%d,%d)-(%d,%d) zval=%v", xmin, ymin, xmax, ymax, zval)
			}
		}
	})

	t.Run("ResultProperties", func(t *testing.T) {
		// Independent of the brute force: the result is always
		// strictly greater than zval, inside the rectangle, and at
		// most zmax.
		rng := rand.New(rand.NewSource(6))
		for n := 0; n < 1000; n++ {
			xmin := rng.Uint32()
			ymin := rng.Uint32()
			xmax := xmin + uint32(rng.Int63n(int64(^xmin)+1))
			ymax := ymin + uint32(rng.Int63n(int64(^ymin)+1))

			zmin := Encode(xmin, ymin)
			zmax := Encode(xmax, ymax)
			if zmin == zmax {
				continue
			}

			zval := zmin + Key(rng.Uint64()%uint64(zmax-zmin))
			if inRect(zval, xmin, ymin, xmax, ymax) {
				continue
			}

			got := BigMin(zval, zmin, zmax)
			require.Greater(t, got, zval)
			require.LessOrEqual(t, got, zmax)
			require.True(t, inRect(got, xmin, ymin, xmax, ymax), "rect (%d,%d)-(%d,%d) zval=%v got=%v", xmin, ymin, xmax, ymax, zval, got)
		}
	})
}
