package testutil

import (
	"testing"

	"github.com/hupe1980/zedgo"
	"github.com/hupe1980/zedgo/zcurve"
	"github.com/stretchr/testify/assert"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	pts := rng.UniformPoints(64, zcurve.MaxCoord)

	assert.Equal(t, 64, len(pts))
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, int64(0))
		assert.GreaterOrEqual(t, p.Y, int64(0))
		assert.LessOrEqual(t, p.X, int64(zcurve.MaxCoord))
		assert.LessOrEqual(t, p.Y, int64(zcurve.MaxCoord))
	}
}

func TestClusteredPoints(t *testing.T) {
	rng := NewRNG(4711)

	pts := rng.ClusteredPoints(64, 4, 1<<10)

	assert.Equal(t, 64, len(pts))
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, int64(0))
		assert.LessOrEqual(t, p.X, int64(zcurve.MaxCoord))
	}
}

func TestBruteRange(t *testing.T) {
	pts := []zedgo.Point{
		{X: 0, Y: 0},
		{X: 5, Y: 5},
		{X: 10, Y: 10},
	}

	assert.Equal(t, []uint32{1}, BruteRange(pts, 1, 1, 9, 9))
	assert.Equal(t, []uint32{0, 1, 2}, BruteRange(pts, 0, 0, 10, 10))
	assert.Empty(t, BruteRange(pts, 6, 6, 9, 9))
}
