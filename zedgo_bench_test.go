package zedgo_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/zedgo"
	"github.com/hupe1980/zedgo/testutil"
	"github.com/hupe1980/zedgo/zcurve"
)

// Benchmark the full sorted rebuild.
func BenchmarkFinish(b *testing.B) {
	sizes := []int{1_000, 10_000, 100_000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("n=%d", size), func(b *testing.B) {
			rng := testutil.NewRNG(0)
			points := rng.UniformPoints(size, zcurve.MaxCoord)

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				idx := zedgo.New(func(o *zedgo.Options) {
					o.Capacity = size
				})
				idx.BatchAdd(points)
				if err := idx.Finish(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// Benchmark range queries over clustered data, where BIGMIN jumps do
// the heavy lifting.
func BenchmarkRange(b *testing.B) {
	rng := testutil.NewRNG(0)
	points := rng.ClusteredPoints(100_000, 16, 1<<20)

	idx := zedgo.New(func(o *zedgo.Options) {
		o.Capacity = len(points)
	})
	idx.BatchAdd(points)
	if err := idx.Finish(); err != nil {
		b.Fatal(err)
	}

	spans := []int64{1 << 16, 1 << 20, 1 << 24}

	for _, span := range spans {
		b.Run(fmt.Sprintf("span=%d", span), func(b *testing.B) {
			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				xmin := int64(i*7919) % (zcurve.MaxCoord - span)
				ymin := int64(i*104729) % (zcurve.MaxCoord - span)
				if _, err := idx.Range(xmin, ymin, xmin+span, ymin+span); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
