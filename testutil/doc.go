// Package testutil provides testing utilities for zedgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random point sets and computing
// exact range query results by linear scan.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(1000, zcurve.MaxCoord)
//	pts := rng.ClusteredPoints(1000, 8, 1<<16)
//
// # Exact Search (Ground Truth)
//
//	ids := testutil.BruteRange(pts, xmin, ymin, xmax, ymax)
package testutil
