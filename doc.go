// Package zedgo provides a static, in-memory spatial index for 2D
// points answering axis-aligned rectangle range queries.
//
// Points are interleaved into 64-bit Z-order (Morton) keys and kept in
// a sorted array. Range queries binary-search the array and walk it
// with the BIGMIN jump rule of Tropf & Herzog, skipping runs of the
// curve that cannot intersect the query rectangle.
//
// # Quick Start
//
//	idx := zedgo.New()
//
//	a := idx.Add(1, 1)
//	b := idx.Add(2, 2)
//	idx.Add(100, 100)
//
//	if err := idx.Finish(); err != nil {
//	    log.Fatal(err)
//	}
//
//	ids, err := idx.Range(0, 0, 10, 10)
//	// ids contains a and b
//
// # Lifecycle
//
// An Index has two states: building and finalized. Add never fails and
// marks the index stale; Finish validates every accumulated coordinate
// against the [0, 2^32-1] domain and rebuilds the sorted structure from
// scratch. Queries finalize lazily, so an explicit Finish is optional
// but makes the rebuild cost (and its validation error) surface at a
// predictable point.
//
// # Concurrency
//
// Execution is single-threaded and synchronous. Because a query may
// rebuild the sorted structure, an Index must not be shared between
// goroutines without external locking, even for reads.
//
// # Subpackages
//
//   - zcurve: Morton key encoding and the BIGMIN computation
//   - testutil: random point generation and brute-force ground truth
package zedgo
