package zedgo

import (
	"sort"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/zedgo/zcurve"
)

// Point is a 2D point in the unsigned 32-bit coordinate domain.
// Coordinates travel through the API as int64 so that out-of-domain
// values can be represented and rejected with a proper error instead
// of being silently truncated.
type Point struct {
	X, Y int64
}

// Stats describes the current state of an Index.
type Stats struct {
	// Items is the number of points added so far.
	Items int

	// Finalized reports whether the sorted structure is current.
	// False means the next query will trigger a rebuild.
	Finalized bool
}

// Index is a static spatial index for 2D points answering axis-aligned
// rectangle range queries via Z-order keys and BIGMIN pruning.
//
// Points are accumulated with Add, the sorted structure is built by
// Finish (or lazily by the first query), and Range reports the ids of
// all points inside a closed query rectangle. Adding after a build
// marks the index stale; the next query rebuilds from scratch, there
// is no incremental insert into the sorted arrays.
//
// An Index is not safe for concurrent use: queries may rebuild the
// sorted structure, so even read-only use from multiple goroutines
// needs external locking around the whole Index.
type Index struct {
	// Accumulated coordinates in insertion order. A point's id is its
	// position in these slices.
	px, py []int64

	// Sorted structure, valid only while finalized is true. The four
	// slices are parallel and ordered by ascending key.
	ids  []uint32
	xs   []uint32
	ys   []uint32
	keys []zcurve.Key

	finalized bool

	opts Options
}

// New creates a new empty Index.
func New(optFns ...func(o *Options)) *Index {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}

	if opts.MetricsCollector == nil {
		opts.MetricsCollector = NoopMetricsCollector{}
	}

	i := &Index{opts: opts}

	if opts.Capacity > 0 {
		i.px = make([]int64, 0, opts.Capacity)
		i.py = make([]int64, 0, opts.Capacity)
	}

	return i
}

// Add appends a point and returns its id. Ids are assigned in strictly
// increasing insertion order starting at 0. Add never fails; domain
// validation happens at Finish time. Adding marks the index stale.
func (i *Index) Add(x, y int64) uint32 {
	id := uint32(len(i.px))
	i.px = append(i.px, x)
	i.py = append(i.py, y)
	i.finalized = false

	i.opts.MetricsCollector.RecordAdd(1)

	return id
}

// BatchAdd appends points and returns their ids, in order.
func (i *Index) BatchAdd(points []Point) []uint32 {
	ids := make([]uint32, len(points))
	for n, p := range points {
		ids[n] = uint32(len(i.px))
		i.px = append(i.px, p.X)
		i.py = append(i.py, p.Y)
	}
	i.finalized = false

	i.opts.MetricsCollector.RecordAdd(len(points))

	return ids
}

// Len returns the number of points added so far.
func (i *Index) Len() int {
	return len(i.px)
}

// Stats returns statistics about the index.
func (i *Index) Stats() Stats {
	return Stats{
		Items:     len(i.px),
		Finalized: i.finalized,
	}
}

// Finish builds the sorted structure. It is idempotent: a no-op when
// the index is already finalized and no points were added since.
//
// Every accumulated coordinate must lie in [0, 2^32-1]; a single
// out-of-domain point fails the whole build with
// *ErrCoordinateOutOfRange and leaves the previous finalized state
// untouched.
func (i *Index) Finish() error {
	if i.finalized {
		return nil
	}

	start := time.Now()

	err := i.build()

	i.opts.MetricsCollector.RecordBuild(len(i.px), time.Since(start), err)
	i.opts.Logger.LogBuild(len(i.px), err)

	return err
}

func (i *Index) build() error {
	n := len(i.px)

	// Validate everything up front so a failed build cannot leave the
	// parallel slices half replaced.
	for id := 0; id < n; id++ {
		if !inDomain(i.px[id]) || !inDomain(i.py[id]) {
			return &ErrCoordinateOutOfRange{ID: uint32(id), X: i.px[id], Y: i.py[id]}
		}
	}

	keyByID := make([]zcurve.Key, n)
	for id := 0; id < n; id++ {
		keyByID[id] = zcurve.Encode(uint32(i.px[id]), uint32(i.py[id]))
	}

	ids := make([]uint32, n)
	for id := range ids {
		ids[id] = uint32(id)
	}
	sort.Slice(ids, func(a, b int) bool {
		return keyByID[ids[a]] < keyByID[ids[b]]
	})

	xs := make([]uint32, n)
	ys := make([]uint32, n)
	keys := make([]zcurve.Key, n)
	for pos, id := range ids {
		xs[pos] = uint32(i.px[id])
		ys[pos] = uint32(i.py[id])
		keys[pos] = keyByID[id]
	}

	i.ids, i.xs, i.ys, i.keys = ids, xs, ys, keys
	i.finalized = true

	return nil
}

// Range returns the ids of all points inside the closed rectangle
// (xmin, ymin)-(xmax, ymax). All four bounds must lie in [0, 2^32-1]
// and the rectangle must be well formed (xmin <= xmax, ymin <= ymax);
// degenerate single-point rectangles are valid.
//
// If the index is stale, Range rebuilds it first and reports any build
// error. Results come out in ascending key order of the visited
// points, which is neither id order nor any other spatial order.
func (i *Index) Range(xmin, ymin, xmax, ymax int64) ([]uint32, error) {
	return i.RangeFilter(xmin, ymin, xmax, ymax, nil)
}

// RangeFilter is Range with a caller-supplied id predicate. Points
// whose ids are rejected by filter are dropped from the result but are
// still visited. A nil filter accepts everything.
func (i *Index) RangeFilter(xmin, ymin, xmax, ymax int64, filter func(id uint32) bool) ([]uint32, error) {
	start := time.Now()

	out, err := i.searchRange(xmin, ymin, xmax, ymax, filter)

	i.opts.MetricsCollector.RecordRange(len(out), time.Since(start), err)
	i.opts.Logger.LogRange(len(out), err)

	return out, err
}

// RangeBitmap is Range with the result returned as a Roaring bitmap,
// convenient for set-algebra composition of several rectangle queries.
func (i *Index) RangeBitmap(xmin, ymin, xmax, ymax int64) (*roaring.Bitmap, error) {
	ids, err := i.Range(xmin, ymin, xmax, ymax)
	if err != nil {
		return nil, err
	}

	rb := roaring.New()
	rb.AddMany(ids)

	return rb, nil
}

func (i *Index) searchRange(xmin, ymin, xmax, ymax int64, filter func(id uint32) bool) ([]uint32, error) {
	if err := validateRect(xmin, ymin, xmax, ymax); err != nil {
		return nil, err
	}

	if err := i.Finish(); err != nil {
		return nil, err
	}

	n := len(i.keys)
	if n == 0 {
		return nil, nil
	}

	qxmin, qymin := uint32(xmin), uint32(ymin)
	qxmax, qymax := uint32(xmax), uint32(ymax)

	// The rectangle's corner keys bound every in-rectangle key, so the
	// scan window is the sorted run with keys in [zmin, zmax]. Keys in
	// the window do not imply the point is inside; that is the usual
	// over-selection of Z-order search and what BIGMIN prunes.
	zmin := zcurve.Encode(qxmin, qymin)
	zmax := zcurve.Encode(qxmax, qymax)

	it := sort.Search(n, func(p int) bool { return i.keys[p] >= zmin })
	last := it + sort.Search(n-it, func(p int) bool { return i.keys[it+p] > zmax })

	var out []uint32
	for cur := it; cur < last; {
		x, y := i.xs[cur], i.ys[cur]
		if qxmin <= x && x <= qxmax && qymin <= y && y <= qymax {
			if filter == nil || filter(i.ids[cur]) {
				out = append(out, i.ids[cur])
			}
			cur++
			continue
		}

		// The cursor sits in a dead zone. A key equal to zmax decodes
		// to the rectangle's max corner and would have matched above,
		// so keys[cur] < zmax here and the BigMin preconditions hold.
		znext := zcurve.BigMin(i.keys[cur], zmin, zmax)

		base := cur + 1
		cur = base + sort.Search(last-base, func(p int) bool { return i.keys[base+p] >= znext })
	}

	return out, nil
}

func validateRect(xmin, ymin, xmax, ymax int64) error {
	for _, b := range []struct {
		name  string
		value int64
	}{
		{"xmin", xmin},
		{"ymin", ymin},
		{"xmax", xmax},
		{"ymax", ymax},
	} {
		if !inDomain(b.value) {
			return &ErrBoundOutOfRange{Name: b.name, Value: b.value}
		}
	}

	if xmin > xmax || ymin > ymax {
		return &ErrMalformedRectangle{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
	}

	return nil
}

func inDomain(v int64) bool {
	return v >= 0 && v <= zcurve.MaxCoord
}
