package zedgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    buildHistogram prometheus.Histogram
//	    rangeHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordBuild(n int, duration time.Duration, err error) {
//	    p.buildHistogram.Observe(duration.Seconds())
//	    // ... record error state, point count, etc.
//	}
type MetricsCollector interface {
	// RecordAdd is called after points are appended.
	// count is the number of points added (1 for Add, the batch size
	// for BatchAdd).
	RecordAdd(count int)

	// RecordBuild is called after each rebuild of the sorted index.
	// n is the number of points, duration is the total time taken,
	// err is nil if successful.
	RecordBuild(n int, duration time.Duration, err error)

	// RecordRange is called after each range query.
	// results is the number of ids returned, duration is the time
	// taken, err is nil if successful.
	RecordRange(results int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(int)                         {}
func (NoopMetricsCollector) RecordBuild(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordRange(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount        atomic.Int64
	BuildCount      atomic.Int64
	BuildErrors     atomic.Int64
	BuildTotalNanos atomic.Int64
	RangeCount      atomic.Int64
	RangeErrors     atomic.Int64
	RangeTotalNanos atomic.Int64
	RangeResults    atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (c *BasicMetricsCollector) RecordAdd(count int) {
	c.AddCount.Add(int64(count))
}

// RecordBuild implements MetricsCollector.
func (c *BasicMetricsCollector) RecordBuild(n int, duration time.Duration, err error) {
	c.BuildCount.Add(1)
	c.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		c.BuildErrors.Add(1)
	}
}

// RecordRange implements MetricsCollector.
func (c *BasicMetricsCollector) RecordRange(results int, duration time.Duration, err error) {
	c.RangeCount.Add(1)
	c.RangeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		c.RangeErrors.Add(1)
	} else {
		c.RangeResults.Add(int64(results))
	}
}

// AverageBuildTime returns the mean rebuild duration, or zero if no
// build has run yet.
func (c *BasicMetricsCollector) AverageBuildTime() time.Duration {
	n := c.BuildCount.Load()
	if n == 0 {
		return 0
	}
	return time.Duration(c.BuildTotalNanos.Load() / n)
}

// AverageRangeTime returns the mean range query duration, or zero if
// no query has run yet.
func (c *BasicMetricsCollector) AverageRangeTime() time.Duration {
	n := c.RangeCount.Load()
	if n == 0 {
		return 0
	}
	return time.Duration(c.RangeTotalNanos.Load() / n)
}
