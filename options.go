package zedgo

// Options contains configuration options for an Index.
type Options struct {
	// Capacity preallocates room for the given number of points.
	// Zero means no preallocation.
	Capacity int

	// Logger receives structured logs for build and query operations.
	// If nil, logging is disabled.
	Logger *Logger

	// MetricsCollector receives operational metrics.
	// If nil, metrics collection is disabled.
	MetricsCollector MetricsCollector
}

// DefaultOptions contains the default configuration options for an Index.
var DefaultOptions = Options{
	Capacity: 0,
}
