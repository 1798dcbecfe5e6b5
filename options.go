package julienne

import "log"

const (
	// defaultTotalBuckets is the number of slots materialized by default,
	// one overflow slot plus 127 open buckets.
	defaultTotalBuckets = 128

	// defaultSequentialThreshold is the k below which UpdateBuckets takes
	// its sequential path instead of spinning up the parallel pipeline.
	defaultSequentialThreshold = 2048

	// defaultBlockSize is the target number of items per block in the
	// parallel histogram/scatter pipeline.
	defaultBlockSize = 4096
)

// Option is a functional option for configuring a BucketSet at
// construction time.
type Option func(*config)

type config struct {
	totalBuckets        int
	sequentialThreshold int
	blockSize           int
	workers             int
	logger              *log.Logger
}

func defaultConfig() *config {
	return &config{
		totalBuckets:        defaultTotalBuckets,
		sequentialThreshold: defaultSequentialThreshold,
		blockSize:           defaultBlockSize,
		workers:             0, // 0 means "use par.DefaultWorkers()"
	}
}

// WithTotalBuckets sets the number of slots to materialize (open buckets
// plus one overflow slot). Must be >= 2. Larger values amortize Unpack at
// the cost of more empty-slot bookkeeping; smaller values do the reverse.
func WithTotalBuckets(n int) Option {
	return func(c *config) { c.totalBuckets = n }
}

// WithSequentialThreshold sets the k below which UpdateBuckets runs its
// sequential path rather than the parallel histogram/scatter pipeline.
func WithSequentialThreshold(k int) Option {
	return func(c *config) { c.sequentialThreshold = k }
}

// WithBlockSize sets the target number of items per block in the parallel
// pipeline; the actual block count is rounded up to a power of two.
func WithBlockSize(n int) Option {
	return func(c *config) { c.blockSize = n }
}

// WithWorkers caps the number of goroutines used by parallel operations.
// The default is one per available processor.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithLogger attaches a logger for diagnostic lines. BucketSet logs a
// single line, from New, describing the new set; window advances and path
// selection are not logged. Nil (the default) disables logging entirely;
// BucketSet is silent by default, as is the rest of this package.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

func (c *config) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
