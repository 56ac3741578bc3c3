package dgim

import "errors"

const (
	// DefaultErrorRate is the classical configuration: a bucket budget of 2
	// and a worst-case relative error of 50%.
	DefaultErrorRate = 0.5

	// MinBucketBudget is the smallest usable per-size bucket budget. Below 2
	// the merge cascade cannot keep sizes distinct and the error analysis
	// does not hold.
	MinBucketBudget uint64 = 2
)

var (
	ErrBadWindow    = errors.New("dgim: window must be a positive number of ticks")
	ErrBadErrorRate = errors.New("dgim: errorRate must be in the open interval (0, 1)")
)

// bucket summarizes a power-of-two sized run of true updates.
//
// size is the count of true updates in the run. timestamp is the logical
// tick of the most recent of them; the run's older extent is not recorded,
// which is where the estimate's error comes from.
//
// Buckets are owned exclusively by the Counter that created them and are
// never exposed outside this package.
type bucket struct {
	size      uint64
	timestamp uint64
}
