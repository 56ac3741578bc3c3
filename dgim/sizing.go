package dgim

import (
	"math"
	"math/bits"
)

// CheckWindow validates a window length.
func CheckWindow(window uint64) error {
	if window == 0 {
		return ErrBadWindow
	}
	return nil
}

// CheckErrorRate validates a target relative error rate.
func CheckErrorRate(errorRate float64) error {
	// NaN fails both comparisons, so it is rejected here too.
	if !(errorRate > 0) || !(errorRate < 1) {
		return ErrBadErrorRate
	}
	return nil
}

// BucketBudget returns the per-size bucket budget r for a target relative
// error rate:
//
//	r = max(2, ceil(1/errorRate))
//
// The caller is responsible for validating errorRate with CheckErrorRate.
func BucketBudget(errorRate float64) uint64 {
	r := uint64(math.Ceil(1 / errorRate))
	if r < MinBucketBudget {
		r = MinBucketBudget
	}
	return r
}

// AchievedErrorRate returns the worst-case relative error delivered by a
// per-size bucket budget of r, i.e. 1/r. It is at most the rate the budget
// was derived from, and smaller whenever ceil rounded up.
//
// NOTE: budget must be >= MinBucketBudget.
func AchievedErrorRate(budget uint64) float64 {
	return 1 / float64(budget)
}

// MaxBuckets returns an upper bound on the number of buckets ever retained
// for the given window length and per-size budget.
//
// The newer bucket of any merged pair summarizes events that all fit inside
// the window, so no bucket larger than twice the window length can form, and
// each size holds at most budget buckets:
//
//	budget * (floor(log2(window)) + 2)
//
// The bound is conservative; it is intended for capacity preallocation, not
// exact accounting.
func MaxBuckets(window uint64, budget uint64) uint64 {
	return budget * uint64(bits.Len64(window)+1)
}
