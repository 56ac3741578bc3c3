package dgim

// Counter estimates the number of true updates among the last window ticks
// of a boolean stream.
//
// The zero value is not usable; construct with New or NewWithErrorRate.
type Counter struct {
	window uint64
	budget uint64

	// clock is the per-instance logical tick counter. It advances exactly
	// once per Update and is never shared between instances.
	clock uint64

	// buckets is the ledger, newest first. Sizes are powers of two and
	// non-decreasing toward the older end; timestamps strictly decrease.
	buckets []bucket
}

// New returns a Counter over the last window ticks at the classical
// DefaultErrorRate (bucket budget 2, worst-case relative error 50%).
func New(window uint64) (*Counter, error) {
	return NewWithErrorRate(window, DefaultErrorRate)
}

// NewWithErrorRate returns a Counter over the last window ticks whose
// estimates are within errorRate of the true count. Smaller rates retain
// more buckets per size.
//
// Returns ErrBadWindow or ErrBadErrorRate for out-of-domain configuration;
// these are the only failure modes of the structure and are checked once
// here, never per Update.
func NewWithErrorRate(window uint64, errorRate float64) (*Counter, error) {
	if err := CheckWindow(window); err != nil {
		return nil, err
	}
	if err := CheckErrorRate(errorRate); err != nil {
		return nil, err
	}
	budget := BucketBudget(errorRate)
	return &Counter{
		window:  window,
		budget:  budget,
		buckets: make([]bucket, 0, MaxBuckets(window, budget)),
	}, nil
}

// Update consumes the next element of the stream, advancing the logical
// clock by one tick. A true bit becomes a new size-1 bucket; the merge
// cascade then restores the per-size budget. Update is the sole mutator and
// never fails.
func (c *Counter) Update(bit bool) {
	c.clock++

	// The oldest bucket leaves the ledger once its most recent event falls
	// out of the window. Timestamps are distinct, so at most one bucket can
	// newly expire per tick.
	if n := len(c.buckets); n > 0 && c.buckets[n-1].timestamp+c.window <= c.clock {
		c.buckets = c.buckets[:n-1]
	}

	if !bit {
		return
	}

	c.buckets = append(c.buckets, bucket{})
	copy(c.buckets[1:], c.buckets)
	c.buckets[0] = bucket{size: 1, timestamp: c.clock}

	c.cascade()
}

// cascade walks runs of equal-size buckets from the newest end. Whenever a
// run exceeds the budget, the two oldest buckets of that run merge into one
// bucket of double the size keeping the newer timestamp; the merged bucket
// joins the next run and the check repeats there. Only the run that just
// received a bucket can be over budget, so the walk stops at the first run
// within budget.
func (c *Counter) cascade() {
	i := 0
	for i < len(c.buckets) {
		size := c.buckets[i].size
		j := i
		for j < len(c.buckets) && c.buckets[j].size == size {
			j++
		}
		if uint64(j-i) <= c.budget {
			return
		}
		c.buckets[j-2].size *= 2
		c.buckets = append(c.buckets[:j-1], c.buckets[j:]...)
		i = j - 2
	}
}

// Count returns the estimate of the number of true updates among the last
// window ticks. It never mutates the ledger, never returns more than the
// window length, and is exact until the clock passes the window length.
func (c *Counter) Count() uint64 {
	var total, oldest uint64
	for _, b := range c.buckets {
		if b.timestamp+c.window <= c.clock {
			break
		}
		total += b.size
		oldest = b.size
	}
	// Half-discount the oldest counted bucket: an unknown portion of its
	// run may predate the window. Before the window first fills nothing has
	// been dropped, so the sum is exact and no discount applies.
	if c.clock > c.window {
		total -= oldest / 2
	}
	if total > c.window {
		total = c.window
	}
	return total
}

// Window returns the configured window length in ticks.
func (c *Counter) Window() uint64 { return c.window }

// BucketBudget returns the per-size bucket budget r derived at construction.
func (c *Counter) BucketBudget() uint64 { return c.budget }

// ErrorRate returns the worst-case relative error of Count: with true count
// t and estimate e, |t-e| <= t * ErrorRate().
func (c *Counter) ErrorRate() float64 { return AchievedErrorRate(c.budget) }

// BucketCount returns the number of buckets currently retained. It is at
// most MaxBuckets(Window(), BucketBudget()).
func (c *Counter) BucketCount() int { return len(c.buckets) }

// Ticks returns the number of updates observed so far.
func (c *Counter) Ticks() uint64 { return c.clock }
