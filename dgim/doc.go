package dgim

/*

# DGIM sliding-window bit counting

This package maintains an approximate count of the 1-bits among the last N
elements of an unbounded boolean stream, in O(log N) space, with a
configurable worst-case relative error.

It implements the bucket algorithm of:

	Datar, Gionis, Indyk, Motwani.
	"Maintaining stream statistics over sliding windows."
	SIAM Journal on Computing 31.6 (2002): 1794-1813.

An accessible treatment is chapter 4 of Mining of Massive Datasets
(http://infolab.stanford.edu/~ullman/mmds/ch4.pdf).

## What the structure is (and is not)

The counter is a *probabilistic summary*:

- Count reports an estimate of the number of true updates among the last N.
- The estimate is within a factor of errorRate of the true count; with the
  default rate the worst case is 50%.
- The estimate is exact until N updates have been observed, since nothing has
  yet fallen out of the window.

It is NOT an exact counter, does not support ranges other than "last N", and
does not persist: it is an in-memory online structure consumed one bit at a
time.

## Buckets

Every true update is summarized by exactly one bucket. A bucket records a
power-of-two count of true updates and the logical timestamp of the most
recent of them. The ledger holds buckets newest first; sizes never decrease
toward the older end.

At most r buckets of any one size are retained, where

	r = max(2, ceil(1/errorRate))

When an insertion pushes a size over that budget, the two oldest buckets of
that size merge into one bucket of double the size carrying the newer
timestamp, and the check repeats at the doubled size.

## Eviction and the boundary bucket

A bucket is dropped as soon as its most recent timestamp leaves the window:
after that it cannot contribute any in-window event. The estimate sums the
sizes of buckets whose timestamp is still inside the window and discounts the
oldest such bucket by half its size, since an unknown portion of its run may
predate the window. That half-discount is the sole source of error, and the
merge budget bounds it relative to the true count.

## Concurrency

A Counter is not safe for concurrent use. Update must not run concurrently
with another Update or with Count on the same instance; callers needing
shared access serialize externally. No operation blocks or performs I/O.

*/
