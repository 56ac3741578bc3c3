// Package dgimtesting provides deterministic bit streams and an exact
// windowed counter for exercising approximate sliding-window structures.
package dgimtesting

import "math/rand"

// RandomBits returns n bits where each bit is true with probability density.
// We seed the RNG with the provided seed. It is normal to force it to some
// fixed value so that the generated stream is the same from run to run.
func RandomBits(seed int64, n int, density float64) []bool {
	r := rand.New(rand.NewSource(seed))
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = r.Float64() < density
	}
	return bits
}

// AlternatingBits returns n bits alternating true, false, true, ...
func AlternatingBits(n int) []bool {
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = i%2 == 0
	}
	return bits
}

// RepeatBits returns n copies of bit.
func RepeatBits(n int, bit bool) []bool {
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = bit
	}
	return bits
}

// ExactCounter tracks the exact number of true bits among the last window
// observations, storing the window verbatim in a ring. It is the ground
// truth that approximate counters are compared against; it deliberately
// spends the O(window) memory those structures exist to avoid.
type ExactCounter struct {
	ring  []bool
	pos   int
	count uint64
}

// NewExactCounter returns an ExactCounter over the last window observations.
// window must be positive.
func NewExactCounter(window uint64) *ExactCounter {
	return &ExactCounter{ring: make([]bool, window)}
}

// Update consumes the next bit, displacing the bit that left the window.
// Slots not yet written hold false, so a partially filled window needs no
// special case.
func (c *ExactCounter) Update(bit bool) {
	if c.ring[c.pos] {
		c.count--
	}
	c.ring[c.pos] = bit
	if bit {
		c.count++
	}
	c.pos++
	if c.pos == len(c.ring) {
		c.pos = 0
	}
}

// Count returns the exact number of true bits among the last window updates.
func (c *ExactCounter) Count() uint64 { return c.count }
