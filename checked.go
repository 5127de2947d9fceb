package crt64

import (
	"math"
	"math/bits"
)

// mulChecked returns x*y and true, or 0 and false if the product does not fit
// in an int64.
func mulChecked(x, y int64) (int64, bool) {
	sgn := sgn64(x) * sgn64(y)
	if sgn == 0 {
		return 0, true
	}
	// Use naive multiplication if we can: the product of two values of at
	// most 31 bits takes at most 62 bits.
	if abs64(x) < math.MaxInt32 && abs64(y) < math.MaxInt32 && x != math.MinInt64 && y != math.MinInt64 {
		return x * y, true
	}
	// Otherwise multiply the magnitudes with 128-bit precision. The magnitude
	// of MinInt64 is representable as a uint64 even though it is not as an
	// int64, so uabs64 is used instead of abs64.
	hi, lo := bits.Mul64(uabs64(x), uabs64(y))
	if hi != 0 {
		return 0, false
	}
	if sgn > 0 {
		if lo > math.MaxInt64 {
			return 0, false
		}
		return int64(lo), true
	}
	// a negative result may reach one further than a positive one
	if lo > 1<<63 {
		return 0, false
	}
	return -int64(lo), true
}

// addChecked returns x+y and true, or 0 and false if the sum does not fit in
// an int64.
func addChecked(x, y int64) (int64, bool) {
	z := x + y
	// overflow happened iff x and y share a sign and z does not
	if (x >= 0) == (y >= 0) && (z >= 0) != (x >= 0) {
		return 0, false
	}
	return z, true
}

// product returns the product of xs and true, or 0 and false if any partial
// product overflows. The product of no values is 1.
func product(xs []int64) (int64, bool) {
	p := int64(1)
	for _, x := range xs {
		var ok bool
		if p, ok = mulChecked(p, x); !ok {
			return 0, false
		}
	}
	return p, true
}

// floorMod returns x modulo m with the sign of m, so the result is in [0, m)
// for positive m. It is equivalent to ((x%m)+m)%m without the intermediate
// sum, which can overflow for large m. floorMod panics if m is zero.
func floorMod(x, m int64) int64 {
	r := x % m
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}

// abs64 returns the absolute value of x.
// abs64(math.MinInt64) is math.MinInt64.
func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// uabs64 returns the absolute value of x as a uint64, which is exact for all
// x including math.MinInt64.
func uabs64(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}

// sgn64 returns -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func sgn64(x int64) int64 {
	if x == 0 {
		return 0
	}
	if x < 0 {
		return -1
	}
	return 1
}
