package crt64

// TryModInverse returns the modular multiplicative inverse of a modulo m,
// that is, the inv in [0, m) such that a*inv ≡ 1 (mod m).
// TryModInverse returns ErrModulusInvalid if m is not positive and
// ErrNotCoprime if a and m share a factor greater than 1, in which case no
// inverse exists.
//
// a may be negative or larger than m; it is reduced modulo m first.
func TryModInverse(a, m int64) (int64, error) {
	if m <= 0 {
		return 0, ErrModulusInvalid
	}
	// reducing a first keeps every remainder in the Euclidean sequence
	// non-negative, so the GCD comes out as 1 rather than -1
	x, _, d := ExtGCD(floorMod(a, m), m)
	if d != 1 {
		return 0, ErrNotCoprime
	}
	return floorMod(x, m), nil
}

// ModInverse is like TryModInverse but panics if the inverse does not exist
// or m is not positive.
func ModInverse(a, m int64) int64 {
	inv, err := TryModInverse(a, m)
	if err != nil {
		panic(err)
	}
	return inv
}
