package crt64

// GCD returns the greatest common divisor (GCD) of m and n.
// The GCD is the largest integer that divides both m and n.
// GCD(0, n) is n, and the result is non-negative whenever m and n are.
func GCD(m, n int64) int64 {
	_, _, d := ExtGCD(m, n)
	return d
}

// ExtGCD returns the GCD of m and n along with the Bézout coefficients.
// That is, it returns a, b, d such that:
//
//	a*m + b*n == d == GCD(m, n)
//
// When m == 0, ExtGCD returns 0, 1, n. Otherwise the pair (m, n) is replaced
// by (n%m, m) until m reaches zero, with the coefficients carried back at
// each step. Division truncates toward zero, so for negative operands d may
// be negative; it is non-negative whenever m and n are.
func ExtGCD(m, n int64) (a, b, d int64) {
	// r0, r1 are successive remainders; each satisfies r == s*m + t*n for
	// the matching s, t
	r0, r1 := n, m
	s0, s1 := int64(0), int64(1)
	t0, t1 := int64(1), int64(0)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		s0, s1 = s1, s0-q*s1
		t0, t1 = t1, t0-q*t1
	}
	return s0, t0, r0
}
