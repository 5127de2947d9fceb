package crt64

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCongruence parses a string representation of a single congruence.
// The string must be in the form "R:M" or "R mod M", where R and M are
// integers in base 10 and only R may be negative (indicated with leading
// hyphen). Whitespace around R and M is ignored. M must be positive.
func ParseCongruence(s string) (r, m int64, err error) {
	rs, ms, ok := strings.Cut(s, ":")
	if !ok {
		rs, ms, ok = strings.Cut(s, " mod ")
	}
	if !ok {
		return 0, 0, ErrFmtInvalid
	}
	r, err = strconv.ParseInt(strings.TrimSpace(rs), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing remainder: %w", err)
	}
	m, err = strconv.ParseInt(strings.TrimSpace(ms), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing modulus: %w", err)
	}
	if m <= 0 {
		return 0, 0, ErrModulusInvalid
	}
	return r, m, nil
}

// ParseSystemString parses a comma-separated list of congruences, each in a
// form accepted by ParseCongruence, such as "2:3, 3:5, 2:7".
// The empty string (or one containing only whitespace) is the empty system.
func ParseSystemString(s string) (System, error) {
	var sys System
	if strings.TrimSpace(s) == "" {
		return sys, nil
	}
	for i, part := range strings.Split(s, ",") {
		r, m, err := ParseCongruence(part)
		if err != nil {
			return System{}, fmt.Errorf("parsing congruence %d: %w", i, err)
		}
		sys.Add(r, m)
	}
	return sys, nil
}

// Add appends the congruence x ≡ r (mod m) to s.
func (s *System) Add(r, m int64) {
	s.Remainders = append(s.Remainders, r)
	s.Moduli = append(s.Moduli, m)
}

// String returns a string representation of s, one congruence per line in
// the form "x ≡ R (mod M)". If s has mismatched lengths, the extra entries are
// omitted.
func (s System) String() string {
	var buf strings.Builder
	n := min(len(s.Remainders), len(s.Moduli))
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(congruenceString(s.Remainders[i], s.Moduli[i]))
	}
	return buf.String()
}

// String returns a string representation of x, as "x ≡ X (mod M)".
func (x Solution) String() string {
	return congruenceString(x.X, x.M)
}

func congruenceString(r, m int64) string {
	return fmt.Sprintf("x ≡ %d (mod %d)", r, m)
}
