package crt64

import "fmt"

// System is a set of simultaneous congruences
//
//	x ≡ Remainders[i] (mod Moduli[i])
//
// for every i. A valid system has as many remainders as moduli and every
// modulus is positive. A solution exists when the moduli are pairwise
// coprime, and it is unique modulo the product of the moduli.
//
// The zero value is the empty system, whose solution is 0 (mod 1).
type System struct {
	Remainders []int64
	Moduli     []int64
}

// Solution is the result of solving a System.
//
// X is the sum of the CRT terms reduced with Go's % operator, so it takes the
// sign of that sum and may be negative when some remainders are negative.
// Use Canonical for the least non-negative representative.
type Solution struct {
	X int64
	M int64
}

// Len returns the number of congruences in s.
func (s System) Len() int {
	return len(s.Moduli)
}

// Validate returns an error if s has mismatched lengths or a modulus that is
// not positive. Validate does not check that the moduli are coprime.
func (s System) Validate() error {
	if len(s.Remainders) != len(s.Moduli) {
		return fmt.Errorf("%w: %d remainders, %d moduli", ErrLenMismatch, len(s.Remainders), len(s.Moduli))
	}
	for i, m := range s.Moduli {
		if m <= 0 {
			return fmt.Errorf("congruence %d: %w: %d", i, ErrModulusInvalid, m)
		}
	}
	return nil
}

// TrySolve returns the solution of s.
// TrySolve returns an error wrapping one of the following:
//   - ErrLenMismatch or ErrModulusInvalid if s is not valid
//   - ErrNotCoprime if some modulus shares a factor with the others
//   - ErrOverflow if the product of the moduli or any intermediate term or
//     sum does not fit in an int64
//
// Congruences are combined in order and the first failure is returned.
func (s System) TrySolve() (Solution, error) {
	if err := s.Validate(); err != nil {
		return Solution{}, err
	}
	m, ok := product(s.Moduli)
	if !ok {
		return Solution{}, fmt.Errorf("product of moduli: %w", ErrOverflow)
	}
	var sum int64
	for i, mi := range s.Moduli {
		// Mi is the product of every other modulus
		Mi := m / mi
		inv, err := TryModInverse(Mi, mi)
		if err != nil {
			return Solution{}, fmt.Errorf("congruence %d: %w", i, err)
		}
		term, ok := mulChecked(s.Remainders[i], Mi)
		if ok {
			term, ok = mulChecked(term, inv)
		}
		if !ok {
			return Solution{}, fmt.Errorf("congruence %d: computing term: %w", i, ErrOverflow)
		}
		if sum, ok = addChecked(sum, term); !ok {
			return Solution{}, fmt.Errorf("congruence %d: adding term: %w", i, ErrOverflow)
		}
	}
	return Solution{X: sum % m, M: m}, nil
}

// Solve is like TrySolve but takes the remainders and moduli directly and
// returns only X.
// Solve returns false for any error, without distinguishing the cause.
func Solve(remainders, moduli []int64) (int64, bool) {
	sol, err := TrySolve(remainders, moduli)
	if err != nil {
		return 0, false
	}
	return sol.X, true
}

// TrySolve solves the system formed by remainders and moduli.
// The following are equivalent in outcome and behavior:
//
//	TrySolve(r, m) == System{r, m}.TrySolve()
func TrySolve(remainders, moduli []int64) (Solution, error) {
	return System{Remainders: remainders, Moduli: moduli}.TrySolve()
}

// Canonical returns X reduced into [0, M).
func (x Solution) Canonical() int64 {
	if x.M == 0 {
		return x.X
	}
	return floorMod(x.X, x.M)
}

// Satisfies returns true if x is congruent to every remainder in s modulo its
// modulus. Satisfies returns false if s is not valid.
func (x Solution) Satisfies(s System) bool {
	if s.Validate() != nil {
		return false
	}
	c := x.Canonical()
	for i, m := range s.Moduli {
		if floorMod(c, m) != floorMod(s.Remainders[i], m) {
			return false
		}
	}
	return true
}
