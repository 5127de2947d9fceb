package crt64_test

import (
	"errors"
	"math"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/kbolino/crt64"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// some distinct primes satisfying both P_M*P_N > 2^32 and P_K*P_M*P_N < 2^64,
// for all K, M, N
const (
	P1 = 92821
	P2 = 92831
	P3 = 92849
	P4 = 92857
)

// the Mersenne prime 2^61-1
const M61 = 1<<61 - 1

// sievePrimes returns the primes not greater than limit.
func sievePrimes(limit uint) []int64 {
	composite := bitset.New(limit + 1)
	var primes []int64
	for i := uint(2); i <= limit; i++ {
		if composite.Test(i) {
			continue
		}
		primes = append(primes, int64(i))
		for j := i * i; j <= limit; j += i {
			composite.Set(j)
		}
	}
	return primes
}

func TestSievePrimes(t *testing.T) {
	assert.Equal(t, []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, sievePrimes(30))
}

type SolveCase struct {
	Name       string
	Remainders []int64
	Moduli     []int64
	X, M       int64
	Err        error
}

var SolveCases = []SolveCase{
	{"Worked", []int64{2, 3, 2}, []int64{3, 5, 7}, 23, 105, nil},
	{"Empty", nil, nil, 0, 1, nil},
	{"EmptyNonNil", []int64{}, []int64{}, 0, 1, nil},
	{"Single", []int64{4}, []int64{9}, 4, 9, nil},
	{"SingleUnreduced", []int64{10}, []int64{7}, 3, 7, nil},
	{"UnitModulus", []int64{5}, []int64{1}, 0, 1, nil},
	{"Pair", []int64{1, 2}, []int64{3, 4}, 10, 12, nil},
	{"Wide", []int64{1, 2, 3}, []int64{P1, P2, P3}, 756871591812682, P1 * P2 * P3, nil},
	{"NegativeRemainder", []int64{-1}, []int64{5}, -1, 5, nil},
	{"NegativeRemainders", []int64{-1, -1}, []int64{3, 5}, -1, 15, nil},
	{"NotCoprime", []int64{1, 2}, []int64{4, 6}, 0, 0, crt64.ErrNotCoprime},
	{"NotCoprimeZeroRemainders", []int64{0, 0}, []int64{4, 6}, 0, 0, crt64.ErrNotCoprime},
	{"NotCoprimeLater", []int64{2, 3, 2, 1}, []int64{3, 5, 7, 21}, 0, 0, crt64.ErrNotCoprime},
	{"Repeated", []int64{1, 1}, []int64{5, 5}, 0, 0, crt64.ErrNotCoprime},
	{"ProductOverflow", []int64{0, 0, 0, 0}, []int64{P1, P2, P3, P4}, 0, 0, crt64.ErrOverflow},
	{"TermOverflow", []int64{1 << 40, 0, 0}, []int64{P1, P2, P3}, 0, 0, crt64.ErrOverflow},
	{"WideTermOverflow", []int64{1, M61 - 1}, []int64{2, M61}, 0, 0, crt64.ErrOverflow},
	{"SumOverflow", []int64{math.MaxInt64 / 10, math.MaxInt64 / 6}, []int64{3, 5}, 0, 0, crt64.ErrOverflow},
	{"LenMismatch", []int64{1, 2}, []int64{3}, 0, 0, crt64.ErrLenMismatch},
	{"LenMismatchEmpty", []int64{1}, nil, 0, 0, crt64.ErrLenMismatch},
	{"ZeroModulus", []int64{1, 2}, []int64{3, 0}, 0, 0, crt64.ErrModulusInvalid},
	{"NegativeModulus", []int64{1, 2}, []int64{-3, 5}, 0, 0, crt64.ErrModulusInvalid},
}

func TestTrySolve(t *testing.T) {
	for _, c := range SolveCases {
		t.Run(c.Name, func(t *testing.T) {
			sol, err := crt64.TrySolve(c.Remainders, c.Moduli)
			if c.Err != nil {
				assert.ErrorIs(t, err, c.Err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, crt64.Solution{X: c.X, M: c.M}, sol)
		})
	}
}

func TestSolve(t *testing.T) {
	for _, c := range SolveCases {
		t.Run(c.Name, func(t *testing.T) {
			x, ok := crt64.Solve(c.Remainders, c.Moduli)
			assert.Equal(t, c.Err == nil, ok)
			if ok {
				assert.Equal(t, c.X, x)
			} else {
				assert.Zero(t, x)
			}
		})
	}
}

func TestSystem_TrySolve(t *testing.T) {
	var sys crt64.System
	sys.Add(2, 3)
	sys.Add(3, 5)
	sys.Add(2, 7)
	require.Equal(t, 3, sys.Len())

	sol, err := sys.TrySolve()
	require.NoError(t, err)
	assert.EqualValues(t, 23, sol.X)
	assert.EqualValues(t, 105, sol.M)
	assert.True(t, sol.Satisfies(sys))
}

func TestSystem_TrySolve_errorIndex(t *testing.T) {
	_, err := crt64.TrySolve([]int64{1, 2}, []int64{4, 6})
	require.ErrorIs(t, err, crt64.ErrNotCoprime)
	assert.Contains(t, err.Error(), "congruence ")
}

func TestSystem_Validate(t *testing.T) {
	assert.NoError(t, crt64.System{}.Validate())
	assert.NoError(t, crt64.System{Remainders: []int64{-5}, Moduli: []int64{4}}.Validate())
	assert.ErrorIs(t, crt64.System{Remainders: []int64{1}}.Validate(), crt64.ErrLenMismatch)
	assert.ErrorIs(t, crt64.System{Remainders: []int64{1}, Moduli: []int64{0}}.Validate(), crt64.ErrModulusInvalid)
	// Validate does not look for common factors
	assert.NoError(t, crt64.System{Remainders: []int64{1, 1}, Moduli: []int64{4, 6}}.Validate())
}

// X keeps the sign of the accumulated sum while Canonical reduces it into
// [0, M); both describe the same residue class.
func TestSolution_negativeNotNormalized(t *testing.T) {
	sys := crt64.System{Remainders: []int64{-1, -1}, Moduli: []int64{3, 5}}
	sol, err := sys.TrySolve()
	require.NoError(t, err)
	assert.Negative(t, sol.X)
	assert.EqualValues(t, 14, sol.Canonical())
	assert.True(t, sol.Satisfies(sys))
}

func TestSolution_Canonical(t *testing.T) {
	cases := []struct {
		Sol  crt64.Solution
		Want int64
	}{
		{crt64.Solution{X: 0, M: 1}, 0},
		{crt64.Solution{X: 23, M: 105}, 23},
		{crt64.Solution{X: -1, M: 105}, 104},
		{crt64.Solution{X: -105, M: 105}, 0},
		{crt64.Solution{X: math.MinInt64 + 1, M: math.MaxInt64}, 0},
		{crt64.Solution{X: -1, M: math.MaxInt64}, math.MaxInt64 - 1},
	}
	for _, c := range cases {
		t.Run(c.Sol.String(), func(t *testing.T) {
			assert.Equal(t, c.Want, c.Sol.Canonical())
		})
	}
}

func TestSolution_Satisfies(t *testing.T) {
	sys := crt64.System{Remainders: []int64{2, 3, 2}, Moduli: []int64{3, 5, 7}}
	assert.True(t, crt64.Solution{X: 23, M: 105}.Satisfies(sys))
	assert.True(t, crt64.Solution{X: 128, M: 105}.Satisfies(sys))
	assert.False(t, crt64.Solution{X: 24, M: 105}.Satisfies(sys))
	assert.False(t, crt64.Solution{X: 23, M: 105}.Satisfies(crt64.System{Remainders: []int64{1}}))
}

func TestTrySolve_properties(t *testing.T) {
	primes := sievePrimes(100)
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	// with remainders below their moduli, no term exceeds M*max(moduli), so
	// eight odd primes below 100 cannot overflow
	properties.Property("solution satisfies every congruence", prop.ForAll(
		func(offset, n int, seeds []int64) bool {
			n = min(n, len(seeds))
			moduli := primes[offset : offset+n]
			remainders := make([]int64, n)
			for i, m := range moduli {
				remainders[i] = seeds[i] % m
			}
			sys := crt64.System{Remainders: remainders, Moduli: moduli}
			sol, err := sys.TrySolve()
			if err != nil {
				return false
			}
			c := sol.Canonical()
			return c >= 0 && c < sol.M && sol.X == c && sol.Satisfies(sys)
		},
		gen.IntRange(1, len(primes)-8),
		gen.IntRange(0, 8),
		gen.SliceOfN(8, gen.Int64Range(0, 1<<40)),
	))

	properties.Property("a shared factor means no solution", prop.ForAll(
		func(f, a, b int64) bool {
			if crt64.GCD(a, b) != 1 {
				return true
			}
			_, err := crt64.TrySolve([]int64{1, 1}, []int64{f * a, f * b})
			return errors.Is(err, crt64.ErrNotCoprime)
		},
		gen.Int64Range(2, 1000),
		gen.Int64Range(1, 1000),
		gen.Int64Range(1, 1000),
	))

	properties.TestingRun(t)
}
