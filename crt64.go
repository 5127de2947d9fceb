// Package crt64 solves systems of simultaneous congruences over int64 using
// the Chinese Remainder Theorem. See the System type and Solve function for
// details.
package crt64

import "errors"

// Common errors returned by functions in this package.
var (
	ErrModulusInvalid = errors.New("modulus is not positive")
	ErrNotCoprime     = errors.New("not coprime")
	ErrOverflow       = errors.New("int64 overflow")
	ErrLenMismatch    = errors.New("remainders and moduli differ in length")
	ErrFmtInvalid     = errors.New("invalid congruence format")
)
