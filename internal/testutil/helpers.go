// Package testutil provides reusable test helpers for epicycle transform
// tests: complex-plane assertions and reproducible path generators.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	// DefaultTolerance suits exact-arithmetic checks disturbed only by
	// rounding in a handful of operations.
	DefaultTolerance = 1e-12

	// RoundTripTolerance suits forward-then-inverse transform checks,
	// where error accumulates over O(N²) operations.
	RoundTripTolerance = 1e-9

	// QuantizedTolerance suits paths that passed through 16-bit samples.
	QuantizedTolerance = 1e-3
)

// AssertComplexInDelta verifies that two complex values agree within
// tolerance in the Euclidean metric.
func AssertComplexInDelta(t *testing.T, expected, actual complex128, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if d := cmplx.Abs(actual - expected); d > tolerance {
		return assert.Fail(t, "complex values differ",
			"|actual-expected| = %e exceeds %e (expected=%v, actual=%v)",
			d, tolerance, expected, actual)
	}
	return true
}

// AssertPathsInDelta verifies elementwise agreement of two paths.
func AssertPathsInDelta(t *testing.T, expected, actual []complex128, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if d := cmplx.Abs(actual[i] - expected[i]); d > tolerance {
			return assert.Fail(t, "paths differ",
				"point %d: |actual-expected| = %e exceeds %e (expected=%v, actual=%v)",
				i, d, tolerance, expected[i], actual[i])
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no point of a path is NaN or Inf on
// either axis.
func AssertNoNaNOrInf(t *testing.T, path []complex128, msgAndArgs ...any) bool {
	t.Helper()
	for i, p := range path {
		if cmplx.IsNaN(p) {
			return assert.Fail(t, "found NaN", "path[%d] is NaN", i)
		}
		if cmplx.IsInf(p) {
			return assert.Fail(t, "found Inf", "path[%d] is Inf", i)
		}
	}
	return true
}

// UnitCircle returns n points of the unit circle traversed counterclockwise
// starting at (1, 0). Its transform concentrates on frequency 1, which makes
// result checks trivial.
func UnitCircle(n int) []complex128 {
	path := make([]complex128, n)
	for i := range path {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		path[i] = complex(cos, sin)
	}
	return path
}

// NoisePath returns a reproducible pseudo-random path with both coordinates
// in [-1, 1], using a fixed linear congruential generator so failures
// reproduce across runs and platforms.
func NoisePath(n int, seed uint64) []complex128 {
	state := seed
	next := func() float64 {
		state = state*1103515245 + 12345
		return float64((state>>16)&0x7fff)/16384.0 - 1.0
	}
	path := make([]complex128, n)
	for i := range path {
		re := next()
		im := next()
		path[i] = complex(re, im)
	}
	return path
}
