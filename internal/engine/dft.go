// Package engine implements the direct discrete Fourier transform that
// powers the epicycle decomposition.
package engine

import (
	"math"
)

// ProgressFunc receives progress notifications during a transform.
// done is the number of completed outer iterations and total the transform
// size. Implementations must be fast and must not block: the callback runs
// synchronously on the goroutine doing the numeric work.
type ProgressFunc func(done, total int)

const twoPi = 2 * math.Pi

// Coefficients computes the forward transform of seq into dst and returns dst.
//
// The transform is the direct O(N²) summation
//
//	X[k] = (1/N) · Σ_n x[n] · e^(-i·2πkn/N)
//
// normalized by the sequence length N. Bin k therefore holds the mean of the
// input rotated onto frequency k, and bin 0 is the plain mean of the input.
//
// If dst is nil, a new slice is allocated. Otherwise len(dst) must equal
// len(seq) or Coefficients panics. An empty seq yields an empty result with
// no iteration. The input is never modified.
//
// If progress is non-nil it is invoked at the start of every outer iteration
// whose index is a multiple of every, receiving the iteration index and N.
func Coefficients(dst, seq []complex128, progress ProgressFunc, every int) []complex128 {
	n := len(seq)
	dst = ensureDst(dst, n)
	if n == 0 {
		return dst
	}

	fn := float64(n)
	for k := range n {
		if progress != nil && k%every == 0 {
			progress(k, n)
		}
		dst[k] = coefficient(seq, k, fn)
	}
	return dst
}

// coefficient accumulates frequency bin k over the full sequence.
// Each input sample is rotated by e^(-i·2πkn/N) and summed; the accumulated
// real and imaginary parts are each divided by N.
func coefficient(seq []complex128, k int, fn float64) complex128 {
	kf := float64(k)
	var acc complex128
	for i, s := range seq {
		sin, cos := math.Sincos(twoPi * kf * float64(i) / fn)
		acc += s * complex(cos, -sin)
	}
	return complex(real(acc)/fn, imag(acc)/fn)
}

// Sequence computes the inverse evaluation of coeff into dst and returns dst.
//
// Because Coefficients normalizes the forward transform by N, the inverse is
// the plain unscaled sum
//
//	x[n] = Σ_k X[k] · e^(+i·2πkn/N)
//
// so Sequence(nil, Coefficients(nil, seq, nil, 1)) reproduces seq up to
// floating-point rounding.
//
// If dst is nil, a new slice is allocated. Otherwise len(dst) must equal
// len(coeff) or Sequence panics.
func Sequence(dst, coeff []complex128) []complex128 {
	n := len(coeff)
	dst = ensureDst(dst, n)
	if n == 0 {
		return dst
	}

	fn := float64(n)
	for i := range n {
		fi := float64(i)
		var acc complex128
		for k, c := range coeff {
			sin, cos := math.Sincos(twoPi * float64(k) * fi / fn)
			acc += c * complex(cos, sin)
		}
		dst[i] = acc
	}
	return dst
}

// SequenceAt evaluates the rotating-vector sum Σ_k X[k]·e^(i·k·t) at an
// arbitrary angle t in radians. At t = 2πn/N this equals Sequence's n-th
// output; between those angles it interpolates the path traced by the
// epicycles.
func SequenceAt(coeff []complex128, t float64) complex128 {
	var acc complex128
	for k, c := range coeff {
		sin, cos := math.Sincos(float64(k) * t)
		acc += c * complex(cos, sin)
	}
	return acc
}

// ensureDst validates or allocates a destination slice of length n.
func ensureDst(dst []complex128, n int) []complex128 {
	if dst == nil {
		return make([]complex128, n)
	}
	if len(dst) != n {
		panic("engine: destination length mismatch")
	}
	return dst
}
