package epicycles

import (
	"cmp"
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"
	"github.com/tphakala/simd/f64"
)

// Coefficient is one frequency-domain term of a transformed path: a rotating
// vector whose radius is Amp, whose angular velocity is Freq revolutions per
// path period, and whose angle at time zero is Phase.
type Coefficient struct {
	// Re and Im are the real and imaginary parts of the bin value.
	Re float64
	Im float64

	// Freq is the integer frequency index k, in [0, N) for a transform of
	// size N. Bin 0 carries the mean of the path.
	Freq int

	// Amp is the Euclidean norm sqrt(Re²+Im²). Always non-negative.
	Amp float64

	// Phase is atan2(Im, Re) in radians, in (-π, π], and exactly 0 for an
	// empty bin.
	Phase float64
}

// Complex returns the bin value Re + i·Im.
func (c Coefficient) Complex() complex128 {
	return complex(c.Re, c.Im)
}

// At returns the rotating-vector value Amp·e^(i·(Freq·t+Phase)) at angle t.
// Summing At over a coefficient set evaluates the reconstructed path; one
// full revolution of the fundamental corresponds to t in [0, 2π).
func (c Coefficient) At(t float64) complex128 {
	sin, cos := math.Sincos(float64(c.Freq)*t + c.Phase)
	return complex(c.Amp*cos, c.Amp*sin)
}

// SortByAmplitude reorders coeffs in place by descending amplitude, keeping
// the relative order of equal amplitudes. Renderers draw the largest circles
// first; the Freq fields keep each term's identity, so Reconstruct and
// NewTracer accept the sorted slice unchanged.
func SortByAmplitude(coeffs []Coefficient) {
	slices.SortStableFunc(coeffs, func(a, b Coefficient) int {
		return cmp.Compare(b.Amp, a.Amp)
	})
}

// SignalEnergy returns Σ|x|² over a sampled path.
func SignalEnergy(samples []complex128) float64 {
	n := len(samples)
	if n == 0 {
		return 0
	}
	re := make([]float64, n)
	im := make([]float64, n)
	splitComplex(samples, re, im)
	return f64.DotProduct(re, re) + f64.DotProduct(im, im)
}

// SpectralEnergy returns N·Σ Amp² over a coefficient set. For the output of
// Transform this equals SignalEnergy of the input up to floating-point
// rounding, since the forward transform scales each bin by 1/N.
func SpectralEnergy(coeffs []Coefficient) float64 {
	n := len(coeffs)
	if n == 0 {
		return 0
	}
	re := make([]float64, n)
	im := make([]float64, n)
	for i, c := range coeffs {
		re[i] = c.Re
		im[i] = c.Im
	}
	power := make([]float64, n)
	vecmath.Power(power, re, im)
	return float64(n) * f64.Sum(power)
}

// describe enriches raw frequency bins with their index, amplitude, and
// phase. Amplitudes are derived in one vectorized pass over the split
// real/imaginary planes.
func describe(raw []complex128) []Coefficient {
	n := len(raw)
	if n == 0 {
		return []Coefficient{}
	}

	re := make([]float64, n)
	im := make([]float64, n)
	splitComplex(raw, re, im)

	amps := make([]float64, n)
	vecmath.Magnitude(amps, re, im)

	out := make([]Coefficient, n)
	for k := range out {
		out[k] = Coefficient{
			Re:    re[k],
			Im:    im[k],
			Freq:  k,
			Amp:   amps[k],
			Phase: math.Atan2(im[k], re[k]),
		}
	}
	return out
}

// splitComplex unpacks src into separate real and imaginary planes.
// All three slices must have the same length.
func splitComplex(src []complex128, re, im []float64) {
	for i, c := range src {
		re[i] = real(c)
		im[i] = imag(c)
	}
}
