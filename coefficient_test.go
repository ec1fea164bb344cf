package epicycles

import (
	"math"
	"math/cmplx"
	"testing"
)

// TestSortByAmplitude verifies descending order and that sorting only
// reorders, never rewrites, the terms.
func TestSortByAmplitude(t *testing.T) {
	coeffs := Transform(noisePath(40, 3))
	seen := make(map[int]Coefficient, len(coeffs))
	for _, c := range coeffs {
		seen[c.Freq] = c
	}

	SortByAmplitude(coeffs)

	for i := 1; i < len(coeffs); i++ {
		if coeffs[i].Amp > coeffs[i-1].Amp {
			t.Fatalf("amplitudes not descending at %d: %v > %v",
				i, coeffs[i].Amp, coeffs[i-1].Amp)
		}
	}
	for _, c := range coeffs {
		if seen[c.Freq] != c {
			t.Fatalf("term for frequency %d changed during sort", c.Freq)
		}
	}
}

// TestSortByAmplitudeStable verifies that equal amplitudes keep their
// original relative order.
func TestSortByAmplitudeStable(t *testing.T) {
	coeffs := []Coefficient{
		{Freq: 0, Amp: 1},
		{Freq: 1, Amp: 2},
		{Freq: 2, Amp: 1},
		{Freq: 3, Amp: 2},
	}

	SortByAmplitude(coeffs)

	wantFreqs := []int{1, 3, 0, 2}
	for i, want := range wantFreqs {
		if coeffs[i].Freq != want {
			t.Fatalf("position %d: Freq = %d, want %d (order %v)",
				i, coeffs[i].Freq, want, coeffs)
		}
	}
}

// TestCoefficientAt verifies the rotating-vector evaluation against the bin
// value and the polar definition.
func TestCoefficientAt(t *testing.T) {
	coeffs := Transform(noisePath(16, 11))

	for _, c := range coeffs {
		// At angle zero the vector is the bin value itself.
		if d := cmplx.Abs(c.At(0) - c.Complex()); d > 1e-12 {
			t.Errorf("bin %d: |At(0)-Complex()| = %e", c.Freq, d)
		}

		// The radius never changes as the vector rotates.
		for _, angle := range []float64{0.3, 1.7, 5.9} {
			if d := math.Abs(cmplx.Abs(c.At(angle)) - c.Amp); d > 1e-12 {
				t.Errorf("bin %d at t=%v: radius off by %e", c.Freq, angle, d)
			}
		}
	}
}

// TestCoefficientAtRotationRate verifies that a coefficient with frequency k
// completes exactly k turns over one period of the fundamental.
func TestCoefficientAtRotationRate(t *testing.T) {
	c := Coefficient{Freq: 3, Amp: 2}

	// A third of a fundamental revolution is one full turn for k=3.
	third := 2 * math.Pi / 3
	if d := cmplx.Abs(c.At(third) - c.At(0)); d > 1e-12 {
		t.Errorf("|At(2π/3)-At(0)| = %e, want 0", d)
	}
	// A half turn of the term itself points the opposite way.
	if d := cmplx.Abs(c.At(third/2) + c.At(0)); d > 1e-12 {
		t.Errorf("|At(π/3)+At(0)| = %e, want 0", d)
	}
}

// TestSignalEnergyKnownValues checks the energy sum on hand-computable
// inputs.
func TestSignalEnergyKnownValues(t *testing.T) {
	if got := SignalEnergy(nil); got != 0 {
		t.Errorf("SignalEnergy(nil) = %v, want 0", got)
	}

	got := SignalEnergy([]complex128{complex(3, 4), complex(1, 0)})
	if math.Abs(got-26) > 1e-12 {
		t.Errorf("SignalEnergy = %v, want 26", got)
	}
}

// TestSpectralEnergyKnownValues checks the scaled spectral power sum on
// hand-computable inputs.
func TestSpectralEnergyKnownValues(t *testing.T) {
	if got := SpectralEnergy(nil); got != 0 {
		t.Errorf("SpectralEnergy(nil) = %v, want 0", got)
	}

	coeffs := []Coefficient{
		{Re: 3, Im: 4, Freq: 0},
		{Re: 0, Im: 1, Freq: 1},
	}
	got := SpectralEnergy(coeffs)
	if math.Abs(got-52) > 1e-12 {
		t.Errorf("SpectralEnergy = %v, want 52", got)
	}
}
