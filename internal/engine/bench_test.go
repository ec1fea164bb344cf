package engine

import (
	"fmt"
	"testing"
)

// BenchmarkCoefficients measures the sequential O(N²) transform.
func BenchmarkCoefficients(b *testing.B) {
	for _, n := range []int{256, 1024} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			seq := makeNoisePath(n, 1)
			dst := make([]complex128, n)

			b.ResetTimer()
			for b.Loop() {
				Coefficients(dst, seq, nil, DefaultProgressInterval)
			}
		})
	}
}

// BenchmarkCoefficientsParallel measures outer-loop scaling across workers.
func BenchmarkCoefficientsParallel(b *testing.B) {
	const n = 1024
	seq := makeNoisePath(n, 1)
	dst := make([]complex128, n)

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ResetTimer()
			for b.Loop() {
				CoefficientsParallel(dst, seq, workers, nil, DefaultProgressInterval)
			}
		})
	}
}

// BenchmarkSequence measures the inverse evaluation.
func BenchmarkSequence(b *testing.B) {
	const n = 1024
	coeff := Coefficients(nil, makeNoisePath(n, 1), nil, DefaultProgressInterval)
	dst := make([]complex128, n)

	b.ResetTimer()
	for b.Loop() {
		Sequence(dst, coeff)
	}
}
