package epicycles

// Transform is a convenience function for one-shot sequential decomposition.
// It is equivalent to creating an Analyzer with a nil config and calling its
// Transform method.
func Transform(samples []complex128) []Coefficient {
	a, _ := New(nil)
	return a.Transform(samples)
}

// TransformParallel is a convenience function for one-shot decomposition
// across the given number of worker goroutines. The result is identical to
// Transform for any worker count.
func TransformParallel(samples []complex128, workers int) ([]Coefficient, error) {
	a, err := New(&Config{Workers: workers})
	if err != nil {
		return nil, err
	}
	return a.Transform(samples), nil
}

// Reconstruct is a convenience function inverting a one-shot Transform.
func Reconstruct(coeffs []Coefficient) ([]complex128, error) {
	a, _ := New(nil)
	return a.Reconstruct(coeffs)
}

// JoinPath packs separate x and y coordinate slices into a complex path with
// x on the real axis and y on the imaginary axis. It is the inverse of
// SplitPath. The slices are truncated to the shorter length.
func JoinPath(xs, ys []float64) []complex128 {
	n := min(len(xs), len(ys))
	path := make([]complex128, n)
	for i := range n {
		path[i] = complex(xs[i], ys[i])
	}
	return path
}
