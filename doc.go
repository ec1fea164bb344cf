// Package epicycles decomposes sampled 2D paths into sums of rotating
// vectors using the discrete Fourier transform, in pure Go.
//
// A closed drawing, traced as complex samples x + iy, becomes a set of
// [Coefficient] terms. Each term is a vector of length Amp rotating at an
// integer frequency Freq with starting angle Phase; chained tip to tail and
// advanced together they retrace the original drawing. This is the classic
// epicycle construction used for Fourier drawing machines and animation.
//
// # Features
//
//   - Direct-summation transform with exact bin semantics, reference-checked
//     against gonum's FFT in the test suite
//   - Sequential and parallel computation with bit-identical results
//   - Progress reporting for long transforms
//   - Tracer for frame-by-frame animation with per-frame cost linear in the
//     coefficient count
//   - Path decimation for bounding the quadratic transform cost
//   - SIMD-accelerated amplitude, energy, and rotor arithmetic via
//     github.com/tphakala/simd and github.com/cwbudde/algo-vecmath
//
// # Quick Start
//
// For one-shot decomposition of a traced path:
//
//	path := epicycles.JoinPath(xs, ys)
//	coeffs := epicycles.Transform(epicycles.DecimateToTarget(path, epicycles.DefaultDecimationTarget))
//	epicycles.SortByAmplitude(coeffs)
//
// For repeated transforms with progress reporting and worker goroutines:
//
//	a, err := epicycles.New(&epicycles.Config{
//	    Workers: runtime.NumCPU(),
//	    Progress: func(done, total int) {
//	        fmt.Printf("Progress: %d/%d\n", done, total)
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	coeffs := a.Transform(path)
//
// # Coefficients
//
// Transform returns one [Coefficient] per frequency index k in [0, N), in
// ascending order, for an input of N samples. Bin 0 is the mean of the path,
// so it positions the drawing; higher bins add detail. The bin value is
// normalized by N, which makes amplitudes independent of how densely the
// path was sampled.
//
// [SortByAmplitude] reorders a coefficient set largest-first for rendering.
// Each term carries its own frequency index, so sorted sets remain valid
// inputs to [Reconstruct] and [NewTracer].
//
// # Animation
//
// [Tracer] steps a coefficient set through one revolution in N frames:
//
//	tr := epicycles.NewTracer(coeffs)
//	for range n {
//	    arms := tr.Arms(nil) // joint positions for circles and segments
//	    pen := tr.Step()     // tip of the last arm
//	    draw(arms, pen)
//	}
//
// [FitScale], [SplitPath], [ScalePath], and [InterleavePath] help map traced
// positions onto a fixed viewport.
//
// # Architecture
//
// The transform is the direct O(N²) summation rather than an FFT. Direct
// summation keeps every bin's definition explicit, works for any N without
// padding, and parallelizes over the outer frequency loop with no shared
// state; decimating paths to around a thousand points keeps it interactive.
// For spectral work on long signals an FFT library is the better tool.
//
// # Thread Safety
//
// An [Analyzer] holds configuration only, so one instance may be shared
// freely across goroutines. A [Tracer] is a single animation's mutable
// state and must be confined to one goroutine.
package epicycles
