package epicycles

import (
	"errors"
	"fmt"

	"github.com/tphakala/simd/cpu"

	"github.com/tphakala/go-epicycles/internal/engine"
)

// ProgressFunc receives progress notifications during a transform.
// done is the number of completed frequency bins and total the transform
// size. The callback runs synchronously on the goroutine doing the numeric
// work, so it must be fast and must not block.
type ProgressFunc = engine.ProgressFunc

// Config holds transform configuration.
type Config struct {
	// Workers sets the number of goroutines computing frequency bins.
	// 0 and 1 both select the sequential path; higher values split the
	// outer transform loop. Results are identical in every mode.
	Workers int

	// Progress, when non-nil, receives periodic (done, total)
	// notifications during a transform. Reporting is observational only
	// and never changes the numeric result.
	Progress ProgressFunc

	// ProgressInterval is the number of frequency bins between progress
	// reports. Set to 0 to use DefaultProgressInterval.
	ProgressInterval int
}

// Common errors returned by the package.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid epicycles configuration")

	// ErrInvalidCoefficients indicates a coefficient slice whose frequency
	// indexes do not form a dense [0, N) range.
	ErrInvalidCoefficients = errors.New("invalid coefficient sequence")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}

	if c.Workers > maxWorkers {
		return fmt.Errorf("%w: too many workers (max %d)", ErrInvalidConfig, maxWorkers)
	}

	if c.ProgressInterval < 0 {
		return fmt.Errorf("%w: progress interval must not be negative", ErrInvalidConfig)
	}

	return nil
}

// Analyzer converts sampled 2D paths into epicycle coefficients and back.
//
// The zero-cost way to obtain one is New with a nil config, which selects
// the sequential transform with default progress settings. An Analyzer holds
// configuration only, never per-call state, so a single instance is safe for
// concurrent use and calls on it are independent.
type Analyzer struct {
	workers  int
	every    int
	progress ProgressFunc
}

// New creates an Analyzer with the specified configuration.
// A nil config selects the defaults: sequential transform, no progress
// reporting.
func New(config *Config) (*Analyzer, error) {
	if config == nil {
		config = &Config{}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	every := config.ProgressInterval
	if every == 0 {
		every = DefaultProgressInterval
	}

	return &Analyzer{
		workers:  config.Workers,
		every:    every,
		progress: config.Progress,
	}, nil
}

// Transform decomposes an ordered path of complex samples into one
// Coefficient per frequency index.
//
// The output has exactly len(samples) entries in ascending frequency order,
// with output[k].Freq == k; bin 0 is the mean of the path. An empty input
// yields an empty output. The input is never modified and the call leaves no
// state behind.
func (a *Analyzer) Transform(samples []complex128) []Coefficient {
	return describe(a.Coefficients(nil, samples))
}

// Coefficients computes the raw complex frequency bins of samples into dst,
// skipping the amplitude and phase derivation of Transform. If dst is nil a
// new slice is allocated; otherwise its length must equal len(samples).
func (a *Analyzer) Coefficients(dst, samples []complex128) []complex128 {
	if a.workers > 1 {
		return engine.CoefficientsParallel(dst, samples, a.workers, a.progress, a.every)
	}
	return engine.Coefficients(dst, samples, a.progress, a.every)
}

// Reconstruct evaluates the path described by coeffs at its own sample
// points, inverting Transform up to floating-point rounding.
//
// Coefficients are placed by their Freq field, so slices reordered by
// SortByAmplitude reconstruct correctly. The Freq values must form a dense
// [0, N) range or ErrInvalidCoefficients is returned.
func (a *Analyzer) Reconstruct(coeffs []Coefficient) ([]complex128, error) {
	packed, err := packCoefficients(coeffs)
	if err != nil {
		return nil, err
	}
	return engine.Sequence(nil, packed), nil
}

// Workers returns the configured worker count.
func (a *Analyzer) Workers() int {
	return a.workers
}

// Info describes how an Analyzer executes transforms.
type Info struct {
	Algorithm   string // Decomposition algorithm identifier
	Workers     int    // Configured worker goroutines
	SIMDEnabled bool   // Whether vector instructions are available
	SIMDType    string // Detected instruction set, empty when scalar
}

// Info returns information about the analyzer.
func (a *Analyzer) Info() Info {
	info := Info{
		Algorithm: "direct",
		Workers:   a.workers,
	}

	// Check for SIMD
	if simd := cpu.Info(); simd != "" {
		info.SIMDEnabled = true
		info.SIMDType = simd
	}

	return info
}

// packCoefficients arranges coefficient bin values into frequency order.
func packCoefficients(coeffs []Coefficient) ([]complex128, error) {
	packed := make([]complex128, len(coeffs))
	seen := make([]bool, len(coeffs))
	for _, c := range coeffs {
		if c.Freq < 0 || c.Freq >= len(packed) {
			return nil, fmt.Errorf("%w: frequency index %d outside [0, %d)", ErrInvalidCoefficients, c.Freq, len(packed))
		}
		if seen[c.Freq] {
			return nil, fmt.Errorf("%w: duplicate frequency index %d", ErrInvalidCoefficients, c.Freq)
		}
		seen[c.Freq] = true
		packed[c.Freq] = c.Complex()
	}
	return packed, nil
}
