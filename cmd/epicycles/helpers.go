package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	epicycles "github.com/tphakala/go-epicycles"
	"github.com/tphakala/go-epicycles/internal/codec"
	"github.com/tphakala/go-epicycles/internal/config"
)

// flagOverrides carries flag values that replace config file settings for
// the flags the user passed explicitly.
type flagOverrides struct {
	workers  int
	decimate int
	interval int
	sort     bool
	quiet    bool
	set      map[string]bool
}

// setFlags returns the names of the flags present on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// apply copies explicitly set flags over the loaded configuration.
func (o *flagOverrides) apply(cfg *config.Config) {
	if o.set["workers"] {
		cfg.Transform.Workers = o.workers
	}
	if o.set["decimate"] {
		cfg.Transform.DecimationTarget = o.decimate
	}
	if o.set["interval"] {
		cfg.Transform.ProgressInterval = o.interval
	}
	if o.set["sort"] {
		cfg.Output.SortByAmplitude = o.sort
	}
	if o.set["quiet"] {
		cfg.Output.Verbose = !o.quiet
	}
}

// newAnalyzer builds the transform from tool configuration. A configured
// worker count of zero means one worker per CPU core; progress printing is
// attached unless the tool is quiet.
func newAnalyzer(cfg *config.Config) (*epicycles.Analyzer, error) {
	econfig := &epicycles.Config{
		Workers:          effectiveWorkers(cfg.Transform.Workers),
		ProgressInterval: cfg.Transform.ProgressInterval,
	}
	if cfg.Output.Verbose {
		econfig.Progress = printProgress
	}
	return epicycles.New(econfig)
}

// effectiveWorkers maps the config value to a concrete worker count.
func effectiveWorkers(configured int) int {
	if configured == 0 {
		return runtime.NumCPU()
	}
	return configured
}

// printProgress reports completed frequency bins during long transforms.
func printProgress(done, total int) {
	fmt.Printf("Progress: %d/%d\n", done, total)
}

// loadDrawing reads the input as WAV audio or a JSON drawing depending on
// the file extension. A WAV capture carries no canvas metadata, so the
// drawing's bounding extent stands in.
func loadDrawing(path string) (*codec.Drawing, error) {
	if filepath.Ext(path) == ".wav" {
		points, _, err := codec.ReadPathWAV(path)
		if err != nil {
			return nil, err
		}
		return &codec.Drawing{Points: points, Canvas: epicycles.PathViewport(points)}, nil
	}
	return codec.ReadDrawing(path)
}

// summary holds everything the post-run report prints.
type summary struct {
	inputPath    string
	outputPath   string
	tracedPoints int
	points       []complex128
	coeffs       []epicycles.Coefficient
	workers      int
	simd         string
	elapsed      time.Duration
}

// printSummary reports the transform outcome. The energy line pairs the
// signal and spectral sums, which agree when the transform is healthy.
func printSummary(w io.Writer, s summary) {
	fmt.Fprintf(w, "Transformed %s -> %s\n",
		filepath.Base(s.inputPath), filepath.Base(s.outputPath))
	fmt.Fprintf(w, "  %d traced points -> %d epicycles\n", s.tracedPoints, len(s.coeffs))
	fmt.Fprintf(w, "  Energy: signal %.6g, spectral %.6g\n",
		epicycles.SignalEnergy(s.points), epicycles.SpectralEnergy(s.coeffs))
	fmt.Fprintf(w, "  Duration: %.2fs (%d workers)\n", s.elapsed.Seconds(), s.workers)
	if s.simd != "" {
		fmt.Fprintf(w, "  SIMD: %s\n", s.simd)
	}
}

// printTopTerms prints the k largest-amplitude terms. The coefficient slice
// is cloned first so the table never disturbs the output ordering.
func printTopTerms(w io.Writer, coeffs []epicycles.Coefficient, k int) {
	top := slices.Clone(coeffs)
	epicycles.SortByAmplitude(top)
	k = min(k, len(top))

	fmt.Fprintf(w, "Top %d epicycles:\n", k)
	for _, c := range top[:k] {
		fmt.Fprintf(w, "  freq %4d  amp %10.6g  phase %+.4f\n", c.Freq, c.Amp, c.Phase)
	}
}
