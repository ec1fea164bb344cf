// Command epicycles transforms traced drawings into epicycle sets for
// Fourier drawing animations.
//
// Usage:
//
//	epicycles drawing.json result.json
//	epicycles -workers 4 -sort drawing.json result.json
//	epicycles -decimate 500 path.wav result.json       # Ingest a stereo WAV path
//	epicycles -config epicycles.yaml drawing.json result.json
//
// Input paths ending in .wav are read as two-channel audio with the left
// channel on the x axis and the right channel on the y axis; anything else
// is read as a traced drawing in JSON.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	epicycles "github.com/tphakala/go-epicycles"
	"github.com/tphakala/go-epicycles/internal/codec"
	"github.com/tphakala/go-epicycles/internal/config"
)

const (
	// CLI defaults
	minRequiredArgs = 2

	// Flag sentinel meaning "keep the config file value"
	useConfigValue = -1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Parse command line flags
	configPath := flag.String("config", "", "Load settings from a YAML config file")
	workers := flag.Int("workers", useConfigValue, "Worker goroutines (0 = one per CPU core)")
	decimate := flag.Int("decimate", useConfigValue, "Thin the path to about this many points before transforming (0 = disable)")
	interval := flag.Int("interval", useConfigValue, "Frequency bins between progress reports")
	sortOut := flag.Bool("sort", false, "Write coefficients largest-first instead of in frequency order")
	top := flag.Int("top", 0, "Print the K largest epicycles after the transform")
	quiet := flag.Bool("quiet", false, "Suppress progress and summary output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file (for PGO)")
	flag.Parse()

	// Validate arguments before setting up profiling
	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input output.json\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s drawing.json result.json           # Transform a traced drawing\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -sort drawing.json result.json     # Largest circles first\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -decimate 500 path.wav result.json # Ingest an audio path\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	// Start CPU profiling if requested (for PGO)
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Load configuration and apply explicit flag overrides
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	overrides := &flagOverrides{
		workers:  *workers,
		decimate: *decimate,
		interval: *interval,
		sort:     *sortOut,
		quiet:    *quiet,
		set:      setFlags(),
	}
	overrides.apply(cfg)

	inputPath := args[0]
	outputPath := args[1]

	// Process the drawing
	start := time.Now()

	drawing, err := loadDrawing(inputPath)
	if err != nil {
		return err
	}
	tracedPoints := len(drawing.Points)

	points := drawing.Points
	if target := cfg.Transform.DecimationTarget; target > 0 {
		points = epicycles.DecimateToTarget(points, target)
	}

	analyzer, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}

	coeffs := analyzer.Transform(points)
	if cfg.Output.SortByAmplitude {
		epicycles.SortByAmplitude(coeffs)
	}

	set := &codec.EpicycleSet{Coefficients: coeffs, Canvas: drawing.Canvas}
	if err := codec.WriteEpicycles(outputPath, set); err != nil {
		return err
	}
	elapsed := time.Since(start)

	// Print summary
	if cfg.Output.Verbose {
		printSummary(os.Stdout, summary{
			inputPath:    inputPath,
			outputPath:   outputPath,
			tracedPoints: tracedPoints,
			points:       points,
			coeffs:       coeffs,
			workers:      analyzer.Workers(),
			simd:         analyzer.Info().SIMDType,
			elapsed:      elapsed,
		})
	}
	if *top > 0 {
		printTopTerms(os.Stdout, coeffs, *top)
	}

	return nil
}
