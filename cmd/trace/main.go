// Command trace replays an epicycle set back into a traced path.
//
// Usage:
//
//	trace result.json path.json
//	trace -revolutions 3 result.json path.wav
//
// Output paths ending in .wav are written as stereo audio with x on the
// left channel and y on the right; anything else is written as a JSON
// drawing. Tracing an epicycle file produced from a drawing recovers the
// decimated original path.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	epicycles "github.com/tphakala/go-epicycles"
	"github.com/tphakala/go-epicycles/internal/codec"
	"github.com/tphakala/go-epicycles/internal/config"
)

const minRequiredArgs = 2

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	configPath := flag.String("config", "", "Load settings from a YAML config file")
	revolutions := flag.Int("revolutions", 0, "Full turns of the fundamental to trace (0 = config value)")
	rate := flag.Int("rate", 0, "Sample rate for WAV output in Hz (0 = config value)")
	width := flag.Float64("width", 0, "Fit the traced path into this viewport width (0 = keep source coordinates)")
	height := flag.Float64("height", 0, "Fit the traced path into this viewport height (0 = keep source coordinates)")
	quiet := flag.Bool("quiet", false, "Suppress the summary line")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] epicycles.json output\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s result.json path.json                    # Replay as a JSON drawing\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -revolutions 3 result.json loop.wav      # Replay as looping audio\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -width 800 -height 600 result.json p.json # Scale to a window\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *revolutions > 0 {
		cfg.Trace.Revolutions = *revolutions
	}
	if *rate > 0 {
		cfg.Trace.SampleRate = *rate
	}
	if *quiet {
		cfg.Output.Verbose = false
	}

	inputPath := args[0]
	outputPath := args[1]

	set, err := codec.ReadEpicycles(inputPath)
	if err != nil {
		return err
	}

	start := time.Now()
	path := tracePath(set.Coefficients, cfg.Trace.Revolutions)
	canvas := set.Canvas
	if *width > 0 && *height > 0 {
		path, canvas = fitPath(path, canvas, epicycles.Viewport{Width: *width, Height: *height})
	}
	if err := writePath(outputPath, path, canvas, cfg.Trace.SampleRate); err != nil {
		return err
	}
	elapsed := time.Since(start)

	if cfg.Output.Verbose {
		fmt.Printf("Traced %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
		fmt.Printf("  %d epicycles -> %d positions (%d revolutions, %.2fs)\n",
			len(set.Coefficients), len(path), cfg.Trace.Revolutions, elapsed.Seconds())
	}

	return nil
}

// tracePath runs the tracer for the requested number of revolutions. Every
// revolution retraces the same positions, which makes exported audio loop
// seamlessly.
func tracePath(coeffs []epicycles.Coefficient, revolutions int) []complex128 {
	if revolutions < 1 {
		revolutions = 1
	}
	tr := epicycles.NewTracer(coeffs)
	path := make([]complex128, 0, revolutions*len(coeffs))
	for range revolutions {
		path = append(path, tr.Revolution()...)
	}
	return path
}

// fitPath scales traced positions to fit the target viewport, preserving
// the aspect ratio. The content size comes from the canvas metadata when
// present, otherwise from the path's own bounding extent.
func fitPath(path []complex128, canvas, target epicycles.Viewport) ([]complex128, epicycles.Viewport) {
	content := canvas
	if content.Width <= 0 || content.Height <= 0 {
		content = epicycles.PathViewport(path)
	}
	xs, ys := epicycles.SplitPath(path)
	epicycles.ScalePath(xs, ys, epicycles.FitScale(content, target))
	return epicycles.JoinPath(xs, ys), target
}

// writePath writes the traced positions as WAV audio or a JSON drawing
// depending on the file extension.
func writePath(filename string, traced []complex128, canvas epicycles.Viewport, sampleRate int) error {
	if filepath.Ext(filename) == ".wav" {
		return codec.WritePathWAV(filename, traced, sampleRate)
	}
	return codec.WriteDrawing(filename, &codec.Drawing{Points: traced, Canvas: canvas})
}
