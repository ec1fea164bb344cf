package main

import (
	"bytes"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	epicycles "github.com/tphakala/go-epicycles"
	"github.com/tphakala/go-epicycles/internal/codec"
	"github.com/tphakala/go-epicycles/internal/config"
	"github.com/tphakala/go-epicycles/internal/testutil"
)

func TestFlagOverrides_Apply(t *testing.T) {
	cfg := config.Default()
	o := &flagOverrides{
		workers:  2,
		decimate: 250,
		interval: 10,
		sort:     true,
		quiet:    true,
		set: map[string]bool{
			"workers": true, "decimate": true, "interval": true,
			"sort": true, "quiet": true,
		},
	}

	o.apply(cfg)

	assert.Equal(t, 2, cfg.Transform.Workers)
	assert.Equal(t, 250, cfg.Transform.DecimationTarget)
	assert.Equal(t, 10, cfg.Transform.ProgressInterval)
	assert.True(t, cfg.Output.SortByAmplitude)
	assert.False(t, cfg.Output.Verbose)
}

func TestFlagOverrides_UnsetFlagsKeepConfig(t *testing.T) {
	cfg := config.Default()
	want := *cfg

	o := &flagOverrides{
		workers:  99,
		decimate: 99,
		sort:     true,
		quiet:    true,
		set:      map[string]bool{},
	}
	o.apply(cfg)

	assert.Equal(t, want, *cfg)
}

func TestEffectiveWorkers(t *testing.T) {
	assert.Equal(t, runtime.NumCPU(), effectiveWorkers(0))
	assert.Equal(t, 3, effectiveWorkers(3))
	assert.Equal(t, 1, effectiveWorkers(1))
}

func TestNewAnalyzer_FromDefaults(t *testing.T) {
	a, err := newAnalyzer(config.Default())
	require.NoError(t, err)
	assert.Equal(t, runtime.NumCPU(), a.Workers())
}

func TestNewAnalyzer_RejectsNegativeWorkers(t *testing.T) {
	cfg := config.Default()
	cfg.Transform.Workers = -4

	_, err := newAnalyzer(cfg)
	require.Error(t, err)
}

func TestLoadDrawing_JSON(t *testing.T) {
	file := filepath.Join(t.TempDir(), "drawing.json")
	want := &codec.Drawing{
		Points: testutil.UnitCircle(8),
		Canvas: epicycles.Viewport{Width: 300, Height: 200},
	}
	require.NoError(t, codec.WriteDrawing(file, want))

	got, err := loadDrawing(file)
	require.NoError(t, err)
	assert.Equal(t, want.Canvas, got.Canvas)
	assert.Equal(t, want.Points, got.Points)
}

func TestLoadDrawing_WAV(t *testing.T) {
	file := filepath.Join(t.TempDir(), "path.wav")
	path := testutil.NoisePath(64, 12)
	require.NoError(t, codec.WritePathWAV(file, path, 8000))

	got, err := loadDrawing(file)
	require.NoError(t, err)
	require.Len(t, got.Points, len(path))
	// The canvas is derived from the decoded path's bounding extent.
	assert.Equal(t, epicycles.PathViewport(got.Points), got.Canvas)
	assert.Positive(t, got.Canvas.Width)
	assert.Positive(t, got.Canvas.Height)
}

func TestLoadDrawing_MissingFile(t *testing.T) {
	_, err := loadDrawing(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestPrintSummary(t *testing.T) {
	points := testutil.UnitCircle(16)
	coeffs := epicycles.Transform(points)

	var buf bytes.Buffer
	printSummary(&buf, summary{
		inputPath:    "/tmp/in/drawing.json",
		outputPath:   "/tmp/out/result.json",
		tracedPoints: 160,
		points:       points,
		coeffs:       coeffs,
		workers:      4,
		simd:         "AVX2",
		elapsed:      1500 * time.Millisecond,
	})

	out := buf.String()
	assert.Contains(t, out, "Transformed drawing.json -> result.json")
	assert.Contains(t, out, "160 traced points -> 16 epicycles")
	assert.Contains(t, out, "Energy: signal")
	assert.Contains(t, out, "1.50s (4 workers)")
	assert.Contains(t, out, "SIMD: AVX2")
}

func TestPrintSummary_OmitsSIMDWhenScalar(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, summary{inputPath: "a.json", outputPath: "b.json"})

	assert.NotContains(t, buf.String(), "SIMD")
}

func TestPrintTopTerms(t *testing.T) {
	coeffs := epicycles.Transform(testutil.UnitCircle(8))

	var buf bytes.Buffer
	printTopTerms(&buf, coeffs, 2)

	out := buf.String()
	assert.Contains(t, out, "Top 2 epicycles:")
	assert.Contains(t, out, "freq    1")

	// The table works on a clone; the output set keeps frequency order.
	for k, c := range coeffs {
		assert.Equal(t, k, c.Freq)
	}
}

func TestPrintTopTerms_ClampsToLength(t *testing.T) {
	coeffs := epicycles.Transform(testutil.UnitCircle(4))

	var buf bytes.Buffer
	printTopTerms(&buf, coeffs, 10)

	assert.Contains(t, buf.String(), "Top 4 epicycles:")
}
