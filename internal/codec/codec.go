// Package codec reads and writes the interchange formats of the epicycle
// toolchain: traced drawings going into the transform and epicycle sets
// coming out of it, as JSON files, plus WAV import and export for paths
// captured or replayed as two-channel audio.
package codec

import (
	"errors"

	epicycles "github.com/tphakala/go-epicycles"
)

// Common errors returned by the package. Both wrap the offending file name.
var (
	// ErrMissingFile indicates a file that could not be opened or created.
	ErrMissingFile = errors.New("missing file")

	// ErrInvalidFile indicates a file whose contents could not be decoded.
	ErrInvalidFile = errors.New("invalid file")
)

// Drawing is a traced input image: an ordered path of points with x on the
// real axis and y on the imaginary axis, plus the dimensions of the canvas
// the path was traced on.
type Drawing struct {
	Points []complex128
	Canvas epicycles.Viewport
}

// EpicycleSet is a transformed drawing ready for rendering: one term per
// frequency plus the canvas dimensions carried over from the source
// drawing, which renderers use to fit the animation on screen.
type EpicycleSet struct {
	Coefficients []epicycles.Coefficient
	Canvas       epicycles.Viewport
}
