package epicycles

import (
	"math"

	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
)

// Tracer animates a coefficient set by stepping its rotating vectors through
// one revolution of the fundamental frequency.
//
// Time advances by 2π/N per step, so a full revolution takes exactly N steps
// and retraces the N samples the coefficients were derived from. Each term
// keeps a unit rotor e^(i·Freq·t) that is advanced by one elementwise
// complex multiplication per frame; after a complete revolution the rotors
// are reset to their exact starting values rather than left to accumulate
// rounding drift.
//
// Coefficients may be supplied in any order, in particular sorted by
// SortByAmplitude, since every term carries its own frequency.
type Tracer struct {
	coeff  []complex128 // bin values, in the order supplied
	rotors []complex128 // e^(i·Freq·t) per term
	steps  []complex128 // per-frame rotor increment e^(i·Freq·dt)
	terms  []complex128 // scratch for coeff ⊙ rotors
	dt     float64
	t      float64
	frame  int
}

// NewTracer creates a tracer over coeffs. The slice is copied, so callers
// may keep sorting or modifying their own copy afterwards.
func NewTracer(coeffs []Coefficient) *Tracer {
	n := len(coeffs)
	tr := &Tracer{
		coeff:  make([]complex128, n),
		rotors: make([]complex128, n),
		steps:  make([]complex128, n),
		terms:  make([]complex128, n),
	}
	if n > 0 {
		tr.dt = twoPi / float64(n)
	}
	for i, c := range coeffs {
		tr.coeff[i] = c.Complex()
		sin, cos := math.Sincos(float64(c.Freq) * tr.dt)
		tr.steps[i] = complex(cos, sin)
		tr.rotors[i] = 1
	}
	return tr
}

// Step returns the pen position at the current angle and advances the tracer
// by one frame. For an empty coefficient set the position is always zero.
func (tr *Tracer) Step() complex128 {
	pos := tr.position()
	tr.advance()
	return pos
}

// Angle returns the current angle t in [0, 2π).
func (tr *Tracer) Angle() float64 {
	return tr.t
}

// Frame returns the number of steps taken in the current revolution.
func (tr *Tracer) Frame() int {
	return tr.frame
}

// Arms fills dst with the partial sums of the rotating vectors at the
// current angle: dst[k] is the tip of the k-th epicycle arm and the last
// entry is the pen position. Renderers draw a segment between consecutive
// arms and a circle of radius |coeff[k]| around each joint. If dst is nil a
// new slice is allocated; otherwise its length must match the coefficient
// count.
func (tr *Tracer) Arms(dst []complex128) []complex128 {
	n := len(tr.coeff)
	if dst == nil {
		dst = make([]complex128, n)
	}
	if len(dst) != n {
		panic("epicycles: arms destination length mismatch")
	}
	c128.Mul(tr.terms, tr.coeff, tr.rotors)
	var acc complex128
	for i, v := range tr.terms {
		acc += v
		dst[i] = acc
	}
	return dst
}

// Revolution resets the tracer and runs one full revolution, returning the
// N pen positions in order. The tracer is left reset.
func (tr *Tracer) Revolution() []complex128 {
	tr.Reset()
	path := make([]complex128, len(tr.coeff))
	for i := range path {
		path[i] = tr.Step()
	}
	return path
}

// Reset rewinds the tracer to angle zero.
func (tr *Tracer) Reset() {
	for i := range tr.rotors {
		tr.rotors[i] = 1
	}
	tr.t = 0
	tr.frame = 0
}

func (tr *Tracer) position() complex128 {
	if len(tr.coeff) == 0 {
		return 0
	}
	c128.Mul(tr.terms, tr.coeff, tr.rotors)
	var pos complex128
	for _, v := range tr.terms {
		pos += v
	}
	return pos
}

func (tr *Tracer) advance() {
	n := len(tr.coeff)
	if n == 0 {
		return
	}
	tr.frame++
	if tr.frame == n {
		tr.Reset()
		return
	}
	c128.Mul(tr.rotors, tr.rotors, tr.steps)
	tr.t += tr.dt
}

// Viewport is a drawing area size used to fit a traced path on screen.
type Viewport struct {
	Width  float64
	Height float64
}

// FitScale returns the uniform scale factor that fits content inside
// available while preserving the aspect ratio: the smaller of the two axis
// ratios. A content viewport with a non-positive dimension yields 1.
func FitScale(content, available Viewport) float64 {
	if content.Width <= 0 || content.Height <= 0 {
		return 1
	}
	if available.Width*content.Height > available.Height*content.Width {
		return available.Height / content.Height
	}
	return available.Width / content.Width
}

// PathViewport returns the bounding extent of a path, the content size to
// pass to FitScale when no canvas metadata is available. An empty path has a
// zero viewport.
func PathViewport(path []complex128) Viewport {
	if len(path) == 0 {
		return Viewport{}
	}
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range path {
		minX = min(minX, real(p))
		maxX = max(maxX, real(p))
		minY = min(minY, imag(p))
		maxY = max(maxY, imag(p))
	}
	return Viewport{Width: maxX - minX, Height: maxY - minY}
}

// SplitPath unpacks a path into separate x and y coordinate slices.
func SplitPath(path []complex128) (xs, ys []float64) {
	xs = make([]float64, len(path))
	ys = make([]float64, len(path))
	splitComplex(path, xs, ys)
	return xs, ys
}

// ScalePath multiplies both coordinate slices by s in place.
func ScalePath(xs, ys []float64, s float64) {
	f64.Scale(xs, xs, s)
	f64.Scale(ys, ys, s)
}

// InterleavePath packs coordinate slices into [x0, y0, x1, y1, ...] point
// pairs. The slices are truncated to the shorter length.
func InterleavePath(xs, ys []float64) []float64 {
	n := min(len(xs), len(ys))
	out := make([]float64, 2*n)
	f64.Interleave2(out, xs[:n], ys[:n])
	return out
}
