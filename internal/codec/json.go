package codec

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	epicycles "github.com/tphakala/go-epicycles"
)

// Wire representations. Numeric fields are float64 across the board since
// producers disagree on integer formatting: freq in particular appears both
// as 3 and as 3.0 in the wild.

type metadataJSON struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
}

type pointJSON struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

type drawingJSON struct {
	Metadata metadataJSON `json:"metadata"`
	Points   []pointJSON  `json:"points"`
}

type epicycleJSON struct {
	Re    float64 `json:"re"`
	Im    float64 `json:"im"`
	Freq  float64 `json:"freq"`
	Amp   float64 `json:"amp"`
	Phase float64 `json:"phase"`
}

type epicycleSetJSON struct {
	Metadata  metadataJSON   `json:"metadata"`
	Epicycles []epicycleJSON `json:"epicycles"`
}

// DecodeDrawing reads a traced drawing from r.
func DecodeDrawing(r io.Reader) (*Drawing, error) {
	var wire drawingJSON
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, err
	}

	points := make([]complex128, len(wire.Points))
	for i, p := range wire.Points {
		points[i] = complex(p.Re, p.Im)
	}
	return &Drawing{
		Points: points,
		Canvas: epicycles.Viewport{Width: wire.Metadata.Width, Height: wire.Metadata.Height},
	}, nil
}

// EncodeDrawing writes d to w as indented JSON.
func EncodeDrawing(w io.Writer, d *Drawing) error {
	wire := drawingJSON{
		Metadata: metadataJSON{Height: d.Canvas.Height, Width: d.Canvas.Width},
		Points:   make([]pointJSON, len(d.Points)),
	}
	for i, p := range d.Points {
		wire.Points[i] = pointJSON{Re: real(p), Im: imag(p)}
	}
	return encodeIndented(w, &wire)
}

// DecodeEpicycles reads a transformed drawing from r. Frequencies are
// rounded to the nearest integer index.
func DecodeEpicycles(r io.Reader) (*EpicycleSet, error) {
	var wire epicycleSetJSON
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, err
	}

	coeffs := make([]epicycles.Coefficient, len(wire.Epicycles))
	for i, e := range wire.Epicycles {
		coeffs[i] = epicycles.Coefficient{
			Re:    e.Re,
			Im:    e.Im,
			Freq:  int(math.Round(e.Freq)),
			Amp:   e.Amp,
			Phase: e.Phase,
		}
	}
	return &EpicycleSet{
		Coefficients: coeffs,
		Canvas:       epicycles.Viewport{Width: wire.Metadata.Width, Height: wire.Metadata.Height},
	}, nil
}

// EncodeEpicycles writes set to w as indented JSON.
func EncodeEpicycles(w io.Writer, set *EpicycleSet) error {
	wire := epicycleSetJSON{
		Metadata:  metadataJSON{Height: set.Canvas.Height, Width: set.Canvas.Width},
		Epicycles: make([]epicycleJSON, len(set.Coefficients)),
	}
	for i, c := range set.Coefficients {
		wire.Epicycles[i] = epicycleJSON{
			Re:    c.Re,
			Im:    c.Im,
			Freq:  float64(c.Freq),
			Amp:   c.Amp,
			Phase: c.Phase,
		}
	}
	return encodeIndented(w, &wire)
}

// ReadDrawing loads a traced drawing from a JSON file.
func ReadDrawing(filename string) (*Drawing, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingFile, filename)
	}
	defer func() { _ = f.Close() }()

	d, err := DecodeDrawing(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, filename)
	}
	return d, nil
}

// WriteDrawing saves a traced drawing to a JSON file.
func WriteDrawing(filename string, d *Drawing) error {
	return writeFile(filename, func(w io.Writer) error {
		return EncodeDrawing(w, d)
	})
}

// ReadEpicycles loads a transformed drawing from a JSON file.
func ReadEpicycles(filename string) (*EpicycleSet, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingFile, filename)
	}
	defer func() { _ = f.Close() }()

	set, err := DecodeEpicycles(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, filename)
	}
	return set, nil
}

// WriteEpicycles saves a transformed drawing to a JSON file.
func WriteEpicycles(filename string, set *EpicycleSet) error {
	return writeFile(filename, func(w io.Writer) error {
		return EncodeEpicycles(w, set)
	})
}

func encodeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeFile(filename string, encode func(io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrMissingFile, filename)
	}

	w := bufio.NewWriter(f)
	if err := encode(w); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %s", ErrInvalidFile, filename)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
