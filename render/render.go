// Package render draws laid out chart frames to images and SVG documents.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/graphview/graphview/chart"
)

// ErrEmptyFrame is returned for frames without a drawable area.
var ErrEmptyFrame = errors.New("frame has zero size")

// Options control how a frame is drawn. Colors are hex strings such as
// "#ff0000" or "fff". An empty Background leaves the canvas transparent.
type Options struct {
	Background string
	// GridColor is the color of the horizontal reference lines. It defaults
	// to black.
	GridColor string
	// LineWidth is the stroke width of all lines. It defaults to 1.
	LineWidth float64
	// Precision is the maximum number of decimals in SVG coordinates. 0
	// selects the shortest exact representation.
	Precision int
}

func (o Options) lineWidth() float64 {
	if o.LineWidth > 0 {
		return o.LineWidth
	}
	return 1
}

func (o Options) gridColor() string {
	if o.GridColor == "" {
		return "#000000"
	}
	return o.GridColor
}

// pixelSize returns the canvas dimensions of f, rounded up.
func pixelSize(f chart.Frame) (int, int, error) {
	w, h := math.Ceil(f.Size.Width), math.Ceil(f.Size.Height)
	if !(w >= 1 && h >= 1) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return 0, 0, fmt.Errorf("%w: %s", ErrEmptyFrame, f.Size)
	}
	return int(w), int(h), nil
}

// hexColor formats c as #rrggbb and returns its opacity separately.
func hexColor(c color.Color) (string, float64) {
	if c == nil {
		return "none", 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), float64(n.A) / 255
}
