package chart

import (
	"image/color"

	"golang.org/x/exp/constraints"
)

// DefaultBarWidth is the width of every bar when no delegate says otherwise.
const DefaultBarWidth = 60

// DataSource provides the samples of a chart. Values are normally in
// [0, MaxValue].
type DataSource interface {
	Count() int
	Value(i int) float64
}

// ColorSource provides the colors of a chart. A data source may implement it
// to color its own chart.
type ColorSource interface {
	// FillColor returns the color of the area under the curve.
	FillColor() color.Color
	// VerticalLineColor returns the color of the separator at bar boundary i,
	// or false to leave the separator out.
	VerticalLineColor(i int) (color.Color, bool)
}

// Delegate sizes bars and receives selections.
type Delegate interface {
	BarWidth(i int) float64
	Select(i int)
}

// NopDelegate gives every bar [DefaultBarWidth] and ignores selections.
type NopDelegate struct{}

func (NopDelegate) BarWidth(int) float64 { return DefaultBarWidth }
func (NopDelegate) Select(int)           {}

// FixedWidth is a delegate with uniform bars of the given width. OnSelect, if
// set, is called for every selection.
type FixedWidth struct {
	Width    float64
	OnSelect func(i int)
}

func (d FixedWidth) BarWidth(int) float64 { return d.Width }

func (d FixedWidth) Select(i int) {
	if d.OnSelect != nil {
		d.OnSelect(i)
	}
}

// Values adapts a slice of samples to a [DataSource].
type Values[T constraints.Float] []T

func (v Values[T]) Count() int          { return len(v) }
func (v Values[T]) Value(i int) float64 { return float64(v[i]) }

// StaticColors is a [ColorSource] with one fill color and one separator color.
// A nil VerticalLine leaves out all separators.
type StaticColors struct {
	Fill         color.Color
	VerticalLine color.Color
}

func (c StaticColors) FillColor() color.Color {
	if c.Fill == nil {
		return color.Black
	}
	return c.Fill
}

func (c StaticColors) VerticalLineColor(int) (color.Color, bool) {
	return c.VerticalLine, c.VerticalLine != nil
}

// DefaultColors fills the area in black and draws red separators.
var DefaultColors = StaticColors{
	Fill:         color.Black,
	VerticalLine: color.RGBA{R: 0xff, A: 0xff},
}

// DefaultHorizontalLines are the reference lines drawn when a chart has none
// of its own, as fractions of the view height.
var DefaultHorizontalLines = []float64{0, 0.04, 0.2, 0.5, 0.88, 0.9, 1.0}
