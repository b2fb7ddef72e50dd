package chart

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"sort"

	"github.com/graphview/graphview"
)

// Chart describes a single filled area series. The zero value, with a source
// set, is ready to use.
type Chart struct {
	Source DataSource
	// Delegate sizes bars and receives selections. A nil Delegate behaves like
	// [NopDelegate].
	Delegate Delegate
	// HorizontalLines are the reference lines, as fractions of the view
	// height measured from the bottom. A nil slice selects
	// [DefaultHorizontalLines]; an empty slice draws none.
	HorizontalLines []float64
	// MaxValue is the sample value drawn at the top of the view. Values ≤ 0
	// are treated as 1.
	MaxValue float64
	// Colors overrides the colors of the chart. If nil, Source is used if it
	// implements [ColorSource], and [DefaultColors] otherwise.
	Colors ColorSource
}

// Stroke is a line segment with its color.
type Stroke struct {
	Line  graphview.Line
	Color color.Color
}

// Frame is one laid out rendering of a chart, in view coordinates.
type Frame struct {
	Size graphview.Size
	// Values are the samples the frame was laid out from.
	Values []float64
	// Points are the series points the area passes through, baseline points
	// included.
	Points []graphview.Point
	// Area is the smoothed area outline. It is nil if there is nothing to
	// draw.
	Area graphview.Outline
	Fill color.Color
	// VerticalLines separate the bars, one per bar boundary, spanning the full
	// height.
	VerticalLines []Stroke
	// HorizontalLines span the full width.
	HorizontalLines []graphview.Line
	// Bars holds the slot of every sample column.
	Bars []graphview.Rect
}

func (c Chart) delegate() Delegate {
	if c.Delegate == nil {
		return NopDelegate{}
	}
	return c.Delegate
}

func (c Chart) colors() ColorSource {
	if c.Colors != nil {
		return c.Colors
	}
	if cs, ok := c.Source.(ColorSource); ok {
		return cs
	}
	return DefaultColors
}

func (c Chart) horizontalLines() []float64 {
	if c.HorizontalLines == nil {
		return DefaultHorizontalLines
	}
	return c.HorizontalLines
}

func (c Chart) count() int {
	if c.Source == nil {
		return 0
	}
	return max(c.Source.Count(), 0)
}

// mapping returns the value mapping for size. Only its vertical part is
// used; columns come from boundaries.
func (c Chart) mapping(size graphview.Size) graphview.Mapping {
	return graphview.Mapping{
		ColumnWidth: c.delegate().BarWidth(0),
		MaxValue:    c.MaxValue,
		Size:        size,
	}
}

// boundaries returns the x coordinates of the left edges of columns 0
// through n+1. Column n+1 holds the trailing baseline point. Invalid widths
// count as zero.
func (c Chart) boundaries(n int) []float64 {
	d := c.delegate()
	out := make([]float64, n+2)
	for i := range n + 1 {
		w := d.BarWidth(i)
		if !(w >= 0) || math.IsInf(w, 0) {
			Logger().Warn("ignoring invalid bar width", "bar", i, "width", w)
			w = 0
		}
		out[i+1] = out[i] + w
	}
	return out
}

// Layout lays out the chart for a view of the given size. It reads every
// sample and bar width once.
//
// Layout does not validate its input; see [Chart.Validate].
func (c Chart) Layout(size graphview.Size) Frame {
	n := c.count()
	m := c.mapping(size)
	bounds := c.boundaries(n)
	colors := c.colors()

	f := Frame{
		Size:   size,
		Values: make([]float64, n),
		Points: make([]graphview.Point, 0, n+2),
		Fill:   colors.FillColor(),
		Bars:   make([]graphview.Rect, n),
	}

	f.Points = append(f.Points, graphview.Pt(bounds[0], m.Y(0)))
	for i := range n {
		v := c.Source.Value(i)
		f.Values[i] = v
		f.Points = append(f.Points, graphview.Pt(bounds[i], m.Y(v)))
		f.Bars[i] = graphview.Rect{X0: bounds[i], Y0: 0, X1: bounds[i+1], Y1: size.Height}
	}
	f.Points = append(f.Points, graphview.Pt(bounds[n+1], m.Y(0)))
	f.Area = graphview.Smooth(f.Points)

	for i := 0; i <= n; i++ {
		col, ok := colors.VerticalLineColor(i)
		if !ok {
			continue
		}
		x := bounds[i]
		f.VerticalLines = append(f.VerticalLines, Stroke{
			Line:  graphview.Line{P0: graphview.Pt(x, 0), P1: graphview.Pt(x, size.Height)},
			Color: col,
		})
	}

	for _, v := range c.horizontalLines() {
		y := size.Height * (1 - v)
		f.HorizontalLines = append(f.HorizontalLines, graphview.Line{
			P0: graphview.Pt(0, y),
			P1: graphview.Pt(size.Width, y),
		})
	}

	Logger().Debug("laid out chart",
		"samples", n,
		"size", size,
		"elements", len(f.Area),
		"verticalLines", len(f.VerticalLines),
		"horizontalLines", len(f.HorizontalLines))
	return f
}

// BarAt returns the index of the bar whose slot contains pt, in a view of the
// given size. Slots are half-open, so a point on a boundary belongs to the
// bar to its right. Points outside all slots report false.
func (c Chart) BarAt(pt graphview.Point, size graphview.Size) (int, bool) {
	if !(pt.Y >= 0 && pt.Y < size.Height) {
		return 0, false
	}
	n := c.count()
	bounds := c.boundaries(n)
	i := sort.Search(n, func(i int) bool { return bounds[i+1] > pt.X })
	if i < n && bounds[i] <= pt.X {
		return i, true
	}
	return 0, false
}

// Touch resolves a single-point pointer gesture at pt. If pt lies in a bar,
// the delegate's Select is called with its index and Touch returns true.
func (c Chart) Touch(pt graphview.Point, size graphview.Size) bool {
	i, ok := c.BarAt(pt, size)
	if !ok {
		Logger().Debug("touch outside bars", "point", pt)
		return false
	}
	Logger().Debug("selected bar", "bar", i, "point", pt)
	c.delegate().Select(i)
	return true
}

// Validate checks that the chart can be laid out meaningfully. Errors wrap
// one of the package's sentinel errors.
func (c Chart) Validate() error {
	if c.Source == nil {
		return ErrNoSource
	}
	n := c.Source.Count()
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	for i := range n {
		if v := c.Source.Value(i); math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("sample %d: %w: %g", i, ErrInvalidValue, v)
		}
	}
	d := c.delegate()
	for i := range n + 1 {
		if w := d.BarWidth(i); !(w > 0) || math.IsInf(w, 0) {
			return fmt.Errorf("bar %d: %w: %g", i, ErrInvalidBarWidth, w)
		}
	}
	if math.IsNaN(c.MaxValue) || math.IsInf(c.MaxValue, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidMaxValue, c.MaxValue)
	}
	return nil
}

// LogValue implements [slog.LogValuer].
func (f Frame) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("size", f.Size.String()),
		slog.Int("samples", len(f.Values)),
		slog.Int("elements", len(f.Area)),
	)
}
