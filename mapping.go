package graphview

import "math"

// Mapping converts chart samples to view space. Column i is placed at
// x = ColumnWidth·i, and a value v at y = Height − v/MaxValue·Height, so that
// the value 0 lies on the bottom edge and MaxValue on the top edge.
type Mapping struct {
	ColumnWidth float64
	// MaxValue is the sample value drawn at the top edge. Values ≤ 0 are
	// treated as 1.
	MaxValue float64
	Size     Size
}

func (m Mapping) maxValue() float64 {
	if m.MaxValue > 0 {
		return m.MaxValue
	}
	return 1
}

// X returns the x coordinate of the left edge of column.
func (m Mapping) X(column int) float64 {
	return m.ColumnWidth * float64(column)
}

// Y returns the y coordinate of value.
func (m Mapping) Y(value float64) float64 {
	return m.Size.Height - value/m.maxValue()*m.Size.Height
}

// Point returns the view-space point of value in column.
func (m Mapping) Point(column int, value float64) Point {
	return Point{X: m.X(column), Y: m.Y(value)}
}

// Affine returns the mapping as an affine transform from (column, value) space
// to view space.
func (m Mapping) Affine() Affine {
	return Affine{
		m.ColumnWidth, 0,
		0, -m.Size.Height / m.maxValue(),
		0, m.Size.Height,
	}
}

// Column returns the column whose slot [X(i), X(i+1)) contains x. The result
// may be negative or beyond the series; callers check the range. A mapping
// without a positive column width has no columns and reports false.
func (m Mapping) Column(x float64) (int, bool) {
	if !(m.ColumnWidth > 0) {
		return 0, false
	}
	c := math.Floor(x / m.ColumnWidth)
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return 0, false
	}
	return int(c), true
}

// SeriesPoints maps values to view space and closes the series against the
// baseline: the result starts with the point of value 0 in column 0, continues
// with one point per value in columns 0 through len(values)−1, and ends with the
// point of value 0 in column len(values)+1.
//
// The trailing column counts the leading baseline point, so it is one column
// past the slot that follows the last sample.
func SeriesPoints(values []float64, m Mapping) []Point {
	points := make([]Point, 0, len(values)+2)
	points = append(points, m.Point(0, 0))
	for i, v := range values {
		points = append(points, m.Point(i, v))
	}
	points = append(points, m.Point(len(points), 0))
	return points
}

// AreaOutline returns the smoothed area outline of values under m. It is
// shorthand for Smooth(SeriesPoints(values, m)).
func AreaOutline(values []float64, m Mapping) Outline {
	return Smooth(SeriesPoints(values, m))
}
