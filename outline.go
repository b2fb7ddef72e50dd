package graphview

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location, a control point and
	// an end point.
	QuadToKind
	// Close off the subpath.
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case QuadToKind:
		return "QuadTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

// PathElement is one drawing command of an [Outline].
//
// For [MoveToKind] and [LineToKind], P0 is the target point. For [QuadToKind],
// P0 is the control point and P1 the end point. [ClosePathKind] uses neither.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return fmt.Sprintf("%s(%s)", el.Kind, el.P0)
	case QuadToKind:
		return fmt.Sprintf("%s(%s, %s)", el.Kind, el.P0, el.P1)
	default:
		return el.Kind.String()
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

// EndPoint returns the point the pen rests on after the element, or false for
// [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	default:
		return Point{}, false
	}
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() || el.P1.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() || el.P1.IsNaN()
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

// QuadTo returns a quadratic Bézier element with control point ctrl, ending at
// end.
func QuadTo(ctrl, end Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: ctrl, P1: end}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Outline is an ordered sequence of path elements describing a shape that can be
// filled or stroked. A well-formed outline starts with a [MoveTo].
//
// The zero value is an empty outline. A nil outline is what [Smooth] returns
// when there is nothing to draw.
type Outline []PathElement

// Push adds an element to the outline.
func (o *Outline) Push(el PathElement) {
	*o = append(*o, el)
}

// MoveTo pushes a "move to" element onto the outline.
func (o *Outline) MoveTo(pt Point) { o.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the outline.
func (o *Outline) LineTo(pt Point) { o.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the outline.
func (o *Outline) QuadTo(ctrl, end Point) { o.Push(QuadTo(ctrl, end)) }

// ClosePath pushes a "close path" element onto the outline.
func (o *Outline) ClosePath() { o.Push(ClosePath()) }

// Elements returns an iterator over the outline's elements.
func (o Outline) Elements() iter.Seq[PathElement] { return slices.Values(o) }

// Vertices returns the end points of all elements, in drawing order. Close
// elements contribute nothing.
func (o Outline) Vertices() []Point {
	out := make([]Point, 0, len(o))
	for _, el := range o {
		if pt, ok := el.EndPoint(); ok {
			out = append(out, pt)
		}
	}
	return out
}

// LastPoint returns the point the pen rests on after the final element that
// has an end point.
func (o Outline) LastPoint() (Point, bool) {
	for i := len(o) - 1; i >= 0; i-- {
		if pt, ok := o[i].EndPoint(); ok {
			return pt, true
		}
	}
	return Point{}, false
}

// Transform returns a new outline with an affine transformation applied to
// every element.
func (o Outline) Transform(aff Affine) Outline {
	if o == nil {
		return nil
	}
	els := make(Outline, len(o))
	for i := range o {
		els[i] = o[i].Transform(aff)
	}
	return els
}

// Quads returns an iterator over the quadratic Béziers of the outline, with
// their implicit start points made explicit.
func (o Outline) Quads() iter.Seq[QuadBez] {
	return func(yield func(QuadBez) bool) {
		var last, start Point
		for _, el := range o {
			switch el.Kind {
			case MoveToKind:
				last, start = el.P0, el.P0
			case LineToKind:
				last = el.P0
			case QuadToKind:
				if !yield(QuadBez{last, el.P0, el.P1}) {
					return
				}
				last = el.P1
			case ClosePathKind:
				last = start
			}
		}
	}
}

// ControlBox returns a rectangle that conservatively encloses the outline.
//
// Unlike [Outline.BoundingBox], this uses control points directly rather than computing
// tight bounds for curve elements.
func (o Outline) ControlBox() Rect {
	first := true
	var cbox Rect
	addPt := func(pt Point) {
		if first {
			first = false
			cbox = NewRectFromPoints(pt, pt)
		} else {
			cbox = cbox.UnionPoint(pt)
		}
	}
	for _, el := range o {
		switch el.Kind {
		case MoveToKind, LineToKind:
			addPt(el.P0)
		case QuadToKind:
			addPt(el.P0)
			addPt(el.P1)
		}
	}
	return cbox
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the drawn
// outline.
func (o Outline) BoundingBox() Rect {
	first := true
	var bbox Rect
	add := func(r Rect) {
		if first {
			first = false
			bbox = r
		} else {
			bbox = bbox.Union(r)
		}
	}
	var last Point
	for _, el := range o {
		switch el.Kind {
		case MoveToKind, LineToKind:
			add(NewRectFromPoints(el.P0, el.P0))
			last = el.P0
		case QuadToKind:
			add(QuadBez{last, el.P0, el.P1}.BoundingBox())
			last = el.P1
		}
	}
	return bbox
}

// Flatten converts the outline to a sequence of [MoveTo], [LineTo] and
// [ClosePath] elements that approximate it.
//
// The tolerance bounds the distance between each curve and its polyline
// approximation. For rendering at device resolution, 0.25 gives good results.
func (o Outline) Flatten(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		var last, start Point
		for _, el := range o {
			switch el.Kind {
			case MoveToKind:
				last, start = el.P0, el.P0
				if !yield(el) {
					return
				}
			case LineToKind:
				last = el.P0
				if !yield(el) {
					return
				}
			case QuadToKind:
				q := QuadBez{last, el.P0, el.P1}
				n := q.subdivisions(tolerance)
				for i := 1; i < n; i++ {
					if !yield(LineTo(q.Eval(float64(i) / float64(n)))) {
						return
					}
				}
				if !yield(LineTo(el.P1)) {
					return
				}
				last = el.P1
			case ClosePathKind:
				last = start
				if !yield(el) {
					return
				}
			}
		}
	}
}

// Polygon flattens the outline and returns the vertices of its first subpath.
func (o Outline) Polygon(tolerance float64) []Point {
	var out []Point
	for el := range o.Flatten(tolerance) {
		switch el.Kind {
		case MoveToKind:
			if len(out) > 0 {
				return out
			}
			out = append(out, el.P0)
		case LineToKind:
			out = append(out, el.P0)
		case ClosePathKind:
			return out
		}
	}
	return out
}

func (o Outline) IsNaN() bool {
	for i := range o {
		if o[i].IsNaN() {
			return true
		}
	}
	return false
}

// SVG converts the outline to a string of SVG path commands.
func (o Outline) SVG(opts SVGOptions) string {
	return SVG(o.Elements(), opts)
}

// WriteSVG writes the outline as SVG path commands to w.
func (o Outline) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, o.Elements(), opts)
}
