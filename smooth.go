package graphview

import "math"

// Smooth returns a smoothed outline passing through points, in order.
//
// The outline starts with a [MoveTo] to the first point. Every point p, the
// first one included, is then reached through two quadratic Béziers: one
// ending at the midpoint between the previous point and p, and one ending at
// p itself. The control point of each half is the midpoint of its chord,
// shifted vertically until it is level with the series point the half touches
// (see [ControlPoint]). The result has 1 + 2·len(points) elements, and the
// first pair of curves has zero length.
//
// Fewer than two points yield nil, meaning there is nothing to draw. Exactly
// two points yield a straight line, [MoveTo] followed by [LineTo], without
// smoothing.
//
// Smooth does not modify points and keeps no state. Repeated or collinear
// points produce zero-length or straight curves, never an error.
func Smooth(points []Point) Outline {
	if len(points) < 2 {
		return nil
	}
	if len(points) == 2 {
		return Outline{MoveTo(points[0]), LineTo(points[1])}
	}

	out := make(Outline, 0, 1+2*len(points))
	prev := points[0]
	out.MoveTo(prev)
	for _, pt := range points {
		mid := prev.Midpoint(pt)
		out.QuadTo(ControlPoint(mid, prev), mid)
		out.QuadTo(ControlPoint(mid, pt), pt)
		prev = pt
	}
	return out
}

// ControlPoint returns the control point used by [Smooth] for a curve from a
// to b. It is the midpoint of a and b, moved vertically by the distance
// between b and that midpoint: down (increasing y) if a.Y < b.Y, up if
// a.Y > b.Y. If a and b are level, the midpoint itself is returned.
//
// Moving the control point this way makes every half-curve leave or enter the
// series point horizontally, which rounds off peaks and valleys.
func ControlPoint(a, b Point) Point {
	ctrl := a.Midpoint(b)
	dy := math.Abs(b.Y - ctrl.Y)
	if a.Y < b.Y {
		ctrl.Y += dy
	} else if a.Y > b.Y {
		ctrl.Y -= dy
	}
	return ctrl
}
