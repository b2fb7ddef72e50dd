package graphview

import "math"

// QuadBez is a quadratic Bézier curve from P0 to P2 with control point P1.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

func (q QuadBez) Start() Point { return q.P0 }
func (q QuadBez) End() Point   { return q.P2 }

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

// Extrema returns the parameters in (0, 1) at which the curve has a horizontal
// or vertical tangent, in increasing order.
func (q QuadBez) Extrema() ([2]float64, int) {
	// The derivative of a quadratic is a line, so each axis has at most one
	// root.
	var out [2]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0.0 {
		t := -d0.X / dd.X
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	if dd.Y != 0 {
		t := -d0.Y / dd.Y
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
			if outN == 2 && out[0] > t {
				out[0], out[1] = out[1], out[0]
			}
		}
	}
	return out, outN
}

// BoundingBox returns the smallest axis-aligned rectangle that encloses the
// curve.
func (q QuadBez) BoundingBox() Rect {
	bbox := NewRectFromPoints(q.P0, q.P2)
	ex, n := q.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(q.Eval(t))
	}
	return bbox
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

// subdivisions returns the number of equal parameter steps needed so that the
// chords of the curve stay within tolerance of it. It is at least 1.
func (q QuadBez) subdivisions(tolerance float64) int {
	// The chord error of a parameter step h is bounded by |B''|·h²/8, and
	// B'' = 2(P0 − 2P1 + P2) is constant for a quadratic.
	dd := Vec2(q.P0).Sub(Vec2(q.P1).Mul(2)).Add(Vec2(q.P2)).Hypot()
	if dd == 0 || tolerance <= 0 || math.IsInf(dd, 0) || math.IsNaN(dd) {
		return 1
	}
	n := int(math.Ceil(math.Sqrt(dd / (4 * tolerance))))
	return max(n, 1)
}
