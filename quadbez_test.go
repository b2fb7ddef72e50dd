package graphview

import (
	"math"
	"testing"
)

func TestQuadBezEval(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
	assertNear(t, q.Eval(0), q.P0, 1e-12)
	assertNear(t, q.Eval(1), q.P2, 1e-12)
	assertNear(t, q.Eval(0.5), Pt(1, 1), 1e-12)
}

func TestQuadBezSubdivide(t *testing.T) {
	q := QuadBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8)}
	a, b := q.Subdivide()
	const n = 10
	for i := range n + 1 {
		tt := float64(i) / n
		assertNear(t, a.Eval(tt), q.Eval(tt/2), 1e-12)
		assertNear(t, b.Eval(tt), q.Eval(0.5+tt/2), 1e-12)
	}
}

func TestQuadBezBoundingBox(t *testing.T) {
	// Peaks at t = 0.5, y = 1.
	q := QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
	bbox := q.BoundingBox()
	if math.Abs(bbox.Y1-1) > 1e-12 || bbox.X0 != 0 || bbox.X1 != 2 || bbox.Y0 != 0 {
		t.Errorf("got %s, want [0, 0, 2, 1]", bbox)
	}

	// Degenerate curves have a degenerate box.
	p := Pt(5, 5)
	diff(t, QuadBez{p, p, p}.BoundingBox(), Rect{5, 5, 5, 5})
}

func TestQuadBezSubdivisions(t *testing.T) {
	p := Pt(1, 1)
	if n := (QuadBez{p, p, p}).subdivisions(0.25); n != 1 {
		t.Errorf("zero-length curve: got %d subdivisions, want 1", n)
	}
	line := QuadBez{Pt(0, 0), Pt(5, 5), Pt(10, 10)}
	if n := line.subdivisions(0.25); n != 1 {
		t.Errorf("straight curve: got %d subdivisions, want 1", n)
	}

	q := QuadBez{Pt(0, 0), Pt(50, 100), Pt(100, 0)}
	const tol = 0.25
	n := q.subdivisions(tol)
	if n < 2 {
		t.Fatalf("got %d subdivisions for a tall curve", n)
	}
	// The chord midpoint of every step stays within tolerance of the curve.
	for i := range n {
		t0 := float64(i) / float64(n)
		t1 := float64(i+1) / float64(n)
		chordMid := q.Eval(t0).Midpoint(q.Eval(t1))
		if d := chordMid.Distance(q.Eval((t0 + t1) / 2)); d > tol {
			t.Errorf("step %d deviates by %g", i, d)
		}
	}
}
