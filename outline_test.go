package graphview

import (
	"slices"
	"strings"
	"testing"
)

func TestPathElementString(t *testing.T) {
	tests := []struct {
		el   PathElement
		want string
	}{
		{MoveTo(Pt(1, 2)), "MoveTo((1, 2))"},
		{LineTo(Pt(3, 4)), "LineTo((3, 4))"},
		{QuadTo(Pt(5, 6), Pt(7, 8)), "QuadTo((5, 6), (7, 8))"},
		{ClosePath(), "ClosePath"},
		{PathElement{}, "InvalidPathElement"},
	}
	for _, tt := range tests {
		if got := tt.el.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestOutlineVertices(t *testing.T) {
	var o Outline
	if _, ok := o.LastPoint(); ok {
		t.Error("empty outline reported a last point")
	}
	o.MoveTo(Pt(0, 0))
	o.LineTo(Pt(10, 0))
	o.QuadTo(Pt(15, 5), Pt(20, 0))
	o.ClosePath()

	diff(t, []Point{Pt(0, 0), Pt(10, 0), Pt(20, 0)}, o.Vertices())
	last, ok := o.LastPoint()
	if !ok {
		t.Fatal("no last point")
	}
	diff(t, Pt(20, 0), last)
}

func TestOutlineTransform(t *testing.T) {
	var nilOutline Outline
	if nilOutline.Transform(Translate(Vec(1, 1))) != nil {
		t.Error("transforming a nil outline should return nil")
	}

	o := Outline{MoveTo(Pt(0, 0)), QuadTo(Pt(1, 2), Pt(3, 4)), ClosePath()}
	got := o.Transform(Translate(Vec(10, 20)))
	want := Outline{MoveTo(Pt(10, 20)), QuadTo(Pt(11, 22), Pt(13, 24)), ClosePath()}
	diff(t, want, got)
	// The receiver is left alone.
	diff(t, Pt(0, 0), o[0].P0)
}

func TestOutlineQuads(t *testing.T) {
	o := Outline{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(10, 0)),
		QuadTo(Pt(15, 5), Pt(20, 0)),
		ClosePath(),
		QuadTo(Pt(1, 1), Pt(2, 2)),
	}
	want := []QuadBez{
		{Pt(10, 0), Pt(15, 5), Pt(20, 0)},
		{Pt(0, 0), Pt(1, 1), Pt(2, 2)},
	}
	diff(t, want, slices.Collect(o.Quads()))
}

func TestOutlineBounds(t *testing.T) {
	o := Outline{MoveTo(Pt(0, 0)), QuadTo(Pt(5, 10), Pt(10, 0))}
	diff(t, Rect{0, 0, 10, 10}, o.ControlBox())
	diff(t, Rect{0, 0, 10, 5}, o.BoundingBox())

	diff(t, Rect{}, Outline(nil).BoundingBox())
}

func TestOutlineFlatten(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(5, 10), Pt(10, 0)}
	o := Outline{MoveTo(q.P0), QuadTo(q.P1, q.P2)}

	poly := o.Polygon(0.25)
	// |P0 − 2P1 + P2| = 20, so ceil(sqrt(20 / 1)) = 5 steps.
	if len(poly) != 6 {
		t.Fatalf("got %d polygon points, want 6", len(poly))
	}
	for i, pt := range poly {
		diff(t, q.Eval(float64(i)/5), pt)
	}

	for el := range o.Flatten(0.01) {
		if el.Kind == QuadToKind {
			t.Fatalf("flattened outline contains %s", el)
		}
	}
}

func TestOutlinePolygonFirstSubpath(t *testing.T) {
	o := Outline{
		MoveTo(Pt(0, 0)), LineTo(Pt(1, 0)), LineTo(Pt(1, 1)), ClosePath(),
		MoveTo(Pt(5, 5)), LineTo(Pt(6, 6)),
	}
	diff(t, []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}, o.Polygon(1))
}

func TestOutlineSVG(t *testing.T) {
	o := Outline{MoveTo(Pt(1.23456, -0.0001)), LineTo(Pt(2, 3)), QuadTo(Pt(0.5, 0.25), Pt(4, 5)), ClosePath()}
	diff(t, "M1.23,0 L2,3 Q0.5,0.25 4,5 Z", o.SVG(SVGOptions{MaxPrecision: 2}))
	diff(t, "M1.23456,-0.0001 L2,3 Q0.5,0.25 4,5 Z", o.SVG(SVGOptions{}))

	var sb strings.Builder
	if err := (Outline{MoveTo(Pt(0, 0)), {Kind: 42}}).WriteSVG(&sb, SVGOptions{}); err == nil {
		t.Error("expected an error for an invalid element kind")
	}
}
