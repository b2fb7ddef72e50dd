package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/graphview/graphview"
	"github.com/graphview/graphview/chart"
)

// Raster draws f onto a new gg context of the frame's size. The area is
// filled first, then the separators and the reference lines are stroked on
// top. The caller owns the returned context and should Close it.
func Raster(f chart.Frame, opts Options) (*gg.Context, error) {
	w, h, err := pixelSize(f)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(w, h)
	if opts.Background != "" {
		dc.ClearWithColor(gg.Hex(opts.Background))
	}

	if len(f.Area) > 0 {
		appendOutline(dc, f.Area)
		fill := f.Fill
		if fill == nil {
			fill = color.Black
		}
		dc.SetColor(fill)
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("filling area: %w", err)
		}
	}

	dc.SetLineWidth(opts.lineWidth())
	for _, s := range f.VerticalLines {
		if s.Color == nil {
			continue
		}
		dc.SetColor(s.Color)
		dc.DrawLine(s.Line.P0.X, s.Line.P0.Y, s.Line.P1.X, s.Line.P1.Y)
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("stroking separator: %w", err)
		}
	}

	dc.SetHexColor(opts.gridColor())
	for _, l := range f.HorizontalLines {
		dc.DrawLine(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y)
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("stroking reference line: %w", err)
		}
	}
	chart.Logger().Debug("rasterized frame", "frame", f, "width", w, "height", h)
	return dc, nil
}

// appendOutline adds the elements of o to the current path of dc.
func appendOutline(dc *gg.Context, o graphview.Outline) {
	for _, el := range o {
		switch el.Kind {
		case graphview.MoveToKind:
			dc.MoveTo(el.P0.X, el.P0.Y)
		case graphview.LineToKind:
			dc.LineTo(el.P0.X, el.P0.Y)
		case graphview.QuadToKind:
			dc.QuadraticTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y)
		case graphview.ClosePathKind:
			dc.ClosePath()
		}
	}
}

// WritePNG rasterizes f and encodes it to w as PNG.
func WritePNG(w io.Writer, f chart.Frame, opts Options) error {
	dc, err := Raster(f, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}
