package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/graphview/graphview"
	"github.com/graphview/graphview/chart"
)

// SVG writes f to w as a standalone SVG document, drawn in the same order as
// [Raster].
func SVG(w io.Writer, f chart.Frame, opts Options) error {
	pw, ph, err := pixelSize(f)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	num := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %s %s">`+"\n",
		pw, ph, num(f.Size.Width), num(f.Size.Height))
	if opts.Background != "" {
		fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", opts.Background)
	}

	if len(f.Area) > 0 {
		fill, opacity := hexColor(f.Fill)
		bw.WriteString(`<path d="`)
		if err := f.Area.WriteSVG(bw, graphview.SVGOptions{MaxPrecision: opts.Precision}); err != nil {
			return fmt.Errorf("writing area: %w", err)
		}
		fmt.Fprintf(bw, `" fill="%s"`, fill)
		if opacity < 1 {
			fmt.Fprintf(bw, ` fill-opacity="%s"`, num(opacity))
		}
		bw.WriteString("/>\n")
	}

	lw := num(opts.lineWidth())
	line := func(l graphview.Line, stroke string, opacity float64) {
		seq := l.PathElements()
		fmt.Fprintf(bw, `<path d="%s" stroke="%s" stroke-width="%s"`,
			graphview.SVG(seq, graphview.SVGOptions{MaxPrecision: opts.Precision}), stroke, lw)
		if opacity < 1 {
			fmt.Fprintf(bw, ` stroke-opacity="%s"`, num(opacity))
		}
		bw.WriteString("/>\n")
	}
	for _, s := range f.VerticalLines {
		stroke, opacity := hexColor(s.Color)
		line(s.Line, stroke, opacity)
	}
	for _, l := range f.HorizontalLines {
		line(l, opts.gridColor(), 1)
	}

	bw.WriteString("</svg>\n")
	return bw.Flush()
}
