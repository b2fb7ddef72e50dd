package term

import (
	"math"
	"slices"

	"github.com/graphview/graphview"
)

// layer orders what a cell shows. A cell takes the style of the highest
// layer that set one of its dots.
type layer uint8

const (
	layerNone layer = iota
	layerArea
	layerGrid
	layerSeparator
)

// dotBits maps a micro-pixel within a cell, indexed [column][row], to its
// braille dot.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// canvas is a braille buffer with 2×4 micro-pixels per terminal cell.
type canvas struct {
	w, h   int // in cells
	mask   [][]uint8
	layers [][]layer
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, mask: make([][]uint8, h), layers: make([][]layer, h)}
	for i := range c.mask {
		c.mask[i] = make([]uint8, w)
		c.layers[i] = make([]layer, w)
	}
	return c
}

// set sets the micro-pixel (mx, my). Pixels off the canvas are ignored.
func (c *canvas) set(mx, my int, l layer) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= c.w || cy >= c.h {
		return
	}
	c.mask[cy][cx] |= dotBits[mx%2][my%4]
	c.layers[cy][cx] = max(c.layers[cy][cx], l)
}

// line draws a line between two micro-pixels using Bresenham.
func (c *canvas) line(x0, y0, x1, y1 int, l layer) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.set(x0, y0, l)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// strokeLine draws l, given in micro-pixel coordinates.
func (c *canvas) strokeLine(ln graphview.Line, l layer) {
	x0, y0, ok0 := micro(ln.P0)
	x1, y1, ok1 := micro(ln.P1)
	if !ok0 || !ok1 {
		return
	}
	// Keep Bresenham from walking far outside the canvas.
	lim := 4 * (c.w + c.h)
	x0, x1 = clamp(x0, -1, lim), clamp(x1, -1, lim)
	y0, y1 = clamp(y0, -1, lim), clamp(y1, -1, lim)
	c.line(x0, y0, x1, y1, l)
}

// fill sets every micro-pixel whose center lies inside poly, using the
// even-odd rule. The polygon is implicitly closed.
func (c *canvas) fill(poly []graphview.Point, l layer) {
	if len(poly) < 3 {
		return
	}
	var xs []float64
	for my := range c.h * 4 {
		y := float64(my) + 0.5
		xs = xs[:0]
		for i := range poly {
			a, b := poly[i], poly[(i+1)%len(poly)]
			if a.Y == b.Y {
				continue
			}
			if (y >= a.Y && y < b.Y) || (y >= b.Y && y < a.Y) {
				t := (y - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			start := max(int(math.Ceil(xs[i]-0.5)), 0)
			end := min(int(math.Floor(xs[i+1]-0.5)), c.w*2-1)
			for mx := start; mx <= end; mx++ {
				c.set(mx, my, l)
			}
		}
	}
}

// cell returns the braille rune of a cell, or a space if it is empty.
func (c *canvas) cell(cx, cy int) rune {
	m := c.mask[cy][cx]
	if m == 0 {
		return ' '
	}
	return rune(0x2800 + int(m))
}

func (c *canvas) lines() []string {
	out := make([]string, c.h)
	for y := range c.h {
		row := make([]rune, c.w)
		for x := range c.w {
			row[x] = c.cell(x, y)
		}
		out[y] = string(row)
	}
	return out
}

// micro rounds a point to the micro-pixel containing it.
func micro(pt graphview.Point) (int, int, bool) {
	if pt.IsNaN() || pt.IsInf() {
		return 0, 0, false
	}
	x, y := math.Floor(pt.X), math.Floor(pt.Y)
	if math.Abs(x) > math.MaxInt32 || math.Abs(y) > math.MaxInt32 {
		return 0, 0, false
	}
	return int(x), int(y), true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
