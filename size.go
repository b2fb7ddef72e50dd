package graphview

import (
	"fmt"
	"math"
)

// Size is the extent of a drawing surface.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) AsVec2() Vec2 {
	return Vec2{X: sz.Width, Y: sz.Height}
}

// Empty reports whether the size covers no area.
func (sz Size) Empty() bool {
	return !(sz.Width > 0 && sz.Height > 0)
}

// Ceil returns a new size with width and height rounded up to the nearest integers.
func (sz Size) Ceil() Size {
	return Size{
		Width:  math.Ceil(sz.Width),
		Height: math.Ceil(sz.Height),
	}
}
