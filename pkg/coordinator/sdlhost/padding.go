package sdlhost

import (
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"
	"github.com/veandco/go-sdl2/sdl"
)

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Inset shrinks r by p. The result never has a negative size.
func (p Padding) Inset(r sdl.Rect) sdl.Rect {
	out := sdl.Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: r.W - p.Left - p.Right,
		H: r.H - p.Top - p.Bottom,
	}
	out.W = max(out.W, 0)
	out.H = max(out.H, 0)
	return out
}

// splitTop cuts a band of height h off the top of r.
func splitTop(r sdl.Rect, h int32) (band, rest sdl.Rect) {
	h = min(max(h, 0), r.H)
	band = sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: h}
	rest = sdl.Rect{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h}
	return band, rest
}

// splitBottom cuts a band of height h off the bottom of r.
func splitBottom(r sdl.Rect, h int32) (rest, band sdl.Rect) {
	h = min(max(h, 0), r.H)
	rest = sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H - h}
	band = sdl.Rect{X: r.X, Y: r.Y + r.H - h, W: r.W, H: h}
	return rest, band
}

// sheetRect returns the card a sheet of the given style occupies inside
// bounds. Form sheets take half of each dimension, other sheets three quarters.
func sheetRect(style screen.Style, bounds sdl.Rect) sdl.Rect {
	num, den := int32(3), int32(4)
	if style == screen.StyleFormSheet {
		num, den = 1, 2
	}

	w := bounds.W * num / den
	h := bounds.H * num / den
	return sdl.Rect{
		X: bounds.X + (bounds.W-w)/2,
		Y: bounds.Y + (bounds.H-h)/2,
		W: w,
		H: h,
	}
}

// tabRects divides a tab strip evenly. The last tab absorbs the remainder.
func tabRects(strip sdl.Rect, n int) []sdl.Rect {
	if n <= 0 {
		return nil
	}

	rects := make([]sdl.Rect, n)
	w := strip.W / int32(n)
	for i := range rects {
		rects[i] = sdl.Rect{X: strip.X + int32(i)*w, Y: strip.Y, W: w, H: strip.H}
	}
	rects[n-1].W = strip.X + strip.W - rects[n-1].X
	return rects
}

// centerIn returns a w by h rect centered in r.
func centerIn(r sdl.Rect, w, h int32) sdl.Rect {
	return sdl.Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}
