package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// fillEllipse draws the ellipse inscribed in the box (x, y, w, h) one row at
// a time.
func fillEllipse(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	a := w / 2
	b := h / 2
	cx := x + a
	for row := 0.0; row < h; row++ {
		dy := (row + 0.5 - b) / b
		half := a * math.Sqrt(math.Max(0, 1-dy*dy))
		if half <= 0 {
			continue
		}
		vector.DrawFilledRect(dst, float32(cx-half), float32(y+row), float32(2*half), 1, clr, true)
	}
}

func fillCircle(dst *ebiten.Image, cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), clr, true)
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func line(dst *ebiten.Image, x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// mirror maps an x offset inside a box of width w, flipping it when the
// sprite faces left.
func mirror(off, size, w float64, left bool) float64 {
	if left {
		return w - off - size
	}
	return off
}
