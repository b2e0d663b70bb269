package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/piggy/ecs/component"
)

var (
	pigPink   = colornames.Pink
	snoutPink = color.RGBA{R: 255, G: 150, B: 170, A: 255}
)

// DrawPig paints the pig on an 80x80 layout scaled to the sprite size. Eyes,
// snout and ears mirror when it faces left.
func DrawPig(dst *ebiten.Image, x, y float64, s *component.Sprite, _ int) {
	sx := s.Width / 80
	sy := s.Height / 80
	left := s.FacingLeft

	at := func(off, size float64) float64 {
		return x + mirror(off, size, 80, left)*sx
	}

	fillEllipse(dst, x, y, s.Width, s.Height, pigPink)

	for _, ear := range []float64{10, 40} {
		fillEllipse(dst, at(ear, 20), y+5*sy, 20*sx, 25*sy, pigPink)
	}

	for _, eye := range []float64{14, 39} {
		cx := at(eye, 12) + 6*sx
		fillCircle(dst, cx, y+30*sy, 6*sx, colornames.Black)
		fillCircle(dst, cx-2*sx, y+28*sy, 2*sx, colornames.White)
	}

	nose := at(25, 25)
	fillEllipse(dst, nose, y+40*sy, 25*sx, 20*sy, snoutPink)
	fillCircle(dst, nose+8*sx, y+48*sy, 4*sx, colornames.Black)
	fillCircle(dst, nose+17*sx, y+48*sy, 4*sx, colornames.Black)

	if s.Pose == component.PoseRise || s.Pose == component.PoseFall {
		for _, leg := range []float64{18, 52} {
			fillRect(dst, at(leg, 10), y+s.Height-6*sy, 10*sx, 10*sy, snoutPink)
		}
	}
}
