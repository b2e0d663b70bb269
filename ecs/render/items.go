package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/piggy/ecs/component"
)

func DrawPlatform(dst *ebiten.Image, x, y float64, s *component.Sprite, _ int) {
	fillRect(dst, x, y, s.Width, s.Height, colornames.Saddlebrown)
	fillRect(dst, x, y, s.Width, math.Min(6, s.Height), colornames.Forestgreen)
}

func drawFlowerHead(dst *ebiten.Image, cx, cy, r float64, petal color.Color, spin float64) {
	for i := 0; i < 5; i++ {
		a := spin + float64(i)*2*math.Pi/5
		fillCircle(dst, cx+math.Cos(a)*r, cy+math.Sin(a)*r, r*0.7, petal)
	}
	fillCircle(dst, cx, cy, r*0.6, colornames.Gold)
}

func DrawFlower(dst *ebiten.Image, x, y float64, s *component.Sprite, _ int) {
	cx := x + s.Width/2
	r := s.Width / 6
	line(dst, cx, y+s.Height/3, cx, y+s.Height, 3, colornames.Green)
	drawFlowerHead(dst, cx, y+s.Height/3, r, colornames.Hotpink, 0)
}

var videoFlowerPalette = []color.Color{
	colornames.Red,
	colornames.Orange,
	colornames.Yellow,
	colornames.Lime,
	colornames.Cyan,
	colornames.Blue,
	colornames.Blueviolet,
	colornames.Magenta,
}

// DrawVideoFlower cycles petal colour and spin with the animation frame.
func DrawVideoFlower(dst *ebiten.Image, x, y float64, s *component.Sprite, frame int) {
	cx := x + s.Width/2
	r := s.Width / 6
	petal := videoFlowerPalette[((frame%len(videoFlowerPalette))+len(videoFlowerPalette))%len(videoFlowerPalette)]
	line(dst, cx, y+s.Height/3, cx, y+s.Height, 3, colornames.Green)
	drawFlowerHead(dst, cx, y+s.Height/3, r, petal, float64(frame)*math.Pi/20)
}

func DrawBush(dst *ebiten.Image, x, y float64, s *component.Sprite, _ int) {
	w, h := s.Width, s.Height
	fillEllipse(dst, x, y+h*0.3, w*0.6, h*0.7, colornames.Forestgreen)
	fillEllipse(dst, x+w*0.4, y+h*0.3, w*0.6, h*0.7, colornames.Forestgreen)
	fillEllipse(dst, x+w*0.2, y, w*0.6, h*0.8, colornames.Seagreen)
	fillCircle(dst, x+w*0.35, y+h*0.4, 3, colornames.Crimson)
	fillCircle(dst, x+w*0.65, y+h*0.55, 3, colornames.Crimson)
}

func DrawRock(dst *ebiten.Image, x, y float64, s *component.Sprite, _ int) {
	fillEllipse(dst, x, y, s.Width, s.Height, colornames.Slategray)
	fillEllipse(dst, x+s.Width*0.2, y+s.Height*0.15, s.Width*0.3, s.Height*0.25, colornames.Lightgray)
}

func DrawBird(dst *ebiten.Image, x, y float64, s *component.Sprite, _ int) {
	w, h := s.Width, s.Height
	fillEllipse(dst, x+w*0.15, y+h*0.25, w*0.7, h*0.6, colornames.Royalblue)
	fillEllipse(dst, x+w*0.3, y, w*0.4, h*0.45, colornames.Lightskyblue)
	fillCircle(dst, x+w*0.72, y+h*0.35, h*0.16, colornames.Royalblue)
	fillCircle(dst, x+w*0.76, y+h*0.32, 2, colornames.Black)
	line(dst, x+w*0.86, y+h*0.36, x+w, y+h*0.42, 3, colornames.Orange)
}
