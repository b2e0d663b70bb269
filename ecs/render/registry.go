package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/piggy/ecs/component"
)

// Painter draws one sprite with its top-left corner at (x, y) in screen
// space. frame is the current animation frame, 0 for static sprites.
type Painter func(dst *ebiten.Image, x, y float64, s *component.Sprite, frame int)

var painters = map[string]Painter{}

// RegisterPainter stores a painter by sprite kind.
func RegisterPainter(kind string, p Painter) {
	if kind == "" || p == nil {
		return
	}
	painters[kind] = p
}

// GetPainter returns the painter for a sprite kind.
func GetPainter(kind string) (Painter, bool) {
	if kind == "" {
		return nil, false
	}
	p, ok := painters[kind]
	return p, ok
}

func init() {
	RegisterPainter("pig", DrawPig)
	RegisterPainter("platform", DrawPlatform)
	RegisterPainter(component.KindFlower, DrawFlower)
	RegisterPainter(component.KindVideoFlower, DrawVideoFlower)
	RegisterPainter(component.KindBush, DrawBush)
	RegisterPainter(component.KindRock, DrawRock)
	RegisterPainter(component.KindBird, DrawBird)
}
