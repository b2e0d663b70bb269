package system

import (
	"math"

	"github.com/milk9111/piggy/ecs"
	"github.com/milk9111/piggy/ecs/component"
)

// BounceSystem bobs the player sprite while a move key is held on the
// ground: offset = |sin(t)| * height, t advancing by speed per tick.
type BounceSystem struct{}

func NewBounceSystem() *BounceSystem {
	return &BounceSystem{}
}

func (s *BounceSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.BounceComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, b *component.Bounce, body *component.Body) {
		walking := false
		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			walking = (input.Left || input.Right) && body.Grounded()
		}

		if walking {
			b.Time += b.Speed
			b.Offset = math.Abs(math.Sin(b.Time) * b.Height)
		} else {
			b.Time = 0
			b.Offset = 0
		}

		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.OffsetY = -b.Offset
		}
	})
}
