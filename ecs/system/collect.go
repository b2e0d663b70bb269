package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/piggy/ecs"
	"github.com/milk9111/piggy/ecs/component"
	"github.com/milk9111/piggy/physics"
)

// CollectSystem runs after kinematics and checks the player against every
// collectible still in play. A collected item is hidden for good, plays the
// pickup sound on the player and emits a CollectEvent for the score system.
type CollectSystem struct {
	log *zap.SugaredLogger
}

func NewCollectSystem(log *zap.SugaredLogger) *CollectSystem {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &CollectSystem{log: log}
}

func (s *CollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	body, ok := ecs.Get(w, player, component.BodyComponent.Kind())
	if !ok {
		return
	}

	var blocked []physics.Rect
	if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
		blocked = p.Blocked
	}

	var (
		ents  []ecs.Entity
		items []*physics.Collectible
	)
	ecs.ForEach(w, component.CollectibleComponent.Kind(), func(e ecs.Entity, c *component.Collectible) {
		ents = append(ents, e)
		items = append(items, &c.Collectible)
	})

	for _, idx := range physics.Collect(body.Rect, items, blocked...) {
		e := ents[idx]
		c, _ := ecs.Get(w, e, component.CollectibleComponent.Kind())

		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Hidden = true
		}
		if audio, ok := ecs.Get(w, player, component.AudioComponent.Kind()); ok {
			audio.Request("pickup")
		}

		w.Events().Push(ecs.Event{
			Type: ecs.EventCollected,
			Data: ecs.CollectEvent{Entity: e, Kind: c.Kind},
		})
		s.log.Infow("collected", "kind", c.Kind, "entity", e)
	}
}
