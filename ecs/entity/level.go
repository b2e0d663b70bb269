package entity

import (
	"fmt"

	"github.com/milk9111/piggy/ecs"
	"github.com/milk9111/piggy/ecs/component"
	"github.com/milk9111/piggy/levels"
	"github.com/milk9111/piggy/physics"
)

func rectOf(r levels.RectSpec) physics.Rect {
	return physics.Rect{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

// NewObstacle creates a static platform.
func NewObstacle(w *ecs.World, spec levels.RectSpec) (ecs.Entity, error) {
	ent := ecs.CreateEntity(w)
	r := rectOf(spec)
	if err := ecs.Add(w, ent, component.ObstacleComponent.Kind(), &component.Obstacle{Rect: r}); err != nil {
		return 0, fmt.Errorf("obstacle: add obstacle: %w", err)
	}
	if err := ecs.Add(w, ent, component.TransformComponent.Kind(), &component.Transform{X: r.X, Y: r.Y}); err != nil {
		return 0, fmt.Errorf("obstacle: add transform: %w", err)
	}
	if err := ecs.Add(w, ent, component.SpriteComponent.Kind(), &component.Sprite{
		Kind:   "platform",
		Width:  r.Width,
		Height: r.Height,
	}); err != nil {
		return 0, fmt.Errorf("obstacle: add sprite: %w", err)
	}
	return ent, nil
}

// NewCollectible creates an item. Animated kinds get an Animation that loops
// from the first tick.
func NewCollectible(w *ecs.World, spec levels.CollectibleSpec) (ecs.Entity, error) {
	ent := ecs.CreateEntity(w)
	r := rectOf(spec.RectSpec)
	if err := ecs.Add(w, ent, component.CollectibleComponent.Kind(), &component.Collectible{
		Collectible: physics.Collectible{Rect: r, Solid: spec.IsSolid()},
		Kind:        spec.Kind,
	}); err != nil {
		return 0, fmt.Errorf("collectible %s: add collectible: %w", spec.Kind, err)
	}
	if err := ecs.Add(w, ent, component.TransformComponent.Kind(), &component.Transform{X: r.X, Y: r.Y}); err != nil {
		return 0, fmt.Errorf("collectible %s: add transform: %w", spec.Kind, err)
	}
	if err := ecs.Add(w, ent, component.SpriteComponent.Kind(), &component.Sprite{
		Kind:   spec.Kind,
		Width:  r.Width,
		Height: r.Height,
		Layer:  5,
	}); err != nil {
		return 0, fmt.Errorf("collectible %s: add sprite: %w", spec.Kind, err)
	}

	if spec.Frames > 1 {
		fps := spec.FPS
		if fps <= 0 {
			fps = 12
		}
		if err := ecs.Add(w, ent, component.AnimationComponent.Kind(), &component.Animation{
			FrameCount: spec.Frames,
			FPS:        fps,
			Loop:       true,
			Playing:    true,
		}); err != nil {
			return 0, fmt.Errorf("collectible %s: add animation: %w", spec.Kind, err)
		}
	}
	return ent, nil
}

// NewScore creates the score keeper for total items.
func NewScore(w *ecs.World, total int) (ecs.Entity, error) {
	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.ScoreComponent.Kind(), &component.Score{Total: total}); err != nil {
		return 0, fmt.Errorf("score: add score: %w", err)
	}
	return ent, nil
}

// NewMusic creates the level's background track entity.
func NewMusic(w *ecs.World, track string, volume float64) (ecs.Entity, error) {
	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.MusicComponent.Kind(), &component.Music{Track: track, Volume: volume}); err != nil {
		return 0, fmt.Errorf("music: add music: %w", err)
	}
	return ent, nil
}
