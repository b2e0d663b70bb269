package entity

import (
	"fmt"

	"github.com/milk9111/piggy/config"
	"github.com/milk9111/piggy/ecs"
	"github.com/milk9111/piggy/ecs/component"
	"github.com/milk9111/piggy/physics"
)

// Sound names the player can request.
const (
	SoundOink   = "oink"
	SoundPickup = "pickup"
)

// NewPlayer creates the pig standing on the ground line at x.
func NewPlayer(w *ecs.World, cfg config.Config, params physics.Params, x float64) (ecs.Entity, error) {
	player := ecs.CreateEntity(w)

	body := physics.NewBody(x, params.GroundY, cfg.Player.Width, cfg.Player.Height, cfg.Player.Speed)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{Params: params}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, player, component.BodyComponent.Kind(), &body); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: body.X, Y: body.Y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.SpriteComponent.Kind(), &component.Sprite{
		Kind:   "pig",
		Width:  body.Width,
		Height: body.Height,
		Layer:  10,
	}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	if err := ecs.Add(w, player, component.BounceComponent.Kind(), &component.Bounce{
		Speed:  cfg.Player.BounceSpeed,
		Height: cfg.Player.BounceHeight,
	}); err != nil {
		return 0, fmt.Errorf("player: add bounce: %w", err)
	}

	names := []string{SoundOink, SoundPickup}
	volume := make([]float64, len(names))
	for i := range volume {
		volume[i] = cfg.Audio.SFXVolume
	}
	if err := ecs.Add(w, player, component.AudioComponent.Kind(), &component.Audio{
		Names:         names,
		Volume:        volume,
		Play:          make([]bool, len(names)),
		CooldownTicks: cfg.Audio.CooldownTicks,
		Cooldown:      make([]int, len(names)),
		Disabled:      make([]bool, len(names)),
	}); err != nil {
		return 0, fmt.Errorf("player: add audio: %w", err)
	}

	return player, nil
}
