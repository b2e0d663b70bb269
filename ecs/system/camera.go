package system

import (
	"github.com/milk9111/piggy/common"
	"github.com/milk9111/piggy/ecs"
	"github.com/milk9111/piggy/ecs/component"
)

// CameraSystem keeps the player horizontally centred, clamped to the level.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (c *CameraSystem) Update(w *ecs.World) {
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

	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		target := body.X + body.Width/2 - cam.ViewWidth/2
		target = common.Clamp(target, 0, cam.WorldWidth-cam.ViewWidth)

		if cam.Smoothness <= 0 || cam.Smoothness >= 1 {
			cam.X = target
			return
		}
		cam.X = common.Lerp(cam.X, target, cam.Smoothness)
	})
}
