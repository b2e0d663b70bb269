package entity

import (
	"fmt"

	"github.com/milk9111/piggy/ecs"
	"github.com/milk9111/piggy/ecs/component"
)

const defaultCameraSmoothness = 0.15

func NewCamera(w *ecs.World, viewWidth, worldWidth, x float64) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if worldWidth < viewWidth {
		worldWidth = viewWidth
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		X:          x,
		Smoothness: defaultCameraSmoothness,
		ViewWidth:  viewWidth,
		WorldWidth: worldWidth,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	return camera, nil
}
