package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/piggy/ecs"
	"github.com/milk9111/piggy/ecs/component"
	"github.com/milk9111/piggy/physics"
)

// KinematicsSystem steps every player body through the resolver against the
// level's platforms plus any solid collectible still standing.
type KinematicsSystem struct {
	log *zap.SugaredLogger
}

func NewKinematicsSystem(log *zap.SugaredLogger) *KinematicsSystem {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &KinematicsSystem{log: log}
}

func (k *KinematicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var platforms []physics.Rect
	ecs.ForEach(w, component.ObstacleComponent.Kind(), func(_ ecs.Entity, o *component.Obstacle) {
		platforms = append(platforms, o.Rect)
	})

	var items []*physics.Collectible
	ecs.ForEach(w, component.CollectibleComponent.Kind(), func(_ ecs.Entity, c *component.Collectible) {
		items = append(items, &c.Collectible)
	})

	obstacles := physics.Obstacles(platforms, items)

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, p *component.Player, body *component.Body) {
		var intent physics.Intent
		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			intent = physics.Intent{Left: input.Left, Right: input.Right, Jump: input.Jump}
		}

		r := physics.Resolver{Obstacles: obstacles, Params: p.Params}
		res := r.Step(body, intent)
		p.Blocked = res.Blocked

		if res.Jumped {
			if audio, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
				audio.Request("oink")
			}
		}
		if res.Vertical == physics.Landed || res.Vertical == physics.StartedFalling {
			k.log.Debugw("vertical transition", "entity", e, "outcome", res.Vertical, "x", body.X, "y", body.Y)
		}

		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.X = body.X
			t.Y = body.Y
		}
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.FacingLeft = body.Facing == physics.Left
			sprite.Pose = poseFor(body, res)
		}
	})
}

func poseFor(body *physics.Body, res physics.StepResult) component.Pose {
	switch {
	case body.Rising():
		return component.PoseRise
	case body.Falling():
		return component.PoseFall
	case res.Moved:
		return component.PoseWalk
	default:
		return component.PoseIdle
	}
}
