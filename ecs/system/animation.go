package system

import (
	"github.com/milk9111/piggy/common"
	"github.com/milk9111/piggy/ecs"
	"github.com/milk9111/piggy/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AnimationComponent.Kind(), func(_ ecs.Entity, anim *component.Animation) {
		if !anim.Playing || anim.FrameCount <= 0 || anim.FPS <= 0 {
			return
		}

		// Advance frame every N ticks based on FPS and the fixed tick rate.
		ticksPerFrame := int(common.TPS / anim.FPS)
		if ticksPerFrame < 1 {
			ticksPerFrame = 1
		}

		anim.FrameTimer++
		if anim.FrameTimer < ticksPerFrame {
			return
		}
		anim.FrameTimer = 0
		anim.Frame++
		if anim.Frame >= anim.FrameCount {
			if anim.Loop {
				anim.Frame = 0
			} else {
				anim.Frame = anim.FrameCount - 1
				anim.Playing = false
			}
		}
	})
}
