package system

import (
	"github.com/milk9111/piggy/ecs"
	"github.com/milk9111/piggy/ecs/component"
)

// InputSource produces one input snapshot per tick. The windowed game reads
// the keyboard and gamepad; the terminal game replays tcell key events.
type InputSource interface {
	Poll() component.Input
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	snapshot := i.source.Poll()
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = snapshot
	})
}
