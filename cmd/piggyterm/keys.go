package main

import (
	"github.com/milk9111/piggy/ecs/component"
)

// holdTicks is how long a key counts as held after its last press event.
// Terminals report presses and auto-repeats but never releases.
const holdTicks = 12

// keyState turns tcell key events into the held-key snapshot the input
// system expects.
type keyState struct {
	left, right, jump int
}

func (k *keyState) pressLeft() {
	k.left = holdTicks
	k.right = 0
}

func (k *keyState) pressRight() {
	k.right = holdTicks
	k.left = 0
}

func (k *keyState) pressJump() {
	k.jump = holdTicks
}

// Poll reports the held keys and then ages them by one tick.
func (k *keyState) Poll() component.Input {
	in := component.Input{
		Left:  k.left > 0,
		Right: k.right > 0,
		Jump:  k.jump > 0,
	}
	k.left = decay(k.left)
	k.right = decay(k.right)
	k.jump = decay(k.jump)
	return in
}

func (k *keyState) reset() {
	*k = keyState{}
}

func decay(n int) int {
	if n > 0 {
		return n - 1
	}
	return 0
}
