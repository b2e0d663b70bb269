package component

import "github.com/milk9111/piggy/physics"

// Player carries the resolver constants for the controlled body. Blocked
// is rewritten by kinematics every tick with the moves an obstacle rejected.
type Player struct {
	Params  physics.Params
	Blocked []physics.Rect
}

var PlayerComponent = NewComponent[Player]()

// Body is the kinematic state the resolver mutates each tick.
type Body = physics.Body

var BodyComponent = NewComponent[Body]()
