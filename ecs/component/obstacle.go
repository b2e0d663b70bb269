package component

import "github.com/milk9111/piggy/physics"

// Obstacle is a static platform. Obstacles never move or disappear during a
// level.
type Obstacle struct {
	Rect physics.Rect
}

var ObstacleComponent = NewComponent[Obstacle]()
