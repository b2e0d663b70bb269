package component

import "github.com/milk9111/piggy/physics"

// Collectible kinds.
const (
	KindFlower      = "flower"
	KindBush        = "bush"
	KindRock        = "rock"
	KindBird        = "bird"
	KindVideoFlower = "video_flower"
)

// Collectible is a typed item. The embedded physics value is what the
// overlap checker mutates.
type Collectible struct {
	physics.Collectible
	Kind string
}

var CollectibleComponent = NewComponent[Collectible]()
