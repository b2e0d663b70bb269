package component

// Transform is the top-left draw position of an entity in world space.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
