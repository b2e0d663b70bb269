package component

// Input stores per-tick input state for an entity.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

var InputComponent = NewComponent[Input]()
