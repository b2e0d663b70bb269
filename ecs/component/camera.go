package component

// Camera follows the player horizontally. X is the world-space left edge of
// the view.
type Camera struct {
	X          float64
	Smoothness float64
	ViewWidth  float64
	WorldWidth float64
}

var CameraComponent = NewComponent[Camera]()
