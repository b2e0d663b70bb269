package component

// Bounce bobs a sprite while its owner walks.
type Bounce struct {
	Time   float64
	Offset float64
	Speed  float64
	Height float64
}

var BounceComponent = NewComponent[Bounce]()
