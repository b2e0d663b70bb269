package physics

// Direction is the way the body faces.
type Direction int

const (
	Right Direction = iota
	Left
)

// Sign is -1 for Left and +1 for Right.
func (d Direction) Sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Body is the kinematic state of the player. Width and Height never change
// after construction; everything else is mutated once per tick by a Resolver.
type Body struct {
	Rect
	Speed   float64
	Facing  Direction
	VelY    float64
	Jumping bool
}

// NewBody returns a body standing on the ground line at x.
func NewBody(x, groundY, width, height, speed float64) Body {
	return Body{
		Rect: Rect{
			X:      x,
			Y:      groundY - height,
			Width:  width,
			Height: height,
		},
		Speed:  speed,
		Facing: Right,
	}
}

// Grounded reports whether the body is resting on the ground or an obstacle.
func (b *Body) Grounded() bool {
	return !b.Jumping
}

// Rising reports an airborne body moving up.
func (b *Body) Rising() bool {
	return b.Jumping && b.VelY < 0
}

// Falling reports an airborne body at the apex or moving down.
func (b *Body) Falling() bool {
	return b.Jumping && b.VelY >= 0
}
