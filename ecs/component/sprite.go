package component

// Pose selects which variant of a sprite to draw.
type Pose int

const (
	PoseIdle Pose = iota
	PoseWalk
	PoseRise
	PoseFall
)

func (p Pose) String() string {
	switch p {
	case PoseWalk:
		return "walk"
	case PoseRise:
		return "rise"
	case PoseFall:
		return "fall"
	default:
		return "idle"
	}
}

// Sprite describes what to draw. Sprites are procedural, so Kind names a
// drawing routine rather than an image.
type Sprite struct {
	Kind       string
	Width      float64
	Height     float64
	FacingLeft bool
	Pose       Pose
	OffsetY    float64
	Hidden     bool
	Layer      int
}

var SpriteComponent = NewComponent[Sprite]()
