package physics

// Params are the tunable constants of the resolver.
type Params struct {
	JumpStrength float64
	Gravity      float64
	// StandTolerance is how far below the body's bottom edge an obstacle top
	// may sit and still count as the floor under it.
	StandTolerance float64
	GroundY        float64
	// WorldWidth clamps horizontal movement to [0, WorldWidth-width]. Zero
	// disables clamping.
	WorldWidth float64
}

func DefaultParams() Params {
	return Params{
		JumpStrength:   13,
		Gravity:        0.7,
		StandTolerance: 10,
		GroundY:        520,
		WorldWidth:     800,
	}
}
