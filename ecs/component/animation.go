package component

// Animation steps through a fixed number of frames at FPS, assuming a 60
// TPS update loop. Renderers map Frame to whatever they draw.
type Animation struct {
	FrameCount int
	FPS        float64
	Loop       bool
	Frame      int
	FrameTimer int
	Playing    bool
}

var AnimationComponent = NewComponent[Animation]()
