package component

// Music is the looping background track of a level.
type Music struct {
	Track   string
	Volume  float64
	Started bool
	Failed  bool
}

var MusicComponent = NewComponent[Music]()
