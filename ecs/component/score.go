package component

// Score tracks collected items for the HUD.
type Score struct {
	Points    int
	Collected int
	Total     int
}

// Complete reports whether every collectible in the level was taken.
func (s *Score) Complete() bool {
	return s != nil && s.Total > 0 && s.Collected >= s.Total
}

var ScoreComponent = NewComponent[Score]()
