package component

// Audio holds named one-shot sounds for an entity. Systems set Play[i];
// the audio system starts the sound unless it is still cooling down.
type Audio struct {
	Names  []string
	Volume []float64
	Play   []bool
	// CooldownTicks is the minimum gap between two starts of the same sound.
	CooldownTicks int
	Cooldown      []int
	// Disabled marks sounds whose backend failed once; they stay silent.
	Disabled []bool
}

var AudioComponent = NewComponent[Audio]()

// Request flags the named sound to play this tick. It reports whether the
// entity has a sound with that name.
func (a *Audio) Request(name string) bool {
	if a == nil {
		return false
	}
	for i, n := range a.Names {
		if n != name {
			continue
		}
		if i < len(a.Play) {
			a.Play[i] = true
			return true
		}
		return false
	}
	return false
}
