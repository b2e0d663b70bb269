package system

import (
	"fmt"

	"github.com/milk9111/piggy/ecs/component"
)

// CompleteText is shown once every item is collected.
const CompleteText = "All collected!"

// HUDText is the score line shown in both frontends.
func HUDText(s *component.Score) string {
	if s == nil {
		return ""
	}
	return fmt.Sprintf("Score: %d   Items: %d/%d", s.Points, s.Collected, s.Total)
}
