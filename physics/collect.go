package physics

// Collectible is an item the player picks up by overlapping it. A solid
// collectible also blocks movement until collected; since the player can
// never overlap one, touching it or being blocked by it counts.
type Collectible struct {
	Rect
	Solid     bool
	Collected bool
}

// Collect marks every uncollected item the player overlaps as collected and
// returns their indices. Collected items are skipped, so calling it again at
// the same position collects nothing. Blocked are candidate rects of moves
// rejected this tick (StepResult.Blocked); a solid item one of them overlaps
// is collected even if a gap smaller than one step remains.
func Collect(player Rect, items []*Collectible, blocked ...Rect) []int {
	var out []int
	for i, item := range items {
		if item == nil || item.Collected {
			continue
		}
		hit := player.Intersects(item.Rect)
		if item.Solid {
			hit = player.Touches(item.Rect) || anyIntersects(blocked, item.Rect)
		}
		if !hit {
			continue
		}
		item.Collected = true
		out = append(out, i)
	}
	return out
}

func anyIntersects(rects []Rect, target Rect) bool {
	for _, r := range rects {
		if r.Intersects(target) {
			return true
		}
	}
	return false
}

// Obstacles returns the platform rects followed by every solid, uncollected
// collectible, preserving order.
func Obstacles(platforms []Rect, items []*Collectible) []Rect {
	out := make([]Rect, 0, len(platforms)+len(items))
	out = append(out, platforms...)
	for _, item := range items {
		if item == nil || item.Collected || !item.Solid {
			continue
		}
		out = append(out, item.Rect)
	}
	return out
}
