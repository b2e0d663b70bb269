package physics

// epsilon absorbs float drift from snapping y to top-height and reading the
// bottom back as y+height.
const epsilon = 1e-6

// Intent is the per-tick input snapshot the resolver consumes.
type Intent struct {
	Left  bool
	Right bool
	Jump  bool
}

// Vertical is the outcome of one tick of vertical integration.
type Vertical int

const (
	// Rested means the body was grounded and is snapped to its floor.
	Rested Vertical = iota
	// Airborne means the tentative move was committed without contact.
	Airborne
	// Landed means a jumping body touched down on an obstacle or the ground.
	Landed
	// StartedFalling means a grounded body lost its floor and is now
	// airborne with zero velocity.
	StartedFalling
)

func (v Vertical) String() string {
	switch v {
	case Airborne:
		return "airborne"
	case Landed:
		return "landed"
	case StartedFalling:
		return "started_falling"
	default:
		return "rested"
	}
}

// StepResult reports what happened during Step.
type StepResult struct {
	Moved    bool
	Jumped   bool
	Vertical Vertical
	// Blocked holds the candidate rects of horizontal moves rejected by an
	// obstacle this tick.
	Blocked []Rect
}

// Resolver moves a Body against a fixed, ordered set of obstacles and the
// ground line. It holds no per-body state, so one value can serve any number
// of bodies within a tick.
type Resolver struct {
	Obstacles []Rect
	Params    Params
}

// Step advances b by one tick. The order is fixed: horizontal movement
// (left then right), then the jump trigger, then vertical integration.
// Swapping the order changes collision outcomes.
func (r Resolver) Step(b *Body, in Intent) StepResult {
	var res StepResult
	for _, dir := range [...]Direction{Left, Right} {
		if (dir == Left && !in.Left) || (dir == Right && !in.Right) {
			continue
		}
		moved, candidate, blocked := r.tryMove(b, dir)
		res.Moved = res.Moved || moved
		if blocked {
			res.Blocked = append(res.Blocked, candidate)
		}
	}
	if in.Jump {
		res.Jumped = r.Jump(b)
	}
	res.Vertical = r.Integrate(b)
	return res
}

// MoveHorizontal moves b one speed step in dir, or not at all if the
// destination overlaps an obstacle. Facing follows dir either way.
func (r Resolver) MoveHorizontal(b *Body, dir Direction) bool {
	moved, _, _ := r.tryMove(b, dir)
	return moved
}

// tryMove is MoveHorizontal that also reports the rejected candidate rect
// when an obstacle blocked the step.
func (r Resolver) tryMove(b *Body, dir Direction) (moved bool, candidate Rect, blocked bool) {
	b.Facing = dir

	x := b.X + dir.Sign()*b.Speed
	if r.Params.WorldWidth > 0 {
		x = clamp(x, 0, r.Params.WorldWidth-b.Width)
	}
	if x == b.X {
		return false, candidate, false
	}

	candidate = b.Rect
	candidate.X = x
	for _, o := range r.Obstacles {
		if candidate.Intersects(o) {
			return false, candidate, true
		}
	}

	b.X = x
	return true, candidate, false
}

// Jump starts a jump unless b is already airborne.
func (r Resolver) Jump(b *Body) bool {
	if b.Jumping {
		return false
	}
	b.Jumping = true
	b.VelY = -r.Params.JumpStrength
	return true
}

// Floor returns the y the body would have when standing on the topmost
// surface directly beneath it: the ground, or an obstacle whose top lies at
// or at most StandTolerance below the body's bottom edge.
func (r Resolver) Floor(b *Body) float64 {
	floor := r.Params.GroundY - b.Height
	bottom := b.Bottom()
	for _, o := range r.Obstacles {
		if !b.OverlapsX(o) {
			continue
		}
		gap := o.Top() - bottom
		if gap < -epsilon || gap > r.Params.StandTolerance {
			continue
		}
		if y := o.Top() - b.Height; y < floor {
			floor = y
		}
	}
	return floor
}

// Integrate applies one tick of gravity and resolves landings.
func (r Resolver) Integrate(b *Body) Vertical {
	if !b.Jumping {
		floor := r.Floor(b)
		if b.Y < floor-epsilon {
			// Hovering: the floor went away or the body walked off an edge.
			b.Jumping = true
			b.VelY = 0
			return StartedFalling
		}
		b.Y = floor
		return Rested
	}

	prevBottom := b.Bottom()
	nextY := b.Y + b.VelY
	nextBottom := nextY + b.Height
	b.VelY += r.Params.Gravity

	if top, ok := r.landingSurface(b.Rect, prevBottom, nextBottom); ok {
		land(b, top-b.Height)
		return Landed
	}

	if ground := r.Params.GroundY - b.Height; nextY >= ground {
		land(b, ground)
		return Landed
	}

	b.Y = nextY
	return Airborne
}

// landingSurface finds the topmost obstacle top crossed by the bottom edge
// moving from prevBottom to nextBottom while the spans overlap. Picking the
// topmost surface keeps the result independent of obstacle order.
func (r Resolver) landingSurface(body Rect, prevBottom, nextBottom float64) (float64, bool) {
	var (
		best  float64
		found bool
	)
	for _, o := range r.Obstacles {
		top := o.Top()
		if !body.OverlapsX(o) || prevBottom > top+epsilon || nextBottom < top {
			continue
		}
		if !found || top < best {
			best = top
			found = true
		}
	}
	return best, found
}

func land(b *Body, y float64) {
	b.Y = y
	b.Jumping = false
	b.VelY = 0
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
