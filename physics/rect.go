package physics

// Rect is an axis-aligned rectangle in screen space: Y grows downward, so
// Top() is the smaller Y and Bottom() the larger one.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Intersects reports strict overlap. Rectangles that only share an edge do
// not intersect, which lets a body rest on top of an obstacle and still walk.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Touches is Intersects with shared edges counted as contact.
func (r Rect) Touches(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// OverlapsX reports whether the horizontal spans strictly overlap.
func (r Rect) OverlapsX(other Rect) bool {
	return r.X < other.X+other.Width && r.X+r.Width > other.X
}

// Translate returns r moved by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}
