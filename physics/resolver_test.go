package physics

import (
	"math"
	"testing"
)

const (
	testGround = 520.0
	testSize   = 80.0
	testSpeed  = 5.0
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newTestBody(x float64) Body {
	return NewBody(x, testGround, testSize, testSize, testSpeed)
}

func newTestResolver(obstacles ...Rect) Resolver {
	return Resolver{Obstacles: obstacles, Params: DefaultParams()}
}

func TestStepRestingBodyIsUnchanged(t *testing.T) {
	r := newTestResolver(Rect{X: 100, Y: 400, Width: 60, Height: 20})
	b := newTestBody(400)

	res := r.Step(&b, Intent{})

	if b.X != 400 || b.Y != testGround-testSize {
		t.Fatalf("expected body at (400, %v), got (%v, %v)", testGround-testSize, b.X, b.Y)
	}
	if b.Jumping {
		t.Fatalf("resting body should not be jumping")
	}
	if res.Moved || res.Jumped || res.Vertical != Rested {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestJump(t *testing.T) {
	t.Run("accepted_from_ground", func(t *testing.T) {
		r := newTestResolver()
		b := newTestBody(400)

		if !r.Jump(&b) {
			t.Fatalf("jump from the ground should be accepted")
		}
		if !b.Jumping || b.VelY != -r.Params.JumpStrength {
			t.Fatalf("expected jumping with vel %v, got jumping=%v vel=%v", -r.Params.JumpStrength, b.Jumping, b.VelY)
		}
	})

	t.Run("step_moves_up_same_tick", func(t *testing.T) {
		r := newTestResolver()
		b := newTestBody(400)

		res := r.Step(&b, Intent{Jump: true})

		if !res.Jumped || !b.Jumping {
			t.Fatalf("expected jump to start this tick, got %+v jumping=%v", res, b.Jumping)
		}
		if !approx(b.Y, testGround-testSize-r.Params.JumpStrength) {
			t.Fatalf("expected y %v, got %v", testGround-testSize-r.Params.JumpStrength, b.Y)
		}
		if !approx(b.VelY, -r.Params.JumpStrength+r.Params.Gravity) {
			t.Fatalf("expected vel %v after one tick, got %v", -r.Params.JumpStrength+r.Params.Gravity, b.VelY)
		}
		if !b.Rising() {
			t.Fatalf("body should be rising")
		}
	})

	t.Run("ignored_while_jumping", func(t *testing.T) {
		r := newTestResolver()
		b := newTestBody(400)
		b.Y = 300
		b.Jumping = true
		b.VelY = -5

		if r.Jump(&b) {
			t.Fatalf("jump while airborne should be ignored")
		}
		if b.VelY != -5 || !b.Jumping {
			t.Fatalf("ignored jump changed state: vel=%v jumping=%v", b.VelY, b.Jumping)
		}
	})
}

func TestMoveHorizontal(t *testing.T) {
	wall := Rect{X: 482, Y: 400, Width: 50, Height: 120}

	cases := []struct {
		name      string
		obstacles []Rect
		startX    float64
		facing    Direction
		dir       Direction
		wantX     float64
		wantMoved bool
	}{
		{"free_right", nil, 400, Left, Right, 405, true},
		{"free_left", nil, 400, Right, Left, 395, true},
		{"blocked_right_keeps_x", []Rect{wall}, 400, Left, Right, 400, false},
		{"blocked_then_away", []Rect{wall}, 400, Right, Left, 395, true},
		{"clamped_at_left_edge", nil, 2, Right, Left, 0, true},
		{"stuck_at_left_edge", nil, 0, Right, Left, 0, false},
		{"stuck_at_right_edge", nil, 720, Left, Right, 720, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newTestResolver(c.obstacles...)
			b := newTestBody(c.startX)
			b.Facing = c.facing

			moved := r.MoveHorizontal(&b, c.dir)

			if moved != c.wantMoved || b.X != c.wantX {
				t.Fatalf("expected x=%v moved=%v, got x=%v moved=%v", c.wantX, c.wantMoved, b.X, moved)
			}
			if b.Facing != c.dir {
				t.Fatalf("facing should follow the request: want %v got %v", c.dir, b.Facing)
			}
		})
	}
}

func TestMoveHorizontalOnTopOfObstacle(t *testing.T) {
	platform := Rect{X: 300, Y: 300, Width: 300, Height: 20}
	r := newTestResolver(platform)
	b := newTestBody(400)
	b.Y = platform.Top() - b.Height

	if !r.MoveHorizontal(&b, Right) {
		t.Fatalf("walking along the platform top should not be blocked")
	}
}

func TestStepLeftAndRightCancel(t *testing.T) {
	r := newTestResolver()
	b := newTestBody(400)
	b.Facing = Left

	r.Step(&b, Intent{Left: true, Right: true})

	if b.X != 400 {
		t.Fatalf("expected x unchanged, got %v", b.X)
	}
	if b.Facing != Right {
		t.Fatalf("right is applied last and should win facing")
	}
}

func TestIntegrateLandsOnObstacle(t *testing.T) {
	const top = 300.0
	platform := Rect{X: 380, Y: top, Width: 200, Height: 20}
	r := newTestResolver(platform)
	b := newTestBody(400)
	b.Y = top - 1 - b.Height
	b.Jumping = true
	b.VelY = 6

	if got := r.Integrate(&b); got != Landed {
		t.Fatalf("expected landing, got %v", got)
	}
	if b.Y != top-b.Height || b.Jumping || b.VelY != 0 {
		t.Fatalf("expected y=%v grounded vel=0, got y=%v jumping=%v vel=%v", top-b.Height, b.Y, b.Jumping, b.VelY)
	}
}

func TestIntegrateTopmostSurfaceWins(t *testing.T) {
	high := Rect{X: 380, Y: 300, Width: 200, Height: 20}
	low := Rect{X: 380, Y: 305, Width: 200, Height: 20}

	for _, order := range [][]Rect{{high, low}, {low, high}} {
		r := newTestResolver(order...)
		b := newTestBody(400)
		b.Y = 290 - b.Height
		b.Jumping = true
		b.VelY = 30

		r.Integrate(&b)

		if b.Y != high.Top()-b.Height {
			t.Fatalf("order %v: expected landing on the higher surface y=%v, got %v", order, high.Top()-b.Height, b.Y)
		}
	}
}

func TestIntegrateDoesNotLandWhileAscending(t *testing.T) {
	platform := Rect{X: 380, Y: 420, Width: 200, Height: 10}
	r := newTestResolver(platform)
	b := newTestBody(400)
	r.Jump(&b)

	if got := r.Integrate(&b); got != Airborne {
		t.Fatalf("ascending from below a platform should stay airborne, got %v", got)
	}

	b.Y = 200
	b.VelY = -8
	if got := r.Integrate(&b); got != Airborne {
		t.Fatalf("ascending above a platform should stay airborne, got %v", got)
	}
}

func TestIntegrateLandsOnGround(t *testing.T) {
	r := newTestResolver()
	b := newTestBody(400)
	b.Y = 430
	b.Jumping = true
	b.VelY = 20

	if got := r.Integrate(&b); got != Landed {
		t.Fatalf("expected ground landing, got %v", got)
	}
	if b.Y != testGround-testSize || b.Jumping || b.VelY != 0 {
		t.Fatalf("expected grounded at %v, got y=%v jumping=%v vel=%v", testGround-testSize, b.Y, b.Jumping, b.VelY)
	}
}

func TestIntegrateNoTunneling(t *testing.T) {
	thin := Rect{X: 300, Y: 300, Width: 300, Height: 2}
	r := newTestResolver(thin)

	for startY := 0.0; startY <= thin.Top()-testSize; startY += 7 {
		for _, vel := range []float64{0, 12, 40, 95} {
			b := newTestBody(400)
			b.Y = startY
			b.Jumping = true
			b.VelY = vel

			for tick := 0; tick < 300; tick++ {
				r.Integrate(&b)
				if b.Bottom() > thin.Top()+epsilon {
					t.Fatalf("start=%v vel=%v tick=%d: bottom %v passed through top %v", startY, vel, tick, b.Bottom(), thin.Top())
				}
			}
			if b.Jumping || b.Y != thin.Top()-testSize {
				t.Fatalf("start=%v vel=%v: expected to rest on the platform, got y=%v jumping=%v", startY, vel, b.Y, b.Jumping)
			}
		}
	}
}

func TestIntegrateFloorRemoved(t *testing.T) {
	platform := Rect{X: 380, Y: 300, Width: 200, Height: 20}
	b := newTestBody(400)
	b.Y = platform.Top() - b.Height

	standing := newTestResolver(platform)
	if got := standing.Integrate(&b); got != Rested {
		t.Fatalf("expected to rest on the platform, got %v", got)
	}

	gone := newTestResolver()
	if got := gone.Integrate(&b); got != StartedFalling {
		t.Fatalf("expected to start falling, got %v", got)
	}
	if !b.Jumping || b.VelY != 0 || b.Y != platform.Top()-b.Height {
		t.Fatalf("expected hover start with vel 0 at the same y, got y=%v jumping=%v vel=%v", b.Y, b.Jumping, b.VelY)
	}

	gone.Integrate(&b)
	if b.Y != platform.Top()-b.Height || !approx(b.VelY, gone.Params.Gravity) {
		t.Fatalf("first falling tick should not move yet: y=%v vel=%v", b.Y, b.VelY)
	}
	gone.Integrate(&b)
	if !(b.Y > platform.Top()-b.Height) {
		t.Fatalf("body should be falling, y=%v", b.Y)
	}

	for i := 0; i < 100 && b.Jumping; i++ {
		gone.Integrate(&b)
	}
	if b.Jumping || b.Y != testGround-testSize {
		t.Fatalf("expected to land on the ground, got y=%v jumping=%v", b.Y, b.Jumping)
	}
}

func TestStepWalkOffEdge(t *testing.T) {
	platform := Rect{X: 300, Y: 300, Width: 104, Height: 20}
	r := newTestResolver(platform)
	b := newTestBody(400)
	b.Y = platform.Top() - b.Height

	res := r.Step(&b, Intent{Right: true})
	if res.Vertical != StartedFalling {
		t.Fatalf("expected to fall after leaving the platform span, got %+v x=%v", res, b.X)
	}
}

func TestFloorTolerance(t *testing.T) {
	cases := []struct {
		name      string
		gap       float64
		wantFloor func(top float64) float64
	}{
		{"flush", 0, func(top float64) float64 { return top - testSize }},
		{"within_tolerance", 10, func(top float64) float64 { return top - testSize }},
		{"beyond_tolerance", 10.5, func(float64) float64 { return testGround - testSize }},
		{"above_bottom", -3, func(float64) float64 { return testGround - testSize }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := newTestBody(400)
			b.Y = 200
			top := b.Bottom() + c.gap
			r := newTestResolver(Rect{X: 380, Y: top, Width: 200, Height: 20})

			if got, want := r.Floor(&b), c.wantFloor(top); got != want {
				t.Fatalf("expected floor %v, got %v", want, got)
			}
		})
	}
}

func TestIntegrateHoveringWithinToleranceFalls(t *testing.T) {
	b := newTestBody(400)
	b.Y = 215
	platform := Rect{X: 380, Y: b.Bottom() + 5, Width: 200, Height: 20}
	r := newTestResolver(platform)

	if got := r.Integrate(&b); got != StartedFalling {
		t.Fatalf("hovering body should start falling rather than snap, got %v", got)
	}
	for i := 0; i < 20 && b.Jumping; i++ {
		r.Integrate(&b)
	}
	if b.Jumping || b.Y != platform.Top()-b.Height {
		t.Fatalf("expected to settle on the platform, got y=%v jumping=%v", b.Y, b.Jumping)
	}
}
