package raycast

import "math"

// Intent is the per-frame motion request sampled from an InputSource.
// Turn and Move are -1, 0 or 1; other values are clamped.
type Intent struct {
	Turn int
	Move int
}

// Poll lets a fixed Intent act as its own InputSource.
func (i Intent) Poll() Intent { return i }

func (i Intent) clamped() Intent {
	return Intent{Turn: sign(i.Turn), Move: sign(i.Move)}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// InputSource exposes the current motion intent. It is polled exactly once
// at the top of each frame.
type InputSource interface {
	Poll() Intent
}

// Pose is the player position and heading in world space.
type Pose struct {
	X, Y      float64
	Heading   float64 // radians
	TurnRate  float64 // radians per tick
	MoveSpeed float64 // world units per tick
}

// MoveResult describes what one Advance call did.
type MoveResult struct {
	Moved   bool    // position changed
	Blocked bool    // a move was requested but rejected
	Step    float64 // distance travelled this tick
}

// Advance integrates one fixed tick: turn first, then attempt a full step
// along the new heading. A step that would leave the grid or enter a wall
// is rejected and the position is kept as is.
func (p *Pose) Advance(g *Grid, in Intent) MoveResult {
	in = in.clamped()

	if in.Turn != 0 {
		p.Heading = Normalize(p.Heading + float64(in.Turn)*p.TurnRate)
	}
	if in.Move == 0 {
		return MoveResult{}
	}

	step := float64(in.Move) * p.MoveSpeed
	nx := p.X + step*math.Cos(p.Heading)
	ny := p.Y + step*math.Sin(p.Heading)

	if !g.CanWalk(nx, ny) {
		return MoveResult{Blocked: true}
	}

	p.X, p.Y = nx, ny
	return MoveResult{Moved: true, Step: math.Abs(step)}
}
