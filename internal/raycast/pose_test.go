package raycast

import (
	"math"
	"testing"
)

func TestAdvanceZeroIntentIsIdempotent(t *testing.T) {
	g := ringGrid(t)
	p := Pose{X: 90, Y: 100, Heading: 7.5, TurnRate: 0.1, MoveSpeed: 3}
	before := p

	for i := 0; i < 100; i++ {
		res := p.Advance(g, Intent{})
		if res.Moved || res.Blocked {
			t.Fatalf("Advance(zero) = %+v on call %d", res, i)
		}
	}

	if p != before {
		t.Errorf("pose changed under zero intent: %+v -> %+v", before, p)
	}
}

func TestAdvanceTurnsThenMoves(t *testing.T) {
	g, err := NewGrid([][]int{
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
		{1, 1, 1, 1},
	}, 64)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	p := Pose{X: 100, Y: 100, Heading: 0, TurnRate: math.Pi / 2, MoveSpeed: 10}
	res := p.Advance(g, Intent{Turn: 1, Move: 1})

	if !res.Moved {
		t.Fatalf("Advance() = %+v, expected a move", res)
	}
	if !near(p.Heading, math.Pi/2) {
		t.Errorf("Heading = %v, expected π/2", p.Heading)
	}
	// The step uses the heading after turning: straight down.
	if !near(p.X, 100) || !near(p.Y, 110) {
		t.Errorf("position = (%v, %v), expected (100, 110)", p.X, p.Y)
	}
	if !near(res.Step, 10) {
		t.Errorf("Step = %v, expected 10", res.Step)
	}
}

func TestAdvanceBackward(t *testing.T) {
	g := ringGrid(t)
	p := Pose{X: 96, Y: 96, Heading: 0, TurnRate: 0.1, MoveSpeed: 5}

	res := p.Advance(g, Intent{Move: -1})
	if !res.Moved {
		t.Fatalf("Advance() = %+v, expected a move", res)
	}
	if !near(p.X, 91) || !near(p.Y, 96) {
		t.Errorf("position = (%v, %v), expected (91, 96)", p.X, p.Y)
	}
}

func TestAdvanceRejectsMoveIntoWall(t *testing.T) {
	g := ringGrid(t)

	tests := []struct {
		name    string
		heading float64
	}{
		{"east", 0},
		{"south", math.Pi / 2},
		{"west", math.Pi},
		{"north", 3 * math.Pi / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// One 40-unit step from the center crosses the 32-unit gap to the wall.
			p := Pose{X: 96, Y: 96, Heading: tc.heading, TurnRate: 0.1, MoveSpeed: 40}
			res := p.Advance(g, Intent{Move: 1})

			if res.Moved || !res.Blocked {
				t.Errorf("Advance() = %+v, expected blocked", res)
			}
			if p.X != 96 || p.Y != 96 {
				t.Errorf("position = (%v, %v), expected unchanged (96, 96)", p.X, p.Y)
			}
		})
	}
}

func TestAdvanceRejectsMoveOutOfBounds(t *testing.T) {
	g, err := NewGrid([][]int{{0, 0}, {0, 0}}, 10)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	p := Pose{X: 15, Y: 10, Heading: 0, TurnRate: 0.1, MoveSpeed: 5}
	if res := p.Advance(g, Intent{Move: 1}); !res.Blocked {
		t.Errorf("step onto the boundary x=20 should be rejected, got %+v", res)
	}
	if p.X != 15 {
		t.Errorf("X = %v, expected 15", p.X)
	}
}

func TestAdvanceClampsIntent(t *testing.T) {
	g := ringGrid(t)
	p := Pose{X: 96, Y: 96, Heading: 0, TurnRate: 0.25, MoveSpeed: 4}

	p.Advance(g, Intent{Turn: 5, Move: 9})

	if !near(p.Heading, 0.25) {
		t.Errorf("Heading = %v, expected a single 0.25 turn", p.Heading)
	}
	if !near(math.Hypot(p.X-96, p.Y-96), 4) {
		t.Errorf("moved %v, expected a single 4-unit step", math.Hypot(p.X-96, p.Y-96))
	}
}

func TestAdvanceNormalizesHeading(t *testing.T) {
	g := ringGrid(t)
	p := Pose{X: 96, Y: 96, Heading: 0.05, TurnRate: 0.1, MoveSpeed: 1}

	p.Advance(g, Intent{Turn: -1})

	if p.Heading < 0 || p.Heading >= 2*math.Pi {
		t.Errorf("Heading = %v, expected it in [0, 2π)", p.Heading)
	}
	if !near(p.Heading, 2*math.Pi-0.05) {
		t.Errorf("Heading = %v, expected %v", p.Heading, 2*math.Pi-0.05)
	}
}

func TestIntentPollsItself(t *testing.T) {
	var src InputSource = Intent{Turn: -1, Move: 1}
	if got := src.Poll(); got != (Intent{Turn: -1, Move: 1}) {
		t.Errorf("Poll() = %+v", got)
	}
}
