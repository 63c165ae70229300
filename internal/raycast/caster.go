package raycast

import "math"

// Outcome tells whether a ray found a wall.
type Outcome int

const (
	NoHit Outcome = iota
	HitWall
)

func (o Outcome) String() string {
	switch o {
	case HitWall:
		return "hit"
	case NoHit:
		return "none"
	default:
		return "unknown"
	}
}

// Side is the family of grid lines a hit was found on.
type Side int

const (
	SideNone       Side = iota
	SideHorizontal      // crossing of a line y = k*tileSize
	SideVertical        // crossing of a line x = k*tileSize
)

func (s Side) String() string {
	switch s {
	case SideHorizontal:
		return "horizontal"
	case SideVertical:
		return "vertical"
	default:
		return "none"
	}
}

// Hit is the result of casting one ray. For NoHit, Distance is the caller's
// max distance and X, Y lie that far along the ray.
type Hit struct {
	Outcome  Outcome
	X, Y     float64
	Distance float64
	Side     Side
	Tile     int // value of the wall cell that was hit
	Steps    int // grid-line crossings examined by the winning search
}

// Found reports whether the ray hit a wall.
func (h Hit) Found() bool { return h.Outcome == HitWall }

type lineHit struct {
	found bool
	x, y  float64
	tile  int
	steps int
}

// Cast finds the nearest wall along a ray from (x, y) at angle.
// The angle is normalized internally. Horizontal and vertical grid-line
// crossings are searched independently and the nearer hit wins; on an exact
// tie the horizontal hit is kept.
func Cast(g *Grid, x, y, angle, maxDistance float64) Hit {
	angle = Normalize(angle)

	h := castHorizontal(g, x, y, angle)
	v := castVertical(g, x, y, angle)

	hDist, vDist := maxDistance, maxDistance
	if h.found {
		hDist = math.Hypot(h.x-x, h.y-y)
	}
	if v.found {
		vDist = math.Hypot(v.x-x, v.y-y)
	}

	switch {
	case h.found && (!v.found || hDist <= vDist):
		return Hit{Outcome: HitWall, X: h.x, Y: h.y, Distance: hDist, Side: SideHorizontal, Tile: h.tile, Steps: h.steps}
	case v.found:
		return Hit{Outcome: HitWall, X: v.x, Y: v.y, Distance: vDist, Side: SideVertical, Tile: v.tile, Steps: v.steps}
	}

	return Hit{
		Outcome:  NoHit,
		X:        x + maxDistance*math.Cos(angle),
		Y:        y + maxDistance*math.Sin(angle),
		Distance: maxDistance,
		Steps:    max(h.steps, v.steps),
	}
}

// castHorizontal walks the crossings of horizontal grid lines y = k*tileSize.
func castHorizontal(g *Grid, x, y, angle float64) lineHit {
	sin, cos := math.Sincos(angle)
	if math.Abs(sin) < axisEpsilon {
		// Parallel to the horizontal lines.
		return lineHit{}
	}

	ts := g.TileSize()
	down := PointingDown(angle)
	left := PointingLeft(angle)
	tan := sin / cos

	hy := math.Floor(y/ts) * ts
	if down {
		hy += ts
	}
	hx := x + (hy-y)/tan

	dy := directed(ts, down)
	dx := directed(ts/tan, !left)

	// A point on the line belongs to the cell below it; when moving up the
	// cell of interest is the one above, so sample just inside it.
	nudge := 0.0
	if !down {
		nudge = sampleNudge(ts)
	}

	return march(g, hx, hy, dx, dy, 0, nudge)
}

// castVertical walks the crossings of vertical grid lines x = k*tileSize.
func castVertical(g *Grid, x, y, angle float64) lineHit {
	sin, cos := math.Sincos(angle)
	if math.Abs(cos) < axisEpsilon {
		// Parallel to the vertical lines.
		return lineHit{}
	}

	ts := g.TileSize()
	down := PointingDown(angle)
	left := PointingLeft(angle)
	tan := sin / cos

	vx := math.Floor(x/ts) * ts
	if !left {
		vx += ts
	}
	vy := y + (vx-x)*tan

	dx := directed(ts, !left)
	dy := directed(ts*tan, down)

	nudge := 0.0
	if left {
		nudge = sampleNudge(ts)
	}

	return march(g, vx, vy, dx, dy, nudge, 0)
}

// sampleNudge is how far behind a grid line the rayward cell is sampled.
// It stays inside that cell for any positive tile size.
func sampleNudge(ts float64) float64 {
	return min(1, ts/2)
}

// march steps from (px, py) by (dx, dy), sampling (px-nx, py-ny) at each
// crossing, until a wall is found, the sample leaves the grid or the step
// cap is reached.
func march(g *Grid, px, py, dx, dy, nx, ny float64) lineHit {
	limit := g.StepCap()
	for steps := 1; steps <= limit; steps++ {
		tile, ok := g.CellAt(px-nx, py-ny)
		if !ok {
			return lineHit{steps: steps}
		}
		if tile != 0 {
			return lineHit{found: true, x: px, y: py, tile: tile, steps: steps}
		}
		px += dx
		py += dy
	}
	return lineHit{steps: limit}
}
