package raycast

import "sync"

// RayResult is everything a renderer needs for one screen column.
type RayResult struct {
	Index int
	Angle float64
	Hit   Hit
	Slice Slice
}

// Frame is the immutable output of one FrameDriver step.
type Frame struct {
	Tick        uint64
	Pose        Pose
	Move        MoveResult
	Rays        []RayResult
	TileSize    float64
	ColumnWidth float64 // viewport units per ray
}

// Renderer receives every completed frame.
type Renderer interface {
	Render(f Frame)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(f Frame)

// Render calls fn(f).
func (fn RendererFunc) Render(f Frame) { fn(f) }

// FrameDriver advances a Session by one frame: it polls input once, moves
// the pose, then casts every ray against that frozen pose.
type FrameDriver struct {
	Input    InputSource // nil means no motion
	Renderer Renderer    // optional
	Workers  int         // >1 casts rays on that many goroutines
}

// Step runs one frame and returns its result.
func (d *FrameDriver) Step(s *Session) Frame {
	var in Intent
	if d.Input != nil {
		in = d.Input.Poll()
	}

	move := s.pose.Advance(s.grid, in)
	s.tick++

	f := Frame{
		Tick:        s.tick,
		Pose:        s.pose,
		Move:        move,
		Rays:        make([]RayResult, s.rayCount),
		TileSize:    s.grid.TileSize(),
		ColumnWidth: s.settings.ColumnWidth,
	}
	d.castAll(s, f.Pose, f.Rays)

	if d.Renderer != nil {
		d.Renderer.Render(f)
	}
	return f
}

// Cast casts all rays for the session's current pose without advancing it.
func (d *FrameDriver) Cast(s *Session) Frame {
	f := Frame{
		Tick:        s.tick,
		Pose:        s.pose,
		Rays:        make([]RayResult, s.rayCount),
		TileSize:    s.grid.TileSize(),
		ColumnWidth: s.settings.ColumnWidth,
	}
	d.castAll(s, f.Pose, f.Rays)
	return f
}

func (d *FrameDriver) castAll(s *Session, pose Pose, out []RayResult) {
	workers := d.Workers
	if workers <= 1 || len(out) < 2 {
		castRange(s, pose, out, 0, len(out))
		return
	}
	workers = min(workers, len(out))

	var wg sync.WaitGroup
	chunk := (len(out) + workers - 1) / workers
	for lo := 0; lo < len(out); lo += chunk {
		hi := min(lo+chunk, len(out))
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			castRange(s, pose, out, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// castRange fills out[lo:hi]. Each index is written by exactly one caller.
func castRange(s *Session, pose Pose, out []RayResult, lo, hi int) {
	maxDist := s.settings.MaxDistance
	for i := lo; i < hi; i++ {
		angle := s.RayAngle(pose.Heading, i)
		hit := Cast(s.grid, pose.X, pose.Y, angle, maxDist)
		out[i] = RayResult{
			Index: i,
			Angle: angle,
			Hit:   hit,
			Slice: s.projection.Project(hit, angle, pose.Heading),
		}
	}
}
