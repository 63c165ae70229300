package raycast

import "math"

// Settings configures a Session. Angles are in radians.
type Settings struct {
	ViewportWidth float64
	ColumnWidth   float64
	FOV           float64
	TurnRate      float64
	MoveSpeed     float64
	ShadeConstant float64
	HeightScale   float64
	MaxDistance   float64

	// Start overrides the map-center start point when HasStart is set.
	HasStart     bool
	StartX       float64
	StartY       float64
	StartHeading float64
}

// DefaultSettings returns the reference configuration for a viewport width.
func DefaultSettings(viewportWidth float64) Settings {
	return Settings{
		ViewportWidth: viewportWidth,
		ColumnWidth:   10,
		FOV:           Radians(75),
		TurnRate:      0.02,
		MoveSpeed:     2,
		ShadeConstant: 200,
		HeightScale:   1,
		MaxDistance:   9999,
		StartHeading:  math.Pi / 2,
	}
}

// Session owns everything one player's view needs: the grid, the pose and
// the derived projection. It is not safe for concurrent use; FrameDriver
// is its single writer.
type Session struct {
	grid       *Grid
	pose       Pose
	start      Pose
	settings   Settings
	projection Projection
	rayCount   int
	tick       uint64
}

// NewSession validates settings and places the pose at the start point.
func NewSession(g *Grid, s Settings) (*Session, error) {
	if g == nil {
		return nil, configErr("grid", "must not be nil")
	}
	if !(s.ColumnWidth > 0) {
		return nil, configErr("column width", "must be positive, got %v", s.ColumnWidth)
	}
	if !(s.TurnRate > 0) {
		return nil, configErr("turn rate", "must be positive, got %v", s.TurnRate)
	}
	if !(s.MoveSpeed > 0) {
		return nil, configErr("move speed", "must be positive, got %v", s.MoveSpeed)
	}
	if !(s.MaxDistance > 0) {
		return nil, configErr("max distance", "must be positive, got %v", s.MaxDistance)
	}

	proj, err := NewProjection(s.ViewportWidth, s.FOV, g.TileSize(), s.ShadeConstant, s.HeightScale)
	if err != nil {
		return nil, err
	}

	rays := int(math.Floor(s.ViewportWidth / s.ColumnWidth))
	if rays < 1 {
		return nil, configErr("column width", "%v is wider than the viewport %v", s.ColumnWidth, s.ViewportWidth)
	}

	x, y := g.Center()
	if s.HasStart {
		x, y = s.StartX, s.StartY
	}
	if !g.CanWalk(x, y) {
		return nil, configErr("start point", "(%.1f, %.1f) is not a walkable cell", x, y)
	}

	start := Pose{
		X:         x,
		Y:         y,
		Heading:   Normalize(s.StartHeading),
		TurnRate:  s.TurnRate,
		MoveSpeed: s.MoveSpeed,
	}

	return &Session{
		grid:       g,
		settings:   s,
		pose:       start,
		start:      start,
		projection: proj,
		rayCount:   rays,
	}, nil
}

// Reset returns the pose to the start point and clears the tick counter.
func (s *Session) Reset() {
	s.pose = s.start
	s.tick = 0
}

// Grid returns the session's map.
func (s *Session) Grid() *Grid { return s.grid }

// Pose returns a copy of the current pose.
func (s *Session) Pose() Pose { return s.pose }

// Settings returns the settings the session was built with.
func (s *Session) Settings() Settings { return s.settings }

// Projection returns the session's projection constants.
func (s *Session) Projection() Projection { return s.projection }

// RayCount returns floor(viewportWidth / columnWidth).
func (s *Session) RayCount() int { return s.rayCount }

// Tick returns the number of frames stepped so far.
func (s *Session) Tick() uint64 { return s.tick }

// RayAngle returns the normalized angle of ray i for the given heading.
func (s *Session) RayAngle(heading float64, i int) float64 {
	fov := s.settings.FOV
	return Normalize(heading - fov/2 + float64(i)*fov/float64(s.rayCount))
}

// Resize rebuilds the projection and ray count for a new viewport width.
// The pose, start point and tick are kept.
func (s *Session) Resize(viewportWidth float64) error {
	proj, err := NewProjection(viewportWidth, s.settings.FOV, s.grid.TileSize(), s.settings.ShadeConstant, s.settings.HeightScale)
	if err != nil {
		return err
	}
	rays := int(math.Floor(viewportWidth / s.settings.ColumnWidth))
	if rays < 1 {
		return configErr("column width", "%v is wider than the viewport %v", s.settings.ColumnWidth, viewportWidth)
	}

	s.settings.ViewportWidth = viewportWidth
	s.projection = proj
	s.rayCount = rays
	return nil
}
