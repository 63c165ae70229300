package game

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-raycaster/internal/config"
	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/maps"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
)

func boxMap() maps.Definition {
	return maps.Definition{
		ID:       "box",
		Name:     "Box",
		TileSize: 64,
		Cells:    [][]int{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}},
	}
}

func newGame(t *testing.T, mutate func(*config.RaycastConfig)) *Game {
	t.Helper()
	cfg := config.DefaultRaycastConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g, err := New(boxMap(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := g.Reset(core.DefaultConfig()); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestNewRejectsBadInput(t *testing.T) {
	bad := config.DefaultRaycastConfig()
	bad.Camera.ColumnWidth = 0
	if _, err := New(boxMap(), bad); err == nil {
		t.Error("expected an error for an invalid config")
	}

	def := boxMap()
	def.Cells = [][]int{{1, 1}, {1}}
	if _, err := New(def, config.DefaultRaycastConfig()); err == nil {
		t.Error("expected an error for a ragged map")
	}
}

func TestResetStartsAtCenterFacingDown(t *testing.T) {
	g := newGame(t, nil)

	p := g.Pose()
	if p.X != 96 || p.Y != 96 {
		t.Errorf("start = (%v, %v), want (96, 96)", p.X, p.Y)
	}
	if math.Abs(p.Heading-math.Pi/2) > 1e-9 {
		t.Errorf("heading = %v, want pi/2", p.Heading)
	}

	f, ok := g.Frame()
	if !ok || len(f.Rays) != 80 {
		t.Fatalf("Reset should render a frame with one ray per column, got %d rays", len(f.Rays))
	}
}

func TestWalkIntoWall(t *testing.T) {
	g := newGame(t, nil)

	// Facing down at 2 units a tick from y=96: 15 steps reach y=126, the
	// 16th would enter the wall row at y=128.
	var state core.GameState
	for i := 0; i < 20; i++ {
		state = g.Step(press(core.ActionForward)).State
	}

	if p := g.Pose(); p.Y != 126 || p.X != 96 {
		t.Errorf("pose = (%v, %v), want (96, 126)", p.X, p.Y)
	}
	if state.Ticks != 20 {
		t.Errorf("Ticks = %d, want 20", state.Ticks)
	}
	if state.Distance != 30 {
		t.Errorf("Distance = %v, want 30", state.Distance)
	}
	if state.Bumps != 5 {
		t.Errorf("Bumps = %d, want 5", state.Bumps)
	}
}

func TestHeldPressKeepsMoving(t *testing.T) {
	g := newGame(t, func(c *config.RaycastConfig) { c.Input.HoldTicks = 4 })

	g.Step(press(core.ActionForward))
	for i := 0; i < 6; i++ {
		g.Step(core.NewInputFrame())
	}

	// One press moves for hold_ticks frames, then stops.
	if p := g.Pose(); p.Y != 96+4*2 {
		t.Errorf("y = %v, want %v", p.Y, 96+4*2)
	}
}

func TestStopReleasesHold(t *testing.T) {
	g := newGame(t, nil)

	g.Step(press(core.ActionForward))
	g.Step(press(core.ActionStop))
	y := g.Pose().Y
	g.Step(core.NewInputFrame())

	if g.Pose().Y != y {
		t.Error("Stop should drop the held move")
	}
}

func TestPauseFreezesPose(t *testing.T) {
	g := newGame(t, nil)

	state := g.Step(press(core.ActionPause)).State
	if !state.Paused {
		t.Fatal("expected paused state")
	}
	before := g.Pose()
	for i := 0; i < 5; i++ {
		g.Step(press(core.ActionForward, core.ActionTurnLeft))
	}
	if g.Pose() != before {
		t.Error("pose changed while paused")
	}

	state = g.Step(press(core.ActionPause)).State
	if state.Paused {
		t.Error("second pause should resume")
	}
}

func TestRestartReturnsToStart(t *testing.T) {
	g := newGame(t, nil)
	start := g.Pose()

	for i := 0; i < 5; i++ {
		g.Step(press(core.ActionForward, core.ActionTurnRight))
	}
	if g.Pose() == start {
		t.Fatal("expected the pose to change")
	}

	state := g.Step(press(core.ActionRestart)).State
	// The restart frame itself polls nothing held, so the pose stays home.
	if g.Pose() != start {
		t.Errorf("pose after restart = %+v, want %+v", g.Pose(), start)
	}
	if state.Distance != 0 || state.Bumps != 0 {
		t.Errorf("stats not cleared: %+v", state)
	}
}

func TestTurnLeftDecreasesHeading(t *testing.T) {
	g := newGame(t, nil)
	h0 := g.Pose().Heading

	g.Step(press(core.ActionTurnLeft))
	if got, want := g.Pose().Heading, h0-0.02; math.Abs(got-want) > 1e-9 {
		t.Errorf("heading = %v, want %v", got, want)
	}
}

func TestRenderDrawsWallsMinimapAndHUD(t *testing.T) {
	g := newGame(t, nil)
	rc := core.DefaultConfig()
	screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
	g.Render(screen)

	// The center ray hits the wall 32 units ahead, which fills the column.
	c := screen.GetCell(40, 12)
	if c.Rune != '█' || c.Color != core.ShadeColor(1) {
		t.Errorf("center column = %+v, want a full-brightness block", c)
	}

	// Minimap box in the top-right corner, player arrow facing down.
	if screen.GetCell(79, 0).Rune != '┐' {
		t.Errorf("minimap corner = %q", screen.GetCell(79, 0).Rune)
	}
	if screen.GetCell(77, 2).Rune != '↓' {
		t.Errorf("player marker = %q, want '↓'", screen.GetCell(77, 2).Rune)
	}

	if hud := screen.Row(23); !strings.Contains(hud, "Box") || !strings.Contains(hud, "80 rays") {
		t.Errorf("HUD row = %q", hud)
	}
}

func TestToggleMapHidesMinimap(t *testing.T) {
	g := newGame(t, nil)
	g.Step(press(core.ActionToggleMap))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if screen.GetCell(79, 0).Rune == '┐' {
		t.Error("minimap should be hidden after toggling")
	}
}

func TestPausedOverlay(t *testing.T) {
	g := newGame(t, nil)
	g.Step(press(core.ActionPause))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused game should draw the pause box")
	}
}

func TestTooSmallTerminal(t *testing.T) {
	g := newGame(t, nil)
	rc := core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60}
	if err := g.Resize(rc); err != nil {
		t.Fatalf("Resize: %v", err)
	}

	state := g.Step(press(core.ActionForward)).State
	if !state.TooSmall {
		t.Error("expected TooSmall")
	}
	if g.Pose().Y != 96 {
		t.Error("the game should not advance while the terminal is too small")
	}

	screen := core.NewScreen(10, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too") {
		t.Errorf("expected a too-small message, got:\n%s", screen.String())
	}
}

func TestResizeKeepsPose(t *testing.T) {
	g := newGame(t, nil)
	for i := 0; i < 3; i++ {
		g.Step(press(core.ActionForward))
	}
	before := g.Pose()

	if err := g.Resize(core.RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 60}); err != nil {
		t.Fatal(err)
	}
	if g.Pose() != before {
		t.Error("Resize moved the player")
	}
	if f, _ := g.Frame(); len(f.Rays) != 120 {
		t.Errorf("rays after resize = %d, want 120", len(f.Rays))
	}
}

func TestSettingsFor(t *testing.T) {
	cfg := config.DefaultRaycastConfig()
	cfg.Camera.CellsPerRay = 2
	cfg.Camera.FOVDegrees = 60

	def := boxMap()
	def.Start = &maps.Start{Col: 1, Row: 1, HeadingDegrees: 180, HasHeading: true}

	s := SettingsFor(cfg, def, 81)
	if s.ViewportWidth != 410 {
		t.Errorf("ViewportWidth = %v, want 41 rays * 10", s.ViewportWidth)
	}
	if math.Abs(s.FOV-math.Pi/3) > 1e-12 {
		t.Errorf("FOV = %v, want pi/3", s.FOV)
	}
	if !s.HasStart || s.StartX != 96 || math.Abs(s.StartHeading-math.Pi) > 1e-12 {
		t.Errorf("start = %+v", s)
	}
}

func TestWallRows(t *testing.T) {
	// 40 world pixels per row at one cell per ray and column width 20.
	if got := WallRows(400, 20, 1); got != 10 {
		t.Errorf("WallRows = %v, want 10", got)
	}
	// Two cells per ray halve the pixels per row.
	if got := WallRows(400, 20, 2); got != 20 {
		t.Errorf("WallRows = %v, want 20", got)
	}
}

func TestWallCell(t *testing.T) {
	tests := []struct {
		tile  int
		shade float64
		rune  rune
		color core.Color
	}{
		{1, 1, '█', core.ShadeColor(1)},
		{1, 0.5, '▓', core.ShadeColor(0.5)},
		{1, 0.2, '▒', core.ShadeColor(0.2)},
		{1, 0.05, '░', core.ShadeColor(0.05)},
		{2, 0.9, '█', core.ColorBrightRed},
		{2, 0.3, '▒', core.ColorRed},
		{3, 0.6, '▓', core.ColorBrightBlue},
		{42, 1, '█', core.ShadeColor(1)},
	}

	for _, tt := range tests {
		got := WallCell(tt.tile, tt.shade)
		if got.Rune != tt.rune || got.Color != tt.color {
			t.Errorf("WallCell(%d, %v) = %+v, want %q/%d", tt.tile, tt.shade, got, tt.rune, tt.color)
		}
	}
}

func TestArrow(t *testing.T) {
	tests := []struct {
		heading float64
		want    rune
	}{
		{0, '→'},
		{math.Pi / 2, '↓'},
		{math.Pi, '←'},
		{3 * math.Pi / 2, '↑'},
		{-math.Pi / 4, '↗'},
		{2*math.Pi - 0.01, '→'},
	}

	for _, tt := range tests {
		if got := Arrow(tt.heading); got != tt.want {
			t.Errorf("Arrow(%v) = %q, want %q", tt.heading, got, tt.want)
		}
	}
}

func TestViewDrawsNothingBeforeFirstFrame(t *testing.T) {
	g, _ := raycast.NewGrid([][]int{{1}}, 64)
	v := NewView(g, 1)
	screen := core.NewScreen(20, 10)
	screen.FillCell(core.Cell{Rune: 'x'})
	v.Draw(screen, Overlay{HUD: true})
	if strings.TrimSpace(screen.String()) != "" {
		t.Error("a view without a frame should leave a blank screen")
	}
}
