// Package game bridges the raycasting engine to the terminal platform.
// It turns platform actions into a held motion intent, drives one engine
// frame per tick and paints frames into a core.Screen. Like the engine it
// has no dependency on Bubble Tea.
package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-raycaster/internal/config"
	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/maps"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
)

// Smallest terminal the view can be drawn in.
const (
	MinWidth  = 20
	MinHeight = 8
)

// Stats accumulate over one run, from reset to reset.
type Stats struct {
	Ticks    uint64
	Distance float64
	Bumps    int
}

// Game is one player's walk through a map.
type Game struct {
	def  maps.Definition
	cfg  config.RaycastConfig
	grid *raycast.Grid

	session *raycast.Session
	driver  raycast.FrameDriver
	input   *HeldInput
	view    *View

	runtime  core.RuntimeConfig
	paused   bool
	showMap  bool
	tooSmall bool
	stats    Stats
}

// New creates a game for def. The grid is built and checked here so a bad
// map fails before the terminal is taken over.
func New(def maps.Definition, cfg config.RaycastConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := def.Grid()
	if err != nil {
		return nil, err
	}
	input := NewHeldInput(cfg.Input.HoldTicks)
	view := NewView(g, cfg.Camera.CellsPerRay)
	return &Game{
		def:     def,
		cfg:     cfg,
		grid:    g,
		input:   input,
		view:    view,
		showMap: cfg.Display.Minimap,
		driver: raycast.FrameDriver{
			Input:    input,
			Renderer: view,
			Workers:  cfg.Camera.Workers,
		},
	}, nil
}

// ID returns the map ID, used as the key for stored runs.
func (g *Game) ID() string {
	return g.def.ID
}

// Title returns the map's display name.
func (g *Game) Title() string {
	return g.def.Name
}

// SettingsFor converts a config into engine settings for a terminal
// screenW columns wide, with the map's start point applied.
func SettingsFor(cfg config.RaycastConfig, def maps.Definition, screenW int) raycast.Settings {
	s := raycast.DefaultSettings(ViewportWidth(cfg, screenW))
	s.ColumnWidth = float64(cfg.Camera.ColumnWidth)
	s.FOV = raycast.Radians(cfg.Camera.FOVDegrees)
	s.TurnRate = cfg.Player.TurnRate
	s.MoveSpeed = cfg.Player.MoveSpeed
	s.ShadeConstant = cfg.Shading.Constant
	s.HeightScale = cfg.Camera.HeightScale
	s.MaxDistance = cfg.Shading.MaxDistance
	s.StartHeading = raycast.Radians(cfg.Player.StartHeadingDegrees)
	def.ApplyStart(&s)
	return s
}

// ViewportWidth returns the world-space viewport for a terminal width:
// one column_width per ray, with a ray every cells_per_ray columns.
func ViewportWidth(cfg config.RaycastConfig, screenW int) float64 {
	k := max(cfg.Camera.CellsPerRay, 1)
	rays := max((screenW+k-1)/k, 1)
	return float64(rays * cfg.Camera.ColumnWidth)
}

// Reset starts a fresh run at the map's start point.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	g.runtime = rc
	g.paused = false
	g.stats = Stats{}
	g.input.Release()
	g.tooSmall = rc.ScreenW < MinWidth || rc.ScreenH < MinHeight

	s, err := raycast.NewSession(g.grid, SettingsFor(g.cfg, g.def, rc.ScreenW))
	if err != nil {
		return fmt.Errorf("game: %s: %w", g.def.ID, err)
	}
	g.session = s
	g.view.Render(g.driver.Cast(s))
	return nil
}

// Resize adapts the view to a new terminal size without restarting the run.
func (g *Game) Resize(rc core.RuntimeConfig) error {
	if g.session == nil {
		return g.Reset(rc)
	}
	g.runtime = rc
	g.tooSmall = rc.ScreenW < MinWidth || rc.ScreenH < MinHeight
	if err := g.session.Resize(ViewportWidth(g.cfg, rc.ScreenW)); err != nil {
		return fmt.Errorf("game: %s: %w", g.def.ID, err)
	}
	g.view.Render(g.driver.Cast(g.session))
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.input.Release()
	}
	if in.Has(core.ActionToggleMap) {
		g.showMap = !g.showMap
	}
	if in.Has(core.ActionRestart) {
		g.restart()
	}

	if g.paused || g.tooSmall || g.session == nil {
		return core.StepResult{State: g.State()}
	}

	g.input.Press(in)
	f := g.driver.Step(g.session)

	g.stats.Ticks = f.Tick
	if f.Move.Moved {
		g.stats.Distance += f.Move.Step
	}
	if f.Move.Blocked {
		g.stats.Bumps++
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) restart() {
	if g.session == nil {
		return
	}
	g.session.Reset()
	g.input.Release()
	g.stats = Stats{}
	g.paused = false
	g.view.Render(g.driver.Cast(g.session))
}

// Render draws the current frame and overlays to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.Clear()
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", MinWidth, MinHeight))
		return
	}
	g.view.Draw(dst, Overlay{
		Title:   g.def.Name,
		Minimap: g.showMap,
		HUD:     g.cfg.Display.HUD,
		Paused:  g.paused,
		Stats:   g.stats,
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Ticks:    g.stats.Ticks,
		Distance: math.Round(g.stats.Distance*100) / 100,
		Bumps:    g.stats.Bumps,
		Paused:   g.paused,
		TooSmall: g.tooSmall,
	}
}

// Stats returns the statistics of the current run.
func (g *Game) Stats() Stats {
	return g.stats
}

// Pose returns the player's current pose.
func (g *Game) Pose() raycast.Pose {
	if g.session == nil {
		return raycast.Pose{}
	}
	return g.session.Pose()
}

// Frame returns the last frame handed to the view.
func (g *Game) Frame() (raycast.Frame, bool) {
	return g.view.Frame()
}
