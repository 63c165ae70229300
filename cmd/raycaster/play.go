package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycaster/internal/game"
	"github.com/vovakirdan/tui-raycaster/internal/maps/builtin"
	"github.com/vovakirdan/tui-raycaster/internal/platform/tui"
	"github.com/vovakirdan/tui-raycaster/internal/registry"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [map]",
	Short: "Walk a map",
	Long: `Start walking the specified map (default: classic).

Controls:
  W/Up, S/Down     - Walk forward/backward
  A/Left, D/Right  - Turn left/right
  Space            - Stop
  M                - Toggle minimap
  P                - Pause
  R                - Back to the start point
  Ctrl+S           - Save a screenshot
  Esc/B, Q         - Leave

Terminals do not report key releases, so a press keeps you moving for a
few frames (input.hold_ticks in the config).

Quality presets:
  low    - one ray every 3 columns, single worker
  medium - one ray every 2 columns, 2 workers
  high   - one ray per column, 4 workers

Examples:
  raycaster play
  raycaster play courtyard
  raycaster play classic --quality low
  raycaster play classic --config ./my-raycaster.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	mapID := builtin.DefaultID
	if len(args) == 1 {
		mapID = args[0]
	}

	cfg, err := loadRaycastConfig()
	if err != nil {
		return err
	}
	if err := loadExtraMaps(); err != nil {
		return err
	}

	if !registry.Exists(mapID) {
		return fmt.Errorf("unknown map %q (run 'raycaster list' to see available maps)", mapID)
	}
	def, err := registry.Create(mapID)
	if err != nil {
		return err
	}
	g, err := game.New(def, cfg)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		// Continue without storage - the walk still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	restore := useLogFile()
	defer restore()

	logger.Info("walking map", "map", mapID)
	if err := tui.Run(g, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running map: %w", err)
	}
	return nil
}
