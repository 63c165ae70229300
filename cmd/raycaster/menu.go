package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycaster/internal/game"
	"github.com/vovakirdan/tui-raycaster/internal/platform/tui"
	"github.com/vovakirdan/tui-raycaster/internal/registry"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a map picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a map.
When you leave a map, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Walk the map
  Tab          - Run log
  Q            - Quit

Examples:
  raycaster menu
  raycaster menu --fps 30
  raycaster menu --maps-dir ./maps`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadRaycastConfig()
	if err != nil {
		return err
	}
	if err := loadExtraMaps(); err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	restore := useLogFile()
	defer restore()

	rc := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, rc)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		rc = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsRuns {
			goBack, err := tui.RunRunsLog(store, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return fmt.Errorf("run log: %w", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		def, err := registry.Create(menuResult.MapID)
		if err != nil {
			logger.Error("cannot load map", "map", menuResult.MapID, "error", err)
			continue
		}
		g, err := game.New(def, cfg)
		if err != nil {
			logger.Error("cannot start map", "map", menuResult.MapID, "error", err)
			continue
		}

		logger.Info("walking map", "map", menuResult.MapID)
		if err := tui.Run(g, store, rc, logger); err != nil {
			logger.Error("map ended with error", "map", menuResult.MapID, "error", err)
		}
	}
}
