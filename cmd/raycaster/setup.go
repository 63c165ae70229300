package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-raycaster/internal/config"
	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/maps"
	"github.com/vovakirdan/tui-raycaster/internal/registry"
)

// logger writes to stderr. Full-screen commands swap it for a log file.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "raycaster",
})

func setupLogger() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return nil
}

// useLogFile redirects logging to ~/.raycaster/raycaster.log so it does not
// draw over the terminal UI. The returned func closes the file.
func useLogFile() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		logger.SetOutput(io.Discard)
		return func() {}
	}
	dir := filepath.Join(home, ".raycaster")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.SetOutput(io.Discard)
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "raycaster.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		logger.SetOutput(io.Discard)
		return func() {}
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}
}

// loadRaycastConfig loads the config from --config or the search path
// and applies --quality on top.
func loadRaycastConfig() (config.RaycastConfig, error) {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return config.RaycastConfig{}, err
	}
	logger.Debug("config loaded", "source", source)

	preset, err := config.ParseQualityPreset(flagQuality)
	if err != nil {
		return config.RaycastConfig{}, err
	}
	if preset != "" {
		config.ApplyQualityPreset(&cfg, preset)
		logger.Debug("quality preset applied", "preset", preset,
			"cells_per_ray", cfg.Camera.CellsPerRay, "workers", cfg.Camera.Workers)
	}
	return cfg, cfg.Validate()
}

// loadExtraMaps registers map files from --maps-dir, or from
// ~/.raycaster/maps when the flag is unset and that directory exists.
func loadExtraMaps() error {
	dir := flagMapsDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		dir = filepath.Join(home, ".raycaster", "maps")
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
	}

	defs, err := maps.NewLoader(dir, logger).LoadAll()
	if err != nil {
		return err
	}
	for _, def := range defs {
		if err := registry.AddDefinition(def); err != nil {
			logger.Warn("skipping map", "file", def.FilePath, "error", err)
			continue
		}
		logger.Debug("map registered", "id", def.ID, "file", def.FilePath)
	}
	return nil
}

// runtimeConfig sizes the runtime to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
