// raycaster is a terminal first-person maze walker built on a grid
// raycasting engine.
//
// Usage:
//
//	raycaster list              - List available maps
//	raycaster play [map]        - Walk a map
//	raycaster menu              - Pick maps interactively
//	raycaster cast <map>        - Cast one frame and print every ray
//	raycaster runs [map]        - Show the run log
//	raycaster serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Frame rate (default: 60)
//	--db <path>         - Run log database (default: ~/.raycaster/runs.db)
//	--config <path>     - Camera/movement config YAML
//	--quality <preset>  - low, medium or high
//	--maps-dir <dir>    - Extra map files (default: ~/.raycaster/maps)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import built-in maps to register them
	_ "github.com/vovakirdan/tui-raycaster/internal/maps/builtin"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagQuality  string
	flagMapsDir  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "raycaster",
	Short: "Raycaster - walk grid mazes in your terminal",
	Long: `Raycaster renders a first-person view of a grid maze in the terminal,
one ray per screen column.

Available commands:
  list     - Show all available maps
  play     - Walk a specific map directly
  menu     - Interactive map picker
  cast     - Print one frame's rays without a terminal UI
  runs     - View the run log
  serve    - Start SSH server for remote play

Examples:
  raycaster list
  raycaster play classic
  raycaster play courtyard --quality high
  raycaster menu --maps-dir ./maps
  raycaster cast classic --width 40
  raycaster serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setupLogger()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	pf.StringVar(&flagDBPath, "db", "~/.raycaster/runs.db", "Path to the run log database")
	pf.StringVar(&flagConfig, "config", "", "Path to a custom raycaster config YAML")
	pf.StringVar(&flagQuality, "quality", "", "Quality preset: low, medium, high")
	pf.StringVar(&flagMapsDir, "maps-dir", "", "Directory of extra map files (default ~/.raycaster/maps if present)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(castCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}
