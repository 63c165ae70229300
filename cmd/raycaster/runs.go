package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycaster/internal/registry"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [map]",
	Short: "Show the run log",
	Long: `Without a map, shows totals for every map and the most recent runs.
With a map, shows its longest walks.

Examples:
  raycaster runs
  raycaster runs classic --limit 20
  raycaster runs classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all runs for the map")
}

func runRuns(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagRunsClear {
			return fmt.Errorf("--clear needs a map")
		}
		return printOverview(store)
	}
	return printMapRuns(store, args[0])
}

func printMapRuns(store *storage.Store, mapID string) error {
	if err := loadExtraMaps(); err != nil {
		return err
	}

	title := mapID
	if def, err := registry.Create(mapID); err == nil {
		title = def.Name
	}

	if flagRunsClear {
		if err := store.ClearRuns(mapID); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for %s.\n", title)
		return nil
	}

	runs, err := store.TopRuns(mapID, flagRunsLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Longest walks - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'raycaster play %s' to start the log!\n", mapID)
		return nil
	}

	fmt.Printf("  %-4s  %-9s  %-7s  %-5s  %-12s  %s\n", "Rank", "Walked", "Ticks", "Bumps", "Player", "Date")
	fmt.Printf("  %-4s  %-9s  %-7s  %-5s  %-12s  %s\n", "----", "------", "-----", "-----", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-9.1f  %-7d  %-5d  %-12s  %s\n",
			i+1, r.Distance, r.Ticks, r.Bumps, playerName(r.Player), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetMapStats(mapID)
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("%d runs, %.0f walked in total, %d bumps\n", stats.Runs, stats.TotalDistance, stats.TotalBumps)
	}
	return nil
}

func printOverview(store *storage.Store) error {
	all, err := store.GetAllMapStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Maps")
	fmt.Println()
	fmt.Printf("  %-12s  %-5s  %-9s  %-9s  %s\n", "Map", "Runs", "Walked", "Longest", "Last played")
	fmt.Printf("  %-12s  %-5s  %-9s  %-9s  %s\n", "---", "----", "------", "-------", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-12s  %-5d  %-9.0f  %-9.1f  %s\n",
			id, s.Runs, s.TotalDistance, s.LongestWalk, s.LastPlayed.Format("2006-01-02 15:04"))
	}

	recent, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Println()
	for _, r := range recent {
		fmt.Printf("  %-16s  %-12s  %8.1f walked  %6d ticks  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.MapID, r.Distance, r.Ticks, playerName(r.Player))
	}
	return nil
}

func playerName(p string) string {
	if p == "" {
		return "local"
	}
	return p
}
