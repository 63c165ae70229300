package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycaster/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available maps",
	Long:  `Shows the built-in maps and any loaded from --maps-dir.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	if err := loadExtraMaps(); err != nil {
		return err
	}

	list := registry.List()
	if len(list) == 0 {
		fmt.Println("No maps available.")
		return nil
	}

	fmt.Println("Available maps:")
	fmt.Println()

	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, m := range list {
		maxIDLen = max(maxIDLen, len(m.ID))
		maxTitleLen = max(maxTitleLen, len(m.Title))
	}

	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Size", "Source")
	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----", "------")

	for _, m := range list {
		source := m.File
		if source == "" {
			source = "built-in"
		}
		size := fmt.Sprintf("%dx%d", m.Cols, m.Rows)
		fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, m.ID, maxTitleLen, m.Title, size, source)
	}

	fmt.Println()
	fmt.Println("Run 'raycaster play <id>' to walk a map.")
	return nil
}
