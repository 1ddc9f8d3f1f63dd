package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tumble/internal/puzzles"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available puzzles",
	Long: `Shows the built-in puzzles plus any found in the configured puzzles
directory.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	mustLoadConfig() // Registers the puzzles directory

	all := puzzles.List()
	if len(all) == 0 {
		fmt.Println("No puzzles available.")
		return
	}

	fmt.Println("Available puzzles:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4
	for _, p := range all {
		maxIDLen = max(maxIDLen, len(p.ID))
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Goal")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxNameLen, "----", "----")

	for _, p := range all {
		goal := p.Goal
		if goal == "" {
			goal = "-"
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, p.ID, maxNameLen, p.Name, goal)
	}

	fmt.Println()
	fmt.Println("Run 'tumble play <id>' to open a puzzle.")
}
