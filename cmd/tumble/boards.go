package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tumble/internal/puzzles"
	"github.com/vovakirdan/tumble/internal/storage"
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List saved boards",
	Long: `Show the boards saved from the editor with Ctrl+S.

Examples:
  tumble boards
  tumble boards delete adder`,
	Args: cobra.NoArgs,
	Run:  runBoards,
}

var boardsDeleteCmd = &cobra.Command{
	Use:   "delete <name|id>",
	Short: "Delete a saved board",
	Args:  cobra.ExactArgs(1),
	Run:   runBoardsDelete,
}

var solvesCmd = &cobra.Command{
	Use:   "solves <puzzle>",
	Short: "Show the best solves of a puzzle",
	Long: `Display the 10 solves using the fewest parts for a puzzle.

Examples:
  tumble solves ping-pong`,
	Args: cobra.ExactArgs(1),
	Run:  runSolves,
}

func init() {
	boardsCmd.AddCommand(boardsDeleteCmd)
}

func runBoards(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	store := openStore(cfg)
	defer store.Close()

	boards, err := store.ListBoards()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving boards: %v\n", err)
		return
	}
	if len(boards) == 0 {
		fmt.Println("No saved boards yet.")
		fmt.Println()
		fmt.Println("Press Ctrl+S in 'tumble play' to save one.")
		return
	}

	maxNameLen := 4
	for _, b := range boards {
		maxNameLen = max(maxNameLen, len(b.Name))
	}

	fmt.Printf("  %-*s  %-7s  %-16s  %s\n", maxNameLen, "Name", "Marbles", "Saved", "Code")
	fmt.Printf("  %-*s  %-7s  %-16s  %s\n", maxNameLen, "----", "-------", "-----", "----")
	for _, b := range boards {
		fmt.Printf("  %-*s  %-7s  %-16s  %s\n",
			maxNameLen, b.Name,
			fmt.Sprintf("%d/%d", b.Blue, b.Red),
			b.CreatedAt.Format("2006-01-02 15:04"),
			b.Code,
		)
	}
}

func runBoardsDelete(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	store := openStore(cfg)
	defer store.Close()

	b, err := store.GetBoard(args[0])
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no saved board %q\n", args[0])
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if err := store.DeleteBoard(b.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting board: %v\n", err)
		return
	}
	fmt.Printf("Deleted %q.\n", b.Name)
}

func runSolves(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	id := args[0]

	p, err := puzzles.Get(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'tumble list' to see available puzzles.")
		os.Exit(1)
	}

	store := openStore(cfg)
	defer store.Close()

	solves, err := store.BestSolves(id, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		return
	}

	fmt.Printf("Best Solves - %s\n", p.Name)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tumble play %s' and press c to check your board.\n", id)
		return
	}

	fmt.Printf("  %-4s  %-5s  %-16s  %s\n", "Rank", "Parts", "Date", "Code")
	fmt.Printf("  %-4s  %-5s  %-16s  %s\n", "----", "-----", "----", "----")
	for i, s := range solves {
		fmt.Printf("  %-4d  %-5d  %-16s  %s\n", i+1, s.Parts, s.CreatedAt.Format("2006-01-02 15:04"), s.Code)
	}
}
