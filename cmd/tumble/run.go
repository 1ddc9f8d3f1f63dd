package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tumble/internal/codec"
	"github.com/vovakirdan/tumble/internal/sim"
)

var (
	flagRunColor string
	flagRunSteps int
	flagRunBoard bool
)

var runCmd = &cobra.Command{
	Use:   "run <code>",
	Short: "Run a board headlessly",
	Long: `Launch one marble on the board given by a share code and step until it
stops. Prints the exit sequence, the final status and, with --board, the
board afterwards (bits keep the state the run left them in).

Examples:
  tumble run rlerlxc_2_2
  tumble run rlerlxc_2_2 --color red --steps 500
  tumble run _3_3 --board`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagRunColor, "color", "blue", "Marble to launch: blue or red")
	runCmd.Flags().IntVar(&flagRunSteps, "steps", 0, "Step limit (0 = config max_steps)")
	runCmd.Flags().BoolVar(&flagRunBoard, "board", false, "Print the board after the run")
}

func runRun(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger(cfg, "tumble")

	t, err := cfg.Topology()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	color, ok := sim.ParseColor(flagRunColor)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown color %q\n", flagRunColor)
		os.Exit(1)
	}
	limit := cfg.Sim.MaxSteps
	if flagRunSteps > 0 {
		limit = flagRunSteps
	}

	b, m := codec.DecodeURL(t, args[0])
	sess := sim.NewSession(b, sim.WithMarbles(m.Blue, m.Red), sim.WithLogger(logger))
	if !sess.Launch(color) {
		fmt.Fprintf(os.Stderr, "Error: no %s marbles on this board\n", strings.ToLower(color.String()))
		os.Exit(1)
	}
	result := sess.Run(limit)

	seq := sim.Sequence(result.Exits)
	if seq == "" {
		seq = "(none)"
	}
	fmt.Printf("Exits:  %s\n", seq)
	fmt.Printf("Steps:  %d\n", result.Steps)
	fmt.Printf("Status: %s\n", result.Status)
	if result.Capped {
		fmt.Printf("Stopped after %d steps; the marble was still rolling.\n", limit)
	}

	if flagRunBoard {
		fmt.Println()
		fmt.Print(codec.EncodeText(sess.Board()))
		fmt.Println()
		fmt.Printf("Code:   %s\n", codec.EncodeURL(sess.Board(), m))
	}
}
