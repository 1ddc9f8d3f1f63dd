package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tumble/internal/codec"
)

var (
	flagEncodeBlue int
	flagEncodeRed  int
)

var encodeCmd = &cobra.Command{
	Use:   "encode <file>",
	Short: "Convert a text board to a share code",
	Long: `Read a board in the text layout (one line per row) and print its
compact share code. Use "-" to read from stdin.

Examples:
  tumble encode ./boards/adder.txt
  tumble encode - --blue 4 --red 4 < board.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runEncode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode <code>",
	Short: "Convert a share code to a text board",
	Long: `Print the board of a share code in the text layout, followed by the
marble counts it carries.

Examples:
  tumble decode rlerlxc_2_2`,
	Args: cobra.ExactArgs(1),
	Run:  runDecode,
}

func init() {
	encodeCmd.Flags().IntVar(&flagEncodeBlue, "blue", -1, "Blue marbles (-1 = config default)")
	encodeCmd.Flags().IntVar(&flagEncodeRed, "red", -1, "Red marbles (-1 = config default)")
}

func runEncode(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	t, err := cfg.Topology()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var data []byte
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading board: %v\n", err)
		os.Exit(1)
	}

	m := codec.Marbles{Blue: cfg.Marbles.Blue, Red: cfg.Marbles.Red}
	if flagEncodeBlue >= 0 {
		m.Blue = flagEncodeBlue
	}
	if flagEncodeRed >= 0 {
		m.Red = flagEncodeRed
	}

	b := codec.DecodeText(t, string(data))
	fmt.Println(codec.EncodeURL(b, m))
}

func runDecode(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	t, err := cfg.Topology()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	b, m := codec.DecodeURL(t, args[0])
	fmt.Print(codec.EncodeText(b))
	fmt.Println()
	fmt.Printf("Marbles: %d blue, %d red\n", m.Blue, m.Red)
	fmt.Printf("Parts:   %d\n", b.PartCount())
}
