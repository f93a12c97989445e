package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/galaxy-raid/internal/core"
	"github.com/vovakirdan/galaxy-raid/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Galaxy Raid in the current terminal.

Controls:
  Left/A, Right/D   - Move (held while the key repeats)
  Space/Up/W        - Fire
  Click/Enter       - Close the end screen
  Q/Esc/Ctrl+C      - Quit

Examples:
  galaxy play
  galaxy play --fps 60
  galaxy play --config ./my-galaxy.yaml --log-file galaxy.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, atlas, err := loadGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rt := core.DefaultConfig()
	rt.TickRate = cfg.TickRate
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	score, runErr := tui.Run(cfg, atlas, rt, logger)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
	fmt.Printf("Final score: %d\n", score)
}
