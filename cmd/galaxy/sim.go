package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/galaxy-raid/internal/game"
	"github.com/vovakirdan/galaxy-raid/internal/platform/headless"
)

var (
	flagSimTicks   uint64
	flagFireEvery  uint64
	flagStrafe     uint64
	flagScript     string
	flagPaced      bool
	flagDumpResult bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted game without a display",
	Long: `Run a game with scripted input and print the result.

Input comes from flags and an optional YAML script:

  - tick: 1
    commands: [MoveLeftPressed, FirePressed]
  - tick: 40
    commands: [MoveLeftReleased]

Without --ticks the run lasts until the swarm escapes.

Examples:
  galaxy sim --fire-every 10 --strafe 40
  galaxy sim --ticks 3000 --script moves.yaml --dump
  galaxy sim --paced --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagSimTicks, "ticks", 0, "Quit after this many ticks (0 = until the swarm escapes)")
	simCmd.Flags().Uint64Var(&flagFireEvery, "fire-every", 0, "Fire every n ticks (0 = never)")
	simCmd.Flags().Uint64Var(&flagStrafe, "strafe", 0, "Reverse direction every n ticks (0 = stand still)")
	simCmd.Flags().StringVar(&flagScript, "script", "", "YAML file of scheduled commands")
	simCmd.Flags().BoolVar(&flagPaced, "paced", false, "Run at the configured tick rate instead of flat out")
	simCmd.Flags().BoolVar(&flagDumpResult, "dump", false, "Print the final session snapshot as YAML")
}

func runSim(_ *cobra.Command, _ []string) {
	if err := simulate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func simulate() error {
	cfg, atlas, err := loadGame()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	script := headless.Script{
		Ticks:     flagSimTicks,
		FireEvery: flagFireEvery,
		Strafe:    flagStrafe,
	}
	if flagScript != "" {
		if script.Events, err = headless.LoadScript(flagScript); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var clock game.Clock = game.Unpaced{}
	if flagPaced {
		ticker := game.NewTickerClock(cfg.TickRate)
		defer ticker.Stop()
		clock = ticker
	}

	session := game.NewSession(cfg, atlas, logger)
	driver := headless.NewDriver(script, logger)

	res, err := game.Run(ctx, session, driver, driver, clock)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	sum := driver.Summary(res)
	fmt.Printf("Score: %d\n", sum.Score)
	fmt.Printf("Ticks: %d\n", sum.Ticks)
	fmt.Printf("Waves: %d\n", session.Swarm().Wave())
	fmt.Printf("Ended: %s\n", sum.Reason)

	if flagDumpResult {
		data, encErr := yaml.Marshal(session.Snapshot())
		if encErr != nil {
			return fmt.Errorf("cannot encode snapshot: %w", encErr)
		}
		fmt.Print(string(data))
	}
	return nil
}
