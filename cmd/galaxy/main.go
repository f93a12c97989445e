// galaxy is a single-player arcade shooter: defend the bottom of the screen
// against a descending swarm with one reusable shot.
//
// Usage:
//
//	galaxy play              - Play in the terminal
//	galaxy window            - Play in a desktop window
//	galaxy serve             - Start SSH server for remote play
//	galaxy sim               - Run a scripted game without a display
//	galaxy config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search ~/.galaxy, ./configs)
//	--fps <rate>        - Override the tick rate
//	--log-file <path>   - Write logs to a file (default: discarded)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/galaxy-raid/internal/config"
	"github.com/vovakirdan/galaxy-raid/internal/sprite"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "galaxy",
	Short: "Galaxy Raid - shoot down the descending swarm",
	Long: `Galaxy Raid is a fixed-step arcade shooter. Move the ship along the
bottom of the field and fire a single shot at a swarm that snakes down
the screen. The game ends when any enemy reaches the bottom.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  sim      - Run a scripted game without a display
  config   - Print the effective configuration

Examples:
  galaxy play
  galaxy window --fps 60
  galaxy serve --ssh :2222
  galaxy sim --ticks 3000 --fire-every 10 --strafe 40
  galaxy config > configs/galaxy.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the game configuration and applies flag overrides.
func loadConfig() (config.GalaxyConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GalaxyConfig{}, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg, nil
}

// loadGame loads the configuration and renders the sprites.
func loadGame() (config.GalaxyConfig, *sprite.Atlas, error) {
	cfg, err := loadConfig()
	if err != nil {
		return config.GalaxyConfig{}, nil, err
	}
	atlas, err := sprite.NewAtlas(cfg.Sprites)
	if err != nil {
		return config.GalaxyConfig{}, nil, err
	}
	return cfg, atlas, nil
}

// newLogger builds the game logger. Interactive commands own the terminal,
// so without --log-file logs go to fallback (which may be io.Discard).
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "galaxy",
		Level:           level,
	})
	return logger, closeFn, nil
}
