package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/platform/tui"
	"github.com/vovakirdan/tui-bricks/internal/storage"
)

var (
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game.

Controls:
  Left/Right, A/D  - Move
  Down, S          - Move down one row
  Up, W            - Hard drop
  Space, X         - Rotate
  P/Esc            - Pause/resume
  R/Enter          - Start a new game (from the title or after game over)
  M                - Mute sound cues
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower gravity, speeds up with every level
  normal - Default gravity
  hard   - Faster gravity, speeds up twice as quickly
  fixed  - Gravity never speeds up

Examples:
  bricks play
  bricks play --difficulty easy
  bricks play --seed 42 --mute
  bricks play --config ./my-bricks.yaml --log /tmp/bricks.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound cues muted")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	session := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		session.ScreenW = w
		session.ScreenH = h
	}
	session.Seed = flagSeed
	session.Muted = flagMute

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("starting game",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"difficulty", flagDifficulty,
		"seed", flagSeed,
	)
	runErr := tui.Run(cfg.Rules(), session, store, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadConfig loads the config file and applies the difficulty preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}
