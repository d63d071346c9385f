// bricks is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	bricks play              - Play a game
//	bricks scores            - Show high scores
//	bricks config            - Print the effective configuration
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for a reproducible piece sequence
//	--db <path>     - Set database path (default: ~/.bricks/scores.db)
//	--config <path> - Load configuration from a YAML file
//	--log <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricks/internal/storage"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricks",
	Short: "Bricks - a falling-block puzzle for your terminal",
	Long: `Bricks is a terminal falling-block puzzle. Steer the falling pieces,
complete rows to clear them and keep the stack from reaching the top.

Available commands:
  play     - Start a game
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  bricks play
  bricks play --difficulty hard
  bricks scores
  bricks config > ~/.bricks/config.yaml`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns a debug logger writing to path, or a discarding logger if
// path is empty. The returned function closes the log file.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "bricks",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
