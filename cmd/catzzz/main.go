// catzzz is a small arcade game: catch the raindrops before they wake the cat.
//
// Usage:
//
//	catzzz play [variant]    - Play in a window
//	catzzz term [variant]    - Play in the terminal
//	catzzz menu              - Pick a variant interactively
//	catzzz list              - List available variants
//	catzzz buckets           - Show which background each score shows
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible drops
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--mute                - Do not play sounds
//	--debug               - Log player position and score
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/catzzz/internal/games/catzzz"
)

// defaultVariant is played when no variant is named.
const defaultVariant = "catnap"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catzzz",
	Short: "Cat ZZZ - catch the raindrops before they wake the cat",
	Long: `Cat ZZZ is a tiny arcade game. Move the red square to catch falling
raindrops. Every catch scores a point; a drop that lands on the sleeping
cat costs five. The picture changes as your score climbs, and at 30 points
you win.

Available commands:
  play     - Play in a window
  term     - Play in the terminal
  menu     - Interactive variant picker
  list     - Show all variants
  buckets  - Show the score to background table

Examples:
  catzzz play
  catzzz play classic --difficulty easy
  catzzz term --fps 30
  catzzz buckets --config ./my-catzzz.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Do not play sounds")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log player position and score")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(bucketsCmd)
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "catzzz",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// fail prints err and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
