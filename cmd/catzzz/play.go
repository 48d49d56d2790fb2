package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/catzzz/internal/assets"
	"github.com/vovakirdan/catzzz/internal/platform/window"
	"github.com/vovakirdan/catzzz/internal/sound"
)

var flagScale int

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in a window",
	Long: `Open a window and play the given variant (default: catnap).

Controls:
  Arrows  - Move the square
  Space   - Grow the square while held
  Esc     - Quit

Variants:
  catnap  - Drops landing on the cat cost 5 points
  classic - Catch drops, no penalty

Examples:
  catzzz play
  catzzz play classic
  catzzz play --difficulty hard --scale 3
  catzzz play --seed 42 --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagScale, "scale", 2, "Window pixels per game pixel")
}

func runPlay(_ *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	s, err := newSession(args, logger)
	if err != nil {
		fail("%v", err)
	}

	face, err := window.NewHUDFace(assets.FontTTF(), window.HUDSize)
	if err != nil {
		fail("%v", err)
	}

	// Sound is best effort: a missing or broken file never stops the game.
	if !flagMute {
		name := s.game.Config().Session.Audio
		if data, soundErr := assets.Sound(name); soundErr != nil {
			logger.Warn("sound unavailable", "error", soundErr)
		} else {
			sound.NewPlayer(audio.NewContext(sound.SampleRate), logger).PlayOnce(name, data)
		}
	}

	runner := window.NewRunner(s.game, s.cfg, face, logger, window.Options{
		Title: s.game.Title(),
		Scale: flagScale,
		Debug: flagDebug,
	})
	runErr := runner.Run()
	s.logEnd(logger, runner.State())
	if runErr != nil {
		fail("%v", runErr)
	}
}
