package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/catzzz/internal/platform/tui"
)

var termCmd = &cobra.Command{
	Use:   "term [variant]",
	Short: "Play in the terminal",
	Long: `Play the given variant (default: catnap) in the terminal.

The picture is drawn with half-block characters and needs a truecolor
terminal. Terminals do not report key releases, so a key counts as held
while it auto-repeats. Sound is only played in the window.

Controls:
  Arrows/WASD  - Move the square
  Space        - Grow the square while held
  Esc/Q        - Quit

Examples:
  catzzz term
  catzzz term classic --fps 30
  catzzz term --debug   (logs to catzzz-debug.log)`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTerm,
}

func runTerm(_ *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)
	if err := playInTerminal(args, logger); err != nil {
		fail("%v", err)
	}
}

// playInTerminal runs one session in the terminal. The game logs to a file
// while the alternate screen is up.
func playInTerminal(args []string, logger *log.Logger) error {
	var sink io.Writer = io.Discard
	if flagDebug {
		f, err := os.OpenFile("catzzz-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return err
		}
		defer f.Close()
		sink = f
	}
	sessionLog := newLogger(sink)

	s, err := newSession(args, sessionLog)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	st, err := tui.Run(s.game, s.cfg, width, height)
	s.logEnd(logger, st)
	return err
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
