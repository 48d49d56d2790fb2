package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/catzzz/internal/platform/tui"
)

var flagMenuTerm bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant interactively",
	Long: `Show the variant picker, then play the chosen variant in a window
(or in the terminal with --term).

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Q/Esc        - Quit

Examples:
  catzzz menu
  catzzz menu --term`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMenuTerm, "term", false, "Play in the terminal instead of a window")
}

func runMenu(cmd *cobra.Command, _ []string) {
	width, height := terminalSize()
	variant, err := tui.RunMenu(width, height)
	if err != nil {
		fail("%v", err)
	}

	// User quit the menu
	if variant == "" {
		return
	}

	if flagMenuTerm {
		if err := playInTerminal([]string{variant}, newLogger(os.Stderr)); err != nil {
			fail("%v", err)
		}
		return
	}
	runPlay(cmd, []string{variant})
}
