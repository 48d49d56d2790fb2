package core

import (
	"fmt"
	"strings"
)

// BackgroundID names one of the precomputed full-canvas backgrounds.
type BackgroundID int

// Backgrounds in the order the score progresses through them.
const (
	BackgroundMono BackgroundID = iota
	BackgroundOriginal
	BackgroundMouse1
	BackgroundMouse2
	BackgroundWinner
)

// AllBackgrounds lists every BackgroundID in progression order.
var AllBackgrounds = []BackgroundID{
	BackgroundMono,
	BackgroundOriginal,
	BackgroundMouse1,
	BackgroundMouse2,
	BackgroundWinner,
}

// String returns the config name of the background.
func (b BackgroundID) String() string {
	switch b {
	case BackgroundMono:
		return "mono"
	case BackgroundOriginal:
		return "original"
	case BackgroundMouse1:
		return "mouse1"
	case BackgroundMouse2:
		return "mouse2"
	case BackgroundWinner:
		return "winner"
	default:
		return fmt.Sprintf("background(%d)", int(b))
	}
}

// ParseBackgroundID converts a config name back to a BackgroundID.
func ParseBackgroundID(name string) (BackgroundID, error) {
	for _, id := range AllBackgrounds {
		if strings.EqualFold(id.String(), name) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown background %q", name)
}

// Backgrounds holds the decoded background canvases.
// The canvases are read-only once loaded; frames copy them before drawing.
type Backgrounds map[BackgroundID]*Canvas

// Validate checks that every background is present and matches the canvas size.
func (b Backgrounds) Validate(width, height int) error {
	for _, id := range AllBackgrounds {
		c, ok := b[id]
		if !ok || c == nil {
			return fmt.Errorf("background %s is missing", id)
		}
		if c.Width() != width || c.Height() != height {
			return fmt.Errorf("background %s is %dx%d, want %dx%d: %w",
				id, c.Width(), c.Height(), width, height, ErrCanvasSize)
		}
	}
	return nil
}
