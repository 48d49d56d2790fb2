package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size their world and for deterministic simulation.
type RuntimeConfig struct {
	CanvasW     int         // Canvas width in pixels
	CanvasH     int         // Canvas height in pixels
	TickRate    int         // Frames per second targeted by the platform (default 60)
	Seed        int64       // RNG seed for deterministic gameplay
	Start       time.Time   // Session start; drop stagger is measured from here
	Backgrounds Backgrounds // Decoded backgrounds, all CanvasW x CanvasH
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// Backgrounds are left empty; games fall back to a blank canvas.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		CanvasW:  320,
		CanvasH:  240,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is a state of the frame loop state machine.
type Phase int

const (
	PhasePlaying Phase = iota // drops fall, input applies
	PhaseWon                  // winner screen shown for a fixed time
	PhaseClosed               // terminal, the platform should exit
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int          // Current score
	Phase      Phase        // Current loop phase
	Background BackgroundID // Background selected for the current frame
}

// Closed reports whether the platform should stop running the game.
func (s GameState) Closed() bool {
	return s.Phase == PhaseClosed
}

// EventKind classifies something that happened during a step.
type EventKind int

const (
	EventCatch  EventKind = iota // a drop hit the player square
	EventHazard                  // a drop hit the hazard zone
	EventWon                     // the winning score was reached
	EventClosed                  // the session ended
)

// Event reports one occurrence during a step, for logging and effects.
type Event struct {
	Kind  EventKind
	Drop  int // index of the drop involved, -1 if none
	Delta int // score change caused by the event
}

// StepResult is returned by Game.Step() after each frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
