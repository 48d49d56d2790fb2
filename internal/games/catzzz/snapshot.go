package catzzz

import "github.com/vovakirdan/catzzz/internal/core"

// DropSnapshot is the position of one drop.
type DropSnapshot struct {
	X, Y int
}

// Snapshot captures the complete game state for determinism testing and the
// debug console.
type Snapshot struct {
	Frame      int
	Score      int
	Phase      core.Phase
	Background core.BackgroundID
	PlayerX    int
	PlayerY    int
	PlayerSize int
	Drops      []DropSnapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	drops := make([]DropSnapshot, 0, g.drops.Len())
	for _, d := range g.drops.Drops() {
		drops = append(drops, DropSnapshot{X: d.X, Y: d.Y})
	}
	return Snapshot{
		Frame:      g.frame,
		Score:      g.score.Score(),
		Phase:      g.phase,
		Background: g.currentBackground(),
		PlayerX:    g.player.X,
		PlayerY:    g.player.Y,
		PlayerSize: g.player.Size,
		Drops:      drops,
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Frame != o.Frame || s.Score != o.Score || s.Phase != o.Phase ||
		s.Background != o.Background || s.PlayerX != o.PlayerX ||
		s.PlayerY != o.PlayerY || s.PlayerSize != o.PlayerSize ||
		len(s.Drops) != len(o.Drops) {
		return false
	}
	for i := range s.Drops {
		if s.Drops[i] != o.Drops[i] {
			return false
		}
	}
	return true
}

// DebugKV returns the player position and score as log key/value pairs.
func (g *Game) DebugKV() []any {
	return []any{
		"x", g.player.X,
		"y", g.player.Y,
		"size", g.player.Size,
		"score", g.score.Score(),
	}
}
