// Package catzzz implements the Cat ZZZ raindrop game.
// The player moves a square to catch raindrops falling over a sleeping cat.
// Catching a drop scores, a drop landing on the cat costs points, and the
// background changes as the score climbs until the winner screen.
package catzzz

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/catzzz/internal/config"
	"github.com/vovakirdan/catzzz/internal/core"
	"github.com/vovakirdan/catzzz/internal/registry"
)

// Variant selects which rules of the game are active.
type Variant struct {
	ID     string
	Title  string
	Hazard bool // whether drops landing on the cat zone cost points
}

// Registered variants.
var (
	VariantClassic = Variant{ID: "classic", Title: "Cat ZZZ Classic", Hazard: false}
	VariantCatnap  = Variant{ID: "catnap", Title: "Cat ZZZ", Hazard: true}
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names fall back to the config's own setting.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = "" // Use config default
		return
	}
	difficultyPreset = p
}

// Game implements the frame loop and scoring state machine.
type Game struct {
	variant  Variant
	fixedCfg *config.CatzzzConfig // set by NewWithConfig, bypasses loading
	runtime  core.RuntimeConfig
	cfg      config.CatzzzConfig
	loadErr  error

	drops      *DropField
	score      ScoreState
	player     Player
	hazard     core.Rect
	speed      Speed
	phase      core.Phase
	background core.BackgroundID
	wonAt      time.Time
	frame      int
	blank      *core.Canvas
}

// New creates a game for the given variant. Config is loaded on Reset.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(v Variant, cfg config.CatzzzConfig) *Game {
	return &Game{variant: v, fixedCfg: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Config returns the configuration in effect since the last Reset.
func (g *Game) Config() config.CatzzzConfig {
	return g.cfg
}

// ConfigError returns the error that forced the built-in defaults, if any.
func (g *Game) ConfigError() error {
	return g.loadErr
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg, g.loadErr = g.loadConfig()
	g.cfg.Hazard.Enabled = g.cfg.Hazard.Enabled && g.variant.Hazard

	buckets, err := g.cfg.BucketTable()
	if err != nil {
		g.loadErr = err
		buckets, _ = config.DefaultCatzzzConfig().BucketTable()
	}
	table, err := NewBucketTable(buckets)
	if err != nil {
		g.loadErr = err
	}

	g.score = NewScoreState(ScoreRules{
		Table:        table,
		BaseSize:     g.cfg.Player.Size,
		BigSize:      g.cfg.Player.BigSize,
		BigThreshold: g.cfg.Player.BigThreshold,
		WinScore:     g.cfg.Score.WinScore,
	})
	g.player = NewPlayer(g.cfg.Player.Size, runtime.CanvasW, runtime.CanvasH)
	g.hazard = core.NewRect(g.cfg.Hazard.X, g.cfg.Hazard.Y, g.cfg.Hazard.W, g.cfg.Hazard.H)
	g.speed = Speed{
		StepInterval:    g.cfg.Drops.StepInterval,
		PixelsPerSecond: g.cfg.Drops.PixelsPerSecond,
	}

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.drops = NewDropField(g.cfg.Drops.Count, g.cfg.Drops.Size, runtime.CanvasW, runtime.CanvasH,
		runtime.Start, g.cfg.Drops.Stagger, rng)

	g.phase = core.PhasePlaying
	g.background = g.score.BackgroundFor(0)
	g.wonAt = time.Time{}
	g.frame = 0

	g.blank = core.NewCanvas(runtime.CanvasW, runtime.CanvasH)
	g.blank.Fill(core.ColorBlack)
}

// loadConfig resolves the configuration, falling back to defaults on error.
func (g *Game) loadConfig() (config.CatzzzConfig, error) {
	if g.fixedCfg != nil {
		return *g.fixedCfg, g.fixedCfg.Validate()
	}

	cfg, err := config.LoadCatzzz(configPath)
	if err != nil {
		cfg = config.DefaultCatzzzConfig()
	}

	// The CLI preset replaces the one named in the file
	config.ApplyDifficulty(&cfg, difficultyPreset)
	return cfg, err
}

// Step advances the game by one frame at wall time now.
func (g *Game) Step(now time.Time, in core.InputFrame) core.StepResult {
	if g.phase == core.PhaseClosed {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) {
		return g.close()
	}

	if g.phase == core.PhaseWon {
		if now.Sub(g.wonAt) >= g.cfg.Session.WonDisplay {
			return g.close()
		}
		return core.StepResult{State: g.State()}
	}

	g.frame++

	score := g.score.Score()
	g.background = g.score.BackgroundFor(score)

	g.player.Apply(in, g.score.SizeFor(score), g.cfg.Player.GrowStep, g.cfg.Player.Speed,
		g.runtime.CanvasW, g.runtime.CanvasH)

	g.drops.Advance(now, g.runtime.CanvasW, g.runtime.CanvasH, g.cfg.Drops.Size, g.speed)

	events := g.collide()

	if g.score.IsWinning(g.score.Score()) {
		g.phase = core.PhaseWon
		g.wonAt = now
		events = append(events, core.Event{Kind: core.EventWon, Drop: -1})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// collide tests every drop against the hazard and then the player.
// A drop that hits the hazard is reset before the player test, so one drop
// scores at most once per frame.
func (g *Game) collide() []core.Event {
	var events []core.Event
	player := g.player.Rect()

	for i := 0; i < g.drops.Len(); i++ {
		r := g.drops.Rect(i)

		if g.cfg.Hazard.Enabled && r.Intersects(g.hazard) {
			g.score.ApplyDelta(-g.cfg.Score.Penalty)
			g.drops.Reset(i)
			events = append(events, core.Event{Kind: core.EventHazard, Drop: i, Delta: -g.cfg.Score.Penalty})
			continue
		}

		if r.Intersects(player) {
			g.score.ApplyDelta(g.cfg.Score.Reward)
			g.drops.Reset(i)
			events = append(events, core.Event{Kind: core.EventCatch, Drop: i, Delta: g.cfg.Score.Reward})
		}
	}
	return events
}

// close moves the loop to its terminal phase.
func (g *Game) close() core.StepResult {
	g.phase = core.PhaseClosed
	return core.StepResult{
		State:  g.State(),
		Events: []core.Event{{Kind: core.EventClosed, Drop: -1}},
	}
}

// HUD returns the overlay text for the current frame, or "" for none.
func (g *Game) HUD() string {
	switch g.phase {
	case core.PhaseWon, core.PhaseClosed:
		if g.Won() {
			return fmt.Sprintf("You win! Score: %d", g.score.Score())
		}
	}
	if !g.cfg.Session.ShowScore {
		return ""
	}
	return fmt.Sprintf("Score: %d", g.score.Score())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score.Score(),
		Phase:      g.phase,
		Background: g.currentBackground(),
	}
}

// Won reports whether the score reached the winning score.
func (g *Game) Won() bool {
	return g.score.IsWinning(g.score.Score())
}

// currentBackground is the bucket background, or the winner screen once won.
func (g *Game) currentBackground() core.BackgroundID {
	if g.phase == core.PhaseWon {
		return core.BackgroundWinner
	}
	return g.background
}

// Register the game variants with the registry
func init() {
	for _, v := range []Variant{VariantClassic, VariantCatnap} {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}
