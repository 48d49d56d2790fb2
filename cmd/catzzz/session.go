package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"

	"github.com/vovakirdan/catzzz/internal/assets"
	"github.com/vovakirdan/catzzz/internal/core"
	"github.com/vovakirdan/catzzz/internal/games/catzzz"
	"github.com/vovakirdan/catzzz/internal/registry"
)

// session is a game ready to run.
type session struct {
	game    *catzzz.Game
	cfg     core.RuntimeConfig
	started time.Time
}

// newSession resolves args to a variant, decodes the backgrounds and resets
// the game. Decode failures are fatal to the caller.
func newSession(args []string, logger *log.Logger) (*session, error) {
	variant := defaultVariant
	if len(args) > 0 {
		variant = args[0]
	}
	if !registry.Exists(variant) {
		return nil, fmt.Errorf("unknown variant %q (run 'catzzz list' to see available variants)", variant)
	}

	// Set config path and difficulty before creation
	catzzz.SetConfigPath(flagConfig)
	catzzz.SetDifficultyPreset(flagDifficulty)

	rg, err := registry.Create(variant)
	if err != nil {
		return nil, err
	}
	game, ok := rg.(*catzzz.Game)
	if !ok {
		return nil, fmt.Errorf("variant %q is not a Cat ZZZ game", variant)
	}

	cfg := core.DefaultConfig()
	bgs, err := assets.LoadBackgrounds(cfg.CanvasW, cfg.CanvasH)
	if err != nil {
		return nil, err
	}

	// Use time-based seed if not specified
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.Backgrounds = bgs
	cfg.Start = time.Now()

	game.Reset(cfg)
	if err := game.ConfigError(); err != nil {
		logger.Warn("config rejected, using defaults", "error", err)
	}

	cfg.TickRate = game.Config().Session.TickRate
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	logger.Info("session started",
		"variant", variant,
		"seed", cfg.Seed,
		"difficulty", game.Config().Difficulty,
		"tps", cfg.TickRate,
	)
	return &session{game: game, cfg: cfg, started: cfg.Start}, nil
}

// logEnd reports the final score and how long the session ran.
func (s *session) logEnd(logger *log.Logger, st core.GameState) {
	elapsed := time.Since(s.started).Truncate(time.Second)
	logger.Info("session ended",
		"variant", s.game.ID(),
		"score", humanize.Comma(int64(st.Score)),
		"won", s.game.Won(),
		"played", durafmt.Parse(elapsed).LimitFirstN(2).String(),
	)
}
