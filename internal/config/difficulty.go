package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string is not a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// presetScale returns the drop count and fall time multipliers for a preset.
// A fall time multiplier above 1 slows drops down.
func presetScale(preset DifficultyPreset) (count float64, fall float64) {
	switch preset {
	case DifficultyEasy:
		return 0.5, 2.0
	case DifficultyHard:
		return 2.0, 0.5
	default:
		return 1.0, 1.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and fixed keep the configured values.
func ApplyPreset(cfg *CatzzzConfig, preset DifficultyPreset) {
	countScale, fallScale := presetScale(preset)

	if cfg.Drops.Count > 0 {
		cfg.Drops.Count = max(1, int(float64(cfg.Drops.Count)*countScale))
	}
	if cfg.Drops.StepInterval > 0 {
		cfg.Drops.StepInterval = max(time.Microsecond, time.Duration(float64(cfg.Drops.StepInterval)*fallScale))
	}
	if cfg.Drops.PixelsPerSecond > 0 {
		cfg.Drops.PixelsPerSecond /= fallScale
	}

	// Harder sessions make the cat zone more costly.
	if preset == DifficultyHard && cfg.Score.Penalty > 0 {
		cfg.Score.Penalty *= 2
	}
	cfg.Difficulty = string(preset)
}

// ApplyDifficulty applies override, or the preset named in the config when
// override is empty. Presets never stack.
func ApplyDifficulty(cfg *CatzzzConfig, override DifficultyPreset) {
	preset := override
	if preset == "" {
		preset = DifficultyPreset(cfg.Difficulty)
	}
	if preset == "" {
		return
	}
	ApplyPreset(cfg, preset)
}
