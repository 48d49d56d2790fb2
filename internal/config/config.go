// Package config provides YAML-based game configuration loading and
// difficulty presets for Cat ZZZ.
package config

import "time"

// CatzzzConfig contains all tunable parameters of the game.
type CatzzzConfig struct {
	Player     PlayerConfig  `yaml:"player"`
	Drops      DropsConfig   `yaml:"drops"`
	Score      ScoreConfig   `yaml:"score"`
	Hazard     HazardConfig  `yaml:"hazard"`
	Session    SessionConfig `yaml:"session"`
	Difficulty string        `yaml:"difficulty"` // preset applied on load, empty = as configured
}

// PlayerConfig defines the player square.
type PlayerConfig struct {
	Size         int `yaml:"size"`          // Edge length below BigThreshold
	BigSize      int `yaml:"big_size"`      // Edge length at or above BigThreshold
	BigThreshold int `yaml:"big_threshold"` // Score at which the square switches to BigSize
	GrowStep     int `yaml:"grow_step"`     // Extra edge length while Grow is held
	Speed        int `yaml:"speed"`         // Pixels moved per frame per held arrow
}

// DropsConfig defines the raindrop pool and its fall rate.
type DropsConfig struct {
	Count   int           `yaml:"count"`
	Size    int           `yaml:"size"`
	Stagger time.Duration `yaml:"stagger"` // Delay between consecutive drop start times

	// Exactly one speed model applies: a positive PixelsPerSecond selects
	// continuous motion, otherwise a drop moves one pixel per StepInterval.
	StepInterval    time.Duration `yaml:"step_interval"`
	PixelsPerSecond float64       `yaml:"pixels_per_second"`
}

// ScoreConfig defines scoring deltas and score-driven thresholds.
type ScoreConfig struct {
	Reward   int            `yaml:"reward"`    // Added when a drop hits the player
	Penalty  int            `yaml:"penalty"`   // Subtracted when a drop hits the hazard
	WinScore int            `yaml:"win_score"` // 0 disables the win condition
	Buckets  []BucketConfig `yaml:"buckets"`
}

// BucketConfig maps an inclusive lower score bound to a background name.
// The first bucket also covers every score below its bound.
type BucketConfig struct {
	Min        int    `yaml:"min"`
	Background string `yaml:"background"`
}

// HazardConfig defines the static cat zone that penalizes drops.
type HazardConfig struct {
	Enabled bool `yaml:"enabled"`
	X       int  `yaml:"x"`
	Y       int  `yaml:"y"`
	W       int  `yaml:"w"`
	H       int  `yaml:"h"`
}

// SessionConfig defines loop-level behavior.
type SessionConfig struct {
	WonDisplay time.Duration `yaml:"won_display"` // How long the winner screen stays up
	TickRate   int           `yaml:"tick_rate"`   // Frame cap in frames per second
	Audio      string        `yaml:"audio"`       // Embedded audio asset played at startup, empty = none
	ShowScore  bool          `yaml:"show_score"`  // Draw the score text overlay
}
