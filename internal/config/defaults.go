package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/catzzz.yaml
var defaultCatzzzYAML []byte

// DefaultCatzzzConfig returns the default Cat ZZZ configuration.
// It mirrors defaults/catzzz.yaml and is used when the embedded file fails to parse.
func DefaultCatzzzConfig() CatzzzConfig {
	return CatzzzConfig{
		Player: PlayerConfig{
			Size:         40,
			BigSize:      50,
			BigThreshold: 20,
			GrowStep:     5,
			Speed:        1,
		},
		Drops: DropsConfig{
			Count:        6,
			Size:         5,
			Stagger:      500 * time.Millisecond,
			StepInterval: 2 * time.Millisecond,
		},
		Score: ScoreConfig{
			Reward:   1,
			Penalty:  5,
			WinScore: 30,
			Buckets: []BucketConfig{
				{Min: 0, Background: "mono"},
				{Min: 10, Background: "original"},
				{Min: 15, Background: "mouse1"},
				{Min: 20, Background: "mouse2"},
				{Min: 30, Background: "winner"},
			},
		},
		Hazard: HazardConfig{
			Enabled: true,
			X:       110,
			Y:       150,
			W:       100,
			H:       60,
		},
		Session: SessionConfig{
			WonDisplay: 3 * time.Second,
			TickRate:   60,
			Audio:      "purring.wav",
			ShowScore:  true,
		},
	}
}
