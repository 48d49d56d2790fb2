package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/catzzz/internal/core"
)

// LoadCatzzz loads the game configuration.
// Search order: customPath -> ~/.catzzz/configs/catzzz.yaml -> ./configs/catzzz.yaml -> embedded default
func LoadCatzzz(customPath string) (CatzzzConfig, error) {
	var cfg CatzzzConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return finish(cfg, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("catzzz.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return finish(cfg, userCfgPath)
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/catzzz.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return finish(cfg, "configs/catzzz.yaml")
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCatzzzYAML, &cfg); err != nil {
		return DefaultCatzzzConfig(), nil // Fallback to hardcoded if embed fails
	}
	return finish(cfg, "embedded default")
}

// finish checks the preset name and validates the result. The preset itself
// is applied by ApplyDifficulty so a command line override can replace it.
func finish(cfg CatzzzConfig, source string) (CatzzzConfig, error) {
	if cfg.Difficulty != "" {
		if _, err := ParsePreset(cfg.Difficulty); err != nil {
			return cfg, fmt.Errorf("config %s: %w", source, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".catzzz", "configs", filename)
}

// Validate reports the first structural problem in the configuration.
// Canvas-dependent checks happen when the game is reset.
func (c CatzzzConfig) Validate() error {
	var errs []error

	if c.Player.Size <= 0 {
		errs = append(errs, fmt.Errorf("player.size must be positive, got %d", c.Player.Size))
	}
	if c.Player.BigSize < c.Player.Size {
		errs = append(errs, fmt.Errorf("player.big_size %d is smaller than player.size %d", c.Player.BigSize, c.Player.Size))
	}
	if c.Player.GrowStep < 0 {
		errs = append(errs, fmt.Errorf("player.grow_step must not be negative, got %d", c.Player.GrowStep))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player.speed must be positive, got %d", c.Player.Speed))
	}
	if c.Drops.Count < 0 {
		errs = append(errs, fmt.Errorf("drops.count must not be negative, got %d", c.Drops.Count))
	}
	if c.Drops.Size <= 0 {
		errs = append(errs, fmt.Errorf("drops.size must be positive, got %d", c.Drops.Size))
	}
	if c.Drops.Stagger < 0 {
		errs = append(errs, fmt.Errorf("drops.stagger must not be negative, got %s", c.Drops.Stagger))
	}
	if c.Drops.StepInterval <= 0 && c.Drops.PixelsPerSecond <= 0 {
		errs = append(errs, errors.New("drops: one of step_interval or pixels_per_second must be positive"))
	}
	if _, err := c.BucketTable(); err != nil {
		errs = append(errs, err)
	}
	if c.Hazard.Enabled && (c.Hazard.W <= 0 || c.Hazard.H <= 0) {
		errs = append(errs, fmt.Errorf("hazard is enabled but has no area (%dx%d)", c.Hazard.W, c.Hazard.H))
	}
	if c.Session.WonDisplay < 0 {
		errs = append(errs, fmt.Errorf("session.won_display must not be negative, got %s", c.Session.WonDisplay))
	}
	if c.Session.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("session.tick_rate must be positive, got %d", c.Session.TickRate))
	}

	return errors.Join(errs...)
}

// Bucket is a parsed BucketConfig.
type Bucket struct {
	Min        int
	Background core.BackgroundID
}

// BucketTable parses the configured score buckets.
// Bounds must be strictly increasing.
func (c CatzzzConfig) BucketTable() ([]Bucket, error) {
	if len(c.Score.Buckets) == 0 {
		return nil, errors.New("score.buckets must not be empty")
	}
	out := make([]Bucket, 0, len(c.Score.Buckets))
	for i, b := range c.Score.Buckets {
		id, err := core.ParseBackgroundID(b.Background)
		if err != nil {
			return nil, fmt.Errorf("score.buckets[%d]: %w", i, err)
		}
		if i > 0 && b.Min <= c.Score.Buckets[i-1].Min {
			return nil, fmt.Errorf("score.buckets[%d]: min %d must be greater than %d", i, b.Min, c.Score.Buckets[i-1].Min)
		}
		out = append(out, Bucket{Min: b.Min, Background: id})
	}
	return out, nil
}
