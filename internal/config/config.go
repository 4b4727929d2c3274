// Package config provides YAML-based configuration loading and difficulty
// presets for the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all tunable settings of the game.
type TetrisConfig struct {
	Timing      TetrisTiming      `yaml:"timing"`
	Gravity     TetrisGravity     `yaml:"gravity"`
	Progression TetrisProgression `yaml:"progression"`
	Preview     TetrisPreview     `yaml:"preview"`
	Input       TetrisInput       `yaml:"input"`
}

// TetrisTiming defines lock delay and horizontal auto-repeat timings.
type TetrisTiming struct {
	LockDelayMs  int `yaml:"lock_delay_ms"`
	SlideDelayMs int `yaml:"slide_delay_ms"` // Hold time before auto-repeat starts
	SlideRateMs  int `yaml:"slide_rate_ms"`  // Time between auto-repeat moves
}

// TetrisGravity defines the fall speed curve:
// interval(level) = max(min, base - quadratic*level^2).
type TetrisGravity struct {
	BaseIntervalMs    int `yaml:"base_interval_ms"`
	QuadraticMs       int `yaml:"quadratic_ms"`
	MinIntervalMs     int `yaml:"min_interval_ms"`
	SoftDropFactor    int `yaml:"soft_drop_factor"` // Soft drop divides the interval by this
	MinSoftIntervalMs int `yaml:"min_soft_interval_ms"`
}

// TetrisProgression defines leveling. Levels are 1-based here.
type TetrisProgression struct {
	LinesPerLevel int `yaml:"lines_per_level"`
	StartLevel    int `yaml:"start_level"`
	MaxLevel      int `yaml:"max_level"`
}

// TetrisPreview defines what the side panels show.
type TetrisPreview struct {
	Size  int  `yaml:"size"`  // Number of upcoming pieces, 1-7
	Ghost bool `yaml:"ghost"` // Draw the landing shadow
}

// TetrisInput defines keyboard handling.
type TetrisInput struct {
	// HoldWindowMs is how long a key counts as held after its last key
	// event. Terminals report no key releases, so held movement is
	// inferred from the key repeat stream.
	HoldWindowMs int `yaml:"hold_window_ms"`
}

// Millis converts a millisecond setting to a duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Validate reports every inconsistent setting in one error.
func (c TetrisConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Timing.LockDelayMs > 0, "timing.lock_delay_ms must be positive, got %d", c.Timing.LockDelayMs)
	check(c.Timing.SlideDelayMs >= 0, "timing.slide_delay_ms must not be negative, got %d", c.Timing.SlideDelayMs)
	check(c.Timing.SlideRateMs > 0, "timing.slide_rate_ms must be positive, got %d", c.Timing.SlideRateMs)

	check(c.Gravity.BaseIntervalMs > 0, "gravity.base_interval_ms must be positive, got %d", c.Gravity.BaseIntervalMs)
	check(c.Gravity.QuadraticMs >= 0, "gravity.quadratic_ms must not be negative, got %d", c.Gravity.QuadraticMs)
	check(c.Gravity.MinIntervalMs > 0 && c.Gravity.MinIntervalMs <= c.Gravity.BaseIntervalMs,
		"gravity.min_interval_ms must be in (0, base_interval_ms], got %d", c.Gravity.MinIntervalMs)
	check(c.Gravity.SoftDropFactor >= 1, "gravity.soft_drop_factor must be at least 1, got %d", c.Gravity.SoftDropFactor)
	check(c.Gravity.MinSoftIntervalMs > 0, "gravity.min_soft_interval_ms must be positive, got %d", c.Gravity.MinSoftIntervalMs)

	check(c.Progression.LinesPerLevel > 0, "progression.lines_per_level must be positive, got %d", c.Progression.LinesPerLevel)
	check(c.Progression.MaxLevel >= 1, "progression.max_level must be at least 1, got %d", c.Progression.MaxLevel)
	check(c.Progression.StartLevel >= 1 && c.Progression.StartLevel <= c.Progression.MaxLevel,
		"progression.start_level must be in [1, %d], got %d", c.Progression.MaxLevel, c.Progression.StartLevel)

	check(c.Preview.Size >= 1 && c.Preview.Size <= 7, "preview.size must be in [1, 7], got %d", c.Preview.Size)
	check(c.Input.HoldWindowMs > 0, "input.hold_window_ms must be positive, got %d", c.Input.HoldWindowMs)

	return errors.Join(errs...)
}
