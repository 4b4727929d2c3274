package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in settings. It mirrors
// defaults/tetris.yaml and is used when no YAML can be read.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TetrisTiming{
			LockDelayMs:  500,
			SlideDelayMs: 100,
			SlideRateMs:  50,
		},
		Gravity: TetrisGravity{
			BaseIntervalMs:    800,
			QuadraticMs:       4,
			MinIntervalMs:     30,
			SoftDropFactor:    20,
			MinSoftIntervalMs: 5,
		},
		Progression: TetrisProgression{
			LinesPerLevel: 10,
			StartLevel:    1,
			MaxLevel:      15,
		},
		Preview: TetrisPreview{
			Size:  5,
			Ghost: true,
		},
		Input: TetrisInput{
			HoldWindowMs: 120,
		},
	}
}
