package core

import "time"

// RuntimeConfig is what the platform hands a game when it starts: the
// screen it renders into, the tick rate it is stepped at and its seed.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 asks the platform to pick one
}

// DefaultTickRate is used when no rate is configured.
const DefaultTickRate = 60

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks
// per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// TickInterval returns the simulated time covered by one Step.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState summarizes a game for the platform: what to show and what to
// persist once the game ends.
type GameState struct {
	Score    int
	Lines    int
	Level    int // 1-based, as shown to the player
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
