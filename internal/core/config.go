package core

// Size of one terminal cell in virtual pixels. Games that reason in pixel
// space (figure sizes, grid midpoints) work on ScreenW*CellWidthPx by
// ScreenH*CellHeightPx and let the renderer map back to cells.
const (
	CellWidthPx  = 8
	CellHeightPx = 16
)

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Resolution returns the virtual pixel resolution of the screen.
func (c RuntimeConfig) Resolution() (w, h int) {
	return c.ScreenW * CellWidthPx, c.ScreenH * CellHeightPx
}

// GameState is what a game reports back to the platform after each tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
