package core

import "time"

// RuntimeConfig contains configuration passed to the engine and the
// platform drivers at startup.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Animation frames per second for visual flourishes
	Seed      int64 // RNG seed for the target draw (0 = time based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 12,
		Seed:      0,
	}
}

// ResolvedSeed returns the configured seed, or a time based one when unset.
func (c RuntimeConfig) ResolvedSeed() int64 {
	if c.Seed == 0 {
		return time.Now().UnixNano()
	}
	return c.Seed
}
