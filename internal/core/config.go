package core

// RuntimeConfig contains configuration passed to hosts at startup.
// Hosts use this to size their output and seed the game deterministically.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal hosts)
	ScreenH  int   // Screen height in characters (terminal hosts)
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Player   string
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
