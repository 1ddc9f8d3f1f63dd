package core

// RuntimeConfig contains per-session settings for a board front-end.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	Speed    string // Initial tick speed name
	MaxSteps int    // Step limit for puzzle checks
	Slot     string // Autosave slot; empty disables autosave
	BaseURL  string // Prefix for share links; empty shows the bare code
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		Speed:    "normal",
		MaxSteps: 100000,
	}
}
