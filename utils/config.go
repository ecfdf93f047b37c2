package utils

import (
	"time"

	"github.com/pkg/errors"
)

// Config holds the fixed parameters of the simulation. It is assembled
// once at startup; nothing is read from flags, files, or the
// environment, and no value changes for the lifetime of the process.
type Config struct {
	Width         int
	Height        int
	FrameInterval time.Duration
	AliveGlyph    rune
	DeadGlyph     rune
	UseParallel   bool
}

// DefaultConfig returns the compiled-in parameters.
func DefaultConfig() Config {
	return Config{
		Width:         130,
		Height:        40,
		FrameInterval: 220 * time.Millisecond,
		AliveGlyph:    '█',
		DeadGlyph:     ' ',
		UseParallel:   false,
	}
}

// Validate checks the invariants the rest of the program assumes
// without further bounds checks.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FrameInterval <= 0 {
		return errors.Errorf("[Validate] frame interval must be positive, got %v", c.FrameInterval)
	}
	return nil
}
