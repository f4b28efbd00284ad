// Package config holds the typed configuration surface for kMOSAIC
// operations: no environment variables, no flags, no file format -
// callers construct a Config value programmatically, per spec.md §6's
// explicit non-goal of a CLI.
package config

import (
	"io"

	"github.com/kmosaic/kmosaic/params"
)

// Config collects the knobs spec.md §6 names as recognized configuration
// options.
type Config struct {
	// Level selects the parameter set; MOS_128 is the default.
	Level params.SecurityLevel

	// TimingPadMS floors Sign's total latency, in milliseconds. Zero
	// means "use the level's default" (25 for MOS_128, 50 for MOS_256).
	TimingPadMS int

	// MaxRejectionRetries bounds Sign's norm-rejection retry loop before
	// it returns common.ErrSigningExhausted. Zero means "use the
	// default" (16).
	MaxRejectionRetries int

	// RandSource is Sign's randomness source when its own rng argument is
	// nil, letting a caller fix one source in Config rather than thread it
	// through every Sign call. GenerateKeyPair and Encapsulate take no
	// Config and always require an explicit rng. A nil RandSource (with a
	// nil rng argument too) falls back to crypto/rand.Reader.
	RandSource io.Reader
}

// defaultTimingPadMS returns the level's minimum signing latency floor.
func defaultTimingPadMS(level params.SecurityLevel) int {
	if level == params.MOS_256 {
		return 50
	}
	return 25
}

const defaultMaxRejectionRetries = 16

// DefaultConfig returns the MOS_128 configuration with every default
// applied.
func DefaultConfig() Config {
	return Config{
		Level:               params.MOS_128,
		TimingPadMS:         defaultTimingPadMS(params.MOS_128),
		MaxRejectionRetries: defaultMaxRejectionRetries,
		RandSource:          nil,
	}
}

// Resolved fills in zero-valued fields of c with the defaults for its
// Level, leaving explicit overrides untouched.
func (c Config) Resolved() Config {
	out := c
	if out.TimingPadMS == 0 {
		out.TimingPadMS = defaultTimingPadMS(out.Level)
	}
	if out.MaxRejectionRetries == 0 {
		out.MaxRejectionRetries = defaultMaxRejectionRetries
	}
	return out
}
