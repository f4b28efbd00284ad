// Package klog wires kMOSAIC's operation boundaries to a package-level
// zerolog logger, in the structured-event style the gnark-family repos in
// the corpus configure logging: one Logger, leveled, JSON by default.
//
// Nothing in this package ever logs secret-bearing fields - seeds,
// sparse vectors, walk words, Gaussian samples, shared secrets. Only
// public metadata crosses the log boundary: security level, sizes,
// durations, and boolean outcomes.
package klog

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the package-level logger every operation boundary writes
// through. Callers may reassign it (e.g. to redirect output or change
// level) before invoking kmosaic operations.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Operation emits one structured event for a completed kMOSAIC operation:
// its name, security level tag, wall-clock duration, and outcome. outcome
// is a caller-chosen short string ("ok", "rejected", "verified",
// "unverified") rather than an error, since several operations (notably
// Decapsulate) must emit the same event shape on every path.
func Operation(name string, levelTag byte, start time.Time, outcome string) {
	Logger.Info().
		Str("op", name).
		Uint8("level", levelTag).
		Dur("elapsed", time.Since(start)).
		Str("outcome", outcome).
		Msg("kmosaic operation")
}

// Fields emits an operation event with additional public, non-secret
// key/value pairs (e.g. message length, retry count).
func Fields(name string, levelTag byte, start time.Time, outcome string, fields map[string]interface{}) {
	ev := Logger.Info().
		Str("op", name).
		Uint8("level", levelTag).
		Dur("elapsed", time.Since(start)).
		Str("outcome", outcome)
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg("kmosaic operation")
}
