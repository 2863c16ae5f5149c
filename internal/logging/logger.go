// Package logging builds the structured logger behind the solver_debug
// option (spec §6): a no-op logger by default, a human-readable console
// writer on stderr when debugging is requested.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a zerolog.Logger writing to stderr at debug level when debug
// is true, or a fully disabled logger otherwise. The orchestrator and
// reducer log step-level Debug events through this logger instead of
// fmt.Printf so solver_debug output can be toggled without code changes.
func New(debug bool) zerolog.Logger {
	if !debug {
		return zerolog.Nop()
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
