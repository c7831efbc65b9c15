// Package diag provides constructors for zerolog loggers, the type of
// search.Harness's Log field. It wraps zerolog the way itohio-EasyRobot's
// pkg/logger package does — a console writer to stderr with Unix-epoch
// timestamps — generalised from that package's package-level singleton
// into constructors so separate loggers don't share context fields.
// Nothing else in this module calls these constructors.
package diag

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

// New returns a console-formatted logger writing to stderr, tagged with
// the given algorithm name so output from several loggers stays
// distinguishable.
func New(algorithm string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("algo", algorithm).
		Logger()
}

// NewTo returns a console-formatted logger writing to an arbitrary
// writer.
func NewTo(w io.Writer, algorithm string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		With().
		Timestamp().
		Str("algo", algorithm).
		Logger()
}

// Disabled returns a logger that discards everything, the default every
// Harness starts with so a library caller that never asked for logging
// never gets any.
func Disabled() zerolog.Logger { return zerolog.Nop() }
