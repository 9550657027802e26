package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvLevel names the environment variable read when no level is given
const EnvLevel = "VSTAMP_LOG_LEVEL"

// Init configures the global logger to write to w.
// level is one of debug, info, warn, error; empty falls back to
// VSTAMP_LOG_LEVEL and then to warn so normal builds stay quiet.
func Init(w io.Writer, level string, noColor bool) {
	if level == "" {
		level = os.Getenv(EnvLevel)
	}
	zerolog.SetGlobalLevel(ParseLevel(level))

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, NoColor: noColor})
}

// ParseLevel maps a level name to a zerolog level (warn when unknown)
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
