// Package logger builds the zerolog logger used by composedetect.
// Logs go to stderr and stay quiet at the default level so the
// stdout/stderr contract of the detector is not disturbed.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"composedetect/internal/config"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Logger is the project-wide logging type.
type Logger = zerolog.Logger

// Options configures the logger.
type Options struct {
	Level      string
	Format     string
	Writer     io.Writer
	WithCaller bool
}

// FromEnv builds Options from COMPOSEDETECT_LOG_* variables.
func FromEnv() Options {
	c := config.New().Prefix("LOG_")
	return Options{
		Level:      strings.ToLower(c.Get("LEVEL", "warn")),
		Format:     strings.ToLower(c.Get("FORMAT", "console")),
		WithCaller: c.GetBool("CALLER", false),
	}
}

// New returns a logger configured from opt.
func New(opt Options) Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var w io.Writer = os.Stderr
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	log := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp().Logger()
	if opt.WithCaller {
		log = log.With().Caller().Logger()
	}
	return log
}

// WithRun returns a child logger tagged with a fresh run id.
func WithRun(l Logger) Logger {
	return l.With().Str("run_id", uuid.NewString()).Logger()
}

// parseLevel supports string-only levels; unknown values fall back to warn.
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled", "none":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}
