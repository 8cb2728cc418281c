package infrastructure

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/architeacher/svc-ticket-aggregator/internal/config"
	"github.com/rs/zerolog"
)

// Logger wraps zerolog so the rest of the codebase depends on one logging
// type owned by the infrastructure layer.
type Logger struct {
	zerolog.Logger
}

// New builds the application logger from config. Unknown levels fall back to
// info, unknown formats to JSON.
func New(cfg config.LoggingConfig) Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()

	return Logger{logger}
}

// NewTestLogger returns a logger that discards everything; used by tests.
func NewTestLogger() Logger {
	return Logger{zerolog.Nop()}
}
