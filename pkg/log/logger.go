package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum level: debug, info, warn, or error. Empty means
	// info.
	Level string
	// Format selects the output encoding: text (human console) or json.
	// Empty means text.
	Format string
	// Service, when set, tags every entry with a service name.
	Service string
}

var (
	global zerolog.Logger
	once   sync.Once
)

func init() {
	// Safe default before Init is called.
	global = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// ParseLevel maps a level name to its zerolog level. An empty string is an
// error so callers can distinguish "unset" from "info".
func ParseLevel(s string) (zerolog.Level, error) {
	switch s {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("log: unknown level %q", s)
	}
}

// New creates a configured logger. Diagnostics go to stderr so command output
// on stdout stays machine-readable.
func New(cfg Config) zerolog.Logger {
	var w io.Writer = os.Stderr
	if cfg.Format != "json" {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	if cfg.Service != "" {
		logger = logger.With().Str("service", cfg.Service).Logger()
	}
	return logger
}

// Init configures the process-wide logger once and bridges the standard
// library's log package into it.
func Init(cfg Config) {
	once.Do(func() {
		global = New(cfg)
		RedirectStdLog(global)
	})
}

// L returns the process-wide logger.
func L() zerolog.Logger {
	return global
}

// RedirectStdLog routes standard library log output through the given
// logger.
func RedirectStdLog(logger zerolog.Logger) {
	stdlog.SetFlags(0)
	stdlog.SetOutput(logger.With().Str("source", "stdlog").Logger())
}
