// Package log configures the zerolog logger shared by the service, the CLI
// and the gorm store.
package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Log embeds a zerolog.Logger so callers write l.Info().Msg(...) directly.
type Log struct {
	zerolog.Logger
}

// New builds a logger writing to w. An empty or unknown level falls back to
// info; format "console" produces human readable output.
func New(w io.Writer, level, format string) Log {
	if w == nil {
		w = os.Stderr
	}
	if strings.EqualFold(format, FormatConsole) {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return Log{zerolog.New(w).Level(lvl).With().Timestamp().Logger()}
}

// Nop returns a logger that discards everything; used in tests.
func Nop() Log {
	return Log{zerolog.Nop()}
}

// Component returns a child logger tagged with the component name.
func (l Log) Component(name string) Log {
	return Log{l.With().Str("component", name).Logger()}
}
