// Package logging sets up the process-wide charmbracelet/log logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// Options holds configuration for the file logger.
type Options struct {
	Level  string
	Path   string
	Prefix string
}

// ParseLevel maps a config value to a log level. Unknown values fall back to info.
func ParseLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "tada"
	}
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(opts.Level),
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// Setup opens (appending) the log file and makes it the default logger.
// The terminal belongs to the TUI, so nothing is logged to stdout or stderr.
// The returned closer must be called on exit.
func Setup(opts Options) (io.Closer, error) {
	if opts.Path == "" {
		log.SetDefault(New(io.Discard, opts))
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o700); err != nil {
		return nil, errors.Wrap(err, "create log dir")
	}

	file, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}

	log.SetDefault(New(file, opts))
	return file, nil
}
