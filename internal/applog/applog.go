// Package applog builds the process logger. The TUI owns the terminal, so logs
// go to a file or nowhere.
package applog

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type Options struct {
	Path   string
	Level  string
	Format string
}

// Logger is a charmbracelet logger bound to the file it writes to.
type Logger struct {
	*log.Logger
	closer io.Closer
}

// New opens the log file (appending) and returns a logger tagged with a fresh
// run id. An empty path returns a logger that discards everything.
func New(opts Options) (*Logger, error) {
	var (
		w      io.Writer = io.Discard
		closer io.Closer
	)
	if p := strings.TrimSpace(opts.Path); p != "" {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w, closer = f, f
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flashdeck",
		Formatter:       formatter(opts.Format),
	})
	if lvl, err := log.ParseLevel(strings.TrimSpace(opts.Level)); err == nil {
		l.SetLevel(lvl)
	}
	return &Logger{Logger: l.With("run", uuid.NewString()), closer: closer}, nil
}

// Discard returns a logger with no output.
func Discard() *Logger {
	return &Logger{Logger: log.New(io.Discard)}
}

func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func formatter(name string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
