// Package logging builds the zerolog logger used across filedeck.
//
// The terminal belongs to the UI while it runs, so logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var osOpenFile = os.OpenFile

// New returns a logger writing human-readable lines to w.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger(), nil
}

func ParseLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// Open returns a logger appending to filePath. An empty path discards logs.
// The returned close func is never nil.
func Open(filePath, level string) (zerolog.Logger, func() error, error) {
	if filePath == "" {
		log, err := New(io.Discard, level)
		return log, func() error { return nil }, err
	}
	f, err := osOpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), func() error { return nil }, fmt.Errorf("failed to open log file: %w", err)
	}
	log, err := New(f, level)
	if err != nil {
		_ = f.Close()
		return zerolog.Nop(), func() error { return nil }, err
	}
	return log, f.Close, nil
}
