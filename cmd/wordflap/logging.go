package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordflap/internal/leaderboard"
)

// newLogger opens the log file. The terminal belongs to the game, so
// nothing is written to stderr while it runs. The returned closer is never nil.
func newLogger(path string, debug bool) (*log.Logger, io.Closer) {
	discard := log.New(io.Discard)

	expanded, err := leaderboard.ExpandPath(path)
	if err != nil {
		return discard, nopCloser{}
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return discard, nopCloser{}
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return discard, nopCloser{}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordflap",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
