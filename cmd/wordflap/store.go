package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordflap/internal/leaderboard"
	"github.com/vovakirdan/wordflap/internal/storage"
)

// openStore picks the leaderboard backend from the path suffix. A store that
// cannot be opened degrades to an in-memory board so the game stays playable.
func openStore(path string, logger *log.Logger) leaderboard.Store {
	if strings.HasSuffix(path, ".db") {
		store, err := storage.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			logger.Warn("could not open scores database", "path", path, "error", err)
			return leaderboard.NewMemoryStore()
		}
		return store
	}

	store, err := leaderboard.OpenFile(path, logger)
	if err == nil {
		return store
	}
	fmt.Fprintf(os.Stderr, "Warning: could not open leaderboard file: %v\n", err)
	logger.Warn("could not open leaderboard file", "path", path, "error", err)
	return leaderboard.NewMemoryStore()
}

// closeStore releases stores that hold resources.
func closeStore(store leaderboard.Store) {
	if c, ok := store.(io.Closer); ok {
		c.Close()
	}
}
