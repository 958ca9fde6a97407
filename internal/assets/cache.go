package assets

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// Cache loads sprite files once and hands out the shared result.
// A failed load is cached too, so a missing file is logged only once.
type Cache struct {
	mu      sync.RWMutex
	sprites map[string]Sprite
	failed  map[string]bool
	logger  *log.Logger
}

// NewCache creates an empty cache. A nil logger discards messages.
func NewCache(logger *log.Logger) *Cache {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Cache{
		sprites: make(map[string]Sprite),
		failed:  make(map[string]bool),
		logger:  logger,
	}
}

// Sprite returns the sprite stored at path, loading it on first use.
// An empty path, unreadable file or empty file yields fallback.
func (c *Cache) Sprite(path string, fallback Sprite) Sprite {
	if path == "" {
		return fallback
	}

	c.mu.RLock()
	s, ok := c.sprites[path]
	failed := c.failed[path]
	c.mu.RUnlock()
	if ok {
		return s
	}
	if failed {
		return fallback
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have loaded it while we waited for the lock
	if s, ok := c.sprites[path]; ok {
		return s
	}

	data, err := os.ReadFile(path)
	if err != nil {
		c.logger.Warn("sprite unavailable, using built-in", "path", path, "error", err)
		c.failed[path] = true
		return fallback
	}

	s = ParseSprite(string(data))
	if s.Empty() {
		c.logger.Warn("sprite file is empty, using built-in", "path", path)
		c.failed[path] = true
		return fallback
	}

	c.logger.Debug("sprite loaded", "path", path, "width", s.Width, "height", s.Height)
	c.sprites[path] = s
	return s
}

// Len returns the number of successfully loaded sprites.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sprites)
}
