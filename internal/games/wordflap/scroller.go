package wordflap

import (
	"math"
	"time"
)

// Scroller moves a band made of two identical tiles leftward. When the
// first tile has fully left the view the pair wraps back by one tile width,
// so the band never shows a seam.
type Scroller struct {
	width  float64 // Tile width in cells
	speed  float64 // Cells per reference tick
	offset float64 // Distance scrolled within the current tile, [0, width)
}

// NewScroller creates a scroller for tiles of the given width.
func NewScroller(width int, speed float64) *Scroller {
	return &Scroller{width: float64(width), speed: speed}
}

// Advance scrolls by one step.
func (s *Scroller) Advance(dt time.Duration) {
	if s.width <= 0 {
		return
	}
	s.offset = math.Mod(s.offset+s.speed*tickRate(dt), s.width)
}

// Tiles returns the left edge of both tiles.
func (s *Scroller) Tiles() (float64, float64) {
	return -s.offset, s.width - s.offset
}

// Offset returns the distance scrolled within the current tile.
func (s *Scroller) Offset() float64 {
	return s.offset
}
