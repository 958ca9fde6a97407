package wordflap

import (
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/wordflap/internal/core"
)

// Obstacle is a word drifting leftward across the playfield.
type Obstacle struct {
	Label     string
	Schedule  float64   // Seconds after session start when it becomes active
	Remaining float64   // Seconds until active; active at <= 0
	Pos       core.Vec2 // Top-left corner
	Size      core.Vec2
	Speed     float64 // Cells per reference tick, leftward
}

// Active reports whether the obstacle's scheduled time has passed.
func (o Obstacle) Active() bool {
	return o.Remaining <= 0
}

// Bounds returns the obstacle's collision rectangle.
func (o Obstacle) Bounds() core.Rect {
	return core.NewRect(o.Pos.X, o.Pos.Y, o.Size.X, o.Size.Y)
}

// Right returns the trailing edge.
func (o Obstacle) Right() float64 {
	return o.Pos.X + o.Size.X
}

// StreamConfig places and paces a stream.
type StreamConfig struct {
	SpawnX   float64 // Column new obstacles start at
	MinY     float64 // Highest row an obstacle may occupy
	MaxY     float64 // Lowest top row an obstacle may occupy
	Height   float64 // Obstacle hitbox height
	Speed    float64
	Interval float64 // Seconds between consecutive schedule times
}

// Stream handles scheduling, movement and removal of word obstacles.
type Stream struct {
	words     []string
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       StreamConfig
}

// NewStream creates an empty stream. The rng decides vertical positions.
func NewStream(rng *rand.Rand, cfg StreamConfig) *Stream {
	if cfg.MaxY < cfg.MinY {
		cfg.MaxY = cfg.MinY // Edge case for very small screens
	}
	return &Stream{
		obstacles: make([]Obstacle, 0, 16),
		rng:       rng,
		cfg:       cfg,
	}
}

// Load replaces the word list and builds a fresh batch from it.
func (s *Stream) Load(words []string) {
	s.words = append(s.words[:0], words...)
	s.Reset()
}

// Reset rebuilds the batch from the retained word list with new random
// positions and re-accumulated schedule times.
func (s *Stream) Reset() {
	s.obstacles = s.obstacles[:0]

	schedule := 0.0
	for _, w := range s.words {
		schedule += s.cfg.Interval

		y := s.cfg.MinY
		if s.cfg.MaxY > s.cfg.MinY {
			y += s.rng.Float64() * (s.cfg.MaxY - s.cfg.MinY)
		}

		s.obstacles = append(s.obstacles, Obstacle{
			Label:     w,
			Schedule:  schedule,
			Remaining: schedule,
			Pos:       core.Vec2{X: s.cfg.SpawnX, Y: y},
			Size:      core.Vec2{X: float64(utf8.RuneCountInString(w)), Y: s.cfg.Height},
			Speed:     s.cfg.Speed,
		})
	}
}

// SetPace changes speed and spacing. It takes effect on the next Reset.
func (s *Stream) SetPace(speed, interval float64) {
	s.cfg.Speed = speed
	s.cfg.Interval = interval
}

// Advance moves active obstacles and counts down pending ones. Obstacles
// that have left the playfield are dropped; their count is returned.
func (s *Stream) Advance(dt time.Duration) int {
	rate := tickRate(dt)
	secs := dt.Seconds()

	for i := range s.obstacles {
		o := &s.obstacles[i]
		if o.Active() {
			o.Pos.X -= o.Speed * rate
		} else {
			o.Remaining -= secs
		}
	}

	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Right() >= 0 {
			kept = append(kept, o)
		}
	}
	gone := len(s.obstacles) - len(kept)
	s.obstacles = kept
	return gone
}

// Active returns a snapshot of the indices of active obstacles.
func (s *Stream) Active() []int {
	idx := make([]int, 0, len(s.obstacles))
	for i, o := range s.obstacles {
		if o.Active() {
			idx = append(idx, i)
		}
	}
	return idx
}

// Consume removes a caught obstacle.
func (s *Stream) Consume(i int) Obstacle {
	return s.remove(i)
}

// Expire removes a missed obstacle.
func (s *Stream) Expire(i int) Obstacle {
	return s.remove(i)
}

func (s *Stream) remove(i int) Obstacle {
	o := s.obstacles[i]
	s.obstacles = append(s.obstacles[:i], s.obstacles[i+1:]...)
	return o
}

// Retire removes every obstacle whose index is listed. Indices refer to the
// collection as it was before the call, so a batch gathered from one
// snapshot can be dropped at once without shifting.
func (s *Stream) Retire(indices []int) {
	if len(indices) == 0 {
		return
	}
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}

	kept := make([]Obstacle, 0, len(s.obstacles))
	for i, o := range s.obstacles {
		if !drop[i] {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept
}

// At returns the obstacle at index i.
func (s *Stream) At(i int) Obstacle {
	return s.obstacles[i]
}

// Obstacles returns the current obstacles.
func (s *Stream) Obstacles() []Obstacle {
	return s.obstacles
}

// Len returns the number of obstacles not yet removed.
func (s *Stream) Len() int {
	return len(s.obstacles)
}

// Words returns the number of words in the retained list.
func (s *Stream) Words() int {
	return len(s.words)
}
