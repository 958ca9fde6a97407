package wordflap

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordflap/internal/assets"
	"github.com/vovakirdan/wordflap/internal/config"
	"github.com/vovakirdan/wordflap/internal/core"
	"github.com/vovakirdan/wordflap/internal/leaderboard"
)

// Visual characters for rendering
const (
	GroundChar     = '═'
	GroundMarkChar = '╪'
	SoilChar       = '░'
)

// RunRecorder is implemented by stores that keep a history of every run,
// not just the leaderboard.
type RunRecorder interface {
	RecordRun(pack string, score, waves int) error
}

// Options configures a new game.
type Options struct {
	Config config.WordflapConfig
	Source WordSource // Falls back to the default pack when nil, failing or empty
	Pack   string     // Label recorded with finished runs
	Store  leaderboard.Store
	Assets *assets.Cache
	Logger *log.Logger
}

// Game implements the Word Flap game logic.
type Game struct {
	cfg        config.WordflapConfig
	difficulty *config.DifficultyManager
	logger     *log.Logger
	store      leaderboard.Store
	pack       string

	rc     core.RuntimeConfig
	rng    *rand.Rand
	ground float64 // Row of the ground line

	body   *Body
	stream *Stream
	ledger *Ledger
	rules  *Rules
	clouds *Scroller
	floor  *Scroller

	screen   Screen
	gravity  bool // Off until the first flap so the bird hovers on the title card
	revealed bool // Obstacles are hidden until the run starts
	quit     bool
	wave     int
	tick     uint64

	name     *NameBuffer
	board    *leaderboard.Board
	best     int
	lastRank int
	ranked   bool // The final score would make the leaderboard

	bird       assets.Sprite
	cloud      assets.Sprite
	cloudSpots []core.Vec2 // Cloud positions within one background tile
	groundTile []rune
	words      []string
}

// New creates a game. Reset must be called before the first Step.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cache := opts.Assets
	if cache == nil {
		cache = assets.NewCache(logger)
	}
	store := opts.Store
	if store == nil {
		store = leaderboard.NewMemoryStore()
	}

	g := &Game{
		cfg:        opts.Config,
		difficulty: config.NewDifficultyManager(opts.Config.Difficulty),
		logger:     logger,
		store:      store,
		pack:       opts.Pack,
		ledger:     NewLedger(),
		name:       NewNameBuffer(opts.Config.Leaderboard.NameLength),
		bird:       cache.Sprite(opts.Config.Assets.Bird, assets.DefaultBird),
		cloud:      cache.Sprite(opts.Config.Assets.Cloud, assets.DefaultCloud),
	}
	g.words = g.loadWords(opts.Source)
	g.best = g.loadBoard().Best()
	return g
}

// loadWords reads the word source, degrading to the default pack.
func (g *Game) loadWords(src WordSource) []string {
	if src != nil {
		words, err := src.Words()
		switch {
		case err != nil:
			g.logger.Warn("word source unavailable, using default pack", "error", err)
		case len(words) == 0:
			g.logger.Warn("word source is empty, using default pack")
		default:
			return words
		}
	}

	words, err := defaultSource().Words()
	if err != nil || len(words) == 0 {
		g.logger.Error("default word pack unavailable", "error", err)
		return []string{"WORD"}
	}
	return words
}

// loadBoard reads the stored leaderboard. Failures yield an empty board.
func (g *Game) loadBoard() *leaderboard.Board {
	entries, err := g.store.Load()
	if err != nil {
		g.logger.Warn("cannot load leaderboard", "error", err)
		entries = nil
	}
	return leaderboard.NewBoard(g.cfg.Leaderboard.Size, entries)
}

// Reset sizes the playfield and returns to the title card. The playfield
// keeps this size until the next Reset.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rc = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.ground = float64(rc.ScreenH - g.cfg.Playfield.GroundHeight)

	g.body = NewBody(g.cfg.Physics, g.cfg.Player)
	g.rules = NewRules(g.cfg.Rules, g.ground)
	g.stream = NewStream(g.rng, StreamConfig{
		SpawnX:   float64(rc.ScreenW),
		MinY:     g.cfg.Obstacles.TopMargin,
		MaxY:     g.ground - g.cfg.Obstacles.Height,
		Height:   g.cfg.Obstacles.Height,
		Speed:    g.difficulty.Speed(g.cfg.Obstacles.Speed, 0),
		Interval: g.difficulty.Interval(g.cfg.Obstacles.Interval, 0),
	})
	g.stream.Load(g.words)

	g.clouds = NewScroller(rc.ScreenW, g.cfg.Playfield.CloudSpeed)
	g.floor = NewScroller(rc.ScreenW, g.cfg.Playfield.GroundSpeed)
	g.layoutBackground()

	g.tick = 0
	g.lastRank = 0
	g.quit = false
	g.startSession()
	g.screen = ScreenStart
	g.gravity = false
	g.revealed = false
}

// layoutBackground scatters clouds over one tile and builds the ground tile.
func (g *Game) layoutBackground() {
	w := g.rc.ScreenW
	count := core.Max(1, int(float64(w)*g.cfg.Playfield.CloudDensity))
	skyRows := core.Max(1, int(g.ground/2)-g.cloud.Height)

	g.cloudSpots = g.cloudSpots[:0]
	for i := 0; i < count; i++ {
		g.cloudSpots = append(g.cloudSpots, core.Vec2{
			X: float64(g.rng.Intn(core.Max(1, w))),
			Y: float64(1 + g.rng.Intn(skyRows)),
		})
	}

	g.groundTile = make([]rune, w)
	for x := range g.groundTile {
		if x%8 == 0 {
			g.groundTile[x] = GroundMarkChar
		} else {
			g.groundTile[x] = GroundChar
		}
	}
}

// startSession puts the bird back at its start position and clears
// everything a run accumulates.
func (g *Game) startSession() {
	g.body.SetPosition(g.cfg.Player.X, g.cfg.Player.StartY*g.ground)
	g.body.SetVelocity(0, 0)
	g.ledger.Reset()
	g.rules.Reset()
	g.name.Clear()
	g.board = nil
	g.ranked = false

	g.wave = 0
	g.stream.SetPace(
		g.difficulty.Speed(g.cfg.Obstacles.Speed, 0),
		g.difficulty.Interval(g.cfg.Obstacles.Interval, 0),
	)
	g.stream.Reset()
}

// Dispatch interprets the frame's input events, in order, against the
// current screen.
func (g *Game) Dispatch(in core.InputFrame) {
	for _, ev := range in.Events {
		if g.quit {
			return
		}
		g.handle(ev)
	}
}

func (g *Game) handle(ev core.Event) {
	// Every letter is part of the name while one is being typed, q included
	if g.screen == ScreenEnteringName {
		switch {
		case ev.Rune != 0:
			g.name.Push(ev.Rune)
		case ev.Action == core.ActionBackspace:
			g.name.Backspace()
		case ev.Action == core.ActionRestart:
			g.commitName()
		}
		return
	}

	if ev.Action == core.ActionQuit {
		g.quit = true
		g.logger.Debug("quit requested", "screen", g.screen)
		return
	}

	switch g.screen {
	case ScreenStart:
		if ev.Action == core.ActionConfirm {
			g.gravity = true
			g.revealed = true
			g.body.Flap()
			g.screen = ScreenPlaying
			g.logger.Debug("run started", "words", g.stream.Words())
		}

	case ScreenPlaying:
		if ev.Action == core.ActionConfirm {
			g.body.Flap()
		}

	case ScreenGameOver:
		switch ev.Action {
		case core.ActionRestart:
			g.restart()
		case core.ActionLeaderboard:
			g.board = g.loadBoard()
			g.name.Clear()
			g.screen = ScreenEnteringName
		}
	}
}

// commitName stores the final score under the typed name and restarts.
// Names shorter than the required length are ignored.
func (g *Game) commitName() {
	if !g.name.Full() {
		return
	}

	name := g.name.String()
	final := g.ledger.Final()
	rank := g.board.Add(name, final)

	if err := g.store.Save(g.board.Entries()); err != nil {
		g.logger.Error("cannot save leaderboard", "error", err)
	} else {
		g.logger.Info("leaderboard saved", "name", name, "score", final, "rank", rank)
	}

	g.best = g.board.Best()
	g.restart()
	g.lastRank = rank
}

// restart begins a new run directly, skipping the title card.
func (g *Game) restart() {
	g.startSession()
	g.lastRank = 0
	g.gravity = true
	g.revealed = true
	g.screen = ScreenPlaying
}

// Step advances the simulation by one fixed step.
func (g *Game) Step(dt time.Duration) {
	g.tick++
	g.clouds.Advance(dt)
	g.floor.Advance(dt)

	switch g.screen {
	case ScreenStart:
		g.body.Advance(dt, false)

	case ScreenPlaying:
		g.body.Advance(dt, g.gravity)
		if gone := g.stream.Advance(dt); gone > 0 {
			g.logger.Debug("obstacles left the playfield", "count", gone)
		}

		out := g.rules.Evaluate(g.body, g.stream, g.ledger)
		for _, w := range out.Consumed {
			g.logger.Debug("word caught", "word", w, "score", g.ledger.Value(), "multiplier", g.ledger.Multiplier())
		}
		for _, w := range out.Missed {
			g.logger.Debug("word missed", "word", w, "misses", g.rules.Misses())
		}

		if out.Terminal {
			g.endRun()
			return
		}
		if g.stream.Len() == 0 {
			g.nextWave()
		}
	}
}

// endRun switches to the game over screen and records the run.
func (g *Game) endRun() {
	g.screen = ScreenGameOver
	final := g.ledger.Final()
	g.ranked = g.loadBoard().Qualifies(final)
	g.logger.Info("run over", "score", final, "wave", g.wave+1, "ranked", g.ranked)

	if rec, ok := g.store.(RunRecorder); ok {
		if err := rec.RecordRun(g.pack, final, g.wave+1); err != nil {
			g.logger.Warn("cannot record run", "error", err)
		}
	}
}

// nextWave reloads the word list at the next difficulty level.
func (g *Game) nextWave() {
	g.wave++
	speed := g.difficulty.Speed(g.cfg.Obstacles.Speed, g.wave)
	interval := g.difficulty.Interval(g.cfg.Obstacles.Interval, g.wave)
	g.stream.SetPace(speed, interval)
	g.stream.Reset()
	g.logger.Debug("next wave", "wave", g.wave+1, "speed", speed, "interval", interval)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawClouds(dst)
	g.drawGround(dst)

	if g.revealed {
		for _, o := range g.stream.Obstacles() {
			if o.Active() {
				x, y := o.Bounds().Cell()
				dst.DrawTextColored(x, y, o.Label, core.ColorGreen)
			}
		}
	}

	if g.screen != ScreenGameOver && g.screen != ScreenEnteringName {
		x, y := g.body.Bounds().Cell()
		drawSprite(dst, g.bird, x, y, core.ColorYellow)
	}

	snap := g.Snapshot()
	for _, o := range overlays {
		if o.Active(g.screen) {
			o.Draw(dst, snap)
		}
	}
}

func (g *Game) drawClouds(dst *core.Screen) {
	a, b := g.clouds.Tiles()
	for _, origin := range []float64{a, b} {
		for _, c := range g.cloudSpots {
			drawSprite(dst, g.cloud, int(math.Floor(origin+c.X)), int(c.Y), core.ColorGray)
		}
	}
}

func (g *Game) drawGround(dst *core.Screen) {
	y := int(g.ground)
	a, b := g.floor.Tiles()
	for _, origin := range []float64{a, b} {
		left := int(math.Floor(origin))
		for i, r := range g.groundTile {
			dst.SetColored(left+i, y, r, core.ColorGreen)
		}
	}
	for row := y + 1; row < dst.Height(); row++ {
		dst.DrawHLine(0, row, dst.Width(), SoilChar, core.ColorOrange)
	}
}

// drawSprite draws a sprite with spaces treated as transparent.
func drawSprite(dst *core.Screen, s assets.Sprite, x, y int, c core.Color) {
	for dy, line := range s.Lines {
		dx := 0
		for _, r := range line {
			if r != ' ' {
				dst.SetColored(x+dx, y+dy, r, c)
			}
			dx++
		}
	}
}

// Screen returns the authoritative screen state.
func (g *Game) Screen() Screen {
	return g.screen
}

// Score returns the running score.
func (g *Game) Score() int {
	return g.ledger.Value()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.ledger.Value(),
		Best:       g.best,
		Multiplier: g.ledger.Multiplier(),
		Misses:     g.rules.Misses(),
		Wave:       g.wave,
		Screen:     g.screen.String(),
		GameOver:   g.screen == ScreenGameOver,
		NameEntry:  g.screen == ScreenEnteringName,
		Quit:       g.quit,
	}
}
