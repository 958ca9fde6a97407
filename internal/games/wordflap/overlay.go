package wordflap

import (
	"fmt"

	"github.com/vovakirdan/wordflap/internal/core"
)

// Overlay is a layer drawn over the playfield for some screen states.
// The active screen alone decides which overlays are shown.
type Overlay interface {
	Active(s Screen) bool
	Draw(dst *core.Screen, snap Snapshot)
}

// overlays are drawn in order; later ones cover earlier ones.
var overlays = []Overlay{
	hudOverlay{},
	startOverlay{},
	gameOverOverlay{},
	nameEntryOverlay{},
	leaderboardOverlay{},
}

// hudOverlay shows score, streak and misses along the top row.
type hudOverlay struct{}

func (hudOverlay) Active(s Screen) bool {
	return s != ScreenStart
}

func (hudOverlay) Draw(dst *core.Screen, snap Snapshot) {
	left := fmt.Sprintf(" Score: %d  x%d ", snap.Score, snap.Multiplier)
	dst.DrawTextColored(1, 0, left, core.ColorBrightYellow)

	misses := ""
	for i := 0; i < snap.MissLimit; i++ {
		if i < snap.Misses {
			misses += "X"
		} else {
			misses += "."
		}
	}
	right := fmt.Sprintf(" Wave %d  Miss %s  Best %d ", snap.Wave+1, misses, snap.Best)
	x := dst.Width() - len(right) - 1
	dst.DrawTextColored(x, 0, right, core.ColorGray)
}

// startOverlay is the title card.
type startOverlay struct{}

func (startOverlay) Active(s Screen) bool {
	return s == ScreenStart
}

func (startOverlay) Draw(dst *core.Screen, snap Snapshot) {
	lines := []string{"WORD FLAP", "", "Fly into the words. Miss three and it's over.", "", "SPACE to flap"}
	if snap.Best > 0 {
		lines = append(lines, fmt.Sprintf("Best: %d", snap.Best))
	}
	drawPanel(dst, lines, core.ColorBrightCyan)
}

// gameOverOverlay shows the final score and the next steps.
type gameOverOverlay struct{}

func (gameOverOverlay) Active(s Screen) bool {
	return s == ScreenGameOver
}

func (gameOverOverlay) Draw(dst *core.Screen, snap Snapshot) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score: %d", snap.Final),
	}
	if snap.Ranked {
		lines = append(lines, "New top score! TAB to sign it")
	}
	lines = append(lines, "", "ENTER restart  |  TAB leaderboard")
	drawPanel(dst, lines, core.ColorRed)
}

// nameEntryOverlay shows the name being typed.
type nameEntryOverlay struct{}

func (nameEntryOverlay) Active(s Screen) bool {
	return s == ScreenEnteringName
}

func (nameEntryOverlay) Draw(dst *core.Screen, snap Snapshot) {
	name := []rune(snap.Name)
	slots := make([]rune, 0, snap.NameLength*2)
	for i := 0; i < snap.NameLength; i++ {
		if i < len(name) {
			slots = append(slots, name[i])
		} else {
			slots = append(slots, '_')
		}
		slots = append(slots, ' ')
	}

	y := dst.Height() - 5
	dst.DrawTextCentered(y, fmt.Sprintf("Score %d  Name: %s", snap.Final, string(slots)))
	dst.DrawTextCentered(y+1, "A-Z type  BACKSPACE erase  ENTER save")
}

// leaderboardOverlay lists the revealed leaderboard snapshot.
type leaderboardOverlay struct{}

func (leaderboardOverlay) Active(s Screen) bool {
	return s == ScreenEnteringName || s == ScreenLeaderboard
}

func (leaderboardOverlay) Draw(dst *core.Screen, snap Snapshot) {
	lines := []string{"LEADERBOARD", ""}
	if len(snap.Board) == 0 {
		lines = append(lines, "no scores yet")
	}
	for i, e := range snap.Board {
		lines = append(lines, fmt.Sprintf("%2d. %-3s %6d", i+1, e.Name, e.Score))
	}
	drawPanel(dst, lines, core.ColorBrightYellow)
}

// drawPanel draws a boxed block of centered lines in the middle of dst.
func drawPanel(dst *core.Screen, lines []string, title core.Color) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		if i == 0 {
			dst.DrawTextColored(x, boxY+1, l, title)
			continue
		}
		dst.DrawText(x, boxY+1+i, l)
	}
}
