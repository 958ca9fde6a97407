package core

// Color is the foreground color of a screen cell. The platform maps each
// value to a terminal color; ColorDefault leaves the terminal's own.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed           // game over panel
	ColorGreen         // words, ground
	ColorYellow        // bird
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightYellow // HUD, name entry
	ColorBrightCyan   // title card
	ColorOrange       // soil
	ColorGray         // clouds
)
