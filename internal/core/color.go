package core

// Color is a foreground color for a screen cell, mapped to ANSI 256-color
// codes by terminal hosts.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// Roles of the flapfish palette.
const (
	ColorFish      = ColorOrange
	ColorFishRise  = ColorBrightYellow // fish tilted upward after a flap
	ColorFishHead  = ColorYellow
	ColorPipe      = ColorGreen
	ColorPipeEdge  = ColorBrightGreen
	ColorGround    = ColorGray
	ColorHUD       = ColorBrightCyan
	ColorBanner    = ColorWhite
	ColorCountdown = ColorBrightYellow
	ColorGameOver  = ColorRed
	ColorHint      = ColorGray
)
