package core

// Color represents a foreground color for a screen cell.
// Front ends map it to ANSI 256-color codes or RGBA values.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorSky
	ColorCloud
	ColorPipe
	ColorPipeEdge
	ColorGround
	ColorGroundLine
	ColorPlayer
	ColorEnemy
	ColorText
	ColorTitle
	ColorMissing
)
