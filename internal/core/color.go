package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI colors by the platform layer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorYellow
	ColorGreen
	ColorRed
	ColorCyan
	ColorBrightWhite
	ColorBrightYellow
)
