package core

// Color represents a foreground color for a screen cell.
// The platform layer maps it to terminal styles.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightBlue
	ColorOrange
	ColorGray
	ColorCursor // Rendered reversed
)
