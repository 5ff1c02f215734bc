package core

// Color is the foreground color of a screen cell.
// Front ends translate it to whatever their output supports.
type Color uint8

// Palette for the wasteland display.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorDimGreen
	ColorYellow
	ColorRed
	ColorGray
)
