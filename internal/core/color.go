package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for screen elements.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// energyRamp maps energy levels 0..9 to a heat ramp: cold and dim at
// zero, hot and bright near the flash threshold.
var energyRamp = [10]Color{
	ColorGray,
	ColorBlue,
	ColorBlue,
	ColorCyan,
	ColorCyan,
	ColorGreen,
	ColorBrightGreen,
	ColorYellow,
	ColorOrange,
	ColorBrightYellow,
}

// EnergyColor returns the display color for an energy level.
// Levels outside [0, 9] fall back to the default color.
func EnergyColor(level int) Color {
	if level < 0 || level >= len(energyRamp) {
		return ColorDefault
	}
	return energyRamp[level]
}

// FlashColor is the highlight used for cells that flashed this step.
const FlashColor = ColorBrightWhite
