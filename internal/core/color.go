package core

// Color is a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// Roles used by the scene renderer.
const (
	ColorShip    = ColorCyan
	ColorThrust  = ColorOrange
	ColorBarrier = ColorYellow
	ColorGrid    = ColorGray
	ColorHUD     = ColorWhite
)

var colorNames = [...]string{
	ColorDefault: "default",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
	ColorOrange:  "orange",
	ColorGray:    "gray",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
