package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color style.
type Color uint8

// Palette used by the board renderer. Tile shades run from light to dark,
// following the tile value, so larger tiles stand out.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorBrightYellow
	ColorYellow
	ColorOrange
	ColorBrightRed
	ColorRed
	ColorBrightMagenta
	ColorMagenta
	ColorBrightCyan
	ColorCyan
	ColorBrightGreen
	ColorGreen
)

// TileShades is the ordered list of colors used for tile values 2, 4, 8, ...
// Values past the end of the list reuse the last shade.
var TileShades = []Color{
	ColorWhite,
	ColorBrightYellow,
	ColorYellow,
	ColorOrange,
	ColorBrightRed,
	ColorRed,
	ColorBrightMagenta,
	ColorMagenta,
	ColorBrightCyan,
	ColorCyan,
	ColorBrightGreen,
	ColorGreen,
}
