package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
	ColorDarkGray
	ColorYellow
)

// RGB returns the 24-bit color used by pixel surfaces for c.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorGreen, ColorBrightGreen:
		return 0x22, 0xc5, 0x5e
	case ColorBrightWhite:
		return 0xe2, 0xe8, 0xf0
	case ColorGray:
		return 0x94, 0xa3, 0xb8
	case ColorDarkGray:
		return 0x1f, 0x29, 0x37
	case ColorYellow:
		return 0xfa, 0xcc, 0x15
	default:
		return 0xcb, 0xd5, 0xe1
	}
}
