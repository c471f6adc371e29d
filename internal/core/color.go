package core

import "github.com/lucasb-eyer/go-colorful"

// Color is the foreground color of a screen cell.
// The zero value means "terminal default"; any other value carries a 24-bit
// RGB triple that the platform degrades to whatever the terminal supports.
type Color uint32

const colorSet Color = 1 << 24

// Interface colors used by menus and the summary screen.
const (
	ColorDefault    Color = 0
	ColorMenu       Color = colorSet | 0xffcc00 // Inactive menu entries
	ColorMenuActive Color = colorSet | 0xffff00 // Entry under the cursor
	ColorLogo       Color = colorSet | 0xff8000
	ColorBackground Color = colorSet | 0x323232
	ColorCorrect    Color = colorSet | 0x00b400
	ColorIncorrect  Color = colorSet | 0xdc0000
	ColorWhite      Color = colorSet | 0xffffff
	ColorGray       Color = colorSet | 0x8a8a8a
)

// RGB builds a color from 0-255 components.
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// IsDefault reports whether the color defers to the terminal default.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Components returns the 0-255 red, green and blue parts.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as "#rrggbb". The default color has no hex form and
// returns an empty string.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.Components()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
}
