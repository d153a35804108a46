package core

// Color is the foreground colour of a screen cell or glyph sprite.
type Color uint8

// Colours the arena is drawn with.
const (
	ColorDefault Color = iota
	ColorRed
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorGray

	colorCount
)

var colorTable = [colorCount]struct {
	ansi    string
	r, g, b uint8
}{
	ColorDefault:      {"", 0xe0, 0xe0, 0xe0},
	ColorRed:          {"1", 0xcd, 0x31, 0x31},
	ColorBrightRed:    {"9", 0xf1, 0x4c, 0x4c},
	ColorBrightGreen:  {"10", 0x23, 0xd1, 0x8b},
	ColorBrightYellow: {"11", 0xf5, 0xf5, 0x43},
	ColorGray:         {"245", 0x8a, 0x8a, 0x8a},
}

// ANSI returns the terminal 256-colour code, or "" for the terminal's own
// foreground. Unknown colours map to the default.
func (c Color) ANSI() string {
	if c >= colorCount {
		c = ColorDefault
	}
	return colorTable[c].ansi
}

// RGB returns the colour for pixel frontends.
func (c Color) RGB() (r, g, b uint8) {
	if c >= colorCount {
		c = ColorDefault
	}
	e := colorTable[c]
	return e.r, e.g, e.b
}
