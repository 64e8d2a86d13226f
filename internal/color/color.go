package color

import (
	"fmt"
	"math"
)

// Color represents an RGB color. The R, G, B uint8 fields are the source of truth;
// all output formats are derived from them.
type Color struct {
	R, G, B uint8
}

// FromComponents builds a Color from red, green and blue components in the
// range [0, 1], as stored by iTerm2. Each channel is floor(c * 255); values
// outside the range are not clamped.
func FromComponents(r, g, b float64) Color {
	return Color{R: channel(r), G: channel(g), B: channel(b)}
}

func channel(c float64) uint8 {
	return uint8(math.Floor(c * 255))
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}
