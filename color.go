package figure

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA colour with straight (non-premultiplied) alpha.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// RGBA creates an opaque or translucent colour from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Common colours.
var (
	Black       = RGBA(0, 0, 0, 255)
	White       = RGBA(255, 255, 255, 255)
	Transparent = RGBA(0, 0, 0, 0)
)

// shadeFactor is the per-step brightness ratio between adjacent shades.
const shadeFactor = 0.7

// minBright is the smallest channel value Brighter can amplify, the
// truncation of 1/(1-shadeFactor). Channels below it would round back to
// themselves when divided by shadeFactor, so they are raised to this floor
// first.
const minBright uint8 = 3

// FromHex parses a hex colour string. A leading '#' is optional; the rest
// must be exactly 6 hex digits (RGB, alpha defaults to 255) or 8 hex digits
// (RGBA). Anything else is rejected.
func FromHex(hex string) (Color, error) {
	s := strings.TrimLeft(hex, "#")

	var digits [4]uint8
	pairs := len(s) / 2
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("figure: invalid hex colour %q: length %d", hex, len(s))
	}
	for i := 0; i < pairs; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("figure: invalid hex colour %q: %w", hex, err)
		}
		digits[i] = uint8(v)
	}

	c := Color{R: digits[0], G: digits[1], B: digits[2], A: 255}
	if pairs == 4 {
		c.A = digits[3]
	}
	return c, nil
}

// Darker returns the colour with each of r, g, b multiplied by the shade
// factor and truncated. Alpha is unchanged.
func (c Color) Darker() Color {
	return Color{
		R: uint8(float64(c.R) * shadeFactor),
		G: uint8(float64(c.G) * shadeFactor),
		B: uint8(float64(c.B) * shadeFactor),
		A: c.A,
	}
}

// Brighter returns the colour with each of r, g, b divided by the shade
// factor, clamped to 255. Full black becomes a uniform dark grey rather than
// staying black, and non-zero channels too dark to amplify are raised to a
// floor first. Alpha is unchanged.
func (c Color) Brighter() Color {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return Color{R: minBright, G: minBright, B: minBright, A: c.A}
	}
	return Color{
		R: brightenChannel(c.R),
		G: brightenChannel(c.G),
		B: brightenChannel(c.B),
		A: c.A,
	}
}

func brightenChannel(v uint8) uint8 {
	if v > 0 && v < minBright {
		v = minBright
	}
	scaled := float64(v) / shadeFactor
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
