package graphics

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
)

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return Color(0xFF<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ParseHex parses "#RRGGBB" or "#AARRGGBB".
func ParseHex(s string) (Color, error) {
	if len(s) != 7 && len(s) != 9 || s[0] != '#' {
		return 0, fmt.Errorf("parse color %q: want #RRGGBB or #AARRGGBB", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	if len(s) == 7 {
		v |= 0xFF << 24
	}
	return Color(v), nil
}

// Hex formats the color as "#RRGGBB", dropping alpha. Terminal styles
// take this form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c)&0x00FFFFFF)
}

// NRGBA converts to the image/color representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(c >> 24)}
}

// Lerp blends c toward other by t in [0, 1], including alpha.
func (c Color) Lerp(other Color, t float64) Color {
	t = Clamp(t, 0, 1)
	mix := func(shift uint) uint32 {
		a := float64(uint8(uint32(c) >> shift))
		b := float64(uint8(uint32(other) >> shift))
		return uint32(math.Round(a+(b-a)*t)) << shift
	}
	return Color(mix(24) | mix(16) | mix(8) | mix(0))
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
