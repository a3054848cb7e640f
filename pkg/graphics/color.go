package graphics

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
//
// The box engine treats colors as opaque tokens: it never blends or
// interprets them, only carries them into the render plan for the host
// renderer to paint.
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)

// ParseColor parses a color from a hex string or an SVG 1.1 color name.
//
// Accepted hex forms are "#RGB", "#RRGGBB", and "#AARRGGBB". Names are
// resolved case-insensitively against the SVG color table ("rebeccapurple",
// "steelblue", ...). Any other input is an error; callers must not fall back
// to a default for malformed values.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty color value")
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if rgba, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGBA(rgba.R, rgba.G, rgba.B, rgba.A), nil
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

func parseHexColor(hex string) (Color, error) {
	switch len(hex) {
	case 3:
		var expanded strings.Builder
		for _, r := range hex {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		return parseHexColor(expanded.String())
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q", "#"+hex)
		}
		return Color(0xFF000000 | uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q", "#"+hex)
		}
		return Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("invalid hex color %q: want 3, 6, or 8 digits", "#"+hex)
	}
}
