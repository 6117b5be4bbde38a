package swfrender

import (
	"image/color"
	"math"
)

// RGBA8 is an 8-bit per channel color with straight (non-premultiplied)
// alpha, the color model of shape style records.
type RGBA8 struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) RGBA8 {
	return RGBA8{R: r, G: g, B: b, A: 255}
}

// NRGBA converts c to the standard library color type.
func (c RGBA8) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Transparent = RGBA8{}
)

// ColorTransform is a per-channel linear color transform. Each channel c
// becomes c*Mult + Add, clamped to 0..255. Channels are ordered R, G, B, A.
type ColorTransform struct {
	Mult [4]float64
	Add  [4]float64
}

// IdentityColorTransform returns the transform that leaves colors unchanged.
func IdentityColorTransform() ColorTransform {
	return ColorTransform{Mult: [4]float64{1, 1, 1, 1}}
}

// Apply transforms c.
func (cx ColorTransform) Apply(c RGBA8) RGBA8 {
	return RGBA8{
		R: clamp8(float64(c.R)*cx.Mult[0] + cx.Add[0]),
		G: clamp8(float64(c.G)*cx.Mult[1] + cx.Add[1]),
		B: clamp8(float64(c.B)*cx.Mult[2] + cx.Add[2]),
		A: clamp8(float64(c.A)*cx.Mult[3] + cx.Add[3]),
	}
}

// clamp8 rounds x and restricts it to [0, 255].
func clamp8(x float64) uint8 {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x + 0.5)
}

// ParseHex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'. Unparseable input yields opaque black.
func ParseHex(hex string) RGBA8 {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	ok := true
	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) &&
			parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) &&
			parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		return Black
	}
	if !ok {
		return Black
	}

	//nolint:gosec // G115: every component is at most 255
	return RGBA8{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// parseHex reads s as a hexadecimal number into val. It reports false on
// a non-hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
