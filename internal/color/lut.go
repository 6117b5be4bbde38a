// Package color converts between sRGB-encoded 8-bit channels and linear
// light using lookup tables, and interpolates colors in either space.
//
// Gradient ramps declared with linear-RGB interpolation are blended in
// linear light and re-encoded to sRGB per ramp entry.
package color

import "math"

// toLinear maps an sRGB byte to linear light in [0, 1].
var toLinear [256]float64

// toSRGB maps a 12-bit linear value to an sRGB byte.
var toSRGB [4096]uint8

func init() {
	for i := range toLinear {
		toLinear[i] = decode(float64(i) / 255)
	}
	for i := range toSRGB {
		toSRGB[i] = quantize(encode(float64(i) / 4095))
	}
}

// decode applies the sRGB transfer function inverse.
func decode(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// encode applies the sRGB transfer function.
func encode(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

func quantize(v float64) uint8 {
	n := int(v*255 + 0.5)
	//nolint:gosec // G115: clamped to [0,255]
	return uint8(min(max(n, 0), 255))
}

// SRGBToLinear converts an sRGB byte to linear light.
func SRGBToLinear(s uint8) float64 {
	return toLinear[s]
}

// LinearToSRGB converts linear light to an sRGB byte. Input outside
// [0, 1] is clamped.
func LinearToSRGB(l float64) uint8 {
	if !(l > 0) {
		return toSRGB[0]
	}
	if l >= 1 {
		return toSRGB[4095]
	}
	return toSRGB[int(l*4095+0.5)]
}

// Lerp interpolates two straight-alpha RGBA colors at t in [0, 1]. With
// linear set, color channels are blended in linear light; alpha is always
// blended directly.
func Lerp(a, b [4]uint8, t float64, linear bool) [4]uint8 {
	var out [4]uint8
	for i := range 3 {
		if linear {
			la, lb := toLinear[a[i]], toLinear[b[i]]
			out[i] = LinearToSRGB(la + (lb-la)*t)
		} else {
			out[i] = quantize((float64(a[i]) + (float64(b[i])-float64(a[i]))*t) / 255)
		}
	}
	out[3] = quantize((float64(a[3]) + (float64(b[3])-float64(a[3]))*t) / 255)
	return out
}
