package swfrender

import (
	"fmt"
	"sync"
)

// FillStyle describes how the interior of a contour is painted. It is one
// of *SolidFill, *GradientFill or *BitmapFill.
type FillStyle interface {
	fillStyle()
}

// SolidFill paints with a flat color.
type SolidFill struct {
	Color RGBA8
}

// GradientKind selects the gradient geometry.
type GradientKind int

const (
	// GradientLinear varies color along the x axis of the gradient square.
	GradientLinear GradientKind = iota

	// GradientRadial varies color with the distance from the square's center.
	GradientRadial

	// GradientFocal is a radial gradient whose focal point is moved along
	// the x axis by Focal times the radius.
	GradientFocal
)

// String returns the gradient kind name.
func (k GradientKind) String() string {
	switch k {
	case GradientLinear:
		return "linear"
	case GradientRadial:
		return "radial"
	case GradientFocal:
		return "focal"
	default:
		return fmt.Sprintf("GradientKind(%d)", int(k))
	}
}

// SpreadMode defines how a gradient continues past its end stops.
type SpreadMode int

const (
	// SpreadPad extends the end colors.
	SpreadPad SpreadMode = iota

	// SpreadReflect mirrors the gradient.
	SpreadReflect

	// SpreadRepeat repeats the gradient.
	SpreadRepeat
)

// Interpolation selects the color space gradient stops are blended in.
type Interpolation int

const (
	// InterpolationRGB blends sRGB-encoded channels directly.
	InterpolationRGB Interpolation = iota

	// InterpolationLinearRGB blends in linear light.
	InterpolationLinearRGB
)

// GradientStop is a color at a position in [0, 1] along the gradient.
type GradientStop struct {
	Offset float64
	Color  RGBA8
}

// GradientFill paints a color ramp defined on the gradient square, which
// spans -16384..16384 twips on both axes. Matrix maps the gradient square
// into shape space.
type GradientFill struct {
	Kind          GradientKind
	Matrix        Matrix
	Stops         []GradientStop
	Spread        SpreadMode
	Interpolation Interpolation

	// Focal is the focal point position for GradientFocal, in [-1, 1].
	Focal float64

	once   sync.Once
	bitmap *Bitmap
}

// BitmapFill paints with a bitmap. Matrix maps bitmap pixels into shape
// space. A clipped bitmap extends its edge pixels; otherwise it tiles.
type BitmapFill struct {
	Bitmap  *Bitmap
	Matrix  Matrix
	Clipped bool

	// Smooth samples with bilinear filtering instead of nearest texel.
	Smooth bool
}

func (*SolidFill) fillStyle()    {}
func (*GradientFill) fillStyle() {}
func (*BitmapFill) fillStyle()   {}

// LineStyle strokes a path outline. Width is in twips.
type LineStyle struct {
	Width float64
	Color RGBA8
}

// isSolid reports whether fs is a flat color fill.
func isSolid(fs FillStyle) bool {
	_, ok := fs.(*SolidFill)
	return ok
}

// fillAt returns the 1-based fill style index of fills.
func fillAt(fills []FillStyle, index int) FillStyle {
	if index < 1 || index > len(fills) || fills[index-1] == nil {
		panic(fmt.Sprintf("swfrender: fill style %d out of range [1, %d]", index, len(fills)))
	}
	return fills[index-1]
}

// lineAt returns the 1-based line style index of lines.
func lineAt(lines []LineStyle, index int) LineStyle {
	if index < 1 || index > len(lines) {
		panic(fmt.Sprintf("swfrender: line style %d out of range [1, %d]", index, len(lines)))
	}
	return lines[index-1]
}
