package swfrender

import (
	"image"
	"math"
	"slices"
	"sort"

	icolor "github.com/gogpu/swfrender/internal/color"
)

// Gradient ramp bitmap sizes.
const (
	linearRampWidth = 256
	radialRampSize  = 64
)

// gradientSquare is half the side of the gradient square in twips.
const gradientSquare = 16384

// rampBitmap returns the gradient's color ramp bitmap, building it on first
// use.
func (g *GradientFill) rampBitmap() *Bitmap {
	g.once.Do(func() {
		switch g.Kind {
		case GradientLinear:
			g.bitmap = newBitmapRGBA(g.linearRamp())
		case GradientRadial, GradientFocal:
			g.bitmap = newBitmapRGBA(g.radialRamp())
		default:
			panic("swfrender: unknown gradient kind " + g.Kind.String())
		}
	})
	return g.bitmap
}

// textureMatrix maps shape space to ramp bitmap pixels.
func (g *GradientFill) textureMatrix() Matrix {
	inv := g.Matrix.Invert()
	switch g.Kind {
	case GradientLinear:
		s := float64(linearRampWidth/2) / gradientSquare
		return Translate(linearRampWidth/2, 0).Multiply(Scale(s, s)).Multiply(inv)
	default:
		s := float64(radialRampSize/2) / gradientSquare
		return Translate(radialRampSize/2, radialRampSize/2).Multiply(Scale(s, s)).Multiply(inv)
	}
}

// linearRamp renders the stops across a one-row bitmap. Spread modes are
// left to the sampler.
func (g *GradientFill) linearRamp() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, linearRampWidth, 1))
	stops := sortStops(g.Stops)
	for x := range linearRampWidth {
		t := float64(x) / (linearRampWidth - 1)
		setPremul(img, x, 0, g.colorAt(stops, t))
	}
	return img
}

// radialRamp renders the distance ramp centered in a square bitmap. The
// ramp reaches its last stop on the inscribed circle.
func (g *GradientFill) radialRamp() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, radialRampSize, radialRampSize))
	stops := sortStops(g.Stops)
	const r = radialRampSize / 2

	focal := 0.0
	if g.Kind == GradientFocal {
		focal = max(-0.98, min(0.98, g.Focal)) * r
	}

	for y := range radialRampSize {
		for x := range radialRampSize {
			px := float64(x) + 0.5 - r
			py := float64(y) + 0.5 - r
			var t float64
			if focal == 0 {
				t = math.Hypot(px, py) / r
			} else {
				t = focalT(px, py, focal, r)
			}
			setPremul(img, x, y, g.colorAt(stops, applySpread(t, g.Spread)))
		}
	}
	return img
}

// focalT returns the gradient position of (x, y) for a circle of radius r
// centered at the origin, seen from the focal point (fx, 0): the ratio of
// the point's distance from the focus to the distance of the circle along
// the same ray.
func focalT(x, y, fx, r float64) float64 {
	dx, dy := x-fx, y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return 0
	}
	ux := dx / d

	// Solve |F + s*u| = r for s > 0, with F = (fx, 0).
	b := fx * ux
	c := fx*fx - r*r
	s := -b + math.Sqrt(b*b-c)
	if s <= 0 {
		return 1
	}
	return d / s
}

// colorAt returns the ramp color at t in [0, 1].
func (g *GradientFill) colorAt(stops []GradientStop, t float64) RGBA8 {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}

	t = clamp01(t)
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1, s2 := stops[idx-1], stops[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	local := (t - s1.Offset) / (s2.Offset - s1.Offset)
	c := icolor.Lerp(
		[4]uint8{s1.Color.R, s1.Color.G, s1.Color.B, s1.Color.A},
		[4]uint8{s2.Color.R, s2.Color.G, s2.Color.B, s2.Color.A},
		local, g.Interpolation == InterpolationLinearRGB)
	return RGBA8{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// sortStops returns the stops ordered by offset.
func sortStops(stops []GradientStop) []GradientStop {
	if slices.IsSortedFunc(stops, compareStops) {
		return stops
	}
	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, compareStops)
	return sorted
}

func compareStops(a, b GradientStop) int {
	switch {
	case a.Offset < b.Offset:
		return -1
	case a.Offset > b.Offset:
		return 1
	default:
		return 0
	}
}

// applySpread maps t into [0, 1] according to the spread mode.
func applySpread(t float64, mode SpreadMode) float64 {
	switch mode {
	case SpreadRepeat:
		t -= math.Floor(t)
	case SpreadReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = clamp01(t)
	}
	return t
}

func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// setPremul stores straight-alpha c into img as premultiplied RGBA.
func setPremul(img *image.RGBA, x, y int, c RGBA8) {
	i := img.PixOffset(x, y)
	a := uint32(c.A)
	img.Pix[i+0] = uint8((uint32(c.R)*a + 127) / 255)
	img.Pix[i+1] = uint8((uint32(c.G)*a + 127) / 255)
	img.Pix[i+2] = uint8((uint32(c.B)*a + 127) / 255)
	img.Pix[i+3] = c.A
}
