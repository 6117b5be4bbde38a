// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package software

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// Target is the CPU-backed pixel store a Backend draws into. Pixels are
// premultiplied RGBA, as in image.RGBA.
type Target struct {
	img *image.RGBA
}

// NewTarget creates a transparent target.
func NewTarget(width, height int) *Target {
	return &Target{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// NewTargetFromImage wraps an existing image without copying.
func NewTargetFromImage(img *image.RGBA) *Target {
	return &Target{img: img}
}

// Width returns the target width in pixels.
func (t *Target) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *Target) Height() int {
	return t.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (t *Target) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Image returns the underlying image. It shares memory with the target.
func (t *Target) Image() *image.RGBA {
	return t.img
}

// Fill sets every pixel of r to c.
func (t *Target) Fill(r image.Rectangle, c color.NRGBA) {
	//nolint:forcetypeassert // RGBAModel always returns color.RGBA
	p := color.RGBAModel.Convert(c).(color.RGBA)
	r = r.Intersect(t.img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := t.img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			t.img.Pix[i+0] = p.R
			t.img.Pix[i+1] = p.G
			t.img.Pix[i+2] = p.B
			t.img.Pix[i+3] = p.A
			i += 4
		}
	}
}

// At returns the premultiplied color at (x, y).
func (t *Target) At(x, y int) color.RGBA {
	return t.img.RGBAAt(x, y)
}

// pixel returns the premultiplied color at byte offset i as [0, 1] floats.
func (t *Target) pixel(i int) [4]float64 {
	p := t.img.Pix[i : i+4 : i+4]
	return [4]float64{
		float64(p[0]) / 255,
		float64(p[1]) / 255,
		float64(p[2]) / 255,
		float64(p[3]) / 255,
	}
}

// setPixel stores c at byte offset i, clamping each channel to [0, 1].
func (t *Target) setPixel(i int, c [4]float64) {
	p := t.img.Pix[i : i+4 : i+4]
	for k := range 4 {
		p[k] = unit8(c[k])
	}
}

// unit8 converts v in [0, 1] to a byte with rounding.
func unit8(v float64) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
