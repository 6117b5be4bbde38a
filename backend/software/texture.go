// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package software

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/swfrender/backend"
)

// texture is a premultiplied RGBA image owned by the backend.
type texture struct {
	pix    []uint8
	width  int
	height int
}

func newTexture(img *image.RGBA) (*texture, error) {
	r := img.Bounds()
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return nil, backend.ErrEmptyTexture
	}
	if w > backend.MaxTextureSize || h > backend.MaxTextureSize {
		return nil, fmt.Errorf("%w: %dx%d", backend.ErrTextureTooLarge, w, h)
	}

	t := &texture{pix: make([]uint8, w*h*4), width: w, height: h}
	for y := range h {
		src := img.Pix[img.PixOffset(r.Min.X, r.Min.Y+y):]
		copy(t.pix[y*w*4:(y+1)*w*4], src[:w*4])
	}
	return t, nil
}

// Size implements backend.Texture.
func (t *texture) Size() (int, int) {
	return t.width, t.height
}

// texel returns the premultiplied texel at integer coordinates already
// wrapped into range.
func (t *texture) texel(x, y int) [4]float64 {
	i := (y*t.width + x) * 4
	p := t.pix[i : i+4 : i+4]
	return [4]float64{
		float64(p[0]) / 255,
		float64(p[1]) / 255,
		float64(p[2]) / 255,
		float64(p[3]) / 255,
	}
}

// sample returns the premultiplied color at normalized coordinates (u, v).
func (t *texture) sample(u, v float64, s backend.Sampler) [4]float64 {
	if s.Filter != gputypes.FilterModeLinear {
		x := wrapIndex(int(math.Floor(u*float64(t.width))), t.width, s.Wrap)
		y := wrapIndex(int(math.Floor(v*float64(t.height))), t.height, s.Wrap)
		return t.texel(x, y)
	}

	fx := u*float64(t.width) - 0.5
	fy := v*float64(t.height) - 0.5
	x0, y0 := math.Floor(fx), math.Floor(fy)
	ax, ay := fx-x0, fy-y0

	ix, iy := int(x0), int(y0)
	xa, xb := wrapIndex(ix, t.width, s.Wrap), wrapIndex(ix+1, t.width, s.Wrap)
	ya, yb := wrapIndex(iy, t.height, s.Wrap), wrapIndex(iy+1, t.height, s.Wrap)

	c00, c10 := t.texel(xa, ya), t.texel(xb, ya)
	c01, c11 := t.texel(xa, yb), t.texel(xb, yb)

	var c [4]float64
	for k := range 4 {
		top := c00[k] + (c10[k]-c00[k])*ax
		bot := c01[k] + (c11[k]-c01[k])*ax
		c[k] = top + (bot-top)*ay
	}
	return c
}

// wrapIndex maps texel index i into [0, n) according to the address mode.
func wrapIndex(i, n int, mode gputypes.AddressMode) int {
	switch mode {
	case gputypes.AddressModeRepeat:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	case gputypes.AddressModeMirrorRepeat:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
		return i
	default:
		return min(max(i, 0), n-1)
	}
}
