// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package software

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/swfrender/backend"
)

// Supported line widths in pixels.
const (
	minLineWidth = 1
	maxLineWidth = 32
)

// maskMode is the stencil stage of the backend.
type maskMode int

const (
	maskOff maskMode = iota
	maskWrite
	maskTest
)

// Backend is the CPU rasterizer.
//
// It is not safe for concurrent use.
type Backend struct {
	target   *Target
	viewport image.Rectangle
	stack    []backend.Affine
	cov      *coverage

	stencil []uint8
	mask    maskMode

	err    error
	logger *slog.Logger
}

// New creates a backend with a transparent width x height target.
func New(width, height int) *Backend {
	return NewWithTarget(NewTarget(width, height))
}

// NewWithTarget creates a backend drawing into t.
func NewWithTarget(t *Target) *Backend {
	return &Backend{
		target:   t,
		viewport: t.Image().Bounds(),
		stack:    []backend.Affine{backend.IdentityAffine()},
		cov:      newCoverage(t.Width(), t.Height()),
		logger:   slog.New(slog.DiscardHandler),
	}
}

// Name implements backend.Backend.
func (b *Backend) Name() string { return backend.NameSoftware }

// SetLogger sets the logger for frame diagnostics.
func (b *Backend) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	b.logger = l
}

// Target returns the target drawn into.
func (b *Backend) Target() *Target { return b.target }

// Image returns the target image.
func (b *Backend) Image() *image.RGBA { return b.target.Image() }

// Bounds returns the target bounds.
func (b *Backend) Bounds() image.Rectangle { return b.target.Image().Bounds() }

// fail records the first error of the frame.
func (b *Backend) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// BeginFrame implements backend.Backend.
func (b *Backend) BeginFrame(f backend.Frame) {
	b.viewport = f.Viewport.Intersect(b.Bounds())
	if b.viewport.Empty() {
		b.viewport = b.Bounds()
	}
	b.target.Fill(b.viewport, f.Background)

	b.stack = append(b.stack[:0], projection(f.World, b.viewport))
	b.mask = maskOff
	b.err = nil

	b.logger.Debug("software: begin frame",
		slog.String("viewport", b.viewport.String()))
}

// projection maps the world rectangle {x0, x1, y0, y1} onto vp.
func projection(world [4]float64, vp image.Rectangle) backend.Affine {
	x0, x1, y0, y1 := world[0], world[1], world[2], world[3]
	if x1 == x0 || y1 == y0 {
		return backend.Affine{1, 0, float64(vp.Min.X), 0, 1, float64(vp.Min.Y)}
	}
	sx := float64(vp.Dx()) / (x1 - x0)
	sy := float64(vp.Dy()) / (y1 - y0)
	return backend.Affine{
		sx, 0, float64(vp.Min.X) - x0*sx,
		0, sy, float64(vp.Min.Y) - y0*sy,
	}
}

// EndFrame implements backend.Backend.
func (b *Backend) EndFrame() error {
	if len(b.stack) != 1 {
		b.fail(fmt.Errorf("%w: depth %d at end of frame", backend.ErrUnbalancedMatrix, len(b.stack)-1))
		b.stack = b.stack[:1]
	}
	err := b.err
	b.err = nil
	if err != nil {
		b.logger.Warn("software: frame finished with error", slog.Any("err", err))
	}
	return err
}

// PushMatrix implements backend.Backend.
func (b *Backend) PushMatrix(m backend.Affine) {
	b.stack = append(b.stack, b.current().Mul(m))
}

// PopMatrix implements backend.Backend.
func (b *Backend) PopMatrix() {
	if len(b.stack) == 1 {
		b.fail(fmt.Errorf("%w: pop without push", backend.ErrUnbalancedMatrix))
		return
	}
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *Backend) current() backend.Affine {
	return b.stack[len(b.stack)-1]
}

// NewTexture implements backend.Backend.
func (b *Backend) NewTexture(img *image.RGBA) (backend.Texture, error) {
	if img == nil {
		return nil, backend.ErrEmptyTexture
	}
	return newTexture(img)
}

// LineWidthRange implements backend.Backend.
func (b *Backend) LineWidthRange() (float64, float64) {
	return minLineWidth, maxLineWidth
}

// BeginMask implements backend.Backend. The mask is cleared and subsequent
// draws mark it instead of the target.
func (b *Backend) BeginMask() {
	n := b.target.Width() * b.target.Height()
	if len(b.stencil) != n {
		b.stencil = make([]uint8, n)
	}
	clear(b.stencil)
	b.mask = maskWrite
}

// EndMask implements backend.Backend.
func (b *Backend) EndMask() {
	b.mask = maskTest
}

// DisableMask implements backend.Backend.
func (b *Backend) DisableMask() {
	b.mask = maskOff
}

// Draw implements backend.Backend.
func (b *Backend) Draw(st backend.State, topology gputypes.PrimitiveTopology, vs []backend.Vertex) {
	m := b.current()
	c := b.cov
	c.reset()

	pt := func(i int) (float64, float64) {
		return m.Apply(vs[i].X, vs[i].Y)
	}

	switch topology {
	case gputypes.PrimitiveTopologyTriangleList:
		for i := 0; i+2 < len(vs); i += 3 {
			x0, y0 := pt(i)
			x1, y1 := pt(i + 1)
			x2, y2 := pt(i + 2)
			c.triangle(x0, y0, x1, y1, x2, y2)
		}

	case gputypes.PrimitiveTopologyTriangleStrip:
		for i := 0; i+2 < len(vs); i++ {
			x0, y0 := pt(i)
			x1, y1 := pt(i + 1)
			x2, y2 := pt(i + 2)
			c.triangle(x0, y0, x1, y1, x2, y2)
		}

	case gputypes.PrimitiveTopologyLineStrip:
		for i := 0; i+1 < len(vs); i++ {
			x0, y0 := pt(i)
			x1, y1 := pt(i + 1)
			c.segment(x0, y0, x1, y1, st.LineWidth)
		}

	case gputypes.PrimitiveTopologyLineList:
		for i := 0; i+1 < len(vs); i += 2 {
			x0, y0 := pt(i)
			x1, y1 := pt(i + 1)
			c.segment(x0, y0, x1, y1, st.LineWidth)
		}

	case gputypes.PrimitiveTopologyPointList:
		for i := range vs {
			x, y := pt(i)
			c.point(x, y, st.PointSize, st.PointSmooth)
		}

	default:
		b.fail(fmt.Errorf("software: unsupported topology %v", topology))
		return
	}

	r := c.resolve(b.viewport)
	if r.Empty() {
		return
	}

	if b.mask == maskWrite {
		b.markStencil(r)
		return
	}
	b.fill(r, &st, m)
}

// markStencil sets the mask wherever coverage is at least half.
func (b *Backend) markStencil(r image.Rectangle) {
	w := b.target.Width()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if b.cov.at(x, y) > 0.5 {
				b.stencil[y*w+x] = 1
			}
		}
	}
}

// fill shades and blends every covered pixel of r.
func (b *Backend) fill(r image.Rectangle, st *backend.State, m backend.Affine) {
	if st.Texture != nil {
		if _, ok := st.Texture.(*texture); !ok {
			b.fail(errors.New("software: texture was not created by this backend"))
			return
		}
	}

	sh := newShader(st, m)
	img := b.target.Image()
	w := b.target.Width()

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cov := b.cov.at(x, y)
			if cov == 0 {
				continue
			}
			if b.mask == maskTest && b.stencil[y*w+x] == 0 {
				continue
			}
			i := img.PixOffset(x, y)
			src := sh.source(float64(x)+0.5, float64(y)+0.5, cov)
			b.target.setPixel(i, blend(&st.Blend, src, b.target.pixel(i)))
		}
	}
}

var _ backend.Backend = (*Backend)(nil)
