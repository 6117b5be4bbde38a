package swfrender

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/swfrender/backend"
)

// applyFill resolves fs into st. Solid colors pass through the color
// transform; gradients and bitmaps bind a texture whose coordinates are
// generated from shape-space positions.
func (r *Renderer) applyFill(st *backend.State, fs FillStyle, cx ColorTransform) error {
	switch f := fs.(type) {
	case *SolidFill:
		st.Texture = nil
		st.Color = cx.Apply(f.Color).NRGBA()
		return nil

	case *GradientFill:
		wrap := gputypes.AddressModeClampToEdge
		switch {
		case f.Kind != GradientLinear:
			// Radial spread is baked into the ramp.
		case f.Spread == SpreadRepeat:
			wrap = gputypes.AddressModeRepeat
		case f.Spread == SpreadReflect:
			wrap = gputypes.AddressModeMirrorRepeat
		}
		sampler := backend.Sampler{Wrap: wrap, Filter: gputypes.FilterModeLinear}
		return r.bindTexture(st, f.rampBitmap(), f.textureMatrix(), sampler, cx)

	case *BitmapFill:
		if f.Bitmap == nil {
			return ErrNoBitmap
		}
		sampler := backend.Sampler{Wrap: gputypes.AddressModeRepeat, Filter: gputypes.FilterModeNearest}
		if f.Clipped {
			sampler.Wrap = gputypes.AddressModeClampToEdge
		}
		if f.Smooth {
			sampler.Filter = gputypes.FilterModeLinear
		}
		return r.bindTexture(st, f.Bitmap, f.Matrix.Invert(), sampler, cx)

	default:
		panic(fmt.Sprintf("swfrender: unknown fill style %T", fs))
	}
}

// bindTexture binds bm to st with texture coordinates m*p divided by the
// bitmap's logical size, so [0, 1] always spans the whole bitmap. Texels
// are modulated by the transformed white.
func (r *Renderer) bindTexture(st *backend.State, bm *Bitmap, m Matrix, sampler backend.Sampler, cx ColorTransform) error {
	tex, err := bm.texture(r.backend)
	if err != nil {
		return err
	}
	w, h := bm.Size()
	if w == 0 || h == 0 {
		return fmt.Errorf("swfrender: empty bitmap: %w", backend.ErrEmptyTexture)
	}

	st.Texture = tex
	st.Sampler = sampler
	st.TexGenS = texGenPlane(m.A, m.B, m.C, float64(w))
	st.TexGenT = texGenPlane(m.D, m.E, m.F, float64(h))
	st.Color = cx.Apply(White).NRGBA()
	return nil
}

func texGenPlane(a, b, c, size float64) backend.Plane {
	return backend.Plane{a / size, b / size, c / size}
}

// applyLine resolves ls into st for outlines drawn under the shape matrix m.
// Widths up to one twip draw one pixel wide; wider lines scale with m and
// the device scale and are clamped to what the backend supports.
func (r *Renderer) applyLine(st *backend.State, ls LineStyle, cx ColorTransform, m Matrix) {
	width := 1.0
	if ls.Width > 1 {
		strokeScale := (math.Abs(m.XScale()) + math.Abs(m.YScale())) / 2 *
			(math.Abs(r.xscale) + math.Abs(r.yscale)) / 2
		width = TwipsToPixels(ls.Width * strokeScale)

		lo, hi := r.backend.LineWidthRange()
		switch {
		case width > hi:
			Logger().Warn("swfrender: line width exceeds backend maximum",
				slog.Float64("width", width), slog.Float64("max", hi))
			width = hi
		case width < lo:
			width = lo
		}
	}

	st.Texture = nil
	st.Color = cx.Apply(ls.Color).NRGBA()
	st.LineWidth = width
	st.PointSize = width
	st.LineSmooth = true
}
