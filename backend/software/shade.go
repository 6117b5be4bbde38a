// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package software

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/swfrender/backend"
)

// shader computes fragment colors for one draw call.
type shader struct {
	st      *backend.State
	tex     *texture
	inverse backend.Affine
	premul  bool
	color   [4]float64
}

func newShader(st *backend.State, current backend.Affine) *shader {
	s := &shader{st: st, premul: st.Premultiplied()}
	s.color = [4]float64{
		float64(st.Color.R) / 255,
		float64(st.Color.G) / 255,
		float64(st.Color.B) / 255,
		float64(st.Color.A) / 255,
	}
	if t, ok := st.Texture.(*texture); ok && t != nil {
		s.tex = t
		s.inverse, _ = current.Invert()
	}
	return s
}

// source returns the fragment color at device pixel center (x, y) with
// coverage cov applied, in the representation the blend state expects:
// premultiplied for premultiplied blending, straight otherwise.
func (s *shader) source(x, y, cov float64) [4]float64 {
	var c [4]float64

	if s.tex != nil {
		ox, oy := s.inverse.Apply(x, y)
		u := s.st.TexGenS.Eval(ox, oy)
		v := s.st.TexGenT.Eval(ox, oy)
		t := s.tex.sample(u, v, s.st.Sampler)

		// Modulate the premultiplied texel by the straight state color.
		m := s.color
		c = [4]float64{t[0] * m[0] * m[3], t[1] * m[1] * m[3], t[2] * m[2] * m[3], t[3] * m[3]}
		if !s.premul && c[3] > 0 {
			c[0] /= c[3]
			c[1] /= c[3]
			c[2] /= c[3]
		}
	} else {
		c = s.color
		if s.premul {
			c[0] *= c[3]
			c[1] *= c[3]
			c[2] *= c[3]
		}
	}

	if s.premul {
		for k := range 4 {
			c[k] *= cov
		}
	} else {
		c[3] *= cov
	}
	return c
}

// blend combines src and the premultiplied dst with the state's blend
// factors.
func blend(b *gputypes.BlendState, src, dst [4]float64) [4]float64 {
	sa := src[3]
	cs := factor(b.Color.SrcFactor, sa)
	cd := factor(b.Color.DstFactor, sa)
	as := factor(b.Alpha.SrcFactor, sa)
	ad := factor(b.Alpha.DstFactor, sa)

	return [4]float64{
		src[0]*cs + dst[0]*cd,
		src[1]*cs + dst[1]*cd,
		src[2]*cs + dst[2]*cd,
		src[3]*as + dst[3]*ad,
	}
}

// factor evaluates a blend factor depending only on the source alpha.
// Unsupported factors act as One.
func factor(f gputypes.BlendFactor, srcAlpha float64) float64 {
	switch f {
	case gputypes.BlendFactorZero:
		return 0
	case gputypes.BlendFactorSrcAlpha:
		return srcAlpha
	case gputypes.BlendFactorOneMinusSrcAlpha:
		return 1 - srcAlpha
	default:
		return 1
	}
}
