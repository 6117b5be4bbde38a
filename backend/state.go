package backend

import (
	"image/color"

	"github.com/gogpu/gputypes"
)

// StraightAlpha blends non-premultiplied source colors:
// dst = src*srcAlpha + dst*(1-srcAlpha).
var StraightAlpha = gputypes.BlendState{
	Color: gputypes.BlendComponent{
		SrcFactor: gputypes.BlendFactorSrcAlpha,
		DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
		Operation: gputypes.BlendOperationAdd,
	},
	Alpha: gputypes.BlendComponent{
		SrcFactor: gputypes.BlendFactorOne,
		DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
		Operation: gputypes.BlendOperationAdd,
	},
}

// PremultipliedAlpha returns the blend state for premultiplied source
// colors: dst = src + dst*(1-srcAlpha).
func PremultipliedAlpha() gputypes.BlendState {
	return gputypes.BlendStatePremultiplied()
}

// State is the complete render state of a draw call.
type State struct {
	// Color is the flat color used when Texture is nil. When a texture is
	// bound, the texture color is used instead.
	Color color.NRGBA

	Blend gputypes.BlendState

	// Texture, when non-nil, colors fragments by sampling at the
	// texture coordinates generated by TexGenS and TexGenT from
	// object-space vertex positions.
	Texture Texture
	Sampler Sampler
	TexGenS Plane
	TexGenT Plane

	// LineWidth is the width of line primitives in pixels.
	LineWidth float64

	// PointSize is the diameter of point primitives in pixels.
	PointSize float64

	// PointSmooth renders points as discs instead of squares.
	PointSmooth bool

	// LineSmooth is a hint that line edges may be antialiased.
	LineSmooth bool
}

// DefaultState returns an opaque black, straight-alpha state with unit line
// width and point size.
func DefaultState() State {
	return State{
		Color:     color.NRGBA{A: 0xff},
		Blend:     StraightAlpha,
		Sampler:   Sampler{Wrap: gputypes.AddressModeClampToEdge, Filter: gputypes.FilterModeLinear},
		LineWidth: 1,
		PointSize: 1,
	}
}

// Premultiplied reports whether the state's blend expects premultiplied
// source colors.
func (s *State) Premultiplied() bool {
	return s.Blend.Color.SrcFactor == gputypes.BlendFactorOne
}
