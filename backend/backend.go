package backend

import (
	"errors"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// Common backend errors.
var (
	// ErrNotRegistered is returned when a requested backend is not registered.
	ErrNotRegistered = errors.New("backend: not registered")

	// ErrEmptyTexture is returned when a texture has no pixels.
	ErrEmptyTexture = errors.New("backend: empty texture")

	// ErrTextureTooLarge is returned when a texture exceeds MaxTextureSize.
	ErrTextureTooLarge = errors.New("backend: texture too large")

	// ErrUnbalancedMatrix is reported by EndFrame when PushMatrix and
	// PopMatrix calls did not pair up during the frame.
	ErrUnbalancedMatrix = errors.New("backend: unbalanced matrix stack")
)

// MaxTextureSize is the largest texture dimension backends must accept.
const MaxTextureSize = 4096

// Vertex is a vertex in object space. Shape vertices always lie in the
// z = 0 plane.
type Vertex struct {
	X, Y, Z float64
}

// Affine is a 2x3 affine matrix {a, b, c, d, e, f} mapping (x, y) to
// (a*x + b*y + c, d*x + e*y + f).
type Affine [6]float64

// IdentityAffine returns the identity transform.
func IdentityAffine() Affine {
	return Affine{1, 0, 0, 0, 1, 0}
}

// Mul returns m * n: the transform applying n first, then m.
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		m[0]*n[0] + m[1]*n[3],
		m[0]*n[1] + m[1]*n[4],
		m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3],
		m[3]*n[1] + m[4]*n[4],
		m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

// Apply transforms the point (x, y).
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// Invert returns the inverse of m and whether m is invertible.
func (m Affine) Invert() (Affine, bool) {
	det := m[0]*m[4] - m[1]*m[3]
	if det == 0 {
		return IdentityAffine(), false
	}
	inv := 1 / det
	return Affine{
		m[4] * inv,
		-m[1] * inv,
		(m[1]*m[5] - m[2]*m[4]) * inv,
		-m[3] * inv,
		m[0] * inv,
		(m[2]*m[3] - m[0]*m[5]) * inv,
	}, true
}

// Plane is an object-linear texture-coordinate generator: the coordinate
// of the object point (x, y) is p[0]*x + p[1]*y + p[2].
type Plane [3]float64

// Eval evaluates the plane at (x, y).
func (p Plane) Eval(x, y float64) float64 {
	return p[0]*x + p[1]*y + p[2]
}

// Texture is an uploaded bitmap owned by a backend.
type Texture interface {
	// Size returns the stored (possibly padded) texture dimensions.
	Size() (width, height int)
}

// Sampler describes how a texture is sampled.
type Sampler struct {
	Wrap   gputypes.AddressMode
	Filter gputypes.FilterMode
}

// Frame describes the output of one display pass.
type Frame struct {
	// Viewport is the device-pixel rectangle drawn into.
	Viewport image.Rectangle

	// Background clears the viewport when the frame begins.
	Background color.NRGBA

	// World is the shape-space rectangle {x0, x1, y0, y1} mapped onto
	// the viewport.
	World [4]float64
}

// Backend is a rasterizer for points, lines and triangles.
//
// Backends are not safe for concurrent use.
type Backend interface {
	// Name returns the backend identifier (e.g., "software").
	Name() string

	// BeginFrame clears the viewport and resets the matrix stack to the
	// frame's projection.
	BeginFrame(f Frame)

	// EndFrame flushes the frame and reports any error recorded since
	// BeginFrame.
	EndFrame() error

	// PushMatrix multiplies m onto the current transform, saving the
	// previous one.
	PushMatrix(m Affine)

	// PopMatrix restores the transform saved by the matching PushMatrix.
	PopMatrix()

	// Draw rasterizes vertices with the given topology under st. The
	// caller may reuse vertices once Draw returns.
	Draw(st State, topology gputypes.PrimitiveTopology, vertices []Vertex)

	// NewTexture uploads img. The caller keeps ownership of img.
	NewTexture(img *image.RGBA) (Texture, error)

	// LineWidthRange returns the supported line widths in pixels.
	LineWidthRange() (minWidth, maxWidth float64)

	// BeginMask starts recording a clip mask; subsequent draws mark the
	// mask instead of producing color.
	BeginMask()

	// EndMask finishes the mask; subsequent draws are clipped to it.
	EndMask()

	// DisableMask turns clipping off.
	DisableMask()
}
