// Package backend defines the rasterizing backend contract the shape
// renderer draws through.
//
// A backend understands only points, lines and triangles. Everything else
// (curves, fills with holes, gradients) is resolved by the renderer into
// those primitives plus an explicit State describing color, blending and
// texture-coordinate generation.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime:
//
//	import _ "github.com/gogpu/swfrender/backend/software"
//
//	b, err := backend.Get("software", 800, 600)
//
// # Available Backends
//
//   - "software": CPU rasterizer writing into an *image.RGBA
//   - "recording": records every call for inspection and later playback
//
// # State Discipline
//
// Draw receives the complete State by value, so a backend never has to
// remember color or texture settings between calls. The matrix stack is the
// only state a backend keeps; every PushMatrix must be matched by PopMatrix
// before EndFrame.
package backend
