package swfrender

import (
	"image"
	"log/slog"

	"github.com/gogpu/swfrender/backend"
)

// Rect is an axis-aligned rectangle in twips.
type Rect struct {
	Min, Max Point
}

// BeginDisplay starts a frame: the viewport is cleared with bg, or white
// when bg is fully transparent, and the world rectangle x0..x1, y0..y1 in
// twips is mapped onto it.
func (r *Renderer) BeginDisplay(bg RGBA8, viewport image.Rectangle, x0, x1, y0, y1 float64) {
	propagateLogger(r.backend)

	if bg.A == 0 {
		bg = White
	}
	r.backend.BeginFrame(backend.Frame{
		Viewport:   viewport,
		Background: bg.NRGBA(),
		World:      [4]float64{x0, x1, y0, y1},
	})
}

// EndDisplay finishes the frame. A mask left enabled is disabled first.
func (r *Renderer) EndDisplay() {
	if r.masking {
		r.DisableMask()
	}
	if err := r.backend.EndFrame(); err != nil {
		Logger().Error("swfrender: end of frame", slog.String("backend", r.backend.Name()), slog.Any("err", err))
	}
}

// DrawLineStrip draws a thin polyline through coords, in twips, transformed
// by m.
func (r *Renderer) DrawLineStrip(coords []Point, c RGBA8, m Matrix) {
	if len(coords) < 2 {
		return
	}

	r.backend.PushMatrix(m.affine())
	defer r.backend.PopMatrix()

	st := r.state
	st.Color = c.NRGBA()
	r.drawStrip(st, toVertices(coords))
}

// BeginSubmitMask starts drawing a clip mask. Shapes drawn until
// EndSubmitMask define the visible area. Only a single mask level exists;
// submitting a mask while one is active replaces it.
func (r *Renderer) BeginSubmitMask() {
	if r.masking {
		Logger().Warn("swfrender: nested masks are not supported; replacing active mask")
	}
	r.masking = true
	r.backend.BeginMask()
}

// EndSubmitMask finishes the mask; later draws are clipped to it.
func (r *Renderer) EndSubmitMask() {
	r.backend.EndMask()
}

// DisableMask turns clipping off.
func (r *Renderer) DisableMask() {
	r.masking = false
	r.backend.DisableMask()
}

// SetScale sets the device scale applied to line widths and pixel
// conversions.
func (r *Renderer) SetScale(x, y float64) {
	r.xscale = x
	r.yscale = y
}

// Scale returns the device scale.
func (r *Renderer) Scale() (x, y float64) {
	return r.xscale, r.yscale
}

// stageMatrix maps twips to device pixels.
func (r *Renderer) stageMatrix() Matrix {
	return Scale(r.xscale/TwipsPerPixel, r.yscale/TwipsPerPixel)
}

// WorldToPixel converts a rectangle in twips to device pixels. Coordinates
// are truncated and may be negative.
func (r *Renderer) WorldToPixel(rect Rect) image.Rectangle {
	m := r.stageMatrix()
	p0 := m.TransformPoint(rect.Min)
	p1 := m.TransformPoint(rect.Max)
	return image.Rect(int(p0.X), int(p0.Y), int(p1.X), int(p1.Y))
}

// PixelToWorld converts a device pixel position to twips.
func (r *Renderer) PixelToWorld(x, y int) Point {
	return r.stageMatrix().Invert().TransformPoint(Pt(float64(x), float64(y)))
}

// DrawPoly is not implemented and logs the request.
func (r *Renderer) DrawPoly(corners []Point, fill, outline RGBA8, m Matrix, masked bool) {
	logUnimplemented("DrawPoly")
}

// DrawBitmap is not implemented and logs the request.
func (r *Renderer) DrawBitmap(m Matrix, bm *Bitmap, bounds Rect) {
	logUnimplemented("DrawBitmap")
}

// SetAntialiased is not implemented and logs the request.
func (r *Renderer) SetAntialiased(enable bool) {
	logUnimplemented("SetAntialiased")
}

// NewAlphaBitmap would create an alpha-only bitmap. It is not implemented:
// it logs the request and returns nil.
func (r *Renderer) NewAlphaBitmap(width, height int, alpha []byte) *Bitmap {
	logUnimplemented("NewAlphaBitmap")
	return nil
}

func logUnimplemented(op string) {
	Logger().Warn("swfrender: unimplemented", slog.String("op", op))
}
