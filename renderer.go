package swfrender

import (
	"log/slog"
	"slices"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/swfrender/backend"
	"github.com/gogpu/swfrender/internal/tess"
)

// Renderer draws character shapes onto a backend.
//
// Each draw call converts the shape's paths into triangles, lines and
// points: paths are split into subshapes, normalized to carry a single
// right-side fill, reconnected into closed contours per fill style, flattened
// and tessellated. Fills of a subshape are drawn in ascending style order,
// followed by its outlines, followed by the next subshape.
//
// Errors never reach the caller; they are logged and the affected fill is
// skipped. A Renderer is not safe for concurrent use.
type Renderer struct {
	backend backend.Backend
	opts    options

	engine    *tess.Engine
	collector tess.Collector
	triangles []backend.Vertex

	// state is the baseline every draw starts from.
	state backend.State

	xscale, yscale float64
	masking        bool
}

// New creates a renderer drawing onto b.
func New(b backend.Backend, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		backend: b,
		opts:    o,
		engine:  tess.NewEngine(),
		state:   backend.DefaultState(),
		xscale:  o.xscale,
		yscale:  o.yscale,
	}
	r.engine.SetWindingRule(o.winding)
	propagateLogger(b)
	return r
}

// Backend returns the backend the renderer draws onto.
func (r *Renderer) Backend() backend.Backend {
	return r.backend
}

// State returns the baseline render state draws start from and return to.
func (r *Renderer) State() backend.State {
	return r.state
}

// DrawShape draws the paths of src transformed by m, looking up their
// 1-based style indices in fills and lines. Style indices out of range
// panic.
func (r *Renderer) DrawShape(src PathSource, m Matrix, cx ColorTransform, fills []FillStyle, lines []LineStyle) {
	paths := src.Paths()
	if len(paths) == 0 {
		return
	}
	haveFill, haveLine := analyzePaths(paths)
	if !haveFill && !haveLine {
		return
	}

	r.backend.PushMatrix(m.affine())
	defer r.backend.PopMatrix()

	for _, sub := range Subshapes(paths) {
		r.drawSubshape(sub, m, cx, fills, lines)
	}
}

// DrawGlyph draws glyph outline paths in a single solid color. All paths
// form one subshape and any line styles are ignored.
func (r *Renderer) DrawGlyph(paths []Path, m Matrix, c RGBA8) {
	if len(paths) == 0 {
		return
	}

	glyph := make([]Path, len(paths))
	for i, p := range paths {
		p.Line = 0
		p.NewShape = false
		if p.LeftFill != 0 {
			p.LeftFill = 1
		}
		if p.RightFill != 0 {
			p.RightFill = 1
		}
		glyph[i] = p
	}

	r.backend.PushMatrix(m.affine())
	defer r.backend.PopMatrix()

	r.drawSubshape(glyph, m, IdentityColorTransform(), []FillStyle{&SolidFill{Color: c}}, nil)
}

// drawSubshape draws the fills and then the outlines of one subshape.
func (r *Renderer) drawSubshape(paths []Path, m Matrix, cx ColorTransform, fills []FillStyle, lines []LineStyle) {
	normalized := Normalize(paths)
	if len(normalized) == 0 {
		return
	}

	flat := make(map[*Path][]backend.Vertex, len(normalized))
	for i := range normalized {
		p := &normalized[i]
		flat[p] = toVertices(FlattenPath(p, r.opts.tolerance))
	}

	for _, style := range fillIndices(normalized) {
		r.drawFill(normalized, flat, style, fillAt(fills, style), cx)
	}

	r.drawOutlines(normalized, flat, m, cx, fills, lines)
}

// fillIndices returns the distinct right fill styles in ascending order.
func fillIndices(paths []Path) []int {
	var styles []int
	for i := range paths {
		if s := paths[i].RightFill; s > 0 {
			styles = append(styles, s)
		}
	}
	slices.Sort(styles)
	return slices.Compact(styles)
}

// drawFill tessellates the contours of one fill style and draws them.
func (r *Renderer) drawFill(normalized []Path, flat map[*Path][]backend.Vertex, style int, fs FillStyle, cx ColorTransform) {
	contours := AssembleContours(pathsByFill(normalized, style))

	r.engine.BeginPolygon()
	for _, contour := range contours {
		r.engine.BeginContour()
		for _, p := range contour {
			r.engine.Feed(flat[p]...)
		}
		r.engine.EndContour()
	}

	r.collector.Reset()
	if err := r.engine.Tesselate(&r.collector); err != nil {
		Logger().Error("swfrender: tessellation failed",
			slog.Int("fill", style), slog.Any("err", err))
		return
	}

	stats := r.engine.Stats()
	Logger().Debug("swfrender: tessellated fill",
		slog.Int("fill", style),
		slog.Int("contours", stats.Contours),
		slog.Int("vertices", stats.Vertices),
		slog.Int("combined", stats.Combined),
		slog.Int("primitives", stats.Primitives))

	// The scope ends with the function; r.state is never touched.
	st := r.state
	if err := r.applyFill(&st, fs, cx); err != nil {
		Logger().Warn("swfrender: fill style skipped",
			slog.Int("fill", style), slog.Any("err", err))
		return
	}
	if !isSolid(fs) {
		st.Blend = backend.PremultipliedAlpha()
	}

	// Strips are merged so each fill is a single draw call.
	r.triangles = r.collector.TriangleList(r.triangles[:0])
	if len(r.triangles) == 0 {
		return
	}
	r.backend.Draw(st, gputypes.PrimitiveTopologyTriangleList, r.triangles)
}

// drawOutlines strokes the line-styled paths of a subshape. With edge
// smoothing enabled, solid fills without a line style get a one pixel
// outline in their own color.
func (r *Renderer) drawOutlines(normalized []Path, flat map[*Path][]backend.Vertex, m Matrix, cx ColorTransform, fills []FillStyle, lines []LineStyle) {
	for i := range normalized {
		p := &normalized[i]

		st := r.state
		switch {
		case p.Line > 0:
			r.applyLine(&st, lineAt(lines, p.Line), cx, m)

		case r.opts.edgeSmoothing && p.RightFill > 0:
			solid, ok := fillAt(fills, p.RightFill).(*SolidFill)
			if !ok {
				continue
			}
			r.applyLine(&st, LineStyle{Color: solid.Color}, cx, m)

		default:
			continue
		}

		r.drawStrip(st, flat[p])
	}
}

// drawStrip draws a line strip with a round dot on both ends.
func (r *Renderer) drawStrip(st backend.State, verts []backend.Vertex) {
	if len(verts) < 2 {
		return
	}
	r.backend.Draw(st, gputypes.PrimitiveTopologyLineStrip, verts)

	st.PointSmooth = true
	r.backend.Draw(st, gputypes.PrimitiveTopologyPointList,
		[]backend.Vertex{verts[0], verts[len(verts)-1]})
}

func toVertices(pts []Point) []backend.Vertex {
	vs := make([]backend.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = backend.Vertex{X: p.X, Y: p.Y}
	}
	return vs
}
