package swfrender

import (
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/swfrender/backend"
	"github.com/gogpu/swfrender/backend/software"
	"github.com/gogpu/swfrender/recording"
)

func filled(p Path, right int) Path {
	p.RightFill = right
	return p
}

func topologies(draws []recording.DrawCommand) []gputypes.PrimitiveTopology {
	out := make([]gputypes.PrimitiveTopology, len(draws))
	for i, d := range draws {
		out[i] = d.Topology
	}
	return out
}

func equalTopologies(a, b []gputypes.PrimitiveTopology) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

const (
	triList  = gputypes.PrimitiveTopologyTriangleList
	lineStr  = gputypes.PrimitiveTopologyLineStrip
	pointLst = gputypes.PrimitiveTopologyPointList
)

func TestDrawShapeTriangle(t *testing.T) {
	r, rec := newRecorded(t)
	tri := Path{
		Start:     Pt(0, 0),
		Edges:     []Edge{StraightEdge(Pt(100, 0)), StraightEdge(Pt(0, 100)), StraightEdge(Pt(0, 0))},
		RightFill: 1,
	}
	m := Translate(20, 40)
	r.DrawShape(PathList{tri}, m, IdentityColorTransform(), []FillStyle{&SolidFill{Color: Red}}, nil)

	rc := rec.FinishRecording()
	draws := rc.Draws()
	if len(draws) != 1 {
		t.Fatalf("got %d draws, want 1", len(draws))
	}
	d := draws[0]
	if d.Topology != triList || len(d.Vertices) != 3 {
		t.Errorf("draw = %v with %d vertices, want one triangle", d.Topology, len(d.Vertices))
	}
	if d.State.Color != Red.NRGBA() || d.State.Blend != backend.StraightAlpha || d.State.Texture != nil {
		t.Errorf("state = %+v", d.State)
	}
	if d.Depth != 1 {
		t.Errorf("draw depth = %d, want 1 (shape matrix pushed)", d.Depth)
	}

	push, ok := rc.Commands()[0].(recording.PushMatrixCommand)
	if !ok || push.Matrix != m.affine() {
		t.Errorf("first command = %+v, want push of the shape matrix", rc.Commands()[0])
	}
	if rc.Count(recording.CmdPopMatrix) != 1 {
		t.Errorf("pops = %d, want 1", rc.Count(recording.CmdPopMatrix))
	}
}

func TestDrawShapeNothingToDraw(t *testing.T) {
	r, rec := newRecorded(t)
	r.DrawShape(PathList(nil), Identity(), IdentityColorTransform(), nil, nil)
	r.DrawShape(PathList{square(0, 0, 10, 10)}, Identity(), IdentityColorTransform(), nil, nil)
	if n := len(rec.Commands()); n != 0 {
		t.Errorf("recorded %d commands for unstyled shapes, want 0", n)
	}
}

func TestDrawShapeFillOrder(t *testing.T) {
	r, rec := newRecorded(t)

	// One closed path with a different fill on each side.
	sq := square(0, 0, 100, 100)
	sq.LeftFill, sq.RightFill = 2, 1
	fills := []FillStyle{&SolidFill{Color: Red}, &SolidFill{Color: Blue}}
	r.DrawShape(PathList{sq}, Identity(), IdentityColorTransform(), fills, nil)

	draws := rec.FinishRecording().Draws()
	if len(draws) != 2 {
		t.Fatalf("got %d draws, want 2", len(draws))
	}
	if draws[0].State.Color != Red.NRGBA() || draws[1].State.Color != Blue.NRGBA() {
		t.Errorf("fill colors = %v, %v, want red then blue", draws[0].State.Color, draws[1].State.Color)
	}
	for i, d := range draws {
		if d.Topology != triList || len(d.Vertices) != 6 {
			t.Errorf("draw %d = %v with %d vertices, want a two-triangle fan", i, d.Topology, len(d.Vertices))
		}
	}
}

func TestDrawShapeSubshapesAndOutlines(t *testing.T) {
	r, rec := newRecorded(t)

	first := filled(square(0, 0, 100, 100), 1)
	first.Line = 1
	second := filled(square(200, 0, 300, 100), 1)
	second.Line = 1
	second.NewShape = true

	lines := []LineStyle{{Width: 40, Color: Black}}
	r.DrawShape(PathList{first, second}, Identity(), IdentityColorTransform(), []FillStyle{&SolidFill{Color: Red}}, lines)

	draws := rec.FinishRecording().Draws()
	want := []gputypes.PrimitiveTopology{triList, lineStr, pointLst, triList, lineStr, pointLst}
	if got := topologies(draws); !equalTopologies(got, want) {
		t.Fatalf("topologies = %v, want %v", got, want)
	}

	line, points := draws[1], draws[2]
	if len(line.Vertices) != 5 || line.State.LineWidth != 2 || !line.State.LineSmooth {
		t.Errorf("outline = %d vertices, width %v, smooth %v", len(line.Vertices), line.State.LineWidth, line.State.LineSmooth)
	}
	if len(points.Vertices) != 2 || !points.State.PointSmooth || points.State.PointSize != 2 {
		t.Errorf("end points = %d vertices, smooth %v, size %v", len(points.Vertices), points.State.PointSmooth, points.State.PointSize)
	}
	if points.Vertices[0] != line.Vertices[0] || points.Vertices[1] != line.Vertices[4] {
		t.Errorf("end points %v are not the strip ends", points.Vertices)
	}
	if line.State.Color != Black.NRGBA() {
		t.Errorf("outline color = %v", line.State.Color)
	}
}

func TestDrawShapeLineOnly(t *testing.T) {
	r, rec := newRecorded(t)
	p := Path{
		Start: Pt(0, 0),
		Edges: []Edge{CurveEdge(Pt(50, 100), Pt(100, 0))},
		Line:  1,
	}
	r.DrawShape(PathList{p}, Identity(), IdentityColorTransform(), nil, []LineStyle{{Color: Blue}})

	draws := rec.FinishRecording().Draws()
	if got := topologies(draws); !equalTopologies(got, []gputypes.PrimitiveTopology{lineStr, pointLst}) {
		t.Fatalf("topologies = %v", got)
	}
	if n := len(draws[0].Vertices); n < 3 {
		t.Errorf("curve outline has %d vertices, want a flattened curve", n)
	}
	if draws[0].State.LineWidth != 1 {
		t.Errorf("hairline width = %v", draws[0].State.LineWidth)
	}
}

func TestDrawShapeGradientBlend(t *testing.T) {
	r, rec := newRecorded(t)
	g := &GradientFill{Kind: GradientLinear, Matrix: Scale(0.01, 0.01), Stops: twoStops(Red, Blue)}
	shape := PathList{filled(square(0, 0, 100, 100), 1)}

	r.DrawShape(shape, Identity(), IdentityColorTransform(), []FillStyle{g}, nil)
	r.DrawShape(shape, Identity(), IdentityColorTransform(), []FillStyle{g}, nil)

	rc := rec.FinishRecording()
	for i, d := range rc.Draws() {
		if d.State.Blend != backend.PremultipliedAlpha() {
			t.Errorf("draw %d blend = %+v, want premultiplied", i, d.State.Blend)
		}
		if !d.Texture.IsValid() {
			t.Errorf("draw %d has no texture", i)
		}
	}
	if rc.Count(recording.CmdNewTexture) != 1 {
		t.Errorf("ramp uploaded %d times, want 1", rc.Count(recording.CmdNewTexture))
	}
	if r.State().Blend != backend.StraightAlpha || r.State().Texture != nil {
		t.Errorf("baseline state changed: %+v", r.State())
	}
}

func TestDrawShapeEdgeSmoothing(t *testing.T) {
	g := &GradientFill{Kind: GradientRadial, Matrix: Identity(), Stops: twoStops(Red, Blue)}
	fills := []FillStyle{&SolidFill{Color: Green}, g}
	shape := PathList{filled(square(0, 0, 100, 100), 1), filled(square(200, 0, 300, 100), 2)}

	r, rec := newRecorded(t, WithEdgeSmoothing(true))
	r.DrawShape(shape, Identity(), IdentityColorTransform(), fills, nil)

	draws := rec.FinishRecording().Draws()
	want := []gputypes.PrimitiveTopology{triList, triList, lineStr, pointLst}
	if got := topologies(draws); !equalTopologies(got, want) {
		t.Fatalf("topologies = %v, want %v", got, want)
	}
	if draws[2].State.Color != Green.NRGBA() || draws[2].State.LineWidth != 1 {
		t.Errorf("smoothing outline = %v width %v", draws[2].State.Color, draws[2].State.LineWidth)
	}

	r, rec = newRecorded(t)
	r.DrawShape(shape, Identity(), IdentityColorTransform(), fills, nil)
	if n := len(rec.FinishRecording().Draws()); n != 2 {
		t.Errorf("without smoothing got %d draws, want 2", n)
	}
}

func TestDrawGlyph(t *testing.T) {
	r, rec := newRecorded(t)
	p := square(0, 0, 100, 100)
	p.LeftFill = 3
	p.Line = 2
	hole := square(25, 25, 75, 75)
	hole.RightFill = 5
	hole.NewShape = true

	paths := []Path{p, hole}
	r.DrawGlyph(paths, Translate(10, 10), Blue)
	r.DrawGlyph(nil, Identity(), Blue)

	draws := rec.FinishRecording().Draws()
	if len(draws) == 0 {
		t.Fatal("no draws")
	}
	for i, d := range draws {
		if d.Topology == lineStr || d.Topology == pointLst {
			t.Errorf("draw %d is an outline", i)
		}
		if d.State.Color != Blue.NRGBA() {
			t.Errorf("draw %d color = %v", i, d.State.Color)
		}
	}
	if paths[0].LeftFill != 3 || paths[0].Line != 2 || !paths[1].NewShape {
		t.Error("caller's paths modified")
	}
}

func TestDrawShapeTessellationError(t *testing.T) {
	buf := captureLogs(t)
	r, rec := newRecorded(t)

	bad := filled(square(0, 0, 100, 100), 1)
	bad.Edges[1] = StraightEdge(Pt(math.Inf(1), 100))
	r.DrawShape(PathList{bad}, Identity(), IdentityColorTransform(), []FillStyle{&SolidFill{Color: Red}}, nil)

	if n := len(rec.FinishRecording().Draws()); n != 0 {
		t.Errorf("got %d draws for a non-finite shape", n)
	}
	if !strings.Contains(buf.String(), "tessellation failed") {
		t.Errorf("no error logged: %q", buf.String())
	}
}

func TestDrawShapeSkipsBrokenFill(t *testing.T) {
	buf := captureLogs(t)
	r, rec := newRecorded(t)

	shape := PathList{filled(square(0, 0, 100, 100), 1), filled(square(200, 0, 300, 100), 2)}
	r.DrawShape(shape, Identity(), IdentityColorTransform(), []FillStyle{&BitmapFill{}, &SolidFill{Color: Red}}, nil)

	draws := rec.FinishRecording().Draws()
	if len(draws) != 1 || draws[0].State.Color != Red.NRGBA() {
		t.Errorf("draws = %d, want only the solid fill", len(draws))
	}
	if !strings.Contains(buf.String(), "fill style skipped") {
		t.Errorf("no warning logged: %q", buf.String())
	}
}

func TestDrawShapeStyleIndexPanics(t *testing.T) {
	r, _ := newRecorded(t)
	defer func() {
		if recover() == nil {
			t.Error("out-of-range fill index did not panic")
		}
	}()
	r.DrawShape(PathList{filled(square(0, 0, 10, 10), 2)}, Identity(), IdentityColorTransform(),
		[]FillStyle{&SolidFill{}}, nil)
}

func TestFillIndices(t *testing.T) {
	got := fillIndices([]Path{{RightFill: 3}, {RightFill: 1}, {}, {RightFill: 3}, {RightFill: 2}})
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("fillIndices() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fillIndices() = %v, want %v", got, want)
		}
	}
}

func TestRenderDonutPixels(t *testing.T) {
	for _, rule := range []WindingRule{WindingOdd, WindingNonZero} {
		t.Run(rule.String(), func(t *testing.T) {
			sw := software.New(20, 20)
			r := New(sw, WithWindingRule(rule))

			outer := filled(square(0, 0, 400, 400), 1)
			// The hole runs the other way so both rules leave it empty.
			inner := square(100, 100, 300, 300)
			hole := inner.Reverse()
			hole.LeftFill, hole.RightFill = 0, 1

			r.BeginDisplay(White, image.Rect(0, 0, 20, 20), 0, 400, 0, 400)
			r.DrawShape(PathList{outer, hole}, Identity(), IdentityColorTransform(), []FillStyle{&SolidFill{Color: Red}}, nil)
			r.EndDisplay()

			red := color.RGBA{255, 0, 0, 255}
			white := color.RGBA{255, 255, 255, 255}
			for _, p := range []image.Point{{2, 2}, {17, 10}, {10, 18}} {
				if got := sw.Target().At(p.X, p.Y); got != red {
					t.Errorf("ring pixel %v = %v, want red", p, got)
				}
			}
			for _, p := range []image.Point{{10, 10}, {6, 6}, {13, 13}} {
				if got := sw.Target().At(p.X, p.Y); got != white {
					t.Errorf("hole pixel %v = %v, want white", p, got)
				}
			}
		})
	}
}

func TestRenderGradientPixels(t *testing.T) {
	sw := software.New(40, 4)
	r := New(sw)

	// The gradient square scaled onto 0..800 twips horizontally.
	g := &GradientFill{
		Kind:   GradientLinear,
		Matrix: Translate(400, 0).Multiply(Scale(400.0/gradientSquare, 1)),
		Stops:  twoStops(Red, Blue),
	}
	r.BeginDisplay(White, image.Rect(0, 0, 40, 4), 0, 800, 0, 80)
	r.DrawShape(PathList{filled(square(0, 0, 800, 80), 1)}, Identity(), IdentityColorTransform(), []FillStyle{g}, nil)
	r.EndDisplay()

	left := sw.Target().At(0, 2)
	right := sw.Target().At(39, 2)
	mid := sw.Target().At(20, 2)
	if left.R < 240 || left.B > 15 {
		t.Errorf("left = %v, want red", left)
	}
	if right.B < 240 || right.R > 15 {
		t.Errorf("right = %v, want blue", right)
	}
	if mid.R < 100 || mid.R > 155 || mid.B < 100 || mid.B > 155 {
		t.Errorf("middle = %v, want a red-blue mix", mid)
	}
}

func TestDrawShapeOneDrawPerFill(t *testing.T) {
	r, rec := newRecorded(t)

	// A ring needs the general sweep, which emits many strips.
	outer := filled(square(0, 0, 400, 400), 1)
	inner := square(100, 100, 300, 300)
	hole := inner.Reverse()
	hole.LeftFill, hole.RightFill = 0, 1
	ring := PathList{outer, hole}
	r.DrawShape(ring, Identity(), IdentityColorTransform(), []FillStyle{&SolidFill{Color: Red}}, nil)

	draws := rec.FinishRecording().Draws()
	if len(draws) != 1 {
		t.Fatalf("got %d draws for one fill, want 1", len(draws))
	}
	if d := draws[0]; d.Topology != triList || len(d.Vertices) == 0 || len(d.Vertices)%3 != 0 {
		t.Errorf("fill draw = %v with %d vertices, want a triangle list", d.Topology, len(d.Vertices))
	}
}

func TestRenderFillThenOutline(t *testing.T) {
	sw := software.New(20, 20)
	r := New(sw)

	outer := filled(square(40, 40, 360, 360), 1)
	outer.Line = 1
	inner := square(140, 140, 260, 260)
	hole := inner.Reverse()
	hole.LeftFill, hole.RightFill = 0, 1
	hole.Line = 1

	r.BeginDisplay(White, image.Rect(0, 0, 20, 20), 0, 400, 0, 400)
	r.DrawShape(PathList{outer, hole}, Identity(), IdentityColorTransform(),
		[]FillStyle{&SolidFill{Color: Blue}}, []LineStyle{{Width: 20, Color: Black}})
	r.EndDisplay()

	blue := color.RGBA{0, 0, 255, 255}
	white := color.RGBA{255, 255, 255, 255}
	for _, p := range []image.Point{{4, 10}, {10, 4}, {15, 10}, {10, 15}, {4, 4}} {
		if got := sw.Target().At(p.X, p.Y); got != blue {
			t.Errorf("ring pixel %v = %v, want blue", p, got)
		}
	}
	for _, p := range []image.Point{{10, 10}, {0, 0}, {19, 19}} {
		if got := sw.Target().At(p.X, p.Y); got != white {
			t.Errorf("pixel %v = %v, want white", p, got)
		}
	}
	if got := sw.Target().At(2, 10); got.B > 200 && got.R < 50 {
		t.Errorf("outline pixel (2,10) = %v, want darkened", got)
	}
}
