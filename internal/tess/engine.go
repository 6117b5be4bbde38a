// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tess

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/swfrender/backend"
)

// Errors reported by Tesselate. The engine is back in the idle state after
// any of them.
var (
	// ErrNonFinite is returned when a contour vertex is NaN or infinite.
	ErrNonFinite = errors.New("tess: non-finite vertex")

	// ErrTooManyVertices is returned when a polygon exceeds MaxVertices.
	ErrTooManyVertices = errors.New("tess: too many vertices")
)

// MaxVertices is the largest number of input vertices one polygon may have.
const MaxVertices = 1 << 18

// WindingRule decides which regions of a polygon are interior.
type WindingRule int

const (
	// WindingOdd fills regions crossed by an odd number of contours.
	WindingOdd WindingRule = iota

	// WindingNonZero fills regions with a non-zero winding number.
	WindingNonZero
)

// String returns the rule name.
func (r WindingRule) String() string {
	switch r {
	case WindingOdd:
		return "odd"
	case WindingNonZero:
		return "nonzero"
	default:
		return fmt.Sprintf("WindingRule(%d)", int(r))
	}
}

func (r WindingRule) inside(winding int) bool {
	if r == WindingNonZero {
		return winding != 0
	}
	return winding&1 != 0
}

// state is the position of an Engine in its begin/end protocol.
type state int

const (
	stateIdle state = iota
	statePolygonOpen
	stateContourOpen
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case statePolygonOpen:
		return "polygon open"
	case stateContourOpen:
		return "contour open"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Stats describes the most recent Tesselate call.
type Stats struct {
	Contours   int
	Vertices   int
	Edges      int
	Bands      int
	Combined   int
	Primitives int
	Convex     bool
}

// Engine decomposes polygons into triangle primitives.
//
// An Engine is reusable: its buffers are kept between polygons while the
// per-polygon state is reset by BeginPolygon and released by Tesselate.
// It is not safe for concurrent use.
type Engine struct {
	rule  WindingRule
	state state

	// verts holds every input vertex of the polygon; contours holds the
	// end offset of each contour in verts.
	verts    []backend.Vertex
	contours []int
	start    int

	edges []edge
	ys    []float64
	aet   activeEdgeTable
	arena arena
	strip stripBuilder
	stats Stats
}

// NewEngine creates an engine using the odd-even winding rule.
func NewEngine() *Engine {
	return &Engine{rule: WindingOdd}
}

// SetWindingRule selects the winding rule for subsequent polygons.
func (e *Engine) SetWindingRule(r WindingRule) {
	e.rule = r
}

// WindingRule returns the active winding rule.
func (e *Engine) WindingRule() WindingRule {
	return e.rule
}

// Stats returns statistics of the most recent Tesselate call.
func (e *Engine) Stats() Stats {
	return e.stats
}

func (e *Engine) expect(s state, op string) {
	if e.state != s {
		panic(fmt.Sprintf("tess: %s called in state %q, want %q", op, e.state, s))
	}
}

// BeginPolygon starts a new polygon.
func (e *Engine) BeginPolygon() {
	e.expect(stateIdle, "BeginPolygon")
	e.verts = e.verts[:0]
	e.contours = e.contours[:0]
	e.state = statePolygonOpen
}

// BeginContour starts a new contour of the current polygon.
func (e *Engine) BeginContour() {
	e.expect(statePolygonOpen, "BeginContour")
	e.start = len(e.verts)
	e.state = stateContourOpen
}

// Feed appends vertices to the open contour. A vertex equal to its
// predecessor is ignored.
func (e *Engine) Feed(vs ...backend.Vertex) {
	e.expect(stateContourOpen, "Feed")
	for _, v := range vs {
		if n := len(e.verts); n > e.start && e.verts[n-1] == v {
			continue
		}
		e.verts = append(e.verts, v)
	}
}

// EndContour closes the open contour. The closing side from the last
// vertex back to the first is implicit. Contours with fewer than three
// distinct vertices enclose nothing and are discarded.
func (e *Engine) EndContour() {
	e.expect(stateContourOpen, "EndContour")
	if n := len(e.verts); n-e.start > 1 && e.verts[n-1] == e.verts[e.start] {
		e.verts = e.verts[:n-1]
	}
	if len(e.verts)-e.start < 3 {
		e.verts = e.verts[:e.start]
	} else {
		e.contours = append(e.contours, len(e.verts))
	}
	e.state = statePolygonOpen
}

// Tesselate decomposes the polygon and emits its primitives to sink.
// Synthetic vertices created for the decomposition are released before
// Tesselate returns, and the engine is idle again whatever the outcome.
func (e *Engine) Tesselate(sink Sink) error {
	e.expect(statePolygonOpen, "Tesselate")
	defer func() {
		e.arena.release()
		e.state = stateIdle
	}()

	e.stats = Stats{Contours: len(e.contours), Vertices: len(e.verts)}

	if len(e.verts) > MaxVertices {
		return fmt.Errorf("%w: %d > %d", ErrTooManyVertices, len(e.verts), MaxVertices)
	}
	for i, v := range e.verts {
		if !finite(v.X) || !finite(v.Y) || !finite(v.Z) {
			return fmt.Errorf("%w: vertex %d (%v, %v)", ErrNonFinite, i, v.X, v.Y)
		}
	}
	if len(e.contours) == 0 {
		return nil
	}

	if len(e.contours) == 1 && isConvex(e.verts) {
		e.stats.Convex = true
		e.emitFan(sink)
		return nil
	}

	e.buildEdges()
	e.sweep(sink)
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// resolve returns the vertex a handle refers to.
func (e *Engine) resolve(h handle) backend.Vertex {
	if h.synthetic() {
		return e.arena.vertex(h)
	}
	return e.verts[h]
}

// emitFan emits a convex single contour as one triangle list fanned from
// its first vertex.
func (e *Engine) emitFan(sink Sink) {
	sink.Begin(triangleList)
	v0 := e.verts[0]
	for i := 1; i+1 < len(e.verts); i++ {
		sink.Vertex(v0)
		sink.Vertex(e.verts[i])
		sink.Vertex(e.verts[i+1])
	}
	sink.End()
	e.stats.Primitives = 1
}

// isConvex reports whether the closed polygon vs turns consistently in one
// direction and winds around its interior exactly once.
func isConvex(vs []backend.Vertex) bool {
	n := len(vs)
	if n == 3 {
		return true
	}

	sign := 0
	for i := range n {
		a, b, c := vs[i], vs[(i+1)%n], vs[(i+2)%n]
		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		if s := signOf(cross); s != 0 {
			if sign != 0 && s != sign {
				return false
			}
			sign = s
		}
	}
	if sign == 0 {
		return false
	}

	// A convex outline reverses its horizontal and its vertical direction
	// exactly twice around the loop; star polygons reverse more often.
	return directionFlips(vs, func(v backend.Vertex) float64 { return v.X }) <= 2 &&
		directionFlips(vs, func(v backend.Vertex) float64 { return v.Y }) <= 2
}

// directionFlips counts how often the sign of the coordinate delta changes
// walking once around the closed polygon.
func directionFlips(vs []backend.Vertex, coord func(backend.Vertex) float64) int {
	n := len(vs)
	prev := 0
	for i := n - 1; i >= 0 && prev == 0; i-- {
		prev = signOf(coord(vs[(i+1)%n]) - coord(vs[i]))
	}

	flips := 0
	for i := range n {
		d := signOf(coord(vs[(i+1)%n]) - coord(vs[i]))
		if d == 0 {
			continue
		}
		if d != prev {
			flips++
		}
		prev = d
	}
	return flips
}

func signOf(f float64) int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}
