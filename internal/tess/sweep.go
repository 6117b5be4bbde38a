// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tess

import (
	"slices"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/swfrender/backend"
)

const (
	triangleList  = gputypes.PrimitiveTopologyTriangleList
	triangleStrip = gputypes.PrimitiveTopologyTriangleStrip
)

// buildEdges converts the contours into downward edges and collects the
// band boundaries: every vertex Y and every Y where two edges cross.
func (e *Engine) buildEdges() {
	e.edges = e.edges[:0]
	e.ys = e.ys[:0]

	first := 0
	for _, end := range e.contours {
		for i := first; i < end; i++ {
			j := i + 1
			if j == end {
				j = first
			}
			a, b := e.verts[i], e.verts[j]
			if ed, ok := newEdge(handle(i), handle(j), a.X, a.Y, b.X, b.Y); ok {
				e.edges = append(e.edges, ed)
			}
			e.ys = append(e.ys, a.Y)
		}
		first = end
	}

	for i := range e.edges {
		for j := i + 1; j < len(e.edges); j++ {
			if y, ok := crossingY(&e.edges[i], &e.edges[j]); ok {
				e.ys = append(e.ys, y)
			}
		}
	}

	slices.Sort(e.ys)
	e.ys = slices.Compact(e.ys)
	e.stats.Edges = len(e.edges)
}

// corner returns the handle of the point where edge i meets boundary k.
// End points of the edge are input vertices; any other boundary crossing is
// a synthetic vertex shared by all trapezoids touching it.
func (e *Engine) corner(i, k int) handle {
	ed := &e.edges[i]
	y := e.ys[k]
	switch y {
	case ed.yTop:
		return ed.top
	case ed.yBot:
		return ed.bot
	}
	return e.arena.combine(combineKey{edge: i, boundary: k}, backend.Vertex{X: ed.xAt(y), Y: y})
}

// sweep walks the bands between consecutive boundaries from top to bottom.
// In every band the spanning edges are ordered left to right and the winding
// rule selects the interior spans, each of which is a trapezoid. Trapezoids
// bounded by the same pair of edges in consecutive bands extend one
// triangle strip.
func (e *Engine) sweep(sink Sink) {
	e.strip.reset()

	for k := 0; k+1 < len(e.ys); k++ {
		y0, y1 := e.ys[k], e.ys[k+1]
		e.aet.reset(e.edges, y0, y1)
		e.stats.Bands++

		winding := 0
		left := -1
		for _, ae := range e.aet.edges {
			was := e.rule.inside(winding)
			winding += e.edges[ae.index].dir
			now := e.rule.inside(winding)

			switch {
			case !was && now:
				left = ae.index
			case was && !now:
				e.strip.add(e, spanKey{left, ae.index}, k)
			}
		}
		e.strip.endBand(e, sink)
	}
	e.strip.flush(e, sink)
	e.stats.Combined = e.arena.len()
}

// spanKey identifies a trapezoid by its left and right edges.
type spanKey struct {
	left, right int
}

// stripBuilder chains trapezoids into triangle strips.
type stripBuilder struct {
	open map[spanKey][]handle
	next map[spanKey][]handle
	// order keeps strip emission deterministic.
	order     []spanKey
	nextOrder []spanKey
}

func (s *stripBuilder) reset() {
	if s.open == nil {
		s.open = make(map[spanKey][]handle)
		s.next = make(map[spanKey][]handle)
	}
	clear(s.open)
	clear(s.next)
	s.order = s.order[:0]
	s.nextOrder = s.nextOrder[:0]
}

// add records the trapezoid between the edges of key in band k.
func (s *stripBuilder) add(e *Engine, key spanKey, k int) {
	lb, rb := e.corner(key.left, k+1), e.corner(key.right, k+1)

	if strip, ok := s.open[key]; ok {
		delete(s.open, key)
		s.next[key] = append(strip, lb, rb)
	} else {
		lt, rt := e.corner(key.left, k), e.corner(key.right, k)
		s.next[key] = []handle{lt, rt, lb, rb}
	}
	s.nextOrder = append(s.nextOrder, key)
}

// endBand emits the strips that were not continued by the band just
// finished and makes that band's strips the open ones.
func (s *stripBuilder) endBand(e *Engine, sink Sink) {
	for _, key := range s.order {
		if strip, ok := s.open[key]; ok {
			e.emitStrip(sink, strip)
		}
	}
	clear(s.open)
	s.open, s.next = s.next, s.open
	s.order, s.nextOrder = s.nextOrder, s.order[:0]
}

// flush emits every strip still open.
func (s *stripBuilder) flush(e *Engine, sink Sink) {
	for _, key := range s.order {
		if strip, ok := s.open[key]; ok {
			e.emitStrip(sink, strip)
		}
	}
	clear(s.open)
	s.order = s.order[:0]
}

func (e *Engine) emitStrip(sink Sink, strip []handle) {
	sink.Begin(triangleStrip)
	for _, h := range strip {
		sink.Vertex(e.resolve(h))
	}
	sink.End()
	e.stats.Primitives++
}
