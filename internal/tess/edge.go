// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tess

import (
	"cmp"
	"slices"
)

// edge is a non-horizontal polygon side normalized to run downward
// (increasing y).
type edge struct {
	// top and bot are the handles of the upper and lower end vertices.
	top, bot handle

	yTop, yBot float64

	// xTop is the X coordinate at yTop.
	xTop float64

	// dxdy is the inverse slope: change in X per unit Y.
	dxdy float64

	// dir is +1 when the contour runs downward along this edge and -1
	// when it runs upward.
	dir int
}

// newEdge creates the edge between vertices a and b of a contour,
// traversed from a to b. It returns false for horizontal edges.
func newEdge(a, b handle, ax, ay, bx, by float64) (edge, bool) {
	dir := 1
	if ay > by {
		a, b = b, a
		ax, bx = bx, ax
		ay, by = by, ay
		dir = -1
	}

	dy := by - ay
	if dy == 0 {
		return edge{}, false
	}

	return edge{
		top:  a,
		bot:  b,
		yTop: ay,
		yBot: by,
		xTop: ax,
		dxdy: (bx - ax) / dy,
		dir:  dir,
	}, true
}

// xAt returns the X coordinate of the edge at y.
func (e *edge) xAt(y float64) float64 {
	return e.xTop + (y-e.yTop)*e.dxdy
}

// spans reports whether the edge covers the whole band [y0, y1].
func (e *edge) spans(y0, y1 float64) bool {
	return e.yTop <= y0 && e.yBot >= y1
}

// crossingY returns the Y coordinate where a and b cross strictly inside
// their common vertical range.
func crossingY(a, b *edge) (float64, bool) {
	lo := max(a.yTop, b.yTop)
	hi := min(a.yBot, b.yBot)
	if lo >= hi {
		return 0, false
	}

	d0 := a.xAt(lo) - b.xAt(lo)
	d1 := a.xAt(hi) - b.xAt(hi)
	if d0 == 0 || d1 == 0 || (d0 < 0) == (d1 < 0) {
		return 0, false
	}

	y := lo + (hi-lo)*d0/(d0-d1)
	if y <= lo || y >= hi {
		return 0, false
	}
	return y, true
}

// activeEdge is an edge crossing the current band, keyed by its X
// position at the band's middle.
type activeEdge struct {
	index int
	x     float64
}

// activeEdgeTable holds the edges spanning one band in left to right order.
type activeEdgeTable struct {
	edges []activeEdge
}

// reset clears the table for the band [y0, y1] and fills it with the
// spanning edges of all.
func (t *activeEdgeTable) reset(all []edge, y0, y1 float64) {
	t.edges = t.edges[:0]
	mid := (y0 + y1) / 2
	for i := range all {
		if all[i].spans(y0, y1) {
			t.edges = append(t.edges, activeEdge{index: i, x: all[i].xAt(mid)})
		}
	}
	slices.SortFunc(t.edges, func(a, b activeEdge) int {
		if c := cmp.Compare(a.x, b.x); c != 0 {
			return c
		}
		return cmp.Compare(a.index, b.index)
	})
}
