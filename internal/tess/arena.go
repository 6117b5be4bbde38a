// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tess

import "github.com/gogpu/swfrender/backend"

// handle refers to a vertex of the polygon being tessellated. Non-negative
// handles index the input vertices; negative handles h refer to synthetic
// vertex ^h in the combine arena.
type handle int

func (h handle) synthetic() bool { return h < 0 }

// combineKey identifies the point where an edge crosses a band boundary.
type combineKey struct {
	edge     int
	boundary int
}

// arena owns the vertices synthesized during one Tesselate call.
// Neighbouring trapezoids asking for the same edge/boundary corner share a
// single vertex.
type arena struct {
	verts []backend.Vertex
	index map[combineKey]handle
}

// combine returns the synthetic vertex for key, creating it at v on first
// use.
func (a *arena) combine(key combineKey, v backend.Vertex) handle {
	if h, ok := a.index[key]; ok {
		return h
	}
	if a.index == nil {
		a.index = make(map[combineKey]handle)
	}
	h := ^handle(len(a.verts))
	a.verts = append(a.verts, v)
	a.index[key] = h
	return h
}

// vertex resolves a synthetic handle.
func (a *arena) vertex(h handle) backend.Vertex {
	return a.verts[^h]
}

// len returns the number of live synthetic vertices.
func (a *arena) len() int {
	return len(a.verts)
}

// release frees every synthetic vertex at once. Handles issued before the
// call become invalid.
func (a *arena) release() {
	clear(a.index)
	a.verts = a.verts[:0]
}
