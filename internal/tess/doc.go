// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package tess decomposes polygons made of one or more closed contours into
// triangle primitives.
//
// An Engine accumulates one polygon at a time through an explicit begin/end
// protocol and emits its decomposition to a Sink:
//
//	e.BeginPolygon()
//	for _, c := range contours {
//	    e.BeginContour()
//	    e.Feed(c...)
//	    e.EndContour()
//	}
//	err := e.Tesselate(&collector)
//
// Contours may touch each other or themselves at shared vertices, and may
// nest to form holes. Interior is decided by a winding rule (odd-even by
// default). Corners that the decomposition needs but that are not input
// vertices are synthesized and owned by the engine until Tesselate returns.
//
// Calling the protocol methods out of order is a programming error and
// panics.
package tess
