// Package swfrender renders Flash-style vector character shapes onto
// backends that only draw triangles, lines and points.
//
// # Overview
//
// A shape is an ordered list of paths. Each path is a chain of quadratic
// Bezier edges carrying up to two fill style references (one per side) and
// an optional line style reference. Style index 0 means "no style".
//
// The Renderer turns shapes into primitives:
//
//  1. paths are split into subshapes at NewShape boundaries
//  2. Normalize rewrites every path to carry only a right-side fill
//  3. AssembleContours reconnects same-fill paths into closed contours
//  4. FlattenPath approximates each path by line segments
//  5. the contours of each fill are tessellated and drawn with the fill
//     style applied, in ascending style order
//  6. line-styled paths are drawn as line strips with round end points
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/swfrender"
//	    "github.com/gogpu/swfrender/backend/software"
//	)
//
//	sw := software.New(550, 400)
//	r := swfrender.New(sw)
//
//	r.BeginDisplay(swfrender.White, sw.Bounds(), 0, 11000, 0, 8000)
//	r.DrawShape(paths, swfrender.Identity(), swfrender.IdentityColorTransform(), fills, lines)
//	r.EndDisplay()
//
//	img := sw.Image()
//
// # Coordinate System
//
// Shape coordinates are in twips, 20 per pixel. Y grows downward. The
// world rectangle passed to BeginDisplay is mapped onto the viewport.
//
// # Logging
//
// Nothing is logged by default. Use SetLogger to receive warnings about
// clamped line widths, skipped fills and unimplemented requests.
package swfrender
