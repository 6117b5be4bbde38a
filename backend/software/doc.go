// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package software provides a CPU backend that rasterizes triangles, lines
// and points into an *image.RGBA.
//
// Coverage of every draw call is computed with golang.org/x/image/vector;
// primitives sharing an edge are accumulated in one pass so that no seams
// appear between them. Fragments are shaded with the state's flat color or
// with a texture addressed through object-linear texture-coordinate planes,
// then blended into the target with the state's blend factors.
//
// Importing the package registers it as the "software" backend:
//
//	import _ "github.com/gogpu/swfrender/backend/software"
package software

import "github.com/gogpu/swfrender/backend"

func init() {
	backend.Register(backend.NameSoftware, func(width, height int) backend.Backend {
		return New(width, height)
	})
}
