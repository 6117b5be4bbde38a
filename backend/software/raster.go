// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package software

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// pointSegments is the number of sides of a smooth point's disc.
const pointSegments = 16

// coverage accumulates the device-space polygons of one draw call and
// resolves them into a per-pixel alpha mask.
type coverage struct {
	ras  *vector.Rasterizer
	mask *image.Alpha

	minX, minY, maxX, maxY float64
	empty                  bool
}

func newCoverage(width, height int) *coverage {
	c := &coverage{
		ras:  vector.NewRasterizer(width, height),
		mask: image.NewAlpha(image.Rect(0, 0, width, height)),
	}
	c.reset()
	return c
}

func (c *coverage) reset() {
	b := c.mask.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	// Reset restores draw.Over; the mask must be overwritten, not
	// accumulated across draw calls.
	c.ras.DrawOp = draw.Src
	c.empty = true
	c.minX, c.minY = math.Inf(1), math.Inf(1)
	c.maxX, c.maxY = math.Inf(-1), math.Inf(-1)
}

func (c *coverage) extend(x, y float64) {
	c.minX = min(c.minX, x)
	c.minY = min(c.minY, y)
	c.maxX = max(c.maxX, x)
	c.maxY = max(c.maxY, y)
}

// polygon adds a closed polygon, oriented so that overlapping shapes of the
// same draw call accumulate instead of cancelling.
func (c *coverage) polygon(xs, ys []float64) {
	n := len(xs)
	if n < 3 {
		return
	}

	area := 0.0
	for i := range n {
		j := (i + 1) % n
		area += xs[i]*ys[j] - xs[j]*ys[i]
	}
	if area == 0 || math.IsNaN(area) {
		return
	}

	order := func(i int) int { return i }
	if area < 0 {
		order = func(i int) int { return n - 1 - i }
	}

	c.ras.MoveTo(float32(xs[order(0)]), float32(ys[order(0)]))
	for i := 1; i < n; i++ {
		k := order(i)
		c.ras.LineTo(float32(xs[k]), float32(ys[k]))
	}
	c.ras.ClosePath()

	for i := range n {
		c.extend(xs[i], ys[i])
	}
	c.empty = false
}

func (c *coverage) triangle(x0, y0, x1, y1, x2, y2 float64) {
	c.polygon([]float64{x0, x1, x2}, []float64{y0, y1, y2})
}

// segment adds a line segment of the given width as a quad.
func (c *coverage) segment(x0, y0, x1, y1, width float64) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	c.polygon(
		[]float64{x0 + nx, x1 + nx, x1 - nx, x0 - nx},
		[]float64{y0 + ny, y1 + ny, y1 - ny, y0 - ny},
	)
}

// point adds a point of the given diameter, as a disc or as a square.
func (c *coverage) point(x, y, size float64, smooth bool) {
	r := size / 2
	if !smooth {
		c.polygon([]float64{x - r, x + r, x + r, x - r}, []float64{y - r, y - r, y + r, y + r})
		return
	}
	xs := make([]float64, pointSegments)
	ys := make([]float64, pointSegments)
	for i := range pointSegments {
		a := 2 * math.Pi * float64(i) / pointSegments
		xs[i] = x + r*math.Cos(a)
		ys[i] = y + r*math.Sin(a)
	}
	c.polygon(xs, ys)
}

// resolve rasterizes the accumulated polygons and returns the pixel
// rectangle, within clip, that may have coverage.
func (c *coverage) resolve(clip image.Rectangle) image.Rectangle {
	if c.empty {
		return image.Rectangle{}
	}
	bounds := image.Rect(
		int(math.Floor(c.minX)), int(math.Floor(c.minY)),
		int(math.Ceil(c.maxX))+1, int(math.Ceil(c.maxY))+1,
	).Intersect(clip).Intersect(c.mask.Bounds())
	if bounds.Empty() {
		return bounds
	}
	c.ras.Draw(c.mask, c.mask.Bounds(), image.Opaque, image.Point{})
	return bounds
}

// at returns the coverage of pixel (x, y) in [0, 1].
func (c *coverage) at(x, y int) float64 {
	return float64(c.mask.Pix[c.mask.PixOffset(x, y)]) / 255
}
