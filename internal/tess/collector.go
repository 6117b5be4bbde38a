// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tess

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/swfrender/backend"
)

// Sink receives primitives through a begin/vertex/end protocol.
type Sink interface {
	Begin(topology gputypes.PrimitiveTopology)
	Vertex(v backend.Vertex)
	End()
}

// Batch is one primitive with its vertices.
type Batch struct {
	Topology gputypes.PrimitiveTopology
	Vertices []backend.Vertex
}

// Collector is a Sink that stores the primitives it receives so they can
// be drawn later, possibly more than once.
type Collector struct {
	Batches []Batch

	open bool
}

// Begin implements Sink.
func (c *Collector) Begin(topology gputypes.PrimitiveTopology) {
	if c.open {
		panic("tess: Collector.Begin inside an open primitive")
	}
	c.open = true
	c.Batches = append(c.Batches, Batch{Topology: topology})
}

// Vertex implements Sink.
func (c *Collector) Vertex(v backend.Vertex) {
	if !c.open {
		panic("tess: Collector.Vertex outside a primitive")
	}
	b := &c.Batches[len(c.Batches)-1]
	b.Vertices = append(b.Vertices, v)
}

// End implements Sink.
func (c *Collector) End() {
	if !c.open {
		panic("tess: Collector.End without Begin")
	}
	c.open = false
}

// Reset discards the stored primitives, keeping the allocation.
func (c *Collector) Reset() {
	clear(c.Batches)
	c.Batches = c.Batches[:0]
	c.open = false
}

// Triangles returns the number of triangles described by the stored
// primitives.
func (c *Collector) Triangles() int {
	n := 0
	for _, b := range c.Batches {
		switch b.Topology {
		case gputypes.PrimitiveTopologyTriangleList:
			n += len(b.Vertices) / 3
		case gputypes.PrimitiveTopologyTriangleStrip:
			if len(b.Vertices) >= 3 {
				n += len(b.Vertices) - 2
			}
		}
	}
	return n
}

// TriangleList appends the stored primitives to dst as independent
// triangles, so a whole polygon can be drawn with one call.
func (c *Collector) TriangleList(dst []backend.Vertex) []backend.Vertex {
	for _, b := range c.Batches {
		switch b.Topology {
		case gputypes.PrimitiveTopologyTriangleList:
			dst = append(dst, b.Vertices[:len(b.Vertices)/3*3]...)
		case gputypes.PrimitiveTopologyTriangleStrip:
			for i := 0; i+2 < len(b.Vertices); i++ {
				dst = append(dst, b.Vertices[i], b.Vertices[i+1], b.Vertices[i+2])
			}
		}
	}
	return dst
}
