package glyph

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/swfrender"
)

// convert turns sfnt segments into closed paths. Cubic segments become two
// quadratic edges each.
func convert(segs sfnt.Segments) []swfrender.Path {
	var (
		paths []swfrender.Path
		cur   *swfrender.Path
	)

	closeCurrent := func() {
		if cur == nil {
			return
		}
		if len(cur.Edges) > 0 {
			if end := cur.End(); end != cur.Start {
				cur.Edges = append(cur.Edges, swfrender.StraightEdge(cur.Start))
			}
			paths = append(paths, *cur)
		}
		cur = nil
	}

	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			closeCurrent()
			cur = &swfrender.Path{Start: point(s.Args[0]), RightFill: 1}

		case sfnt.SegmentOpLineTo:
			if cur == nil {
				continue
			}
			cur.Edges = append(cur.Edges, swfrender.StraightEdge(point(s.Args[0])))

		case sfnt.SegmentOpQuadTo:
			if cur == nil {
				continue
			}
			cur.Edges = append(cur.Edges, swfrender.CurveEdge(point(s.Args[0]), point(s.Args[1])))

		case sfnt.SegmentOpCubeTo:
			if cur == nil {
				continue
			}
			cur.Edges = append(cur.Edges, cubicToQuads(cur.End(), point(s.Args[0]), point(s.Args[1]), point(s.Args[2]))...)
		}
	}
	closeCurrent()

	if len(paths) > 0 {
		paths[0].NewShape = true
	}
	return paths
}

// cubicToQuads splits the cubic p0..p3 at its midpoint and approximates
// each half by one quadratic.
func cubicToQuads(p0, p1, p2, p3 swfrender.Point) []swfrender.Edge {
	p01 := p0.Mid(p1)
	p12 := p1.Mid(p2)
	p23 := p2.Mid(p3)
	p012 := p01.Mid(p12)
	p123 := p12.Mid(p23)
	mid := p012.Mid(p123)

	return []swfrender.Edge{
		swfrender.CurveEdge(quadControl(p0, p01, p012, mid), mid),
		swfrender.CurveEdge(quadControl(mid, p123, p23, p3), p3),
	}
}

// quadControl returns the control point of the quadratic closest to the
// cubic a..d: (3(b+c) - (a+d)) / 4.
func quadControl(a, b, c, d swfrender.Point) swfrender.Point {
	return b.Add(c).Mul(3).Sub(a.Add(d)).Mul(0.25)
}

func point(p fixed.Point26_6) swfrender.Point {
	return swfrender.Pt(fromFixed(p.X), fromFixed(p.Y))
}
