package swfrender

import "iter"

// DefaultTolerance is the default flattening tolerance in twips. It bounds
// the Manhattan distance between the chord midpoint and the curve midpoint
// of every emitted segment.
const DefaultTolerance = 0.1

// maxFlattenDepth caps subdivision so that non-finite input cannot recurse
// forever. 2^16 segments per edge is far beyond any visible difference.
const maxFlattenDepth = 16

// FlattenQuad returns the line-segment end points approximating the
// quadratic Bezier curve from start through control to end. The start point
// itself is not emitted; the last point emitted is always end.
//
// The sequence is computed lazily and may be iterated any number of times.
// A non-positive tolerance selects DefaultTolerance.
func FlattenQuad(start, control, end Point, tolerance float64) iter.Seq[Point] {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return func(yield func(Point) bool) {
		if control == start || control == end {
			yield(end)
			return
		}
		flattenQuadRec(start, control, end, tolerance, 0, yield)
	}
}

// flattenQuadRec recursively subdivides a quadratic Bezier curve.
// It returns false once yield asks to stop.
func flattenQuadRec(p0, p1, p2 Point, tolerance float64, depth int, yield func(Point) bool) bool {
	// Midpoint of the chord and midpoint of the curve.
	mid := p0.Mid(p2)
	q := mid.Mid(p1)

	if depth >= maxFlattenDepth || mid.Manhattan(q) < tolerance {
		return yield(p2)
	}

	if !flattenQuadRec(p0, p0.Mid(p1), q, tolerance, depth+1, yield) {
		return false
	}
	return flattenQuadRec(q, p1.Mid(p2), p2, tolerance, depth+1, yield)
}

// FlattenPath approximates the edge chain of p by a polyline. The first
// point is p.Start; each edge contributes its flattened points, ending at
// the edge's anchor.
func FlattenPath(p *Path, tolerance float64) []Point {
	points := make([]Point, 0, len(p.Edges)+1)
	points = append(points, p.Start)

	from := p.Start
	for _, e := range p.Edges {
		if e.IsStraightFrom(from) {
			points = append(points, e.Anchor)
		} else {
			for pt := range FlattenQuad(from, e.Control, e.Anchor, tolerance) {
				points = append(points, pt)
			}
		}
		from = e.Anchor
	}
	return points
}
