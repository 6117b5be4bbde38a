package swfrender

// Edge is one quadratic Bezier segment of a Path. The start point is
// implicit: it is the previous edge's Anchor, or the path's Start for the
// first edge.
type Edge struct {
	Control Point
	Anchor  Point
}

// StraightEdge returns a straight edge ending at to.
func StraightEdge(to Point) Edge {
	return Edge{Control: to, Anchor: to}
}

// CurveEdge returns a quadratic edge with control point c ending at to.
func CurveEdge(c, to Point) Edge {
	return Edge{Control: c, Anchor: to}
}

// IsStraightFrom reports whether the edge, starting at start, is a straight
// line: its control point coincides with one of its endpoints.
func (e Edge) IsStraightFrom(start Point) bool {
	return e.Control == e.Anchor || e.Control == start
}

// Path is a directed chain of edges with its style references. Style index
// 0 means "no style"; other values are 1-based indices into the fill or
// line style tables of the character.
type Path struct {
	// Start is the anchor point the first edge starts from.
	Start Point
	Edges []Edge

	// LeftFill and RightFill are the fill styles on either side of the
	// path, relative to its direction.
	LeftFill  int
	RightFill int
	Line      int

	// NewShape marks the first path of a new subshape.
	NewShape bool
}

// End returns the terminal point of the path.
func (p *Path) End() Point {
	if len(p.Edges) == 0 {
		return p.Start
	}
	return p.Edges[len(p.Edges)-1].Anchor
}

// Closed reports whether the path ends where it starts.
func (p *Path) Closed() bool {
	return len(p.Edges) > 0 && p.End() == p.Start
}

// Reverse returns a copy of p walking the same curve in the opposite
// direction, with its fill styles swapped.
//
// Each reversed edge keeps the control point of the original edge it
// retraces. A straight edge gets the new anchor as its control point so it
// stays recognizable as straight.
func (p *Path) Reverse() Path {
	n := len(p.Edges)
	rev := Path{
		Start:     p.End(),
		Edges:     make([]Edge, 0, n),
		LeftFill:  p.RightFill,
		RightFill: p.LeftFill,
		Line:      p.Line,
		NewShape:  p.NewShape,
	}

	for i := n - 1; i >= 0; i-- {
		from := p.Start
		if i > 0 {
			from = p.Edges[i-1].Anchor
		}
		e := p.Edges[i]
		if e.Control == e.Anchor {
			rev.Edges = append(rev.Edges, StraightEdge(from))
			continue
		}
		rev.Edges = append(rev.Edges, CurveEdge(e.Control, from))
	}
	return rev
}

// PathSource supplies the ordered paths of a character shape.
type PathSource interface {
	Paths() []Path
}

// PathList is a PathSource backed by a slice.
type PathList []Path

// Paths implements PathSource.
func (l PathList) Paths() []Path {
	return l
}

// Subshapes splits paths into runs that start at every path flagged
// NewShape. The first path always opens a subshape. The returned slices
// share the backing array of paths.
func Subshapes(paths []Path) [][]Path {
	if len(paths) == 0 {
		return nil
	}
	var subs [][]Path
	start := 0
	for i := 1; i < len(paths); i++ {
		if paths[i].NewShape {
			subs = append(subs, paths[start:i])
			start = i
		}
	}
	return append(subs, paths[start:])
}

// analyzePaths reports whether any path references a fill style and
// whether any references a line style.
func analyzePaths(paths []Path) (haveFill, haveLine bool) {
	for i := range paths {
		if paths[i].LeftFill > 0 || paths[i].RightFill > 0 {
			haveFill = true
			if haveLine {
				return
			}
		}
		if paths[i].Line > 0 {
			haveLine = true
			if haveFill {
				return
			}
		}
	}
	return
}
