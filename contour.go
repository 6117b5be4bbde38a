package swfrender

import "slices"

// pathsByFill returns pointers to the normalized paths filled with style.
func pathsByFill(normalized []Path, style int) []*Path {
	var paths []*Path
	for i := range normalized {
		if normalized[i].RightFill == style {
			paths = append(paths, &normalized[i])
		}
	}
	return paths
}

// AssembleContours links right-filled paths end to start into closed
// contours. A path that is closed on its own forms a contour by itself.
// Otherwise the chain grows by the first remaining path that starts at the
// chain's terminal point and shares its fill style, until the chain returns
// to its own start or no such path is left.
//
// Well-formed shape data always closes every fill boundary; an open chain is
// returned as is.
func AssembleContours(paths []*Path) [][]*Path {
	work := slices.Clone(paths)
	var contours [][]*Path

	for len(work) > 0 {
		head := work[0]
		work = work[1:]
		if len(head.Edges) == 0 {
			continue
		}

		contour := []*Path{head}
		cur := head
		for !cur.Closed() && cur.End() != head.Start {
			i := findConnecting(cur, work)
			if i < 0 {
				break
			}
			cur = work[i]
			contour = append(contour, cur)
			work = slices.Delete(work, i, i+1)
		}
		contours = append(contours, contour)
	}

	return contours
}

// findConnecting returns the index of the first path in candidates that
// starts where p ends and has the same fill, or -1.
func findConnecting(p *Path, candidates []*Path) int {
	target := p.End()
	for i, c := range candidates {
		if c.Start == target && c.RightFill == p.RightFill && len(c.Edges) > 0 {
			return i
		}
	}
	return -1
}
