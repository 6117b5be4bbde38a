package swfrender

// Normalize rewrites paths so that every path carries at most one fill
// style, on its right side.
//
//   - paths without edges are dropped
//   - paths without fill styles and right-filled paths pass through
//   - left-filled paths are replaced by their reverse
//   - paths filled on both sides yield the path with its left fill cleared,
//     followed by its reverse with the (former right) left fill cleared
//
// The reversed half of a two-sided path does not repeat the line style, so
// the outline is stroked once.
func Normalize(paths []Path) []Path {
	normalized := make([]Path, 0, len(paths))

	for i := range paths {
		p := &paths[i]

		switch {
		case len(p.Edges) == 0:
			continue

		case p.LeftFill != 0 && p.RightFill != 0:
			right := *p
			right.LeftFill = 0
			normalized = append(normalized, right)

			left := p.Reverse()
			left.LeftFill = 0
			left.Line = 0
			normalized = append(normalized, left)

		case p.LeftFill != 0:
			left := p.Reverse()
			left.LeftFill = 0
			normalized = append(normalized, left)

		default:
			normalized = append(normalized, *p)
		}
	}

	return normalized
}
