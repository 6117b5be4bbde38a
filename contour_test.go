package swfrender

import (
	"testing"
)

func seg(fill int, pts ...Point) *Path {
	p := &Path{Start: pts[0], RightFill: fill}
	for _, q := range pts[1:] {
		p.Edges = append(p.Edges, StraightEdge(q))
	}
	return p
}

func TestAssembleContours(t *testing.T) {
	closed := seg(1, Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 0))
	top := seg(1, Pt(0, 0), Pt(10, 0), Pt(10, 10))
	bottom := seg(1, Pt(10, 10), Pt(0, 10), Pt(0, 0))
	a := seg(1, Pt(0, 0), Pt(10, 0))
	b1 := seg(1, Pt(10, 0), Pt(20, 0), Pt(10, 10))
	b2 := seg(1, Pt(10, 0), Pt(10, 10))
	c := seg(1, Pt(10, 10), Pt(0, 0))
	back := seg(1, Pt(10, 0), Pt(0, 0))
	tail := seg(1, Pt(0, 0), Pt(5, 5))
	other := seg(2, Pt(10, 10), Pt(0, 0))
	empty := &Path{Start: Pt(3, 3), RightFill: 1}

	tests := []struct {
		name  string
		paths []*Path
		want  [][]*Path
	}{
		{"closed path alone", []*Path{closed}, [][]*Path{{closed}}},
		{"two halves", []*Path{top, bottom}, [][]*Path{{top, bottom}}},
		{"out of order", []*Path{bottom, top}, [][]*Path{{bottom, top}}},
		{"first candidate wins", []*Path{a, b1, b2, c}, [][]*Path{{a, b1, c}, {b2}}},
		{"stops at own start", []*Path{a, back, tail}, [][]*Path{{a, back}, {tail}}},
		{"fill must match", []*Path{top, other}, [][]*Path{{top}, {other}}},
		{"empty skipped", []*Path{empty, closed}, [][]*Path{{closed}}},
		{"open chain kept", []*Path{a}, [][]*Path{{a}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssembleContours(tt.paths)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d contours, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if len(got[i]) != len(tt.want[i]) {
					t.Fatalf("contour %d has %d paths, want %d", i, len(got[i]), len(tt.want[i]))
				}
				for j := range got[i] {
					if got[i][j] != tt.want[i][j] {
						t.Errorf("contour %d path %d = %p, want %p", i, j, got[i][j], tt.want[i][j])
					}
				}
			}
		})
	}
}

func TestAssembleContoursKeepsInput(t *testing.T) {
	top := seg(1, Pt(0, 0), Pt(10, 0), Pt(10, 10))
	bottom := seg(1, Pt(10, 10), Pt(0, 0))
	in := []*Path{top, bottom}
	AssembleContours(in)
	if in[0] != top || in[1] != bottom {
		t.Error("input slice reordered")
	}
}

func TestPathsByFill(t *testing.T) {
	normalized := []Path{{RightFill: 1}, {RightFill: 2}, {RightFill: 1}, {Line: 1}}
	got := pathsByFill(normalized, 1)
	if len(got) != 2 || got[0] != &normalized[0] || got[1] != &normalized[2] {
		t.Errorf("pathsByFill(1) = %v", got)
	}
}
