package swfrender

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.tolerance != DefaultTolerance {
		t.Errorf("tolerance = %v, want %v", o.tolerance, DefaultTolerance)
	}
	if o.winding != WindingOdd {
		t.Errorf("winding = %v, want odd", o.winding)
	}
	if o.edgeSmoothing {
		t.Error("edge smoothing enabled by default")
	}
	if o.xscale != 1 || o.yscale != 1 {
		t.Errorf("scale = %v, %v, want 1, 1", o.xscale, o.yscale)
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		check func(t *testing.T, r *Renderer)
	}{
		{
			name: "tolerance",
			opts: []Option{WithTolerance(2)},
			check: func(t *testing.T, r *Renderer) {
				if r.opts.tolerance != 2 {
					t.Errorf("tolerance = %v", r.opts.tolerance)
				}
			},
		},
		{
			name: "non-positive tolerance ignored",
			opts: []Option{WithTolerance(0), WithTolerance(-1)},
			check: func(t *testing.T, r *Renderer) {
				if r.opts.tolerance != DefaultTolerance {
					t.Errorf("tolerance = %v", r.opts.tolerance)
				}
			},
		},
		{
			name: "winding rule",
			opts: []Option{WithWindingRule(WindingNonZero)},
			check: func(t *testing.T, r *Renderer) {
				if r.engine.WindingRule() != WindingNonZero {
					t.Errorf("engine winding = %v", r.engine.WindingRule())
				}
			},
		},
		{
			name: "scale",
			opts: []Option{WithScale(2, 3)},
			check: func(t *testing.T, r *Renderer) {
				if x, y := r.Scale(); x != 2 || y != 3 {
					t.Errorf("Scale() = %v, %v", x, y)
				}
			},
		},
		{
			name: "last wins",
			opts: []Option{WithEdgeSmoothing(true), WithEdgeSmoothing(false)},
			check: func(t *testing.T, r *Renderer) {
				if r.opts.edgeSmoothing {
					t.Error("edge smoothing enabled")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newRecorded(t, tt.opts...)
			tt.check(t, r)
		})
	}
}
