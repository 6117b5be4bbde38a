package swfrender

import "github.com/gogpu/swfrender/internal/tess"

// WindingRule decides which regions enclosed by a fill's contours are
// painted.
type WindingRule = tess.WindingRule

const (
	// WindingOdd paints regions enclosed an odd number of times. This is
	// the rule shape data is authored for.
	WindingOdd = tess.WindingOdd

	// WindingNonZero paints regions with a non-zero winding number.
	WindingNonZero = tess.WindingNonZero
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r := swfrender.New(b,
//	    swfrender.WithTolerance(0.5),
//	    swfrender.WithEdgeSmoothing(true),
//	)
type Option func(*options)

// options holds the optional Renderer configuration.
type options struct {
	tolerance     float64
	edgeSmoothing bool
	winding       WindingRule
	xscale        float64
	yscale        float64
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		tolerance: DefaultTolerance,
		winding:   WindingOdd,
		xscale:    1,
		yscale:    1,
	}
}

// WithTolerance sets the curve flattening tolerance in twips.
// Non-positive values keep DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// WithEdgeSmoothing outlines solid fills without a line style with a thin
// line in the fill color, softening their edges.
func WithEdgeSmoothing(enabled bool) Option {
	return func(o *options) {
		o.edgeSmoothing = enabled
	}
}

// WithWindingRule selects the fill rule used for tessellation.
func WithWindingRule(r WindingRule) Option {
	return func(o *options) {
		o.winding = r
	}
}

// WithScale sets the global device scale applied to line widths.
// See Renderer.SetScale.
func WithScale(x, y float64) Option {
	return func(o *options) {
		o.xscale = x
		o.yscale = y
	}
}
