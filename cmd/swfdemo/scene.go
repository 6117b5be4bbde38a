package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/swfrender"
)

// defaultScene is rendered when no scene file is given.
const defaultScene = `
background = "#f0f0f0"
viewport = [0, 8000, 0, 6000]
edge_smoothing = true

[[fill]]
type = "solid"
color = "#3366cc"

[[fill]]
type = "linear"
matrix = [0.1, 0, 2000, 0, 0.1, 3000]
stops = [
  { offset = 0.0, color = "#ff0000" },
  { offset = 1.0, color = "#ffff00" },
]

[[fill]]
type = "radial"
matrix = [0.08, 0, 6000, 0, 0.08, 3000]
stops = [
  { offset = 0.0, color = "#ffffff" },
  { offset = 1.0, color = "#00884488" },
]

[[line]]
width = 60
color = "#000000"

# A square with a square hole.
[[path]]
start = [500, 500]
edges = [[3500, 500], [3500, 2500], [500, 2500], [500, 500]]
fill1 = 1
line = 1

[[path]]
start = [1500, 1000]
edges = [[1500, 2000], [2500, 2000], [2500, 1000], [1500, 1000]]
fill1 = 1

# A curved lens filled with the linear gradient.
[[path]]
new_shape = true
start = [500, 3000]
edges = [[2000, 1800, 3500, 3000], [2000, 4200, 500, 3000]]
fill1 = 2
line = 1

# A disc-like octagon filled with the radial gradient.
[[path]]
new_shape = true
start = [6000, 1500]
edges = [
  [7500, 1500, 7500, 3000],
  [7500, 4500, 6000, 4500],
  [4500, 4500, 4500, 3000],
  [4500, 1500, 6000, 1500],
]
fill1 = 3

[[text]]
text = "swfrender"
size = 640
x = 500
y = 5400
color = "#222222"
`

// sceneConfig is the TOML scene description. Coordinates are in twips.
type sceneConfig struct {
	Background    string
	Viewport      []float64
	Matrix        []float64
	EdgeSmoothing bool   `toml:"edge_smoothing"`
	Winding       string `toml:"winding"`

	Fills []fillConfig `toml:"fill"`
	Lines []lineConfig `toml:"line"`
	Paths []pathConfig `toml:"path"`
	Texts []textConfig `toml:"text"`
}

type fillConfig struct {
	Type      string
	Color     string
	Matrix    []float64
	Stops     []stopConfig
	Spread    string
	Focal     float64
	LinearRGB bool `toml:"linear_rgb"`
}

type stopConfig struct {
	Offset float64
	Color  string
}

type lineConfig struct {
	Width float64
	Color string
}

type pathConfig struct {
	Start    []float64
	Edges    [][]float64
	Fill0    int  `toml:"fill0"`
	Fill1    int  `toml:"fill1"`
	Line     int  `toml:"line"`
	NewShape bool `toml:"new_shape"`
}

type textConfig struct {
	Text  string
	Size  float64
	X, Y  float64
	Color string
}

// scene is a decoded scene ready to draw.
type scene struct {
	background swfrender.RGBA8
	viewport   [4]float64
	matrix     swfrender.Matrix
	winding    swfrender.WindingRule
	smoothing  bool

	paths []swfrender.Path
	fills []swfrender.FillStyle
	lines []swfrender.LineStyle
	texts []textConfig
}

var errScene = errors.New("swfdemo: invalid scene")

// parseScene decodes a TOML scene. width and height in pixels give the
// default viewport.
func parseScene(data string, width, height int) (*scene, error) {
	var cfg sceneConfig
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("swfdemo: decode scene: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", errScene, undecoded[0].String())
	}
	return cfg.build(width, height)
}

func (cfg *sceneConfig) build(width, height int) (*scene, error) {
	sc := &scene{
		background: swfrender.White,
		viewport: [4]float64{
			0, swfrender.PixelsToTwips(float64(width)),
			0, swfrender.PixelsToTwips(float64(height)),
		},
		matrix:    swfrender.Identity(),
		smoothing: cfg.EdgeSmoothing,
		texts:     cfg.Texts,
	}
	if cfg.Background != "" {
		sc.background = swfrender.ParseHex(cfg.Background)
	}
	if cfg.Viewport != nil {
		if len(cfg.Viewport) != 4 {
			return nil, fmt.Errorf("%w: viewport needs 4 numbers, got %d", errScene, len(cfg.Viewport))
		}
		copy(sc.viewport[:], cfg.Viewport)
	}
	if cfg.Matrix != nil {
		m, err := matrixOf(cfg.Matrix)
		if err != nil {
			return nil, err
		}
		sc.matrix = m
	}

	switch strings.ToLower(cfg.Winding) {
	case "", "odd", "evenodd":
		sc.winding = swfrender.WindingOdd
	case "nonzero":
		sc.winding = swfrender.WindingNonZero
	default:
		return nil, fmt.Errorf("%w: winding %q", errScene, cfg.Winding)
	}

	for i, f := range cfg.Fills {
		fs, err := f.build()
		if err != nil {
			return nil, fmt.Errorf("fill %d: %w", i+1, err)
		}
		sc.fills = append(sc.fills, fs)
	}
	for _, l := range cfg.Lines {
		sc.lines = append(sc.lines, swfrender.LineStyle{Width: l.Width, Color: swfrender.ParseHex(l.Color)})
	}
	for i, p := range cfg.Paths {
		path, err := p.build(len(sc.fills), len(sc.lines))
		if err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}
		sc.paths = append(sc.paths, path)
	}
	return sc, nil
}

func (f *fillConfig) build() (swfrender.FillStyle, error) {
	if f.Type == "" || f.Type == "solid" {
		return &swfrender.SolidFill{Color: swfrender.ParseHex(f.Color)}, nil
	}

	g := &swfrender.GradientFill{Matrix: swfrender.Identity(), Focal: f.Focal}
	switch f.Type {
	case "linear":
		g.Kind = swfrender.GradientLinear
	case "radial":
		g.Kind = swfrender.GradientRadial
	case "focal":
		g.Kind = swfrender.GradientFocal
	default:
		return nil, fmt.Errorf("%w: fill type %q", errScene, f.Type)
	}

	switch f.Spread {
	case "", "pad":
		g.Spread = swfrender.SpreadPad
	case "reflect":
		g.Spread = swfrender.SpreadReflect
	case "repeat":
		g.Spread = swfrender.SpreadRepeat
	default:
		return nil, fmt.Errorf("%w: spread %q", errScene, f.Spread)
	}
	if f.LinearRGB {
		g.Interpolation = swfrender.InterpolationLinearRGB
	}

	if f.Matrix != nil {
		m, err := matrixOf(f.Matrix)
		if err != nil {
			return nil, err
		}
		g.Matrix = m
	}
	if len(f.Stops) == 0 {
		return nil, fmt.Errorf("%w: gradient without stops", errScene)
	}
	for _, s := range f.Stops {
		g.Stops = append(g.Stops, swfrender.GradientStop{Offset: s.Offset, Color: swfrender.ParseHex(s.Color)})
	}
	return g, nil
}

func (p *pathConfig) build(nfills, nlines int) (swfrender.Path, error) {
	if len(p.Start) != 2 {
		return swfrender.Path{}, fmt.Errorf("%w: start needs 2 numbers", errScene)
	}
	for _, idx := range []int{p.Fill0, p.Fill1} {
		if idx < 0 || idx > nfills {
			return swfrender.Path{}, fmt.Errorf("%w: fill index %d out of range 0..%d", errScene, idx, nfills)
		}
	}
	if p.Line < 0 || p.Line > nlines {
		return swfrender.Path{}, fmt.Errorf("%w: line index %d out of range 0..%d", errScene, p.Line, nlines)
	}

	path := swfrender.Path{
		Start:     swfrender.Pt(p.Start[0], p.Start[1]),
		LeftFill:  p.Fill0,
		RightFill: p.Fill1,
		Line:      p.Line,
		NewShape:  p.NewShape,
	}
	for i, e := range p.Edges {
		switch len(e) {
		case 2:
			path.Edges = append(path.Edges, swfrender.StraightEdge(swfrender.Pt(e[0], e[1])))
		case 4:
			path.Edges = append(path.Edges, swfrender.CurveEdge(swfrender.Pt(e[0], e[1]), swfrender.Pt(e[2], e[3])))
		default:
			return swfrender.Path{}, fmt.Errorf("%w: edge %d needs 2 or 4 numbers, got %d", errScene, i, len(e))
		}
	}
	return path, nil
}

func matrixOf(v []float64) (swfrender.Matrix, error) {
	if len(v) != 6 {
		return swfrender.Matrix{}, fmt.Errorf("%w: matrix needs 6 numbers, got %d", errScene, len(v))
	}
	return swfrender.Matrix{A: v[0], B: v[1], C: v[2], D: v[3], E: v[4], F: v[5]}, nil
}
