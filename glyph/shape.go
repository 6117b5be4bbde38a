package glyph

import (
	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/swfrender"
)

// Glyph is a positioned glyph of a shaped string.
type Glyph struct {
	ID GlyphID
	// Cluster is the index of the first rune the glyph renders.
	Cluster int
	// X and Y are the pen position plus the shaping offset.
	X, Y float64
	// Advance is the horizontal advance after the glyph.
	Advance float64
}

// Shape positions the glyphs of text, left to right, at size. The first
// glyph sits at the origin.
func (f *Font) Shape(text string, size float64) []Glyph {
	if text == "" {
		return nil
	}
	runes := []rune(text)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(f.gt),
		Size:      toFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb, ok := f.shapers.Get().(*shaping.HarfbuzzShaper)
	if !ok {
		hb = &shaping.HarfbuzzShaper{}
	}
	out := hb.Shape(input)
	f.shapers.Put(hb)

	glyphs := make([]Glyph, len(out.Glyphs))
	x := 0.0
	for i, g := range out.Glyphs {
		// go-text offsets grow upward.
		glyphs[i] = Glyph{
			ID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph ids fit in 16 bits
			Cluster: g.TextIndex(),
			X:       x + fromFixed(g.XOffset),
			Y:       -fromFixed(g.YOffset),
			Advance: fromFixed(g.Advance),
		}
		x += glyphs[i].Advance
	}
	return glyphs
}

// TextPaths shapes text and returns the outlines of all its glyphs placed
// along the baseline, as a single shape. Glyphs without an outline are
// skipped.
func (f *Font) TextPaths(text string, size float64) []swfrender.Path {
	var paths []swfrender.Path
	for _, g := range f.Shape(text, size) {
		outline, err := f.Outline(g.ID, size)
		if err != nil {
			continue
		}
		off := swfrender.Pt(g.X, g.Y)
		for _, p := range outline {
			paths = append(paths, translate(p, off))
		}
	}
	for i := range paths {
		paths[i].NewShape = i == 0
	}
	return paths
}

// translate returns a copy of p moved by off.
func translate(p swfrender.Path, off swfrender.Point) swfrender.Path {
	q := p
	q.Start = p.Start.Add(off)
	q.Edges = make([]swfrender.Edge, len(p.Edges))
	for i, e := range p.Edges {
		q.Edges[i] = swfrender.CurveEdge(e.Control.Add(off), e.Anchor.Add(off))
	}
	return q
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
