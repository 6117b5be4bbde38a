// Package glyph provides device-font glyphs as swfrender paths.
//
// A Font wraps a TrueType or OpenType font. Shape positions the glyphs of a
// string with HarfBuzz shaping, and Outline converts a glyph's outline into
// closed paths filled with style 1, ready for Renderer.DrawGlyph:
//
//	f, err := glyph.Parse(goregular.TTF)
//	if err != nil {
//	    return err
//	}
//	paths := f.TextPaths("Hello", 240) // 12 px in twips
//	r.DrawGlyph(paths, swfrender.Translate(200, 400), swfrender.Black)
//
// Outline coordinates use the unit of the size argument, with Y growing
// downward and the origin on the baseline at the pen position. Outlines are
// cached per glyph and size.
package glyph
