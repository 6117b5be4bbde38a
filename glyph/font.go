package glyph

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/swfrender"
)

// DefaultCacheSize is the number of outlines a Font keeps.
const DefaultCacheSize = 512

// ErrNoOutline is returned for glyphs without contours, such as a space.
var ErrNoOutline = errors.New("glyph: no outline")

// GlyphID identifies a glyph within a font.
type GlyphID uint16

// Font is a parsed font. It is safe for concurrent use.
type Font struct {
	sf *sfnt.Font
	gt *gtfont.Font

	mu  sync.Mutex
	buf sfnt.Buffer

	outlines *lru.Cache
	shapers  sync.Pool
}

type outlineKey struct {
	gid  GlyphID
	size float64
}

// Parse parses TrueType or OpenType font data.
func Parse(data []byte) (*Font, error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font for shaping: %w", err)
	}
	cache, err := lru.New(DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	return &Font{sf: sf, gt: face.Font, outlines: cache}, nil
}

// Name returns the font's family name, or "" when it has none.
func (f *Font) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, err := f.sf.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.sf.NumGlyphs()
}

// Index returns the glyph for r, or 0 (the missing glyph) when the font
// does not map it.
func (f *Font) Index(r rune) GlyphID {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx, err := f.sf.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// Advance returns the horizontal advance of gid at size.
func (f *Font) Advance(gid GlyphID, size float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	adv, err := f.sf.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), toFixed(size), font.HintingNone)
	if err != nil {
		return 0
	}
	return fromFixed(adv)
}

// Outline returns the contours of gid at size as closed paths with
// RightFill 1. The first path starts a new shape. The returned paths are
// shared with the cache and must not be modified.
func (f *Font) Outline(gid GlyphID, size float64) ([]swfrender.Path, error) {
	key := outlineKey{gid: gid, size: size}
	if v, ok := f.outlines.Get(key); ok {
		//nolint:forcetypeassert // the cache only holds outlines
		return v.([]swfrender.Path), nil
	}

	// Segments share the buffer; convert them before unlocking.
	f.mu.Lock()
	segs, err := f.sf.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), toFixed(size), nil)
	var paths []swfrender.Path
	if err == nil {
		paths = convert(segs)
	}
	f.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("glyph: load glyph %d: %w", gid, err)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: glyph %d", ErrNoOutline, gid)
	}
	f.outlines.Add(key, paths)
	return paths, nil
}

// CachedOutlines returns the number of outlines in the cache.
func (f *Font) CachedOutlines() int {
	return f.outlines.Len()
}

// PurgeCache empties the outline cache.
func (f *Font) PurgeCache() {
	f.outlines.Purge()
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
