package swfrender

import (
	"errors"
	"fmt"
	"image"
	"math/bits"
	"sync"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/swfrender/backend"
)

// ErrNoBitmap is returned when a bitmap fill has no bitmap attached.
var ErrNoBitmap = errors.New("swfrender: bitmap fill without bitmap")

// Bitmap is an RGBA image usable as a fill. It is uploaded lazily, once per
// backend, and the uploads are cached for the bitmap's lifetime.
//
// Texture coordinates always address the bitmap's logical size; when the
// uploaded texture had to be resized the stretch is invisible to fills.
type Bitmap struct {
	img *image.RGBA

	mu       sync.Mutex
	textures map[backend.Backend]backend.Texture
}

// NewBitmap copies src into a new bitmap.
func NewBitmap(src image.Image) *Bitmap {
	b := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(img, img.Bounds(), src, b.Min, xdraw.Src)
	return &Bitmap{img: img}
}

// newBitmapRGBA wraps img without copying.
func newBitmapRGBA(img *image.RGBA) *Bitmap {
	return &Bitmap{img: img}
}

// Size returns the logical bitmap size in pixels.
func (bm *Bitmap) Size() (width, height int) {
	r := bm.img.Bounds()
	return r.Dx(), r.Dy()
}

// Image returns the bitmap pixels. The image must not be modified.
func (bm *Bitmap) Image() *image.RGBA {
	return bm.img
}

// texture returns the texture of bm on b, uploading it on first use.
func (bm *Bitmap) texture(b backend.Backend) (backend.Texture, error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if tex, ok := bm.textures[b]; ok {
		return tex, nil
	}

	tex, err := b.NewTexture(uploadImage(bm.img))
	if err != nil {
		w, h := bm.Size()
		return nil, fmt.Errorf("swfrender: upload %dx%d bitmap to %s: %w", w, h, b.Name(), err)
	}
	if bm.textures == nil {
		bm.textures = make(map[backend.Backend]backend.Texture)
	}
	bm.textures[b] = tex
	return tex, nil
}

// uploadImage returns img resized to power-of-two dimensions when a
// dimension is odd. A single-row image keeps its height.
func uploadImage(img *image.RGBA) *image.RGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if !needsResize(w, h) {
		return img
	}

	pw, ph := nextPow2(w), h
	if h != 1 {
		ph = nextPow2(h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, pw, ph))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

func needsResize(w, h int) bool {
	if h == 1 {
		return w&1 == 1 && w > 1
	}
	return w&1 == 1 || h&1 == 1
}

// nextPow2 returns the smallest power of two >= n.
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
