package swfrender

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/swfrender/backend"
	"github.com/gogpu/swfrender/recording"
)

func TestNeedsResize(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{4, 4, false},
		{6, 10, false},
		{3, 4, true},
		{4, 5, true},
		{1, 1, false},
		{256, 1, false},
		{255, 1, true},
		{1, 3, true},
	}
	for _, tt := range tests {
		if got := needsResize(tt.w, tt.h); got != tt.want {
			t.Errorf("needsResize(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestNextPow2(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {5, 8}, {64, 64}, {65, 128},
	}
	for _, tt := range tests {
		if got := nextPow2(tt.n); got != tt.want {
			t.Errorf("nextPow2(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestUploadImage(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{4, 6, 4, 6},
		{3, 5, 4, 8},
		{5, 1, 8, 1},
		{6, 3, 8, 4},
	}
	for _, tt := range tests {
		img := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
		got := uploadImage(img)
		if got.Bounds().Dx() != tt.wantW || got.Bounds().Dy() != tt.wantH {
			t.Errorf("uploadImage(%dx%d) = %v, want %dx%d", tt.w, tt.h, got.Bounds(), tt.wantW, tt.wantH)
		}
		if !needsResize(tt.w, tt.h) && got != img {
			t.Errorf("uploadImage(%dx%d) copied an image that needs no resize", tt.w, tt.h)
		}
	}
}

func TestNewBitmapCopies(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 13, 12))
	src.SetNRGBA(10, 10, color.NRGBA{R: 255, A: 255})

	bm := NewBitmap(src)
	if w, h := bm.Size(); w != 3 || h != 2 {
		t.Errorf("Size() = %dx%d, want 3x2", w, h)
	}
	if c := bm.Image().RGBAAt(0, 0); c != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("origin pixel = %v, want red", c)
	}

	src.SetNRGBA(10, 10, color.NRGBA{G: 255, A: 255})
	if c := bm.Image().RGBAAt(0, 0); c.G != 0 {
		t.Error("bitmap shares pixels with its source")
	}
}

func TestBitmapTextureCached(t *testing.T) {
	bm := NewBitmap(image.NewRGBA(image.Rect(0, 0, 3, 3)))
	rec := recording.NewRecorder(10, 10)
	other := recording.NewRecorder(10, 10)

	t1, err := bm.texture(rec)
	if err != nil {
		t.Fatal(err)
	}
	t2, _ := bm.texture(rec)
	if t1 != t2 {
		t.Error("second texture() uploaded again")
	}
	if _, err := bm.texture(other); err != nil {
		t.Fatal(err)
	}

	if n := rec.FinishRecording().Count(recording.CmdNewTexture); n != 1 {
		t.Errorf("uploads to first backend = %d, want 1", n)
	}
	if n := other.FinishRecording().Count(recording.CmdNewTexture); n != 1 {
		t.Errorf("uploads to second backend = %d, want 1", n)
	}

	// The odd-sized bitmap is stretched to 4x4 on upload.
	if w, h := t1.Size(); w != 4 || h != 4 {
		t.Errorf("uploaded size = %dx%d, want 4x4", w, h)
	}
}

func TestBitmapTextureError(t *testing.T) {
	bm := NewBitmap(image.NewRGBA(image.Rect(0, 0, 2, backend.MaxTextureSize*2)))
	_, err := bm.texture(recording.NewRecorder(1, 1))
	if !errors.Is(err, backend.ErrTextureTooLarge) {
		t.Errorf("texture() error = %v, want ErrTextureTooLarge", err)
	}
}
