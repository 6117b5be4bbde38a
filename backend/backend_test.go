package backend

import (
	"errors"
	"image"
	"math"
	"slices"
	"testing"

	"github.com/gogpu/gputypes"
)

// nullBackend is a minimal Backend used to exercise the registry.
type nullBackend struct {
	name   string
	width  int
	height int
}

func (b *nullBackend) Name() string                                     { return b.name }
func (b *nullBackend) BeginFrame(Frame)                                 {}
func (b *nullBackend) EndFrame() error                                  { return nil }
func (b *nullBackend) PushMatrix(Affine)                                {}
func (b *nullBackend) PopMatrix()                                       {}
func (b *nullBackend) Draw(State, gputypes.PrimitiveTopology, []Vertex) {}
func (b *nullBackend) NewTexture(*image.RGBA) (Texture, error)          { return nil, nil }
func (b *nullBackend) LineWidthRange() (float64, float64)               { return 1, 1 }
func (b *nullBackend) BeginMask()                                       {}
func (b *nullBackend) EndMask()                                         {}
func (b *nullBackend) DisableMask()                                     {}

func registerNull(t *testing.T, name string) {
	t.Helper()
	Register(name, func(w, h int) Backend {
		return &nullBackend{name: name, width: w, height: h}
	})
	t.Cleanup(func() { Unregister(name) })
}

func TestRegistryGet(t *testing.T) {
	registerNull(t, "null-test")

	if !IsRegistered("null-test") {
		t.Fatal("IsRegistered(null-test) = false after Register")
	}
	if !slices.Contains(Available(), "null-test") {
		t.Errorf("Available() = %v, missing null-test", Available())
	}

	b, err := Get("null-test", 32, 16)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	nb := b.(*nullBackend)
	if nb.width != 32 || nb.height != 16 {
		t.Errorf("factory got %dx%d, want 32x16", nb.width, nb.height)
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	_, err := Get("no-such-backend", 1, 1)
	if !errors.Is(err, ErrNotRegistered) {
		t.Errorf("Get(unknown) error = %v, want ErrNotRegistered", err)
	}
}

func TestRegistryDefaultPriority(t *testing.T) {
	registerNull(t, NameRecording)
	if b := Default(8, 8); b == nil || b.Name() != NameRecording {
		t.Fatalf("Default() = %v, want %s", b, NameRecording)
	}

	registerNull(t, NameSoftware)
	if b := Default(8, 8); b == nil || b.Name() != NameSoftware {
		t.Errorf("Default() = %v, want %s", b, NameSoftware)
	}
}

func TestAffineMulApply(t *testing.T) {
	scale := Affine{2, 0, 0, 0, 3, 0}
	shift := Affine{1, 0, 10, 0, 1, 20}

	// Scale first, then shift.
	m := shift.Mul(scale)
	x, y := m.Apply(1, 1)
	if x != 12 || y != 23 {
		t.Errorf("Apply(1,1) = (%v,%v), want (12,23)", x, y)
	}
}

func TestAffineInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Affine
		ok   bool
	}{
		{"identity", IdentityAffine(), true},
		{"scale-translate", Affine{20, 0, 5, 0, -20, 7}, true},
		{"rotation", Affine{0, -1, 3, 1, 0, 4}, true},
		{"singular", Affine{1, 2, 0, 2, 4, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if ok != tt.ok {
				t.Fatalf("Invert() ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			x, y := tt.m.Mul(inv).Apply(3.5, -2)
			if math.Abs(x-3.5) > 1e-9 || math.Abs(y+2) > 1e-9 {
				t.Errorf("m*inv(m) maps (3.5,-2) to (%v,%v)", x, y)
			}
		})
	}
}

func TestPlaneEval(t *testing.T) {
	p := Plane{0.5, 0, 0.25}
	if got := p.Eval(1, 100); got != 0.75 {
		t.Errorf("Eval() = %v, want 0.75", got)
	}
}

func TestDefaultState(t *testing.T) {
	st := DefaultState()
	if st.Blend != StraightAlpha {
		t.Error("DefaultState() blend is not straight alpha")
	}
	if st.Premultiplied() {
		t.Error("DefaultState().Premultiplied() = true")
	}
	if st.Texture != nil {
		t.Error("DefaultState() has a texture bound")
	}
	if st.LineWidth != 1 || st.PointSize != 1 {
		t.Errorf("LineWidth/PointSize = %v/%v, want 1/1", st.LineWidth, st.PointSize)
	}

	st.Blend = PremultipliedAlpha()
	if !st.Premultiplied() {
		t.Error("Premultiplied() = false with premultiplied blend")
	}
}
