package main

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/swfrender"
	"github.com/gogpu/swfrender/backend/software"
	"github.com/gogpu/swfrender/recording"
)

func TestDefaultScene(t *testing.T) {
	sc, err := parseScene(defaultScene, 400, 300)
	if err != nil {
		t.Fatalf("parseScene(defaultScene) error = %v", err)
	}
	if len(sc.fills) != 3 || len(sc.lines) != 1 || len(sc.paths) != 4 || len(sc.texts) != 1 {
		t.Errorf("scene has %d fills, %d lines, %d paths, %d texts",
			len(sc.fills), len(sc.lines), len(sc.paths), len(sc.texts))
	}
	if _, ok := sc.fills[1].(*swfrender.GradientFill); !ok {
		t.Errorf("fill 2 is %T, want gradient", sc.fills[1])
	}
	if sc.viewport != [4]float64{0, 8000, 0, 6000} {
		t.Errorf("viewport = %v", sc.viewport)
	}
	if got := sc.paths[2].Edges[0]; got != swfrender.CurveEdge(swfrender.Pt(2000, 1800), swfrender.Pt(3500, 3000)) {
		t.Errorf("curve edge = %+v", got)
	}
}

func TestSceneDefaults(t *testing.T) {
	sc, err := parseScene("", 100, 50)
	if err != nil {
		t.Fatal(err)
	}
	if sc.viewport != [4]float64{0, 2000, 0, 1000} {
		t.Errorf("default viewport = %v, want the pixel size in twips", sc.viewport)
	}
	if sc.background != swfrender.White {
		t.Errorf("default background = %v", sc.background)
	}
	if sc.winding != swfrender.WindingOdd {
		t.Errorf("default winding = %v", sc.winding)
	}
}

func TestSceneErrors(t *testing.T) {
	tests := []struct {
		name  string
		scene string
	}{
		{"bad edge", "[[path]]\nstart = [0, 0]\nedges = [[1, 2, 3]]\n"},
		{"fill out of range", "[[path]]\nstart = [0, 0]\nfill1 = 2\n"},
		{"line out of range", "[[path]]\nstart = [0, 0]\nline = 1\n"},
		{"missing start", "[[path]]\nedges = [[1, 2]]\n"},
		{"bad viewport", "viewport = [0, 1]\n"},
		{"bad matrix", "matrix = [1, 0, 0]\n"},
		{"unknown fill type", "[[fill]]\ntype = \"conic\"\n"},
		{"gradient without stops", "[[fill]]\ntype = \"linear\"\n"},
		{"bad spread", "[[fill]]\ntype = \"radial\"\nspread = \"wrap\"\nstops = [{offset = 0.0, color = \"#fff\"}]\n"},
		{"bad winding", "winding = \"clockwise\"\n"},
		{"unknown key", "colour = \"#fff\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseScene(tt.scene, 10, 10)
			if !errors.Is(err, errScene) {
				t.Errorf("parseScene() error = %v, want errScene", err)
			}
		})
	}
}

func TestRenderDefaultScene(t *testing.T) {
	sc, err := parseScene(defaultScene, 400, 300)
	if err != nil {
		t.Fatal(err)
	}

	sw := software.New(400, 300)
	if err := render(sw, sc, image.Rect(0, 0, 400, 300)); err != nil {
		t.Fatalf("render() error = %v", err)
	}

	// Inside the blue square ring, and inside its hole.
	if got := sw.Target().At(50, 40); got.B < 150 || got.R > 100 {
		t.Errorf("ring pixel = %v, want blue", got)
	}
	if got := sw.Target().At(100, 75); got.R < 200 || got.G < 200 || got.B < 200 {
		t.Errorf("hole pixel = %v, want background", got)
	}
}

func TestImageOfRecording(t *testing.T) {
	sc, err := parseScene(defaultScene, 80, 60)
	if err != nil {
		t.Fatal(err)
	}
	rec := recording.NewRecorder(80, 60)
	if err := render(rec, sc, image.Rect(0, 0, 80, 60)); err != nil {
		t.Fatal(err)
	}
	img, err := imageOf(rec, 80, 60)
	if err != nil {
		t.Fatalf("imageOf(recording) error = %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 80, 60) {
		t.Errorf("image bounds = %v", img.Bounds())
	}
}
