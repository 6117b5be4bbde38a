// Command swfdemo renders a vector shape scene to a PNG file.
//
// A scene is a TOML file listing fill styles, line styles and paths in
// twips; see defaultScene for the format. Without -scene a built-in scene
// is drawn.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/swfrender"
	"github.com/gogpu/swfrender/backend"
	"github.com/gogpu/swfrender/backend/software"
	"github.com/gogpu/swfrender/glyph"
	"github.com/gogpu/swfrender/recording"
)

func main() {
	var (
		scenePath   = flag.String("scene", "", "TOML scene file (built-in scene when empty)")
		output      = flag.String("output", "swfdemo.png", "output file")
		width       = flag.Int("width", 400, "image width")
		height      = flag.Int("height", 300, "image height")
		backendName = flag.String("backend", backend.NameSoftware, "backend name")
		text        = flag.String("text", "", "extra text drawn below the scene")
		verbose     = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	swfrender.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	data := defaultScene
	if *scenePath != "" {
		b, err := os.ReadFile(*scenePath)
		if err != nil {
			log.Fatalf("Failed to read scene: %v", err)
		}
		data = string(b)
	}

	sc, err := parseScene(data, *width, *height)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	if *text != "" {
		sc.texts = append(sc.texts, textConfig{
			Text:  *text,
			Size:  swfrender.PixelsToTwips(24),
			X:     sc.viewport[0] + swfrender.PixelsToTwips(10),
			Y:     sc.viewport[3] - swfrender.PixelsToTwips(10),
			Color: "#000000",
		})
	}

	b, err := backend.Get(*backendName, *width, *height)
	if err != nil {
		log.Fatalf("Failed to create backend (available: %v): %v", backend.Available(), err)
	}

	if err := render(b, sc, image.Rect(0, 0, *width, *height)); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	img, err := imageOf(b, *width, *height)
	if err != nil {
		log.Fatalf("Failed to produce image: %v", err)
	}
	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Scene saved to %s (%dx%d, %s backend)\n", *output, *width, *height, b.Name())
}

// render draws the scene onto b.
func render(b backend.Backend, sc *scene, viewport image.Rectangle) error {
	r := swfrender.New(b,
		swfrender.WithEdgeSmoothing(sc.smoothing),
		swfrender.WithWindingRule(sc.winding))

	r.BeginDisplay(sc.background, viewport, sc.viewport[0], sc.viewport[1], sc.viewport[2], sc.viewport[3])
	r.DrawShape(swfrender.PathList(sc.paths), sc.matrix, swfrender.IdentityColorTransform(), sc.fills, sc.lines)

	if len(sc.texts) > 0 {
		f, err := glyph.Parse(goregular.TTF)
		if err != nil {
			return err
		}
		for _, t := range sc.texts {
			paths := f.TextPaths(t.Text, t.Size)
			r.DrawGlyph(paths, swfrender.Translate(t.X, t.Y), swfrender.ParseHex(t.Color))
		}
	}

	r.EndDisplay()
	return nil
}

// imageOf returns the pixels drawn by b. A recording is replayed onto a
// software backend first.
func imageOf(b backend.Backend, width, height int) (*image.RGBA, error) {
	switch b := b.(type) {
	case *software.Backend:
		return b.Image(), nil
	case *recording.Recorder:
		rc := b.FinishRecording()
		log.Printf("Recorded %d commands (%d draws)\n", len(rc.Commands()), rc.Count(recording.CmdDraw))
		sw := software.New(width, height)
		if err := rc.Playback(sw); err != nil {
			return nil, err
		}
		return sw.Image(), nil
	default:
		return nil, fmt.Errorf("swfdemo: backend %q has no readable image", b.Name())
	}
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
