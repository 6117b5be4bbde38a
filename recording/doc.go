// Package recording provides a backend that records drawing calls.
//
// A Recorder implements backend.Backend by capturing every call as a typed
// command instead of drawing anything. Commands are stored in a Recording
// and can be inspected or replayed to any other backend.
//
// # Architecture
//
// Commands mirror the backend contract one to one:
//   - Frame commands (BeginFrame, EndFrame)
//   - Matrix commands (PushMatrix, PopMatrix)
//   - Drawing commands (Draw, with a copy of the render state and vertices)
//   - Resource commands (NewTexture)
//   - Mask commands (BeginMask, EndMask, DisableMask)
//
// Texture images are stored in a ResourcePool and referenced by TextureRef.
// Playback uploads each texture to the target backend once and rebinds the
// draws that sample it.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(550, 400)
//	r := swfrender.New(rec)
//	r.BeginDisplay(swfrender.White, image.Rect(0, 0, 550, 400), 0, 11000, 0, 8000)
//	r.DrawShape(paths, swfrender.Identity(), swfrender.IdentityColorTransform(), fills, lines)
//	r.EndDisplay()
//
//	rc := rec.FinishRecording()
//	for _, d := range rc.Draws() {
//	    fmt.Println(d.Topology, len(d.Vertices))
//	}
//	rc.Playback(software.New(550, 400))
//
// Importing the package registers it as the "recording" backend.
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. A Recording is immutable after
// FinishRecording and can be played back from multiple goroutines as long
// as each uses its own target backend.
package recording

import "github.com/gogpu/swfrender/backend"

func init() {
	backend.Register(backend.NameRecording, func(width, height int) backend.Backend {
		return NewRecorder(width, height)
	})
}
