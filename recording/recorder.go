package recording

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/swfrender/backend"
)

// Default line width range reported by a Recorder.
const (
	DefaultMinLineWidth = 1
	DefaultMaxLineWidth = 32
)

// Recorder captures backend calls as commands. Use FinishRecording to
// obtain an immutable Recording that can be replayed to other backends.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	rec.BeginFrame(frame)
//	rec.Draw(st, gputypes.PrimitiveTopologyTriangleList, verts)
//	rec.EndFrame()
//	rc := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool

	depth              int
	minWidth, maxWidth float64
	err                error

	logger *slog.Logger
}

// texture is the handle a Recorder returns from NewTexture.
type texture struct {
	ref           TextureRef
	width, height int
}

// Size implements backend.Texture.
func (t *texture) Size() (int, int) { return t.width, t.height }

// NewRecorder creates a Recorder for the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
		minWidth:  DefaultMinLineWidth,
		maxWidth:  DefaultMaxLineWidth,
		logger:    slog.New(slog.DiscardHandler),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int { return r.height }

// Name implements backend.Backend.
func (r *Recorder) Name() string { return backend.NameRecording }

// SetLogger sets the logger used for command tracing.
func (r *Recorder) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	r.logger = l
}

// SetLineWidthRange sets the range reported by LineWidthRange.
func (r *Recorder) SetLineWidthRange(lo, hi float64) {
	r.minWidth, r.maxWidth = lo, hi
}

// Commands returns the commands recorded so far.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// FinishRecording returns a Recording of all commands so far and starts a
// fresh one.
func (r *Recorder) FinishRecording() *Recording {
	rc := &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
	r.commands = make([]Command, 0, 64)
	r.resources = NewResourcePool()
	r.depth = 0
	return rc
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
	r.logger.Debug("recording: command", slog.String("cmd", c.Type().String()))
}

// BeginFrame implements backend.Backend.
func (r *Recorder) BeginFrame(f backend.Frame) {
	r.depth = 0
	r.err = nil
	r.record(BeginFrameCommand{Frame: f})
}

// EndFrame implements backend.Backend. It reports unbalanced matrix pushes.
func (r *Recorder) EndFrame() error {
	r.record(EndFrameCommand{})
	if r.depth != 0 && r.err == nil {
		r.err = fmt.Errorf("%w: depth %d at end of frame", backend.ErrUnbalancedMatrix, r.depth)
	}
	err := r.err
	r.err = nil
	r.depth = 0
	return err
}

// PushMatrix implements backend.Backend.
func (r *Recorder) PushMatrix(m backend.Affine) {
	r.depth++
	r.record(PushMatrixCommand{Matrix: m})
}

// PopMatrix implements backend.Backend.
func (r *Recorder) PopMatrix() {
	if r.depth == 0 {
		if r.err == nil {
			r.err = fmt.Errorf("%w: pop without push", backend.ErrUnbalancedMatrix)
		}
		return
	}
	r.depth--
	r.record(PopMatrixCommand{})
}

// Depth returns the current matrix stack depth.
func (r *Recorder) Depth() int { return r.depth }

// Draw implements backend.Backend.
func (r *Recorder) Draw(st backend.State, topology gputypes.PrimitiveTopology, vs []backend.Vertex) {
	ref := TextureRef(InvalidRef)
	if t, ok := st.Texture.(*texture); ok {
		ref = t.ref
	}
	r.record(DrawCommand{
		State:    st,
		Texture:  ref,
		Topology: topology,
		Vertices: append([]backend.Vertex(nil), vs...),
		Depth:    r.depth,
	})
}

// NewTexture implements backend.Backend. The image is validated with the
// same limits a drawing backend applies.
func (r *Recorder) NewTexture(img *image.RGBA) (backend.Texture, error) {
	if img == nil || img.Rect.Empty() {
		return nil, backend.ErrEmptyTexture
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w > backend.MaxTextureSize || h > backend.MaxTextureSize {
		return nil, fmt.Errorf("%w: %dx%d", backend.ErrTextureTooLarge, w, h)
	}
	ref := r.resources.AddTexture(img)
	r.record(NewTextureCommand{Texture: ref})
	return &texture{ref: ref, width: w, height: h}, nil
}

// LineWidthRange implements backend.Backend.
func (r *Recorder) LineWidthRange() (float64, float64) {
	return r.minWidth, r.maxWidth
}

// BeginMask implements backend.Backend.
func (r *Recorder) BeginMask() { r.record(BeginMaskCommand{}) }

// EndMask implements backend.Backend.
func (r *Recorder) EndMask() { r.record(EndMaskCommand{}) }

// DisableMask implements backend.Backend.
func (r *Recorder) DisableMask() { r.record(DisableMaskCommand{}) }

// Recording is an immutable container for recorded commands.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command { return r.commands }

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool { return r.resources }

// Draws returns the draw commands in recording order.
func (r *Recording) Draws() []DrawCommand {
	var draws []DrawCommand
	for _, c := range r.commands {
		if d, ok := c.(DrawCommand); ok {
			draws = append(draws, d)
		}
	}
	return draws
}

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording to b. Textures are uploaded to b when
// their NewTexture command is reached; draws sampling a texture that
// failed to upload are skipped. Errors from uploads and from EndFrame are
// joined.
func (r *Recording) Playback(b backend.Backend) error {
	var errs []error
	textures := make(map[TextureRef]backend.Texture)

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case BeginFrameCommand:
			b.BeginFrame(c.Frame)
		case EndFrameCommand:
			if err := b.EndFrame(); err != nil {
				errs = append(errs, err)
			}
		case PushMatrixCommand:
			b.PushMatrix(c.Matrix)
		case PopMatrixCommand:
			b.PopMatrix()
		case NewTextureCommand:
			t, err := b.NewTexture(r.resources.Texture(c.Texture))
			if err != nil {
				errs = append(errs, fmt.Errorf("recording: texture %d: %w", c.Texture, err))
				continue
			}
			textures[c.Texture] = t
		case DrawCommand:
			st := c.State
			if c.Texture.IsValid() {
				t, ok := textures[c.Texture]
				if !ok {
					continue
				}
				st.Texture = t
			}
			b.Draw(st, c.Topology, c.Vertices)
		case BeginMaskCommand:
			b.BeginMask()
		case EndMaskCommand:
			b.EndMask()
		case DisableMaskCommand:
			b.DisableMask()
		}
	}
	return errors.Join(errs...)
}

var _ backend.Backend = (*Recorder)(nil)
