package recording

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/swfrender/backend"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// Frame commands
	CmdBeginFrame CommandType = iota // Begin a frame
	CmdEndFrame                      // End a frame

	// Matrix commands
	CmdPushMatrix // Push a transform
	CmdPopMatrix  // Pop a transform

	// Drawing commands
	CmdDraw       // Draw primitives
	CmdNewTexture // Upload a texture

	// Mask commands
	CmdBeginMask   // Start drawing the mask
	CmdEndMask     // Start clipping to the mask
	CmdDisableMask // Stop clipping
)

var commandTypeNames = [...]string{
	CmdBeginFrame:  "BeginFrame",
	CmdEndFrame:    "EndFrame",
	CmdPushMatrix:  "PushMatrix",
	CmdPopMatrix:   "PopMatrix",
	CmdDraw:        "Draw",
	CmdNewTexture:  "NewTexture",
	CmdBeginMask:   "BeginMask",
	CmdEndMask:     "EndMask",
	CmdDisableMask: "DisableMask",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// TextureRef is a reference to a texture image in the resource pool.
type TextureRef uint32

// InvalidRef is the sentinel value for an invalid reference. Draws without
// a texture carry it.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a texture.
func (r TextureRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// BeginFrameCommand starts a frame.
type BeginFrameCommand struct {
	Frame backend.Frame
}

// Type implements Command.
func (BeginFrameCommand) Type() CommandType { return CmdBeginFrame }

// EndFrameCommand finishes a frame.
type EndFrameCommand struct{}

// Type implements Command.
func (EndFrameCommand) Type() CommandType { return CmdEndFrame }

// PushMatrixCommand pushes a transform composed with the current one.
type PushMatrixCommand struct {
	Matrix backend.Affine
}

// Type implements Command.
func (PushMatrixCommand) Type() CommandType { return CmdPushMatrix }

// PopMatrixCommand pops the most recent transform.
type PopMatrixCommand struct{}

// Type implements Command.
func (PopMatrixCommand) Type() CommandType { return CmdPopMatrix }

// DrawCommand draws primitives.
type DrawCommand struct {
	// State is a copy of the render state. Its Texture field holds the
	// recorder's texture handle; Texture below identifies it in the pool.
	State    backend.State
	Texture  TextureRef
	Topology gputypes.PrimitiveTopology
	// Vertices is owned by the command.
	Vertices []backend.Vertex
	// Depth is the matrix stack depth at the time of the draw.
	Depth int
}

// Type implements Command.
func (DrawCommand) Type() CommandType { return CmdDraw }

// NewTextureCommand records a texture upload.
type NewTextureCommand struct {
	Texture TextureRef
}

// Type implements Command.
func (NewTextureCommand) Type() CommandType { return CmdNewTexture }

// BeginMaskCommand starts drawing the mask.
type BeginMaskCommand struct{}

// Type implements Command.
func (BeginMaskCommand) Type() CommandType { return CmdBeginMask }

// EndMaskCommand finishes the mask.
type EndMaskCommand struct{}

// Type implements Command.
func (EndMaskCommand) Type() CommandType { return CmdEndMask }

// DisableMaskCommand turns clipping off.
type DisableMaskCommand struct{}

// Type implements Command.
func (DisableMaskCommand) Type() CommandType { return CmdDisableMask }
