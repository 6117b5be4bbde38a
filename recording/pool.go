package recording

import (
	"image"
)

// ResourcePool stores the texture images referenced by recorded commands.
// Each image is copied on insertion so the recording stays immutable.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	textures []*image.RGBA
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{textures: make([]*image.RGBA, 0, 8)}
}

// AddTexture copies img into the pool and returns its reference.
func (p *ResourcePool) AddTexture(img *image.RGBA) TextureRef {
	var clone *image.RGBA
	if img != nil {
		clone = &image.RGBA{
			Pix:    append([]uint8(nil), img.Pix...),
			Stride: img.Stride,
			Rect:   img.Rect,
		}
	}
	p.textures = append(p.textures, clone)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return TextureRef(uint32(len(p.textures) - 1))
}

// Texture returns the image for the given reference, or nil when the
// reference is invalid.
func (p *ResourcePool) Texture(ref TextureRef) *image.RGBA {
	if int(ref) >= len(p.textures) {
		return nil
	}
	return p.textures[ref]
}

// TextureCount returns the number of textures in the pool.
func (p *ResourcePool) TextureCount() int {
	return len(p.textures)
}

// Clear removes all resources from the pool.
func (p *ResourcePool) Clear() {
	p.textures = p.textures[:0]
}
