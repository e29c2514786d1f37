package scene

import "image/color"

// Texture is an image that has been uploaded to the GPU. The renderer rebuilds its native
// handle from these fields.
type Texture struct {
	Source  string
	ID      uint32
	Width   int32
	Height  int32
	Mipmaps int32
	Format  int32
}

// Material describes how a mesh surface is shaded. Wireframe and FlatShading are
// independent flags on the GPU side; callers that model a single render style must keep
// at most one of them set.
//
// NeedsUpdate tells the renderer to re-sync the material to its GPU copy.
type Material struct {
	Color       color.RGBA
	Opacity     float32
	Wireframe   bool
	FlatShading bool
	Map         *Texture
	NeedsUpdate bool
}

// NewMaterial returns an opaque material of the given color.
func NewMaterial(c color.RGBA) *Material {
	return &Material{Color: c, Opacity: 1, NeedsUpdate: true}
}

// SetColor changes the base color and marks the material dirty.
func (m *Material) SetColor(c color.RGBA) {
	m.Color = c
	m.NeedsUpdate = true
}

// SetMap assigns (or clears, when t is nil) the color map and marks the material dirty.
func (m *Material) SetMap(t *Texture) {
	m.Map = t
	m.NeedsUpdate = true
}
