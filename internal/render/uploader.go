package render

import (
	"errors"
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cube-tweaks/internal/scene"
)

// Uploader sends decoded images to the GPU with nearest-neighbour filtering and no mipmaps.
// It must be called on the thread that owns the GL context.
type Uploader struct{}

// Upload creates a texture from img.
func (Uploader) Upload(img image.Image) (*scene.Texture, error) {
	if img.Bounds().Empty() {
		return nil, errors.New("render: empty image")
	}
	ri := rl.NewImageFromImage(img)
	defer rl.UnloadImage(ri)
	tex := rl.LoadTextureFromImage(ri)
	if !rl.IsTextureValid(tex) {
		return nil, errors.New("render: texture upload failed")
	}
	rl.SetTextureFilter(tex, rl.FilterPoint)
	rl.SetTextureWrap(tex, rl.WrapClamp)
	return &scene.Texture{
		ID:      tex.ID,
		Width:   tex.Width,
		Height:  tex.Height,
		Mipmaps: tex.Mipmaps,
		Format:  int32(tex.Format),
	}, nil
}

func nativeTexture(t *scene.Texture) rl.Texture2D {
	return rl.Texture2D{
		ID:      t.ID,
		Width:   t.Width,
		Height:  t.Height,
		Mipmaps: t.Mipmaps,
		Format:  rl.PixelFormat(t.Format),
	}
}

// Unload frees the GPU copy of t.
func Unload(t *scene.Texture) {
	if t == nil || t.ID == 0 {
		return
	}
	rl.UnloadTexture(nativeTexture(t))
	t.ID = 0
}
