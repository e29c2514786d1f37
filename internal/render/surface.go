// Package render draws a scene.Scene with raylib into an off-screen target and presents it
// to the window.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"cube-tweaks/internal/geometry"
	"cube-tweaks/internal/scene"
)

// gpuMaterial is the raylib copy of a scene material. fallback is the white default texture
// used while the material has no map.
type gpuMaterial struct {
	mtl      rl.Material
	fallback rl.Texture2D
}

// Surface renders scenes. Meshes and materials are created lazily on first draw so GPU
// resources are only allocated once the window exists. Use from the GL thread only.
type Surface struct {
	// GridY is the height of the helper grid.
	GridY float32

	width, height  int
	ratio          float32
	target         rl.RenderTexture2D
	targetW        int32
	targetH        int32
	shader         litShader
	shaderLoaded   bool
	grid           bool
	meshes         map[*geometry.Geometry]*gpuMesh
	materials      map[*scene.Material]*gpuMaterial
	windowedWidth  int32
	windowedHeight int32
}

// New returns a surface of the given window size.
func New(width, height int) *Surface {
	return &Surface{
		width:     width,
		height:    height,
		ratio:     1,
		meshes:    make(map[*geometry.Geometry]*gpuMesh),
		materials: make(map[*scene.Material]*gpuMaterial),
	}
}

// SetSize sets the presented size in window pixels.
func (s *Surface) SetSize(width, height int) {
	s.width, s.height = width, height
}

// SetPixelRatio sets how many buffer pixels back one window pixel.
func (s *Surface) SetPixelRatio(ratio float32) {
	s.ratio = ratio
}

// SetGridVisible shows or hides the helper grid.
func (s *Surface) SetGridVisible(visible bool) {
	s.grid = visible
}

// BufferSize returns the off-screen target size the next Draw uses.
func (s *Surface) BufferSize() (int32, int32) {
	return int32(float32(s.width) * s.ratio), int32(float32(s.height) * s.ratio)
}

func (s *Surface) ensureTarget() {
	w, h := s.BufferSize()
	if w <= 0 || h <= 0 || (w == s.targetW && h == s.targetH && rl.IsRenderTextureValid(s.target)) {
		return
	}
	if s.targetW != 0 {
		rl.UnloadRenderTexture(s.target)
	}
	s.target = rl.LoadRenderTexture(w, h)
	rl.SetTextureFilter(s.target.Texture, rl.FilterBilinear)
	s.targetW, s.targetH = w, h
}

// Draw renders sc through cam into the off-screen target. Call Present inside
// BeginDrawing/EndDrawing to show it.
func (s *Surface) Draw(sc *scene.Scene, cam *scene.Camera) {
	if !s.shaderLoaded {
		s.shader = loadLitShader()
		s.shaderLoaded = true
	}
	s.ensureTarget()
	s.collect()

	rl.BeginTextureMode(s.target)
	rl.ClearBackground(toColor(sc.Background, 1))
	rl.BeginMode3D(rl.Camera3D{
		Position:   toVector3(cam.Position),
		Target:     toVector3(cam.Target),
		Up:         toVector3(cam.Up),
		Fovy:       cam.Fov,
		Projection: rl.CameraPerspective,
	})
	// Use the camera's own matrices so near/far and aspect match what the scene set.
	rl.SetMatrixProjection(toMatrix(cam.Projection()))
	rl.SetMatrixModelview(toMatrix(cam.View()))

	if s.shader.valid() {
		s.shader.setLights(sc.Lights())
	}
	for _, m := range sc.Meshes() {
		if m.Visible && m.Geometry != nil && m.Material != nil {
			s.drawMesh(m)
		}
	}
	if s.grid {
		drawGrid(s.GridY)
	}
	rl.EndMode3D()
	rl.EndTextureMode()
}

// Present draws the last rendered frame over the whole window.
func (s *Surface) Present() {
	if s.targetW == 0 {
		return
	}
	src := rl.NewRectangle(0, 0, float32(s.targetW), -float32(s.targetH))
	dst := rl.NewRectangle(0, 0, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	rl.DrawTexturePro(s.target.Texture, src, dst, rl.Vector2{}, 0, rl.White)
}

// collect frees GPU meshes of disposed geometries.
func (s *Surface) collect() {
	for g, gm := range s.meshes {
		if g.Disposed() {
			gm.unload()
			delete(s.meshes, g)
		}
	}
}

func (s *Surface) drawMesh(m *scene.Mesh) {
	g := m.Geometry
	gm, ok := s.meshes[g]
	switch {
	case !ok:
		gm = uploadGeometry(g)
		s.meshes[g] = gm
		g.NeedsUpdate = false
	case g.NeedsUpdate:
		gm.updatePositions(g.Positions)
		g.NeedsUpdate = false
	}

	mat := s.material(m.Material)
	s.shader.setFlat(m.Material.FlatShading)
	if m.Material.Wireframe {
		rl.EnableWireMode()
		defer rl.DisableWireMode()
	}
	rl.DrawMesh(gm.mesh, mat.mtl, toMatrix(m.Matrix()))
}

func (s *Surface) material(src *scene.Material) *gpuMaterial {
	gm, ok := s.materials[src]
	if !ok {
		mtl := rl.LoadMaterialDefault()
		if s.shader.valid() {
			mtl.Shader = s.shader.shader
		}
		gm = &gpuMaterial{mtl: mtl, fallback: mtl.GetMap(rl.MapAlbedo).Texture}
		s.materials[src] = gm
		src.NeedsUpdate = true
	}
	if src.NeedsUpdate {
		albedo := gm.mtl.GetMap(rl.MapAlbedo)
		albedo.Color = toColor(src.Color, src.Opacity)
		tex := gm.fallback
		if src.Map != nil && src.Map.ID != 0 {
			tex = nativeTexture(src.Map)
		}
		rl.SetMaterialTexture(&gm.mtl, rl.MapAlbedo, tex)
		src.NeedsUpdate = false
	}
	return gm
}

// IsFullscreen reports whether the window is fullscreen.
func (s *Surface) IsFullscreen() bool {
	return rl.IsWindowFullscreen()
}

// RequestFullscreen switches the window to fullscreen at the monitor resolution.
func (s *Surface) RequestFullscreen() {
	if rl.IsWindowFullscreen() {
		return
	}
	s.windowedWidth, s.windowedHeight = int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	m := rl.GetCurrentMonitor()
	rl.SetWindowSize(rl.GetMonitorWidth(m), rl.GetMonitorHeight(m))
	rl.ToggleFullscreen()
}

// ExitFullscreen returns to the window size used before RequestFullscreen.
func (s *Surface) ExitFullscreen() {
	if !rl.IsWindowFullscreen() {
		return
	}
	rl.ToggleFullscreen()
	if s.windowedWidth > 0 {
		rl.SetWindowSize(int(s.windowedWidth), int(s.windowedHeight))
	}
}

// Close releases every GPU resource the surface created.
func (s *Surface) Close() {
	for g, gm := range s.meshes {
		gm.unload()
		delete(s.meshes, g)
	}
	for src, gm := range s.materials {
		// The shader is shared and the map textures belong to the loader.
		gm.mtl.Shader = rl.Shader{ID: rl.GetShaderIdDefault()}
		rl.SetMaterialTexture(&gm.mtl, rl.MapAlbedo, gm.fallback)
		rl.UnloadMaterial(gm.mtl)
		delete(s.materials, src)
	}
	if s.targetW != 0 {
		rl.UnloadRenderTexture(s.target)
		s.targetW, s.targetH = 0, 0
	}
	if s.shader.valid() {
		rl.UnloadShader(s.shader.shader)
	}
}
