// Package app wires the scene, the parameter registry and the per-frame update order.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"cube-tweaks/internal/controls"
	"cube-tweaks/internal/geometry"
	"cube-tweaks/internal/params"
	"cube-tweaks/internal/scene"
	"cube-tweaks/internal/texture"
	"cube-tweaks/internal/tween"
	"cube-tweaks/internal/viewport"
)

// Folder names in the debug panel.
const (
	FolderCube   = "Awesome Cube"
	FolderLights = "Lights"
	FolderScene  = "Scene"
)

// SpinDuration is how long the spin action takes for a full turn, in seconds.
const SpinDuration = 1

// Surface is where the scene is drawn. It follows the window through viewport.Resize.
type Surface interface {
	viewport.Sizer
	Draw(s *scene.Scene, cam *scene.Camera)
}

// GridSurface is implemented by surfaces that can draw a helper grid.
type GridSurface interface {
	SetGridVisible(visible bool)
}

// Config is the startup input for New.
type Config struct {
	Width, Height int
	PixelRatio    float32
	TexturePath   string
	Title         string
	State         params.State
	Fetcher       texture.Fetcher
	Logger        *slog.Logger
}

// App owns the scene and everything that mutates it. All methods except PostPreset must be
// called from the frame loop goroutine.
type App struct {
	Parts    *scene.Parts
	State    params.State
	Registry *params.Registry
	Tweens   *tween.Engine
	Controls *controls.OrbitControls
	Loader   *texture.Loader
	Manager  *texture.Manager

	surface  Surface
	log      *slog.Logger
	extruder *geometry.Extruder
	initial  params.State
	texture  *scene.Texture
	pending  []func()
	presets  chan params.State
	width    int
	height   int
}

// New assembles the scene, binds the panel controls and applies cfg.State so the panel and
// the scene agree from the first frame. The texture load is issued here and resolves in a
// later Frame.
func New(ctx context.Context, cfg Config, surface Surface, uploader texture.Uploader, input controls.Input) (*App, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("app: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	title := cfg.Title
	if title == "" {
		title = "Debug"
	}

	a := &App{
		State:   params.DefaultState(),
		Tweens:  tween.New(),
		Manager: texture.NewManager(),
		surface: surface,
		log:     log,
		presets: make(chan params.State, 1),
	}
	if err := params.Restore(&a.State, cfg.State); err != nil {
		return nil, err
	}
	a.State.Subdivisions = max(a.State.Subdivisions, 1)
	a.initial = a.State

	a.Parts = scene.Assemble(scene.Options{
		Aspect:       float32(cfg.Width) / float32(cfg.Height),
		Subdivisions: a.State.Subdivisions,
		CubeColor:    a.State.Color,
	})
	a.extruder = geometry.NewExtruder(a.Parts.Cube.Geometry)

	a.Controls = controls.NewOrbitControls(a.Parts.Camera, input)
	a.Controls.EnableDamping = true

	a.Loader = texture.NewLoader(ctx, a.Manager, uploader)
	a.Loader.Fetcher = cfg.Fetcher
	a.hookManager()

	a.Registry = params.NewRegistry(title)
	a.bind()

	a.Resize(cfg.Width, cfg.Height, cfg.PixelRatio)
	if err := a.Registry.Refresh(); err != nil {
		return nil, err
	}
	if cfg.TexturePath != "" {
		a.loadTexture(cfg.TexturePath)
	}
	return a, nil
}

func (a *App) hookManager() {
	a.Manager.OnStart = func(path string, loaded, total int) {
		a.log.Info("loading started", "path", path)
	}
	a.Manager.OnProgress = func(path string, loaded, total int) {
		a.log.Debug("loading progressing", "path", path, "loaded", loaded, "total", total)
	}
	a.Manager.OnLoad = func() {
		a.log.Info("loading finished")
	}
	a.Manager.OnError = func(path string, err error) {
		a.log.Error("loading error", "path", path, "err", err)
	}
}

func (a *App) loadTexture(path string) {
	a.Loader.Load(path).Then(func(t *scene.Texture) {
		a.texture = t
		if a.State.TextureEnabled {
			a.Parts.Cube.Material.SetMap(t)
		}
	}, nil)
}

// Texture returns the loaded texture, or nil before it resolved or after a failure.
func (a *App) Texture() *scene.Texture { return a.texture }

// bind registers every panel control against the scene objects and State.
func (a *App) bind() {
	p := a.Parts
	cube := a.Registry.Folder(FolderCube)
	cube.Closed = true
	cube.AddFloat("elevation", &p.Cube.Position[1], -3, 3, 0.01)
	cube.AddFloat("longitude", &p.Cube.Position[0], -3, 3, 0.01)
	cube.AddFloat("latitude", &p.Cube.Position[2], -3, 3, 0.01)
	cube.AddBool("visible", &p.Cube.Visible)
	cube.AddOption("style", &a.State.Style, params.Styles...).OnChange(a.onStyle)
	cube.AddColor("color", &a.State.Color).OnChange(func(v params.Value) {
		p.Cube.Material.SetColor(v.Color)
	})
	cube.AddInt("subdivisions", &a.State.Subdivisions, 1, 5, 1).OnChange(a.onSubdivisions)
	cube.AddFloat("extrusion", &a.State.Extrusion, 0, 1, 0.01).OnChange(func(v params.Value) {
		a.extruder.Apply(v.Float)
	})
	cube.AddBool("texture", &a.State.TextureEnabled).OnChange(a.onTexture)
	cube.AddAction("spin", a.Spin)

	lights := a.Registry.Folder(FolderLights)
	lights.Closed = true
	lights.AddFloat("ambient", &a.State.AmbientIntensity, 0, 3, 0.001).OnChange(func(v params.Value) {
		p.Ambient.Intensity = v.Float
	})
	lights.AddFloat("directional", &a.State.DirectionalIntensity, 0, 10, 0.001).OnChange(func(v params.Value) {
		p.Directional.Intensity = v.Float
	})
	lights.AddFloat("point", &a.State.PointIntensity, 0, 100, 0.1).OnChange(func(v params.Value) {
		p.Point.Intensity = v.Float
	})

	sc := a.Registry.Folder(FolderScene)
	sc.Closed = true
	sc.AddBool("grid", &a.State.ShowGrid).OnChange(func(v params.Value) {
		if g, ok := a.surface.(GridSurface); ok {
			g.SetGridVisible(v.Bool)
		}
	})
	sc.AddBool("stats", &a.State.ShowStats)
	sc.AddAction("fullscreen", func() { a.Defer(a.ToggleFullscreen) })
	sc.AddAction("reset", func() { a.Defer(a.Reset) })
}

func (a *App) onStyle(v params.Value) {
	m := a.Parts.Cube.Material
	m.Wireframe, m.FlatShading = params.StyleFlags(v.Option)
	m.NeedsUpdate = true
}

func (a *App) onSubdivisions(v params.Value) {
	n := v.Int
	g := geometry.NewBoxGeometry(scene.CubeSize, scene.CubeSize, scene.CubeSize, n, n, n)
	a.Parts.Cube.SetGeometry(g)
	a.extruder.Recapture(g)
}

func (a *App) onTexture(v params.Value) {
	m := a.Parts.Cube.Material
	if !v.Bool {
		m.SetMap(nil)
		return
	}
	if a.texture != nil {
		m.SetMap(a.texture)
	}
}

// Spin turns the cube one full revolution around Y, starting from its current angle.
func (a *App) Spin() {
	y := &a.Parts.Cube.Rotation[1]
	a.Tweens.Animate(y, SpinDuration, *y+2*math.Pi)
}

// Defer queues fn to run at the start of the next frame, outside any change handler.
func (a *App) Defer(fn func()) {
	a.pending = append(a.pending, fn)
}

// Frame runs one tick: deferred work, texture completions, config presets, tweens,
// controls and finally the draw.
func (a *App) Frame(dt float32) {
	queued := a.pending
	a.pending = nil
	for _, fn := range queued {
		fn()
	}

	a.Loader.Poll()

	select {
	case s := <-a.presets:
		if err := a.ApplyState(s); err != nil {
			a.log.Warn("preset rejected", "err", err)
		}
	default:
	}

	a.Tweens.Update(dt)
	a.Controls.Update()
	a.surface.Draw(a.Parts.Scene, a.Parts.Camera)
}

// Resize follows a window size change.
func (a *App) Resize(width, height int, hostRatio float32) {
	if viewport.Resize(a.Parts.Camera, a.surface, width, height, hostRatio) {
		a.width, a.height = width, height
	}
}

// Size returns the last applied window size.
func (a *App) Size() (width, height int) { return a.width, a.height }

// ToggleFullscreen flips the surface between windowed and fullscreen when it supports it.
func (a *App) ToggleFullscreen() {
	if !viewport.ToggleFullscreen(a.surface) {
		a.log.Debug("fullscreen not supported by surface")
	}
}

// ApplyState writes s through the registry so values are clamped and every handler runs.
// Values the registry rejects keep their current setting and are reported together.
func (a *App) ApplyState(s params.State) error {
	current := a.State
	if err := params.Restore(&a.State, s); err != nil {
		return err
	}
	values := a.Registry.Snapshot()
	if err := params.Restore(&a.State, current); err != nil {
		return err
	}
	for _, name := range transformControls {
		delete(values, FolderCube+"/"+name)
	}
	return a.Registry.Apply(values)
}

// transformControls bind to the cube itself rather than State.
var transformControls = []string{"elevation", "longitude", "latitude", "visible"}

// Reset restores the startup State and the cube transform.
func (a *App) Reset() {
	cube := a.Parts.Cube
	cube.Position = mgl32.Vec3{}
	cube.Rotation = mgl32.Vec3{}
	cube.Visible = true
	if err := a.ApplyState(a.initial); err != nil {
		a.log.Warn("reset", "err", err)
		return
	}
	a.log.Info("parameters reset")
}

// PostPreset hands a new State to the frame loop; it is applied on the next Frame. Safe to
// call from any goroutine. A preset not yet applied is replaced.
func (a *App) PostPreset(s params.State) {
	for {
		select {
		case a.presets <- s:
			return
		default:
		}
		select {
		case <-a.presets:
		default:
		}
	}
}
