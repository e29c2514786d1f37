package host

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cube-tweaks/internal/app"
	"cube-tweaks/internal/debug"
	"cube-tweaks/internal/render"
	"cube-tweaks/internal/terminal"
	"cube-tweaks/internal/ui"
	"cube-tweaks/internal/viewport"
)

// PanelKey shows and hides the debug panel while the terminal is closed.
const PanelKey = rl.KeyD

// Host runs the per-frame input handling around the app and draws the overlays.
type Host struct {
	App      *app.App
	Surface  *render.Surface
	Panel    *ui.Panel
	Terminal *terminal.Terminal
	Stats    *debug.Stats
	Pointer  *Pointer

	clicks viewport.DoubleClick
}

// New wires pointer blocking to the panel and the terminal.
func New(a *app.App, surface *render.Surface, panel *ui.Panel, term *terminal.Terminal, stats *debug.Stats, pointer *Pointer) *Host {
	h := &Host{App: a, Surface: surface, Panel: panel, Terminal: term, Stats: stats, Pointer: pointer}
	pointer.Blocked = h.blocked
	stats.Progress = a.Manager.Progress
	return h
}

func (h *Host) blocked(pos rl.Vector2) bool {
	return h.Terminal.IsOpen() || h.Panel.Contains(pos)
}

// Update handles keys, resizes and double clicks, then advances the app by dt.
func (h *Host) Update(dt float32) {
	h.Terminal.Update()
	if !h.Terminal.IsOpen() && rl.IsKeyPressed(PanelKey) {
		h.Panel.Toggle()
	}
	if rl.IsWindowResized() {
		h.App.Resize(rl.GetScreenWidth(), rl.GetScreenHeight(), rl.GetWindowScaleDPI().X)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !h.blocked(rl.GetMousePosition()) {
		if h.clicks.Click(time.Now()) {
			h.App.ToggleFullscreen()
		}
	}
	h.Stats.SetVisible(h.App.State.ShowStats)
	h.App.Frame(dt)
}

// Draw puts the rendered scene on screen with the panel, stats and terminal on top.
func (h *Host) Draw() {
	h.Surface.Present()
	h.Panel.Draw()
	h.Stats.Draw()
	h.Terminal.Draw()
}
