// Package host connects raylib window input to the app: camera drags, panel and terminal
// keys, double-click fullscreen and window resizes.
package host

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"cube-tweaks/internal/controls"
)

// Sample is the raw mouse state for one frame.
type Sample struct {
	Delta       rl.Vector2
	Left, Right bool
	// Pressed is set on the frame either button went down.
	Pressed bool
	Wheel   float32
	Height  float32
	// Blocked is set while the pointer is over an overlay.
	Blocked bool
}

// Pointer turns mouse state into orbit input. Left drag rotates, right drag pans, the wheel
// zooms. A drag that starts over an overlay never moves the camera, while one that started
// on the scene keeps going when the pointer crosses an overlay.
type Pointer struct {
	// Blocked reports whether pos is over an overlay such as the panel.
	Blocked func(pos rl.Vector2) bool

	dragging bool
}

var _ controls.Input = (*Pointer)(nil)

// Poll reads the mouse through raylib.
func (p *Pointer) Poll() controls.Frame {
	pos := rl.GetMousePosition()
	s := Sample{
		Delta:   rl.GetMouseDelta(),
		Left:    rl.IsMouseButtonDown(rl.MouseButtonLeft),
		Right:   rl.IsMouseButtonDown(rl.MouseButtonRight),
		Pressed: rl.IsMouseButtonPressed(rl.MouseButtonLeft) || rl.IsMouseButtonPressed(rl.MouseButtonRight),
		Wheel:   rl.GetMouseWheelMove(),
		Height:  float32(rl.GetScreenHeight()),
	}
	if p.Blocked != nil {
		s.Blocked = p.Blocked(pos)
	}
	return p.Step(s)
}

// Step advances the drag state with s and returns the camera input for this frame.
func (p *Pointer) Step(s Sample) controls.Frame {
	f := controls.Frame{Height: s.Height}
	if s.Pressed {
		p.dragging = !s.Blocked
	}
	if !s.Left && !s.Right {
		p.dragging = false
	}
	if p.dragging {
		switch {
		case s.Left:
			f.RotateX, f.RotateY = s.Delta.X, s.Delta.Y
		case s.Right:
			f.PanX, f.PanY = s.Delta.X, s.Delta.Y
		}
	}
	if !s.Blocked {
		f.Wheel = s.Wheel
	}
	return f
}
