// Package graphics owns the window and the frame loop.
package graphics

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window is what the frame loop needs from the platform window.
type Window interface {
	ShouldClose() bool
	// FrameTime is the duration of the last frame in seconds.
	FrameTime() float32
	BeginFrame()
	EndFrame()
}

// Options configures the raylib window.
type Options struct {
	Width, Height int
	Title         string
	TargetFPS     int32
	Fullscreen    bool
}

// raylibWindow is the Window backed by raylib.
type raylibWindow struct{}

// Open creates a resizable, high-DPI window. ESC is left to the terminal, so the window only
// closes through its close button.
func Open(opts Options) Window {
	flags := uint32(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	if opts.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	rl.SetExitKey(rl.KeyNull)
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(opts.TargetFPS)
	}
	return raylibWindow{}
}

func (raylibWindow) ShouldClose() bool  { return rl.WindowShouldClose() }
func (raylibWindow) FrameTime() float32 { return rl.GetFrameTime() }

func (raylibWindow) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
}

func (raylibWindow) EndFrame() { rl.EndDrawing() }

// Close destroys the raylib window.
func Close() {
	rl.CloseWindow()
}

// Run drives w until it asks to close or ctx is cancelled. Each frame it calls update with the
// previous frame time, then draw between BeginFrame and EndFrame. It returns the frame count.
func Run(ctx context.Context, w Window, update func(dt float32), draw func()) uint64 {
	var frames uint64
	for !w.ShouldClose() && ctx.Err() == nil {
		update(w.FrameTime())
		w.BeginFrame()
		draw()
		w.EndFrame()
		frames++
	}
	return frames
}
