// Package viewport keeps the camera and the render surface in step with the window.
package viewport

import (
	"time"

	"cube-tweaks/internal/scene"
)

// MaxPixelRatio caps the drawing buffer density on high-DPI displays.
const MaxPixelRatio = 2

// Sizer is the part of a render surface that follows the window.
type Sizer interface {
	SetSize(width, height int)
	SetPixelRatio(ratio float32)
}

// ClampPixelRatio returns the host ratio limited to MaxPixelRatio. Non-positive ratios read as 1.
func ClampPixelRatio(host float32) float32 {
	if host <= 0 {
		return 1
	}
	return min(host, MaxPixelRatio)
}

// Resize applies a new window size: camera aspect and projection first, then the surface
// size and pixel ratio. A zero or negative dimension (minimized window) is ignored.
func Resize(cam *scene.Camera, surface Sizer, width, height int, hostRatio float32) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	cam.Aspect = float32(width) / float32(height)
	cam.UpdateProjectionMatrix()
	surface.SetSize(width, height)
	surface.SetPixelRatio(ClampPixelRatio(hostRatio))
	return true
}

// Fullscreener reports whether a surface currently covers the screen.
type Fullscreener interface {
	IsFullscreen() bool
}

// StandardFullscreen is the preferred pair of fullscreen entry points.
type StandardFullscreen interface {
	Fullscreener
	RequestFullscreen()
	ExitFullscreen()
}

// LegacyFullscreen is the fallback pair for hosts without the standard calls.
type LegacyFullscreen interface {
	Fullscreener
	RequestFullscreenLegacy()
	ExitFullscreenLegacy()
}

// ToggleFullscreen enters fullscreen when the target is windowed and leaves it otherwise,
// using the standard entry points when present and the legacy ones if not. It reports
// whether anything was called; targets with neither are left alone.
func ToggleFullscreen(target any) bool {
	switch t := target.(type) {
	case StandardFullscreen:
		if t.IsFullscreen() {
			t.ExitFullscreen()
		} else {
			t.RequestFullscreen()
		}
		return true
	case LegacyFullscreen:
		if t.IsFullscreen() {
			t.ExitFullscreenLegacy()
		} else {
			t.RequestFullscreenLegacy()
		}
		return true
	}
	return false
}

// DefaultDoubleClick is the widest gap between two clicks that still counts as a double click.
const DefaultDoubleClick = 300 * time.Millisecond

// DoubleClick detects two presses within Threshold of each other.
type DoubleClick struct {
	Threshold time.Duration
	last      time.Time
}

// Click records a press at now and reports whether it completes a double click.
// A detected double click resets the detector, so a third press starts over.
func (d *DoubleClick) Click(now time.Time) bool {
	threshold := d.Threshold
	if threshold <= 0 {
		threshold = DefaultDoubleClick
	}
	if !d.last.IsZero() && now.Sub(d.last) <= threshold {
		d.last = time.Time{}
		return true
	}
	d.last = now
	return false
}
