package viewport

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cube-tweaks/internal/scene"
)

type fakeSurface struct {
	w, h  int
	ratio float32
	calls int
}

func (f *fakeSurface) SetSize(w, h int) {
	f.w, f.h = w, h
	f.calls++
}

func (f *fakeSurface) SetPixelRatio(r float32) { f.ratio = r }

func TestResize(t *testing.T) {
	tests := []struct {
		name      string
		w, h      int
		host      float32
		wantRatio float32
	}{
		{"standard display", 800, 600, 1, 1},
		{"retina", 800, 600, 2, 2},
		{"dense display capped", 800, 600, 3, 2},
		{"fractional", 1920, 1080, 1.5, 1.5},
		{"unknown ratio", 1024, 768, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := scene.NewPerspectiveCamera(75, 1, 0.1, 100)
			s := &fakeSurface{}
			require.True(t, Resize(cam, s, tt.w, tt.h, tt.host))

			assert.Equal(t, float32(tt.w)/float32(tt.h), cam.Aspect)
			want := mgl32.Perspective(mgl32.DegToRad(75), cam.Aspect, 0.1, 100)
			assert.True(t, want.ApproxEqual(cam.Projection()))
			assert.Equal(t, tt.w, s.w)
			assert.Equal(t, tt.h, s.h)
			assert.Equal(t, tt.wantRatio, s.ratio)
		})
	}
}

func TestResizeIgnoresEmptyWindow(t *testing.T) {
	cam := scene.NewPerspectiveCamera(75, 1.5, 0.1, 100)
	s := &fakeSurface{}
	assert.False(t, Resize(cam, s, 0, 600, 1))
	assert.False(t, Resize(cam, s, 800, -1, 1))
	assert.Equal(t, float32(1.5), cam.Aspect)
	assert.Zero(t, s.calls)
}

type standardTarget struct {
	full     bool
	requests int
	exits    int
}

func (s *standardTarget) IsFullscreen() bool { return s.full }

func (s *standardTarget) RequestFullscreen() {
	s.requests++
	s.full = true
}

func (s *standardTarget) ExitFullscreen() {
	s.exits++
	s.full = false
}

type legacyTarget struct {
	full     bool
	requests int
	exits    int
}

func (l *legacyTarget) IsFullscreen() bool { return l.full }

func (l *legacyTarget) RequestFullscreenLegacy() {
	l.requests++
	l.full = true
}

func (l *legacyTarget) ExitFullscreenLegacy() {
	l.exits++
	l.full = false
}

func TestToggleFullscreenStandard(t *testing.T) {
	s := &standardTarget{}
	assert.True(t, ToggleFullscreen(s))
	assert.True(t, s.full)
	assert.True(t, ToggleFullscreen(s))
	assert.False(t, s.full)
	assert.Equal(t, 1, s.requests)
	assert.Equal(t, 1, s.exits)
}

func TestToggleFullscreenLegacy(t *testing.T) {
	l := &legacyTarget{}
	assert.True(t, ToggleFullscreen(l))
	assert.Equal(t, 1, l.requests)
	assert.True(t, ToggleFullscreen(l))
	assert.Equal(t, 1, l.exits)
}

func TestToggleFullscreenUnsupported(t *testing.T) {
	assert.False(t, ToggleFullscreen(&fakeSurface{}))
	assert.False(t, ToggleFullscreen(nil))
}

func TestDoubleClick(t *testing.T) {
	base := time.Unix(100, 0)
	var d DoubleClick
	assert.False(t, d.Click(base))
	assert.True(t, d.Click(base.Add(200*time.Millisecond)))
	// The pair was consumed.
	assert.False(t, d.Click(base.Add(300*time.Millisecond)))
	assert.False(t, d.Click(base.Add(900*time.Millisecond)))
	assert.True(t, d.Click(base.Add(1000*time.Millisecond)))

	slow := DoubleClick{Threshold: 50 * time.Millisecond}
	assert.False(t, slow.Click(base))
	assert.False(t, slow.Click(base.Add(80*time.Millisecond)))
}
