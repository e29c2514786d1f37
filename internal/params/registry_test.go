package params

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(s *State) (*Registry, *[]string) {
	var calls []string
	r := NewRegistry("Debug")
	cube := r.Folder("Awesome Cube")
	cube.AddInt("subdivisions", &s.Subdivisions, 1, 5, 1).OnChange(func(v Value) {
		calls = append(calls, "subdivisions="+v.String())
	})
	cube.AddFloat("extrusion", &s.Extrusion, 0, 1, 0.01).OnChange(func(v Value) {
		calls = append(calls, "extrusion="+v.String())
	})
	cube.AddOption("style", &s.Style, Styles...)
	cube.AddColor("color", &s.Color)
	cube.AddBool("texture", &s.TextureEnabled)
	cube.AddAction("spin", func() { calls = append(calls, "spin") })
	lights := r.Folder("Lights")
	lights.AddFloat("ambient", &s.AmbientIntensity, 0, 3, 0.001)
	lights.AddFloat("intensity", &s.DirectionalIntensity, 0, 10, 0.001)
	r.Folder("Point").AddFloat("intensity", &s.PointIntensity, 0, 100, 0.1)
	return r, &calls
}

func TestSetClampsAndSnaps(t *testing.T) {
	tests := []struct {
		name string
		path string
		in   Value
		want Value
	}{
		{"int above max", "subdivisions", Int(9), Int(5)},
		{"int below min", "subdivisions", Int(0), Int(1)},
		{"float snapped", "extrusion", Float(0.123), Float(0.12)},
		{"float clamped", "extrusion", Float(2), Float(1)},
		{"int from float", "subdivisions", Float(3.4), Int(3)},
		{"float from int", "extrusion", Int(1), Float(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultState()
			r, _ := newTestRegistry(&s)
			require.NoError(t, r.Set(tt.path, tt.in))
			got, err := r.Get(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Kind, got.Kind)
			assert.InDelta(t, tt.want.Float, got.Float, 1e-6)
			assert.Equal(t, tt.want.Int, got.Int)
		})
	}
}

func TestSetRunsHandlerAfterWrite(t *testing.T) {
	s := DefaultState()
	r, calls := newTestRegistry(&s)

	require.NoError(t, r.Set("Awesome Cube/subdivisions", Int(4)))
	assert.Equal(t, 4, s.Subdivisions)
	assert.Equal(t, []string{"subdivisions=4"}, *calls)

	require.NoError(t, r.Set("spin", Action()))
	assert.Equal(t, []string{"subdivisions=4", "spin"}, *calls)
}

func TestSetErrors(t *testing.T) {
	s := DefaultState()
	r, _ := newTestRegistry(&s)

	assert.ErrorIs(t, r.Set("missing", Int(1)), ErrUnknownControl)
	assert.ErrorIs(t, r.Set("Lights/missing", Int(1)), ErrUnknownControl)
	assert.ErrorIs(t, r.Set("intensity", Float(1)), ErrAmbiguousControl)
	assert.ErrorIs(t, r.Set("style", Option("glossy")), ErrInvalidOption)
	assert.ErrorIs(t, r.Set("texture", Int(1)), ErrKindMismatch)
	assert.Equal(t, StyleNormal, s.Style)

	require.NoError(t, r.Set("Point/intensity", Float(42)))
	assert.InDelta(t, 42, s.PointIntensity, 1e-6)
}

func TestSetRejectsNaN(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		name  string
		path  string
		value Value
	}{
		{"float control", "extrusion", Float(nan)},
		{"float into int control", "subdivisions", Float(nan)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultState()
			s.Extrusion = 0.25
			r, calls := newTestRegistry(&s)

			assert.ErrorIs(t, r.Set(tt.path, tt.value), ErrInvalidNumber)
			assert.InDelta(t, 0.25, s.Extrusion, 1e-6)
			assert.Equal(t, 2, s.Subdivisions)
			assert.Empty(t, *calls)
		})
	}
}

func TestSetStringRejectsNaN(t *testing.T) {
	s := DefaultState()
	r, _ := newTestRegistry(&s)

	assert.ErrorIs(t, r.SetString("extrusion", "NaN"), ErrInvalidNumber)
	assert.Zero(t, s.Extrusion)
	assert.Error(t, r.SetString("subdivisions", "NaN"))
	assert.Equal(t, 2, s.Subdivisions)

	// Infinities are clamped into range.
	require.NoError(t, r.SetString("extrusion", "Inf"))
	assert.Equal(t, float32(1), s.Extrusion)
	require.NoError(t, r.Set("subdivisions", Float(float32(math.Inf(-1)))))
	assert.Equal(t, 1, s.Subdivisions)
}

func TestSetFromHandlerIsRejected(t *testing.T) {
	s := DefaultState()
	r, _ := newTestRegistry(&s)
	var inner error
	r.Folder("Scene").AddAction("nested", func() {
		inner = r.Set("extrusion", Float(0.5))
	})

	require.NoError(t, r.Set("nested", Action()))
	assert.ErrorIs(t, inner, ErrReentrant)
	assert.Zero(t, s.Extrusion)

	// The guard is released once the handler returns.
	require.NoError(t, r.Set("extrusion", Float(0.5)))
}

func TestSetString(t *testing.T) {
	s := DefaultState()
	r, _ := newTestRegistry(&s)

	require.NoError(t, r.SetString("color", "#ff8000"))
	assert.Equal(t, color.RGBA{R: 255, G: 128, A: 255}, s.Color)
	require.NoError(t, r.SetString("texture", "false"))
	assert.False(t, s.TextureEnabled)
	require.NoError(t, r.SetString("style", "flat"))
	assert.Equal(t, StyleFlat, s.Style)
	assert.Error(t, r.SetString("subdivisions", "many"))
}

func TestSnapshotApply(t *testing.T) {
	s := DefaultState()
	r, calls := newTestRegistry(&s)
	snap := r.Snapshot()
	assert.NotContains(t, snap, "Awesome Cube/spin")
	assert.Equal(t, Int(2), snap["Awesome Cube/subdivisions"])

	require.NoError(t, r.Set("subdivisions", Int(5)))
	*calls = nil
	require.NoError(t, r.Apply(snap))
	assert.Equal(t, 2, s.Subdivisions)
	assert.Contains(t, *calls, "subdivisions=2")

	err := r.Apply(map[string]Value{"Nope/x": Int(1)})
	assert.ErrorIs(t, err, ErrUnknownControl)
}

func TestRefreshRunsEveryHandler(t *testing.T) {
	s := DefaultState()
	r, calls := newTestRegistry(&s)
	require.NoError(t, r.Refresh())
	assert.Equal(t, []string{"subdivisions=2", "extrusion=0"}, *calls)
}

func TestFoldersKeepOrder(t *testing.T) {
	s := DefaultState()
	r, _ := newTestRegistry(&s)
	var names []string
	for _, f := range r.Folders() {
		names = append(names, f.Name())
	}
	assert.Equal(t, []string{"Awesome Cube", "Lights", "Point"}, names)
	assert.Same(t, r.Folders()[0], r.Folder("Awesome Cube"))

	c, err := r.Lookup("style")
	require.NoError(t, err)
	assert.Equal(t, "Awesome Cube/style", c.Path())
	assert.Equal(t, Styles, c.Options())
	assert.Len(t, r.Controls(), 9)
}
