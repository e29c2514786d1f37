package engineconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 1280\ndebug:\n  subdivisions: 4\n  style: flat\n"), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1280, p.Window.Width)
	assert.Equal(t, 600, p.Window.Height)
	assert.Equal(t, 4, p.Debug.Subdivisions)
	assert.Equal(t, "flat", p.Debug.Style)
	assert.Equal(t, "#ffffff", p.Debug.Color)
	assert.Equal(t, 300, p.Panel.Width)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [unclosed"), 0o644))

	p, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scene.yaml")
	want := Default()
	want.Texture = "https://example.com/t.png"
	want.Debug.Extrusion = 0.25
	want.Debug.ShowStats = true
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEnvOverrides(t *testing.T) {
	env := map[string]string{EnvConfig: "other.yaml", EnvTexture: "brick.png"}
	getenv := func(k string) string { return env[k] }

	assert.Equal(t, "other.yaml", Path(getenv))
	assert.Equal(t, DefaultPath, Path(func(string) string { return "" }))

	p := Default()
	p.ApplyEnv(getenv)
	assert.Equal(t, "brick.png", p.Texture)
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, Save(path, Default()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes := make(chan Prefs, 4)
	require.NoError(t, Watch(ctx, path, func(p Prefs) { changes <- p }, nil))

	next := Default()
	next.Debug.Subdivisions = 5
	require.NoError(t, Save(path, next))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case p := <-changes:
			// A write can be reported before all bytes land; wait for the final content.
			if p.Debug.Subdivisions == 5 {
				return
			}
		case <-timeout:
			t.Fatal("no reload seen")
		}
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "no", "such", "scene.yaml"), nil, nil)
	assert.Error(t, err)
}
