package texture

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cube-tweaks/internal/scene"
)

type fakeUploader struct {
	uploads []image.Image
	err     error
}

func (f *fakeUploader) Upload(img image.Image) (*scene.Texture, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.uploads = append(f.uploads, img)
	b := img.Bounds()
	return &scene.Texture{ID: uint32(len(f.uploads)), Width: int32(b.Dx()), Height: int32(b.Dy())}, nil
}

type fakeFetcher struct {
	local string
	urls  []string
}

func (f *fakeFetcher) Fetch(_ context.Context, rawURL string) (string, error) {
	f.urls = append(f.urls, rawURL)
	return f.local, nil
}

// pollUntil drives Poll from the test goroutine, as the frame loop would.
func pollUntil(t *testing.T, l *Loader, h *Handle) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !h.Done() {
		if time.Now().After(deadline) {
			t.Fatal("load did not resolve")
		}
		l.Poll()
		time.Sleep(time.Millisecond)
	}
}

func writePNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 1, color.RGBA{B: 255, A: 255})
	path := filepath.Join(dir, "pattern.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestLoadDecodesAndUploadsOnPoll(t *testing.T) {
	path := writePNG(t, t.TempDir())
	up := &fakeUploader{}
	m := NewManager()
	var events []string
	m.OnStart = func(p string, loaded, total int) { events = append(events, "start") }
	m.OnProgress = func(p string, loaded, total int) { events = append(events, "progress") }
	m.OnLoad = func() { events = append(events, "load") }

	l := NewLoader(context.Background(), m, up)
	var got *scene.Texture
	h := l.Load(path).Then(func(tex *scene.Texture) { got = tex }, nil)
	assert.Equal(t, 1, l.Pending())
	assert.Empty(t, up.uploads, "upload must wait for Poll")

	pollUntil(t, l, h)
	require.NoError(t, h.Err())
	require.NotNil(t, got)
	assert.Equal(t, path, got.Source)
	assert.Equal(t, int32(2), got.Width)
	assert.Zero(t, l.Pending())
	assert.Equal(t, []string{"start", "progress", "load"}, events)

	// Flipped vertically: the red pixel at the top-left moved to the bottom-left.
	r, _, _, _ := up.uploads[0].At(0, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestLoadFailureReportsError(t *testing.T) {
	m := NewManager()
	var reported error
	m.OnError = func(p string, err error) { reported = err }
	l := NewLoader(context.Background(), m, &fakeUploader{})

	var handled error
	h := l.Load(filepath.Join(t.TempDir(), "missing.png")).Then(
		func(*scene.Texture) { t.Fatal("unexpected success") },
		func(err error) { handled = err },
	)
	pollUntil(t, l, h)
	assert.Error(t, handled)
	assert.Equal(t, handled, reported)
	assert.Nil(t, h.Texture())
	loaded, total := m.Progress()
	assert.Equal(t, 1, loaded)
	assert.Equal(t, 1, total)
}

func TestUploadFailure(t *testing.T) {
	path := writePNG(t, t.TempDir())
	boom := errors.New("no context")
	l := NewLoader(context.Background(), nil, &fakeUploader{err: boom})
	h := l.Load(path)
	pollUntil(t, l, h)
	assert.ErrorIs(t, h.Err(), boom)
}

func TestThenOnResolvedHandleRunsImmediately(t *testing.T) {
	path := writePNG(t, t.TempDir())
	l := NewLoader(context.Background(), nil, &fakeUploader{})
	h := l.Load(path)
	pollUntil(t, l, h)

	calls := 0
	h.Then(func(*scene.Texture) { calls++ }, func(error) { t.Fatal("unexpected error") })
	assert.Equal(t, 1, calls)
}

func TestEachLoadIsIndependent(t *testing.T) {
	path := writePNG(t, t.TempDir())
	up := &fakeUploader{}
	l := NewLoader(context.Background(), nil, up)
	a := l.Load(path)
	b := l.Load(path)
	pollUntil(t, l, a)
	pollUntil(t, l, b)
	assert.Len(t, up.uploads, 2)
	assert.NotEqual(t, a.Texture().ID, b.Texture().ID)
}

func TestRemotePathGoesThroughFetcher(t *testing.T) {
	local := writePNG(t, t.TempDir())
	f := &fakeFetcher{local: local}
	l := NewLoader(context.Background(), nil, &fakeUploader{})
	l.Fetcher = f

	h := l.Load("https://example.com/pattern.png")
	pollUntil(t, l, h)
	require.NoError(t, h.Err())
	assert.Equal(t, []string{"https://example.com/pattern.png"}, f.urls)
	assert.Equal(t, "https://example.com/pattern.png", h.Texture().Source)

	l.Fetcher = nil
	h = l.Load("https://example.com/pattern.png")
	pollUntil(t, l, h)
	assert.Error(t, h.Err())
}

func TestDecodeOverride(t *testing.T) {
	l := NewLoader(context.Background(), nil, &fakeUploader{})
	l.FlipY = false
	l.Decode = func(string) (image.Image, error) { return image.NewGray(image.Rect(0, 0, 4, 1)), nil }
	h := l.Load("anything")
	pollUntil(t, l, h)
	require.NoError(t, h.Err())
	assert.Equal(t, int32(4), h.Texture().Width)
}
