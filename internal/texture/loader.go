package texture

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"cube-tweaks/internal/download"
	"cube-tweaks/internal/scene"
)

// Uploader turns a decoded image into a GPU texture. It is only called from Poll.
type Uploader interface {
	Upload(img image.Image) (*scene.Texture, error)
}

// Fetcher resolves a remote path to a local file.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// Handle is the pending result of one Load call.
type Handle struct {
	path    string
	done    bool
	texture *scene.Texture
	err     error
	onLoad  []func(*scene.Texture)
	onError []func(error)
}

// Path returns the requested path.
func (h *Handle) Path() string { return h.path }

// Done reports whether the load resolved.
func (h *Handle) Done() bool { return h.done }

// Texture returns the uploaded texture, or nil while pending or after a failure.
func (h *Handle) Texture() *scene.Texture { return h.texture }

// Err returns the failure, if any.
func (h *Handle) Err() error { return h.err }

// Then registers callbacks for the outcome. Either may be nil. On a resolved handle the
// matching callback runs immediately.
func (h *Handle) Then(onLoad func(*scene.Texture), onError func(error)) *Handle {
	if h.done {
		switch {
		case h.err != nil && onError != nil:
			onError(h.err)
		case h.err == nil && onLoad != nil:
			onLoad(h.texture)
		}
		return h
	}
	if onLoad != nil {
		h.onLoad = append(h.onLoad, onLoad)
	}
	if onError != nil {
		h.onError = append(h.onError, onError)
	}
	return h
}

func (h *Handle) resolve(tex *scene.Texture, err error) {
	h.done = true
	h.texture, h.err = tex, err
	if err != nil {
		for _, fn := range h.onError {
			fn(err)
		}
	} else {
		for _, fn := range h.onLoad {
			fn(tex)
		}
	}
	h.onLoad, h.onError = nil, nil
}

type decoded struct {
	handle *Handle
	img    image.Image
	err    error
}

// Loader decodes images on background goroutines and uploads them on the frame loop.
type Loader struct {
	// FlipY flips images vertically before upload so row 0 ends up at v=1.
	FlipY bool
	// Decode reads an image file. Defaults to bild's imgio.Open.
	Decode func(path string) (image.Image, error)
	// Fetcher downloads http(s) paths; when nil remote paths fail.
	Fetcher Fetcher

	ctx      context.Context
	manager  *Manager
	uploader Uploader
	results  chan decoded
	pending  int
}

// NewLoader returns a loader reporting to manager. ctx cancels in-flight downloads.
func NewLoader(ctx context.Context, manager *Manager, uploader Uploader) *Loader {
	if manager == nil {
		manager = NewManager()
	}
	return &Loader{
		FlipY:    true,
		Decode:   imgio.Open,
		ctx:      ctx,
		manager:  manager,
		uploader: uploader,
		results:  make(chan decoded, 8),
	}
}

// Load starts one asynchronous load of path and returns its handle. The decode runs in the
// background; upload and callbacks happen in a later Poll.
func (l *Loader) Load(path string) *Handle {
	h := &Handle{path: path}
	l.pending++
	l.manager.itemStart(path)
	go func() {
		img, err := l.read(path)
		l.results <- decoded{handle: h, img: img, err: err}
	}()
	return h
}

func (l *Loader) read(path string) (image.Image, error) {
	local := path
	if download.IsRemote(path) {
		if l.Fetcher == nil {
			return nil, fmt.Errorf("texture: %s: remote paths need a fetcher", path)
		}
		var err error
		if local, err = l.Fetcher.Fetch(l.ctx, path); err != nil {
			return nil, fmt.Errorf("texture: %w", err)
		}
	}
	img, err := l.Decode(local)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	if l.FlipY {
		img = transform.FlipV(img)
	}
	return img, nil
}

// Pending returns the number of loads not yet resolved by Poll.
func (l *Loader) Pending() int { return l.pending }

// Poll resolves every load whose decode finished, without blocking. It returns how many
// handles were resolved. Call it from the frame loop.
func (l *Loader) Poll() int {
	n := 0
	for {
		select {
		case r := <-l.results:
			l.finish(r)
			n++
		default:
			return n
		}
	}
}

func (l *Loader) finish(r decoded) {
	l.pending--
	path := r.handle.path
	var tex *scene.Texture
	err := r.err
	if err == nil {
		tex, err = l.uploader.Upload(r.img)
		if err != nil {
			err = fmt.Errorf("texture: upload %s: %w", path, err)
		} else {
			tex.Source = path
		}
	}
	if err != nil {
		tex = nil
		l.manager.itemError(path, err)
	}
	r.handle.resolve(tex, err)
	l.manager.itemEnd(path)
}
