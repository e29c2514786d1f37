package graphics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeWindow struct {
	closeAfter int
	frames     int
	open       bool
	calls      []string
}

func (w *fakeWindow) ShouldClose() bool  { return w.frames >= w.closeAfter }
func (w *fakeWindow) FrameTime() float32 { return 0.5 }

func (w *fakeWindow) BeginFrame() {
	w.open = true
	w.calls = append(w.calls, "begin")
}

func (w *fakeWindow) EndFrame() {
	w.open = false
	w.frames++
	w.calls = append(w.calls, "end")
}

func TestRunOrdersUpdateAndDraw(t *testing.T) {
	w := &fakeWindow{closeAfter: 2}
	var total float32
	n := Run(context.Background(), w,
		func(dt float32) {
			assert.False(t, w.open, "update runs outside the frame")
			total += dt
			w.calls = append(w.calls, "update")
		},
		func() {
			assert.True(t, w.open, "draw runs inside the frame")
			w.calls = append(w.calls, "draw")
		})

	assert.Equal(t, uint64(2), n)
	assert.InDelta(t, 1.0, total, 1e-6)
	assert.Equal(t, []string{"update", "begin", "draw", "end", "update", "begin", "draw", "end"}, w.calls)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := &fakeWindow{closeAfter: 100}
	n := Run(ctx, w, func(float32) {}, func() {
		if w.frames == 2 {
			cancel()
		}
	})
	assert.Equal(t, uint64(3), n)
}
