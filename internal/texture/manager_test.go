package texture

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func recordManager() (*Manager, *[]string) {
	var events []string
	m := NewManager()
	m.OnStart = func(path string, loaded, total int) { events = append(events, "start "+path) }
	m.OnProgress = func(path string, loaded, total int) { events = append(events, "progress "+path) }
	m.OnLoad = func() { events = append(events, "load") }
	m.OnError = func(path string, err error) { events = append(events, "error "+path) }
	return m, &events
}

func TestManagerStartsOncePerBatch(t *testing.T) {
	m, events := recordManager()

	m.itemStart("a.png")
	m.itemStart("b.png")
	m.itemEnd("a.png")
	m.itemError("b.png", errors.New("boom"))
	m.itemEnd("b.png")

	assert.Equal(t, []string{
		"start a.png",
		"progress a.png",
		"error b.png",
		"progress b.png",
		"load",
	}, *events)
	loaded, total := m.Progress()
	assert.Equal(t, 2, loaded)
	assert.Equal(t, 2, total)
}

func TestManagerNextBatchStartsAgain(t *testing.T) {
	m, events := recordManager()

	m.itemStart("a.png")
	m.itemEnd("a.png")
	m.itemStart("b.png")
	m.itemEnd("b.png")

	assert.Equal(t, []string{
		"start a.png", "progress a.png", "load",
		"start b.png", "progress b.png", "load",
	}, *events)
}
