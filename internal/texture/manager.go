// Package texture loads image files into GPU textures without stalling the frame loop.
package texture

// Manager tracks a batch of loads and reports its lifecycle. All callbacks run on the
// goroutine that calls Loader.Poll, which is the frame loop.
type Manager struct {
	// OnStart runs when an item starts loading while no other item is in flight.
	OnStart func(path string, loaded, total int)
	// OnProgress runs when an item finished, successfully or not.
	OnProgress func(path string, loaded, total int)
	// OnLoad runs when every started item has finished.
	OnLoad func()
	// OnError runs when an item failed.
	OnError func(path string, err error)

	loaded, total int
	loading       bool
}

// NewManager returns a manager with no callbacks.
func NewManager() *Manager {
	return &Manager{}
}

// Progress returns how many started items have finished.
func (m *Manager) Progress() (loaded, total int) {
	return m.loaded, m.total
}

func (m *Manager) itemStart(path string) {
	m.total++
	if !m.loading && m.OnStart != nil {
		m.OnStart(path, m.loaded, m.total)
	}
	m.loading = true
}

func (m *Manager) itemEnd(path string) {
	m.loaded++
	if m.OnProgress != nil {
		m.OnProgress(path, m.loaded, m.total)
	}
	if m.loaded == m.total {
		m.loading = false
		if m.OnLoad != nil {
			m.OnLoad()
		}
	}
}

func (m *Manager) itemError(path string, err error) {
	if m.OnError != nil {
		m.OnError(path, err)
	}
}
