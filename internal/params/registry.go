package params

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrUnknownControl is returned when a path matches no control.
	ErrUnknownControl = errors.New("unknown control")
	// ErrAmbiguousControl is returned when a bare name matches controls in several folders.
	ErrAmbiguousControl = errors.New("ambiguous control name")
	// ErrKindMismatch is returned when a value of the wrong kind is written.
	ErrKindMismatch = errors.New("value kind mismatch")
	// ErrInvalidOption is returned when an option control receives an unlisted choice.
	ErrInvalidOption = errors.New("invalid option")
	// ErrInvalidNumber is returned when a numeric control receives NaN.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrReentrant is returned when a write happens while a change handler is running.
	ErrReentrant = errors.New("set while a change handler is running")
)

// Registry maps parameter paths ("folder/name") to controls. Writes go through Set, which
// updates the target and then runs the control's change handler. Handlers run one at a
// time on the caller's goroutine; the registry is meant to be used from the frame loop only.
type Registry struct {
	title       string
	folders     []*Folder
	byPath      map[string]*Control
	byName      map[string][]*Control
	dispatching bool
}

// NewRegistry returns an empty registry shown under title.
func NewRegistry(title string) *Registry {
	return &Registry{
		title:  title,
		byPath: make(map[string]*Control),
		byName: make(map[string][]*Control),
	}
}

// Title returns the panel title.
func (r *Registry) Title() string { return r.title }

// Folder returns the folder with the given name, creating it on first use.
func (r *Registry) Folder(name string) *Folder {
	for _, f := range r.folders {
		if f.name == name {
			return f
		}
	}
	f := &Folder{name: name, registry: r}
	r.folders = append(r.folders, f)
	return f
}

// Folders returns folders in creation order.
func (r *Registry) Folders() []*Folder { return slices.Clone(r.folders) }

// Controls returns every control, folder by folder.
func (r *Registry) Controls() []*Control {
	var out []*Control
	for _, f := range r.folders {
		out = append(out, f.controls...)
	}
	return out
}

func (r *Registry) index(c *Control) {
	r.byPath[c.Path()] = c
	r.byName[c.name] = append(r.byName[c.name], c)
}

// Lookup resolves a full "folder/name" path, or a bare name when it is unique.
func (r *Registry) Lookup(path string) (*Control, error) {
	if c, ok := r.byPath[path]; ok {
		return c, nil
	}
	if strings.Contains(path, "/") {
		return nil, fmt.Errorf("params: %q: %w", path, ErrUnknownControl)
	}
	switch matches := r.byName[path]; len(matches) {
	case 0:
		return nil, fmt.Errorf("params: %q: %w", path, ErrUnknownControl)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("params: %q: %w", path, ErrAmbiguousControl)
	}
}

// Get reads the current value of a control.
func (r *Registry) Get(path string) (Value, error) {
	c, err := r.Lookup(path)
	if err != nil {
		return Value{}, err
	}
	return c.Value(), nil
}

// Set writes v to the control's target and runs its change handler. Numbers are clamped
// and snapped; options must be listed. Writing an action value runs the action.
func (r *Registry) Set(path string, v Value) error {
	c, err := r.Lookup(path)
	if err != nil {
		return err
	}
	if r.dispatching {
		return fmt.Errorf("params: set %s: %w", c.Path(), ErrReentrant)
	}
	v, err = c.normalize(v)
	if err != nil {
		return err
	}

	r.dispatching = true
	defer func() { r.dispatching = false }()

	if c.kind == KindAction {
		if c.action != nil {
			c.action()
		}
		return nil
	}
	c.set(v)
	if c.onChange != nil {
		c.onChange(c.get())
	}
	return nil
}

// SetString parses s according to the control's kind and writes it.
func (r *Registry) SetString(path, s string) error {
	c, err := r.Lookup(path)
	if err != nil {
		return err
	}
	v, err := ParseValue(c.kind, s)
	if err != nil {
		return err
	}
	return r.Set(c.Path(), v)
}

// Refresh re-runs every change handler with the current target values, so derived state
// (materials, geometry) matches the parameters after they were written directly.
func (r *Registry) Refresh() error {
	if r.dispatching {
		return fmt.Errorf("params: refresh: %w", ErrReentrant)
	}
	r.dispatching = true
	defer func() { r.dispatching = false }()
	for _, c := range r.Controls() {
		if c.kind == KindAction || c.onChange == nil {
			continue
		}
		c.onChange(c.get())
	}
	return nil
}

// Snapshot returns the current value of every non-action control keyed by path.
func (r *Registry) Snapshot() map[string]Value {
	out := make(map[string]Value, len(r.byPath))
	for path, c := range r.byPath {
		if c.kind == KindAction {
			continue
		}
		out[path] = c.get()
	}
	return out
}

// Apply writes each value of a snapshot in registration order. Unknown paths are reported
// after all known ones were written.
func (r *Registry) Apply(values map[string]Value) error {
	var errs []error
	seen := 0
	for _, c := range r.Controls() {
		v, ok := values[c.Path()]
		if !ok {
			continue
		}
		seen++
		if err := r.Set(c.Path(), v); err != nil {
			errs = append(errs, err)
		}
	}
	if seen != len(values) {
		for path := range values {
			if _, ok := r.byPath[path]; !ok {
				errs = append(errs, fmt.Errorf("params: %q: %w", path, ErrUnknownControl))
			}
		}
	}
	return errors.Join(errs...)
}
