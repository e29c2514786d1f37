package params

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Control binds one named parameter to a target through a typed getter/setter pair.
// Constraints (range, step, options) are enforced on every write.
type Control struct {
	name     string
	folder   *Folder
	kind     Kind
	min, max float32
	step     float32
	options  []string

	get      func() Value
	set      func(Value)
	action   func()
	onChange func(Value)
}

// Name returns the control name.
func (c *Control) Name() string { return c.name }

// Path returns "folder/name".
func (c *Control) Path() string { return c.folder.name + "/" + c.name }

// Folder returns the folder the control belongs to.
func (c *Control) Folder() *Folder { return c.folder }

// Kind returns the value kind the control accepts.
func (c *Control) Kind() Kind { return c.kind }

// Range returns min, max and step for numeric controls.
func (c *Control) Range() (min, max, step float32) { return c.min, c.max, c.step }

// Options returns the permitted choices for option controls.
func (c *Control) Options() []string { return slices.Clone(c.options) }

// Value reads the current value from the target. Actions report Action().
func (c *Control) Value() Value {
	if c.get == nil {
		return Action()
	}
	return c.get()
}

// OnChange registers the handler run after the target was written.
func (c *Control) OnChange(fn func(Value)) *Control {
	c.onChange = fn
	return c
}

// normalize checks v against the control constraints and returns the value to write.
func (c *Control) normalize(v Value) (Value, error) {
	if v.Kind == KindFloat && math.IsNaN(float64(v.Float)) {
		return Value{}, fmt.Errorf("params: %s: %w", c.Path(), ErrInvalidNumber)
	}
	if v.Kind != c.kind {
		// Integers typed into a float control (and vice versa) are accepted.
		switch {
		case c.kind == KindFloat && v.Kind == KindInt:
			v = Float(float32(v.Int))
		case c.kind == KindInt && v.Kind == KindFloat:
			// Clamp before converting so infinities stay in int range.
			v = Int(int(math.Round(float64(clamp(v.Float, c.min, c.max)))))
		default:
			return Value{}, fmt.Errorf("params: %s wants %s, got %s: %w", c.Path(), c.kind, v.Kind, ErrKindMismatch)
		}
	}
	switch c.kind {
	case KindFloat:
		v.Float = clamp(snap(v.Float, c.min, c.step), c.min, c.max)
	case KindInt:
		v.Int = clamp(snap(v.Int, int(c.min), int(c.step)), int(c.min), int(c.max))
	case KindOption:
		if !slices.Contains(c.options, v.Option) {
			return Value{}, fmt.Errorf("params: %s: %q not in %v: %w", c.Path(), v.Option, c.options, ErrInvalidOption)
		}
	}
	return v, nil
}

func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if lo > hi {
		return v
	}
	return min(max(v, lo), hi)
}

// snap rounds v to the nearest multiple of step counted from origin. Values already on the
// grid are returned unchanged so float32 rounding never nudges them.
func snap[T constraints.Integer | constraints.Float](v, origin, step T) T {
	if step <= 0 {
		return v
	}
	n := math.Round(float64(v-origin) / float64(step))
	snapped := float64(origin) + n*float64(step)
	if math.Abs(snapped-float64(v)) <= float64(step)*1e-3 {
		return v
	}
	return T(snapped)
}

// Folder groups controls under a title, the way the panel shows them.
type Folder struct {
	name     string
	registry *Registry
	controls []*Control
	// Closed is the initial collapsed state in the panel.
	Closed bool
}

// Name returns the folder title.
func (f *Folder) Name() string { return f.name }

// Controls returns the controls in registration order.
func (f *Folder) Controls() []*Control { return slices.Clone(f.controls) }

func (f *Folder) add(c *Control) *Control {
	c.folder = f
	f.controls = append(f.controls, c)
	f.registry.index(c)
	return c
}

// AddFloat binds a float32 field, clamped to [min,max] and snapped to step.
func (f *Folder) AddFloat(name string, target *float32, min, max, step float32) *Control {
	return f.AddFloatFunc(name, func() float32 { return *target }, func(v float32) { *target = v }, min, max, step)
}

// AddFloatFunc binds a float through an explicit getter/setter pair.
func (f *Folder) AddFloatFunc(name string, get func() float32, set func(float32), min, max, step float32) *Control {
	return f.add(&Control{
		name: name, kind: KindFloat, min: min, max: max, step: step,
		get: func() Value { return Float(get()) },
		set: func(v Value) { set(v.Float) },
	})
}

// AddInt binds an int field, clamped to [min,max] and snapped to step.
func (f *Folder) AddInt(name string, target *int, min, max, step int) *Control {
	return f.add(&Control{
		name: name, kind: KindInt, min: float32(min), max: float32(max), step: float32(step),
		get: func() Value { return Int(*target) },
		set: func(v Value) { *target = v.Int },
	})
}

// AddBool binds a bool field.
func (f *Folder) AddBool(name string, target *bool) *Control {
	return f.add(&Control{
		name: name, kind: KindBool,
		get: func() Value { return Bool(*target) },
		set: func(v Value) { *target = v.Bool },
	})
}

// AddColor binds a color field.
func (f *Folder) AddColor(name string, target *color.RGBA) *Control {
	return f.add(&Control{
		name: name, kind: KindColor,
		get: func() Value { return Color(*target) },
		set: func(v Value) { *target = v.Color },
	})
}

// AddOption binds a string field restricted to options.
func (f *Folder) AddOption(name string, target *string, options ...string) *Control {
	return f.add(&Control{
		name: name, kind: KindOption, options: options,
		get: func() Value { return Option(*target) },
		set: func(v Value) { *target = v.Option },
	})
}

// AddAction registers a button that runs fn.
func (f *Folder) AddAction(name string, fn func()) *Control {
	return f.add(&Control{name: name, kind: KindAction, action: fn})
}
