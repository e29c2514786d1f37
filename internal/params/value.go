package params

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Kind identifies which field of a Value is meaningful.
type Kind int

const (
	KindFloat Kind = iota
	KindInt
	KindBool
	KindColor
	KindOption
	KindAction
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindColor:
		return "color"
	case KindOption:
		return "option"
	case KindAction:
		return "action"
	}
	return "unknown"
}

// Value is the tagged union passed between the panel, the registry and the bindings.
type Value struct {
	Kind   Kind
	Float  float32
	Int    int
	Bool   bool
	Color  color.RGBA
	Option string
}

// Float wraps a float value.
func Float(v float32) Value { return Value{Kind: KindFloat, Float: v} }

// Int wraps an int value.
func Int(v int) Value { return Value{Kind: KindInt, Int: v} }

// Bool wraps a bool value.
func Bool(v bool) Value { return Value{Kind: KindBool, Bool: v} }

// Color wraps a color value.
func Color(v color.RGBA) Value { return Value{Kind: KindColor, Color: v} }

// Option wraps an enumerated choice.
func Option(v string) Value { return Value{Kind: KindOption, Option: v} }

// Action is the value used to trigger an action control.
func Action() Value { return Value{Kind: KindAction} }

// String formats the value the way the terminal and config files write it.
func (v Value) String() string {
	switch v.Kind {
	case KindFloat:
		return strconv.FormatFloat(float64(v.Float), 'f', -1, 32)
	case KindInt:
		return strconv.Itoa(v.Int)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindColor:
		return FormatColor(v.Color)
	case KindOption:
		return v.Option
	case KindAction:
		return "()"
	}
	return ""
}

// ParseValue parses s as a value of the given kind.
func ParseValue(kind Kind, s string) (Value, error) {
	s = strings.TrimSpace(s)
	switch kind {
	case KindFloat:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return Value{}, fmt.Errorf("params: parse float %q: %w", s, err)
		}
		return Float(float32(f)), nil
	case KindInt:
		n, err := strconv.Atoi(s)
		if err != nil {
			return Value{}, fmt.Errorf("params: parse int %q: %w", s, err)
		}
		return Int(n), nil
	case KindBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return Value{}, fmt.Errorf("params: parse bool %q: %w", s, err)
		}
		return Bool(b), nil
	case KindColor:
		c, err := ParseColor(s)
		if err != nil {
			return Value{}, err
		}
		return Color(c), nil
	case KindOption:
		return Option(s), nil
	case KindAction:
		return Action(), nil
	}
	return Value{}, fmt.Errorf("params: parse %q: unknown kind %d", s, kind)
}

// ParseColor parses #RGB, #RRGGBB or 0xRRGGBB into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	hex := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("params: parse color %q: want #rrggbb", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("params: parse color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 255}, nil
}

// FormatColor writes c as #rrggbb.
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
