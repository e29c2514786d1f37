package params

import (
	"fmt"
	"image/color"

	"github.com/jinzhu/copier"
)

// Render styles offered by the "style" option control.
const (
	StyleNormal    = "normal"
	StyleWireframe = "wireframe"
	StyleFlat      = "flat"
)

// Styles lists the render styles in panel order.
var Styles = []string{StyleNormal, StyleWireframe, StyleFlat}

// State holds the plain values the panel edits. Controls bind to its fields by pointer.
type State struct {
	Color                color.RGBA
	Subdivisions         int
	Extrusion            float32
	TextureEnabled       bool
	Style                string
	AmbientIntensity     float32
	DirectionalIntensity float32
	PointIntensity       float32
	ShowGrid             bool
	ShowStats            bool
}

// DefaultState returns the values the scene starts with.
func DefaultState() State {
	return State{
		Color:                color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Subdivisions:         2,
		TextureEnabled:       true,
		Style:                StyleNormal,
		AmbientIntensity:     0.5,
		DirectionalIntensity: 1.5,
		PointIntensity:       10,
		ShowGrid:             true,
	}
}

// Restore copies src over dst in place so bound pointers stay valid.
func Restore(dst *State, src State) error {
	if err := copier.CopyWithOption(dst, &src, copier.Option{DeepCopy: true}); err != nil {
		return fmt.Errorf("params: restore state: %w", err)
	}
	return nil
}

// StyleFlags maps a render style to the material's wireframe and flat-shading flags.
// Unknown styles render normally.
func StyleFlags(style string) (wireframe, flat bool) {
	switch style {
	case StyleWireframe:
		return true, false
	case StyleFlat:
		return false, true
	}
	return false, false
}
