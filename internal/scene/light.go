package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// LightKind selects how a light contributes to shading.
type LightKind int

const (
	// AmbientLight lights every surface equally; Position is ignored.
	AmbientLight LightKind = iota
	// DirectionalLight shines from Position toward the origin.
	DirectionalLight
	// PointLight radiates from Position with distance falloff.
	PointLight
)

func (k LightKind) String() string {
	switch k {
	case AmbientLight:
		return "ambient"
	case DirectionalLight:
		return "directional"
	case PointLight:
		return "point"
	}
	return "unknown"
}

// Light is a light source attached to the scene.
type Light struct {
	Kind      LightKind
	Color     color.RGBA
	Intensity float32
	Position  mgl32.Vec3
}

// NewLight returns a white light of the given kind.
func NewLight(kind LightKind, intensity float32, position mgl32.Vec3) *Light {
	return &Light{Kind: kind, Color: color.RGBA{255, 255, 255, 255}, Intensity: intensity, Position: position}
}

func (l *Light) attach(s *Scene) { s.lights = append(s.lights, l) }

// Direction returns the normalized direction from the light toward the origin.
// Only meaningful for directional lights.
func (l *Light) Direction() mgl32.Vec3 {
	if l.Position.Len() == 0 {
		return mgl32.Vec3{0, -1, 0}
	}
	return l.Position.Mul(-1).Normalize()
}
