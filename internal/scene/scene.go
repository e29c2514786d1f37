package scene

import (
	"image/color"

	"cube-tweaks/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

// Node is anything that can be attached to a Scene: meshes, lights and cameras.
type Node interface {
	attach(s *Scene)
}

// Scene is the root container the renderer walks each frame. Children are kept per kind
// in insertion order so drawing order is stable.
type Scene struct {
	Background color.RGBA
	meshes     []*Mesh
	lights     []*Light
	cameras    []*Camera
}

// New returns an empty scene with a dark background.
func New() *Scene {
	return &Scene{Background: color.RGBA{R: 18, G: 18, B: 24, A: 255}}
}

// Add attaches nodes to the scene.
func (s *Scene) Add(nodes ...Node) {
	for _, n := range nodes {
		n.attach(s)
	}
}

// Meshes returns the attached meshes in insertion order.
func (s *Scene) Meshes() []*Mesh { return s.meshes }

// Lights returns the attached lights in insertion order.
func (s *Scene) Lights() []*Light { return s.lights }

// Cameras returns the attached cameras in insertion order.
func (s *Scene) Cameras() []*Camera { return s.cameras }

// Mesh combines a geometry with a material and a transform.
// Rotation is Euler angles in radians applied in X, Y, Z order.
type Mesh struct {
	Name     string
	Geometry *geometry.Geometry
	Material *Material
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
	Visible  bool
}

// NewMesh returns a visible mesh at the origin with unit scale.
func NewMesh(name string, g *geometry.Geometry, m *Material) *Mesh {
	return &Mesh{
		Name:     name,
		Geometry: g,
		Material: m,
		Scale:    mgl32.Vec3{1, 1, 1},
		Visible:  true,
	}
}

func (m *Mesh) attach(s *Scene) { s.meshes = append(s.meshes, m) }

// SetGeometry swaps the mesh geometry and disposes the previous one.
func (m *Mesh) SetGeometry(g *geometry.Geometry) {
	if m.Geometry != nil && m.Geometry != g {
		m.Geometry.Dispose()
	}
	m.Geometry = g
}

// Matrix returns the local-to-world transform: translate * rotX * rotY * rotZ * scale.
func (m *Mesh) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(m.Position.X(), m.Position.Y(), m.Position.Z()).
		Mul4(mgl32.HomogRotate3DX(m.Rotation.X())).
		Mul4(mgl32.HomogRotate3DY(m.Rotation.Y())).
		Mul4(mgl32.HomogRotate3DZ(m.Rotation.Z())).
		Mul4(mgl32.Scale3D(m.Scale.X(), m.Scale.Y(), m.Scale.Z()))
}
