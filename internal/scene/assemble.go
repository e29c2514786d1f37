package scene

import (
	"image/color"
	"math"

	"cube-tweaks/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

// Default scene layout.
const (
	CubeSize             = 1
	DefaultSubdivs       = 2
	FloorSize            = 10
	FloorHeight          = -0.65
	CameraFov            = 75
	CameraNear           = 0.1
	CameraFar            = 100
	CameraDistance       = 3
	AmbientIntensity     = 0.5
	DirectionalIntensity = 1.5
	PointIntensity       = 10
)

// Options tunes the initial scene.
type Options struct {
	Aspect       float32
	Subdivisions int
	CubeColor    color.RGBA
}

// Parts holds the assembled scene and direct references to the objects the debug
// parameters reach into.
type Parts struct {
	Scene       *Scene
	Cube        *Mesh
	Floor       *Mesh
	Ambient     *Light
	Directional *Light
	Point       *Light
	Camera      *Camera
}

// Assemble builds the cube, the floor, three lights and the camera and attaches them
// to a new scene.
func Assemble(o Options) *Parts {
	if o.Aspect <= 0 {
		o.Aspect = 1
	}
	if o.Subdivisions <= 0 {
		o.Subdivisions = DefaultSubdivs
	}
	if o.CubeColor == (color.RGBA{}) {
		o.CubeColor = color.RGBA{255, 255, 255, 255}
	}

	p := &Parts{Scene: New()}

	box := geometry.NewBoxGeometry(CubeSize, CubeSize, CubeSize, o.Subdivisions, o.Subdivisions, o.Subdivisions)
	p.Cube = NewMesh("cube", box, NewMaterial(o.CubeColor))

	floorMat := NewMaterial(color.RGBA{120, 120, 130, 255})
	p.Floor = NewMesh("floor", geometry.NewPlaneGeometry(FloorSize, FloorSize, 1, 1), floorMat)
	p.Floor.Rotation[0] = -math.Pi / 2
	p.Floor.Position[1] = FloorHeight

	p.Ambient = NewLight(AmbientLight, AmbientIntensity, mgl32.Vec3{})
	p.Directional = NewLight(DirectionalLight, DirectionalIntensity, mgl32.Vec3{2, 2, 2})
	p.Point = NewLight(PointLight, PointIntensity, mgl32.Vec3{-2, 1.5, 1})

	p.Camera = NewPerspectiveCamera(CameraFov, o.Aspect, CameraNear, CameraFar)
	p.Camera.Position = mgl32.Vec3{0, 0, CameraDistance}
	p.Camera.Target = mgl32.Vec3{}

	p.Scene.Add(p.Cube, p.Floor, p.Ambient, p.Directional, p.Point, p.Camera)
	return p
}
