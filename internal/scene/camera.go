package scene

import "github.com/go-gl/mathgl/mgl32"

// Camera is a perspective camera looking at Target. Fov is the vertical field of view in
// degrees. After changing Fov, Aspect, Near or Far call UpdateProjectionMatrix.
type Camera struct {
	Fov      float32
	Aspect   float32
	Near     float32
	Far      float32
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	projection mgl32.Mat4
}

// NewPerspectiveCamera returns a camera at the origin looking down -Z.
func NewPerspectiveCamera(fov, aspect, near, far float32) *Camera {
	c := &Camera{
		Fov:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Target: mgl32.Vec3{0, 0, -1},
		Up:     mgl32.Vec3{0, 1, 0},
	}
	c.UpdateProjectionMatrix()
	return c
}

func (c *Camera) attach(s *Scene) { s.cameras = append(s.cameras, c) }

// UpdateProjectionMatrix recomputes the projection from Fov, Aspect, Near and Far.
func (c *Camera) UpdateProjectionMatrix() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

// Projection returns the matrix computed by the last UpdateProjectionMatrix call.
func (c *Camera) Projection() mgl32.Mat4 {
	return c.projection
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}
