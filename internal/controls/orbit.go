// Package controls moves a camera around a target point from pointer input.
package controls

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"cube-tweaks/internal/scene"
)

// DefaultDampingFactor is the share of the pending motion applied each frame.
const DefaultDampingFactor = 0.05

// Frame is the pointer input gathered since the previous Update.
// Rotate and Pan deltas are in pixels, Wheel in notches (positive zooms in).
type Frame struct {
	RotateX, RotateY float32
	PanX, PanY       float32
	Wheel            float32
	// Height of the viewport in pixels; deltas are scaled by it.
	Height float32
}

// Input supplies one Frame per Update.
type Input interface {
	Poll() Frame
}

// spherical coordinates around +Y: phi is the polar angle, theta the azimuth from +Z.
type spherical struct {
	radius, phi, theta float32
}

func fromOffset(v mgl32.Vec3) spherical {
	r := v.Len()
	if r == 0 {
		return spherical{}
	}
	return spherical{
		radius: r,
		theta:  math32.Atan2(v[0], v[2]),
		phi:    math32.Acos(mgl32.Clamp(v[1]/r, -1, 1)),
	}
}

func (s spherical) offset() mgl32.Vec3 {
	sinPhiRadius := math32.Sin(s.phi) * s.radius
	return mgl32.Vec3{
		sinPhiRadius * math32.Sin(s.theta),
		math32.Cos(s.phi) * s.radius,
		sinPhiRadius * math32.Cos(s.theta),
	}
}

// OrbitControls keeps the camera on a sphere around camera.Target. With damping enabled each
// Update applies DampingFactor of the pending rotation and pan and keeps the rest for later
// frames, so motion eases out after the pointer stops.
type OrbitControls struct {
	Camera *scene.Camera
	Input  Input

	EnableDamping bool
	DampingFactor float32
	RotateSpeed   float32
	ZoomSpeed     float32
	PanSpeed      float32
	MinDistance   float32
	MaxDistance   float32

	rotate spherical
	scale  float32
	pan    mgl32.Vec3
}

// NewOrbitControls returns controls bound to camera with damping off.
func NewOrbitControls(camera *scene.Camera, input Input) *OrbitControls {
	return &OrbitControls{
		Camera:        camera,
		Input:         input,
		DampingFactor: DefaultDampingFactor,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
		MaxDistance:   math32.Inf(1),
		scale:         1,
	}
}

// Pending reports whether rotation or pan is still being eased in.
func (o *OrbitControls) Pending() bool {
	const eps = 1e-6
	return math32.Abs(o.rotate.theta) > eps || math32.Abs(o.rotate.phi) > eps || o.pan.Len() > eps
}

// Update reads input and moves the camera. Call it once per frame before drawing.
func (o *OrbitControls) Update() {
	if o.Input != nil {
		o.handle(o.Input.Poll())
	}

	cam := o.Camera
	s := fromOffset(cam.Position.Sub(cam.Target))

	factor := float32(1)
	if o.EnableDamping {
		factor = o.DampingFactor
	}
	s.theta += o.rotate.theta * factor
	s.phi += o.rotate.phi * factor

	const eps = 1e-6
	s.phi = mgl32.Clamp(s.phi, eps, math32.Pi-eps)
	s.radius = mgl32.Clamp(s.radius*o.scale, o.MinDistance, o.MaxDistance)

	cam.Target = cam.Target.Add(o.pan.Mul(factor))
	cam.Position = cam.Target.Add(s.offset())

	if o.EnableDamping {
		o.rotate.theta *= 1 - o.DampingFactor
		o.rotate.phi *= 1 - o.DampingFactor
		o.pan = o.pan.Mul(1 - o.DampingFactor)
	} else {
		o.rotate = spherical{}
		o.pan = mgl32.Vec3{}
	}
	o.scale = 1
}

func (o *OrbitControls) handle(f Frame) {
	h := f.Height
	if h <= 0 {
		h = 1
	}
	if f.RotateX != 0 || f.RotateY != 0 {
		o.RotateLeft(2 * math32.Pi * f.RotateX / h * o.RotateSpeed)
		o.RotateUp(2 * math32.Pi * f.RotateY / h * o.RotateSpeed)
	}
	if f.PanX != 0 || f.PanY != 0 {
		o.Pan(f.PanX*o.PanSpeed, f.PanY*o.PanSpeed, h)
	}
	if f.Wheel != 0 {
		o.Dolly(math32.Pow(0.95, o.ZoomSpeed*math32.Abs(f.Wheel)), f.Wheel > 0)
	}
}

// RotateLeft queues an azimuth change in radians.
func (o *OrbitControls) RotateLeft(angle float32) { o.rotate.theta -= angle }

// RotateUp queues a polar change in radians.
func (o *OrbitControls) RotateUp(angle float32) { o.rotate.phi -= angle }

// Dolly queues a distance change by factor s (0 < s < 1); in moves toward the target.
func (o *OrbitControls) Dolly(s float32, in bool) {
	if s <= 0 {
		return
	}
	if in {
		o.scale *= s
	} else {
		o.scale /= s
	}
}

// Pan queues a target move for a pointer drag of dx, dy pixels in a viewport of height pixels,
// so the point under the cursor follows it at the target's depth.
func (o *OrbitControls) Pan(dx, dy, height float32) {
	cam := o.Camera
	offset := cam.Position.Sub(cam.Target)
	distance := offset.Len() * math32.Tan(mgl32.DegToRad(cam.Fov)/2)

	forward := offset.Mul(-1)
	if forward.Len() == 0 {
		return
	}
	forward = forward.Normalize()
	right := forward.Cross(cam.Up)
	if right.Len() == 0 {
		return
	}
	right = right.Normalize()
	up := right.Cross(forward)

	o.pan = o.pan.Add(right.Mul(-2 * dx * distance / height))
	o.pan = o.pan.Add(up.Mul(2 * dy * distance / height))
}
