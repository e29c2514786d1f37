package host

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestLeftDragRotates(t *testing.T) {
	var p Pointer
	p.Step(Sample{Left: true, Pressed: true, Height: 600})
	f := p.Step(Sample{Left: true, Delta: rl.NewVector2(4, -2), Height: 600})
	assert.Equal(t, float32(4), f.RotateX)
	assert.Equal(t, float32(-2), f.RotateY)
	assert.Zero(t, f.PanX)
	assert.Equal(t, float32(600), f.Height)
}

func TestRightDragPans(t *testing.T) {
	var p Pointer
	f := p.Step(Sample{Right: true, Pressed: true, Delta: rl.NewVector2(3, 5)})
	assert.Equal(t, float32(3), f.PanX)
	assert.Equal(t, float32(5), f.PanY)
	assert.Zero(t, f.RotateX)
}

func TestDragStartedOnOverlayIsIgnored(t *testing.T) {
	var p Pointer
	p.Step(Sample{Left: true, Pressed: true, Blocked: true})
	f := p.Step(Sample{Left: true, Delta: rl.NewVector2(10, 10)})
	assert.Zero(t, f.RotateX)

	// Releasing and pressing on the scene starts a real drag.
	p.Step(Sample{})
	f = p.Step(Sample{Left: true, Pressed: true, Delta: rl.NewVector2(1, 0)})
	assert.Equal(t, float32(1), f.RotateX)
}

func TestDragContinuesAcrossOverlay(t *testing.T) {
	var p Pointer
	p.Step(Sample{Left: true, Pressed: true})
	f := p.Step(Sample{Left: true, Blocked: true, Delta: rl.NewVector2(2, 0)})
	assert.Equal(t, float32(2), f.RotateX)
}

func TestWheelIgnoredOverOverlay(t *testing.T) {
	var p Pointer
	assert.Equal(t, float32(1), p.Step(Sample{Wheel: 1}).Wheel)
	assert.Zero(t, p.Step(Sample{Wheel: 1, Blocked: true}).Wheel)
}
