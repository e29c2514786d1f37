package tween

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimateReachesTarget(t *testing.T) {
	e := New()
	var y float32
	e.Animate(&y, 1, 2*math.Pi)
	assert.Equal(t, 1, e.Active())

	e.Update(0.5)
	// Quadratic ease-out covers three quarters of the distance at the halfway point.
	assert.InDelta(t, 0.75*2*math.Pi, y, 1e-4)

	e.Update(0.6)
	assert.InDelta(t, 2*math.Pi, y, 1e-6)
	assert.Zero(t, e.Active())
}

func TestAnimateIsMonotonic(t *testing.T) {
	e := New()
	var v float32
	e.Animate(&v, 1, 10)
	prev := v
	for i := 0; i < 60; i++ {
		e.Update(1.0 / 60)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
	assert.InDelta(t, 10, v, 1e-4)
}

func TestAnimateSameTargetReplaces(t *testing.T) {
	e := New()
	var v float32
	e.Animate(&v, 1, 10)
	e.Update(0.5)
	e.Animate(&v, 1, 0)
	assert.Equal(t, 1, e.Active())
	e.Update(1)
	assert.Zero(t, v)
}

func TestAnimateIndependentTargets(t *testing.T) {
	e := New()
	var a, b float32
	e.Animate(&a, 1, 1)
	e.Animate(&b, 2, 1)
	e.Update(1)
	assert.Equal(t, float32(1), a)
	assert.Less(t, b, float32(1))
	assert.Equal(t, 1, e.Active())
}

func TestAnimateZeroDurationJumps(t *testing.T) {
	e := New()
	v := float32(3)
	e.Animate(&v, 0, 7)
	assert.Equal(t, float32(7), v)
	assert.Zero(t, e.Active())
	e.Animate(nil, 1, 1)
	assert.Zero(t, e.Active())
}

func TestAnimateWithLinear(t *testing.T) {
	e := New()
	var v float32
	linear := func(t, b, c, d float32) float32 { return c*t/d + b }
	e.AnimateWith(&v, 2, 4, linear)
	e.Update(1)
	assert.InDelta(t, 2, v, 1e-6)
}
