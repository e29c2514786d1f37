package render

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestRadianceScalesByIntensity(t *testing.T) {
	got := radiance(color.RGBA{R: 255, G: 0, B: 51, A: 255}, 2)
	assert.InDelta(t, 2, got[0], 1e-6)
	assert.Zero(t, got[1])
	assert.InDelta(t, 0.4, got[2], 1e-6)
}

func TestToMatrixKeepsTranslation(t *testing.T) {
	m := toMatrix(mgl32.Translate3D(1, 2, 3))
	assert.Equal(t, float32(1), m.M12)
	assert.Equal(t, float32(2), m.M13)
	assert.Equal(t, float32(3), m.M14)
	assert.Equal(t, float32(1), m.M0)
	assert.Equal(t, float32(1), m.M15)
}

func TestToColorClampsOpacity(t *testing.T) {
	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	assert.Equal(t, uint8(255), toColor(c, 2).A)
	assert.Equal(t, uint8(0), toColor(c, -1).A)
	assert.Equal(t, uint8(127), toColor(c, 0.5).A)
}
