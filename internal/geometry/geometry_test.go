package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxGeometryCounts(t *testing.T) {
	tests := []struct {
		segs      int
		vertices  int
		triangles int
	}{
		{1, 24, 12},
		{2, 54, 48},
		{5, 216, 300},
	}
	for _, tt := range tests {
		g := NewBoxGeometry(1, 1, 1, tt.segs, tt.segs, tt.segs)
		assert.Equal(t, tt.vertices, g.VertexCount(), "segs %d", tt.segs)
		assert.Equal(t, tt.triangles, g.TriangleCount(), "segs %d", tt.segs)
		assert.Len(t, g.Normals, len(g.Positions))
		assert.Len(t, g.UVs, tt.vertices*2)
	}
}

func TestBoxGeometryBounds(t *testing.T) {
	g := NewBoxGeometry(2, 1, 4, 3, 1, 2)
	half := [3]float32{1, 0.5, 2}
	for i := 0; i < len(g.Positions); i += 3 {
		for a := 0; a < 3; a++ {
			assert.LessOrEqual(t, g.Positions[i+a], half[a]+1e-5)
			assert.GreaterOrEqual(t, g.Positions[i+a], -half[a]-1e-5)
		}
	}
}

func TestBoxGeometryClampsSegments(t *testing.T) {
	assert.Equal(t, 24, NewBoxGeometry(1, 1, 1, 0, -3, 0).VertexCount())
}

func TestBoxNormalsPointOutward(t *testing.T) {
	g := NewBoxGeometry(1, 1, 1, 2, 2, 2)
	for i := 0; i < len(g.Positions); i += 3 {
		var dot float32
		for a := 0; a < 3; a++ {
			dot += g.Positions[i+a] * g.Normals[i+a]
		}
		assert.InDelta(t, 0.5, dot, 1e-6, "vertex %d", i/3)
	}
}

func TestPlaneGeometry(t *testing.T) {
	g := NewPlaneGeometry(10, 10, 1, 1)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, []uint16{0, 2, 1, 2, 3, 1}, g.Indices)
	for i := 2; i < len(g.Normals); i += 3 {
		assert.Equal(t, float32(1), g.Normals[i])
	}
}

func TestDispose(t *testing.T) {
	g := NewPlaneGeometry(1, 1, 1, 1)
	assert.False(t, g.Disposed())
	g.Dispose()
	assert.True(t, g.Disposed())
}
