package render

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cube-tweaks/internal/geometry"
)

// gpuMesh is a raylib mesh whose CPU arrays live in raylib-allocated memory, so UnloadMesh
// can free them and cgo never sees Go pointers inside the mesh struct.
type gpuMesh struct {
	mesh     rl.Mesh
	vertices []float32
}

func uploadGeometry(g *geometry.Geometry) *gpuMesh {
	m := rl.Mesh{
		VertexCount:   int32(g.VertexCount()),
		TriangleCount: int32(g.TriangleCount()),
	}
	verts := cFloats(g.Positions)
	if len(verts) > 0 {
		m.Vertices = &verts[0]
	}
	if normals := cFloats(g.Normals); len(normals) > 0 {
		m.Normals = &normals[0]
	}
	if uvs := cFloats(g.UVs); len(uvs) > 0 {
		m.Texcoords = &uvs[0]
	}
	if idx := cUint16s(g.Indices); len(idx) > 0 {
		m.Indices = &idx[0]
	}
	// Dynamic buffers: positions are rewritten whenever the geometry is flagged.
	rl.UploadMesh(&m, true)
	return &gpuMesh{mesh: m, vertices: verts}
}

// updatePositions copies new positions into the vertex buffer. The length must match.
func (g *gpuMesh) updatePositions(pos []float32) {
	if len(pos) != len(g.vertices) || len(pos) == 0 {
		return
	}
	copy(g.vertices, pos)
	data := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(g.vertices))), len(g.vertices)*4)
	rl.UpdateMeshBuffer(g.mesh, 0, data, 0)
}

func (g *gpuMesh) unload() {
	rl.UnloadMesh(&g.mesh)
	g.vertices = nil
}

func cFloats(src []float32) []float32 {
	if len(src) == 0 {
		return nil
	}
	p := rl.MemAlloc(uint32(len(src) * 4))
	dst := unsafe.Slice((*float32)(p), len(src))
	copy(dst, src)
	return dst
}

func cUint16s(src []uint16) []uint16 {
	if len(src) == 0 {
		return nil
	}
	p := rl.MemAlloc(uint32(len(src) * 2))
	dst := unsafe.Slice((*uint16)(p), len(src))
	copy(dst, src)
	return dst
}
