package geometry

// Geometry is an indexed triangle mesh kept as flat float32 buffers so it can be handed
// to the GPU without conversion. Positions and Normals hold x,y,z triples, UVs hold u,v pairs.
//
// NeedsUpdate tells the renderer that Positions changed and must be uploaded again.
// The renderer clears it after the upload.
type Geometry struct {
	Positions   []float32
	Normals     []float32
	UVs         []float32
	Indices     []uint16
	NeedsUpdate bool
	disposed    bool
}

// VertexCount returns the number of vertices (position triples).
func (g *Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

// TriangleCount returns the number of indexed triangles.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// Dispose marks the geometry as no longer used so the renderer can free its GPU buffers.
func (g *Geometry) Dispose() {
	g.disposed = true
}

// Disposed reports whether Dispose was called.
func (g *Geometry) Disposed() bool {
	return g.disposed
}

// axis indexes into an x,y,z triple.
type axis int

const (
	axisX axis = iota
	axisY
	axisZ
)

// builder accumulates vertices and indices for one geometry.
type builder struct {
	g *Geometry
}

func newBuilder(vertices, indices int) *builder {
	return &builder{g: &Geometry{
		Positions: make([]float32, 0, vertices*3),
		Normals:   make([]float32, 0, vertices*3),
		UVs:       make([]float32, 0, vertices*2),
		Indices:   make([]uint16, 0, indices),
	}}
}

// plane appends one grid of (gridX+1)*(gridY+1) vertices lying on the plane w = depth/2.
// u and v pick which axes the grid spans, udir and vdir flip them so every face winds
// counter-clockwise when seen from outside.
func (b *builder) plane(u, v, w axis, udir, vdir, width, height, depth float32, gridX, gridY int) {
	segW := width / float32(gridX)
	segH := height / float32(gridY)
	halfW, halfH, halfD := width/2, height/2, depth/2
	gridX1 := gridX + 1
	base := uint16(b.g.VertexCount())

	normalW := float32(1)
	if depth < 0 {
		normalW = -1
	}

	for iy := 0; iy <= gridY; iy++ {
		y := float32(iy)*segH - halfH
		for ix := 0; ix <= gridX; ix++ {
			x := float32(ix)*segW - halfW

			var p, n [3]float32
			p[u] = x * udir
			p[v] = y * vdir
			p[w] = halfD
			n[w] = normalW

			b.g.Positions = append(b.g.Positions, p[0], p[1], p[2])
			b.g.Normals = append(b.g.Normals, n[0], n[1], n[2])
			b.g.UVs = append(b.g.UVs, float32(ix)/float32(gridX), 1-float32(iy)/float32(gridY))
		}
	}

	for iy := 0; iy < gridY; iy++ {
		for ix := 0; ix < gridX; ix++ {
			a := base + uint16(ix+gridX1*iy)
			bb := base + uint16(ix+gridX1*(iy+1))
			c := base + uint16(ix+1+gridX1*(iy+1))
			d := base + uint16(ix+1+gridX1*iy)
			b.g.Indices = append(b.g.Indices, a, bb, d, bb, c, d)
		}
	}
}

// NewBoxGeometry builds a box centered on the origin. Each face is split into a grid of
// segments; segment counts below 1 are raised to 1.
func NewBoxGeometry(width, height, depth float32, widthSegs, heightSegs, depthSegs int) *Geometry {
	widthSegs, heightSegs, depthSegs = max(widthSegs, 1), max(heightSegs, 1), max(depthSegs, 1)

	vertices := 2 * ((widthSegs+1)*(heightSegs+1) + (widthSegs+1)*(depthSegs+1) + (depthSegs+1)*(heightSegs+1))
	indices := 2 * 6 * (widthSegs*heightSegs + widthSegs*depthSegs + depthSegs*heightSegs)
	b := newBuilder(vertices, indices)

	b.plane(axisZ, axisY, axisX, -1, -1, depth, height, width, depthSegs, heightSegs)  // px
	b.plane(axisZ, axisY, axisX, 1, -1, depth, height, -width, depthSegs, heightSegs)  // nx
	b.plane(axisX, axisZ, axisY, 1, 1, width, depth, height, widthSegs, depthSegs)     // py
	b.plane(axisX, axisZ, axisY, 1, -1, width, depth, -height, widthSegs, depthSegs)   // ny
	b.plane(axisX, axisY, axisZ, 1, -1, width, height, depth, widthSegs, heightSegs)   // pz
	b.plane(axisX, axisY, axisZ, -1, -1, width, height, -depth, widthSegs, heightSegs) // nz
	return b.g
}

// NewPlaneGeometry builds a plane in the XY plane facing +Z, centered on the origin.
func NewPlaneGeometry(width, height float32, widthSegs, heightSegs int) *Geometry {
	widthSegs, heightSegs = max(widthSegs, 1), max(heightSegs, 1)
	b := newBuilder((widthSegs+1)*(heightSegs+1), 6*widthSegs*heightSegs)
	b.plane(axisX, axisY, axisZ, 1, -1, width, height, 0, widthSegs, heightSegs)
	return b.g
}
