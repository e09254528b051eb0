package types3

// Mesh is an input surface: an indexed list of triangles over a
// shared lattice vertex array, assumed closed and orientable. The
// core never mutates a Mesh; every stage reads it and produces new,
// independently owned data.
type Mesh struct {
	Triangles []Triangle
}

// NumTriangles returns the number of triangles in the mesh.
func (m Mesh) NumTriangles() int {
	return len(m.Triangles)
}

// RealTriangleAt returns the world-space triangle for lattice triangle idx.
func (m Mesh) RealTriangleAt(idx int) RealTriangle {
	t := m.Triangles[idx]
	return RealTriangle{A: t.V0.ToReal(), B: t.V1.ToReal(), C: t.V2.ToReal()}
}

// RealMesh is the final indexed triangle mesh produced by assembly.
// Every edge is used by exactly two triangles; no triangle has
// two equal vertex indices.
type RealMesh struct {
	Vertices  []RealPoint
	Triangles [][3]int
}

// NumVertices returns the number of vertices in the mesh.
func (m RealMesh) NumVertices() int {
	return len(m.Vertices)
}

// NumTriangles returns the number of triangles in the mesh.
func (m RealMesh) NumTriangles() int {
	return len(m.Triangles)
}

// TriangleAt returns the three world-space corners of triangle idx.
func (m RealMesh) TriangleAt(idx int) RealTriangle {
	t := m.Triangles[idx]
	return RealTriangle{A: m.Vertices[t[0]], B: m.Vertices[t[1]], C: m.Vertices[t[2]]}
}
