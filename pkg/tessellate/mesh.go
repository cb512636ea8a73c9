package tessellate

// Mesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	PartName string    `json:"partName"` // which fracture this came from
	Cluster  int       `json:"cluster"`  // connected cluster of the fracture
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Trace is the intersection of two fractures as line geometry. Points has
// 3 floats per point: one point for a point contact, two for a segment.
type Trace struct {
	A      int       `json:"a"`
	B      int       `json:"b"`
	Kind   string    `json:"kind"`
	Points []float32 `json:"points"`
}

// Warning notes a fracture that could not be drawn as requested.
type Warning struct {
	Fracture int    `json:"fracture"`
	Message  string `json:"message"`
}

// Scene is everything a viewer needs to draw a fracture network.
type Scene struct {
	Meshes   []*Mesh   `json:"meshes"`
	Traces   []Trace   `json:"traces"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// TriangleCount returns the number of triangles over all meshes.
func (s *Scene) TriangleCount() int {
	total := 0
	for _, m := range s.Meshes {
		total += m.TriangleCount()
	}
	return total
}
