package tessellate

import (
	"math"

	"github.com/chazu/dfnlink/pkg/geom"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// DefaultCells is the marching cubes resolution used when Options.Cells
// is zero.
const DefaultCells = 64

// slabSDF is a box of the rectangle's extent and the given thickness,
// centered on the rectangle's plane.
type slabSDF struct {
	frame geom.Frame
	half  v3.Vec
	bb    sdf.Box3
}

func newSlab(r geom.Rectangle3, aperture float64) *slabSDF {
	f := geom.NewFrame(r)
	pad := v3.Vec{X: aperture / 2, Y: aperture / 2, Z: aperture / 2}
	bb := r.Bounds()
	return &slabSDF{
		frame: f,
		half:  v3.Vec{X: f.NormX, Y: f.NormY, Z: aperture / 2},
		bb:    sdf.Box3{Min: bb.Min.Sub(pad), Max: bb.Max.Add(pad)},
	}
}

// Evaluate returns the signed distance from p to the slab.
func (s *slabSDF) Evaluate(p v3.Vec) float64 {
	q := s.frame.Local(p)
	d := v3.Vec{
		X: math.Abs(q.X) - s.half.X,
		Y: math.Abs(q.Y) - s.half.Y,
		Z: math.Abs(q.Z) - s.half.Z,
	}
	outside := v3.Vec{X: math.Max(d.X, 0), Y: math.Max(d.Y, 0), Z: math.Max(d.Z, 0)}
	inside := math.Min(math.Max(d.X, math.Max(d.Y, d.Z)), 0)
	return outside.Length() + inside
}

// BoundingBox returns a box containing the slab.
func (s *slabSDF) BoundingBox() sdf.Box3 {
	return s.bb
}

// slabMesh renders a fracture of the given aperture with marching cubes.
func slabMesh(r geom.Rectangle3, aperture float64, cells int) (*Mesh, error) {
	if err := geom.ValidateReference(r); err != nil {
		return nil, err
	}
	if cells <= 0 {
		cells = DefaultCells
	}

	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(newSlab(r, aperture), renderer)

	numVerts := len(triangles) * 3
	m := &Mesh{
		Vertices: make([]float32, 0, numVerts*3),
		Normals:  make([]float32, 0, numVerts*3),
		Indices:  make([]uint32, 0, numVerts),
	}
	for i, tri := range triangles {
		n := tri.Normal()
		for j := 0; j < 3; j++ {
			v := tri[j]
			m.Vertices = append(m.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			m.Normals = append(m.Normals, float32(n.X), float32(n.Y), float32(n.Z))
			m.Indices = append(m.Indices, uint32(i*3+j))
		}
	}
	return m, nil
}
