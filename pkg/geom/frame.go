package geom

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Frame is a coordinate system anchored at a reference rectangle's center.
// X, Y and Z are the rows of the rotation matrix R. Each is normalized on its
// own; the frame is orthonormal only when the reference rectangle's edges
// are perpendicular.
type Frame struct {
	Origin  v3.Vec
	X, Y, Z v3.Vec
	NormX   float64 // |e1| of the reference rectangle
	NormY   float64 // |e2| of the reference rectangle
}

// NewFrame builds the local frame of ref.
func NewFrame(ref Rectangle3) Frame {
	vx, vy := ref.Edge1(), ref.Edge2()
	vz := vx.Cross(vy)
	return Frame{
		Origin: ref.Center,
		X:      vx.Normalize(),
		Y:      vy.Normalize(),
		Z:      vz.Normalize(),
		NormX:  vx.Length(),
		NormY:  vy.Length(),
	}
}

// Local maps a world point into the frame: (p - origin)·Rᵗ.
func (f Frame) Local(p v3.Vec) v3.Vec {
	d := p.Sub(f.Origin)
	return v3.Vec{X: d.Dot(f.X), Y: d.Dot(f.Y), Z: d.Dot(f.Z)}
}

// World maps a local point back to world space: q·R + origin.
func (f Frame) World(q v3.Vec) v3.Vec {
	return f.X.MulScalar(q.X).Add(f.Y.MulScalar(q.Y)).Add(f.Z.MulScalar(q.Z)).Add(f.Origin)
}

// Lift maps a point of the frame's z = 0 plane to world space.
func (f Frame) Lift(p v2.Vec) v3.Vec {
	return f.World(v3.Vec{X: p.X, Y: p.Y})
}

// Box returns the reference rectangle's footprint in local coordinates.
func (f Frame) Box() sdf.Box2 {
	return sdf.Box2{
		Min: v2.Vec{X: -f.NormX, Y: -f.NormY},
		Max: v2.Vec{X: f.NormX, Y: f.NormY},
	}
}

// Project maps each vertex into the frame.
func (f Frame) Project(vs [4]v3.Vec) [4]v3.Vec {
	var out [4]v3.Vec
	for i, v := range vs {
		out[i] = f.Local(v)
	}
	return out
}
