package geom

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Rectangle3 is a planar rectangle defined by its center and the midpoints
// of two adjacent sides.
type Rectangle3 struct {
	Center v3.Vec `json:"center"`
	Mid1   v3.Vec `json:"mid1"` // midpoint of the first side
	Mid2   v3.Vec `json:"mid2"` // midpoint of the adjacent side
}

// NewRectangle builds a rectangle from its center and two half-edge vectors.
func NewRectangle(center, half1, half2 v3.Vec) Rectangle3 {
	return Rectangle3{Center: center, Mid1: center.Add(half1), Mid2: center.Add(half2)}
}

// Edge1 returns the first half-edge vector.
func (r Rectangle3) Edge1() v3.Vec {
	return r.Mid1.Sub(r.Center)
}

// Edge2 returns the second half-edge vector.
func (r Rectangle3) Edge2() v3.Vec {
	return r.Mid2.Sub(r.Center)
}

// Translate returns the rectangle moved by d.
func (r Rectangle3) Translate(d v3.Vec) Rectangle3 {
	return Rectangle3{Center: r.Center.Add(d), Mid1: r.Mid1.Add(d), Mid2: r.Mid2.Add(d)}
}

func (r Rectangle3) String() string {
	c, m1, m2 := r.Center, r.Mid1, r.Mid2
	return fmt.Sprintf("rect(%g %g %g | %g %g %g | %g %g %g)",
		c.X, c.Y, c.Z, m1.X, m1.Y, m1.Z, m2.X, m2.Y, m2.Z)
}

// Vertices returns the four corners in cyclic order, starting at
// center+e1+e2. Consecutive entries (and the last with the first) are
// adjacent corners.
func (r Rectangle3) Vertices() [4]v3.Vec {
	e1, e2 := r.Edge1(), r.Edge2()
	c := r.Center
	return [4]v3.Vec{
		c.Add(e1).Add(e2),
		c.Add(e1).Sub(e2),
		c.Sub(e1).Sub(e2),
		c.Sub(e1).Add(e2),
	}
}

// DiagonalLength returns |P1 - P3| for vertices in cyclic order.
func DiagonalLength(vs [4]v3.Vec) float64 {
	return vs[0].Sub(vs[2]).Length()
}

// Area returns the rectangle's area, 4·|e1|·|e2|.
func (r Rectangle3) Area() float64 {
	return r.Edge1().Length() * r.Edge2().Length() * 4.0
}

// Bounds returns the world-space axis-aligned bounding box of the rectangle.
func (r Rectangle3) Bounds() sdf.Box3 {
	vs := r.Vertices()
	bb := sdf.Box3{Min: vs[0], Max: vs[0]}
	for _, v := range vs[1:] {
		bb.Min = v3.Vec{X: math.Min(bb.Min.X, v.X), Y: math.Min(bb.Min.Y, v.Y), Z: math.Min(bb.Min.Z, v.Z)}
		bb.Max = v3.Vec{X: math.Max(bb.Max.X, v.X), Y: math.Max(bb.Max.Y, v.Y), Z: math.Max(bb.Max.Z, v.Z)}
	}
	return bb
}

// ---------------------------------------------------------------------------
// Flat encodings
// ---------------------------------------------------------------------------

// RC3 returns the 9-number form: center, first midpoint, second midpoint.
func (r Rectangle3) RC3() [9]float64 {
	c, m1, m2 := r.Center, r.Mid1, r.Mid2
	return [9]float64{c.X, c.Y, c.Z, m1.X, m1.Y, m1.Z, m2.X, m2.Y, m2.Z}
}

// FromRC3 is the inverse of RC3.
func FromRC3(f [9]float64) Rectangle3 {
	return Rectangle3{
		Center: v3.Vec{X: f[0], Y: f[1], Z: f[2]},
		Mid1:   v3.Vec{X: f[3], Y: f[4], Z: f[5]},
		Mid2:   v3.Vec{X: f[6], Y: f[7], Z: f[8]},
	}
}

// FromVertical converts a vertical fracture, given by two opposite corners
// (x0, y0, z0) and (x1, y1, z1), into a Rectangle3. The first midpoint lies
// on the top side (z = z1) and the second on the side through (x0, y0).
func FromVertical(x0, y0, z0, x1, y1, z1 float64) Rectangle3 {
	return Rectangle3{
		Center: v3.Vec{X: (x0 + x1) / 2, Y: (y0 + y1) / 2, Z: (z0 + z1) / 2},
		Mid1:   v3.Vec{X: (x0 + x1) / 2, Y: (y0 + y1) / 2, Z: z1},
		Mid2:   v3.Vec{X: x0, Y: y0, Z: (z0 + z1) / 2},
	}
}

// Vertical returns two opposite corners of a vertical rectangle. For a
// rectangle built by FromVertical(x0, y0, z0, x1, y1, z1) the corners come
// back as (x0, y0, z1) and (x1, y1, z0): the other diagonal of the same
// rectangle. The result is only meaningful for rectangles that really are
// vertical with one horizontal side.
func (r Rectangle3) Vertical() [6]float64 {
	mid := r.Mid1.Add(r.Mid2).MulScalar(0.5)
	p0 := mid.MulScalar(2).Sub(r.Center)
	p1 := r.Center.MulScalar(2).Sub(p0)
	return [6]float64{p0.X, p0.Y, p0.Z, p1.X, p1.Y, p1.Z}
}
