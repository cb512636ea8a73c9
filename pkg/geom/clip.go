package geom

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// LineLineIntersect intersects segment p1→p2 with segment p3→p4. It reports
// false when the segments are parallel or collinear (singular system) or when
// the crossing lies outside either segment.
func LineLineIntersect(p1, p2, p3, p4 v2.Vec) (v2.Vec, bool) {
	// [a b; c d]·[t s]ᵀ = [e f]ᵀ
	a, b := p2.X-p1.X, p3.X-p4.X
	c, d := p2.Y-p1.Y, p3.Y-p4.Y
	e, f := p3.X-p1.X, p3.Y-p1.Y

	det := a*d - b*c
	if det == 0 {
		return v2.Vec{}, false
	}
	t := (e*d - b*f) / det
	s := (a*f - c*e) / det
	if t < 0 || t > 1 || s < 0 || s > 1 {
		return v2.Vec{}, false
	}
	return v2.Vec{X: p1.X + t*(p2.X-p1.X), Y: p1.Y + t*(p2.Y-p1.Y)}, true
}

// PointInBox reports whether p lies in box, boundary included.
func PointInBox(p v2.Vec, box sdf.Box2) bool {
	return box.Min.X <= p.X && p.X <= box.Max.X && box.Min.Y <= p.Y && p.Y <= box.Max.Y
}

// boxCorners returns the corners of a box centered on the origin in the
// same cyclic order as Rectangle3.Vertices.
func boxCorners(box sdf.Box2) [4]v2.Vec {
	return [4]v2.Vec{
		{X: box.Max.X, Y: box.Max.Y},
		{X: box.Max.X, Y: box.Min.Y},
		{X: box.Min.X, Y: box.Min.Y},
		{X: box.Min.X, Y: box.Max.Y},
	}
}

// ClipSegmentToBox restricts segment p1→p2 to box. A segment with both ends
// inside comes back whole. Otherwise the result is the list of crossings with
// the box edges in edge order, or nil if there are none. Crossings at a
// corner are reported once per edge and are not merged.
//
// When only one end is inside, the result holds the single boundary
// crossing; pairing it with the inside end is left to the caller.
func ClipSegmentToBox(p1, p2 v2.Vec, box sdf.Box2) []v2.Vec {
	cs := boxCorners(box)
	var hits []v2.Vec
	for i := range cs {
		if p, ok := LineLineIntersect(p1, p2, cs[i], cs[(i+1)%4]); ok {
			hits = append(hits, p)
		}
	}

	if PointInBox(p1, box) && PointInBox(p2, box) {
		return []v2.Vec{p1, p2}
	}
	if len(hits) == 0 {
		return nil
	}
	return hits
}
