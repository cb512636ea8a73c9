package geom

import v3 "github.com/deadsy/sdfx/vec/v3"

// MaxCenterDistance is the largest center-to-center distance at which two
// rectangles with the given vertices can still touch: the sum of their half
// diagonals.
func MaxCenterDistance(a, b [4]v3.Vec) float64 {
	return (DiagonalLength(a) + DiagonalLength(b)) / 2
}

// QuickReject reports whether a and b are too far apart to intersect. It
// never rejects a pair that intersects, but a pair that passes may still be
// disjoint.
func QuickReject(a, b Rectangle3) bool {
	return quickReject(a, b, a.Vertices(), b.Vertices())
}

func quickReject(a, b Rectangle3, va, vb [4]v3.Vec) bool {
	return a.Center.Sub(b.Center).Length() > MaxCenterDistance(va, vb)
}
