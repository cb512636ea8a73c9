package geom

import (
	"log"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Options configures an intersection query. The zero value is ready to use.
type Options struct {
	// Logger receives one trace line per decision taken. Nil disables tracing.
	Logger *log.Logger
}

func (o Options) tracef(format string, args ...any) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}

// Intersect computes the intersection of a and b with default options.
func Intersect(a, b Rectangle3) Result {
	return Options{}.Intersect(a, b)
}

// Intersect computes the intersection of a and b. The work is done in b's
// local frame, so b's edges are expected to be perpendicular. Inputs are not
// validated: degenerate rectangles yield NaN coordinates or ResultNone rather
// than an error. See IntersectChecked.
func (o Options) Intersect(a, b Rectangle3) Result {
	va, vb := a.Vertices(), b.Vertices()
	if quickReject(a, b, va, vb) {
		o.tracef("geom: centers too far apart, rejected")
		return Result{}
	}

	f := NewFrame(b)
	local := f.Project(va)
	box := f.Box()

	var z [4]float64
	for i, p := range local {
		z[i] = p.Z
	}
	c := Classify(z)

	var edges [2][2]int
	switch c.Kind {
	case NoCrossing:
		o.tracef("geom: all vertices on one side of the plane")
		return Result{}
	case OnPlane:
		return o.onPlane(f, box, local, c.Zeros)
	case TwoTwo:
		o.tracef("geom: two vertices on each side, positive %v negative %v", c.Pos, c.Neg)
		edges = crossingEdges(c)
	case OneThree:
		o.tracef("geom: vertex %d alone on its side", c.Minority)
		edges = oneThreeEdges(c.Minority)
	}

	ia := planeCrossing(local[edges[0][0]], local[edges[0][1]])
	ib := planeCrossing(local[edges[1][0]], local[edges[1][1]])

	raw := ClipSegmentToBox(ia, ib, box)
	switch len(raw) {
	case 0:
		o.tracef("geom: crossing line misses the footprint")
		return Result{}
	case 1:
		raw = completeSegment(raw, ia, ib, box)
		if len(raw) == 1 {
			o.tracef("geom: single boundary crossing with neither end inside the footprint")
		}
	case 2:
		// Used as is. If the crossing starts inside and leaves through a
		// corner, both hits are that corner and the segment has zero length.
	default:
		// Lines through a corner hit both edges that meet there. Hits are
		// not merged, so three or four of them mean no result.
		o.tracef("geom: %d boundary crossings, result dropped", len(raw))
		return Result{}
	}
	return lift(f, raw)
}

// onPlane handles vertices lying exactly in the reference plane.
func (o Options) onPlane(f Frame, box sdf.Box2, local [4]v3.Vec, zeros []int) Result {
	switch len(zeros) {
	case 1:
		p := flat(local[zeros[0]])
		if !PointInBox(p, box) {
			o.tracef("geom: vertex %d on the plane, outside the footprint", zeros[0])
			return Result{}
		}
		o.tracef("geom: vertex %d on the plane, inside the footprint", zeros[0])
		return lift(f, []v2.Vec{p})
	case 2:
		o.tracef("geom: vertices %v on the plane", zeros)
		raw := ClipSegmentToBox(flat(local[zeros[0]]), flat(local[zeros[1]]), box)
		if len(raw) > 2 {
			o.tracef("geom: %d boundary crossings, result dropped", len(raw))
		}
		return lift(f, raw)
	default:
		o.tracef("geom: rectangles are coplanar")
		return Result{Kind: ResultCoplanar}
	}
}

// planeCrossing returns where segment b→e crosses z = 0.
func planeCrossing(b, e v3.Vec) v2.Vec {
	dz := e.Z - b.Z
	return v2.Vec{
		X: (b.X*e.Z - b.Z*e.X) / dz,
		Y: (b.Y*e.Z - b.Z*e.Y) / dz,
	}
}

// completeSegment appends whichever crossing end lies inside the box to a
// single boundary hit.
func completeSegment(raw []v2.Vec, ia, ib v2.Vec, box sdf.Box2) []v2.Vec {
	switch {
	case PointInBox(ia, box):
		return append(raw, ia)
	case PointInBox(ib, box):
		return append(raw, ib)
	default:
		return raw
	}
}

func flat(p v3.Vec) v2.Vec {
	return v2.Vec{X: p.X, Y: p.Y}
}

func lift(f Frame, ps []v2.Vec) Result {
	world := make([]v3.Vec, len(ps))
	for i, p := range ps {
		world[i] = f.Lift(p)
	}
	return fromPoints(world)
}
