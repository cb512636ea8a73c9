package geom

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ResultKind tags the variant held by a Result.
type ResultKind int

const (
	ResultNone     ResultKind = iota // no intersection
	ResultPoint                      // single touching point in P0
	ResultSegment                    // intersection line P0–P1, endpoints unordered
	ResultCoplanar                   // same plane; overlap is not computed
)

func (k ResultKind) String() string {
	switch k {
	case ResultNone:
		return "none"
	case ResultPoint:
		return "point"
	case ResultSegment:
		return "segment"
	case ResultCoplanar:
		return "coplanar"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k ResultKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name written by MarshalText.
func (k *ResultKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "none":
		*k = ResultNone
	case "point":
		*k = ResultPoint
	case "segment":
		*k = ResultSegment
	case "coplanar":
		*k = ResultCoplanar
	default:
		return fmt.Errorf("geom: unknown result kind %q", b)
	}
	return nil
}

// Result is the outcome of intersecting two rectangles.
type Result struct {
	Kind ResultKind `json:"kind"`
	P0   v3.Vec     `json:"p0"`
	P1   v3.Vec     `json:"p1"`
}

// Intersects reports whether the result is anything other than ResultNone.
// Coplanar pairs count as intersecting.
func (r Result) Intersects() bool {
	return r.Kind != ResultNone
}

// Points returns the geometric points carried by the result.
func (r Result) Points() []v3.Vec {
	switch r.Kind {
	case ResultPoint:
		return []v3.Vec{r.P0}
	case ResultSegment:
		return []v3.Vec{r.P0, r.P1}
	default:
		return nil
	}
}

func (r Result) String() string {
	switch r.Kind {
	case ResultPoint:
		return fmt.Sprintf("point(%g %g %g)", r.P0.X, r.P0.Y, r.P0.Z)
	case ResultSegment:
		return fmt.Sprintf("segment(%g %g %g -> %g %g %g)", r.P0.X, r.P0.Y, r.P0.Z, r.P1.X, r.P1.Y, r.P1.Z)
	default:
		return r.Kind.String()
	}
}

// fromPoints builds a Result from zero, one or two world points.
func fromPoints(ps []v3.Vec) Result {
	switch len(ps) {
	case 1:
		return Result{Kind: ResultPoint, P0: ps[0]}
	case 2:
		return Result{Kind: ResultSegment, P0: ps[0], P1: ps[1]}
	default:
		return Result{}
	}
}
