package geom

import (
	"errors"
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// OrthogonalityTolerance bounds |cos θ| between the edges of a reference
// rectangle accepted by ValidateReference.
const OrthogonalityTolerance = 1e-9

var (
	// ErrDegenerateRectangle is returned for rectangles with a zero-length
	// or non-finite edge vector.
	ErrDegenerateRectangle = errors.New("degenerate rectangle")

	// ErrNotPerpendicular is returned for reference rectangles whose edge
	// vectors are not perpendicular.
	ErrNotPerpendicular = errors.New("rectangle edges are not perpendicular")
)

func finite(v v3.Vec) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Validate checks that r has finite coordinates and two non-zero edge vectors.
func Validate(r Rectangle3) error {
	if !finite(r.Center) || !finite(r.Mid1) || !finite(r.Mid2) {
		return fmt.Errorf("%w: non-finite coordinate in %s", ErrDegenerateRectangle, r)
	}
	if r.Edge1().Length() == 0 {
		return fmt.Errorf("%w: first edge has zero length in %s", ErrDegenerateRectangle, r)
	}
	if r.Edge2().Length() == 0 {
		return fmt.Errorf("%w: second edge has zero length in %s", ErrDegenerateRectangle, r)
	}
	return nil
}

// ValidateReference applies Validate and also requires perpendicular edges,
// which the local frame of a reference rectangle depends on.
func ValidateReference(r Rectangle3) error {
	if err := Validate(r); err != nil {
		return err
	}
	e1, e2 := r.Edge1(), r.Edge2()
	if cos := math.Abs(e1.Dot(e2)) / (e1.Length() * e2.Length()); cos > OrthogonalityTolerance {
		return fmt.Errorf("%w: |cos| = %g in %s", ErrNotPerpendicular, cos, r)
	}
	return nil
}

// IntersectChecked validates both rectangles before intersecting them. Every
// rectangle may serve as the reference of a later query with the arguments
// swapped, so both must have perpendicular edges.
func (o Options) IntersectChecked(a, b Rectangle3) (Result, error) {
	if err := ValidateReference(a); err != nil {
		return Result{}, fmt.Errorf("geom: first rectangle: %w", err)
	}
	if err := ValidateReference(b); err != nil {
		return Result{}, fmt.Errorf("geom: second rectangle: %w", err)
	}
	return o.Intersect(a, b), nil
}

// IntersectChecked is Options.IntersectChecked with default options.
func IntersectChecked(a, b Rectangle3) (Result, error) {
	return Options{}.IntersectChecked(a, b)
}
