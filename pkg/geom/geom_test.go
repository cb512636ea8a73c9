package geom

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-12

func vec(x, y, z float64) v3.Vec {
	return v3.Vec{X: x, Y: y, Z: z}
}

func rect(c, m1, m2 v3.Vec) Rectangle3 {
	return Rectangle3{Center: c, Mid1: m1, Mid2: m2}
}

// unitXY is the square [-1,1]² in the z = 0 plane.
var unitXY = rect(vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0))

// unitXZ is the square [-1,1]² in the y = 0 plane.
var unitXZ = rect(vec(0, 0, 0), vec(1, 0, 0), vec(0, 0, 1))

func assertVec(t *testing.T, want, got v3.Vec) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, eps, "y of %v", got)
	assert.InDelta(t, want.Z, got.Z, eps, "z of %v", got)
}

func near(a, b v3.Vec) bool {
	return a.Sub(b).Length() <= eps
}

// assertSegment checks a segment result against endpoints in either order.
func assertSegment(t *testing.T, want0, want1 v3.Vec, got Result) {
	t.Helper()
	if !assert.Equal(t, ResultSegment, got.Kind, "result %s", got) {
		return
	}
	if near(got.P0, want0) && near(got.P1, want1) {
		return
	}
	if near(got.P0, want1) && near(got.P1, want0) {
		return
	}
	t.Errorf("segment %s, want endpoints %v and %v", got, want0, want1)
}
