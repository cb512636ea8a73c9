package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameRoundTrip(t *testing.T) {
	ref := rect(vec(1, -2, 0.5), vec(1, -2, 2.5), vec(4, -2, 0.5))
	f := NewFrame(ref)

	assert.InDelta(t, 2.0, f.NormX, eps)
	assert.InDelta(t, 3.0, f.NormY, eps)
	assertVec(t, vec(0, 1, 0), f.Z)

	for _, p := range []struct{ world, local [3]float64 }{
		{[3]float64{1, -2, 0.5}, [3]float64{0, 0, 0}},
		{[3]float64{1, -2, 2.5}, [3]float64{2, 0, 0}},
		{[3]float64{4, -2, 0.5}, [3]float64{0, 3, 0}},
		{[3]float64{1, 5, 0.5}, [3]float64{0, 0, 7}},
	} {
		w := vec(p.world[0], p.world[1], p.world[2])
		l := f.Local(w)
		assertVec(t, vec(p.local[0], p.local[1], p.local[2]), l)
		assertVec(t, w, f.World(l))
	}
}

func TestFrameBox(t *testing.T) {
	f := NewFrame(rect(vec(0, 0, 0), vec(2, 0, 0), vec(0, 0.5, 0)))
	box := f.Box()
	assert.Equal(t, -2.0, box.Min.X)
	assert.Equal(t, -0.5, box.Min.Y)
	assert.Equal(t, 2.0, box.Max.X)
	assert.Equal(t, 0.5, box.Max.Y)
}

func TestFrameProject(t *testing.T) {
	f := NewFrame(unitXY)
	local := f.Project(unitXZ.Vertices())
	var z [4]float64
	for i, p := range local {
		z[i] = p.Z
	}
	assert.Equal(t, [4]float64{1, -1, -1, 1}, z)
}
