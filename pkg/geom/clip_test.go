package geom

import (
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/stretchr/testify/assert"
)

func p2(x, y float64) v2.Vec {
	return v2.Vec{X: x, Y: y}
}

var unitBox = sdf.Box2{Min: p2(-1, -1), Max: p2(1, 1)}

func TestLineLineIntersect(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, p3, p4 v2.Vec
		want           v2.Vec
		ok             bool
	}{
		{"crossing", p2(-1, 0), p2(1, 0), p2(0, -1), p2(0, 1), p2(0, 0), true},
		{"touching end", p2(0, 0), p2(1, 0), p2(1, -1), p2(1, 1), p2(1, 0), true},
		{"beyond first segment", p2(0, 0), p2(0.5, 0), p2(1, -1), p2(1, 1), v2.Vec{}, false},
		{"beyond second segment", p2(-1, 0), p2(1, 0), p2(0, 0.5), p2(0, 1), v2.Vec{}, false},
		{"parallel", p2(0, 0), p2(1, 0), p2(0, 1), p2(1, 1), v2.Vec{}, false},
		{"collinear", p2(0, 0), p2(2, 0), p2(1, 0), p2(3, 0), v2.Vec{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LineLineIntersect(tt.p1, tt.p2, tt.p3, tt.p4)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.InDelta(t, tt.want.X, got.X, eps)
				assert.InDelta(t, tt.want.Y, got.Y, eps)
			}
		})
	}
}

func TestPointInBox(t *testing.T) {
	assert.True(t, PointInBox(p2(0, 0), unitBox))
	assert.True(t, PointInBox(p2(1, -1), unitBox))
	assert.True(t, PointInBox(p2(1, 0.3), unitBox))
	assert.False(t, PointInBox(p2(1.0000001, 0), unitBox))
	assert.False(t, PointInBox(p2(0, -2), unitBox))
}

func TestClipSegmentToBox(t *testing.T) {
	t.Run("contained", func(t *testing.T) {
		got := ClipSegmentToBox(p2(-0.5, 0), p2(0.5, 0.5), unitBox)
		assert.Equal(t, []v2.Vec{p2(-0.5, 0), p2(0.5, 0.5)}, got)
	})

	t.Run("containment wins over edge hits", func(t *testing.T) {
		got := ClipSegmentToBox(p2(1, 0), p2(-1, 0), unitBox)
		assert.Equal(t, []v2.Vec{p2(1, 0), p2(-1, 0)}, got)
	})

	t.Run("disjoint", func(t *testing.T) {
		assert.Nil(t, ClipSegmentToBox(p2(-1, 10), p2(1, 10), unitBox))
	})

	t.Run("crossing through", func(t *testing.T) {
		got := ClipSegmentToBox(p2(-3, 0), p2(3, 0), unitBox)
		if assert.Len(t, got, 2) {
			// Edge order: the x = 1 side comes before the x = -1 side.
			assert.InDelta(t, 1.0, got[0].X, eps)
			assert.InDelta(t, -1.0, got[1].X, eps)
			assert.InDelta(t, 0.0, got[0].Y, eps)
			assert.InDelta(t, 0.0, got[1].Y, eps)
		}
	})

	t.Run("one end inside", func(t *testing.T) {
		got := ClipSegmentToBox(p2(2.5, 0), p2(0.5, 0), unitBox)
		assert.Equal(t, []v2.Vec{p2(1, 0)}, got)
	})

	t.Run("through corners is not deduplicated", func(t *testing.T) {
		got := ClipSegmentToBox(p2(-2, -2), p2(2, 2), unitBox)
		assert.Len(t, got, 4)
	})
}
