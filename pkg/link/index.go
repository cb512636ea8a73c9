package link

import (
	"fmt"
	"math"
	"sort"

	"github.com/chazu/dfnlink/pkg/geom"
	"github.com/dhconnelly/rtreego"
)

// boundEpsilon pads bounding cubes so that pairs whose cubes only touch are
// still reported as candidates.
const boundEpsilon = 1e-9

// R-tree node fan-out.
const (
	minBranch = 25
	maxBranch = 50
)

// entry is a rectangle's bounding cube stored in the tree.
type entry struct {
	index  int
	bounds rtreego.Rect
}

func (e *entry) Bounds() rtreego.Rect {
	return e.bounds
}

// index maps each rectangle to the partners its bounding cube overlaps.
// The cube spans the rectangle's half diagonal around its center, so every
// pair that survives geom.QuickReject overlaps.
type index struct {
	partners [][]int
}

func newIndex(rects []geom.Rectangle3) (*index, error) {
	entries := make([]*entry, len(rects))
	for i, r := range rects {
		b, err := cube(r)
		if err != nil {
			return nil, fmt.Errorf("link: rectangle %d: %w", i, err)
		}
		entries[i] = &entry{index: i, bounds: b}
	}

	tree := rtreego.NewTree(3, minBranch, maxBranch)
	for _, e := range entries {
		tree.Insert(e)
	}

	idx := &index{partners: make([][]int, len(rects))}
	for i, e := range entries {
		var js []int
		for _, s := range tree.SearchIntersect(e.bounds) {
			if j := s.(*entry).index; j > i {
				js = append(js, j)
			}
		}
		sort.Ints(js)
		idx.partners[i] = js
	}
	return idx, nil
}

func (idx *index) candidates(i int) []int {
	return idx.partners[i]
}

// cube returns the axis-aligned cube around r's center with half side equal
// to r's half diagonal, padded by boundEpsilon.
func cube(r geom.Rectangle3) (rtreego.Rect, error) {
	half := geom.DiagonalLength(r.Vertices()) / 2
	if math.IsNaN(half) || math.IsInf(half, 0) || half == 0 {
		return rtreego.Rect{}, fmt.Errorf("%w: half diagonal %g", geom.ErrDegenerateRectangle, half)
	}
	half += boundEpsilon * math.Max(1, half)
	c := r.Center
	for _, x := range [3]float64{c.X, c.Y, c.Z} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return rtreego.Rect{}, fmt.Errorf("%w: non-finite center", geom.ErrDegenerateRectangle)
		}
	}
	side := 2 * half
	return rtreego.NewRect(rtreego.Point{c.X - half, c.Y - half, c.Z - half}, []float64{side, side, side})
}
