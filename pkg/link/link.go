// Package link finds the intersecting pairs of a fracture set. The pairs are
// the edges of the fracture network's connectivity graph.
package link

import (
	"runtime"
	"sync"

	"github.com/chazu/dfnlink/pkg/geom"
	"github.com/samber/lo"
)

// Link is an intersecting pair of rectangles, I < J, with the geometry of
// rects[I] ∩ rects[J] computed in the frame of rects[J].
type Link struct {
	I      int         `json:"i"`
	J      int         `json:"j"`
	Result geom.Result `json:"result"`
}

// Pair returns the link's index pair.
func (l Link) Pair() [2]int {
	return [2]int{l.I, l.J}
}

// Options controls a link search. The zero value runs a sequential scan of
// every pair.
type Options struct {
	// Workers is the number of goroutines evaluating pairs. Values below 2
	// scan sequentially.
	Workers int

	// UseIndex prefilters candidate pairs with an R-tree over each
	// rectangle's bounding cube instead of testing all pairs.
	UseIndex bool

	// Geom is passed to every intersection query.
	Geom geom.Options
}

// DefaultOptions uses one worker per CPU and the spatial index.
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU(), UseIndex: true}
}

// FindLinks returns every pair i < j whose intersection is not
// geom.ResultNone, testing all pairs. Links are ordered by (I, J).
func FindLinks(rects []geom.Rectangle3) []Link {
	links, _ := Options{}.Find(rects)
	return links
}

// Find returns every pair i < j whose intersection is not geom.ResultNone,
// ordered by (I, J). The result does not depend on Workers or UseIndex. An
// error is only possible with UseIndex, for rectangles whose extent cannot
// be indexed.
func (o Options) Find(rects []geom.Rectangle3) ([]Link, error) {
	candidates := allPairs(len(rects))
	if o.UseIndex {
		idx, err := newIndex(rects)
		if err != nil {
			return nil, err
		}
		candidates = idx.candidates
	}

	rows := make([][]Link, len(rects))
	if o.Workers < 2 {
		for i := range rects {
			rows[i] = o.row(rects, i, candidates(i))
		}
		return lo.Flatten(rows), nil
	}

	work := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < o.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				rows[i] = o.row(rects, i, candidates(i))
			}
		}()
	}
	for i := range rects {
		work <- i
	}
	close(work)
	wg.Wait()

	return lo.Flatten(rows), nil
}

// row intersects rects[i] with each candidate partner. Partners must be
// greater than i and ascending.
func (o Options) row(rects []geom.Rectangle3, i int, partners []int) []Link {
	var links []Link
	for _, j := range partners {
		res := o.Geom.Intersect(rects[i], rects[j])
		if res.Intersects() {
			links = append(links, Link{I: i, J: j, Result: res})
		}
	}
	return links
}

// allPairs lists every partner j > i.
func allPairs(n int) func(i int) []int {
	return func(i int) []int {
		if i+1 >= n {
			return nil
		}
		return lo.RangeFrom(i+1, n-i-1)
	}
}

// Pairs returns the index pairs of links.
func Pairs(links []Link) [][2]int {
	return lo.Map(links, func(l Link, _ int) [2]int { return l.Pair() })
}
