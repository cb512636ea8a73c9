package graph

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// DefaultPruneRatio is the fraction of the mean fracture area below which
// PruneSmall drops a fracture.
const DefaultPruneRatio = 0.025

// PruneSmall returns a new network without the fractures whose area is at
// most ratio times the mean area. Edges between surviving fractures are kept
// and reindexed; the input network is not modified. A ratio of zero or less
// returns a copy.
func PruneSmall(n *Network, ratio float64) (*Network, error) {
	if math.IsNaN(ratio) {
		return nil, fmt.Errorf("graph: prune: ratio is NaN")
	}

	keep := make([]bool, len(n.Nodes))
	for i := range keep {
		keep[i] = true
	}
	if ratio > 0 && len(n.Nodes) > 0 {
		areas := lo.Map(n.Nodes, func(node *Node, _ int) float64 { return node.Rect.Area() })
		mean := lo.Sum(areas) / float64(len(areas))
		for i, a := range areas {
			keep[i] = a > ratio*mean
		}
	}

	out := New()
	remap := make(map[int]int, len(n.Nodes))
	for i, node := range n.Nodes {
		if !keep[i] {
			continue
		}
		remap[i] = len(out.Nodes)
		cp := *node
		cp.Index = len(out.Nodes)
		out.Nodes = append(out.Nodes, &cp)
		if cp.Name != "" {
			out.NameIndex[cp.Name] = cp.Index
		}
	}
	for _, e := range n.Edges {
		a, okA := remap[e.A]
		b, okB := remap[e.B]
		if okA && okB {
			out.Edges = append(out.Edges, Edge{A: a, B: b, Result: e.Result})
		}
	}
	return out, nil
}
