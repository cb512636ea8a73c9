package graph

import (
	"fmt"

	"github.com/chazu/dfnlink/pkg/geom"
	"github.com/chazu/dfnlink/pkg/link"
	"github.com/samber/lo"
)

// Network is the connectivity graph of a fracture set.
type Network struct {
	Nodes     []*Node        `json:"nodes"`
	Edges     []Edge         `json:"edges"`
	NameIndex map[string]int `json:"name_index"`
}

// New creates an empty Network.
func New() *Network {
	return &Network{NameIndex: make(map[string]int)}
}

// FromRects creates an unlinked network with one anonymous node per
// rectangle, in order.
func FromRects(rects []geom.Rectangle3) *Network {
	n := New()
	for _, r := range rects {
		n.AddFracture("", r, SourceRef{})
	}
	return n
}

// AddFracture appends a fracture and returns its node. A named fracture is
// registered in NameIndex; a repeated name overwrites the index entry and is
// reported by Validate.
func (n *Network) AddFracture(name string, r geom.Rectangle3, src SourceRef) *Node {
	idx := len(n.Nodes)
	path := fmt.Sprintf("fracture/%d", idx)
	if name != "" {
		path = "fracture/" + name
	}
	node := &Node{
		ID:     NewNodeID(path),
		Index:  idx,
		Name:   name,
		Rect:   r,
		Source: src,
	}
	n.Nodes = append(n.Nodes, node)
	if name != "" {
		n.NameIndex[name] = idx
	}
	return node
}

// Lookup returns the node with the given name, or nil.
func (n *Network) Lookup(name string) *Node {
	idx, ok := n.NameIndex[name]
	if !ok {
		return nil
	}
	return n.Get(idx)
}

// MustLookup returns the node with the given name, or panics.
func (n *Network) MustLookup(name string) *Node {
	node := n.Lookup(name)
	if node == nil {
		panic(fmt.Sprintf("graph: no fracture named %q", name))
	}
	return node
}

// Get returns the node at index idx, or nil.
func (n *Network) Get(idx int) *Node {
	if idx < 0 || idx >= len(n.Nodes) {
		return nil
	}
	return n.Nodes[idx]
}

// NodeCount returns the number of fractures.
func (n *Network) NodeCount() int {
	return len(n.Nodes)
}

// EdgeCount returns the number of intersecting pairs.
func (n *Network) EdgeCount() int {
	return len(n.Edges)
}

// Rects returns the fracture rectangles in node order.
func (n *Network) Rects() []geom.Rectangle3 {
	return lo.Map(n.Nodes, func(node *Node, _ int) geom.Rectangle3 { return node.Rect })
}

// Connect replaces the network's edges with the links found among its
// fractures.
func (n *Network) Connect(opts link.Options) error {
	links, err := opts.Find(n.Rects())
	if err != nil {
		return fmt.Errorf("graph: connect: %w", err)
	}
	n.Edges = lo.Map(links, func(l link.Link, _ int) Edge {
		return Edge{A: l.I, B: l.J, Result: l.Result}
	})
	return nil
}

// Pairs returns the index pairs of all edges.
func (n *Network) Pairs() [][2]int {
	return lo.Map(n.Edges, func(e Edge, _ int) [2]int { return [2]int{e.A, e.B} })
}

// Neighbors returns the indices of the fractures that intersect node idx,
// ascending.
func (n *Network) Neighbors(idx int) []int {
	var out []int
	for _, e := range n.Edges {
		switch idx {
		case e.A:
			out = append(out, e.B)
		case e.B:
			out = append(out, e.A)
		}
	}
	return lo.Uniq(sortedInts(out))
}

// Degree returns the number of fractures that intersect node idx.
func (n *Network) Degree(idx int) int {
	return len(n.Neighbors(idx))
}
