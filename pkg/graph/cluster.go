package graph

import "sort"

// disjointSet is a union–find over node indices.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

func (ds *disjointSet) find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}
	return x
}

func (ds *disjointSet) union(a, b int) {
	ra, rb := ds.find(a), ds.find(b)
	switch {
	case ra == rb:
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}
}

// Clusters returns the connected components of the network. Each cluster
// lists node indices ascending; clusters are ordered by their smallest index.
// Fractures without any intersection form singleton clusters.
func (n *Network) Clusters() [][]int {
	ds := newDisjointSet(len(n.Nodes))
	for _, e := range n.Edges {
		if e.A < 0 || e.B < 0 || e.A >= len(n.Nodes) || e.B >= len(n.Nodes) {
			continue
		}
		ds.union(e.A, e.B)
	}

	byRoot := make(map[int]int) // root -> position in clusters
	var clusters [][]int
	for i := range n.Nodes {
		r := ds.find(i)
		pos, ok := byRoot[r]
		if !ok {
			pos = len(clusters)
			byRoot[r] = pos
			clusters = append(clusters, nil)
		}
		clusters[pos] = append(clusters[pos], i)
	}
	return clusters
}

// Isolated returns the indices of fractures that intersect nothing.
func (n *Network) Isolated() []int {
	var out []int
	for _, c := range n.Clusters() {
		if len(c) == 1 {
			out = append(out, c[0])
		}
	}
	return out
}

func sortedInts(xs []int) []int {
	sort.Ints(xs)
	return xs
}
