// Package graph defines the fracture network: named rectangular fractures
// as nodes and their intersections as edges. A network is built once from a
// fracture set and then treated as read-only; pruning produces a new network.
package graph
