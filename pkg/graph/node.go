package graph

import "github.com/chazu/dfnlink/pkg/geom"

// SourceRef records where a fracture was defined.
type SourceRef struct {
	File string `json:"file,omitempty"`
	Line int    `json:"line,omitempty"`
}

// Node is one fracture of the network.
type Node struct {
	ID     NodeID          `json:"id"`
	Index  int             `json:"index"` // position in Network.Nodes
	Name   string          `json:"name,omitempty"`
	Rect   geom.Rectangle3 `json:"rect"`
	Source SourceRef       `json:"source"`
}

// Label returns the node's name, or its short ID when unnamed.
func (n *Node) Label() string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID.Short()
}

// Edge connects two fractures by index, A < B. Result is the intersection
// of the two rectangles as computed in B's frame.
type Edge struct {
	A      int         `json:"a"`
	B      int         `json:"b"`
	Result geom.Result `json:"result"`
}
