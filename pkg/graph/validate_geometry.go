package graph

import (
	"fmt"

	"github.com/chazu/dfnlink/pkg/geom"
)

// ---------------------------------------------------------------------------
// Geometric warnings
// ---------------------------------------------------------------------------

// validateGeometry reports advisory findings about a linked network.
func validateGeometry(n *Network) []ValidationWarning {
	var warnings []ValidationWarning
	warnings = append(warnings, validateCoplanarLinks(n)...)
	warnings = append(warnings, validateIsolated(n)...)
	return warnings
}

// validateCoplanarLinks flags links whose rectangles share a plane. The pair
// counts as intersecting but carries no trace geometry.
func validateCoplanarLinks(n *Network) []ValidationWarning {
	var warnings []ValidationWarning
	for _, e := range n.Edges {
		if e.Result.Kind != geom.ResultCoplanar {
			continue
		}
		a, b := n.Get(e.A), n.Get(e.B)
		if a == nil || b == nil {
			continue
		}
		warnings = append(warnings, ValidationWarning{
			NodeID:  a.ID,
			Message: fmt.Sprintf("%s and %s are coplanar; the overlap is not computed", a.Label(), b.Label()),
		})
	}
	return warnings
}

// validateIsolated flags fractures that intersect nothing. A network with no
// edges has not been connected yet and is skipped.
func validateIsolated(n *Network) []ValidationWarning {
	if len(n.Edges) == 0 {
		return nil
	}
	var warnings []ValidationWarning
	for _, idx := range n.Isolated() {
		node := n.Nodes[idx]
		warnings = append(warnings, ValidationWarning{
			NodeID:  node.ID,
			Message: fmt.Sprintf("%s intersects no other fracture", node.Label()),
		})
	}
	return warnings
}
