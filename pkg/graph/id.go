package graph

import (
	"strings"

	"github.com/google/uuid"
)

// NodeID is a content-derived identifier for a fracture node. Equal paths
// give equal IDs across runs.
type NodeID string

// ZeroID is the empty NodeID.
const ZeroID NodeID = ""

// namespace scopes NodeIDs to this package.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("dfnlink/graph"))

// NewNodeID derives a NodeID from a path such as "fracture/f12".
func NewNodeID(path string) NodeID {
	return NodeID(uuid.NewSHA1(namespace, []byte(path)).String())
}

// IsZero reports whether id is the empty NodeID.
func (id NodeID) IsZero() bool {
	return id == ZeroID
}

func (id NodeID) String() string {
	return string(id)
}

// Short returns the first 12 hex digits, for messages.
func (id NodeID) Short() string {
	s := strings.ReplaceAll(string(id), "-", "")
	if len(s) > 12 {
		return s[:12]
	}
	return s
}
