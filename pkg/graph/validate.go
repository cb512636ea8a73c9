package graph

import (
	"errors"
	"fmt"

	"github.com/chazu/dfnlink/pkg/geom"
)

// ValidationSeverity indicates whether a validation finding blocks linking
// or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks linking
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	NodeID   NodeID             // which fracture has the problem (zero if network-level)
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.NodeID.IsZero() {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] fracture %s: %s", e.Severity, e.NodeID.Short(), e.Message)
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	NodeID  NodeID
	Message string
}

// ValidationResult bundles errors (blocking) and warnings (advisory).
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// OK reports whether there are no blocking errors.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Validate runs the structural checks that must pass before a network is
// linked: every fracture is a proper rectangle and names are unique.
func Validate(n *Network) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateRectangles(n)...)
	errs = append(errs, validateNames(n)...)
	errs = append(errs, validateEdges(n)...)
	return errs
}

// ValidateAll runs structural and geometric checks and returns errors and
// warnings separately. It never mutates the network.
func ValidateAll(n *Network) ValidationResult {
	var result ValidationResult
	for _, e := range Validate(n) {
		if e.Severity == SeverityWarning {
			result.Warnings = append(result.Warnings, ValidationWarning{NodeID: e.NodeID, Message: e.Message})
		} else {
			result.Errors = append(result.Errors, e)
		}
	}
	result.Warnings = append(result.Warnings, validateGeometry(n)...)
	return result
}

// validateRectangles rejects fractures whose edges are degenerate. Edges that
// are merely not perpendicular are reported as warnings; the intersection
// still runs but its frame is no longer orthonormal.
func validateRectangles(n *Network) []ValidationError {
	var errs []ValidationError
	for _, node := range n.Nodes {
		err := geom.ValidateReference(node.Rect)
		switch {
		case err == nil:
		case errors.Is(err, geom.ErrNotPerpendicular):
			errs = append(errs, ValidationError{
				NodeID:   node.ID,
				Message:  fmt.Sprintf("%s: %v", node.Label(), err),
				Severity: SeverityWarning,
			})
		default:
			errs = append(errs, ValidationError{
				NodeID:   node.ID,
				Message:  fmt.Sprintf("%s: %v", node.Label(), err),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// validateNames checks that named fractures are unique.
func validateNames(n *Network) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]NodeID)
	for _, node := range n.Nodes {
		if node.Name == "" {
			continue
		}
		if first, ok := seen[node.Name]; ok {
			errs = append(errs, ValidationError{
				NodeID:   node.ID,
				Message:  fmt.Sprintf("duplicate fracture name %q (first defined as %s)", node.Name, first.Short()),
				Severity: SeverityError,
			})
			continue
		}
		seen[node.Name] = node.ID
	}
	return errs
}

// validateEdges checks edge endpoints and rejects self and repeated links.
func validateEdges(n *Network) []ValidationError {
	var errs []ValidationError
	seen := make(map[[2]int]bool)
	for _, e := range n.Edges {
		if n.Get(e.A) == nil || n.Get(e.B) == nil {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("link (%d,%d) references a missing fracture", e.A, e.B),
				Severity: SeverityError,
			})
			continue
		}
		if e.A == e.B {
			errs = append(errs, ValidationError{
				NodeID:   n.Nodes[e.A].ID,
				Message:  "fracture is linked to itself",
				Severity: SeverityError,
			})
			continue
		}
		key := [2]int{min(e.A, e.B), max(e.A, e.B)}
		if seen[key] {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("duplicate link (%d,%d)", key[0], key[1]),
				Severity: SeverityError,
			})
			continue
		}
		seen[key] = true
	}
	return errs
}
