package graph

import (
	"strings"
	"testing"

	"github.com/chazu/dfnlink/pkg/geom"
)

func resultHasError(r ValidationResult, substr string) bool {
	for _, e := range r.Errors {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func resultHasWarning(r ValidationResult, substr string) bool {
	for _, w := range r.Warnings {
		if strings.Contains(w.Message, substr) {
			return true
		}
	}
	return false
}

func TestValidateCleanNetwork(t *testing.T) {
	n := buildCross(t)
	n.Nodes = n.Nodes[:5] // drop the isolated fracture
	delete(n.NameIndex, "f")

	result := ValidateAll(n)
	if !result.OK() {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestValidateDegenerateRectangle(t *testing.T) {
	n := New()
	n.AddFracture("flat", geom.NewRectangle(vec(0, 0, 0), vec(1, 0, 0), vec(0, 0, 0)), SourceRef{})

	result := ValidateAll(n)
	if !resultHasError(result, "flat") {
		t.Errorf("expected a degenerate-rectangle error, got %v", result.Errors)
	}
	if result.OK() {
		t.Error("OK() = true for a degenerate rectangle")
	}
}

func TestValidateSkewedRectangleWarns(t *testing.T) {
	n := New()
	n.AddFracture("skew", geom.NewRectangle(vec(0, 0, 0), vec(1, 0, 0), vec(1, 1, 0)), SourceRef{})

	result := ValidateAll(n)
	if !result.OK() {
		t.Errorf("skewed edges should not block: %v", result.Errors)
	}
	if !resultHasWarning(result, "perpendicular") {
		t.Errorf("expected a perpendicularity warning, got %v", result.Warnings)
	}
}

func TestValidateDuplicateNames(t *testing.T) {
	n := New()
	n.AddFracture("f1", vertical(0, 0, false), SourceRef{})
	n.AddFracture("f1", vertical(0, 0, true), SourceRef{})

	errs := Validate(n)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0].Message, `duplicate fracture name "f1"`) {
		t.Errorf("message = %q", errs[0].Message)
	}
	if errs[0].NodeID != n.Nodes[1].ID {
		t.Errorf("error should point at the second definition")
	}
}

func TestValidateEdges(t *testing.T) {
	tests := []struct {
		name  string
		edges []Edge
		want  string
	}{
		{"missing endpoint", []Edge{{A: 0, B: 7}}, "missing fracture"},
		{"self link", []Edge{{A: 1, B: 1}}, "linked to itself"},
		{"duplicate", []Edge{{A: 0, B: 1}, {A: 1, B: 0}}, "duplicate link (0,1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New()
			n.AddFracture("a", vertical(0, 0, false), SourceRef{})
			n.AddFracture("b", vertical(0, 0, true), SourceRef{})
			n.Edges = tt.edges

			result := ValidateAll(n)
			if !resultHasError(result, tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, result.Errors)
			}
		})
	}
}

func TestValidateWarnings(t *testing.T) {
	n := buildCross(t)
	n.AddFracture("g", vertical(0.5, 0, false), SourceRef{})
	n.Edges = append(n.Edges, Edge{A: 0, B: 6, Result: geom.Result{Kind: geom.ResultCoplanar}})

	result := ValidateAll(n)
	if !result.OK() {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if !resultHasWarning(result, "a and g are coplanar") {
		t.Errorf("expected coplanar warning, got %v", result.Warnings)
	}
	if !resultHasWarning(result, "f intersects no other fracture") {
		t.Errorf("expected isolated warning, got %v", result.Warnings)
	}
}

func TestValidationErrorString(t *testing.T) {
	id := NewNodeID("fracture/x")
	tests := []struct {
		err  ValidationError
		want string
	}{
		{ValidationError{Message: "boom", Severity: SeverityError}, "[error] boom"},
		{ValidationError{NodeID: id, Message: "odd", Severity: SeverityWarning}, "[warning] fracture " + id.Short() + ": odd"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
	if got := ValidationSeverity(9).String(); got != "ValidationSeverity(9)" {
		t.Errorf("String() = %q", got)
	}
}
