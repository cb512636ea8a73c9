package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/dfnlink/pkg/graph"
	v3 "github.com/deadsy/sdfx/vec/v3"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value: treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVec3 wraps a v3.Vec.
type sexpVec3 struct {
	vec v3.Vec
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpFracture refers to a fracture already added to the network.
type sexpFracture struct {
	index int
	name  string
}

func (f *sexpFracture) SexpString(ps *zygo.PrintState) string {
	if f.name != "" {
		return fmt.Sprintf("(fracture %q)", f.name)
	}
	return fmt.Sprintf("(fracture #%d)", f.index)
}
func (f *sexpFracture) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toFloats extracts every element of args as a float64.
func toFloats(args []zygo.Sexp) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		f, err := toFloat64(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toVec3 extracts a v3.Vec from a sexpVec3.
func toVec3(s zygo.Sexp) (v3.Vec, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return v3.Vec{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// toFracture resolves a fracture reference or a fracture name.
func toFracture(n *graph.Network, s zygo.Sexp) (*graph.Node, error) {
	switch v := s.(type) {
	case *sexpFracture:
		if node := n.Get(v.index); node != nil {
			return node, nil
		}
		return nil, fmt.Errorf("stale fracture reference #%d", v.index)
	case *zygo.SexpStr:
		if node := n.Lookup(v.S); node != nil {
			return node, nil
		}
		return nil, fmt.Errorf("no fracture named %q", v.S)
	}
	return nil, fmt.Errorf("expected fracture reference, got %T (%s)", s, s.SexpString(nil))
}

// leadingName pops an optional leading name from positional arguments.
func leadingName(pa kwArgs) (string, []zygo.Sexp) {
	if v, ok := pa.kw["name"]; ok {
		if s, err := toString(v); err == nil {
			return s, pa.positional
		}
	}
	if len(pa.positional) > 0 {
		if s, ok := pa.positional[0].(*zygo.SexpStr); ok && !strings.HasPrefix(s.S, kwPrefix) {
			return s.S, pa.positional[1:]
		}
	}
	return "", pa.positional
}
