package engine

import (
	"fmt"

	"github.com/chazu/dfnlink/pkg/geom"
	"github.com/chazu/dfnlink/pkg/graph"
	v3 "github.com/deadsy/sdfx/vec/v3"
	zygo "github.com/glycerine/zygomys/zygo"
)

// registerBuiltins installs the fracture DSL builtins into a zygomys
// environment. Each builtin that creates a fracture appends it to n.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, n *graph.Network) {

	add := func(name string, r geom.Rectangle3) zygo.Sexp {
		node := n.AddFracture(name, r, graph.SourceRef{})
		return &sexpFracture{index: node.Index, name: name}
	}

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		f, err := toFloats(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: %w", err)
		}
		return &sexpVec3{vec: v3.Vec{X: f[0], Y: f[1], Z: f[2]}}, nil
	})

	// -----------------------------------------------------------------------
	// (fracture "f1" :center (vec3 0 0 0) :mid1 (vec3 1 0 0) :mid2 (vec3 0 0 1))
	//
	// :mid1 and :mid2 are the midpoints of two adjacent sides.
	// -----------------------------------------------------------------------
	env.AddFunction("fracture", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		fname, _ := leadingName(pa)

		var vecs [3]v3.Vec
		for i, key := range []string{"center", "mid1", "mid2"} {
			v, ok := pa.kw[key]
			if !ok {
				return zygo.SexpNull, fmt.Errorf("fracture: missing :%s", key)
			}
			vec, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("fracture: %s: %w", key, err)
			}
			vecs[i] = vec
		}
		return add(fname, geom.Rectangle3{Center: vecs[0], Mid1: vecs[1], Mid2: vecs[2]}), nil
	})

	// -----------------------------------------------------------------------
	// (vertical-fracture "f2" x0 y0 z0 x1 y1 z1)
	//
	// A vertical rectangle spanned by the diagonal (x0 y0 z0)-(x1 y1 z1).
	// -----------------------------------------------------------------------
	env.AddFunction("vertical_fracture", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		fname, rest := leadingName(parseArgs(args))
		if len(rest) != 6 {
			return zygo.SexpNull, fmt.Errorf("vertical-fracture requires 6 coordinates, got %d", len(rest))
		}
		f, err := toFloats(rest)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vertical-fracture: %w", err)
		}
		if f[2] == f[5] {
			return zygo.SexpNull, fmt.Errorf("vertical-fracture: z0 and z1 are both %g", f[2])
		}
		return add(fname, geom.FromVertical(f[0], f[1], f[2], f[3], f[4], f[5])), nil
	})

	// -----------------------------------------------------------------------
	// (rc3-fracture "f3" cx cy cz m1x m1y m1z m2x m2y m2z)
	// -----------------------------------------------------------------------
	env.AddFunction("rc3_fracture", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		fname, rest := leadingName(parseArgs(args))
		if len(rest) != 9 {
			return zygo.SexpNull, fmt.Errorf("rc3-fracture requires 9 numbers, got %d", len(rest))
		}
		f, err := toFloats(rest)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rc3-fracture: %w", err)
		}
		var rc [9]float64
		copy(rc[:], f)
		return add(fname, geom.FromRC3(rc)), nil
	})

	// -----------------------------------------------------------------------
	// (translate "f1" (vec3 5 0 0) :name "f1-east")
	//
	// Adds a translated copy of an existing fracture.
	// -----------------------------------------------------------------------
	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 2 {
			return zygo.SexpNull, fmt.Errorf("translate requires a fracture and an offset")
		}
		src, err := toFracture(n, pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: %w", err)
		}
		d, err := toVec3(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: offset: %w", err)
		}
		var fname string
		if v, ok := pa.kw["name"]; ok {
			if fname, err = toString(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("translate: name: %w", err)
			}
		}
		return add(fname, src.Rect.Translate(d)), nil
	})

	// -----------------------------------------------------------------------
	// (area "f1")
	// -----------------------------------------------------------------------
	env.AddFunction("area", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("area requires exactly 1 argument, got %d", len(args))
		}
		node, err := toFracture(n, args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("area: %w", err)
		}
		return &zygo.SexpFloat{Val: node.Rect.Area()}, nil
	})

	// -----------------------------------------------------------------------
	// (fracture-count)
	// -----------------------------------------------------------------------
	env.AddFunction("fracture_count", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return &zygo.SexpInt{Val: int64(n.NodeCount())}, nil
	})
}
