// Package tessellate turns a fracture network into triangle meshes and
// intersection traces for display. One mesh is produced per fracture.
package tessellate

import (
	"errors"
	"fmt"

	"github.com/chazu/dfnlink/pkg/geom"
	"github.com/chazu/dfnlink/pkg/graph"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Options controls how fractures are meshed.
type Options struct {
	// Aperture is the fracture thickness. Zero draws each fracture as a flat
	// two-triangle quad; a positive aperture renders a slab with marching
	// cubes.
	Aperture float64

	// Cells is the marching cubes resolution along the longest side of a
	// slab. Zero means DefaultCells.
	Cells int
}

// Tessellate produces one mesh per fracture and one trace per edge with
// point or segment geometry. A fracture whose edges are not perpendicular
// gets a flat quad even when an aperture is set, and a scene warning. The
// network is not modified.
func Tessellate(n *graph.Network, opts Options) (*Scene, error) {
	scene := &Scene{}
	if n == nil {
		return scene, nil
	}

	cluster := make([]int, n.NodeCount())
	for c, members := range n.Clusters() {
		for _, idx := range members {
			cluster[idx] = c
		}
	}

	for _, node := range n.Nodes {
		var (
			mesh *Mesh
			err  error
		)
		if opts.Aperture > 0 {
			mesh, err = slabMesh(node.Rect, opts.Aperture, opts.Cells)
			// The slab is built in the fracture's own frame, which skewed
			// edges do not span. Draw those flat instead.
			if errors.Is(err, geom.ErrNotPerpendicular) {
				scene.Warnings = append(scene.Warnings, Warning{
					Fracture: node.Index,
					Message:  fmt.Sprintf("%s: %v; drawn without aperture", node.Label(), err),
				})
				mesh, err = quadMesh(node.Rect)
			}
		} else {
			mesh, err = quadMesh(node.Rect)
		}
		if err != nil {
			return nil, fmt.Errorf("tessellate: fracture %s: %w", node.Label(), err)
		}
		mesh.PartName = node.Label()
		mesh.Cluster = cluster[node.Index]
		scene.Meshes = append(scene.Meshes, mesh)
	}

	for _, e := range n.Edges {
		pts := e.Result.Points()
		if len(pts) == 0 {
			continue
		}
		scene.Traces = append(scene.Traces, Trace{
			A:      e.A,
			B:      e.B,
			Kind:   e.Result.Kind.String(),
			Points: flatten(pts),
		})
	}

	return scene, nil
}

// quadMesh draws a rectangle as two triangles wound counter-clockwise
// around e1 × e2.
func quadMesh(r geom.Rectangle3) (*Mesh, error) {
	if err := geom.Validate(r); err != nil {
		return nil, err
	}
	vs := r.Vertices()
	normal := r.Edge1().Cross(r.Edge2()).Normalize()

	m := &Mesh{
		Vertices: flatten(vs[:]),
		Indices:  []uint32{0, 2, 1, 0, 3, 2},
	}
	for range vs {
		m.Normals = append(m.Normals, float32(normal.X), float32(normal.Y), float32(normal.Z))
	}
	return m, nil
}

func flatten(ps []v3.Vec) []float32 {
	out := make([]float32, 0, 3*len(ps))
	for _, p := range ps {
		out = append(out, float32(p.X), float32(p.Y), float32(p.Z))
	}
	return out
}
