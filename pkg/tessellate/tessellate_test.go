package tessellate_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/chazu/dfnlink/pkg/geom"
	"github.com/chazu/dfnlink/pkg/graph"
	"github.com/chazu/dfnlink/pkg/link"
	"github.com/chazu/dfnlink/pkg/tessellate"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

func vec(x, y, z float64) v3.Vec {
	return v3.Vec{X: x, Y: y, Z: z}
}

// makeNetwork creates two crossing squares and one far away, linked.
func makeNetwork(t *testing.T) *graph.Network {
	t.Helper()
	n := graph.New()
	n.AddFracture("xz", geom.NewRectangle(vec(0, 0, 0), vec(1, 0, 0), vec(0, 0, 1)), graph.SourceRef{})
	n.AddFracture("xy", geom.NewRectangle(vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0)), graph.SourceRef{})
	n.AddFracture("far", geom.NewRectangle(vec(10, 10, 10), vec(1, 0, 0), vec(0, 1, 0)), graph.SourceRef{})
	if err := n.Connect(link.Options{Workers: 1}); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	return n
}

func TestQuadMeshes(t *testing.T) {
	n := makeNetwork(t)

	scene, err := tessellate.Tessellate(n, tessellate.Options{})
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(scene.Meshes) != 3 {
		t.Fatalf("expected 3 meshes, got %d", len(scene.Meshes))
	}
	if scene.TriangleCount() != 6 {
		t.Errorf("expected 6 triangles, got %d", scene.TriangleCount())
	}

	xy := scene.Meshes[1]
	if xy.PartName != "xy" {
		t.Errorf("expected PartName %q, got %q", "xy", xy.PartName)
	}
	if xy.VertexCount() != 4 {
		t.Errorf("expected 4 vertices, got %d", xy.VertexCount())
	}
	// The XY square faces +z.
	for i := 0; i < xy.VertexCount(); i++ {
		if xy.Normals[3*i+2] != 1 {
			t.Errorf("vertex %d normal z = %g, want 1", i, xy.Normals[3*i+2])
		}
	}
	// Winding agrees with the normal.
	a, b, c := vertex(xy, xy.Indices[0]), vertex(xy, xy.Indices[1]), vertex(xy, xy.Indices[2])
	if z := b.Sub(a).Cross(c.Sub(a)).Z; z <= 0 {
		t.Errorf("first triangle winds clockwise (cross z = %g)", z)
	}

	if scene.Meshes[0].Cluster != scene.Meshes[1].Cluster {
		t.Error("crossing fractures should share a cluster")
	}
	if scene.Meshes[2].Cluster == scene.Meshes[0].Cluster {
		t.Error("far fracture should be in its own cluster")
	}
}

func TestTraces(t *testing.T) {
	n := makeNetwork(t)

	scene, err := tessellate.Tessellate(n, tessellate.Options{})
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(scene.Traces) != 1 {
		t.Fatalf("expected 1 trace, got %d", len(scene.Traces))
	}
	tr := scene.Traces[0]
	if tr.A != 0 || tr.B != 1 || tr.Kind != "segment" {
		t.Errorf("trace = %+v", tr)
	}
	if len(tr.Points) != 6 {
		t.Fatalf("expected 2 points, got %d floats", len(tr.Points))
	}
	// The trace runs along the x axis from -1 to 1.
	xs := []float32{tr.Points[0], tr.Points[3]}
	if math.Abs(float64(xs[0]+xs[1])) > 1e-6 || math.Abs(math.Abs(float64(xs[0]))-1) > 1e-6 {
		t.Errorf("trace x extent = %v, want ±1", xs)
	}
}

func TestCoplanarEdgeHasNoTrace(t *testing.T) {
	n := makeNetwork(t)
	n.Edges = append(n.Edges, graph.Edge{A: 1, B: 2, Result: geom.Result{Kind: geom.ResultCoplanar}})

	scene, err := tessellate.Tessellate(n, tessellate.Options{})
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(scene.Traces) != 1 {
		t.Errorf("expected coplanar edge to be skipped, got %d traces", len(scene.Traces))
	}
}

func TestSlabMesh(t *testing.T) {
	n := graph.New()
	n.AddFracture("tilted", geom.NewRectangle(vec(1, 2, 3), vec(1, 1, 0), vec(0, 0, 1)), graph.SourceRef{})

	scene, err := tessellate.Tessellate(n, tessellate.Options{Aperture: 0.5, Cells: 24})
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	m := scene.Meshes[0]
	if m.IsEmpty() {
		t.Fatal("slab mesh is empty")
	}
	if m.TriangleCount() <= 2 {
		t.Errorf("slab should have more triangles than a quad, got %d", m.TriangleCount())
	}
	if len(m.Vertices) != len(m.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(m.Vertices), len(m.Normals))
	}
	if len(m.Indices) != m.TriangleCount()*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(m.Indices), m.TriangleCount()*3)
	}

	// Every vertex lies within the rectangle's box padded by the aperture
	// and one marching cubes cell.
	bb := n.Nodes[0].Rect.Bounds()
	const pad = 0.25 + 0.25
	for i := 0; i < m.VertexCount(); i++ {
		v := vertex(m, uint32(i))
		if v.X < bb.Min.X-pad || v.X > bb.Max.X+pad ||
			v.Y < bb.Min.Y-pad || v.Y > bb.Max.Y+pad ||
			v.Z < bb.Min.Z-pad || v.Z > bb.Max.Z+pad {
			t.Fatalf("vertex %d = %v outside %v", i, v, bb)
		}
	}
}

func TestSkewedSlabFallsBackToQuad(t *testing.T) {
	n := graph.New()
	n.AddFracture("skewed", geom.Rectangle3{Center: vec(0, 0, 0), Mid1: vec(1, 0, 0), Mid2: vec(0.1, 0, 1)}, graph.SourceRef{})
	n.AddFracture("square", geom.NewRectangle(vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0)), graph.SourceRef{})

	scene, err := tessellate.Tessellate(n, tessellate.Options{Aperture: 0.2, Cells: 16})
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if got := scene.Meshes[0].TriangleCount(); got != 2 {
		t.Errorf("skewed fracture: %d triangles, want a flat quad", got)
	}
	if got := scene.Meshes[1].TriangleCount(); got <= 2 {
		t.Errorf("square fracture: %d triangles, want a slab", got)
	}
	if len(scene.Warnings) != 1 || scene.Warnings[0].Fracture != 0 {
		t.Errorf("warnings = %+v, want one for fracture 0", scene.Warnings)
	}
}

func TestDegenerateFractureFails(t *testing.T) {
	n := graph.New()
	n.AddFracture("flat", geom.NewRectangle(vec(0, 0, 0), vec(1, 0, 0), vec(0, 0, 0)), graph.SourceRef{})

	if _, err := tessellate.Tessellate(n, tessellate.Options{}); err == nil {
		t.Error("expected an error for a degenerate fracture")
	}
}

func TestNilNetwork(t *testing.T) {
	scene, err := tessellate.Tessellate(nil, tessellate.Options{})
	if err != nil {
		t.Fatalf("Tessellate(nil) failed: %v", err)
	}
	if len(scene.Meshes) != 0 || len(scene.Traces) != 0 {
		t.Errorf("expected empty scene, got %+v", scene)
	}
}

func TestSceneJSON(t *testing.T) {
	scene, err := tessellate.Tessellate(makeNetwork(t), tessellate.Options{})
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	data, err := json.Marshal(scene)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var decoded map[string][]map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	for _, key := range []string{"vertices", "normals", "indices", "partName", "cluster"} {
		if _, ok := decoded["meshes"][0][key]; !ok {
			t.Errorf("mesh JSON missing %q", key)
		}
	}
	if decoded["traces"][0]["kind"] != "segment" {
		t.Errorf("trace kind = %v", decoded["traces"][0]["kind"])
	}
}

func vertex(m *tessellate.Mesh, i uint32) v3.Vec {
	return v3.Vec{X: float64(m.Vertices[3*i]), Y: float64(m.Vertices[3*i+1]), Z: float64(m.Vertices[3*i+2])}
}
