package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chazu/dfnlink/pkg/engine"
	"github.com/chazu/dfnlink/pkg/fracio"
	"github.com/chazu/dfnlink/pkg/geom"
	"github.com/chazu/dfnlink/pkg/graph"
	"github.com/chazu/dfnlink/pkg/link"
	"github.com/chazu/dfnlink/pkg/tessellate"
)

// colorPalette is a default palette used to assign distinct colors to
// clusters.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App links fracture sets and prepares the results for output.
type App struct {
	cfg    Config
	engine *engine.Engine
	trace  *log.Logger
}

// MeshData is the JSON-serializable mesh format sent to the viewer.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	PartName string    `json:"partName"`
	Color    string    `json:"color"`
}

// EvalErrorData is a JSON-serializable error or warning.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result of linking one fracture set.
type EvalResult struct {
	Fractures int                `json:"fractures"`
	Links     [][2]int           `json:"links"`
	Clusters  [][]int            `json:"clusters"`
	Meshes    []MeshData         `json:"meshes"`
	Traces    []tessellate.Trace `json:"traces"`
	Errors    []EvalErrorData    `json:"errors"`
	Warnings  []EvalErrorData    `json:"warnings"`
}

// OK reports whether linking succeeded.
func (r EvalResult) OK() bool {
	return len(r.Errors) == 0
}

// NewApp creates an App for cfg. Tracing goes to stderr when cfg.Trace is
// set.
func NewApp(cfg Config) *App {
	a := &App{cfg: cfg, engine: engine.NewEngine()}
	if cfg.Trace {
		a.trace = log.New(os.Stderr, "geom: ", 0)
	}
	return a
}

func newResult() EvalResult {
	return EvalResult{
		Links:    [][2]int{},
		Clusters: [][]int{},
		Meshes:   []MeshData{},
		Traces:   []tessellate.Trace{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}
}

// Evaluate runs a fracture script and links the fractures it defines.
func (a *App) Evaluate(source string) EvalResult {
	result := newResult()

	// Step 1: Evaluate the script into an unlinked network.
	n, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	return a.Link(n)
}

// Link validates, prunes, links and tessellates n.
func (a *App) Link(n *graph.Network) EvalResult {
	result := newResult()

	// Step 1: Drop small fractures before anything refers to indices.
	if a.cfg.Prune > 0 {
		pruned, err := graph.PruneSmall(n, a.cfg.Prune)
		if err != nil {
			result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
			return result
		}
		if dropped := n.NodeCount() - pruned.NodeCount(); dropped > 0 {
			log.Printf("pruned %d of %d fractures", dropped, n.NodeCount())
		}
		n = pruned
	}
	result.Fractures = n.NodeCount()

	// Step 2: Structural validation blocks linking.
	if pre := graph.ValidateAll(n); !pre.OK() {
		for _, e := range pre.Errors {
			result.Errors = append(result.Errors, EvalErrorData{Line: lineOf(n, e.NodeID), Message: e.Error()})
		}
		return result
	}

	// Step 3: Compute links.
	opts := link.Options{
		Workers:  a.cfg.Workers,
		UseIndex: a.cfg.UseIndex,
		Geom:     geom.Options{Logger: a.trace},
	}
	if err := n.Connect(opts); err != nil {
		log.Printf("Connect error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}
	result.Links = append(result.Links, n.Pairs()...)
	result.Clusters = append(result.Clusters, n.Clusters()...)

	for _, w := range graph.ValidateAll(n).Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{Line: lineOf(n, w.NodeID), Message: w.Message})
	}

	// Step 4: Tessellate for the viewer.
	// Links and clusters stand without the viewer meshes.
	scene, err := tessellate.Tessellate(n, tessellate.Options{Aperture: a.cfg.Aperture})
	if err != nil {
		log.Printf("Tessellate error: %v", err)
		result.Warnings = append(result.Warnings, EvalErrorData{Message: "tessellation failed: " + err.Error()})
		return result
	}
	for _, w := range scene.Warnings {
		line := 0
		if node := n.Get(w.Fracture); node != nil {
			line = node.Source.Line
		}
		result.Warnings = append(result.Warnings, EvalErrorData{Line: line, Message: w.Message})
	}
	for _, m := range scene.Meshes {
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			PartName: m.PartName,
			Color:    colorPalette[m.Cluster%len(colorPalette)],
		})
	}
	result.Traces = append(result.Traces, scene.Traces...)

	return result
}

// Run loads the configured input and links it.
func (a *App) Run() (EvalResult, error) {
	if a.cfg.Script != "" {
		src, err := os.ReadFile(a.cfg.Script)
		if err != nil {
			return EvalResult{}, fmt.Errorf("read script: %w", err)
		}
		return a.Evaluate(string(src)), nil
	}
	n, err := fracio.LoadNetwork(a.cfg.Input)
	if err != nil {
		return EvalResult{}, err
	}
	return a.Link(n), nil
}

// WriteLinks writes the computed links to the configured destination.
func (a *App) WriteLinks(result EvalResult, stdout io.Writer) error {
	switch a.cfg.LinksOut {
	case "":
		return nil
	case "-":
		return fracio.WritePairs(stdout, result.Links)
	}
	f, err := os.Create(a.cfg.LinksOut)
	if err != nil {
		return fmt.Errorf("write links: %w", err)
	}
	if err := fracio.WritePairs(f, result.Links); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Compare diffs the computed links against the expected link file, if any.
func (a *App) Compare(result EvalResult) (*fracio.Diff, error) {
	if a.cfg.Expected == "" {
		return nil, nil
	}
	expected, err := fracio.LoadPairs(a.cfg.Expected)
	if err != nil {
		return nil, err
	}
	d := fracio.DiffLinks(expected, result.Links)
	return &d, nil
}

// lineOf returns the source line of the fracture with the given ID, or 0.
func lineOf(n *graph.Network, id graph.NodeID) int {
	if id.IsZero() {
		return 0
	}
	for _, node := range n.Nodes {
		if node.ID == id {
			return node.Source.Line
		}
	}
	return 0
}
