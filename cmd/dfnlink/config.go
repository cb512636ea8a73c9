package main

import (
	"errors"
	"flag"
	"runtime"
)

// Config holds the command line settings.
type Config struct {
	Input    string  // rectangle file, one fracture per line
	Script   string  // fracture DSL script, used instead of Input
	Expected string  // optional link file to diff against
	LinksOut string  // where to write computed links ("-" for stdout)
	SceneOut string  // where to write the viewer JSON
	Workers  int     // goroutines evaluating pairs
	UseIndex bool    // prefilter pairs with the R-tree
	Trace    bool    // log every intersection decision
	Prune    float64 // drop fractures with area <= Prune * mean area
	Aperture float64 // slab thickness for the scene mesh, 0 for flat quads
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		LinksOut: "-",
		Workers:  runtime.NumCPU(),
		UseIndex: true,
	}
}

// RegisterFlags binds c to fs. The current values of c are the defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "in", c.Input, "rectangle file (9 or 6 numbers per line)")
	fs.StringVar(&c.Script, "script", c.Script, "fracture DSL script, instead of -in")
	fs.StringVar(&c.Expected, "expected", c.Expected, "link file to compare against")
	fs.StringVar(&c.LinksOut, "links", c.LinksOut, "path to write links, - for stdout, empty to skip")
	fs.StringVar(&c.SceneOut, "scene", c.SceneOut, "path to write meshes and traces as JSON")
	fs.IntVar(&c.Workers, "workers", c.Workers, "number of worker goroutines")
	fs.BoolVar(&c.UseIndex, "index", c.UseIndex, "prefilter pairs with an R-tree")
	fs.BoolVar(&c.Trace, "trace", c.Trace, "log every intersection decision to stderr")
	fs.Float64Var(&c.Prune, "prune", c.Prune, "drop fractures with area at most this fraction of the mean (e.g. 0.025)")
	fs.Float64Var(&c.Aperture, "aperture", c.Aperture, "fracture thickness for the scene mesh")
}

// Validate checks that exactly one source is given and numbers are sane.
func (c Config) Validate() error {
	switch {
	case c.Input == "" && c.Script == "":
		return errors.New("one of -in or -script is required")
	case c.Input != "" && c.Script != "":
		return errors.New("-in and -script are mutually exclusive")
	case c.Workers < 0:
		return errors.New("-workers must not be negative")
	case c.Prune < 0 || c.Prune >= 1:
		return errors.New("-prune must be in [0, 1)")
	case c.Aperture < 0:
		return errors.New("-aperture must not be negative")
	}
	return nil
}
