// Command dfnlink finds the intersecting pairs of a set of rectangular
// fractures and writes the links, a viewer scene and an optional diff
// against a known link list.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	cfg := DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	code, err := run(cfg, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dfnlink: %v\n", err)
	}
	os.Exit(code)
}

// run executes one invocation and returns the process exit code: 0 on
// success, 1 on failure, 2 when links differ from the expected list.
func run(cfg Config, stdout io.Writer) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 1, err
	}

	app := NewApp(cfg)
	result, err := app.Run()
	if err != nil {
		return 1, err
	}
	for _, w := range result.Warnings {
		log.Printf("warning: %s", w.Message)
	}
	if !result.OK() {
		for _, e := range result.Errors {
			if e.Line > 0 {
				log.Printf("error: line %d: %s", e.Line, e.Message)
			} else {
				log.Printf("error: %s", e.Message)
			}
		}
		return 1, fmt.Errorf("%d error(s)", len(result.Errors))
	}

	if err := app.WriteLinks(result, stdout); err != nil {
		return 1, err
	}
	if cfg.SceneOut != "" {
		if err := writeJSON(cfg.SceneOut, result); err != nil {
			return 1, err
		}
	}
	log.Printf("%d fractures, %d links, %d clusters", result.Fractures, len(result.Links), len(result.Clusters))

	diff, err := app.Compare(result)
	if err != nil {
		return 1, err
	}
	if diff != nil && !diff.Empty() {
		log.Printf("links differ from %s: %s", cfg.Expected, diff)
		return 2, nil
	}
	return 0, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
