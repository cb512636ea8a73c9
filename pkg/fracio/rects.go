package fracio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chazu/dfnlink/pkg/geom"
	"github.com/chazu/dfnlink/pkg/graph"
	"github.com/samber/lo"
)

// ErrFieldCount is returned for a line with the wrong number of fields.
var ErrFieldCount = errors.New("wrong number of fields")

// record is one parsed data line.
type record struct {
	line   int
	fields []string
}

// scan calls fn for every data line of r.
func scan(r io.Reader, fn func(rec record) error) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := fn(record{line: line, fields: strings.Fields(text)}); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return sc.Err()
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseRect(fields []string) (geom.Rectangle3, error) {
	if len(fields) != 9 && len(fields) != 6 {
		return geom.Rectangle3{}, fmt.Errorf("%w: got %d, want 9 or 6", ErrFieldCount, len(fields))
	}
	f, err := parseFloats(fields)
	if err != nil {
		return geom.Rectangle3{}, err
	}
	if len(f) == 6 {
		return geom.FromVertical(f[0], f[1], f[2], f[3], f[4], f[5]), nil
	}
	var rc [9]float64
	copy(rc[:], f)
	return geom.FromRC3(rc), nil
}

// ReadNetwork parses a rectangle file into an unlinked network. Each node
// records its source file and line; file may be empty.
func ReadNetwork(r io.Reader, file string) (*graph.Network, error) {
	n := graph.New()
	err := scan(r, func(rec record) error {
		rect, err := parseRect(rec.fields)
		if err != nil {
			return err
		}
		n.AddFracture("", rect, graph.SourceRef{File: file, Line: rec.line})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fracio: read rectangles: %w", err)
	}
	return n, nil
}

// ReadRects parses a rectangle file.
func ReadRects(r io.Reader) ([]geom.Rectangle3, error) {
	n, err := ReadNetwork(r, "")
	if err != nil {
		return nil, err
	}
	return n.Rects(), nil
}

// LoadNetwork reads the rectangle file at path.
func LoadNetwork(path string) (*graph.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fracio: %w", err)
	}
	defer f.Close()
	return ReadNetwork(f, path)
}

// WriteRects writes one rectangle per line in the nine-number form. Numbers
// are written with the shortest representation that reads back exactly.
func WriteRects(w io.Writer, rects []geom.Rectangle3) error {
	bw := bufio.NewWriter(w)
	for _, r := range rects {
		rc := r.RC3()
		line := strings.Join(lo.Map(rc[:], func(v float64, _ int) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		}), " ")
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("fracio: write rectangles: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("fracio: write rectangles: %w", err)
	}
	return nil
}
