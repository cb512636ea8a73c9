package fracio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ReadPairs parses a link file.
func ReadPairs(r io.Reader) ([][2]int, error) {
	var pairs [][2]int
	err := scan(r, func(rec record) error {
		if len(rec.fields) != 2 {
			return fmt.Errorf("%w: got %d, want 2", ErrFieldCount, len(rec.fields))
		}
		var p [2]int
		for k, f := range rec.fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return fmt.Errorf("field %d: %w", k+1, err)
			}
			if v < 0 {
				return fmt.Errorf("field %d: negative index %d", k+1, v)
			}
			p[k] = v
		}
		pairs = append(pairs, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fracio: read links: %w", err)
	}
	return pairs, nil
}

// LoadPairs reads the link file at path.
func LoadPairs(path string) ([][2]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fracio: %w", err)
	}
	defer f.Close()
	return ReadPairs(f)
}

// WritePairs writes one pair per line.
func WritePairs(w io.Writer, pairs [][2]int) error {
	bw := bufio.NewWriter(w)
	for _, p := range pairs {
		if _, err := fmt.Fprintf(bw, "%d %d\n", p[0], p[1]); err != nil {
			return fmt.Errorf("fracio: write links: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("fracio: write links: %w", err)
	}
	return nil
}

// ---- diff ----

// Diff compares an expected link list with a computed one.
type Diff struct {
	Missing [][2]int `json:"missing"` // expected but not computed
	Extra   [][2]int `json:"extra"`   // computed but not expected
}

// Empty reports whether both lists agree.
func (d Diff) Empty() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0
}

func (d Diff) String() string {
	if d.Empty() {
		return "links match"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d missing, %d extra", len(d.Missing), len(d.Extra))
	for _, p := range d.Missing {
		fmt.Fprintf(&b, "\n- %d %d", p[0], p[1])
	}
	for _, p := range d.Extra {
		fmt.Fprintf(&b, "\n+ %d %d", p[0], p[1])
	}
	return b.String()
}

// DiffLinks compares two link lists as unordered sets of unordered pairs.
// Both results are sorted with the smaller index first in each pair.
func DiffLinks(expected, got [][2]int) Diff {
	want := lo.Uniq(normalize(expected))
	have := lo.Uniq(normalize(got))
	missing, extra := lo.Difference(want, have)
	return Diff{Missing: sortPairs(missing), Extra: sortPairs(extra)}
}

func normalize(pairs [][2]int) [][2]int {
	return lo.Map(pairs, func(p [2]int, _ int) [2]int {
		if p[0] > p[1] {
			return [2]int{p[1], p[0]}
		}
		return p
	})
}

func sortPairs(pairs [][2]int) [][2]int {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	if len(pairs) == 0 {
		return nil
	}
	return pairs
}
