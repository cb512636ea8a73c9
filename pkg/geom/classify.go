package geom

// Crossing describes how a rectangle's four vertices sit relative to another
// rectangle's plane.
type Crossing int

const (
	NoCrossing Crossing = iota // all vertices strictly on one side
	TwoTwo                     // two vertices on each side
	OneThree                   // one vertex alone on its side
	OnPlane                    // at least one vertex exactly on the plane
)

func (c Crossing) String() string {
	switch c {
	case NoCrossing:
		return "no-crossing"
	case TwoTwo:
		return "two-two"
	case OneThree:
		return "one-three"
	case OnPlane:
		return "on-plane"
	default:
		return "unknown"
	}
}

// Classification is the result of Classify. Only the fields for Kind are set.
type Classification struct {
	Kind     Crossing
	Pos, Neg [2]int // TwoTwo: ascending indices of each side
	Minority int    // OneThree: index of the lone vertex
	Zeros    []int  // OnPlane: ascending indices of vertices with z == 0
}

// Classify sorts the four local heights of a projected rectangle into a
// Crossing. Any value other than exactly zero counts as a strict side.
// Heights that are NaN belong to no side and yield NoCrossing.
func Classify(z [4]float64) Classification {
	var pos, neg, zeros []int
	for i, h := range z {
		switch {
		case h > 0:
			pos = append(pos, i)
		case h < 0:
			neg = append(neg, i)
		case h == 0:
			zeros = append(zeros, i)
		default:
			return Classification{Kind: NoCrossing}
		}
	}

	switch {
	case len(zeros) > 0:
		return Classification{Kind: OnPlane, Zeros: zeros}
	case len(pos) == 2:
		return Classification{Kind: TwoTwo, Pos: [2]int{pos[0], pos[1]}, Neg: [2]int{neg[0], neg[1]}}
	case len(pos) == 1:
		return Classification{Kind: OneThree, Minority: pos[0]}
	case len(neg) == 1:
		return Classification{Kind: OneThree, Minority: neg[0]}
	default:
		return Classification{Kind: NoCrossing}
	}
}

// adjacent reports whether vertex indices i and j share an edge.
func adjacent(i, j int) bool {
	d := (i - j + 4) % 4
	return d == 1 || d == 3
}

// crossingEdges returns the two edges of a TwoTwo split. Same-side vertices
// of a convex quadrilateral form one contiguous run, so pairing by position
// within each side yields edges except for the runs {0,1}|{2,3} and
// {2,3}|{0,1}, where it would join opposite corners; those are re-paired.
func crossingEdges(c Classification) [2][2]int {
	edges := [2][2]int{{c.Pos[0], c.Neg[0]}, {c.Pos[1], c.Neg[1]}}
	if !adjacent(edges[0][0], edges[0][1]) || !adjacent(edges[1][0], edges[1][1]) {
		edges = [2][2]int{{c.Pos[0], c.Neg[1]}, {c.Pos[1], c.Neg[0]}}
	}
	for _, e := range edges {
		if !adjacent(e[0], e[1]) {
			panic("geom: two-two split does not separate contiguous vertex runs")
		}
	}
	return edges
}

// oneThreeEdges returns the two edges incident to the lone vertex i.
func oneThreeEdges(i int) [2][2]int {
	return [2][2]int{{i, (i + 1) % 4}, {i, (i + 3) % 4}}
}
