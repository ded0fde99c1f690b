package interactions

import "github.com/katalvlaran/labs/sequence"

// Pair is a 2-body coupling term: indices (i, j) with i < j.
type Pair [2]int

// Quad is a 4-body coupling term: indices (a, b, c, d) with a<b<c<d.
type Quad [4]int

// Generate produces the 2-body and 4-body index sets for a sequence of
// length n. Both slices are non-nil for n ≥ 0; small n simply yields
// empty sets (no error).
//
// Errors: sequence.ErrNegativeLength for n < 0.
//
// Complexity: O(n) time, O(n) space.
func Generate(n int) ([]Pair, []Quad, error) {
	if n < 0 {
		return nil, nil, sequence.ErrNegativeLength
	}

	var (
		g2 = make([]Pair, 0, PairCount(n))
		g4 = make([]Quad, 0, QuadCount(n))
		i  int
	)
	for i = 0; i+1 < n; i++ {
		g2 = append(g2, Pair{i, i + 1})
	}
	for i = 0; i+3 < n; i++ {
		g4 = append(g4, Quad{i, i + 1, i + 2, i + 3})
	}
	return g2, g4, nil
}

// PairCount returns |G2| = max(n−1, 0) without materializing the set.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n - 1
}

// QuadCount returns |G4| = max(n−3, 0) without materializing the set.
func QuadCount(n int) int {
	if n < 4 {
		return 0
	}
	return n - 3
}
