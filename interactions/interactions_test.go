package interactions_test

import (
	"testing"

	"github.com/katalvlaran/labs/interactions"
	"github.com/katalvlaran/labs/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_SmallLengths verifies that n < 4 degrades gracefully to
// empty (but non-nil) sets rather than erroring.
func TestGenerate_SmallLengths(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3} {
		g2, g4, err := interactions.Generate(n)
		require.NoError(t, err, "small n must not error, n=%d", n)

		require.NotNil(t, g2, "G2 must be non-nil for n=%d", n)
		require.NotNil(t, g4, "G4 must be non-nil for n=%d", n)
		assert.Len(t, g2, interactions.PairCount(n))
		assert.Len(t, g4, interactions.QuadCount(n))
		if n < 4 {
			assert.Empty(t, g4, "no quad fits below n=4")
		}
		if n < 2 {
			assert.Empty(t, g2, "no pair fits below n=2")
		}
	}
}

// TestGenerate_CountsMatchFormula checks |G2|=n−1 and |G4|=n−3 across
// a spread of lengths.
func TestGenerate_CountsMatchFormula(t *testing.T) {
	for _, n := range []int{4, 5, 6, 7, 8, 10, 20} {
		g2, g4, err := interactions.Generate(n)
		require.NoError(t, err)

		assert.Len(t, g2, n-1, "G2 count mismatch for n=%d", n)
		assert.Len(t, g4, n-3, "G4 count mismatch for n=%d", n)
	}
}

// TestGenerate_BoundsAndOrdering verifies every index lies in [0, n)
// and tuple components are strictly increasing (consecutive, in fact).
func TestGenerate_BoundsAndOrdering(t *testing.T) {
	for _, n := range []int{4, 5, 6, 10, 20} {
		g2, g4, err := interactions.Generate(n)
		require.NoError(t, err)

		for _, p := range g2 {
			assert.GreaterOrEqual(t, p[0], 0)
			assert.Less(t, p[1], n, "G2 index out of bounds for n=%d: %v", n, p)
			assert.Equal(t, p[0]+1, p[1], "G2 pairs are consecutive neighbors")
		}
		for _, q := range g4 {
			assert.GreaterOrEqual(t, q[0], 0)
			assert.Less(t, q[3], n, "G4 index out of bounds for n=%d: %v", n, q)
			assert.True(t, q[0] < q[1] && q[1] < q[2] && q[2] < q[3],
				"G4 components must be strictly increasing: %v", q)
			assert.Equal(t, q[0]+3, q[3], "G4 quads are consecutive blocks")
		}
	}
}

// TestGenerate_NoDuplicates uses set semantics (arrays are comparable)
// to confirm both collections are duplicate-free.
func TestGenerate_NoDuplicates(t *testing.T) {
	for _, n := range []int{6, 10, 20} {
		g2, g4, err := interactions.Generate(n)
		require.NoError(t, err)

		pairSet := make(map[interactions.Pair]bool, len(g2))
		for _, p := range g2 {
			pairSet[p] = true
		}
		assert.Len(t, pairSet, len(g2), "duplicate pairs in G2 for n=%d", n)

		quadSet := make(map[interactions.Quad]bool, len(g4))
		for _, q := range g4 {
			quadSet[q] = true
		}
		assert.Len(t, quadSet, len(g4), "duplicate quads in G4 for n=%d", n)
	}
}

// TestGenerate_Deterministic verifies two calls produce identical
// slices in identical order.
func TestGenerate_Deterministic(t *testing.T) {
	a2, a4, err := interactions.Generate(12)
	require.NoError(t, err)
	b2, b4, err := interactions.Generate(12)
	require.NoError(t, err)

	assert.Equal(t, a2, b2)
	assert.Equal(t, a4, b4)
}

// TestGenerate_NegativeLength verifies the single error case.
func TestGenerate_NegativeLength(t *testing.T) {
	_, _, err := interactions.Generate(-1)
	assert.ErrorIs(t, err, sequence.ErrNegativeLength)
}
