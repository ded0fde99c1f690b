package sequence_test

import (
	"testing"

	"github.com/katalvlaran/labs/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnumerator_VisitsEveryAssignmentOnce walks the full 2ⁿ space for
// small n and checks count, distinctness and ±1 validity.
func TestEnumerator_VisitsEveryAssignmentOnce(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 5, 8} {
		e, err := sequence.NewEnumerator(n)
		require.NoError(t, err)

		seen := make(map[string]bool)
		for e.Next() {
			s := e.Current()
			require.Len(t, s, n)
			require.NoError(t, sequence.Validate(s), "enumerated sequence must be ±1-valued")
			seen[s.String()] = true
		}

		assert.Equal(t, int(e.Size()), len(seen), "n=%d must yield 2^n distinct sequences", n)
		assert.False(t, e.Next(), "exhausted enumerator must keep returning false")
	}
}

// TestEnumerator_MaskEncoding pins the bit convention: bit i clear ⇒
// +1 at index i, mask 0 is all-plus.
func TestEnumerator_MaskEncoding(t *testing.T) {
	e, err := sequence.NewEnumerator(3)
	require.NoError(t, err)

	require.True(t, e.Next())
	assert.Equal(t, uint64(0), e.Mask())
	assert.Equal(t, "+++", e.Current().String(), "mask 0 must decode to all-plus")

	require.True(t, e.Next())
	assert.Equal(t, uint64(1), e.Mask())
	assert.Equal(t, "-++", e.Current().String(), "mask 1 must flip index 0 only")
}

// TestEnumerator_ResetRestartsWalk verifies that Reset replays the walk
// from mask 0 with identical output.
func TestEnumerator_ResetRestartsWalk(t *testing.T) {
	e, err := sequence.NewEnumerator(4)
	require.NoError(t, err)

	var first []string
	for e.Next() {
		first = append(first, e.Current().String())
	}

	e.Reset()
	var second []string
	for e.Next() {
		second = append(second, e.Current().String())
	}

	assert.Equal(t, first, second, "Reset must replay the identical walk")
}

// TestEnumerator_SeekAgreesWithIteration shards [0, 2ⁿ) in two and
// checks the shard walk equals the corresponding slice of the full walk,
// and that FromMask agrees with both.
func TestEnumerator_SeekAgreesWithIteration(t *testing.T) {
	const n = 4

	full, err := sequence.NewEnumerator(n)
	require.NoError(t, err)
	var all []string
	for full.Next() {
		all = append(all, full.Current().String())
	}

	shard, err := sequence.NewEnumerator(n)
	require.NoError(t, err)
	mid := shard.Size() / 2
	require.NoError(t, shard.Seek(mid))

	var i = int(mid)
	for shard.Next() {
		assert.Equal(t, all[i], shard.Current().String(), "shard walk must match full walk at mask %d", i)

		got, err := sequence.FromMask(n, shard.Mask())
		require.NoError(t, err)
		assert.Equal(t, all[i], got.String(), "FromMask must agree with iteration at mask %d", i)
		i++
	}
	assert.Equal(t, len(all), i, "shard must cover the upper half exactly")
}

// TestEnumerator_Bounds exercises the error surface: negative length,
// length above MaxEnumN, out-of-range Seek and FromMask.
func TestEnumerator_Bounds(t *testing.T) {
	_, err := sequence.NewEnumerator(-1)
	assert.ErrorIs(t, err, sequence.ErrNegativeLength)

	_, err = sequence.NewEnumerator(sequence.MaxEnumN + 1)
	assert.ErrorIs(t, err, sequence.ErrLengthTooLarge)

	e, err := sequence.NewEnumerator(3)
	require.NoError(t, err)
	assert.NoError(t, e.Seek(e.Size()), "Seek(Size()) exhausts the walk and is legal")
	assert.False(t, e.Next())
	assert.ErrorIs(t, e.Seek(e.Size()+1), sequence.ErrMaskOutOfRange)

	_, err = sequence.FromMask(3, 8)
	assert.ErrorIs(t, err, sequence.ErrMaskOutOfRange)
	_, err = sequence.FromMask(-2, 0)
	assert.ErrorIs(t, err, sequence.ErrNegativeLength)
}
