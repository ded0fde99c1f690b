package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/labs/sequence"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFlip
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Negate every spin of a small sequence and show the involution:
//	flipping twice restores the original.
//
// Complexity: O(N) per transform.
func ExampleFlip() {
	s, _ := sequence.Parse("++-+-")

	fmt.Println(sequence.Flip(s))
	fmt.Println(sequence.Flip(sequence.Flip(s)))
	// Output:
	// --+-+
	// ++-+-
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEnumerator
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Walk every ±1 assignment of length 2 lazily, in ascending mask
//	order. Bit i of the mask selects the sign at index i.
//
// Complexity: O(2ᴺ·N) for the full walk, O(N) memory.
func ExampleEnumerator() {
	e, _ := sequence.NewEnumerator(2)
	for e.Next() {
		fmt.Printf("mask=%d %s\n", e.Mask(), e.Current())
	}
	// Output:
	// mask=0 ++
	// mask=1 -+
	// mask=2 +-
	// mask=3 --
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleRandom
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Sample a ±1 sequence from an explicit seeded generator. The same
//	seed reproduces the same sequence on every platform.
func ExampleRandom() {
	a, _ := sequence.Random(8, sequence.NewRand(42))
	b, _ := sequence.Random(8, sequence.NewRand(42))

	fmt.Println(sequence.Equal(a, b))
	// Output:
	// true
}
