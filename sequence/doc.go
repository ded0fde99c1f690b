// Package sequence defines the ±1 spin sequences the LABS problem is
// stated over, together with their basic transforms and producers.
//
// A Sequence is an ordered, fixed-length vector of spins, each exactly
// +1 or −1. Sequences are treated as immutable values: Flip and
// Reverse return fresh slices and never mutate their input.
//
// The package also centralizes the two ways sequences come into
// existence:
//
//   - Random sampling: Random draws a uniform ±1 sequence from an
//     explicit *rand.Rand handle. There is no package-level RNG and no
//     time-based seeding; the same seed yields the same sequence on
//     every platform. DeriveRand creates independent substreams for
//     parallel workers.
//
//   - Exhaustive enumeration: Enumerator lazily walks all 2ⁿ spin
//     assignments in ascending mask order without materializing them.
//     Mask bit i clear means +1 at index i, set means −1. The walk is
//     restartable (Reset) and seekable (Seek), which lets callers
//     shard the 2ⁿ space into contiguous ranges.
//
// All functions are deterministic and side-effect free. Invalid input
// is reported through the sentinel errors in errors.go; nothing in
// this package panics on user input.
package sequence
