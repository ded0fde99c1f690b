// Package sequence: sentinel error set.
// All exported functions return ONLY these sentinels on user-triggered
// error conditions; tests match them via errors.Is. Messages carry the
// "sequence: " prefix for easy grepping across logs.
package sequence

import "errors"

var (
	// ErrNotPlusMinusOne is returned when a sequence contains a value
	// other than +1 or −1.
	ErrNotPlusMinusOne = errors.New("sequence: value not in {+1, -1}")

	// ErrNegativeLength is returned when a requested length is negative.
	ErrNegativeLength = errors.New("sequence: negative length")

	// ErrLengthTooLarge is returned when a requested enumeration length
	// exceeds MaxEnumN and the 2ⁿ mask space no longer fits in uint64.
	ErrLengthTooLarge = errors.New("sequence: length exceeds enumeration bound")

	// ErrMaskOutOfRange is returned by Enumerator.Seek when the target
	// mask is not inside [0, 2ⁿ).
	ErrMaskOutOfRange = errors.New("sequence: mask out of range")
)
