// Package energy: sentinel error set. Input-format violations reuse
// the sequence package sentinel so callers match one error regardless
// of which layer rejected the spins.
package energy

import "errors"

var (
	// ErrLagOutOfRange is returned by Autocorrelation when k is not in
	// [1, N-1].
	ErrLagOutOfRange = errors.New("energy: lag out of range")

	// ErrZeroEnergy is returned by MeritFactor when E(s)=0 and the
	// ratio N²/(2E) is undefined.
	ErrZeroEnergy = errors.New("energy: merit factor undefined for zero energy")

	// ErrTooShort is returned by MeritFactor for N<2, where no sidelobe
	// exists.
	ErrTooShort = errors.New("energy: sequence too short")
)
