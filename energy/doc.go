// Package energy implements the Low Autocorrelation Binary Sequence
// objective and its derived metrics.
//
// For a ±1 sequence s of length N, the aperiodic autocorrelation at
// lag k is
//
//	cₖ = Σ_{i=0}^{N-1-k} s[i]·s[i+k]
//
// and the LABS energy is the sum of squared sidelobes
//
//	E(s) = Σ_{k=1}^{N-1} cₖ²
//
// E is always a non-negative integer; this package fixes int64 as its
// canonical representation, so equality checks are exact and no
// floating-point tolerance is involved. The accumulator cannot
// overflow for any length a caller could realistically enumerate:
// |cₖ| ≤ N, so E ≤ N³, which stays far inside int64 for N in the
// millions.
//
// Invariants every valid sequence satisfies (and the tests pin):
//
//	E(s) ≥ 0
//	E(s) = E(−s)            (global sign flip)
//	E(s) = E(reverse(s))    (reversal)
//	E(s) = E(reverse(−s))   (their composition)
//
// Validation policy: every entry point validates that its input is
// ±1-valued and returns sequence.ErrNotPlusMinusOne otherwise. The
// policy is strict and uniform across the module; no function silently
// scores malformed spins.
//
// MeritFactor reports the conventional quality measure
// F = N² / (2E), the figure of merit used throughout the LABS
// literature (e.g. F = 169/12 ≈ 14.08 for the length-13 Barker code).
package energy
