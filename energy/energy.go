package energy

import "github.com/katalvlaran/labs/sequence"

// Energy computes the LABS energy of s:
//
//	E(s) = Σ_{k=1}^{N-1} cₖ²,   cₖ = Σ_{i=0}^{N-1-k} s[i]·s[i+k]
//
// For N ∈ {0, 1} the sum is empty and E=0. The result is exact: an
// int64 accumulator bounded by N³.
//
// Errors: sequence.ErrNotPlusMinusOne when s contains a value outside
// {+1, −1}.
//
// Complexity: O(N²) time, O(1) extra space.
func Energy(s sequence.Sequence) (int64, error) {
	if err := sequence.Validate(s); err != nil {
		return 0, err
	}

	var (
		n = len(s)
		e int64
		k int
	)
	for k = 1; k < n; k++ {
		var ck = lagSum(s, k)
		e += ck * ck
	}
	return e, nil
}

// Autocorrelation computes the single sidelobe cₖ for 1 ≤ k ≤ N−1.
//
// Errors: ErrLagOutOfRange for k outside [1, N−1];
// sequence.ErrNotPlusMinusOne for malformed spins.
//
// Complexity: O(N).
func Autocorrelation(s sequence.Sequence, k int) (int64, error) {
	if err := sequence.Validate(s); err != nil {
		return 0, err
	}
	if k < 1 || k >= len(s) {
		return 0, ErrLagOutOfRange
	}
	return lagSum(s, k), nil
}

// Spectrum returns every sidelobe c₁..c_{N−1} in lag order. For N ≤ 1
// the spectrum is empty (nil).
//
// Errors: sequence.ErrNotPlusMinusOne for malformed spins.
//
// Complexity: O(N²) time, O(N) space.
func Spectrum(s sequence.Sequence) ([]int64, error) {
	if err := sequence.Validate(s); err != nil {
		return nil, err
	}

	var n = len(s)
	if n <= 1 {
		return nil, nil
	}

	var (
		out = make([]int64, n-1)
		k   int
	)
	for k = 1; k < n; k++ {
		out[k-1] = lagSum(s, k)
	}
	return out, nil
}

// MeritFactor computes F = N² / (2·E(s)), the standard LABS figure of
// merit. Higher is better; the global optimum for each N maximizes F.
//
// Errors: ErrTooShort for N<2, ErrZeroEnergy when E(s)=0, and the
// validation errors of Energy.
//
// Complexity: O(N²).
func MeritFactor(s sequence.Sequence) (float64, error) {
	var n = len(s)
	if n < 2 {
		return 0, ErrTooShort
	}

	e, err := Energy(s)
	if err != nil {
		return 0, err
	}
	if e == 0 {
		return 0, ErrZeroEnergy
	}
	return float64(n) * float64(n) / (2 * float64(e)), nil
}

// lagSum is the unvalidated inner product Σ s[i]·s[i+k]; callers have
// already checked ±1-ness and 1 ≤ k < len(s).
func lagSum(s sequence.Sequence, k int) int64 {
	var (
		sum int64
		i   int
	)
	for i = 0; i+k < len(s); i++ {
		sum += int64(s[i]) * int64(s[i+k])
	}
	return sum
}
