// Package bruteforce provides the exhaustive ground-truth oracle for
// the LABS problem.
//
// Search enumerates every one of the 2ᴺ spin assignments of length N,
// scores each with the configured evaluator, and returns a
// configuration attaining the true global minimum energy. There is no
// early termination and no approximation: completeness of the
// enumeration is the point, and the result is a valid baseline for
// judging heuristic solvers.
//
// Determinism:
//
//	Ties are broken toward the first minimizer in ascending mask order
//	(sequence.Enumerator encoding: bit i set ⇒ −1 at index i). The
//	parallel path shards [0, 2ᴺ) into contiguous mask ranges and merges
//	shard winners by (energy, mask), so serial and parallel runs return
//	the identical sequence, not merely an equal-energy one.
//
// Tractability:
//
//	Time is Θ(2ᴺ·N²) with the default evaluator. N ≤ MaxN (30) is
//	enforced with ErrIntractableN; use this package as a correctness
//	oracle for small N, never as a solver.
//
// Cancellation:
//
//	Search accepts a context and polls it between evaluation batches;
//	a canceled run returns ctx.Err() with a zero Result.
package bruteforce
