// Package interactions derives the coupling index sets of the LABS
// problem from the sequence length alone.
//
// Two families are produced, both purely combinatorial (they never
// look at spin values):
//
//   - G2: 2-body terms, one ordered pair (i, i+1) per consecutive
//     neighbor. |G2| = N−1 for N ≥ 2, empty below.
//
//   - G4: 4-body terms, one ordered quadruple (i, i+1, i+2, i+3) per
//     consecutive block of four. |G4| = N−3 for N ≥ 4, empty below.
//
// Every tuple is strictly increasing, every index lies in [0, N), and
// the output order is ascending by starting index, so results are
// deterministic and duplicate-free by construction.
//
// These sets describe the coupling structure of a polynomial (QUBO
// style) restatement of the objective; they are intentionally kept
// independent of the energy package, which computes E(s) directly from
// autocorrelations.
package interactions
