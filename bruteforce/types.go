// Package bruteforce: result type and sentinel error set. All exported
// functions return ONLY these sentinels (or the caller's context error)
// on failure; tests match them via errors.Is.
package bruteforce

import (
	"errors"

	"github.com/katalvlaran/labs/sequence"
)

// MaxN is the largest length Search accepts. 2³⁰ evaluations of an
// O(N²) objective is already minutes of work; anything above is a
// usage error, not a runtime fault.
const MaxN = 30

// Evaluator scores a ±1 sequence. It must be pure and deterministic,
// must accept every sequence the enumerator produces, and must return
// the exact integer energy. energy.Energy is the canonical instance;
// heuristic solvers under validation plug in here.
type Evaluator func(sequence.Sequence) (int64, error)

// Result is the outcome of an exhaustive search.
type Result struct {
	// Best is one global-minimum configuration: the first minimizer in
	// ascending mask order. The slice is freshly allocated and owned by
	// the caller.
	Best sequence.Sequence

	// Energy is the true global minimum of the evaluator over all 2ᴺ
	// assignments.
	Energy int64

	// Mask is Best's position in the enumeration order, useful for
	// reproducing or resuming scans.
	Mask uint64
}

var (
	// ErrIntractableN is returned when n exceeds MaxN and the 2ⁿ
	// enumeration is not feasible.
	ErrIntractableN = errors.New("bruteforce: n exceeds tractable enumeration bound")

	// ErrBadWorkers is returned when WithWorkers was given a value < 1.
	ErrBadWorkers = errors.New("bruteforce: worker count must be >= 1")

	// ErrNilEvaluator is returned when WithEvaluator was given nil.
	ErrNilEvaluator = errors.New("bruteforce: evaluator must be non-nil")
)
