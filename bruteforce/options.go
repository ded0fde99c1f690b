// Package bruteforce: functional configuration for Search.
//
// Design goals:
//   - Deterministic behavior: options never introduce randomness.
//   - No dead switches: each option changes behavior and is covered by tests.
//   - Sentinel validation: nonsensical values surface as errors from
//     Search, never as panics.
package bruteforce

import "github.com/katalvlaran/labs/energy"

// DefaultWorkers is the worker count used when WithWorkers is absent:
// a plain serial scan.
const DefaultWorkers = 1

// Option configures a single Search call.
type Option func(*options)

type options struct {
	workers int
	eval    Evaluator
	evalSet bool // distinguishes WithEvaluator(nil) from "not provided"
}

// WithWorkers shards the mask space into w contiguous ranges scanned
// concurrently. w must be ≥ 1; w=1 is the serial scan. The result is
// identical to the serial result for every w (every mask is visited
// exactly once; shard winners merge by (energy, mask)).
func WithWorkers(w int) Option {
	return func(o *options) { o.workers = w }
}

// WithEvaluator replaces the default energy.Energy objective. The
// evaluator must conform to the Evaluator contract; Search fails with
// ErrNilEvaluator when f is nil.
func WithEvaluator(f Evaluator) Option {
	return func(o *options) {
		o.eval = f
		o.evalSet = true
	}
}

// gatherOptions folds opts over documented defaults and validates the
// combination.
func gatherOptions(opts []Option) (options, error) {
	var o = options{workers: DefaultWorkers}
	for _, apply := range opts {
		apply(&o)
	}
	if o.workers < 1 {
		return options{}, ErrBadWorkers
	}
	if o.evalSet && o.eval == nil {
		return options{}, ErrNilEvaluator
	}
	if !o.evalSet {
		o.eval = energy.Energy
	}
	return o, nil
}
