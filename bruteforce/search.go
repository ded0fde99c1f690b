package bruteforce

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/labs/sequence"
)

// ctxCheckInterval is how many masks a scan processes between context
// polls. Polling per mask would dominate the N² evaluation for small N.
const ctxCheckInterval = 4096

// Search exhaustively enumerates all 2ⁿ spin assignments of length n
// and returns the first global minimizer in ascending mask order
// together with the true minimum energy.
//
// Contracts:
//   - 0 ≤ n ≤ MaxN; the n=0 search returns the empty sequence with E=0.
//   - The evaluator (default energy.Energy) is consulted once per mask.
//   - No early termination: every mask is visited unless ctx is
//     canceled or the evaluator errors, in which case a zero Result and
//     the causing error are returned.
//
// Errors: sequence.ErrNegativeLength, ErrIntractableN, ErrBadWorkers,
// ErrNilEvaluator, ctx.Err(), or any evaluator error (forwarded as-is).
//
// Complexity: Θ(2ⁿ·n²) time with the default evaluator, O(n·workers)
// memory.
func Search(ctx context.Context, n int, opts ...Option) (Result, error) {
	// --- 1. Validate input and options ---
	if n < 0 {
		return Result{}, sequence.ErrNegativeLength
	}
	if n > MaxN {
		return Result{}, ErrIntractableN
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{}, err
	}

	var size = uint64(1) << uint(n)

	// Never spin up more workers than masks; empty shards would only
	// complicate the merge.
	var workers = o.workers
	if uint64(workers) > size {
		workers = int(size)
	}

	if workers == 1 {
		return searchRange(ctx, n, 0, size, o.eval)
	}

	// --- 2. Shard [0, size) into contiguous mask ranges ---
	var (
		g, gctx = errgroup.WithContext(ctx)
		partial = make([]Result, workers)
		found   = make([]bool, workers)
		chunk   = size / uint64(workers)
		w       int
	)
	for w = 0; w < workers; w++ {
		var (
			idx = w
			lo  = uint64(idx) * chunk
			hi  = lo + chunk
		)
		if idx == workers-1 {
			hi = size // last shard absorbs the remainder
		}
		g.Go(func() error {
			res, err := searchRange(gctx, n, lo, hi, o.eval)
			if err != nil {
				return err
			}
			partial[idx] = res
			found[idx] = true
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return Result{}, err
	}

	// --- 3. Merge shard winners by (energy, mask) ---
	// Lexicographic order reproduces the serial first-minimizer
	// tie-break exactly, so parallel == serial for every worker count.
	var (
		best    Result
		haveAny bool
	)
	for w = 0; w < workers; w++ {
		if !found[w] {
			continue
		}
		if !haveAny ||
			partial[w].Energy < best.Energy ||
			(partial[w].Energy == best.Energy && partial[w].Mask < best.Mask) {
			best = partial[w]
			haveAny = true
		}
	}
	return best, nil
}

// searchRange scans masks [lo, hi) with a single enumerator and
// returns the range's first minimizer. Callers guarantee lo < hi.
func searchRange(ctx context.Context, n int, lo, hi uint64, eval Evaluator) (Result, error) {
	e, err := sequence.NewEnumerator(n)
	if err != nil {
		return Result{}, err
	}
	if err = e.Seek(lo); err != nil {
		return Result{}, err
	}

	var (
		bestE    int64
		bestMask uint64
		have     bool
		ticks    int
	)
	for e.Next() {
		if e.Mask() >= hi {
			break
		}

		ticks++
		if ticks == ctxCheckInterval {
			ticks = 0
			if err = ctx.Err(); err != nil {
				return Result{}, err
			}
		}

		v, err := eval(e.Current())
		if err != nil {
			return Result{}, err
		}
		// Strict < keeps the first minimizer: the lowest mask wins ties.
		if !have || v < bestE {
			bestE = v
			bestMask = e.Mask()
			have = true
		}
	}

	best, err := sequence.FromMask(n, bestMask)
	if err != nil {
		return Result{}, err
	}
	return Result{Best: best, Energy: bestE, Mask: bestMask}, nil
}
