package sequence

// MaxEnumN is the largest sequence length Enumerator accepts. Beyond
// it the 2ⁿ mask space no longer fits comfortably in uint64 arithmetic.
// Walking anywhere near 2⁶² states is of course impractical; callers
// that enumerate exhaustively should impose their own, much smaller
// tractability bound.
const MaxEnumN = 62

// Enumerator lazily walks every ±1 assignment of length n exactly once,
// in ascending mask order, without materializing the 2ⁿ sequences.
//
// Mask encoding: bit i clear ⇒ +1 at index i, bit i set ⇒ −1. Mask 0
// is therefore the all-plus sequence and mask 2ⁿ−1 the all-minus one.
//
// Usage follows the scanner idiom:
//
//	e, err := NewEnumerator(n)
//	for e.Next() {
//	    s := e.Current() // valid until the next call to Next
//	    ...
//	}
//
// Current returns an internal buffer that is overwritten by Next;
// Clone it if it must outlive the iteration step. An Enumerator is not
// safe for concurrent use; shard with Seek and one Enumerator per
// goroutine instead.
type Enumerator struct {
	n    int
	next uint64 // mask produced by the upcoming Next call
	mask uint64 // mask of the current sequence, valid after Next
	buf  Sequence
}

// NewEnumerator returns an Enumerator over all 2ⁿ sequences of length n.
// n=0 yields a single empty sequence. Errors: ErrNegativeLength,
// ErrLengthTooLarge (n > MaxEnumN).
//
// Complexity: O(n) space for the shared buffer.
func NewEnumerator(n int) (*Enumerator, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if n > MaxEnumN {
		return nil, ErrLengthTooLarge
	}
	return &Enumerator{n: n, buf: make(Sequence, n)}, nil
}

// Size returns the total number of sequences the full walk visits, 2ⁿ.
func (e *Enumerator) Size() uint64 { return uint64(1) << uint(e.n) }

// Next advances to the next sequence. It returns false once all 2ⁿ
// assignments have been produced.
//
// Complexity: O(n) per call (buffer decode).
func (e *Enumerator) Next() bool {
	if e.next >= e.Size() {
		return false
	}
	e.mask = e.next
	e.next++
	decodeMask(e.buf, e.mask)
	return true
}

// Current returns the sequence produced by the last successful Next.
// The returned slice aliases an internal buffer reused by Next.
func (e *Enumerator) Current() Sequence { return e.buf }

// Mask returns the mask of the sequence produced by the last
// successful Next.
func (e *Enumerator) Mask() uint64 { return e.mask }

// Reset restarts the walk from mask 0.
func (e *Enumerator) Reset() { e.next = 0 }

// Seek positions the walk so that the upcoming Next produces mask.
// Seek(Size()) is allowed and exhausts the enumerator; anything larger
// returns ErrMaskOutOfRange. Together with Mask this lets callers
// split [0, 2ⁿ) into contiguous shards, each walked by its own
// Enumerator, with every mask visited exactly once.
//
// Complexity: O(1).
func (e *Enumerator) Seek(mask uint64) error {
	if mask > e.Size() {
		return ErrMaskOutOfRange
	}
	e.next = mask
	return nil
}

// FromMask returns a fresh sequence of length n for the given mask
// under the Enumerator encoding. Errors mirror NewEnumerator, plus
// ErrMaskOutOfRange when mask ≥ 2ⁿ.
//
// Complexity: O(n) time, O(n) space.
func FromMask(n int, mask uint64) (Sequence, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if n > MaxEnumN {
		return nil, ErrLengthTooLarge
	}
	if mask >= uint64(1)<<uint(n) {
		return nil, ErrMaskOutOfRange
	}
	var out = make(Sequence, n)
	decodeMask(out, mask)
	return out, nil
}

// decodeMask writes the ±1 decoding of mask into dst (bit i set ⇒ −1).
func decodeMask(dst Sequence, mask uint64) {
	var i int
	for i = 0; i < len(dst); i++ {
		if mask&(uint64(1)<<uint(i)) != 0 {
			dst[i] = Minus
		} else {
			dst[i] = Plus
		}
	}
}
