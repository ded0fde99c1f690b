package sequence

// Plus and Minus are the only two values a Sequence element may take.
const (
	Plus  int8 = 1
	Minus int8 = -1
)

// Sequence is an ordered, fixed-length vector of ±1 spins.
//
// Sequences are value-like: every transform in this package returns a
// fresh slice and never writes through its argument. A nil or empty
// Sequence is valid and denotes N=0.
type Sequence []int8

// Validate checks that every element of s is exactly +1 or −1.
// Returns ErrNotPlusMinusOne on the first violation, nil otherwise.
//
// Complexity: O(n).
func Validate(s Sequence) error {
	var i int
	for i = 0; i < len(s); i++ {
		if s[i] != Plus && s[i] != Minus {
			return ErrNotPlusMinusOne
		}
	}
	return nil
}

// Flip returns a new sequence with every spin negated.
// Flip is an involution: Flip(Flip(s)) is element-equal to s.
//
// Complexity: O(n) time, O(n) space.
func Flip(s Sequence) Sequence {
	var (
		out = make(Sequence, len(s))
		i   int
	)
	for i = 0; i < len(s); i++ {
		out[i] = -s[i]
	}
	return out
}

// Reverse returns a new sequence with the element order reversed.
//
// Complexity: O(n) time, O(n) space.
func Reverse(s Sequence) Sequence {
	var (
		n   = len(s)
		out = make(Sequence, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i] = s[n-1-i]
	}
	return out
}

// Clone returns an independent copy of s. Clone(nil) returns nil.
//
// Complexity: O(n) time, O(n) space.
func Clone(s Sequence) Sequence {
	if s == nil {
		return nil
	}
	var out = make(Sequence, len(s))
	copy(out, s)
	return out
}

// Equal reports whether a and b have the same length and identical
// elements. Two empty sequences are equal regardless of nil-ness.
//
// Complexity: O(n).
func Equal(a, b Sequence) bool {
	if len(a) != len(b) {
		return false
	}
	var i int
	for i = 0; i < len(a); i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders s in the compact "+-" notation used by the catalog
// and labsctl, e.g. [+1 −1 +1] → "+-+".
func (s Sequence) String() string {
	var buf = make([]byte, len(s))
	var i int
	for i = 0; i < len(s); i++ {
		if s[i] == Minus {
			buf[i] = '-'
		} else {
			buf[i] = '+'
		}
	}
	return string(buf)
}

// Parse converts the compact "+-" notation back into a Sequence.
// Any rune other than '+' or '-' yields ErrNotPlusMinusOne.
//
// Complexity: O(n).
func Parse(text string) (Sequence, error) {
	var (
		out = make(Sequence, len(text))
		i   int
	)
	for i = 0; i < len(text); i++ {
		switch text[i] {
		case '+':
			out[i] = Plus
		case '-':
			out[i] = Minus
		default:
			return nil, ErrNotPlusMinusOne
		}
	}
	return out, nil
}
