package sum

import "iter"

// Absent is implemented by values that may be the absent case.
type Absent interface {
	// IsNothing returns true for the absent case
	IsNothing() bool
}

// Hasher lets a payload supply its own hash. It must agree with the payload's
// equality: equal values return equal hashes.
type Hasher interface {
	Hash() uint64
}

// Enumerable is a finite, restartable sequence of zero or one element.
type Enumerable[T any] interface {
	// All yields the positive payload, if any
	All() iter.Seq[T]
	// Slice returns the same elements as All
	Slice() []T
}

type equaler[T any] interface {
	Equal(T) bool
}
