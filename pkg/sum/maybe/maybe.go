package maybe

import (
	"fmt"
	"iter"

	"github.com/ib-77/sumtype/pkg/sum"
)

type Maybe[T any] struct {
	value T
	ok    bool
}

func Just[T any](v T) Maybe[T] {
	sum.MustNotBeNil(v, "Just")
	return Maybe[T]{value: v, ok: true}
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromUnit converts the shared absent marker into Nothing of T.
func FromUnit[T any](sum.Unit) Maybe[T] {
	return Nothing[T]()
}

// FromPointer returns Just(*p), or Nothing when p is nil.
func FromPointer[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

// Of builds a Maybe from a comma-ok pair such as a map lookup.
func Of[T any](v T, ok bool) Maybe[T] {
	if !ok || sum.IsNil(v) {
		return Nothing[T]()
	}
	return Just(v)
}

func (m Maybe[T]) IsJust() bool {
	return m.ok
}

func (m Maybe[T]) IsNothing() bool {
	return !m.ok
}

func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	if m.ok && !pred(m.value) {
		return Nothing[T]()
	}
	return m
}

func (m Maybe[T]) Reduce(alt T) T {
	if m.ok {
		return m.value
	}
	return alt
}

func (m Maybe[T]) ReduceFunc(alt func() T) T {
	if m.ok {
		return m.value
	}
	return alt()
}

func (m Maybe[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if m.ok {
			yield(m.value)
		}
	}
}

func (m Maybe[T]) Slice() []T {
	if m.ok {
		return []T{m.value}
	}
	return []T{}
}

// Equal is true when both are Nothing or both are Just with equal payloads.
func (m Maybe[T]) Equal(other Maybe[T]) bool {
	if m.ok != other.ok {
		return false
	}
	return !m.ok || sum.Equal(m.value, other.value)
}

// Hash is 0 for Nothing and sum.Hash of the payload otherwise. Payloads
// compared by an Equal method (time.Time, say), non-comparable payloads and
// payloads holding a NaN hash per type, so they all share one bucket.
func (m Maybe[T]) Hash() uint64 {
	if !m.ok {
		return 0
	}
	return sum.Hash(m.value)
}

func (m Maybe[T]) String() string {
	if !m.ok {
		return fmt.Sprintf("Nothing<%s>", sum.TypeName[T]())
	}
	return fmt.Sprintf("Just<%s>(%v)", sum.TypeName[T](), m.value)
}

func Map[T, R any](m Maybe[T], f func(T) R) Maybe[R] {
	if m.ok {
		return Just(f(m.value))
	}
	return Nothing[R]()
}

func Bind[T, R any](m Maybe[T], f func(T) Maybe[R]) Maybe[R] {
	if m.ok {
		return f(m.value)
	}
	return Nothing[R]()
}

// Combine sequences m before next: the payload of m is dropped.
func Combine[T, R any](m Maybe[T], next Maybe[R]) Maybe[R] {
	if m.ok {
		return next
	}
	return Nothing[R]()
}

// Fold maps Just through f and Nothing to alt.
func Fold[T, R any](m Maybe[T], alt R, f func(T) R) R {
	if m.ok {
		return f(m.value)
	}
	return alt
}

func FoldFunc[T, R any](m Maybe[T], alt func() R, f func(T) R) R {
	if m.ok {
		return f(m.value)
	}
	return alt()
}

// OfType narrows the payload to R, e.g. OfType[string](Just[any]("x")).
func OfType[R, T any](m Maybe[T]) Maybe[R] {
	if !m.ok {
		return Nothing[R]()
	}
	if v, ok := any(m.value).(R); ok {
		return Just(v)
	}
	return Nothing[R]()
}
