package either

import (
	"fmt"
	"iter"

	"github.com/ib-77/sumtype/pkg/sum"
)

// Either holds a Left L or a Right R. The zero Either is Left with the zero L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](v L) Either[L, R] {
	sum.MustNotBeNil(v, "Left")
	return Either[L, R]{left: v}
}

func Right[L, R any](v R) Either[L, R] {
	sum.MustNotBeNil(v, "Right")
	return Either[L, R]{right: v, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

func (e Either[L, R]) LeftValue() (L, bool) {
	return e.left, !e.isRight
}

func (e Either[L, R]) RightValue() (R, bool) {
	return e.right, e.isRight
}

// Swap exchanges the sides: Left(x) becomes Right(x) and vice versa.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Either[R, L]{left: e.right}
	}
	return Either[R, L]{right: e.left, isRight: true}
}

// Filter turns a Right failing pred into Left(onError(value)).
func (e Either[L, R]) Filter(pred func(R) bool, onError func(R) L) Either[L, R] {
	if e.isRight && !pred(e.right) {
		return Left[L, R](onError(e.right))
	}
	return e
}

func (e Either[L, R]) ReduceLeft(alt L) L {
	if e.isRight {
		return alt
	}
	return e.left
}

func (e Either[L, R]) ReduceLeftFunc(alt func(R) L) L {
	if e.isRight {
		return alt(e.right)
	}
	return e.left
}

func (e Either[L, R]) ReduceRight(alt R) R {
	if e.isRight {
		return e.right
	}
	return alt
}

func (e Either[L, R]) ReduceRightFunc(alt func(L) R) R {
	if e.isRight {
		return e.right
	}
	return alt(e.left)
}

// All yields the Right value only.
func (e Either[L, R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		if e.isRight {
			yield(e.right)
		}
	}
}

func (e Either[L, R]) Slice() []R {
	if e.isRight {
		return []R{e.right}
	}
	return []R{}
}

func (e Either[L, R]) Equal(other Either[L, R]) bool {
	if e.isRight != other.isRight {
		return false
	}
	if e.isRight {
		return sum.Equal(e.right, other.right)
	}
	return sum.Equal(e.left, other.left)
}

// Hash hashes whichever side is set with sum.Hash; values with an Equal
// method, non-comparable values and NaNs only get a per-type hash.
func (e Either[L, R]) Hash() uint64 {
	if e.isRight {
		return sum.Hash(e.right)
	}
	return sum.Hash(e.left)
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right<%s, %s>(%v)", sum.TypeName[L](), sum.TypeName[R](), e.right)
	}
	return fmt.Sprintf("Left<%s, %s>(%v)", sum.TypeName[L](), sum.TypeName[R](), e.left)
}

// Map maps the Right value.
func Map[L, R, R2 any](e Either[L, R], f func(R) R2) Either[L, R2] {
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Either[L, R2]{left: e.left}
}

func MapLeft[L, R, L2 any](e Either[L, R], f func(L) L2) Either[L2, R] {
	if e.isRight {
		return Either[L2, R]{right: e.right, isRight: true}
	}
	return Left[L2, R](f(e.left))
}

// CatchLeft replaces a Left with f's result. Right passes through.
func CatchLeft[L, R, L2 any](e Either[L, R], f func(L) Either[L2, R]) Either[L2, R] {
	if e.isRight {
		return Either[L2, R]{right: e.right, isRight: true}
	}
	return f(e.left)
}

func Bind[L, R, R2 any](e Either[L, R], f func(R) Either[L, R2]) Either[L, R2] {
	if e.isRight {
		return f(e.right)
	}
	return Either[L, R2]{left: e.left}
}

// SelectMany is Bind.
func SelectMany[L, R, R2 any](e Either[L, R], f func(R) Either[L, R2]) Either[L, R2] {
	return Bind(e, f)
}

// Combine sequences e before next: the Right value of e is dropped.
func Combine[L, R, R2 any](e Either[L, R], next Either[L, R2]) Either[L, R2] {
	if e.isRight {
		return next
	}
	return Either[L, R2]{left: e.left}
}

func Fold[L, R, A any](e Either[L, R], onLeft func(L) A, onRight func(R) A) A {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// OfType narrows the Right value to R2; a mismatch becomes Left(onError(value)).
func OfType[R2, L, R any](e Either[L, R], onError func(R) L) Either[L, R2] {
	if !e.isRight {
		return Either[L, R2]{left: e.left}
	}
	if v, ok := any(e.right).(R2); ok {
		return Right[L](v)
	}
	return Left[L, R2](onError(e.right))
}
