package result

import (
	"errors"
	"fmt"
	"iter"

	"github.com/ib-77/sumtype/pkg/sum"
)

// ErrEmpty is the failure of a zero Result that was never constructed.
var ErrEmpty = errors.New("empty result")

type Result[T any] struct {
	value T
	err   error
	ok    bool
}

func Ok[T any](v T) Result[T] {
	sum.MustNotBeNil(v, "Ok")
	return Result[T]{value: v, ok: true}
}

func Error[T any](err error) Result[T] {
	if err == nil {
		panic(fmt.Errorf("%w: Error of %s", sum.ErrNilValue, sum.TypeName[T]()))
	}
	return Result[T]{err: err}
}

// Of converts the usual (value, error) pair. A nil value with a nil error
// is an Error carrying sum.ErrNilValue.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Error[T](err)
	}
	if sum.IsNil(v) {
		return Error[T](sum.ErrNilValue)
	}
	return Ok(v)
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

func (r Result[T]) IsError() bool {
	return !r.ok
}

func (r Result[T]) IsEmpty() bool {
	return !r.ok && r.err == nil
}

func (r Result[T]) Err() error {
	if r.IsEmpty() {
		return ErrEmpty
	}
	return r.err
}

func (r Result[T]) Get() (T, error) {
	return r.value, r.Err()
}

func (r Result[T]) Filter(pred func(T) bool, onError func(T) error) Result[T] {
	if r.ok && !pred(r.value) {
		return Error[T](onError(r.value))
	}
	return r
}

func (r Result[T]) MapError(f func(error) error) Result[T] {
	if r.ok {
		return r
	}
	return Error[T](f(r.Err()))
}

// Catch replaces an Error with the handler's result. Ok passes through.
func (r Result[T]) Catch(handler func(error) Result[T]) Result[T] {
	if r.ok {
		return r
	}
	return handler(r.Err())
}

func (r Result[T]) Reduce(alt T) T {
	if r.ok {
		return r.value
	}
	return alt
}

func (r Result[T]) ReduceFunc(alt func(error) T) T {
	if r.ok {
		return r.value
	}
	return alt(r.Err())
}

func (r Result[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

func (r Result[T]) Slice() []T {
	if r.ok {
		return []T{r.value}
	}
	return []T{}
}

func (r Result[T]) Equal(other Result[T]) bool {
	if r.ok != other.ok {
		return false
	}
	if r.ok {
		return sum.Equal(r.value, other.value)
	}
	return sum.Equal(r.Err(), other.Err())
}

// Hash hashes the Ok payload or the error with sum.Hash. Payloads with an
// Equal method, non-comparable ones and those holding a NaN get a per-type
// hash only.
func (r Result[T]) Hash() uint64 {
	if r.ok {
		return sum.Hash(r.value)
	}
	return sum.Hash(r.Err())
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok<%s>(%v)", sum.TypeName[T](), r.value)
	}
	return fmt.Sprintf("Error<%s>(%v)", sum.TypeName[T](), r.Err())
}

func Map[T, R any](r Result[T], f func(T) R) Result[R] {
	if r.ok {
		return Ok(f(r.value))
	}
	return Error[R](r.Err())
}

func SelectMany[T, R any](r Result[T], f func(T) Result[R]) Result[R] {
	if r.ok {
		return f(r.value)
	}
	return Error[R](r.Err())
}

// Bind is SelectMany.
func Bind[T, R any](r Result[T], f func(T) Result[R]) Result[R] {
	return SelectMany(r, f)
}

// Combine sequences r before next: the value of r is dropped.
func Combine[T, R any](r Result[T], next Result[R]) Result[R] {
	if r.ok {
		return next
	}
	return Error[R](r.Err())
}

func Fold[T, R any](r Result[T], onOk func(T) R, onError func(error) R) R {
	if r.ok {
		return onOk(r.value)
	}
	return onError(r.Err())
}

func OfType[R, T any](r Result[T], onError func(T) error) Result[R] {
	if !r.ok {
		return Error[R](r.Err())
	}
	if v, ok := any(r.value).(R); ok {
		return Ok(v)
	}
	return Error[R](onError(r.value))
}
