package factory

import (
	"github.com/ib-77/sumtype/pkg/sum"
	"github.com/ib-77/sumtype/pkg/sum/result"
)

func TryRun(action func() error) result.Result[sum.Unit] {
	return TryRunWith(action, nil)
}

// TryRunWith runs action and returns Ok(sum.None) or an Error holding the
// returned error or recovered panic, passed through errorMap when non-nil.
// A nil from errorMap keeps the error as is.
func TryRunWith(action func() error, errorMap func(error) error) result.Result[sum.Unit] {
	return TryEvaluateWith(func() (sum.Unit, error) {
		return sum.None, action()
	}, errorMap)
}

func TryEvaluate[T any](fn func() (T, error)) result.Result[T] {
	return TryEvaluateWith(fn, nil)
}

func TryEvaluateWith[T any](fn func() (T, error), errorMap func(error) error) result.Result[T] {
	v, err := capture(fn)
	if err != nil && errorMap != nil {
		if mapped := errorMap(err); mapped != nil {
			err = mapped
		}
	}
	return result.Of(v, err)
}

// LiftToResult wraps fn into a function that never panics or returns an
// error; failures come back as Error.
func LiftToResult[T, R any](fn func(T) (R, error)) func(T) result.Result[R] {
	return LiftToResultWith(fn, nil)
}

func LiftToResultWith[T, R any](fn func(T) (R, error), errorMap func(error) error) func(T) result.Result[R] {
	return func(in T) result.Result[R] {
		return TryEvaluateWith(func() (R, error) { return fn(in) }, errorMap)
	}
}

func capture[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if p := recover(); p != nil {
			var zero T
			v, err = zero, sum.FromPanic(p)
		}
	}()

	return fn()
}
