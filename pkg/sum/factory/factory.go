package factory

import (
	"github.com/ib-77/sumtype/pkg/sum"
	"github.com/ib-77/sumtype/pkg/sum/either"
	"github.com/ib-77/sumtype/pkg/sum/maybe"
	"github.com/ib-77/sumtype/pkg/sum/result"
)

func Maybe[T any](value T) maybe.Maybe[T] {
	return maybe.Just(value)
}

func MaybeNothing[T any](value sum.Unit) maybe.Maybe[T] {
	return maybe.FromUnit[T](value)
}

func Result[T any](value T) result.Result[T] {
	return result.Ok(value)
}

func ResultError[T any](err error) result.Result[T] {
	return result.Error[T](err)
}

func EitherLeft[L, R any](value L) either.Either[L, R] {
	return either.Left[L, R](value)
}

func EitherRight[L, R any](value R) either.Either[L, R] {
	return either.Right[L](value)
}

// EitherFromResult maps Ok to Right and Error to Left.
func EitherFromResult[T any](r result.Result[T]) either.Either[error, T] {
	return result.Fold(r,
		func(v T) either.Either[error, T] { return either.Right[error](v) },
		func(err error) either.Either[error, T] { return either.Left[error, T](err) })
}

func ResultFromEither[T any](e either.Either[error, T]) result.Result[T] {
	return either.Fold(e, result.Error[T], result.Ok[T])
}

// MaybeFromResult drops the error of an Error.
func MaybeFromResult[T any](r result.Result[T]) maybe.Maybe[T] {
	v, err := r.Get()
	return maybe.Of(v, err == nil)
}

func ResultFromMaybe[T any](m maybe.Maybe[T], onNothing func() error) result.Result[T] {
	return maybe.FoldFunc(m,
		func() result.Result[T] { return result.Error[T](onNothing()) },
		result.Ok[T])
}
