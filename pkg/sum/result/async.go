package result

import (
	"github.com/hashicorp/go-multierror"
	"github.com/ib-77/sumtype/pkg/sum"
	"github.com/ib-77/sumtype/pkg/sum/async"
)

// ToAsync returns a task that is already completed with the Ok value or
// faulted with the error.
func (r Result[T]) ToAsync() *async.Task[T] {
	if r.ok {
		return async.FromValue(r.value)
	}
	return async.FromError[T](r.Err())
}

// TraverseAsync runs f on an Ok value and wraps the outcome of its task back
// into a Result. An Error is returned at once and f is not called.
func TraverseAsync[T, R any](r Result[T], f func(T) *async.Task[R]) *async.Task[Result[R]] {
	if !r.ok {
		return async.FromValue(Error[R](r.Err()))
	}

	t := f(r.value)
	sum.MustNotBeNil(t, "TraverseAsync task")
	return FromTask(t)
}

// FromTask observes t: Completed becomes Ok, Faulted becomes Error with the
// task's failure and Cancelled becomes Error with an aggregate holding the
// task's *async.CancelledError.
func FromTask[T any](t *async.Task[T]) *async.Task[Result[T]] {
	return async.ContinueWith(t, func(done *async.Task[T]) Result[T] {
		switch done.Status() {
		case async.Completed:
			return completed(done)
		case async.Cancelled:
			var agg *multierror.Error
			agg = multierror.Append(agg, done.Err())
			return Error[T](agg)
		default:
			return Error[T](done.Err())
		}
	})
}

// FromTaskWith is FromTask with every non-completed outcome mapped by
// onFailure.
func FromTaskWith[T any](t *async.Task[T], onFailure func(*async.Task[T]) Result[T]) *async.Task[Result[T]] {
	return async.ContinueWith(t, func(done *async.Task[T]) Result[T] {
		if done.Status() == async.Completed {
			return completed(done)
		}
		return onFailure(done)
	})
}

func completed[T any](done *async.Task[T]) Result[T] {
	return Of(done.Value(), nil)
}
