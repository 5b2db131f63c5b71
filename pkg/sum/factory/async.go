package factory

import (
	"github.com/ib-77/sumtype/pkg/sum/async"
	"github.com/ib-77/sumtype/pkg/sum/result"
)

// ResultFromAsync yields Ok for a completed task, Error with an aggregate
// holding an *async.CancelledError for a cancelled one and Error with the
// task's failure for a faulted one.
func ResultFromAsync[T any](task *async.Task[T]) *async.Task[result.Result[T]] {
	return result.FromTask(task)
}

// ResultFromAsyncWith maps every non-completed task through onFailure.
func ResultFromAsyncWith[T any](task *async.Task[T],
	onFailure func(task *async.Task[T]) result.Result[T]) *async.Task[result.Result[T]] {
	return result.FromTaskWith(task, onFailure)
}
