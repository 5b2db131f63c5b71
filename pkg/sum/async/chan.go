package async

import (
	"context"
	"errors"
)

var ErrNoValue = errors.New("channel closed without a value")

// FromChan completes with the first value received from ch. The task faults
// with ErrNoValue when ch is closed first and is cancelled when ctx is done
// first.
func FromChan[T any](ctx context.Context, ch <-chan T) *Task[T] {
	t := newTask[T]()

	go func() {
		select {
		case v, ok := <-ch:
			if !ok {
				t.reject(ErrNoValue)
				return
			}
			t.resolve(v)
		case <-ctx.Done():
			t.cancel(ctx.Err())
		}
	}()

	return t
}

// ToChan delivers the value of a completed task on the returned channel and
// closes it. Faulted and cancelled tasks close it without a value.
func ToChan[T any](ctx context.Context, t *Task[T]) <-chan T {
	out := make(chan T, 1)

	go func() {
		defer close(out)

		v, err := t.Await(ctx)
		if err != nil {
			return
		}
		out <- v
	}()

	return out
}
