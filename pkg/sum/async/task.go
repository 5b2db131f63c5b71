package async

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/sumtype/pkg/sum"
)

var (
	ErrCancelled  = errors.New("task cancelled")
	// ErrNilFailure stands in for a nil error handed to Reject or FromError.
	ErrNilFailure = errors.New("task faulted with a nil error")
)

type Status int

const (
	Pending Status = iota
	Completed
	Faulted
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Completed:
		return "Completed"
	case Faulted:
		return "Faulted"
	case Cancelled:
		return "Cancelled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// CancelledError is the failure of a cancelled task. It matches ErrCancelled
// and unwraps to the cause, usually context.Canceled or
// context.DeadlineExceeded.
type CancelledError struct {
	TaskID uuid.UUID
	Cause  error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("task %s cancelled: %v", e.TaskID, e.Cause)
}

func (e *CancelledError) Unwrap() error {
	return e.Cause
}

func (e *CancelledError) Is(target error) bool {
	return target == ErrCancelled
}

type Task[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	done      chan struct{}
	once      sync.Once
	value     T
	err       error
	status    Status
}

func newTask[T any]() *Task[T] {
	return &Task[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}
}

// finish assigns the terminal state once; later calls are ignored.
func (t *Task[T]) finish(status Status, value T, err error) bool {
	finished := false
	t.once.Do(func() {
		t.value = value
		t.err = err
		t.status = status
		finished = true
		close(t.done)
	})
	return finished
}

func (t *Task[T]) resolve(value T) bool {
	return t.finish(Completed, value, nil)
}

func (t *Task[T]) reject(err error) bool {
	if err == nil {
		err = ErrNilFailure
	}
	var zero T
	return t.finish(Faulted, zero, err)
}

func (t *Task[T]) cancel(cause error) bool {
	if cause == nil {
		cause = context.Canceled
	}
	var zero T
	return t.finish(Cancelled, zero, &CancelledError{TaskID: t.id, Cause: cause})
}

func (t *Task[T]) ID() uuid.UUID {
	return t.id
}

// CreatedAt time creation (UTC)
func (t *Task[T]) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

func (t *Task[T]) Status() Status {
	select {
	case <-t.done:
		return t.status
	default:
		return Pending
	}
}

// Value returns the value of a Completed task and the zero T otherwise.
func (t *Task[T]) Value() T {
	if t.Status() != Completed {
		var zero T
		return zero
	}
	return t.value
}

// Err returns the failure of a Faulted or Cancelled task and nil otherwise.
func (t *Task[T]) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Await blocks until the task is terminal or ctx is done. In the latter case
// ctx.Err() is returned and the task keeps running.
func (t *Task[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.value, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func FromValue[T any](value T) *Task[T] {
	t := newTask[T]()
	t.resolve(value)
	return t
}

func FromError[T any](err error) *Task[T] {
	t := newTask[T]()
	t.reject(err)
	return t
}

func FromCancelled[T any](cause error) *Task[T] {
	t := newTask[T]()
	t.cancel(cause)
	return t
}

// Run starts fn in a new goroutine. A context error returned by fn cancels
// the task, any other error or a panic faults it. If ctx is already done fn
// is never called.
func Run[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Task[T] {
	t := newTask[T]()

	if ctx.Err() != nil {
		t.cancel(ctx.Err())
		return t
	}

	go func() {
		defer func() {
			if p := recover(); p != nil {
				t.reject(sum.FromPanic(p))
			}
		}()

		value, err := fn(ctx)
		switch {
		case err == nil:
			t.resolve(value)
		case sum.IsCancellationError(err):
			t.cancel(err)
		default:
			t.reject(err)
		}
	}()

	return t
}

// ContinueWith runs f exactly once, after t is terminal, and exposes its
// return value as a new task. A panic in f faults that task.
func ContinueWith[T, U any](t *Task[T], f func(done *Task[T]) U) *Task[U] {
	next := newTask[U]()

	go func() {
		defer func() {
			if p := recover(); p != nil {
				next.reject(sum.FromPanic(p))
			}
		}()

		<-t.done
		next.resolve(f(t))
	}()

	return next
}
