// Package async is the asynchronous abstraction the sum types bridge to: a
// single-assignment Task[T] that ends Completed, Faulted or Cancelled.
//
// Key constructs:
// - Run: execute a func(ctx) (T, error) in its own goroutine
// - Completion: complete a task from the outside (Resolve/Reject/Cancel)
// - FromValue/FromError/FromCancelled: already terminal tasks
// - ContinueWith: run exactly one continuation once a task is terminal
// - FromChan: first value of a channel as a task
//
// Context errors returned by a computation are a separate failure kind: the
// task is Cancelled rather than Faulted and its error is a *CancelledError.
package async
