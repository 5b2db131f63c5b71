// Package factory builds sum type values and is the only place where failures
// are caught and turned into values.
//
// Key constructs:
// - Maybe/MaybeNothing/Result/ResultError/EitherLeft/EitherRight: explicit cases
// - TryRun/TryEvaluate: run a computation, returned errors and panics become Error
// - LiftToResult: wrap a failing function into one that returns Result
// - ResultFromAsync: observe an async.Task and yield its outcome as a Result
// - EitherFromResult/ResultFromEither/MaybeFromResult/ResultFromMaybe: conversions
//
// The ...With variants take a map applied to the captured failure.
package factory
