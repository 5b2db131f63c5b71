// Package chain provides a fluent Chain[T] that carries a context through a
// sequence of steps over result.Result[T].
//
// - Start/FromValue: create a Chain
// - Then/ThenTry/ThenAsync: compose Result-returning, error-returning and
//   task-returning steps
// - Map: transform the value
// - Ensure/Filter/Catch: side effects, validation and recovery
// - Finally: reduce to a concrete value
//
// Every step after an Error is skipped.
package chain
