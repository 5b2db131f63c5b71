// Package either contains Either[L, R], a value of one of two types.
//
// Right is the channel the operations work on: Map, Bind, Filter and
// enumeration see the Right value, MapLeft and CatchLeft the Left one.
// Which side means "error" is up to the caller.
package either
