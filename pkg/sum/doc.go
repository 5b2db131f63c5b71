// Package sum is the shared kernel of the sum type families in maybe, result
// and either. It holds the pieces every family needs but none of them owns:
//
// - Unit/None: the process-wide absent marker, equal to Nothing of any T
// - Equal/Hash: payload equality and hashing used by every family
// - IsNil/MustNotBeNil: the "payload is never nil" invariant
// - FromPanic/PanicError: turn a recovered panic into an error
// - GetErrors/IsCancellationError: error classification helpers
//
// The families themselves live in sub-packages; the factory package ties
// them together.
package sum
