// Package result contains Result[T], a success value or a failure.
//
// Highlights:
// - Ok/Error/Of: construct Result[T]; Of takes a Go (value, error) pair
// - Map/SelectMany/Combine: transform and chain; Error short-circuits
// - Filter/OfType: turn unwanted Ok values into Error
// - MapError/Catch: rewrite or recover from the failure
// - Reduce/ReduceFunc/Fold: leave the Result with a fallback
// - ToAsync/TraverseAsync/FromTask: bridge to async.Task
// - All/Slice: enumerate the Ok value, if any
package result
