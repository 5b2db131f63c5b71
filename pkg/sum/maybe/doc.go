// Package maybe contains Maybe[T], the presence or absence of a value.
//
// Highlights:
// - Just/Nothing: construct the two cases; the zero Maybe is Nothing
// - FromUnit/FromPointer/Of: coerce sum.None, pointers and comma-ok pairs
// - Map/Bind/Combine: transform and chain; Nothing short-circuits
// - Filter: keep Just only when a predicate holds
// - Reduce/ReduceFunc/Fold/FoldFunc: leave the Maybe with a fallback
// - OfType: narrow the payload by runtime type
// - All/Slice: enumerate zero or one element
package maybe
