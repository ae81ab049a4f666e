// Package tease provides the two sum types the rest of the module is built
// on: Option[T] for presence/absence and Result[T] for success/failure.
//
// Highlights:
// - Some/None/FromNullable/FromPtr/FromOk: construct Option[T]
// - Success/Fail/OfNullable/Try/TryCtx: construct Result[T]
// - Map/AndThen/Filter/Inspect/Or: algebra shared by both types
// - ToResult/ToOptionOk/ToOptionErr: convert between the two
// - MapOption/MapResult and friends: type-changing variants as package funcs
//
// Unsafe unwrapping (Unwrap on None, Unwrap on a failure, UnwrapErr on a
// success) panics with *UnwrapError: calling the wrong variant is a caller
// programming error, not a recoverable condition.
//
// For deferred sequence transformation built on these types, see package seq.
package tease
