// Package seq implements a deferred sequence-transformation engine on top
// of tease.Option and tease.Result.
//
// A Seq[T] wraps a source producer (an iter.Seq[T]) and an ordered list of
// per-element steps, each a function T -> tease.Option[T]: Some continues
// with the (possibly transformed) element, None drops it. Nothing runs and
// the source is not advanced until a terminal operation is called.
//
// Highlights:
// - From/FromSlice/FromChan/Generate: wrap a producer
// - Map/Filter/FilterMap/Tap/Skip: register per-element steps, O(1)
// - Take/Chunk/Zip/SortBy/MapTo: restructure via a fresh internal producer
// - Collect/Fold/GroupBy/Unzip: consume, reporting failure as tease.Result
// - Count/Reduce/Find/Position/Some/All/Nth/Last: consume to a plain value
//   or tease.Option
//
// Combinators return new Seq values; chains branched from a shared prefix
// evolve independently. A Seq is restartable exactly when its source is:
// slice-backed sequences can be consumed repeatedly, channel-backed ones are
// single-use and a second terminal call exhausts silently. Callers own that
// contract.
//
// Terminal operations that return a tease.Result (Collect, Fold, GroupBy,
// SortBy via its downstream terminal, Unzip, and Chunk's size validation)
// recover a panic raised by a user callback and convert it into an *OpError
// failure. Terminals that return a plain value or tease.Option do not
// recover: a panicking callback propagates to the caller. The asymmetry is
// deliberate; see the package tests.
package seq
