package seq

import (
	"fmt"
	"slices"

	"github.com/isaacdonaldson/tease/pkg/tease"
)

// Collect drains the sequence into a slice, applying a pending Reverse mark
// after materialization. A panic raised by any step or upstream callback is
// recovered into an *OpError failure.
func (s Seq[T]) Collect() (res tease.Result[[]T]) {
	if s.invalid != nil {
		return tease.Fail[[]T](s.invalid)
	}
	defer func() {
		if r := recover(); r != nil {
			res = tease.Fail[[]T](opFailure(OpCollect, r))
		}
	}()

	out := make([]T, 0)
	for v := range s.eval() {
		out = append(out, v)
	}
	if s.reversed {
		slices.Reverse(out)
	}
	return tease.Success(out)
}

// Fold reduces the sequence into an accumulator seeded with initial. It
// succeeds on an empty sequence and fails only when fn or an upstream step
// panics.
func Fold[T, U any](s Seq[T], fn func(acc U, v T) U, initial U) (res tease.Result[U]) {
	if s.invalid != nil {
		return tease.Fail[U](s.invalid)
	}
	defer func() {
		if r := recover(); r != nil {
			res = tease.Fail[U](opFailure(OpFold, r))
		}
	}()

	acc := initial
	for v := range s.eval() {
		acc = fn(acc, v)
	}
	return tease.Success(acc)
}

// GroupBy materializes a key-to-elements mapping, keys ordered by first
// appearance. It fails when keyFn or an upstream step panics.
func GroupBy[T any, K comparable](s Seq[T], keyFn func(T) K) (res tease.Result[*Groups[K, T]]) {
	if s.invalid != nil {
		return tease.Fail[*Groups[K, T]](s.invalid)
	}
	defer func() {
		if r := recover(); r != nil {
			res = tease.Fail[*Groups[K, T]](opFailure(OpGroupBy, r))
		}
	}()

	g := &Groups[K, T]{groups: make(map[K][]T)}
	for v := range s.eval() {
		k := keyFn(v)
		if _, seen := g.groups[k]; !seen {
			g.keys = append(g.keys, k)
		}
		g.groups[k] = append(g.groups[k], v)
	}
	return tease.Success(g)
}

// Unzip splits a sequence of pairs into two materialized slices in one
// pass. It fails only when iteration itself panics.
func Unzip[A, B any](s Seq[tease.Pair[A, B]]) (res tease.Result[tease.Pair[[]A, []B]]) {
	if s.invalid != nil {
		return tease.Fail[tease.Pair[[]A, []B]](s.invalid)
	}
	defer func() {
		if r := recover(); r != nil {
			res = tease.Fail[tease.Pair[[]A, []B]](opFailure(OpUnzip, r))
		}
	}()

	firsts := make([]A, 0)
	seconds := make([]B, 0)
	for p := range s.eval() {
		firsts = append(firsts, p.First)
		seconds = append(seconds, p.Second)
	}
	return tease.Success(tease.PairOf(firsts, seconds))
}

// Count drains the sequence and returns the number of accepted elements.
func (s Seq[T]) Count() int {
	s.mustUsable()
	n := 0
	for range s.eval() {
		n++
	}
	return n
}

// Reduce folds the sequence without an initial value: the first element
// seeds the accumulator. It returns None on an empty sequence. A panicking
// fn propagates to the caller.
func (s Seq[T]) Reduce(fn func(acc, v T) T) tease.Option[T] {
	s.mustUsable()
	var acc T
	first := true
	for v := range s.eval() {
		if first {
			acc = v
			first = false
			continue
		}
		acc = fn(acc, v)
	}
	if first {
		return tease.None[T]()
	}
	return tease.Some(acc)
}

// Find returns the first element satisfying pred, pulling no further once a
// match is found.
func (s Seq[T]) Find(pred func(T) bool) tease.Option[T] {
	s.mustUsable()
	for v := range s.eval() {
		if pred(v) {
			return tease.Some(v)
		}
	}
	return tease.None[T]()
}

// Position returns the index (among accepted elements) of the first match,
// pulling no further once found.
func (s Seq[T]) Position(pred func(T) bool) tease.Option[int] {
	s.mustUsable()
	i := 0
	for v := range s.eval() {
		if pred(v) {
			return tease.Some(i)
		}
		i++
	}
	return tease.None[int]()
}

// Some reports whether any element satisfies pred, stopping at the first
// true.
func (s Seq[T]) Some(pred func(T) bool) bool {
	s.mustUsable()
	for v := range s.eval() {
		if pred(v) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies pred, stopping at the first
// false. It is vacuously true on an empty sequence.
func (s Seq[T]) All(pred func(T) bool) bool {
	s.mustUsable()
	for v := range s.eval() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Nth returns the element at index n among accepted elements, pulling at
// most n+1 of them. A negative n panics at call time.
func (s Seq[T]) Nth(n int) tease.Option[T] {
	if n < 0 {
		panic(&tease.InvalidArgumentError{
			Op:     "seq.Nth",
			Reason: fmt.Sprintf("index must be non-negative, got %d", n),
		})
	}
	s.mustUsable()
	i := 0
	for v := range s.eval() {
		if i == n {
			return tease.Some(v)
		}
		i++
	}
	return tease.None[T]()
}

// Last fully drains the sequence and returns its final element. Calling it
// on an infinite source never returns.
func (s Seq[T]) Last() tease.Option[T] {
	s.mustUsable()
	var last T
	found := false
	for v := range s.eval() {
		last = v
		found = true
	}
	if !found {
		return tease.None[T]()
	}
	return tease.Some(last)
}
