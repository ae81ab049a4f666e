package seq

import (
	"iter"
	"slices"

	"github.com/isaacdonaldson/tease/pkg/tease"
)

// stepFactory builds one per-element step. Factories are invoked at the
// start of every traversal so stateful steps (Skip's counter) live in
// per-evaluation state, never on the Seq value itself.
type stepFactory[T any] func() func(T) tease.Option[T]

// Seq is a deferred sequence: a source producer plus an ordered step list.
// Seq is a value type; combinators return new values and never mutate the
// receiver, so chains branched from a shared prefix stay independent.
type Seq[T any] struct {
	src      iter.Seq[T]
	steps    []stepFactory[T]
	reversed bool

	// invalid carries a lazily-reported argument error (Chunk with a
	// non-positive size) until a terminal boundary surfaces it.
	invalid error
}

// From wraps any producer, finite or infinite, with an empty step list.
func From[T any](src iter.Seq[T]) Seq[T] {
	return Seq[T]{src: src}
}

// FromSlice wraps a fixed slice. The resulting sequence is restartable.
func FromSlice[T any](items []T) Seq[T] {
	return From(func(yield func(T) bool) {
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	})
}

// FromChan wraps a channel. The resulting sequence is single-use: a second
// terminal call finds the channel drained and exhausts silently.
func FromChan[T any](ch <-chan T) Seq[T] {
	return From(func(yield func(T) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	})
}

// Generate wraps an infinite producer driven by an element index. Only
// short-circuiting terminals (via Take, Find, Nth, ...) terminate on it.
func Generate[T any](fn func(i int) T) Seq[T] {
	return From(func(yield func(T) bool) {
		for i := 0; ; i++ {
			if !yield(fn(i)) {
				return
			}
		}
	})
}

// Empty returns a sequence that yields nothing.
func Empty[T any]() Seq[T] {
	return From(func(yield func(T) bool) {})
}

// with returns a copy of s with one more step. The step list is cloned on
// append so previously returned sequences keep their own suffix.
func (s Seq[T]) with(f stepFactory[T]) Seq[T] {
	steps := append(slices.Clone(s.steps), f)
	return Seq[T]{src: s.src, steps: steps, reversed: s.reversed, invalid: s.invalid}
}

// eval is the single evaluation routine every terminal drives. Each source
// element is threaded through the step list in registration order,
// short-circuiting to the next element as soon as a step yields None.
// Stopping the returned iterator stops the source pull immediately, which
// is what makes prefix-only terminals safe on infinite sources.
func (s Seq[T]) eval() iter.Seq[T] {
	return func(yield func(T) bool) {
		steps := make([]func(T) tease.Option[T], len(s.steps))
		for i, factory := range s.steps {
			steps[i] = factory()
		}

		for v := range s.src {
			out := tease.Some(v)
			for _, step := range steps {
				out = step(out.Unwrap())
				if out.IsNone() {
					break
				}
			}
			if out.IsNone() {
				continue
			}
			if !yield(out.Unwrap()) {
				return
			}
		}
	}
}

// mustUsable panics with a pending argument error on terminals that have no
// failure channel of their own.
func (s Seq[T]) mustUsable() {
	if s.invalid != nil {
		panic(s.invalid)
	}
}
