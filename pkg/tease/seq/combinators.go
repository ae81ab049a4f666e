package seq

import (
	"fmt"

	"github.com/isaacdonaldson/tease/pkg/tease"
)

// Map registers a transformation step. For a type-changing map see MapTo.
func (s Seq[T]) Map(fn func(T) T) Seq[T] {
	return s.with(func() func(T) tease.Option[T] {
		return func(v T) tease.Option[T] {
			return tease.Some(fn(v))
		}
	})
}

// Filter registers a step that drops elements rejected by pred.
func (s Seq[T]) Filter(pred func(T) bool) Seq[T] {
	return s.with(func() func(T) tease.Option[T] {
		return func(v T) tease.Option[T] {
			if pred(v) {
				return tease.Some(v)
			}
			return tease.None[T]()
		}
	})
}

// FilterMap registers fn directly as a step: Some continues with the mapped
// element, None drops it.
func (s Seq[T]) FilterMap(fn func(T) tease.Option[T]) Seq[T] {
	return s.with(func() func(T) tease.Option[T] {
		return fn
	})
}

// Tap registers a side-effect step that passes every element through
// unchanged.
func (s Seq[T]) Tap(fn func(T)) Seq[T] {
	return s.with(func() func(T) tease.Option[T] {
		return func(v T) tease.Option[T] {
			fn(v)
			return tease.Some(v)
		}
	})
}

// Skip registers a stateful step dropping the first n elements seen during
// an evaluation. The counter is created when evaluation starts, so a
// restartable sequence skips correctly on every traversal. A negative n is
// a caller error and panics at call time, before any evaluation.
func (s Seq[T]) Skip(n int) Seq[T] {
	if n < 0 {
		panic(&tease.InvalidArgumentError{
			Op:     "seq.Skip",
			Reason: fmt.Sprintf("count must be non-negative, got %d", n),
		})
	}
	return s.with(func() func(T) tease.Option[T] {
		seen := 0
		return func(v T) tease.Option[T] {
			if seen < n {
				seen++
				return tease.None[T]()
			}
			return tease.Some(v)
		}
	})
}

// Reverse marks the sequence for materialize-then-reverse at the Collect
// boundary. Reversal needs the full sequence, so it cannot be a per-element
// step; only Collect on the returned sequence honors the mark.
func (s Seq[T]) Reverse() Seq[T] {
	return Seq[T]{src: s.src, steps: s.steps, reversed: !s.reversed, invalid: s.invalid}
}

// MapTo transforms elements to a new type. It is structural rather than
// step-registering: the receiver's evaluation feeds a fresh sequence, so
// later steps on the result apply to the mapped type.
func MapTo[In, Out any](s Seq[In], fn func(In) Out) Seq[Out] {
	evaluated := s.eval()
	return Seq[Out]{
		invalid: s.invalid,
		src: func(yield func(Out) bool) {
			for v := range evaluated {
				if !yield(fn(v)) {
					return
				}
			}
		},
	}
}
