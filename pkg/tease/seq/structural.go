package seq

import (
	"fmt"
	"iter"
	"slices"

	"github.com/isaacdonaldson/tease/pkg/tease"
)

// Take builds a sequence yielding at most n values from the fully-stepped
// receiver. The underlying pull stops as soon as n accepted values have
// been produced, so extra elements of the receiver or its source are never
// evaluated. A negative n panics at call time.
func (s Seq[T]) Take(n int) Seq[T] {
	if n < 0 {
		panic(&tease.InvalidArgumentError{
			Op:     "seq.Take",
			Reason: fmt.Sprintf("count must be non-negative, got %d", n),
		})
	}
	evaluated := s.eval()
	return Seq[T]{
		invalid: s.invalid,
		src: func(yield func(T) bool) {
			if n == 0 {
				return
			}
			taken := 0
			for v := range evaluated {
				if !yield(v) {
					return
				}
				taken++
				if taken == n {
					return
				}
			}
		},
	}
}

// Chunk groups consecutive evaluated elements into slices of the given
// size; the final chunk may be shorter and is still emitted. A non-positive
// size is reported lazily, as a failure at the terminal boundary, because
// the chunked sequence itself is constructed lazily.
func Chunk[T any](s Seq[T], size int) Seq[[]T] {
	if size <= 0 {
		return Seq[[]T]{invalid: firstErr(s.invalid, &tease.InvalidArgumentError{
			Op:     "seq.Chunk",
			Reason: fmt.Sprintf("size must be positive, got %d", size),
		})}
	}
	evaluated := s.eval()
	return Seq[[]T]{
		invalid: s.invalid,
		src: func(yield func([]T) bool) {
			// Fresh backing slice per chunk: emitted chunks may be
			// retained by the caller.
			buf := make([]T, 0, size)
			for v := range evaluated {
				buf = append(buf, v)
				if len(buf) == size {
					if !yield(buf) {
						return
					}
					buf = make([]T, 0, size)
				}
			}
			if len(buf) > 0 {
				yield(buf)
			}
		},
	}
}

// Zip pairs elements of a and b positionally, stopping at the shorter of
// the two. Unequal lengths are defined behavior, not an error.
func Zip[A, B any](a Seq[A], b Seq[B]) Seq[tease.Pair[A, B]] {
	left, right := a.eval(), b.eval()
	return Seq[tease.Pair[A, B]]{
		invalid: firstErr(a.invalid, b.invalid),
		src: func(yield func(tease.Pair[A, B]) bool) {
			next, stop := iter.Pull(right)
			defer stop()
			for v := range left {
				w, ok := next()
				if !ok {
					return
				}
				if !yield(tease.PairOf(v, w)) {
					return
				}
			}
		},
	}
}

// SortBy builds a sequence that, on first pull, materializes the receiver,
// sorts a private copy with cmp and yields the sorted elements. A panicking
// comparator is tagged OpSortBy and surfaces as a failure at the next
// Result-returning terminal; the receiver itself is never left
// partially sorted.
func (s Seq[T]) SortBy(cmp func(a, b T) int) Seq[T] {
	evaluated := s.eval()
	return Seq[T]{
		invalid: s.invalid,
		src: func(yield func(T) bool) {
			var items []T
			for v := range evaluated {
				items = append(items, v)
			}
			sortItems(items, cmp)
			for _, v := range items {
				if !yield(v) {
					return
				}
			}
		},
	}
}

func sortItems[T any](items []T, cmp func(a, b T) int) {
	defer func() {
		if r := recover(); r != nil {
			panic(&OpError{Op: OpSortBy, Cause: causeOf(r)})
		}
	}()
	slices.SortFunc(items, cmp)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
