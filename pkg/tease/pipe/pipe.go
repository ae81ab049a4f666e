package pipe

import (
	"github.com/isaacdonaldson/tease/pkg/tease"
)

// Chain wraps a tease.Result to enable fluent composition.
type Chain[T any] struct {
	res tease.Result[T]
}

// Start creates a new chain from an existing result.
func Start[T any](r tease.Result[T]) Chain[T] {
	return Chain[T]{res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](v T) Chain[T] {
	return Start(tease.Success(v))
}

// Result returns the underlying tease.Result.
func (c Chain[T]) Result() tease.Result[T] {
	return c.res
}

// Then composes a function that already returns a tease.Result, unwrapping
// one level. It is skipped entirely when the chain has already failed.
func (c Chain[T]) Then(onSuccess func(T) tease.Result[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: onSuccess(c.res.Result())}
}

// ThenTry composes a function that returns (T, error), converting a non-nil
// error into a failure.
func (c Chain[T]) ThenTry(try func(T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	v, err := try(c.res.Result())
	if err != nil {
		return Chain[T]{res: tease.Fail[T](err)}
	}
	return Chain[T]{res: tease.Success(v)}
}

// Map transforms the successful value.
func (c Chain[T]) Map(onSuccess func(T) T) Chain[T] {
	return Chain[T]{res: c.res.Map(onSuccess)}
}

// Tap triggers a side effect on the successful value without changing the
// result.
func (c Chain[T]) Tap(onSuccess func(T)) Chain[T] {
	return Chain[T]{res: c.res.Inspect(onSuccess)}
}

// Or returns the receiver when it has succeeded, otherwise the alternative.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	return alternative
}

// And returns the first failure of the two chains, or the required chain
// when both succeeded.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return required
}

// Finally collapses the chain to a final value via the two handlers.
func (c Chain[T]) Finally(onSuccess func(T) T, onFailure func(error) T) T {
	return c.res.MapOrElse(onFailure, onSuccess)
}

// Then chains a function producing a result of a new type.
func Then[T, U any](c Chain[T], onSuccess func(T) tease.Result[U]) Chain[U] {
	return Chain[U]{res: tease.AndThenResult(c.res, onSuccess)}
}

// ThenTry chains an error-returning function producing a new type.
func ThenTry[T, U any](c Chain[T], try func(T) (U, error)) Chain[U] {
	return Then(c, func(v T) tease.Result[U] {
		u, err := try(v)
		if err != nil {
			return tease.Fail[U](err)
		}
		return tease.Success(u)
	})
}

// Map chains a pure transformation to a new type.
func Map[T, U any](c Chain[T], onSuccess func(T) U) Chain[U] {
	return Chain[U]{res: tease.MapResult(c.res, onSuccess)}
}

// Finally collapses a chain to a value of a new type.
func Finally[T, U any](c Chain[T], onSuccess func(T) U, onFailure func(error) U) U {
	if c.res.IsSuccess() {
		return onSuccess(c.res.Result())
	}
	return onFailure(c.res.Err())
}

// Through threads v through stages in order, unwrapping one result level
// between stages and stopping at the first failure.
func Through[T any](v T, stages ...func(T) tease.Result[T]) tease.Result[T] {
	res := tease.Success(v)
	for _, stage := range stages {
		if res.IsFailure() {
			return res
		}
		res = stage(res.Result())
	}
	return res
}
