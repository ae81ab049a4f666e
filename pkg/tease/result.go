package tease

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

// Result represents the outcome of a fallible computation: exactly one of a
// success value or a failure error is populated, and neither changes after
// construction. Every Result carries an id and creation timestamp for
// correlation in multi-stage pipelines.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

var _ WithError[int] = Result[int]{}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// OfNullable lifts a possibly-nil value, producing a failure carrying
// ErrNilValue when the value is nil.
func OfNullable[T any](v T) Result[T] {
	if IsNil(v) {
		return Fail[T](ErrNilValue)
	}
	return Success(v)
}

// OfNullableWithError lifts a possibly-nil value with a caller-supplied
// failure cause. Calling it with both a nil value and a nil error is an
// internal inconsistency and yields a failure carrying
// ErrInconsistentNullable.
func OfNullableWithError[T any](v T, err error) Result[T] {
	if !IsNil(v) {
		return Success(v)
	}
	if IsNil(err) {
		return Fail[T](ErrInconsistentNullable)
	}
	return Fail[T](err)
}

// Try runs fn and captures its outcome: a returned error or a panic becomes
// a failure (panics are wrapped in *PanicError), a nil result becomes a
// failure carrying ErrNilValue, anything else a success.
func Try[T any](fn func() (T, error)) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Fail[T](&PanicError{Value: r, Stack: debug.Stack()})
		}
	}()

	v, err := fn()
	if err != nil {
		return Fail[T](err)
	}
	return OfNullable(v)
}

// TryCtx is the context-aware form of Try for functions that block. A context
// already expired on entry short-circuits to a failure without running fn;
// use IsCancellationError on the resulting Err to classify it.
func TryCtx[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) Result[T] {
	if err := ctx.Err(); err != nil {
		return Fail[T](err)
	}
	return Try(func() (T, error) {
		return fn(ctx)
	})
}

// Result returns the success value, or the zero value on failure. Prefer
// Unwrap or UnwrapOr when absence must not pass silently.
func (r Result[T]) Result() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// IsSuccessAnd reports whether the result is a success whose value satisfies
// pred.
func (r Result[T]) IsSuccessAnd(pred func(T) bool) bool {
	return r.isSuccess && pred(r.value)
}

// IsFailureAnd reports whether the result is a failure whose error satisfies
// pred.
func (r Result[T]) IsFailureAnd(pred func(error) bool) bool {
	return !r.isSuccess && pred(r.err)
}

// IsCanceled reports whether the failure was caused by context cancellation
// or deadline expiry.
func (r Result[T]) IsCanceled() bool {
	return !r.isSuccess && IsCancellationError(r.err)
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Unwrap returns the success value or panics with *UnwrapError on failure.
func (r Result[T]) Unwrap() T {
	if !r.isSuccess {
		panic(&UnwrapError{Method: "Result.Unwrap", Reason: "result is a failure"})
	}
	return r.value
}

func (r Result[T]) UnwrapOr(fallback T) T {
	if r.isSuccess {
		return r.value
	}
	return fallback
}

func (r Result[T]) UnwrapOrElse(fallback func(error) T) T {
	if r.isSuccess {
		return r.value
	}
	return fallback(r.err)
}

// UnwrapErr returns the failure error or panics with *UnwrapError on
// success.
func (r Result[T]) UnwrapErr() error {
	if r.isSuccess {
		panic(&UnwrapError{Method: "Result.UnwrapErr", Reason: "result is a success"})
	}
	return r.err
}

// And returns other when the receiver is a success, otherwise the receiver's
// failure.
func (r Result[T]) And(other Result[T]) Result[T] {
	if r.isSuccess {
		return other
	}
	return r
}

// AndThen applies fn to the success value, propagating failure unchanged.
// For a type-changing bind see AndThenResult.
func (r Result[T]) AndThen(fn func(T) Result[T]) Result[T] {
	if r.isSuccess {
		return fn(r.value)
	}
	return r
}

// Map transforms the success value. For a type-changing map see MapResult.
func (r Result[T]) Map(fn func(T) T) Result[T] {
	if r.isSuccess {
		return Success(fn(r.value))
	}
	return r
}

// MapErr transforms the failure error, leaving a success untouched.
func (r Result[T]) MapErr(fn func(error) error) Result[T] {
	if r.isSuccess {
		return r
	}
	return Fail[T](fn(r.err))
}

// MapOrElse reduces the result to a plain value via one of the two handlers.
func (r Result[T]) MapOrElse(onFailure func(error) T, onSuccess func(T) T) T {
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// Inspect calls fn on the success value and returns the result unchanged.
func (r Result[T]) Inspect(fn func(T)) Result[T] {
	if r.isSuccess {
		fn(r.value)
	}
	return r
}

// InspectErr calls fn on the failure error and returns the result unchanged.
func (r Result[T]) InspectErr(fn func(error)) Result[T] {
	if !r.isSuccess {
		fn(r.err)
	}
	return r
}

// Or returns the receiver when it is a success, otherwise other.
func (r Result[T]) Or(other Result[T]) Result[T] {
	if r.isSuccess {
		return r
	}
	return other
}

// ToOptionOk converts to an Option over the success value; failures become
// None.
func (r Result[T]) ToOptionOk() Option[T] {
	if r.isSuccess {
		return Some(r.value)
	}
	return None[T]()
}

// ToOptionErr converts to an Option over the failure error; successes become
// None.
func (r Result[T]) ToOptionErr() Option[error] {
	if !r.isSuccess {
		return Some(r.err)
	}
	return None[error]()
}

// MapResult is the type-changing form of Result.Map.
func MapResult[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.IsSuccess() {
		return Success(fn(r.Result()))
	}
	return Fail[U](r.Err())
}

// AndThenResult is the type-changing form of Result.AndThen.
func AndThenResult[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.IsSuccess() {
		return fn(r.Result())
	}
	return Fail[U](r.Err())
}

// FlattenResult collapses one level of result nesting, keeping the outer
// failure when present.
func FlattenResult[T any](r Result[Result[T]]) Result[T] {
	if r.IsSuccess() {
		return r.Result()
	}
	return Fail[T](r.Err())
}
