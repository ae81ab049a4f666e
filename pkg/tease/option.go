package tease

// Option represents presence or absence of a value of type T. The zero
// value is None, so Options can be embedded safely. A Some never wraps a
// "nil sentinel" on behalf of the caller: the type itself is the absence
// marker, and the FromNullable constructor is the only place a nil check
// happens.
type Option[T any] struct {
	value T
	ok    bool
}

var _ OptionProvider[int] = Option[int]{}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromNullable lifts a possibly-nil value, yielding None when IsNil reports
// the value as nil.
func FromNullable[T any](v T) Option[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

// FromPtr creates an Option from a pointer, treating nil as None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromOk constructs an Option from a value and ok flag, mirroring Go's
// comma-ok pattern (map lookups, type assertions).
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// IsSomeAnd reports whether the option holds a value and the value satisfies
// pred.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.ok && pred(o.value)
}

// Get returns the contained value along with a presence flag.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Unwrap returns the contained value or panics with *UnwrapError when the
// option is None.
func (o Option[T]) Unwrap() T {
	if !o.ok {
		panic(&UnwrapError{Method: "Option.Unwrap", Reason: "option is None"})
	}
	return o.value
}

func (o Option[T]) UnwrapOr(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

func (o Option[T]) UnwrapOrElse(fallback func() T) T {
	if o.ok {
		return o.value
	}
	return fallback()
}

// And returns other when the receiver is Some, otherwise None.
func (o Option[T]) And(other Option[T]) Option[T] {
	if o.ok {
		return other
	}
	return None[T]()
}

// AndThen applies fn to the contained value when present. For a
// type-changing bind see AndThenOption.
func (o Option[T]) AndThen(fn func(T) Option[T]) Option[T] {
	if o.ok {
		return fn(o.value)
	}
	return None[T]()
}

// Map transforms the contained value when present. For a type-changing map
// see MapOption.
func (o Option[T]) Map(fn func(T) T) Option[T] {
	if o.ok {
		return Some(fn(o.value))
	}
	return None[T]()
}

// MapOrElse reduces the option to a plain value via one of the two handlers.
func (o Option[T]) MapOrElse(onNone func() T, onSome func(T) T) T {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// Filter downgrades the option to None when the predicate rejects the value.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.ok && pred(o.value) {
		return o
	}
	return None[T]()
}

// Inspect calls fn on the contained value when present and returns the
// option unchanged.
func (o Option[T]) Inspect(fn func(T)) Option[T] {
	if o.ok {
		fn(o.value)
	}
	return o
}

// Or returns the receiver when it is Some, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

// ToResult converts the option to a Result, using errIfNone as the failure
// cause on None.
func (o Option[T]) ToResult(errIfNone error) Result[T] {
	if o.ok {
		return Success(o.value)
	}
	return Fail[T](errIfNone)
}

// MapOption is the type-changing form of Option.Map. Go methods cannot
// introduce type parameters, so it lives at package level.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Some(fn(v))
	}
	return None[U]()
}

// AndThenOption is the type-changing form of Option.AndThen.
func AndThenOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if v, ok := o.Get(); ok {
		return fn(v)
	}
	return None[U]()
}

// FlattenOption collapses one level of option nesting.
func FlattenOption[T any](o Option[Option[T]]) Option[T] {
	if inner, ok := o.Get(); ok {
		return inner
	}
	return None[T]()
}
