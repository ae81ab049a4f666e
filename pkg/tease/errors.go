package tease

import (
	"errors"
	"fmt"
)

// ErrNilValue is the cause carried by failures built from nil values via
// OfNullable.
var ErrNilValue = errors.New("value was nil")

// ErrInconsistentNullable reports OfNullableWithError being called with a
// nil value and a nil error at the same time.
var ErrInconsistentNullable = errors.New("nullable conversion: both value and error are nil")

// UnwrapError reports an unsafe unwrap called on the wrong variant. It is
// delivered by panic, never as a returned error.
type UnwrapError struct {
	Method string
	Reason string
}

func (e *UnwrapError) Error() string {
	return fmt.Sprintf("tease: %s: %s", e.Method, e.Reason)
}

// InvalidArgumentError reports a size or index argument that violates an
// operation's contract, e.g. a negative count passed to Skip.
type InvalidArgumentError struct {
	Op     string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("tease: %s: %s", e.Op, e.Reason)
}

// PanicError wraps a recovered panic value so it can travel as an error
// through a Result.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("tease: recovered panic: %v", e.Value)
}

// Unwrap exposes the panic value when it already was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
