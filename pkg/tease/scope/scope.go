package scope

import (
	"runtime/debug"

	"github.com/isaacdonaldson/tease/pkg/tease"
)

type guard[T any] struct {
	onExit      []func()
	onError     []func(error)
	onSuccess   []func(T)
	catchPanics bool
}

// GuardOption configures a single Run call.
type GuardOption[T any] func(*guard[T])

// OnExit registers a cleanup callback that runs when Run returns, whatever
// the outcome. Multiple callbacks run last-registered first.
func OnExit[T any](fn func()) GuardOption[T] {
	return func(g *guard[T]) {
		g.onExit = append(g.onExit, fn)
	}
}

// OnError registers a callback invoked with the block's error (or converted
// panic) before Run returns the failure.
func OnError[T any](fn func(error)) GuardOption[T] {
	return func(g *guard[T]) {
		g.onError = append(g.onError, fn)
	}
}

// OnSuccess registers a callback invoked with the block's value before Run
// returns the success.
func OnSuccess[T any](fn func(T)) GuardOption[T] {
	return func(g *guard[T]) {
		g.onSuccess = append(g.onSuccess, fn)
	}
}

// CatchPanics converts a panic inside the block into a *tease.PanicError
// failure instead of re-raising it.
func CatchPanics[T any]() GuardOption[T] {
	return func(g *guard[T]) {
		g.catchPanics = true
	}
}

// Run executes block inside the guard and wraps its outcome in a
// tease.Result.
func Run[T any](block func() (T, error), opts ...GuardOption[T]) (res tease.Result[T]) {
	g := &guard[T]{}
	for _, opt := range opts {
		opt(g)
	}

	defer func() {
		for i := len(g.onExit) - 1; i >= 0; i-- {
			g.onExit[i]()
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			if !g.catchPanics {
				panic(r)
			}
			perr := &tease.PanicError{Value: r, Stack: debug.Stack()}
			for _, fn := range g.onError {
				fn(perr)
			}
			res = tease.Fail[T](perr)
		}
	}()

	v, err := block()
	if err != nil {
		for _, fn := range g.onError {
			fn(err)
		}
		return tease.Fail[T](err)
	}
	for _, fn := range g.onSuccess {
		fn(v)
	}
	return tease.Success(v)
}
