package scope

import (
	"errors"
	"testing"

	"github.com/isaacdonaldson/tease/pkg/tease"
)

func TestRun_Success(t *testing.T) {
	t.Parallel()
	var finished []string
	res := Run(func() (int, error) { return 5, nil },
		OnExit[int](func() { finished = append(finished, "exit") }),
		OnSuccess[int](func(v int) { finished = append(finished, "success") }),
	)
	if !res.IsSuccess() || res.Result() != 5 {
		t.Fatalf("expected Success(5), got %v / %v", res.Result(), res.Err())
	}
	if len(finished) != 2 || finished[0] != "success" || finished[1] != "exit" {
		t.Fatalf("expected success then exit callbacks, got %v", finished)
	}
}

func TestRun_Error(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	var seen error
	exited := false
	res := Run(func() (int, error) { return 0, boom },
		OnExit[int](func() { exited = true }),
		OnError[int](func(err error) { seen = err }),
	)
	if !res.IsFailure() || !errors.Is(res.Err(), boom) {
		t.Fatalf("expected boom failure, got %v", res.Err())
	}
	if !errors.Is(seen, boom) || !exited {
		t.Fatalf("expected error and exit callbacks to run: seen=%v exited=%v", seen, exited)
	}
}

func TestRun_ExitOrderIsLIFO(t *testing.T) {
	t.Parallel()
	var order []int
	Run(func() (int, error) { return 1, nil },
		OnExit[int](func() { order = append(order, 1) }),
		OnExit[int](func() { order = append(order, 2) }),
	)
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Fatalf("expected last-registered first, got %v", order)
	}
}

func TestRun_PanicReRaisesByDefault(t *testing.T) {
	t.Parallel()
	exited := false
	defer func() {
		if r := recover(); r != "guard boom" {
			t.Fatalf("expected panic to re-raise, got %v", r)
		}
		if !exited {
			t.Fatalf("exit callback must run even on panic")
		}
	}()
	Run(func() (int, error) { panic("guard boom") },
		OnExit[int](func() { exited = true }),
	)
}

func TestRun_CatchPanics(t *testing.T) {
	t.Parallel()
	var seen error
	res := Run(func() (int, error) { panic("caught boom") },
		CatchPanics[int](),
		OnError[int](func(err error) { seen = err }),
	)
	if !res.IsFailure() {
		t.Fatalf("expected failure")
	}
	var perr *tease.PanicError
	if !errors.As(res.Err(), &perr) || perr.Value != "caught boom" {
		t.Fatalf("expected *PanicError carrying the value, got %v", res.Err())
	}
	if !errors.As(seen, &perr) {
		t.Fatalf("expected error callback to see the panic error")
	}
}
