package tease

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSuccessAndFail(t *testing.T) {
	t.Parallel()
	r := Success(5)
	if !r.IsSuccess() || r.IsFailure() || r.Result() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v, err=%v", r.IsSuccess(), r.Result(), r.Err())
	}
	boom := errors.New("boom")
	f := Fail[int](boom)
	if f.IsSuccess() || !errors.Is(f.Err(), boom) {
		t.Fatalf("expected failure 'boom', got: success=%v, err=%v", f.IsSuccess(), f.Err())
	}
}

func TestIdentityFields(t *testing.T) {
	t.Parallel()
	a := Success(1)
	b := Success(1)
	if a.Id() == b.Id() {
		t.Fatalf("expected distinct ids per result")
	}
	if a.CreatedAt().IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}

func TestOfNullable(t *testing.T) {
	t.Parallel()
	if r := OfNullable((*int)(nil)); !r.IsFailure() || !errors.Is(r.Err(), ErrNilValue) {
		t.Fatalf("expected ErrNilValue failure, got %v", r.Err())
	}
	v := 2
	if r := OfNullable(&v); !r.IsSuccess() {
		t.Fatalf("expected success")
	}
}

func TestOfNullableWithError(t *testing.T) {
	t.Parallel()
	cause := errors.New("cause")
	if r := OfNullableWithError((*int)(nil), cause); !errors.Is(r.Err(), cause) {
		t.Fatalf("expected caller error, got %v", r.Err())
	}
	v := 3
	if r := OfNullableWithError(&v, cause); !r.IsSuccess() {
		t.Fatalf("expected success when value present")
	}
	if r := OfNullableWithError((*int)(nil), nil); !errors.Is(r.Err(), ErrInconsistentNullable) {
		t.Fatalf("expected consistency error, got %v", r.Err())
	}
}

func TestTry(t *testing.T) {
	t.Parallel()
	r := Try(func() (int, error) { return 4, nil })
	if !r.IsSuccess() || r.Result() != 4 {
		t.Fatalf("expected Success(4)")
	}

	bad := errors.New("bad")
	r = Try(func() (int, error) { return 0, bad })
	if !errors.Is(r.Err(), bad) {
		t.Fatalf("expected 'bad' failure, got %v", r.Err())
	}

	r2 := Try(func() (*int, error) { return nil, nil })
	if !errors.Is(r2.Err(), ErrNilValue) {
		t.Fatalf("expected nil-result failure, got %v", r2.Err())
	}
}

func TestTry_CapturesPanic(t *testing.T) {
	t.Parallel()
	r := Try(func() (int, error) { panic("kaboom") })
	if !r.IsFailure() {
		t.Fatalf("expected failure from panic")
	}
	var perr *PanicError
	if !errors.As(r.Err(), &perr) || perr.Value != "kaboom" {
		t.Fatalf("expected *PanicError carrying the panic value, got %v", r.Err())
	}
}

func TestTryCtx(t *testing.T) {
	t.Parallel()
	r := TryCtx(context.Background(), func(ctx context.Context) (string, error) {
		return "ok", nil
	})
	if !r.IsSuccess() || r.Result() != "ok" {
		t.Fatalf("expected Success(ok)")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	r = TryCtx(ctx, func(ctx context.Context) (string, error) {
		called = true
		return "", nil
	})
	if called {
		t.Fatalf("fn should not run on an expired context")
	}
	if !r.IsCanceled() {
		t.Fatalf("expected cancellation failure, got %v", r.Err())
	}
}

func TestTryCtx_DeadlineClassification(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()
	r := TryCtx(ctx, func(ctx context.Context) (int, error) { return 1, nil })
	if !r.IsCanceled() {
		t.Fatalf("expected deadline failure to classify as canceled")
	}
}

func TestUnwrap_PanicsOnFailure(t *testing.T) {
	t.Parallel()
	defer func() {
		r := recover()
		ue, ok := r.(*UnwrapError)
		if !ok || ue.Method != "Result.Unwrap" {
			t.Fatalf("expected *UnwrapError for Result.Unwrap, got %v", r)
		}
	}()
	Fail[int](errors.New("nope")).Unwrap()
}

func TestUnwrapErr_PanicsOnSuccess(t *testing.T) {
	t.Parallel()
	defer func() {
		r := recover()
		ue, ok := r.(*UnwrapError)
		if !ok || ue.Method != "Result.UnwrapErr" {
			t.Fatalf("expected *UnwrapError for Result.UnwrapErr, got %v", r)
		}
	}()
	Success(1).UnwrapErr()
}

func TestUnwrapVariants(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	if got := Fail[int](boom).UnwrapOr(8); got != 8 {
		t.Fatalf("expected 8")
	}
	if got := Fail[int](boom).UnwrapOrElse(func(err error) int { return len(err.Error()) }); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if got := Fail[int](boom).UnwrapErr(); !errors.Is(got, boom) {
		t.Fatalf("expected boom")
	}
}

func TestPredicateVariants(t *testing.T) {
	t.Parallel()
	if !Success(10).IsSuccessAnd(func(v int) bool { return v > 5 }) {
		t.Fatalf("expected true")
	}
	boom := errors.New("boom")
	if !Fail[int](boom).IsFailureAnd(func(err error) bool { return errors.Is(err, boom) }) {
		t.Fatalf("expected true")
	}
}

func TestAlgebra(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	if got := Success(1).And(Success(2)); got.Result() != 2 {
		t.Fatalf("expected And to return other")
	}
	if got := Fail[int](boom).And(Success(2)); !got.IsFailure() {
		t.Fatalf("expected failure to win")
	}

	got := Success(3).AndThen(func(v int) Result[int] { return Success(v * 3) })
	if got.Result() != 9 {
		t.Fatalf("expected 9")
	}

	if got := Success(2).Map(func(v int) int { return v * 5 }); got.Result() != 10 {
		t.Fatalf("expected 10")
	}

	wrapped := Fail[int](boom).MapErr(func(err error) error { return errors.Join(errors.New("ctx"), err) })
	if !errors.Is(wrapped.Err(), boom) {
		t.Fatalf("expected wrapped error chain to keep cause")
	}

	if got := Fail[int](boom).Or(Success(7)); got.Result() != 7 {
		t.Fatalf("expected Or fallback")
	}
}

func TestInspects(t *testing.T) {
	t.Parallel()
	seen := 0
	Success(5).Inspect(func(v int) { seen = v })
	if seen != 5 {
		t.Fatalf("expected Inspect to run on success")
	}
	var seenErr error
	Fail[int](errors.New("x")).InspectErr(func(err error) { seenErr = err })
	if seenErr == nil {
		t.Fatalf("expected InspectErr to run on failure")
	}
}

func TestOptionConversions(t *testing.T) {
	t.Parallel()
	if o := Success(4).ToOptionOk(); !o.IsSome() || o.Unwrap() != 4 {
		t.Fatalf("expected Some(4)")
	}
	if o := Fail[int](errors.New("x")).ToOptionOk(); !o.IsNone() {
		t.Fatalf("expected None")
	}
	boom := errors.New("boom")
	if o := Fail[int](boom).ToOptionErr(); !o.IsSome() || !errors.Is(o.Unwrap(), boom) {
		t.Fatalf("expected Some(boom)")
	}
	if o := Success(1).ToOptionErr(); !o.IsNone() {
		t.Fatalf("expected None")
	}
}

func TestTypeChangingResultHelpers(t *testing.T) {
	t.Parallel()
	s := MapResult(Success(2), func(v int) string {
		if v == 2 {
			return "two"
		}
		return "?"
	})
	if s.Result() != "two" {
		t.Fatalf("expected two")
	}

	b := AndThenResult(Success(4), func(v int) Result[bool] { return Success(v%2 == 0) })
	if !b.Result() {
		t.Fatalf("expected true")
	}

	if got := FlattenResult(Success(Success(3))); got.Result() != 3 {
		t.Fatalf("expected 3")
	}
	boom := errors.New("boom")
	if got := FlattenResult(Fail[Result[int]](boom)); !errors.Is(got.Err(), boom) {
		t.Fatalf("expected outer failure kept")
	}
}

func TestMapOrElseResult(t *testing.T) {
	t.Parallel()
	got := Fail[int](errors.New("x")).MapOrElse(func(err error) int { return -1 }, func(v int) int { return v })
	if got != -1 {
		t.Fatalf("expected -1")
	}
}
