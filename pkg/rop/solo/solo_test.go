package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/ropreader/pkg/rop"
)

func nonEmpty(_ context.Context, s string) (bool, string) {
	if s == "" {
		return false, "empty"
	}
	return true, ""
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Validate(ctx, "x", nonEmpty)
	if !ok.IsSuccess() || ok.Result() != "x" {
		t.Fatalf("expected success 'x', got success=%v val=%v err=%v", ok.IsSuccess(), ok.Result(), ok.Err())
	}

	bad := Validate(ctx, "", nonEmpty)
	if bad.IsSuccess() || bad.Err() == nil || bad.Err().Error() != "empty" {
		t.Fatalf("expected failure 'empty', got success=%v err=%v", bad.IsSuccess(), bad.Err())
	}
}

func TestAndValidate_SkipsOnFailure(t *testing.T) {
	t.Parallel()
	called := false
	out := AndValidate(context.Background(), Fail[string](errors.New("prev")),
		func(ctx context.Context, in string) (bool, string) {
			called = true
			return true, ""
		})
	if called {
		t.Fatalf("validate must not be called on failure input")
	}
	if out.Err() == nil || out.Err().Error() != "prev" {
		t.Fatalf("expected failure 'prev', got %v", out.Err())
	}
}

func TestSwitch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	parse := func(ctx context.Context, s string) rop.Result[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return rop.Fail[int](err)
		}
		return rop.Success(n)
	}

	if out := Switch(ctx, Succeed("12"), parse); !out.IsSuccess() || out.Result() != 12 {
		t.Fatalf("expected success 12, got success=%v val=%v err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
	if out := Switch(ctx, Succeed("x"), parse); out.IsSuccess() {
		t.Fatalf("expected parse failure, got %v", out.Result())
	}

	called := false
	out := Switch(ctx, Fail[string](errors.New("boom")), func(ctx context.Context, s string) rop.Result[int] {
		called = true
		return rop.Success(0)
	})
	if called || out.Err() == nil || out.Err().Error() != "boom" {
		t.Fatalf("expected short-circuit with 'boom', called=%v err=%v", called, out.Err())
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := Map(ctx, Succeed(2), func(ctx context.Context, v int) string { return strconv.Itoa(v * 2) })
	if !out.IsSuccess() || out.Result() != "4" {
		t.Fatalf("expected success '4', got success=%v val=%v", out.IsSuccess(), out.Result())
	}

	failed := Map(ctx, Fail[int](errors.New("oops")), func(ctx context.Context, v int) string { return "ignored" })
	if failed.IsSuccess() || failed.Err().Error() != "oops" {
		t.Fatalf("expected failure 'oops', got success=%v err=%v", failed.IsSuccess(), failed.Err())
	}
}

func TestTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	seen := 0
	in := Succeed(3)
	out := Tee(ctx, in, func(ctx context.Context, r rop.Result[int]) { seen = r.Result() })
	if seen != 3 || out.Id() != in.Id() {
		t.Fatalf("expected side effect with 3 and unchanged result, got seen=%d", seen)
	}

	seen = 0
	Tee(ctx, Fail[int](errors.New("x")), func(ctx context.Context, r rop.Result[int]) { seen = 1 })
	if seen != 0 {
		t.Fatalf("Tee must not run on failure")
	}
}

func TestDoubleTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var success, failure int

	onSuccess := func(ctx context.Context, r int) { success++ }
	onError := func(ctx context.Context, err error) { failure++ }

	DoubleTee(ctx, Succeed(1), onSuccess, onError)
	DoubleTee(ctx, Fail[int](errors.New("e")), onSuccess, onError)

	if success != 1 || failure != 1 {
		t.Fatalf("expected one call per track, got success=%d failure=%d", success, failure)
	}
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	atoi := func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) }

	if out := Try(ctx, Succeed("5"), atoi); !out.IsSuccess() || out.Result() != 5 {
		t.Fatalf("expected success 5, got success=%v err=%v", out.IsSuccess(), out.Err())
	}
	if out := Try(ctx, Succeed("five"), atoi); out.IsSuccess() {
		t.Fatalf("expected failure, got %v", out.Result())
	}
	if out := Try(ctx, Fail[string](errors.New("bad")), atoi); out.Err() == nil || out.Err().Error() != "bad" {
		t.Fatalf("expected failure 'bad', got %v", out.Err())
	}
}

func TestFailOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	odd := func(ctx context.Context, v int) error {
		if v%2 != 0 {
			return errors.New("odd")
		}
		return nil
	}

	if out := FailOnError(ctx, Succeed(2), odd); !out.IsSuccess() || out.Result() != 2 {
		t.Fatalf("expected success 2, got err=%v", out.Err())
	}
	if out := FailOnError(ctx, Succeed(3), odd); out.IsSuccess() || out.Err().Error() != "odd" {
		t.Fatalf("expected failure 'odd', got success=%v", out.IsSuccess())
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	onSuccess := func(ctx context.Context, v int) string { return "ok" }
	onError := func(ctx context.Context, err error) string { return "fail" }

	if s := Finally(ctx, Succeed(2), onSuccess, onError); s != "ok" {
		t.Fatalf("expected 'ok', got %q", s)
	}
	if s := Finally(ctx, Fail[int](errors.New("e")), onSuccess, onError); s != "fail" {
		t.Fatalf("expected 'fail', got %q", s)
	}
}

func validateNonNegative(v int) func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
	return func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		if v < 0 {
			return rop.Fail[int](errors.New("negative"))
		}
		return rop.Success(v)
	}
}

func validateEven(v int) func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
	return func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		if v%2 != 0 {
			return rop.Fail[int](errors.New("odd"))
		}
		return rop.Success(v)
	}
}

func TestValidateAll_BreakOnFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	executed := 0
	counted := func(f func(ctx context.Context, in rop.Result[int]) rop.Result[int]) func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		return func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
			executed++
			return f(ctx, in)
		}
	}

	res := ValidateAll(ctx, Succeed(-1), true, counted(validateNonNegative(-1)), counted(validateEven(-1)))
	if res.IsSuccess() || executed != 1 {
		t.Fatalf("expected failure after one validator, got success=%v executed=%d", res.IsSuccess(), executed)
	}
	if res.Err().Error() != "negative" {
		t.Fatalf("expected 'negative', got %v", res.Err())
	}
}

func TestValidateAll_Accumulate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	res := ValidateAll(ctx, Succeed(-3), false, validateNonNegative(-3), validateEven(-3))

	errs := rop.GetErrors(res.Err())
	if len(errs) != 2 || errs[0].Error() != "negative" || errs[1].Error() != "odd" {
		t.Fatalf("expected ['negative', 'odd'], got %v", errs)
	}
}

func TestJoin_CancelledContextReturnsInput(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := Succeed(42)
	res := ValidateAll(ctx, in, false, validateNonNegative(-1))
	if !res.IsSuccess() || res.Id() != in.Id() {
		t.Fatalf("expected input unchanged, got success=%v err=%v", res.IsSuccess(), res.Err())
	}
}
