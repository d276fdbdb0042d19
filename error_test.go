// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"

	"code.hybscloud.com/curry"
)

var errDivByZero = errors.New("division by zero")

func div(a, b int) (int, error) {
	if b == 0 {
		return 0, errDivByZero
	}
	return a / b, nil
}

func expectApplyPanic(t *testing.T, kind error, msg string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(*curry.ApplyError)
		if !ok {
			t.Fatalf("unexpected panic value %T: %v", r, r)
		}
		if err.Kind != kind {
			t.Fatalf("got kind %v, want %v", err.Kind, kind)
		}
		if msg != "" && err.Error() != msg {
			t.Fatalf("got %q, want %q", err.Error(), msg)
		}
	}()
	f()
}

func TestErrorResultSuccess(t *testing.T) {
	r := curry.Wrap(div).Call(12, 4)
	if r.Err() != nil {
		t.Fatalf("unexpected error %v", r.Err())
	}
	if got := mustInt(t, r); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestErrorResultFailure(t *testing.T) {
	r := curry.Wrap(div).Call(1).Call(0)
	if !errors.Is(r.Err(), errDivByZero) {
		t.Fatalf("got %v, want %v", r.Err(), errDivByZero)
	}
	if _, ok := curry.As[int](r); ok {
		t.Fatal("failed handle converted to int")
	}
	if r.Value() != nil {
		t.Fatalf("got %v, want nil", r.Value())
	}
	if r.String() != "<error: division by zero>" {
		t.Fatalf("got %q", r.String())
	}
}

func TestFailedHandleAbsorbsApplications(t *testing.T) {
	calls := 0
	checked := func(n int) (func(int) int, error) {
		if n < 0 {
			return nil, errors.New("negative")
		}
		return func(m int) int {
			calls++
			return n + m
		}, nil
	}

	r := curry.Wrap(checked).Call(-1, 5)
	if r.Err() == nil || r.Err().Error() != "negative" {
		t.Fatalf("got %v, want negative", r.Err())
	}
	if again := r.Call(1, 2, 3); again != r {
		t.Fatal("failed handle was not returned unchanged")
	}
	if calls != 0 {
		t.Fatalf("got %d calls after failure, want 0", calls)
	}

	if got := mustInt(t, curry.Wrap(checked).Call(2, 5)); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

func TestErrorOnlyResult(t *testing.T) {
	validate := func(s string) error {
		if s == "" {
			return errors.New("empty")
		}
		return nil
	}
	if r := curry.Wrap(validate).Call("ok"); r.HasValue() {
		t.Fatalf("got %v, want no value", r)
	}
	if r := curry.Wrap(validate).Call(""); r.Err() == nil {
		t.Fatal("expected failed handle")
	}
}

func TestArityErrors(t *testing.T) {
	expectApplyPanic(t, curry.ErrArity,
		"curry: arity mismatch: func() int takes no arguments; use a unit application",
		func() { curry.Wrap(func() int { return 1 }).Call(1) })

	expectApplyPanic(t, curry.ErrArity,
		"curry: arity mismatch: unit application on func(int, int) int needs 1 more argument(s)",
		func() { curry.Wrap(add).Call(1).Call() })
}

func TestArgTypeError(t *testing.T) {
	expectApplyPanic(t, curry.ErrArgType,
		"curry: argument type mismatch: argument 1: have string, want int",
		func() { curry.Wrap(add).Call("x") })

	expectApplyPanic(t, curry.ErrArgType,
		"curry: argument type mismatch: argument 2: have nil, want int",
		func() { curry.Wrap(add).Call(1, nil) })
}

func TestNotCallableError(t *testing.T) {
	expectApplyPanic(t, curry.ErrNotCallable,
		"curry: value is not callable: terminal value of type int",
		func() { curry.Wrap(5).Call(1) })

	expectApplyPanic(t, curry.ErrNotCallable, "",
		func() { curry.Wrap(add).Call(1, 2).Call() })

	var nilFn func(int) int
	expectApplyPanic(t, curry.ErrNotCallable,
		"curry: value is not callable: nil func(int) int",
		func() { curry.Wrap(nilFn).Call(1) })
}

func TestNoValueError(t *testing.T) {
	effect := func(int) {}

	expectApplyPanic(t, curry.ErrNoValue,
		"curry: no value: application on a call that returned nothing",
		func() { curry.Wrap(effect).Call(1).Call(2) })

	expectApplyPanic(t, curry.ErrNoValue,
		"curry: no value: 1 argument(s) left after a call that returned nothing",
		func() { curry.Wrap(effect).Call(1, 2) })

	expectApplyPanic(t, curry.ErrNoValue, "",
		func() { curry.Unwrap(curry.Handle{}) })
}

func TestTryCall(t *testing.T) {
	r, err := curry.Wrap(add).TryCall(1, 2)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := mustInt(t, r); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}

	r, err = curry.Wrap(add).TryCall("x")
	if err == nil {
		t.Fatal("expected error")
	}
	if r.HasValue() {
		t.Fatalf("got %v, want no value on error", r)
	}
	if !errors.Is(err, curry.ErrArgType) {
		t.Fatalf("errors.Is: got %v", err)
	}
	if pkgerrors.Cause(err) != curry.ErrArgType {
		t.Fatalf("errors.Cause: got %v", pkgerrors.Cause(err))
	}
	var ae *curry.ApplyError
	if !errors.As(err, &ae) || ae.Detail != "argument 1: have string, want int" {
		t.Fatalf("errors.As: got %v", ae)
	}
	if trace := fmt.Sprintf("%+v", err); trace == err.Error() {
		t.Fatal("TryCall error carries no stack trace")
	}
}

func TestTryCallPropagatesPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "callee" {
			t.Fatalf("got %v, want callee", r)
		}
	}()
	_, _ = curry.Wrap(func(int) int { panic("callee") }).TryCall(1)
}

func TestApplyErrorWithoutDetail(t *testing.T) {
	err := &curry.ApplyError{Kind: curry.ErrNoValue}
	if err.Error() != "curry: no value" {
		t.Fatalf("got %q", err.Error())
	}
	if err.Cause() != curry.ErrNoValue || err.Unwrap() != curry.ErrNoValue {
		t.Fatal("Cause/Unwrap do not return the kind")
	}
}
