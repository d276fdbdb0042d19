// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry_test

import (
	"testing"

	"code.hybscloud.com/curry"
)

func TestWrapPointerBorrows(t *testing.T) {
	f := add
	h := curry.Wrap(&f)
	if h.Mode() != curry.Borrowed {
		t.Fatalf("got %v, want borrowed", h.Mode())
	}
	if curry.Wrap(add).Mode() != curry.Owned {
		t.Fatal("function value was borrowed")
	}
	if curry.Own(&f).Mode() != curry.Owned {
		t.Fatal("Own borrowed a pointer")
	}
}

func TestBorrowObservesMutation(t *testing.T) {
	f := func(a, b int) int { return a + b }
	h := curry.Borrow(&f)
	p := h.Call(3)

	f = func(a, b int) int { return a * b }

	if got := mustInt(t, p.Call(5)); got != 15 {
		t.Fatalf("got %d, want 15 (mutation not observed)", got)
	}
	if got := mustInt(t, h.Call(2, 5)); got != 10 {
		t.Fatalf("got %d, want 10", got)
	}
}

func TestBorrowModePropagates(t *testing.T) {
	f := add4
	h := curry.Wrap(&f)

	p := h.Call(1)
	if p.Mode() != curry.Borrowed {
		t.Fatalf("after (1): got %v, want borrowed", p.Mode())
	}
	q := p.Call(2, 3)
	if q.Mode() != curry.Borrowed {
		t.Fatalf("after (2,3): got %v, want borrowed", q.Mode())
	}
	if q.Once().Mode() != curry.Borrowed {
		t.Fatal("Once dropped the borrowed mode")
	}
	if got := mustInt(t, q.Call(4)); got != 10 {
		t.Fatalf("got %d, want 10", got)
	}
}

func TestBorrowNeverCopiesReferent(t *testing.T) {
	f := add
	h := curry.Borrow(&f)

	p, ok := curry.As[*func(int, int) int](h)
	if !ok || p != &f {
		t.Fatalf("got %p, want %p", p, &f)
	}
	if u := curry.Unwrap(h); u != &f {
		t.Fatalf("unwrap: got %v, want the borrowed pointer", u)
	}
	g, ok := curry.As[func(int, int) int](h)
	if !ok || g(1, 2) != 3 {
		t.Fatal("borrowed handle did not convert to its pointee type")
	}
}

func TestBorrowedHandle(t *testing.T) {
	inner := curry.Wrap(add)
	h := curry.Wrap(&inner)
	if h.Mode() != curry.Borrowed {
		t.Fatalf("got %v, want borrowed", h.Mode())
	}
	if h.Arity() != 2 {
		t.Fatalf("got arity %d, want 2", h.Arity())
	}

	inner = curry.Wrap(func(a, b int) int { return a - b })
	if got := mustInt(t, h.Call(10, 4)); got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
}

func TestFunctionPointerResultBorrows(t *testing.T) {
	f := add
	h := curry.Wrap(func() *func(int, int) int { return &f })

	r := h.Call()
	if r.Mode() != curry.Borrowed {
		t.Fatalf("got %v, want borrowed", r.Mode())
	}
	f = func(a, b int) int { return a * b }
	if got := mustInt(t, r.Call(6, 7)); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestBorrowNilPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if err, ok := r.(*curry.ApplyError); !ok || err.Kind != curry.ErrNotCallable {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	var p *func(int) int
	curry.Borrow(p)
}

func TestNilFunctionPointerIsOwned(t *testing.T) {
	var p *func(int) int
	if curry.Wrap(p).Mode() != curry.Owned {
		t.Fatal("nil pointer was borrowed")
	}
}
