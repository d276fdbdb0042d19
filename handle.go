// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Handle is a curried view of a callable at some stage of partial
// application.
//
// A Handle is a small comparable value referring to one immutable cell.
// Applying arguments never changes the receiver: it returns a new Handle,
// so a persistent handle can be reapplied any number of times and shared
// between goroutines. The zero Handle is the no-value handle returned by
// functions without results.
type Handle struct {
	c *cell
}

func (h Handle) curried() Handle { return h }

// Wrap returns a handle for v.
//
// Wrapping a handle (dynamic or typed) returns that handle's own dynamic
// view, so Wrap(Wrap(f)) == Wrap(f). A non-nil pointer to a function or to
// a handle is borrowed: the handle keeps the pointer and reads through it
// at every application. Any other value is owned.
func Wrap(v any) Handle {
	rv := reflect.ValueOf(v)
	mode := resolveMode(rv)
	if mode == Owned {
		if c, ok := v.(Curried); ok {
			return c.curried()
		}
	}
	return Handle{c: &cell{held: rv, mode: mode}}
}

// Own is like [Wrap] but never borrows: pointers are held as values, and
// a pointer to a handle stands for the handle it points to.
func Own(v any) Handle {
	if c, ok := v.(Curried); ok {
		return c.curried()
	}
	return Handle{c: &cell{held: reflect.ValueOf(v), mode: Owned}}
}

// Borrow returns a borrowed handle over *p. The value behind p is never
// copied by the engine; its lifetime is the caller's responsibility.
// Panics if p is nil.
func Borrow[F any](p *F) Handle {
	if p == nil {
		panic(newApplyError(ErrNotCallable, "nil reference"))
	}
	return Handle{c: &cell{held: reflect.ValueOf(p), mode: Borrowed}}
}

// Call applies args to h and returns the resulting handle.
//
// Call() is a unit application: it invokes the held function with the
// arguments bound so far. Call(a) invokes the function if a is the last
// argument it needs, and otherwise returns a handle with a bound. Call
// with several arguments applies them one at a time, left to right, so
// h.Call(a, b, c), h.Call(a).Call(b, c) and h.Call(a).Call(b).Call(c) are
// equivalent and invoke the target once.
//
// A variadic function is invoked as soon as its fixed parameters are bound
// and one more argument arrives, so Call passes at most one element of the
// variadic tail; further arguments are applied to the result. To pass a
// full tail, call the function returned by [Handle.Value] or [Func].
//
// Results are rewrapped: a function result becomes a new handle, a handle
// result is returned as is, a function without results yields the zero
// Handle, and a non-nil trailing error yields a failed handle (see
// [Handle.Err]) that absorbs further applications.
//
// Call panics with an [*ApplyError] when h cannot take the request; panics
// raised by the held function propagate unchanged.
func (h Handle) Call(args ...any) Handle {
	r, err := h.apply(args)
	if err != nil {
		panic(err)
	}
	return r
}

// TryCall is the non-panicking variant of [Handle.Call]. Engine misuse is
// returned as an error wrapping an [*ApplyError]; panics raised by the
// held function still propagate.
func (h Handle) TryCall(args ...any) (Handle, error) {
	r, err := h.apply(args)
	if err != nil {
		return Handle{}, errors.WithStack(err)
	}
	return r, nil
}

func (h Handle) apply(args []any) (Handle, error) {
	if h.c == nil {
		return Handle{}, newApplyError(ErrNoValue, "application on a call that returned nothing")
	}
	return h.c.apply(args)
}

// HasValue reports whether h holds anything. It is false only for the
// result of a function without results.
func (h Handle) HasValue() bool { return h.c != nil }

// Err returns the error a wrapped function returned as its last result,
// or nil.
func (h Handle) Err() error {
	if h.c == nil {
		return nil
	}
	return h.c.err
}

// Mode returns the ownership mode of h's cell.
func (h Handle) Mode() Mode {
	if h.c == nil {
		return Owned
	}
	return h.c.mode
}

// Arity reports how many more arguments h needs before the held function
// is invoked: 0 for zero-argument functions, satisfied variadic functions,
// terminal values and failed handles, and -1 for the no-value handle.
func (h Handle) Arity() int {
	c := h.c
	if c == nil {
		return -1
	}
	if c.err != nil {
		return 0
	}
	fn := c.target()
	if inner, ok := curriedOf(fn); ok {
		return inner.Arity()
	}
	if callable(fn) != nil {
		return 0
	}
	return remaining(fn.Type(), len(c.args))
}

// Bound reports how many arguments are bound in h's cell.
func (h Handle) Bound() int {
	if h.c == nil {
		return 0
	}
	return len(h.c.args)
}

// Value converts h to a plain Go value: the terminal value, the held
// function when nothing is bound, or a function of the remaining
// parameters otherwise. Borrowed handles without bound arguments return
// their pointer. Value returns nil for the no-value and failed handles.
func (h Handle) Value() any {
	if h.c == nil || h.c.err != nil {
		return nil
	}
	v := h.c.value()
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}

// String formats the value h converts to.
func (h Handle) String() string {
	switch {
	case h.c == nil:
		return "<no value>"
	case h.c.err != nil:
		return "<error: " + h.c.err.Error() + ">"
	}
	return fmt.Sprint(h.Value())
}

// convert returns h as a value of type t: the value h converts to (or
// the pointee of a borrowed handle) when that fits t, a synthesised
// function when t is a function type, or h itself when t accepts handles.
func (h Handle) convert(t reflect.Type) (reflect.Value, bool) {
	c := h.c
	if c == nil || c.err != nil {
		return reflect.Value{}, false
	}
	v := c.value()
	if v.IsValid() {
		if out, ok := assignTo(v, t); ok {
			return out, true
		}
	}
	fn := c.target()
	// A borrowed function is never copied out: function types are served by
	// funcOf below, which reads through the pointer at every call.
	if c.mode == Borrowed && len(c.args) == 0 && fn.IsValid() && t.Kind() != reflect.Func {
		if out, ok := assignTo(fn, t); ok {
			return out, true
		}
	}
	if t.Kind() == reflect.Func {
		if _, ok := curriedOf(fn); ok || callable(fn) == nil {
			return funcOf(h, t), true
		}
	}
	if reflect.TypeOf(h).AssignableTo(t) {
		return assignTo(reflect.ValueOf(h), t)
	}
	return reflect.Value{}, false
}
