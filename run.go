// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

import "reflect"

// Unwrap returns the value h was built around: the terminal value, the
// held function, or, for a borrowed handle, the pointer it borrows.
// Bound arguments are not applied; see [Handle.Value] and [Func] for
// that. Panics with the handle's error for a failed handle and with
// [ErrNoValue] for the no-value handle.
func Unwrap(h Handle) any {
	c := h.c
	if c == nil {
		panic(newApplyError(ErrNoValue, "unwrap"))
	}
	if c.err != nil {
		panic(c.err)
	}
	v := c.held
	if c.mode == Owned {
		v = indirectInterface(v)
	}
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}

// As converts h to T, the way a handle is used where a T is expected.
// It succeeds when the value h converts to is assignable to T (numeric
// values also convert between numeric types), when a borrowed handle's
// pointee is, or when T is a function type and h is still callable (see
// [Func]). Returns (zero, false) otherwise.
func As[T any](h Handle) (T, bool) {
	var zero T
	v, ok := h.convert(reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	return v.Interface().(T), true
}

// Must is like [As] but panics with [ErrArgType] when h does not convert.
func Must[T any](h Handle) T {
	v, ok := As[T](h)
	if !ok {
		panic(newApplyError(ErrArgType, "cannot convert %s to %s", h, reflect.TypeFor[T]()))
	}
	return v
}

// Func converts h to the function type F.
//
// When nothing is bound and the held function already has type F, that
// function is returned itself; no new function is built. Otherwise Func
// returns a function of type F that applies its arguments to h and
// converts the resulting handle to F's results. A trailing error result
// of F receives the error of a failed handle; without one, a failed
// handle panics with its error.
//
// A transient h is consumed and persisted first (see [Handle.Persist]), so
// the returned function can be called any number of times.
//
// Panics if F is not a function type, h is not callable, or h is a
// transient handle that was already applied.
func Func[F any](h Handle) F {
	t := reflect.TypeFor[F]()
	if t.Kind() != reflect.Func {
		panic(newApplyError(ErrArgType, "%s is not a function type", t))
	}
	h = h.Persist()
	v, ok := h.convert(t)
	if !ok {
		if h.c == nil {
			panic(newApplyError(ErrNoValue, "cannot convert to %s", t))
		}
		panic(newApplyError(ErrNotCallable, "cannot convert %s to %s", h, t))
	}
	return v.Interface().(F)
}

// funcOf synthesises a function of type t that applies its arguments to h.
func funcOf(h Handle, t reflect.Type) reflect.Value {
	return reflect.MakeFunc(t, func(in []reflect.Value) []reflect.Value {
		args := make([]any, 0, len(in))
		for i, v := range in {
			if t.IsVariadic() && i == len(in)-1 {
				for j := range v.Len() {
					args = append(args, v.Index(j).Interface())
				}
				continue
			}
			args = append(args, v.Interface())
		}
		return results(h.Call(args...), t)
	})
}

// results converts the handle produced by a synthesised function call
// into the results of t.
func results(r Handle, t reflect.Type) []reflect.Value {
	n := t.NumOut()
	out := make([]reflect.Value, n)
	for i := range out {
		out[i] = reflect.Zero(t.Out(i))
	}
	if n > 0 && t.Out(n-1) == errorType {
		if err := r.Err(); err != nil {
			out[n-1] = reflect.ValueOf(&err).Elem()
			return out
		}
		n--
	} else if err := r.Err(); err != nil {
		panic(err)
	}
	switch n {
	case 0:
		return out
	case 1:
		v, ok := r.convert(t.Out(0))
		if !ok {
			panic(resultMismatch(r, t))
		}
		out[0] = v
		return out
	}
	vals, ok := r.Value().([]any)
	if !ok || len(vals) != n {
		panic(resultMismatch(r, t))
	}
	for i := range n {
		v, ok := assignTo(reflect.ValueOf(vals[i]), t.Out(i))
		if !ok {
			panic(resultMismatch(r, t))
		}
		out[i] = v
	}
	return out
}

func resultMismatch(r Handle, t reflect.Type) *ApplyError {
	if !r.HasValue() {
		return newApplyError(ErrNoValue, "%s expects results", t)
	}
	return newApplyError(ErrArgType, "result %s does not fit %s", r, t)
}
