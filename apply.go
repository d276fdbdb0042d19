// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

import (
	"math"
	"reflect"
)

// apply runs one application request against c.
//
// A request with arguments is split into single-argument steps applied
// left to right, each to the result of the previous one, so every grouping
// of the same arguments reaches the same result through the same single
// invocation of the target. Cells created by an earlier step of the same
// request are extended in place: nothing outside the request can see them.
func (c *cell) apply(args []any) (Handle, error) {
	if err := c.enter(); err != nil {
		return Handle{}, err
	}
	if len(args) == 0 {
		return c.unit()
	}
	cur, inPlace := c, c.transient
	var h Handle
	for i, a := range args {
		var fresh bool
		var err error
		h, fresh, err = cur.applyOne(a, inPlace, len(args)-i-1)
		if err != nil {
			return Handle{}, err
		}
		if i == len(args)-1 {
			break
		}
		if h.c == nil {
			return Handle{}, newApplyError(ErrNoValue, "%d argument(s) left after a call that returned nothing", len(args)-i-1)
		}
		cur = h.c
		if fresh {
			inPlace = true
			continue
		}
		// A handle returned by the target is shared with whoever built it.
		if err := cur.enter(); err != nil {
			return Handle{}, err
		}
		inPlace = cur.transient
	}
	return h, nil
}

// unit performs a zero-argument application: the target is invoked with
// exactly the arguments bound so far.
func (c *cell) unit() (Handle, error) {
	if c.err != nil {
		return Handle{c: c}, nil
	}
	fn := c.target()
	if h, ok := curriedOf(fn); ok {
		return h.apply(nil)
	}
	if err := callable(fn); err != nil {
		return Handle{}, err
	}
	ft := fn.Type()
	if need := remaining(ft, len(c.args)); need > 0 {
		return Handle{}, newApplyError(ErrArity, "unit application on %s needs %d more argument(s)", ft, need)
	}
	h, _ := invoke(fn, c.args)
	return h, nil
}

// applyOne applies a single argument. In priority order: a target that
// accepts the argument as its last one is invoked and its result rewrapped
// (or nothing returned for a function without results); a target that
// needs more arguments is bound to the argument and deferred.
//
// The eager rule has no look-ahead: a function with exactly one parameter
// left is always invoked, even if the caller meant to keep composing.
//
// fresh reports whether the returned handle was created by this step.
func (c *cell) applyOne(a any, inPlace bool, spare int) (h Handle, fresh bool, err error) {
	if c.err != nil {
		return Handle{c: c}, false, nil
	}
	fn := c.target()
	if h, ok := curriedOf(fn); ok {
		if h.c == nil {
			return Handle{}, false, newApplyError(ErrNoValue, "borrowed handle has no value")
		}
		if err := h.c.enter(); err != nil {
			return Handle{}, false, err
		}
		return h.c.applyOne(a, h.c.transient, spare)
	}
	if err := callable(fn); err != nil {
		return Handle{}, false, err
	}
	ft := fn.Type()
	need := remaining(ft, len(c.args))
	if need == 0 && !ft.IsVariadic() {
		return Handle{}, false, newApplyError(ErrArity, "%s takes no arguments; use a unit application", ft)
	}
	arg, err := convertArg(ft, len(c.args), a)
	if err != nil {
		return Handle{}, false, err
	}
	if need <= 1 {
		h, fresh := invoke(fn, c.args, arg)
		return h, fresh, nil
	}
	return Handle{c: c.bind(arg, inPlace, spare)}, true, nil
}

// invoke calls fn with the bound arguments followed by extra and rewraps
// the results. Panics raised by fn propagate unchanged.
func invoke(fn reflect.Value, bound []reflect.Value, extra ...reflect.Value) (Handle, bool) {
	buf := acquireArgs()
	*buf = append(*buf, bound...)
	*buf = append(*buf, extra...)
	out := fn.Call(*buf)
	releaseArgs(buf)
	return rewrap(out)
}

func callable(fn reflect.Value) error {
	if !fn.IsValid() {
		return newApplyError(ErrNotCallable, "nil")
	}
	if fn.Kind() != reflect.Func {
		return newApplyError(ErrNotCallable, "terminal value of type %s", fn.Type())
	}
	if fn.IsNil() {
		return newApplyError(ErrNotCallable, "nil %s", fn.Type())
	}
	return nil
}

// convertArg prepares a as the i-th argument of ft.
// Handles passed where a plain value is expected are converted the same
// way [As] converts them.
func convertArg(ft reflect.Type, i int, a any) (reflect.Value, error) {
	pt := paramType(ft, i)
	if v, ok := assignTo(reflect.ValueOf(a), pt); ok {
		return v, nil
	}
	if h, ok := a.(Curried); ok {
		if v, ok := h.curried().convert(pt); ok {
			return v, nil
		}
	}
	return reflect.Value{}, newApplyError(ErrArgType, "argument %d: have %s, want %s", i+1, typeName(a), pt)
}

// assignTo returns v as a value of type t. Assignable values pass, numeric
// values convert across numeric kinds when the value survives (see
// convertNumber), and nil becomes the zero value of a nilable type.
func assignTo(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	if !v.IsValid() {
		if nilable(t.Kind()) {
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}
	vt := v.Type()
	if vt == t {
		return v, true
	}
	if vt.AssignableTo(t) {
		out := reflect.New(t).Elem()
		out.Set(v)
		return out, true
	}
	return convertNumber(v, t)
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	}
	return false
}

// convertNumber converts a numeric v to the numeric type t. Integers and
// integral floats convert when the value is representable in t: a fraction
// is never truncated, a sign never wraps, and a magnitude never overflows.
// Floats convert to other float types unless they overflow to infinity.
// Complex values convert only to complex types.
func convertNumber(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	from, to := v.Kind(), t.Kind()
	if isComplex(from) && isComplex(to) {
		return v.Convert(t), true
	}
	if !isReal(from) || !isReal(to) {
		return reflect.Value{}, false
	}
	if isFloat(from) {
		f := v.Float()
		if isFloat(to) {
			c := v.Convert(t)
			if math.IsInf(c.Float(), 0) && !math.IsInf(f, 0) {
				return reflect.Value{}, false
			}
			return c, true
		}
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f < 0 && isUnsigned(to) {
			return reflect.Value{}, false
		}
	}
	if isSigned(from) && v.Int() < 0 && isUnsigned(to) {
		return reflect.Value{}, false
	}
	c := v.Convert(t)
	if isUnsigned(from) && isSigned(to) && c.Int() < 0 {
		return reflect.Value{}, false
	}
	if !c.Convert(v.Type()).Equal(v) {
		return reflect.Value{}, false
	}
	return c, true
}

func isSigned(k reflect.Kind) bool   { return k >= reflect.Int && k <= reflect.Int64 }
func isUnsigned(k reflect.Kind) bool { return k >= reflect.Uint && k <= reflect.Uintptr }
func isFloat(k reflect.Kind) bool    { return k == reflect.Float32 || k == reflect.Float64 }
func isReal(k reflect.Kind) bool     { return isSigned(k) || isUnsigned(k) || isFloat(k) }

func isComplex(k reflect.Kind) bool {
	return k == reflect.Complex64 || k == reflect.Complex128
}

func typeName(a any) string {
	if a == nil {
		return "nil"
	}
	return reflect.TypeOf(a).String()
}
