// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

import (
	"reflect"
	"slices"
	"sync/atomic"
)

// cell is a partial-application cell: one callable, its ownership mode,
// and the arguments bound to it so far.
//
// A cell is never mutated after construction, with two exceptions owned by
// transient cells: the used counter, and the spare capacity of args past
// len(args), which the single consumer of a transient cell may append into.
type cell struct {
	held reflect.Value // callable or terminal value; the pointer for Borrowed
	mode Mode
	args []reflect.Value
	err  error // non-nil for failed handles

	transient bool
	used      atomic.Uintptr
}

// target returns the value an application operates on.
// Borrowed cells read through their pointer every time.
func (c *cell) target() reflect.Value {
	v := c.held
	if c.mode == Borrowed {
		v = v.Elem()
	}
	return indirectInterface(v)
}

// value returns the cell as a plain Go value: the held value when nothing
// is bound, otherwise a function of the remaining parameters.
func (c *cell) value() reflect.Value {
	if len(c.args) == 0 {
		if c.mode == Borrowed {
			return c.held
		}
		return indirectInterface(c.held)
	}
	return c.bindFront()
}

// bindFront builds a function of the parameters that c still needs.
// The function reads the target on every call, so borrowed cells keep
// their reference semantics.
func (c *cell) bindFront() reflect.Value {
	ft := c.target().Type()
	bound := len(c.args)
	in := make([]reflect.Type, 0, ft.NumIn()-bound)
	for i := bound; i < ft.NumIn(); i++ {
		in = append(in, ft.In(i))
	}
	out := make([]reflect.Type, ft.NumOut())
	for i := range out {
		out[i] = ft.Out(i)
	}
	args := slices.Clip(c.args)
	return reflect.MakeFunc(reflect.FuncOf(in, out, ft.IsVariadic()), func(rest []reflect.Value) []reflect.Value {
		all := append(args, rest...)
		if ft.IsVariadic() {
			return c.target().CallSlice(all)
		}
		return c.target().Call(all)
	})
}

// bind returns a new cell with arg appended to the bound arguments.
// When inPlace is set, c's backing array is extended instead of copied;
// callers set it only for cells nobody else can reach. spare is the number
// of arguments expected to follow in the same application.
func (c *cell) bind(arg reflect.Value, inPlace bool, spare int) *cell {
	var args []reflect.Value
	if inPlace {
		args = append(c.args, arg)
	} else {
		args = make([]reflect.Value, len(c.args)+1, len(c.args)+1+spare)
		copy(args, c.args)
		args[len(c.args)] = arg
	}
	return &cell{held: c.held, mode: c.mode, args: args, transient: c.transient}
}

// remaining reports how many more arguments ft needs after bound of them
// are supplied. Variadic functions need only their fixed parameters.
func remaining(ft reflect.Type, bound int) int {
	n := ft.NumIn()
	if ft.IsVariadic() {
		n--
	}
	if n < bound {
		return 0
	}
	return n - bound
}

// paramType is the type the i-th argument of ft binds to.
func paramType(ft reflect.Type, i int) reflect.Type {
	n := ft.NumIn()
	if ft.IsVariadic() && i >= n-1 {
		return ft.In(n - 1).Elem()
	}
	return ft.In(i)
}

func indirectInterface(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

// curriedOf reports whether v holds a handle, and returns its dynamic view.
func curriedOf(v reflect.Value) (Handle, bool) {
	if !v.IsValid() || !v.Type().Implements(curriedType) || !v.CanInterface() {
		return Handle{}, false
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return Handle{}, false
		}
	}
	return v.Interface().(Curried).curried(), true
}
