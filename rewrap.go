// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

import "reflect"

var errorType = reflect.TypeFor[error]()

// rewrap folds the results of an invocation back into a handle.
//
//   - no results: the no-value handle
//   - a trailing error that is non-nil: a failed handle carrying it
//   - one result that is already a handle: that handle, unchanged
//   - one result otherwise: a new cell, borrowed if the result is a
//     pointer to a function or handle, owned otherwise
//   - several results: an owned terminal []any
//
// fresh reports whether a new cell was built.
func rewrap(out []reflect.Value) (h Handle, fresh bool) {
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if err := out[n-1]; !err.IsNil() {
			return Handle{c: &cell{err: err.Interface().(error)}}, true
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return Handle{}, false
	case 1:
		return rewrapValue(out[0])
	}
	vals := make([]any, len(out))
	for i, v := range out {
		vals[i] = v.Interface()
	}
	return Handle{c: &cell{held: reflect.ValueOf(vals)}}, true
}

func rewrapValue(v reflect.Value) (Handle, bool) {
	v = indirectInterface(v)
	mode := resolveMode(v)
	if mode == Owned {
		if h, ok := curriedOf(v); ok {
			return h, false
		}
	}
	return Handle{c: &cell{held: v, mode: mode}}, true
}
