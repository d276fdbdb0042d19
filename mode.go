// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

import (
	"reflect"
	"strconv"
)

// Mode is the ownership mode of a handle's cell.
// It is fixed when the cell is built and every partial application
// derived from the cell inherits it.
type Mode uint8

const (
	// Owned cells hold the wrapped value itself.
	Owned Mode = iota

	// Borrowed cells hold a pointer to a value owned elsewhere and read
	// through it at every application, so changes to the pointee made
	// before an application are observed by that application.
	Borrowed
)

func (m Mode) String() string {
	switch m {
	case Owned:
		return "owned"
	case Borrowed:
		return "borrowed"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

var curriedType = reflect.TypeFor[Curried]()

// resolveMode picks the ownership mode for a value entering the engine.
// A non-nil pointer to a function or to a handle is a reference the caller
// keeps using, so the cell borrows it. Everything else is owned.
func resolveMode(v reflect.Value) Mode {
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return Owned
	}
	et := v.Type().Elem()
	if et.Kind() == reflect.Func || et.Implements(curriedType) {
		return Borrowed
	}
	return Owned
}
