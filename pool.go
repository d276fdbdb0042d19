// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

import (
	"reflect"
	"sync"
)

// Scratch buffers for the argument list handed to reflect.Value.Call.
// Call does not retain its input, so a buffer can go back to the pool as
// soon as the call returns. A buffer lost to a panicking callee is simply
// collected.

const maxPooledArgs = 64

var argsPool = sync.Pool{New: func() any {
	s := make([]reflect.Value, 0, 8)
	return &s
}}

func acquireArgs() *[]reflect.Value {
	return argsPool.Get().(*[]reflect.Value)
}

// releaseArgs zeroes the buffer so it does not pin bound arguments.
// Oversized buffers are dropped.
func releaseArgs(p *[]reflect.Value) {
	if cap(*p) > maxPooledArgs {
		return
	}
	clear(*p)
	*p = (*p)[:0]
	argsPool.Put(p)
}
