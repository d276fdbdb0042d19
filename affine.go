// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

import (
	"reflect"
	"slices"
)

// onceSpare is the extra capacity reserved by Once for in-place binding.
const onceSpare = 4

// Once returns a transient, one-shot view of h.
//
// A transient handle may be applied at most once; a second application
// panics (Call) or fails with [ErrReused] (TryCall). In exchange, deferred
// applications bind their argument in place instead of copying the
// arguments bound so far, and return transient handles again, so a chain
// of single-argument applications does not re-copy its accumulated state
// at every step. Use [Handle.Persist] to leave the transient chain.
//
// Once copies the bound arguments of h a single time. A persistent h is
// left untouched and remains usable. A transient h is consumed, so Once
// never revives a handle that was already applied; it panics in that case.
func (h Handle) Once() Handle {
	c := h.c
	if c == nil || c.err != nil {
		return h
	}
	if err := c.enter(); err != nil {
		panic(err)
	}
	args := make([]reflect.Value, len(c.args), len(c.args)+onceSpare)
	copy(args, c.args)
	return Handle{c: &cell{held: c.held, mode: c.mode, args: args, transient: true}}
}

// Persist consumes a transient handle and returns a persistent handle over
// the same cell contents. Persistent handles are returned unchanged.
// Panics if h has already been consumed.
func (h Handle) Persist() Handle {
	c := h.c
	if c == nil || !c.transient {
		return h
	}
	if err := c.enter(); err != nil {
		panic(err)
	}
	return Handle{c: &cell{held: c.held, mode: c.mode, args: slices.Clip(c.args)}}
}

// IsTransient reports whether h is a one-shot handle produced by [Handle.Once].
func (h Handle) IsTransient() bool {
	return h.c != nil && h.c.transient
}

// enter claims a transient cell for its single application.
// Persistent cells are never claimed.
func (c *cell) enter() error {
	if !c.transient {
		return nil
	}
	if c.used.Add(1) != 1 {
		return errReused
	}
	return nil
}
