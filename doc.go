// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package curry provides a partial-application engine for Go.
//
// [Wrap] turns any callable into a [Handle] that accepts its arguments in
// any number of calls, one application at a time, and rewraps every
// intermediate and final result so the chain can continue:
//
//	expr := func(a, b int) func(int, int) int {
//		return func(c, d int) int { return a + b + c + d }
//	}
//	h := curry.Wrap(expr)
//	h.Call(1).Call(2, 4).Call(8) // 15
//	h.Call(1, 2, 4, 8)           // 15
//	h.Call(1).Call(2).Call(4).Call(8) // 15
//
// # Application
//
// Each argument is applied on its own, left to right:
//
//   - if the held function accepts it as its last argument, the function is
//     invoked and its result rewrapped
//   - if the function has no results, the application yields the zero
//     [Handle] (no value)
//   - otherwise the argument is bound and a new handle awaits the rest
//
// A call with several arguments is the same as the chain of single-argument
// calls, and every grouping invokes the target exactly once. Arity comes
// from the function's own type, with no look-ahead: a function with one
// parameter left is always invoked, even when the caller meant to keep
// composing. A variadic function therefore receives at most one element of
// its variadic tail through Call; [Handle.Value] and [Func] give back a
// function that takes the full tail.
//
// [Handle.Call] with no arguments is the unit application. It is the only
// way to invoke a zero-argument function; wrapping one does not call it:
//
//	h := curry.Wrap(func() int { return 100 })
//	h.Call() // 100
//
// # Rewrapping
//
//   - a function result becomes a new handle
//   - a handle result is returned unchanged, never wrapped twice
//   - a non-nil trailing error result becomes a failed handle ([Handle.Err])
//     that absorbs further applications
//   - several results become a terminal []any
//
// Terminal values convert back with [As], [Must], [Handle.Value] and
// [Handle.String]; [Func] turns a handle into any concrete function type.
// Numbers convert between numeric types only when the value is
// representable in the target type: 3.7 never becomes an int and -1 never
// becomes a uint.
//
// # Ownership
//
// A cell either owns its value ([Owned]) or borrows it ([Borrowed]).
// [Wrap] borrows non-nil pointers to functions and to handles; [Borrow]
// borrows explicitly and [Own] never borrows. A borrowed cell reads through
// its pointer at every application, so changes made before an application
// are observed, and the mode carries over to every partial application
// derived from it. Results that are pointers to functions are borrowed as
// well.
//
// # Calling Contexts
//
// The garbage collector guarantees the lifetime of everything a handle
// refers to, so applications come in two contexts:
//
//   - persistent (default): the receiver is never changed and can be
//     reapplied any number of times, from any goroutine; each deferred
//     step copies the arguments bound so far
//   - transient ([Handle.Once]): a one-shot handle whose deferred steps
//     bind in place and return transient handles again; applying it twice
//     panics. [Handle.Persist] leaves the transient chain.
//
// Cells created within a single multi-argument call are always extended in
// place.
//
// # Typed Handles
//
// [Val], [Fn0], [Fn1] and [Void] carry a curried signature in their type,
// built by [Thunk], [Curry1] through [Curry4], [Effect1], [Effect2],
// [Defer] and [Lambda]. The constraints [Curried], [Returns], [Unit] and
// [Takes] express curried signatures for generic code:
//
//	func Twice[H curry.Takes[int, curry.Val[int]]](h H, x int) int {
//		return h.Apply(h.Apply(x).Get()).Get()
//	}
//
// # Errors
//
// Misuse of a handle (an argument count or type the held function cannot
// take, applying a terminal value, reusing a transient handle) is a
// programming error: [Handle.Call] panics with an [*ApplyError] whose Kind
// is one of [ErrArity], [ErrArgType], [ErrNotCallable], [ErrNoValue] or
// [ErrReused]. [Handle.TryCall] returns the same errors instead. Panics
// raised by the wrapped function are never recovered and reach the caller
// as if the function had been called directly.
package curry
