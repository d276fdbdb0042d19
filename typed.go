// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

// Typed handles carry their curried signature in their type, so every
// application is checked at compile time. Each converts to a dynamic
// [Handle] through [Wrap].

// Void is the result of fully applying a function without results.
type Void struct{}

func (Void) curried() Handle { return Handle{} }

// Val is a terminal typed handle holding a T.
type Val[T any] struct{ v T }

// Pure lifts a value into a terminal typed handle.
func Pure[T any](v T) Val[T] { return Val[T]{v: v} }

// Get returns the held value.
func (v Val[T]) Get() T { return v.v }

func (v Val[T]) curried() Handle { return Own(v.v) }

// Fn0 is a typed handle awaiting a unit application.
type Fn0[N Curried] struct{ f func() N }

// Call performs the unit application.
func (h Fn0[N]) Call() N { return h.f() }

func (h Fn0[N]) curried() Handle { return Own(h.f) }

// Fn1 is a typed handle awaiting one A.
type Fn1[A any, N Curried] struct{ f func(A) N }

// Apply applies one argument.
func (h Fn1[A, N]) Apply(a A) N { return h.f(a) }

func (h Fn1[A, N]) curried() Handle { return Own(h.f) }

// Defer builds an Fn0 from a function returning a typed handle.
func Defer[N Curried](f func() N) Fn0[N] { return Fn0[N]{f: f} }

// Lambda builds an Fn1 from a function returning a typed handle.
func Lambda[A any, N Curried](f func(A) N) Fn1[A, N] { return Fn1[A, N]{f: f} }

// Thunk curries a zero-argument function.
func Thunk[R any](f func() R) Fn0[Val[R]] {
	return Defer(func() Val[R] { return Pure(f()) })
}

// Curry1 curries a one-argument function.
func Curry1[A, R any](f func(A) R) Fn1[A, Val[R]] {
	return Lambda(func(a A) Val[R] { return Pure(f(a)) })
}

// Curry2 curries a two-argument function. The function runs once both
// arguments are supplied.
func Curry2[A, B, R any](f func(A, B) R) Fn1[A, Fn1[B, Val[R]]] {
	return Lambda(func(a A) Fn1[B, Val[R]] {
		return Curry1(func(b B) R { return f(a, b) })
	})
}

// Curry3 curries a three-argument function.
func Curry3[A, B, C, R any](f func(A, B, C) R) Fn1[A, Fn1[B, Fn1[C, Val[R]]]] {
	return Lambda(func(a A) Fn1[B, Fn1[C, Val[R]]] {
		return Curry2(func(b B, c C) R { return f(a, b, c) })
	})
}

// Curry4 curries a four-argument function.
func Curry4[A, B, C, D, R any](f func(A, B, C, D) R) Fn1[A, Fn1[B, Fn1[C, Fn1[D, Val[R]]]]] {
	return Lambda(func(a A) Fn1[B, Fn1[C, Fn1[D, Val[R]]]] {
		return Curry3(func(b B, c C, d D) R { return f(a, b, c, d) })
	})
}

// Effect1 curries a one-argument function without results.
func Effect1[A any](f func(A)) Fn1[A, Void] {
	return Lambda(func(a A) Void {
		f(a)
		return Void{}
	})
}

// Effect2 curries a two-argument function without results.
func Effect2[A, B any](f func(A, B)) Fn1[A, Fn1[B, Void]] {
	return Lambda(func(a A) Fn1[B, Void] {
		return Effect1(func(b B) { f(a, b) })
	})
}

// Apply2 applies two arguments to a typed handle, one at a time.
func Apply2[A, B any, N Curried](h Fn1[A, Fn1[B, N]], a A, b B) N {
	return h.Apply(a).Apply(b)
}

// Apply3 applies three arguments to a typed handle, one at a time.
func Apply3[A, B, C any, N Curried](h Fn1[A, Fn1[B, Fn1[C, N]]], a A, b B, c C) N {
	return h.Apply(a).Apply(b).Apply(c)
}
