// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

// Curried-signature constraints.
//
// A curried signature "A1 -> A2 -> ... -> R" is checked one application at
// a time: a handle satisfies it when applying one A1 yields a handle that
// satisfies "A2 -> ... -> R", down to a handle convertible to R. Only this
// one-argument-at-a-time path is encoded; every grouping of the same
// arguments is equivalent at runtime, and enumerating the groupings grows
// combinatorially with the argument count.
//
// The constraints are checked by the type checker and have no runtime
// representation:
//
//	Curried                                any handle
//	Returns[R]                             convertible to R
//	Unit[N]                                () yields N
//	Takes[A, N]                            (A) yields N
//
// so the signature "int -> string -> ()-> bool" reads
//
//	Takes[int, Fn1[string, Fn0[Val[bool]]]]
//
// and is satisfied by the typed handles [Val], [Fn0], [Fn1] and [Void].

// Curried is implemented by every handle type of this package, dynamic or
// typed. The unexported method returns the dynamic view used by [Wrap].
type Curried interface {
	curried() Handle
}

// Returns is satisfied by handles convertible to R.
type Returns[R any] interface {
	Curried
	Get() R
}

// Unit is satisfied by handles whose unit application yields N.
type Unit[N any] interface {
	Curried
	Call() N
}

// Takes is satisfied by handles that accept one A and yield N.
type Takes[A, N any] interface {
	Curried
	Apply(A) N
}
