// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

import (
	"fmt"

	"github.com/pkg/errors"
)

// Contract violations detected by the engine.
// Every [ApplyError] carries exactly one of these as its Kind.
var (
	// ErrArity reports an application whose argument count the held
	// function cannot accept: arguments applied to a zero-parameter
	// function, or a unit application on a function that still needs
	// arguments.
	ErrArity = errors.New("arity mismatch")

	// ErrArgType reports an argument that is neither assignable nor
	// convertible to the parameter it is bound to.
	ErrArgType = errors.New("argument type mismatch")

	// ErrNotCallable reports an application on a terminal value.
	ErrNotCallable = errors.New("value is not callable")

	// ErrNoValue reports an application on, or an unwrap of, the result
	// of a function that returned nothing.
	ErrNoValue = errors.New("no value")

	// ErrReused reports a second application of a transient handle.
	ErrReused = errors.New("transient handle applied twice")
)

// ApplyError describes a misuse of a handle.
//
// [Handle.Call] panics with *ApplyError; [Handle.TryCall] returns it.
// Failures raised by the wrapped function itself are never converted
// into an ApplyError.
type ApplyError struct {
	Kind   error
	Detail string
}

func newApplyError(kind error, format string, args ...any) *ApplyError {
	return &ApplyError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func (e *ApplyError) Error() string {
	if e.Detail == "" {
		return "curry: " + e.Kind.Error()
	}
	return "curry: " + e.Kind.Error() + ": " + e.Detail
}

// Cause returns the Kind sentinel, for errors.Cause.
func (e *ApplyError) Cause() error { return e.Kind }

// Unwrap returns the Kind sentinel, for errors.Is.
func (e *ApplyError) Unwrap() error { return e.Kind }

// errReused is shared: reuse carries no detail.
var errReused = &ApplyError{Kind: ErrReused}
